package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/export"
)

func TestWriteRecordXLSX(t *testing.T) {
	rec := &domain.ParsedRecord{
		DocumentNumber:   "L23000013604",
		EntityName:       "BHMS CONSULTING LLC",
		EntityTypeCode:   "IDOMP",
		FormationDate:    "04042023",
		FeiEin:           "92-1234567",
		AnnualReportYear: "2025",
		PrincipalAddress: &domain.Address{
			Address1: "2160 SUNRISE BLVD", Address2: "STE 200",
			City: "FORT LAUDERDALE", State: "FL", Zip: "33304",
		},
		RegisteredAgent: &domain.RegisteredAgent{
			Name: "JONATHAN HALPERIN",
			Address: &domain.Address{
				Address1: "5678 SUNRISE BLVD", City: "FORT LAUDERDALE", State: "FL", Zip: "33304",
			},
		},
		ReportDates: []string{"04042023"},
		Officers: []domain.Officer{
			{Role: "MGR", Name: "JOHN SMITH", Address: &domain.Address{
				Address1: "2160 SUNRISE BLVD", City: "FORT LAUDERDALE", State: "FL", Zip: "33304",
			}},
			{Role: "PRES", Name: "JANE DOE"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteRecordXLSX(&buf, rec))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("entity_sheet_fields", func(t *testing.T) {
		rows, err := f.GetRows("Entity")
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, []string{"Document Number", "L23000013604"}, rows[0][:2])

		got := map[string]string{}
		for _, row := range rows {
			if len(row) >= 2 {
				got[row[0]] = row[1]
			}
		}
		assert.Equal(t, "BHMS CONSULTING LLC", got["Entity Name"])
		assert.Equal(t, "2023-04-04", got["Formation Date"])
		assert.Equal(t, "JONATHAN HALPERIN", got["Registered Agent"])
		assert.Contains(t, got["Principal Address"], "STE 200")
	})

	t.Run("officers_sheet_rows", func(t *testing.T) {
		rows, err := f.GetRows("Officers")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Role", rows[0][0])
		assert.Equal(t, "MGR", rows[1][0])
		assert.Equal(t, "JOHN SMITH", rows[1][1])
		assert.Equal(t, "PRES", rows[2][0])
	})
}

func TestWriteRecordXLSX_MinimalRecord(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteRecordXLSX(&buf, &domain.ParsedRecord{DocumentNumber: "L1"})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
