package fixedwidth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/fixedwidth"
)

// place writes value at a 1-based offset into the record buffer.
func place(buf []byte, start int, value string) {
	copy(buf[start-1:], value)
}

func sampleLine() string {
	buf := []byte(strings.Repeat(" ", fixedwidth.RecordLength))
	place(buf, 1, "L23000013604")
	place(buf, 13, "BHMS CONSULTING LLC")
	place(buf, 205, "A")
	place(buf, 206, "DOMP")
	place(buf, 221, "2160 SUNRISE BLVD")
	place(buf, 263, "STE 200")
	place(buf, 305, "FORT LAUDERDALE")
	place(buf, 333, "FL")
	place(buf, 335, "33304")
	place(buf, 345, "US")
	place(buf, 347, "PO BOX 1234")
	place(buf, 431, "ORLANDO")
	place(buf, 459, "FL")
	place(buf, 461, "32801")
	place(buf, 473, "04042023")
	place(buf, 481, "92-1234567")
	place(buf, 496, "04042024")
	place(buf, 506, "2024")
	place(buf, 511, "04042024")
	place(buf, 519, "2025")
	place(buf, 524, "04042025")
	place(buf, 545, "SMITH JOHN")
	place(buf, 587, "P")
	place(buf, 588, "5678 SUNRISE BLVD")
	place(buf, 630, "FORT LAUDERDALE")
	place(buf, 658, "FL")
	place(buf, 660, "33304")
	place(buf, 669, "MGR")
	place(buf, 674, "SMITH JOHN")
	place(buf, 716, "2160 SUNRISE BLVD")
	place(buf, 758, "FORT LAUDERDALE")
	place(buf, 786, "FL")
	place(buf, 788, "33304")
	place(buf, 797, "PRES")
	place(buf, 802, "DOE JANE")
	return string(buf)
}

func TestParseRecord_Positional(t *testing.T) {
	rec := fixedwidth.ParseRecord(sampleLine())

	t.Run("header_fields", func(t *testing.T) {
		assert.Equal(t, "L23000013604", rec.DocNumber)
		assert.Equal(t, "BHMS CONSULTING LLC", rec.Name)
		assert.Equal(t, "A", rec.Status)
		assert.Equal(t, "DOMP", rec.FilingType)
	})

	t.Run("addresses", func(t *testing.T) {
		assert.Equal(t, "2160 SUNRISE BLVD", rec.PrincipalAddress.Address1)
		assert.Equal(t, "STE 200", rec.PrincipalAddress.Address2)
		assert.Equal(t, "FORT LAUDERDALE", rec.PrincipalAddress.City)
		assert.Equal(t, "FL", rec.PrincipalAddress.State)
		assert.Equal(t, "33304", rec.PrincipalAddress.Zip)
		assert.Equal(t, "US", rec.PrincipalAddress.Country)

		assert.Equal(t, "PO BOX 1234", rec.MailingAddress.Address1)
		assert.Equal(t, "ORLANDO", rec.MailingAddress.City)
		assert.Equal(t, "32801", rec.MailingAddress.Zip)
	})

	t.Run("filing_facts", func(t *testing.T) {
		assert.Equal(t, "04042023", rec.FileDate)
		assert.Equal(t, "92-1234567", rec.FEINumber)
		assert.Equal(t, "04042024", rec.LastTransactionDate)
		require.Len(t, rec.ReportYears, 3)
		assert.Equal(t, "2024", rec.ReportYears[0].Year)
		assert.Equal(t, "04042024", rec.ReportYears[0].Date)
		assert.Equal(t, "2025", rec.ReportYears[1].Year)
		assert.Equal(t, "", rec.ReportYears[2].Year)
	})

	t.Run("registered_agent", func(t *testing.T) {
		assert.Equal(t, "SMITH JOHN", rec.RegisteredAgent.Name)
		assert.Equal(t, "P", rec.RegisteredAgent.Type)
		assert.Equal(t, "5678 SUNRISE BLVD", rec.RegisteredAgent.Address)
		assert.Equal(t, "FORT LAUDERDALE", rec.RegisteredAgent.City)
		assert.Equal(t, "FL", rec.RegisteredAgent.State)
		assert.Equal(t, "33304", rec.RegisteredAgent.Zip)
	})

	t.Run("officers_skip_empty_slots", func(t *testing.T) {
		require.Len(t, rec.Officers, 2)
		assert.Equal(t, "MGR", rec.Officers[0].Title)
		assert.Equal(t, "SMITH JOHN", rec.Officers[0].Name)
		assert.Equal(t, "2160 SUNRISE BLVD", rec.Officers[0].Address)
		assert.Equal(t, "FL", rec.Officers[0].State)
		assert.Equal(t, "PRES", rec.Officers[1].Title)
		assert.Equal(t, "DOE JANE", rec.Officers[1].Name)
		assert.Equal(t, "", rec.Officers[1].Address)
	})
}

func TestParseRecord_ShortLine(t *testing.T) {
	t.Run("truncated_record_degrades_to_empty_fields", func(t *testing.T) {
		rec := fixedwidth.ParseRecord("L23000013604 BHMS")
		assert.Equal(t, "L23000013604", rec.DocNumber)
		assert.Equal(t, "BHMS", rec.Name)
		assert.Equal(t, "", rec.Status)
		assert.Empty(t, rec.Officers)
	})

	t.Run("empty_line", func(t *testing.T) {
		rec := fixedwidth.ParseRecord("")
		assert.Equal(t, "", rec.DocNumber)
		assert.Empty(t, rec.Officers)
	})
}
