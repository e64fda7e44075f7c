// Package export renders parsed registry records as XLSX workbooks for
// filing-service back offices.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

const (
	entitySheet   = "Entity"
	officersSheet = "Officers"
)

// WriteRecordXLSX writes a two-sheet workbook for one record: entity facts
// as field/value pairs, officers as a table.
func WriteRecordXLSX(w io.Writer, rec *domain.ParsedRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", entitySheet)

	rows := [][2]string{
		{"Document Number", rec.DocumentNumber},
		{"Entity Name", rec.EntityName},
		{"Filing Type", rec.EntityTypeCode},
		{"Formation Date", service.FormatFilingDate(rec.FormationDate)},
		{"FEI/EIN", rec.FeiEin},
		{"Annual Report Year", rec.AnnualReportYear},
		{"Email", rec.Email},
		{"Principal Address", formatAddress(rec.PrincipalAddress)},
		{"Mailing Address", formatAddress(rec.MailingAddress)},
	}
	if rec.RegisteredAgent != nil {
		rows = append(rows,
			[2]string{"Registered Agent", rec.RegisteredAgent.Name},
			[2]string{"Agent Address", formatAddress(rec.RegisteredAgent.Address)},
		)
	}
	for i, d := range rec.ReportDates {
		rows = append(rows, [2]string{
			fmt.Sprintf("Report Date %d", i+1),
			service.FormatFilingDate(d),
		})
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(entitySheet, cell, &[]interface{}{row[0], row[1]}); err != nil {
			return fmt.Errorf("writing entity row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(officersSheet); err != nil {
		return fmt.Errorf("creating officers sheet: %w", err)
	}
	header := []interface{}{"Role", "Name", "Address 1", "Address 2", "City", "State", "Zip"}
	if err := f.SetSheetRow(officersSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing officers header: %w", err)
	}
	for i, o := range rec.Officers {
		row := []interface{}{o.Role, o.Name, "", "", "", "", ""}
		if o.Address != nil {
			row[2] = o.Address.Address1
			row[3] = o.Address.Address2
			row[4] = o.Address.City
			row[5] = o.Address.State
			row[6] = o.Address.Zip
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(officersSheet, cell, &row); err != nil {
			return fmt.Errorf("writing officer row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func formatAddress(a *domain.Address) string {
	if a == nil {
		return ""
	}
	out := a.Address1
	if a.Address2 != "" {
		out += ", " + a.Address2
	}
	if a.City != "" {
		out += ", " + a.City
	}
	if a.State != "" {
		out += ", " + a.State + " " + a.Zip
	}
	return out
}
