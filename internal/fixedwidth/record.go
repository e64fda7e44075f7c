// Package fixedwidth parses the official Corporate Data File: 1440-character
// records where every field sits at a documented 1-based byte position. This
// is the intact upstream format; when the per-field boundaries have been
// lost and only a single corp line survives, reconstruction falls to
// corpline instead. Pure positional slicing, no heuristics.
package fixedwidth

import (
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// RecordLength is the fixed record size of the Corporate Data File.
const RecordLength = 1440

// Record is one fully positional corporate filing.
type Record struct {
	DocNumber           string              `json:"doc_number"`
	Name                string              `json:"name"`
	Status              string              `json:"status"`      // "A" or "I"
	FilingType          string              `json:"filing_type"` // DOMP, FLAL, ...
	PrincipalAddress    domain.Address      `json:"principal_address"`
	MailingAddress      domain.Address      `json:"mailing_address"`
	FileDate            string              `json:"file_date"`
	FEINumber           string              `json:"fei_number"`
	LastTransactionDate string              `json:"last_transaction_date"`
	ReportYears         []ReportYear        `json:"report_years"`
	RegisteredAgent     RegisteredAgent     `json:"registered_agent"`
	Officers            []PositionedOfficer `json:"officers"`
}

// ReportYear is one annual-report slot (three per record).
type ReportYear struct {
	Year string `json:"year"`
	Date string `json:"date"`
}

// RegisteredAgent is the agent block of the fixed record. Type is "P" for a
// person, "C" for a corporation.
type RegisteredAgent struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// PositionedOfficer is one of the up-to-six officer blocks.
type PositionedOfficer struct {
	Title   string `json:"title"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// officerOffsets lists the 1-based start positions of the six officer
// blocks, straight from the published layout.
var officerOffsets = []struct {
	title, name, address, city, state, zip int
}{
	{669, 674, 716, 758, 786, 788},
	{797, 802, 844, 886, 914, 916},
	{925, 930, 972, 1014, 1042, 1044},
	{1053, 1058, 1100, 1142, 1170, 1172},
	{1181, 1186, 1228, 1270, 1298, 1300},
	{1309, 1314, 1356, 1398, 1426, 1428},
}

// slice extracts a trimmed field at a 1-based position. Short lines yield
// empty fields rather than a panic, so truncated trailing records degrade
// gracefully.
func slice(line string, start, length int) string {
	start--
	if start >= len(line) {
		return ""
	}
	end := start + length
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// ParseRecord slices one Corporate Data File line into a Record.
func ParseRecord(line string) Record {
	rec := Record{
		DocNumber:  slice(line, 1, 12),
		Name:       slice(line, 13, 192),
		Status:     slice(line, 205, 1),
		FilingType: slice(line, 206, 15),
		PrincipalAddress: domain.Address{
			Address1: slice(line, 221, 42),
			Address2: slice(line, 263, 42),
			City:     slice(line, 305, 28),
			State:    slice(line, 333, 2),
			Zip:      slice(line, 335, 10),
			Country:  slice(line, 345, 2),
		},
		MailingAddress: domain.Address{
			Address1: slice(line, 347, 42),
			Address2: slice(line, 389, 42),
			City:     slice(line, 431, 28),
			State:    slice(line, 459, 2),
			Zip:      slice(line, 461, 10),
			Country:  slice(line, 471, 2),
		},
		FileDate:            slice(line, 473, 8),
		FEINumber:           slice(line, 481, 14),
		LastTransactionDate: slice(line, 496, 8),
		ReportYears: []ReportYear{
			{Year: slice(line, 506, 4), Date: slice(line, 511, 8)},
			{Year: slice(line, 519, 4), Date: slice(line, 524, 8)},
			{Year: slice(line, 532, 4), Date: slice(line, 537, 8)},
		},
		RegisteredAgent: RegisteredAgent{
			Name:    slice(line, 545, 42),
			Type:    slice(line, 587, 1),
			Address: slice(line, 588, 42),
			City:    slice(line, 630, 28),
			State:   slice(line, 658, 2),
			Zip:     slice(line, 660, 9),
		},
	}

	for _, off := range officerOffsets {
		name := slice(line, off.name, 42)
		if name == "" {
			continue
		}
		rec.Officers = append(rec.Officers, PositionedOfficer{
			Title:   slice(line, off.title, 4),
			Name:    name,
			Address: slice(line, off.address, 42),
			City:    slice(line, off.city, 28),
			State:   slice(line, off.state, 2),
			Zip:     slice(line, off.zip, 9),
		})
	}
	return rec
}
