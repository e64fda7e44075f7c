package domain

import "time"

// CorpRow is a raw registry row as stored in the corpdata table: one
// government document number and the free-text corp line it was delivered
// with. The corp line carries every logical field of the filing run
// together with lost delimiters; reconstruction happens in corpline.
type CorpRow struct {
	DocumentNumber string `db:"document_number" json:"document_number"`
	CorpLine       string `db:"corp_line" json:"corp_line"`
	Email          string `db:"email" json:"email,omitempty"`
}

// Address is a reconstructed US postal address. State and Zip are only ever
// set together; Address1 may be empty when the source line carried no street
// prefix before the state+zip anchor.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country,omitempty"`
}

// RegisteredAgent is the agent of record for an entity. Address is nil when
// only a name could be recovered.
type RegisteredAgent struct {
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

// Officer is a single officer or manager entry. Name and Address are
// best-effort and may be empty/nil independently of each other.
type Officer struct {
	Role    string   `json:"role"`
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// ParsedRecord is the full structured reconstruction of one corp line.
// It is immutable once composed; absent fields are empty strings, nil
// pointers, or empty slices, never an error.
type ParsedRecord struct {
	DocumentNumber   string           `json:"document_number"`
	EntityName       string           `json:"entity_name"`
	EntityTypeCode   string           `json:"entity_type_code,omitempty"`
	PrincipalAddress *Address         `json:"principal_address,omitempty"`
	MailingAddress   *Address         `json:"mailing_address,omitempty"`
	FormationDate    string           `json:"formation_date,omitempty"`
	FeiEin           string           `json:"fei_ein,omitempty"`
	AnnualReportYear string           `json:"annual_report_year,omitempty"`
	ReportDates      []string         `json:"report_dates,omitempty"`
	RegisteredAgent  *RegisteredAgent `json:"registered_agent,omitempty"`
	Officers         []Officer        `json:"officers,omitempty"`
	Email            string           `json:"email,omitempty"`
	RawLine          string           `json:"raw_line"`
}

// EntitySummary is the search result row: enough to pick an entity out of a
// list without shipping the whole ParsedRecord.
type EntitySummary struct {
	DocumentNumber string `json:"document_number"`
	EntityName     string `json:"entity_name"`
	EntityTypeCode string `json:"entity_type_code,omitempty"`
	PrincipalCity  string `json:"principal_city,omitempty"`
	PrincipalState string `json:"principal_state,omitempty"`
}

// PrefillToken is a single-use renewal prefill link. The token the customer
// receives is a signed JWT; this row tracks redemption state by the JWT's ID.
type PrefillToken struct {
	ID             string     `db:"token_id" json:"token_id"`
	DocumentNumber string     `db:"doc_number" json:"doc_number"`
	ExpiresAt      time.Time  `db:"expires_at" json:"expires_at"`
	Used           bool       `db:"used" json:"used"`
	UsedAt         *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// AnnualReport pairs a report year with its filing date, ISO-formatted for
// form consumption.
type AnnualReport struct {
	Year    string `json:"year,omitempty"`
	DateRaw string `json:"date_raw,omitempty"`
	Date    string `json:"date,omitempty"`
}

// PrefillPayload is the form-ready projection of a ParsedRecord served when
// a prefill link is redeemed: display fields resolved, dates ISO-formatted,
// best address picked.
type PrefillPayload struct {
	DocumentNumber   string           `json:"document_number"`
	EntityName       string           `json:"entity_name"`
	NormalizedName   string           `json:"name_normalized,omitempty"`
	DisplayName      string           `json:"display_name"`
	DisplaySubtitle  string           `json:"display_subtitle,omitempty"`
	EntityTypeCode   string           `json:"entity_type_code,omitempty"`
	Email            string           `json:"email,omitempty"`
	PrincipalAddress *Address         `json:"principal_address,omitempty"`
	MailingAddress   *Address         `json:"mailing_address,omitempty"`
	BestAddress      *Address         `json:"best_address,omitempty"`
	RegisteredAgent  *RegisteredAgent `json:"registered_agent,omitempty"`
	FormationDateRaw string           `json:"formation_date_raw,omitempty"`
	FormationDate    string           `json:"formation_date,omitempty"`
	FeiEin           string           `json:"fei_ein,omitempty"`
	AnnualReports    []AnnualReport   `json:"annual_reports,omitempty"`
	Officers         []Officer        `json:"officers,omitempty"`
}
