package corpline

// Vocabulary holds the closed token sets the extractors match against.
// The sets are data, not logic: extending coverage (a new filing-type code,
// an extra street suffix) must never require touching an extractor.
// Treat a Vocabulary as immutable once handed to a Parser.
type Vocabulary struct {
	States           map[string]bool
	TypeCodes        map[string]bool
	RoleCodes        map[string]bool
	Addr2Keywords    map[string]bool
	StreetSuffixes   map[string]bool
	BusinessSuffixes map[string]bool
}

// Limits holds the empirical scan bounds. These were tuned against observed
// Sunbiz exports, not derived from any published format, so unusual records
// can push past them; they are deliberately configurable.
type Limits struct {
	// StateZipWindow bounds the forward scan for a state+zip anchor.
	StateZipWindow int
	// AgentMarkerWindow bounds the forward scan for a standalone "P" agent marker.
	AgentMarkerWindow int
	// MaxOfficerNameTokens caps the greedy officer-name capture.
	MaxOfficerNameTokens int
	// MaxCityTokens caps the backward city walk from a state+zip anchor.
	MaxCityTokens int
}

// DefaultLimits returns the tuned scan bounds.
func DefaultLimits() Limits {
	return Limits{
		StateZipWindow:       140,
		AgentMarkerWindow:    160,
		MaxOfficerNameTokens: 14,
		MaxCityTokens:        3,
	}
}

// DefaultVocabulary returns the token sets tuned for Florida Division of
// Corporations data.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		States: setOf(
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI",
			"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI",
			"MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
			"ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT",
			"VT", "VA", "WA", "WV", "WI", "WY", "DC",
		),
		TypeCodes: setOf(
			"IFLAL", "AFLAL", "IDOMNP", "IDOMN", "IDOMP", "IDOM", "DOMNP", "DOMP",
		),
		RoleCodes: setOf(
			"MGR", "AMBR", "MEMBER", "PRES", "VP", "VPP", "TREA", "SEC", "DIR",
			"CEO", "CFO", "COO", "MANAGER", "AUTHORIZED", "TRUSTEE", "CHAIR",
			"P", "S", "D",
		),
		Addr2Keywords: setOf(
			"SUITE", "STE", "UNIT", "APT", "#", "FLOOR", "FL", "BLDG",
			"BUILDING", "RM", "ROOM",
		),
		StreetSuffixes: setOf(
			"AVE", "AVE.", "AVENUE", "BLVD", "BLVD.", "BOULEVARD",
			"RD", "RD.", "ROAD", "ST", "ST.", "STREET", "DR", "DR.", "DRIVE",
			"CT", "CT.", "COURT", "LN", "LN.", "LANE", "WAY",
			"HWY", "HWY.", "PKWY", "PKWY.", "TER", "TER.", "CIR", "CIR.",
		),
		BusinessSuffixes: setOf(
			"LLC", "INC", "INC.", "CORP", "CORPORATION", "COMPANY", "GROUP", "LAW",
		),
	}
}

// displaySuffixes is the wider suffix vocabulary used only for display-name
// normalization; it includes dotted and two-token variants that never appear
// as single tokens inside a corp line.
var displaySuffixes = setOf(
	"LLC", "L.L.C", "INC", "I.N.C", "CORP", "C.O.R.P", "CORPORATION",
	"CO", "C.O", "COMPANY", "LTD", "L.T.D", "LIMITED",
	"LP", "L.P", "LLP", "L.L.P", "LLLP", "L.L.L.P",
	"PA", "P.A", "PLLC", "P.L.L.C", "PL", "P.L",
	"PC", "P.C", "PROFESSIONAL", "ASSOCIATION", "P A",
)

func setOf(tokens ...string) map[string]bool {
	m := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		m[t] = true
	}
	return m
}
