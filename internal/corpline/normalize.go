package corpline

import (
	"html"
	"regexp"
	"strings"
)

// The corp line arrives with field delimiters lost: values glue to their
// neighbors wherever the original fixed columns abutted. Each rule below
// re-inserts one boundary class. Order matters — later rules assume earlier
// ones already separated the overlapping cases (the 8-digit date rules must
// run longest-suffix first or the year rule eats half an EIN).
var normalizeRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Agent-block marker glued to digits: P1401 -> P 1401.
	{regexp.MustCompile(`\bP(\d)`), "P $1"},
	// Abbreviation glued to a period: INC.FT -> INC. FT.
	{regexp.MustCompile(`\.((?:FT|ST|N|S|E|W)\b)`), ". $1"},
	// Single flag letter glued to a date: N10312001 -> N 10312001.
	{regexp.MustCompile(`\b([A-Z])(\d{8})\b`), "$1 $2"},
	// Date glued to an FL report year: 10312001FL2025 -> 10312001 FL2025.
	{regexp.MustCompile(`\b(\d{8})FL(\d{4})\b`), "$1 FL$2"},
	// US glued to a street number: US2160 -> US 2160.
	{regexp.MustCompile(`\bUS(\d)`), "US $1"},
	// State glued to a zip: FL33308 -> FL 33308.
	{regexp.MustCompile(`\b([A-Z]{2})(\d{5})\b`), "$1 $2"},
	// Date glued to an EIN: 0105202392-1582122 -> 01052023 92-1582122.
	{regexp.MustCompile(`\b(\d{8})(\d{2}-\d{7})\b`), "$1 $2"},
	// Date glued to a 9-digit FEI: 07122001141838235 -> 07122001 141838235.
	{regexp.MustCompile(`\b(\d{8})(\d{9})\b`), "$1 $2"},
	// Date glued to a bare year: 041620252025 -> 04162025 2025.
	{regexp.MustCompile(`\b(\d{8})(\d{4})\b`), "$1 $2"},
	// Date glued to letters: 04042024HALPERIN -> 04042024 HALPERIN.
	{regexp.MustCompile(`\b(\d{8})([A-Z])`), "$1 $2"},
	// A comma always gets a trailing space.
	{regexp.MustCompile(`,(\S)`), ", $1"},
}

var wsRun = regexp.MustCompile(`\s+`)

// Normalize rewrites a raw concatenated corp line into canonical spaced
// form. It is pure, total, and idempotent: any input yields a best-effort
// output, and normalizing twice changes nothing.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	for _, r := range normalizeRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// Tokenize splits a corp line into the ordered token stream every extractor
// walks over. Input is normalized first, so splitting on single spaces is
// exact. Empty input yields an empty stream.
func Tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}
