package corpline

import (
	"regexp"
	"strings"
)

// Anchor classifiers. Each is an exact shape match over one token; the
// extractors use these shapes, not positions, to find field boundaries.
var (
	zipPattern        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	datePattern       = regexp.MustCompile(`^\d{8}$`)
	einPattern        = regexp.MustCompile(`^\d{2}-\d{7}$`)
	fei9Pattern       = regexp.MustCompile(`^\d{9}$`)
	yearPattern       = regexp.MustCompile(`^\d{4}$`)
	streetNumPattern  = regexp.MustCompile(`^\d{1,6}$`)
	agentCodePattern  = regexp.MustCompile(`^C\d{1,7}$`)
	reportYearPattern = regexp.MustCompile(`^FL(\d{4})$`)
	flagPattern       = regexp.MustCompile(`^[A-Z]$`)
	gluedNamePattern  = regexp.MustCompile(`^P[A-Z]{3,}$`)
	junkBlobPattern   = regexp.MustCompile(`^[A-Z]{1,2}\d{6,}$`)
)

func looksLikeZip(t string) bool          { return zipPattern.MatchString(t) }
func looksLikeDate(t string) bool         { return datePattern.MatchString(t) }
func looksLikeEIN(t string) bool          { return einPattern.MatchString(t) }
func looksLikeFEI9(t string) bool         { return fei9Pattern.MatchString(t) }
func looksLikeYear(t string) bool         { return yearPattern.MatchString(t) }
func looksLikeStreetNumber(t string) bool { return streetNumPattern.MatchString(t) }

// isAgentCode reports whether t is a compact registered-agent code ("C" plus
// the leading digits of the agent's street number).
func isAgentCode(t string) bool { return agentCodePattern.MatchString(t) }

// reportYear extracts the 4-digit year from an annual-report token
// ("FL2025" -> "2025"), or "" when t has another shape.
func reportYear(t string) string {
	m := reportYearPattern.FindStringSubmatch(t)
	if m == nil {
		return ""
	}
	return m[1]
}

// unglueNameToken strips a person-type agent marker that fused onto the
// following surname: PHALPERIN -> HALPERIN. Other tokens pass through.
func unglueNameToken(t string) string {
	if gluedNamePattern.MatchString(t) {
		return t[1:]
	}
	return t
}

func containsDigit(t string) bool {
	return strings.ContainsAny(t, "0123456789")
}
