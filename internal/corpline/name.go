package corpline

import (
	"regexp"
	"strings"
)

// nameKind tags a cleaned token run as a human name or a business name
// before any reordering happens. Only person names get flipped; the
// business-suffix vocabulary is the deciding evidence.
type nameKind int

const (
	nameKindPerson nameKind = iota
	nameKindBusiness
)

func (p *Parser) classifyName(tokens []string) nameKind {
	for _, t := range tokens {
		if p.vocab.BusinessSuffixes[strings.ToUpper(t)] {
			return nameKindBusiness
		}
	}
	return nameKindPerson
}

// cleanNameTokens drops the junk that leaks into agent-name token runs:
// stray N/Y flags, dates, bare years, EIN/FEI patterns, FL#### report
// tokens, and short letter+digit blobs. Glued person markers are stripped.
func (p *Parser) cleanNameTokens(tokens []string) []string {
	var cleaned []string
	for _, t := range tokens {
		tu := strings.ToUpper(t)
		if tu == "N" || tu == "Y" {
			continue
		}
		if looksLikeDate(t) || looksLikeYear(t) || looksLikeEIN(t) || looksLikeFEI9(t) {
			continue
		}
		if reportYear(tu) != "" || junkBlobPattern.MatchString(tu) {
			continue
		}
		cleaned = append(cleaned, unglueNameToken(t))
	}
	return cleaned
}

// flipNameTokens reorders "LAST FIRST [MIDDLE...]" to "FIRST [MIDDLE...]
// LAST". Single tokens pass through.
func flipNameTokens(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 {
		return strings.TrimSpace(tokens[0])
	}
	flipped := make([]string, 0, len(tokens))
	flipped = append(flipped, tokens[1:]...)
	flipped = append(flipped, tokens[0])
	return strings.TrimSpace(strings.Join(flipped, " "))
}

// agentName cleans a candidate agent-name token run and formats it:
// person names are flipped into reading order, business names keep their
// token order. Returns "" when nothing survives cleaning.
func (p *Parser) agentName(tokens []string) string {
	cleaned := p.cleanNameTokens(tokens)
	if len(cleaned) == 0 {
		return ""
	}
	if p.classifyName(cleaned) == nameKindBusiness {
		return strings.TrimSpace(strings.Join(cleaned, " "))
	}
	return flipNameTokens(cleaned)
}

var namePunct = regexp.MustCompile(`[^A-Z0-9\s]`)

// NormalizeBusinessName canonicalizes an entity name for display and
// matching: uppercase, punctuation stripped, whitespace collapsed, and
// trailing entity suffixes (LLC, INC, P.A., the two-token "P A", ...)
// removed iteratively. Returns the pre-stripped form when suffix removal
// would consume the whole name, and "" for blank input.
func NormalizeBusinessName(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = namePunct.ReplaceAllString(s, " ")
	s = strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}

	parts := strings.Split(s, " ")
	for len(parts) > 0 {
		if displaySuffixes[parts[len(parts)-1]] {
			parts = parts[:len(parts)-1]
			continue
		}
		if len(parts) >= 2 && displaySuffixes[parts[len(parts)-2]+" "+parts[len(parts)-1]] {
			parts = parts[:len(parts)-2]
			continue
		}
		break
	}

	out := strings.TrimSpace(strings.Join(parts, " "))
	if out == "" {
		return s
	}
	return out
}
