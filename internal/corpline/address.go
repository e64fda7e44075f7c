package corpline

import (
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// findStateZip scans forward from start, within the configured window, for
// the first position holding a state code immediately followed by a zip.
// Returns -1 when no anchor exists in the window.
func (p *Parser) findStateZip(tokens []string, start int) int {
	end := start + p.limits.StateZipWindow
	if end > len(tokens)-1 {
		end = len(tokens) - 1
	}
	for j := start; j < end; j++ {
		if p.vocab.States[tokens[j]] && looksLikeZip(tokens[j+1]) {
			return j
		}
	}
	return -1
}

// extractAddress reconstructs one address starting at tokens[start]. The
// state+zip pair is the anchor: everything before it is street+city, an
// optional US/USA token after the zip is the country. Returns (nil, start)
// when no anchor is found — the caller treats that as "no address here",
// never as an error.
func (p *Parser) extractAddress(tokens []string, start int) (*domain.Address, int) {
	anchor := p.findStateZip(tokens, start)
	if anchor < 0 {
		return nil, start
	}

	pre := tokens[start:anchor]

	// City is the last run of city-ish tokens before the state: no digits,
	// not a continuation keyword, not a street suffix. Walk backward until
	// the first failure, then restore reading order.
	var cityParts []string
	k := len(pre) - 1
	for k >= 0 && len(cityParts) < p.limits.MaxCityTokens {
		if !p.isCityToken(pre[k]) {
			break
		}
		cityParts = append(cityParts, strings.Trim(pre[k], ","))
		k--
	}
	for i, j := 0, len(cityParts)-1; i < j; i, j = i+1, j-1 {
		cityParts[i], cityParts[j] = cityParts[j], cityParts[i]
	}

	streetTokens := pre
	if len(cityParts) > 0 {
		streetTokens = pre[:k+1]
	}
	address1, address2 := p.splitStreetLines(streetTokens)

	addr := &domain.Address{
		Address1: address1,
		Address2: address2,
		City:     strings.Join(cityParts, " "),
		State:    tokens[anchor],
		Zip:      tokens[anchor+1],
	}

	next := anchor + 2
	if next < len(tokens) && (tokens[next] == "US" || tokens[next] == "USA") {
		addr.Country = "US"
		next++
	}
	return addr, next
}

// extractMailingAddress attempts the second address claim. A real mailing
// address directly follows the principal one; when the claimed span crosses
// filing-fact anchors (dates, tax ids, report-year tokens, agent codes) the
// anchor found was the agent's or an officer's, so the claim is declined and
// the cursor left unchanged for the fact scan.
func (p *Parser) extractMailingAddress(tokens []string, start int) (*domain.Address, int) {
	addr, next := p.extractAddress(tokens, start)
	if addr == nil {
		return nil, start
	}
	for _, t := range tokens[start:next] {
		if looksLikeDate(t) || looksLikeEIN(t) || looksLikeFEI9(t) || reportYear(t) != "" || isAgentCode(t) {
			return nil, start
		}
	}
	return addr, next
}

func (p *Parser) isCityToken(t string) bool {
	tu := strings.Trim(strings.ToUpper(t), ",")
	if p.vocab.Addr2Keywords[tu] || p.vocab.StreetSuffixes[tu] {
		return false
	}
	return !containsDigit(t)
}

// splitStreetLines splits the street prefix into address line 1 and an
// optional line 2 at the first continuation keyword. "2ND FLOOR" style
// ordinals split at the token before FLOOR/FL.
func (p *Parser) splitStreetLines(tokens []string) (string, string) {
	if len(tokens) == 0 {
		return "", ""
	}
	upper := make([]string, len(tokens))
	for i, t := range tokens {
		upper[i] = strings.Trim(strings.ToUpper(t), ",")
	}

	split := -1
	for i := 1; i < len(upper); i++ {
		if p.vocab.Addr2Keywords[upper[i]] {
			split = i
			break
		}
		if i+1 < len(upper) && (upper[i+1] == "FLOOR" || upper[i+1] == "FL") {
			split = i
			break
		}
	}
	if split < 0 {
		return strings.Join(tokens, " "), ""
	}
	return strings.Join(tokens[:split], " "), strings.Join(tokens[split:], " ")
}
