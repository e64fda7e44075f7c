package corpline

import (
	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// extractOfficers scans the remaining stream for officer records. Outside a
// record the scan advances one token at a time until it hits a role code;
// on a hit it consumes the role, an optional "P" marker, a bounded run of
// name tokens, and then attempts an address. Every path advances the
// cursor, so the loop terminates even on pathological input. There is no
// cap on the number of officers — the 6-slot limit belongs to the
// fixed-offset file format, not to this engine.
func (p *Parser) extractOfficers(tokens []string, start int) []domain.Officer {
	var officers []domain.Officer
	i := start
	for i < len(tokens) {
		if !p.vocab.RoleCodes[tokens[i]] {
			i++
			continue
		}

		role := tokens[i]
		i++
		if i < len(tokens) && tokens[i] == "P" {
			i++
		}

		var nameParts []string
		for i < len(tokens) {
			t := tokens[i]
			if p.vocab.RoleCodes[t] || isAgentCode(t) {
				break
			}
			if looksLikeDate(t) || looksLikeYear(t) || looksLikeEIN(t) || looksLikeFEI9(t) {
				break
			}
			// Let a trailing street number fall through to address
			// parsing instead of swallowing it as a name token.
			if looksLikeStreetNumber(t) {
				break
			}
			nameParts = append(nameParts, unglueNameToken(t))
			i++
			if len(nameParts) >= p.limits.MaxOfficerNameTokens {
				break
			}
		}

		name := ""
		if len(nameParts) > 0 {
			name = flipNameTokens(nameParts)
		}

		var addr *domain.Address
		if i < len(tokens) && looksLikeStreetNumber(tokens[i]) {
			addr, i = p.extractAddress(tokens, i)
		} else if tryAddr, next := p.extractAddress(tokens, i); tryAddr != nil {
			addr = tryAddr
			i = next
		}

		officers = append(officers, domain.Officer{Role: role, Name: name, Address: addr})
	}
	return officers
}
