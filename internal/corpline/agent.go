package corpline

import (
	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// extractAgent recovers the registered agent from the token stream starting
// at start. Two mutually exclusive encodings exist in the data, tried in
// fixed priority order:
//
//	(A) compact code: NAME... C1234567 <address>, where stripping the "C"
//	    leaves the agent's street number;
//	(B) marker: NAME... P <address>, valid only when an address actually
//	    follows the marker.
//
// Returns (nil, start) when neither matches, leaving the cursor for the
// officer scan.
func (p *Parser) extractAgent(tokens []string, start int) (*domain.RegisteredAgent, int) {
	if agent, next, ok := p.extractCompactAgent(tokens, start); ok {
		return agent, next
	}
	if agent, next, ok := p.extractMarkerAgent(tokens, start); ok {
		return agent, next
	}
	return nil, start
}

func (p *Parser) extractCompactAgent(tokens []string, start int) (*domain.RegisteredAgent, int, bool) {
	codeIdx := -1
	for k := start; k < len(tokens); k++ {
		if isAgentCode(tokens[k]) {
			codeIdx = k
			break
		}
	}
	if codeIdx < 0 {
		return nil, start, false
	}

	name := p.agentName(tokens[start:codeIdx])

	// The stream is read-only; rewrite the code token on a copy so the
	// address extractor sees the bare street number.
	addrTokens := make([]string, len(tokens))
	copy(addrTokens, tokens)
	addrTokens[codeIdx] = addrTokens[codeIdx][1:]

	addr, next := p.extractAddress(addrTokens, codeIdx)
	return &domain.RegisteredAgent{Name: name, Address: addr}, next, true
}

func (p *Parser) extractMarkerAgent(tokens []string, start int) (*domain.RegisteredAgent, int, bool) {
	end := start + p.limits.AgentMarkerWindow
	if end > len(tokens) {
		end = len(tokens)
	}
	markerIdx := -1
	for k := start; k < end; k++ {
		if tokens[k] == "P" {
			markerIdx = k
			break
		}
	}
	if markerIdx < 0 {
		return nil, start, false
	}

	// A marker without a following address is noise, not an agent.
	addr, next := p.extractAddress(tokens, markerIdx+1)
	if addr == nil {
		return nil, start, false
	}
	name := p.agentName(tokens[start:markerIdx])
	return &domain.RegisteredAgent{Name: name, Address: addr}, next, true
}
