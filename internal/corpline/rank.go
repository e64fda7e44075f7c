package corpline

import (
	"sort"
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// Candidate is one storage row offered to Search: the opaque document
// number and the raw corp line it will be parsed from.
type Candidate struct {
	DocumentNumber string
	CorpLine       string
}

const (
	minSearchLimit = 1
	maxSearchLimit = 50
)

// Search parses every candidate and returns summaries ranked for the given
// query: an exact document-number match first, then entity names prefixed
// by the query, then the rest alphabetically. The result is truncated to
// limit (clamped to 1..50).
func (p *Parser) Search(candidates []Candidate, query string, limit int) []domain.EntitySummary {
	if limit < minSearchLimit {
		limit = minSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	out := make([]domain.EntitySummary, 0, len(candidates))
	for _, c := range candidates {
		rec := p.ParseRecord(c.DocumentNumber, c.CorpLine)
		s := domain.EntitySummary{
			DocumentNumber: rec.DocumentNumber,
			EntityName:     rec.EntityName,
			EntityTypeCode: rec.EntityTypeCode,
		}
		if rec.PrincipalAddress != nil {
			s.PrincipalCity = rec.PrincipalAddress.City
			s.PrincipalState = rec.PrincipalAddress.State
		}
		out = append(out, s)
	}

	qUp := strings.ToUpper(strings.TrimSpace(query))
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rankKey(out[i], qUp), rankKey(out[j], qUp)
		if ri.exactDoc != rj.exactDoc {
			return ri.exactDoc < rj.exactDoc
		}
		if ri.namePrefix != rj.namePrefix {
			return ri.namePrefix < rj.namePrefix
		}
		return ri.name < rj.name
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

type summaryRank struct {
	exactDoc   int
	namePrefix int
	name       string
}

func rankKey(s domain.EntitySummary, queryUpper string) summaryRank {
	r := summaryRank{exactDoc: 1, namePrefix: 1, name: strings.ToUpper(s.EntityName)}
	if strings.ToUpper(s.DocumentNumber) == queryUpper {
		r.exactDoc = 0
	}
	if strings.HasPrefix(r.name, queryUpper) {
		r.namePrefix = 0
	}
	return r
}
