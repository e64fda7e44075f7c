// Package corpline reconstructs structured corporate-registry records from
// degraded Sunbiz corp lines: single free-text strings in which the original
// fixed-format field boundaries have been lost. Field boundaries are
// re-inferred from token shape (state+zip pairs, 8-digit dates, role codes)
// rather than position. Parsing is deterministic and total: malformed input
// yields a best-effort record with absent fields left empty, never an error.
package corpline

import (
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// Parser is a corp-line reconstruction engine. It is immutable after
// construction and safe for concurrent use; every ParseRecord call is an
// independent pure computation.
type Parser struct {
	vocab  Vocabulary
	limits Limits
}

// New creates a Parser with the given vocabularies and scan limits.
func New(vocab Vocabulary, limits Limits) *Parser {
	return &Parser{vocab: vocab, limits: limits}
}

// NewDefault creates a Parser tuned for Florida Division of Corporations data.
func NewDefault() *Parser {
	return New(DefaultVocabulary(), DefaultLimits())
}

// ParseRecord reconstructs one record from a document number and its corp
// line. The document number is preserved verbatim (trimmed) regardless of
// how much of the line could be recovered.
func (p *Parser) ParseRecord(documentNumber, corpLine string) *domain.ParsedRecord {
	raw := Normalize(corpLine)
	doc := strings.TrimSpace(documentNumber)

	s := raw
	if doc != "" && strings.HasPrefix(strings.ToUpper(s), strings.ToUpper(doc)) {
		s = strings.TrimSpace(s[len(doc):])
	}

	rec := &domain.ParsedRecord{
		DocumentNumber: doc,
		RawLine:        raw,
	}

	name, typeCode, remainder := p.splitHeader(s)
	rec.EntityName = name
	rec.EntityTypeCode = typeCode

	tokens := Tokenize(remainder)

	var idx int
	rec.PrincipalAddress, idx = p.extractAddress(tokens, 0)
	rec.MailingAddress, idx = p.extractMailingAddress(tokens, idx)

	idx = p.extractFilingFacts(tokens, idx, rec)

	rec.RegisteredAgent, idx = p.extractAgent(tokens, idx)
	rec.Officers = p.extractOfficers(tokens, idx)

	return rec
}

// splitHeader separates the entity name from its filing-type code by the
// earliest whole-token type-code match. When no code is present the first
// 80 characters become the name — a documented lossy fallback, not a parse
// failure.
func (p *Parser) splitHeader(s string) (name, typeCode, remainder string) {
	tokens := strings.Split(s, " ")
	for i, t := range tokens {
		if p.vocab.TypeCodes[t] {
			return strings.TrimSpace(strings.Join(tokens[:i], " ")),
				t,
				strings.TrimSpace(strings.Join(tokens[i+1:], " "))
		}
	}

	cut := s
	if len(cut) > 80 {
		cut = cut[:80]
	}
	name = strings.TrimSpace(cut)
	return name, "", strings.TrimSpace(s[len(name):])
}

// extractFilingFacts claims the filing-fact run that follows the addresses:
// formation date, FEI/EIN, the annual-report year, and the trailing report
// dates. Unrecognized leading tokens are skipped; the scan stops at the
// first token that belongs to the agent or officer sections.
func (p *Parser) extractFilingFacts(tokens []string, start int, rec *domain.ParsedRecord) int {
	j := start

	for j < len(tokens) && !looksLikeDate(tokens[j]) {
		j++
	}
	if j < len(tokens) && looksLikeDate(tokens[j]) {
		rec.FormationDate = tokens[j]
		j++
	}

	if j < len(tokens) && (looksLikeEIN(tokens[j]) || looksLikeFEI9(tokens[j])) {
		rec.FeiEin = tokens[j]
		j++
	}

	// Single-letter status flag (N/Y): consumed, not stored.
	if j < len(tokens) && flagPattern.MatchString(tokens[j]) {
		j++
	}

	// A second date here is the last-transaction date; the renewal form has
	// no field for it, so it is consumed and dropped.
	if j < len(tokens) && looksLikeDate(tokens[j]) {
		j++
	}

	if j < len(tokens) {
		if y := reportYear(tokens[j]); y != "" {
			rec.AnnualReportYear = y
			j++
		}
	}

	for j < len(tokens) {
		t := tokens[j]
		if isAgentCode(t) || p.vocab.RoleCodes[t] {
			break
		}
		if looksLikeDate(t) {
			rec.ReportDates = append(rec.ReportDates, t)
			j++
			continue
		}
		if looksLikeYear(t) {
			j++
			continue
		}
		break
	}
	return j
}
