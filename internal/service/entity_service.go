package service

import (
	"context"
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

// EntityService defines the registry lookup and search contract.
type EntityService interface {
	// GetByDoc returns the full reconstruction of one entity, or
	// domain.ErrNotFound.
	GetByDoc(ctx context.Context, docNumber string) (*domain.ParsedRecord, error)
	// Search returns ranked summaries for a free-text query.
	Search(ctx context.Context, query string, limit int) ([]domain.EntitySummary, error)
}

type entityService struct {
	repo   port.CorpRepository
	parser *corpline.Parser
}

// NewEntityService creates a new EntityService implementation.
func NewEntityService(repo port.CorpRepository, parser *corpline.Parser) EntityService {
	return &entityService{repo: repo, parser: parser}
}

func (s *entityService) GetByDoc(ctx context.Context, docNumber string) (*domain.ParsedRecord, error) {
	row, err := s.repo.GetByDoc(ctx, docNumber)
	if err != nil {
		return nil, err
	}
	rec := s.parser.ParseRecord(row.DocumentNumber, row.CorpLine)
	rec.Email = strings.TrimSpace(row.Email)
	return rec, nil
}

func (s *entityService) Search(ctx context.Context, query string, limit int) ([]domain.EntitySummary, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, domain.ErrQueryTooShort
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	rows, err := s.repo.SearchLines(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]corpline.Candidate, 0, len(rows))
	for _, r := range rows {
		candidates = append(candidates, corpline.Candidate{
			DocumentNumber: r.DocumentNumber,
			CorpLine:       r.CorpLine,
		})
	}
	return s.parser.Search(candidates, query, limit), nil
}
