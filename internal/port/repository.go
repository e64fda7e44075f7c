package port

import (
	"context"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
)

// CorpRepository supplies raw registry rows. The core engine never talks to
// storage directly; this is the upstream collaborator contract.
type CorpRepository interface {
	// GetByDoc returns the row whose document number matches exactly
	// (case-insensitive), or domain.ErrNotFound.
	GetByDoc(ctx context.Context, docNumber string) (*domain.CorpRow, error)
	// SearchLines returns up to limit rows whose document number or corp
	// line contains the query as a substring (case-insensitive).
	SearchLines(ctx context.Context, query string, limit int) ([]domain.CorpRow, error)
	// BulkUpsert inserts or replaces rows by document number.
	BulkUpsert(ctx context.Context, rows []domain.CorpRow) error
	// Count returns the total number of stored rows.
	Count(ctx context.Context) (int, error)
}

// PrefillTokenRepository tracks single-use prefill links.
type PrefillTokenRepository interface {
	Create(ctx context.Context, token *domain.PrefillToken) error
	// GetByID returns the token row, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.PrefillToken, error)
	// MarkUsed flips the used flag; returns domain.ErrTokenUsed when the
	// token was already redeemed.
	MarkUsed(ctx context.Context, id string) error
}
