package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

type prefillTokenRepo struct {
	db *sqlx.DB
}

// NewPrefillTokenRepo creates a new PostgreSQL-backed PrefillTokenRepository.
func NewPrefillTokenRepo(db *sqlx.DB) port.PrefillTokenRepository {
	return &prefillTokenRepo{db: db}
}

func (r *prefillTokenRepo) Create(ctx context.Context, token *domain.PrefillToken) error {
	token.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prefill_tokens (token_id, doc_number, expires_at, used, created_at)
		 VALUES ($1, $2, $3, FALSE, $4)`,
		token.ID, token.DocumentNumber, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("prefillTokenRepo.Create: %w", err)
	}
	return nil
}

func (r *prefillTokenRepo) GetByID(ctx context.Context, id string) (*domain.PrefillToken, error) {
	var token domain.PrefillToken
	err := r.db.GetContext(ctx, &token,
		`SELECT token_id, doc_number, expires_at, used, used_at, created_at
		 FROM prefill_tokens
		 WHERE token_id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("prefillTokenRepo.GetByID: %w", err)
	}
	return &token, nil
}

func (r *prefillTokenRepo) MarkUsed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE prefill_tokens
		 SET used = TRUE, used_at = $2
		 WHERE token_id = $1 AND used = FALSE`,
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("prefillTokenRepo.MarkUsed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("prefillTokenRepo.MarkUsed rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTokenUsed
	}
	return nil
}
