package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

type corpRepo struct {
	db *sqlx.DB
}

// NewCorpRepo creates a new PostgreSQL-backed CorpRepository.
func NewCorpRepo(db *sqlx.DB) port.CorpRepository {
	return &corpRepo{db: db}
}

func (r *corpRepo) GetByDoc(ctx context.Context, docNumber string) (*domain.CorpRow, error) {
	var row domain.CorpRow
	err := r.db.GetContext(ctx, &row,
		`SELECT document_number, corp_line, COALESCE(email, '') AS email
		 FROM corpdata
		 WHERE upper(document_number) = upper($1)
		 LIMIT 1`,
		strings.TrimSpace(docNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("corpRepo.GetByDoc: %w", err)
	}
	return &row, nil
}

func (r *corpRepo) SearchLines(ctx context.Context, query string, limit int) ([]domain.CorpRow, error) {
	var rows []domain.CorpRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT document_number, corp_line, COALESCE(email, '') AS email
		 FROM corpdata
		 WHERE corp_line ILIKE '%' || $1 || '%'
		    OR document_number ILIKE '%' || $1 || '%'
		 LIMIT $2`,
		strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("corpRepo.SearchLines: %w: %v", domain.ErrSearchUnavailable, err)
	}
	return rows, nil
}

func (r *corpRepo) BulkUpsert(ctx context.Context, rows []domain.CorpRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("corpRepo.BulkUpsert begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO corpdata (document_number, corp_line, email)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (document_number) DO UPDATE
		 SET corp_line = EXCLUDED.corp_line,
		     email = COALESCE(EXCLUDED.email, corpdata.email)`)
	if err != nil {
		return fmt.Errorf("corpRepo.BulkUpsert prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.DocumentNumber, row.CorpLine, row.Email); err != nil {
			return fmt.Errorf("corpRepo.BulkUpsert %s: %w", row.DocumentNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("corpRepo.BulkUpsert commit: %w", err)
	}
	return nil
}

func (r *corpRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM corpdata"); err != nil {
		return 0, fmt.Errorf("corpRepo.Count: %w", err)
	}
	return total, nil
}
