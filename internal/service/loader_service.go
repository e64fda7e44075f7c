package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/fixedwidth"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

const loadLogEvery = 100000

// LoaderService streams Corporate Data File exports into the corpdata table.
type LoaderService interface {
	// Load reads fixed-width records from r and upserts one row per
	// document. Returns the number of rows written.
	Load(ctx context.Context, r io.Reader) (int, error)
}

type loaderService struct {
	repo      port.CorpRepository
	batchSize int
}

// NewLoaderService creates a new LoaderService implementation.
func NewLoaderService(repo port.CorpRepository, batchSize int) LoaderService {
	if batchSize <= 0 {
		batchSize = 10000
	}
	return &loaderService{repo: repo, batchSize: batchSize}
}

func (s *loaderService) Load(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*fixedwidth.RecordLength), 16*fixedwidth.RecordLength)

	batch := make([]domain.CorpRow, 0, s.batchSize)
	total := 0

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 12 {
			continue
		}

		rec := fixedwidth.ParseRecord(line)
		if rec.DocNumber == "" {
			continue
		}

		// The full line is kept verbatim: the heuristic engine re-derives
		// structure from it when positional slicing is not available.
		batch = append(batch, domain.CorpRow{
			DocumentNumber: rec.DocNumber,
			CorpLine:       strings.TrimRight(line, " \r"),
		})

		if len(batch) >= s.batchSize {
			if err := s.repo.BulkUpsert(ctx, batch); err != nil {
				return total, fmt.Errorf("loader.Load at row %d: %w", total, err)
			}
			total += len(batch)
			batch = batch[:0]
			if total%loadLogEvery == 0 {
				log.Printf("loaded %d rows", total)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("loader.Load scan: %w", err)
	}

	if len(batch) > 0 {
		if err := s.repo.BulkUpsert(ctx, batch); err != nil {
			return total, fmt.Errorf("loader.Load final batch: %w", err)
		}
		total += len(batch)
	}
	return total, nil
}
