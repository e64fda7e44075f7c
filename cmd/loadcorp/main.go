package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/repository/postgres"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/storage/s3"
)

func main() {
	source := flag.String("source", "", "data source: a local file path or s3://bucket/key (defaults to LOADER_SOURCE)")
	flag.Parse()

	if err := run(*source); err != nil {
		log.Fatal(err)
	}
}

func run(source string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if source == "" {
		source = cfg.Loader.Source
	}
	if source == "" {
		return fmt.Errorf("no data source given: pass -source or set SUNBIZ_LOADER_SOURCE")
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	reader, err := openSource(ctx, cfg, source)
	if err != nil {
		return err
	}
	defer reader.Close()

	corpRepo := postgres.NewCorpRepo(db)
	loader := service.NewLoaderService(corpRepo, cfg.Loader.BatchSize)

	start := time.Now()
	loaded, err := loader.Load(ctx, reader)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	log.Printf("Loaded %d records from %s in %s", loaded, source, time.Since(start).Round(time.Millisecond))
	return nil
}

func openSource(ctx context.Context, cfg *config.Config, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "s3://") {
		bucket, key, err := splitS3URI(source)
		if err != nil {
			return nil, err
		}
		client, err := s3.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		return client.Open(ctx, bucket, key)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	return f, nil
}

func splitS3URI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q: want s3://bucket/key", uri)
	}
	return parts[0], parts[1], nil
}
