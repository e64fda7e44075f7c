package main

import (
	"fmt"
	"log"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
	emailnoop "github.com/CorporateFormFiling/Florida-Renewals/internal/email/noop"
	emailses "github.com/CorporateFormFiling/Florida-Renewals/internal/email/ses"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/handler"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/repository/postgres"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/router"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	corpRepo := postgres.NewCorpRepo(db)
	tokenRepo := postgres.NewPrefillTokenRepo(db)

	// Initialize email delivery
	var emailer port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailer, err = emailses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailer = emailnoop.NewNoopSender()
	}

	// Initialize the reconstruction engine with configured scan bounds
	parser := corpline.New(corpline.DefaultVocabulary(), corpline.Limits{
		StateZipWindow:       cfg.Parser.StateZipWindow,
		AgentMarkerWindow:    cfg.Parser.AgentMarkerWindow,
		MaxOfficerNameTokens: cfg.Parser.MaxOfficerNameTokens,
		MaxCityTokens:        cfg.Parser.MaxCityTokens,
	})

	// Initialize services
	entitySvc := service.NewEntityService(corpRepo, parser)
	prefillSvc := service.NewPrefillService(tokenRepo, entitySvc, emailer, cfg.Prefill)

	// Initialize handlers
	entityH := handler.NewEntityHandler(entitySvc)
	prefillH := handler.NewPrefillHandler(prefillSvc)
	healthH := handler.NewHealthHandler(db, corpRepo)

	// Setup router
	r := router.Setup(cfg, entityH, prefillH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
