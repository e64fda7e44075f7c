package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
	emailnoop "github.com/CorporateFormFiling/Florida-Renewals/internal/email/noop"
	emailses "github.com/CorporateFormFiling/Florida-Renewals/internal/email/ses"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/repository/postgres"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

func main() {
	doc := flag.String("doc", "", "document number to issue a prefill link for")
	send := flag.Bool("send", false, "email the link to the address on file")
	flag.Parse()

	if *doc == "" {
		log.Fatal("usage: prefilllink -doc L23000013604 [-send]")
	}

	if err := run(*doc, *send); err != nil {
		log.Fatal(err)
	}
}

func run(doc string, send bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

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

	corpRepo := postgres.NewCorpRepo(db)
	tokenRepo := postgres.NewPrefillTokenRepo(db)
	entitySvc := service.NewEntityService(corpRepo, corpline.NewDefault())
	prefillSvc := service.NewPrefillService(tokenRepo, entitySvc, emailer, cfg.Prefill)

	link, err := prefillSvc.IssueLink(context.Background(), service.IssueLinkInput{
		DocNumber: doc,
		SendEmail: send,
	})
	if err != nil {
		return fmt.Errorf("failed to issue link: %w", err)
	}

	fmt.Printf("Entity:  %s\n", link.EntityName)
	fmt.Printf("Expires: %s\n", link.ExpiresAt.Format("2006-01-02 15:04 MST"))
	fmt.Printf("Emailed: %v\n", link.Emailed)
	fmt.Printf("URL:     %s\n", link.URL)
	return nil
}
