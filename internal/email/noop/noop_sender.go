package noop

import (
	"context"
	"log"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs prefill URLs to stdout.
func NewNoopSender() port.EmailSender {
	return noopSender{}
}

func (noopSender) SendPrefillLinkEmail(_ context.Context, toEmail, entityName, prefillURL string) error {
	log.Printf("[NOOP EMAIL] Prefill link for %s (%s): %s", entityName, toEmail, prefillURL)
	return nil
}
