package port

import "context"

// EmailSender delivers prefill links to filers.
type EmailSender interface {
	SendPrefillLinkEmail(ctx context.Context, toEmail, entityName, prefillURL string) error
}
