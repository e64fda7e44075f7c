package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendPrefillLinkEmail(ctx context.Context, toEmail, entityName, prefillURL string) error {
	subject := fmt.Sprintf("Annual report renewal for %s", entityName)
	htmlBody := buildPrefillLinkHTML(entityName, prefillURL)
	textBody := fmt.Sprintf(
		"Your annual report for %s is due.\n\nYour renewal form is prefilled and ready here:\n%s\n\nThis link is valid for 30 days and can be used once.\n\nCorporate Form Filing",
		entityName, prefillURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildPrefillLinkHTML(entityName, prefillURL string) string {
	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; color: #333;">
<p>Your annual report for <strong>%s</strong> is due.</p>
<p>Your renewal form is prefilled and ready:</p>
<p><a href="%s" style="background: #0a6847; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Open renewal form</a></p>
<p style="color: #777; font-size: 12px;">This link is valid for 30 days and can be used once.</p>
<p>Corporate Form Filing</p>
</body></html>`, entityName, prefillURL)
}
