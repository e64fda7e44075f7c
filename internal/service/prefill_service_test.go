package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/service"
)

type fakeTokenRepo struct {
	byID      map[string]*domain.PrefillToken
	createErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byID: make(map[string]*domain.PrefillToken)}
}

func (f *fakeTokenRepo) Create(ctx context.Context, token *domain.PrefillToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *token
	f.byID[token.ID] = &cp
	return nil
}

func (f *fakeTokenRepo) GetByID(ctx context.Context, id string) (*domain.PrefillToken, error) {
	row, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeTokenRepo) MarkUsed(ctx context.Context, id string) error {
	row, ok := f.byID[id]
	if !ok || row.Used {
		return domain.ErrTokenUsed
	}
	now := time.Now().UTC()
	row.Used = true
	row.UsedAt = &now
	return nil
}

type fakeEmailSender struct {
	sent    []string
	sendErr error
}

func (f *fakeEmailSender) SendPrefillLinkEmail(ctx context.Context, toEmail, entityName, prefillURL string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func prefillFixture(t *testing.T, expiry time.Duration) (service.PrefillService, *fakeTokenRepo, *fakeEmailSender) {
	t.Helper()
	corpRepo := &fakeCorpRepo{rows: map[string]domain.CorpRow{
		"L100": {
			DocumentNumber: "L100",
			CorpLine:       "L100 ACME CORP IDOMP 1 MAIN ST MIAMI FL 33139",
			Email:          "owner@acme.test",
		},
		"L300": {
			DocumentNumber: "L300",
			CorpLine:       "L300 NOMAIL LLC IDOMP",
		},
	}}
	entitySvc := service.NewEntityService(corpRepo, corpline.NewDefault())
	tokens := newFakeTokenRepo()
	emailer := &fakeEmailSender{}
	cfg := config.PrefillConfig{
		Secret:        "test-secret",
		Issuer:        "renewals-test",
		TokenExpiry:   expiry,
		PublicBaseURL: "https://renew.test/form",
	}
	return service.NewPrefillService(tokens, entitySvc, emailer, cfg), tokens, emailer
}

func extractToken(t *testing.T, linkURL string) string {
	t.Helper()
	u, err := url.Parse(linkURL)
	require.NoError(t, err)
	return u.Query().Get("t")
}

func TestPrefillService_IssueLink(t *testing.T) {
	t.Run("issues_signed_link_and_tracking_row", func(t *testing.T) {
		svc, tokens, _ := prefillFixture(t, time.Hour)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)
		assert.Equal(t, "L100", link.DocNumber)
		assert.Equal(t, "ACME CORP", link.EntityName)
		assert.True(t, strings.HasPrefix(link.URL, "https://renew.test/form?t="))
		assert.False(t, link.Emailed)
		assert.Len(t, tokens.byID, 1)
		for _, row := range tokens.byID {
			assert.Equal(t, "L100", row.DocumentNumber)
			assert.False(t, row.Used)
		}
	})

	t.Run("unknown_document", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, time.Hour)
		_, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L999"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("send_email_delivers_to_address_on_file", func(t *testing.T) {
		svc, _, emailer := prefillFixture(t, time.Hour)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100", SendEmail: true})
		require.NoError(t, err)
		assert.True(t, link.Emailed)
		assert.Equal(t, []string{"owner@acme.test"}, emailer.sent)
	})

	t.Run("send_email_without_address_fails", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, time.Hour)
		_, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L300", SendEmail: true})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delivery_failure_is_not_fatal", func(t *testing.T) {
		svc, _, emailer := prefillFixture(t, time.Hour)
		emailer.sendErr = errors.New("smtp down")
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100", SendEmail: true})
		require.NoError(t, err)
		assert.False(t, link.Emailed)
	})
}

func TestPrefillService_Redeem(t *testing.T) {
	t.Run("happy_path_builds_payload", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, time.Hour)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)

		payload, err := svc.Redeem(context.Background(), extractToken(t, link.URL))
		require.NoError(t, err)
		assert.Equal(t, "L100", payload.DocumentNumber)
		assert.Equal(t, "ACME CORP", payload.EntityName)
		assert.Equal(t, "ACME", payload.DisplayName)
		assert.Equal(t, "owner@acme.test", payload.Email)
	})

	t.Run("second_redeem_rejected", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, time.Hour)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)
		token := extractToken(t, link.URL)

		_, err = svc.Redeem(context.Background(), token)
		require.NoError(t, err)
		_, err = svc.Redeem(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrTokenUsed)
	})

	t.Run("garbage_token_invalid", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, time.Hour)
		_, err := svc.Redeem(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("token_signed_with_other_secret_invalid", func(t *testing.T) {
		issuer, _, _ := prefillFixture(t, time.Hour)
		link, err := issuer.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)

		corpRepo := &fakeCorpRepo{rows: map[string]domain.CorpRow{}}
		other := service.NewPrefillService(
			newFakeTokenRepo(),
			service.NewEntityService(corpRepo, corpline.NewDefault()),
			&fakeEmailSender{},
			config.PrefillConfig{Secret: "different-secret", PublicBaseURL: "https://renew.test/form"},
		)
		_, err = other.Redeem(context.Background(), extractToken(t, link.URL))
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired_token_rejected", func(t *testing.T) {
		svc, _, _ := prefillFixture(t, -time.Minute)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)

		_, err = svc.Redeem(context.Background(), extractToken(t, link.URL))
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("unknown_token_id_invalid", func(t *testing.T) {
		svc, tokens, _ := prefillFixture(t, time.Hour)
		link, err := svc.IssueLink(context.Background(), service.IssueLinkInput{DocNumber: "L100"})
		require.NoError(t, err)

		for id := range tokens.byID {
			delete(tokens.byID, id)
		}
		_, err = svc.Redeem(context.Background(), extractToken(t, link.URL))
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestBuildPrefillPayload(t *testing.T) {
	t.Run("best_address_prefers_mailing_with_street", func(t *testing.T) {
		rec := &domain.ParsedRecord{
			DocumentNumber:   "L1",
			EntityName:       "ACME HOLDINGS LLC",
			PrincipalAddress: &domain.Address{Address1: "1 MAIN ST", City: "MIAMI", State: "FL", Zip: "33139"},
			MailingAddress:   &domain.Address{Address1: "PO BOX 9", City: "ORLANDO", State: "FL", Zip: "32801"},
		}
		p := service.BuildPrefillPayload(rec)
		require.NotNil(t, p.BestAddress)
		assert.Equal(t, "PO BOX 9", p.BestAddress.Address1)
		assert.Equal(t, "ORLANDO, FL", p.DisplaySubtitle)
	})

	t.Run("falls_back_to_principal", func(t *testing.T) {
		rec := &domain.ParsedRecord{
			EntityName:       "ACME HOLDINGS LLC",
			PrincipalAddress: &domain.Address{Address1: "1 MAIN ST", City: "MIAMI", State: "FL"},
			MailingAddress:   &domain.Address{City: "ORLANDO", State: "FL"},
		}
		p := service.BuildPrefillPayload(rec)
		require.NotNil(t, p.BestAddress)
		assert.Equal(t, "1 MAIN ST", p.BestAddress.Address1)
		assert.Equal(t, "MIAMI, FL", p.DisplaySubtitle)
	})

	t.Run("display_name_normalized", func(t *testing.T) {
		rec := &domain.ParsedRecord{EntityName: "ACME HOLDINGS LLC"}
		p := service.BuildPrefillPayload(rec)
		assert.Equal(t, "ACME HOLDINGS", p.NormalizedName)
		assert.Equal(t, "ACME HOLDINGS", p.DisplayName)
	})

	t.Run("annual_reports_from_report_dates", func(t *testing.T) {
		rec := &domain.ParsedRecord{
			EntityName:       "ACME LLC",
			AnnualReportYear: "2025",
			ReportDates:      []string{"04042024", "04042025"},
		}
		p := service.BuildPrefillPayload(rec)
		require.Len(t, p.AnnualReports, 2)
		assert.Equal(t, "2025", p.AnnualReports[0].Year)
		assert.Equal(t, "04042024", p.AnnualReports[0].DateRaw)
		assert.Equal(t, "2024-04-04", p.AnnualReports[0].Date)
	})
}

func TestFormatFilingDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"valid", "04042023", "2023-04-04"},
		{"year_end", "12312001", "2001-12-31"},
		{"too_short", "0404202", ""},
		{"too_long", "040420233", ""},
		{"non_digits", "0404202X", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.FormatFilingDate(tc.in))
		})
	}
}
