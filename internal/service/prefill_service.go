package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/corpline"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/domain"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/port"
)

// PrefillClaims are the JWT claims carried by a prefill link. The token ID
// doubles as the single-use tracking key in prefill_tokens.
type PrefillClaims struct {
	jwt.RegisteredClaims
	DocNumber string `json:"doc_number"`
}

// IssueLinkInput is the DTO for issuing a prefill link.
type IssueLinkInput struct {
	DocNumber string `json:"doc_number" binding:"required"`
	SendEmail bool   `json:"send_email"`
}

// IssuedLink is the result of issuing a prefill link.
type IssuedLink struct {
	DocNumber  string    `json:"doc_number"`
	EntityName string    `json:"entity_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
	Emailed    bool      `json:"emailed"`
}

// PrefillService issues and redeems single-use renewal prefill links.
type PrefillService interface {
	IssueLink(ctx context.Context, input IssueLinkInput) (*IssuedLink, error)
	Redeem(ctx context.Context, tokenString string) (*domain.PrefillPayload, error)
}

type prefillService struct {
	tokens  port.PrefillTokenRepository
	entity  EntityService
	emailer port.EmailSender
	cfg     config.PrefillConfig
}

// NewPrefillService creates a new PrefillService implementation.
func NewPrefillService(
	tokens port.PrefillTokenRepository,
	entity EntityService,
	emailer port.EmailSender,
	cfg config.PrefillConfig,
) PrefillService {
	return &prefillService{tokens: tokens, entity: entity, emailer: emailer, cfg: cfg}
}

func (s *prefillService) IssueLink(ctx context.Context, input IssueLinkInput) (*IssuedLink, error) {
	rec, err := s.entity.GetByDoc(ctx, input.DocNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.TokenExpiry)
	tokenID := uuid.New().String()

	claims := PrefillClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		DocNumber: rec.DocumentNumber,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("prefill.IssueLink sign: %w", err)
	}

	row := &domain.PrefillToken{
		ID:             tokenID,
		DocumentNumber: rec.DocumentNumber,
		ExpiresAt:      expiresAt,
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return nil, err
	}

	link := &IssuedLink{
		DocNumber:  rec.DocumentNumber,
		EntityName: rec.EntityName,
		URL:        fmt.Sprintf("%s?t=%s", s.cfg.PublicBaseURL, url.QueryEscape(signed)),
		ExpiresAt:  expiresAt,
	}

	if input.SendEmail {
		if rec.Email == "" {
			return nil, fmt.Errorf("prefill.IssueLink: no email on file for %s: %w",
				rec.DocumentNumber, domain.ErrNotFound)
		}
		if err := s.emailer.SendPrefillLinkEmail(ctx, rec.Email, rec.EntityName, link.URL); err != nil {
			// The link is already valid; delivery failure is logged, not fatal.
			log.Printf("prefill link email to %s failed: %v", rec.Email, err)
		} else {
			link.Emailed = true
		}
	}
	return link, nil
}

func (s *prefillService) Redeem(ctx context.Context, tokenString string) (*domain.PrefillPayload, error) {
	claims := &PrefillClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	row, err := s.tokens.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	if row.Used {
		return nil, domain.ErrTokenUsed
	}
	if time.Now().UTC().After(row.ExpiresAt) {
		return nil, domain.ErrTokenExpired
	}

	if err := s.tokens.MarkUsed(ctx, row.ID); err != nil {
		return nil, err
	}

	rec, err := s.entity.GetByDoc(ctx, row.DocumentNumber)
	if err != nil {
		return nil, err
	}
	return BuildPrefillPayload(rec), nil
}

// BuildPrefillPayload projects a ParsedRecord into the form-ready payload:
// display name resolved, best address picked, dates ISO-formatted.
func BuildPrefillPayload(rec *domain.ParsedRecord) *domain.PrefillPayload {
	normalized := corpline.NormalizeBusinessName(rec.EntityName)
	display := normalized
	if display == "" {
		display = rec.EntityName
	}

	p := &domain.PrefillPayload{
		DocumentNumber:   rec.DocumentNumber,
		EntityName:       rec.EntityName,
		NormalizedName:   normalized,
		DisplayName:      display,
		EntityTypeCode:   rec.EntityTypeCode,
		Email:            rec.Email,
		PrincipalAddress: rec.PrincipalAddress,
		MailingAddress:   rec.MailingAddress,
		RegisteredAgent:  rec.RegisteredAgent,
		FormationDateRaw: rec.FormationDate,
		FormationDate:    FormatFilingDate(rec.FormationDate),
		FeiEin:           rec.FeiEin,
		Officers:         rec.Officers,
	}

	p.BestAddress = bestAddress(rec.MailingAddress, rec.PrincipalAddress)
	if p.BestAddress != nil {
		parts := make([]string, 0, 2)
		if p.BestAddress.City != "" {
			parts = append(parts, p.BestAddress.City)
		}
		if p.BestAddress.State != "" {
			parts = append(parts, p.BestAddress.State)
		}
		p.DisplaySubtitle = joinComma(parts)
	}

	for _, d := range rec.ReportDates {
		p.AnnualReports = append(p.AnnualReports, domain.AnnualReport{
			Year:    rec.AnnualReportYear,
			DateRaw: d,
			Date:    FormatFilingDate(d),
		})
	}
	return p
}

// FormatFilingDate converts the registry's MMDDYYYY form to YYYY-MM-DD,
// or "" when the input has another shape.
func FormatFilingDate(s string) string {
	if len(s) != 8 {
		return ""
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return fmt.Sprintf("%s-%s-%s", s[4:8], s[0:2], s[2:4])
}

// bestAddress prefers a mailing address with a street line, falling back to
// the principal address.
func bestAddress(mailing, principal *domain.Address) *domain.Address {
	if mailing != nil && mailing.Address1 != "" {
		return mailing
	}
	if principal != nil {
		return principal
	}
	return mailing
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
