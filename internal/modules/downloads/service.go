package downloads

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"nurturebirth/internal/catalog"
	"nurturebirth/internal/domain"
)

const tokenTTL = 24 * time.Hour

// emailPause keeps two sequential sends for one request under the email
// provider's rate limit.
const emailPause = 600 * time.Millisecond

type Service struct {
	mail      DownloadMailer
	presigner Presigner
	verifier  SessionVerifier
	loggerf   func(format string, args ...interface{})

	secret  string
	baseURL string
	sleep   func(time.Duration)
}

func NewService(mail DownloadMailer, presigner Presigner, verifier SessionVerifier, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Service{
		mail:      mail,
		presigner: presigner,
		verifier:  verifier,
		loggerf:   loggerf,
		secret:    os.Getenv("DOWNLOAD_TOKEN_SECRET"),
		baseURL:   baseURL,
		sleep:     time.Sleep,
	}
}

// RequestDownload emails a tokenized link for a free resource. The
// download email is the mandatory step; the welcome email and audience
// add afterwards are best effort.
func (s *Service) RequestDownload(ctx context.Context, email, resourceID string) error {
	res := catalog.ResourceByID(resourceID)
	if res == nil {
		return ErrResourceNotFound
	}
	if !res.Free {
		return ErrResourceNotFree
	}

	token, err := GenerateToken(TokenPayload{
		ResourceID: res.ID,
		Email:      email,
		ExpiresAt:  time.Now().Add(tokenTTL).UnixMilli(),
	}, s.secret)
	if err != nil {
		return fmt.Errorf("generate download token: %w", err)
	}

	link := fmt.Sprintf("%s/api/v1/downloads/%s?token=%s", s.baseURL, url.PathEscape(res.ID), token)
	if err := s.mail.SendDownloadLink(ctx, email, res.Title, link); err != nil {
		return fmt.Errorf("send download email: %w", err)
	}

	s.sleep(emailPause)
	if err := s.mail.SendWelcome(ctx, email); err != nil {
		s.loggerf("level=error msg=welcome email failed email=%s err=%v", email, err)
	}
	if err := s.mail.AddContact(ctx, email); err != nil {
		s.loggerf("level=error msg=audience contact add failed email=%s err=%v", email, err)
	}
	return nil
}

// ResolveDownload authorizes a download request and returns the presigned
// object URL. Free resources take a token, paid ones a completed checkout
// session whose service delivers this resource.
func (s *Service) ResolveDownload(ctx context.Context, resourceID, token, sessionID string) (string, error) {
	res := catalog.ResourceByID(resourceID)
	if res == nil {
		return "", ErrResourceNotFound
	}

	switch {
	case token != "":
		if _, ok := ValidateToken(token, res.ID, s.secret); !ok {
			return "", ErrCredentialInvalid
		}
	case sessionID != "":
		if !s.sessionCoversResource(ctx, sessionID, res) {
			return "", ErrCredentialInvalid
		}
	default:
		return "", ErrCredentialMissing
	}

	link, err := s.presigner.PresignGet(ctx, res.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return link, nil
}

func (s *Service) sessionCoversResource(ctx context.Context, sessionID string, res *domain.Resource) bool {
	order := s.verifier.VerifySession(ctx, sessionID)
	if order == nil || order.Service == nil {
		return false
	}
	return order.Service.ResourceID == res.ID
}
