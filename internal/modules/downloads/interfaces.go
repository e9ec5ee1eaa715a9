package downloads

import (
	"context"

	"nurturebirth/internal/modules/checkout"
)

type DownloadMailer interface {
	SendDownloadLink(ctx context.Context, to, resourceTitle, link string) error
	SendWelcome(ctx context.Context, to string) error
	AddContact(ctx context.Context, email string) error
}

type Presigner interface {
	PresignGet(ctx context.Context, objectKey string) (string, error)
}

// SessionVerifier gates paid resources on a completed checkout session.
type SessionVerifier interface {
	VerifySession(ctx context.Context, sessionID string) *checkout.VerifiedOrder
}
