// Package service holds the authentication use cases: signup, signin, token
// verification and signout.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/auth/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/requestcontext"
)

// UserStore persists users. Finders return sentinel.ErrNotFound when absent;
// Save returns sentinel.ErrConflict when the email is already taken.
type UserStore interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
}

// Authenticator issues and verifies access tokens.
type Authenticator interface {
	Generate(ctx context.Context, payload models.Payload) (models.Token, error)
	Verify(ctx context.Context, token string) (*models.Payload, error)
}

// Encrypter hashes passwords and compares them against stored hashes.
type Encrypter interface {
	Hash(value string) (string, error)
	Compare(value, hash string) (bool, error)
}

// RevocationList records signed-out token ids until the token would expire.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Option func(d *deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		d.logger = logger
	}
}

type deps struct {
	logger *slog.Logger
}

func newDeps(opts []Option) deps {
	var d deps
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d deps) logAudit(ctx context.Context, event string, attributes ...any) {
	if d.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	d.logger.InfoContext(ctx, event, args...)
}
