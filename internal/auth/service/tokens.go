package service

import (
	"context"

	"shiptrack/internal/auth/models"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/requestcontext"
)

// IsAuthenticated verifies a token and rejects signed-out ones.
type IsAuthenticated struct {
	authenticator Authenticator
	revocations   RevocationList
}

func NewIsAuthenticated(authenticator Authenticator, revocations RevocationList) *IsAuthenticated {
	return &IsAuthenticated{authenticator: authenticator, revocations: revocations}
}

func (uc *IsAuthenticated) Execute(ctx context.Context, token string) (*models.Payload, error) {
	if token == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "empty token")
	}
	payload, err := uc.authenticator.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	revoked, err := uc.revocations.IsRevoked(ctx, payload.TokenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check token revocation")
	}
	if revoked {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has been revoked")
	}
	return payload, nil
}

// SignoutUser revokes a token for the rest of its lifetime.
type SignoutUser struct {
	authenticator Authenticator
	revocations   RevocationList
	deps
}

func NewSignoutUser(authenticator Authenticator, revocations RevocationList, opts ...Option) *SignoutUser {
	return &SignoutUser{authenticator: authenticator, revocations: revocations, deps: newDeps(opts)}
}

func (uc *SignoutUser) Execute(ctx context.Context, token string) error {
	payload, err := uc.authenticator.Verify(ctx, token)
	if err != nil {
		return err
	}

	ttl := payload.ExpiresAt.Sub(requestcontext.Now(ctx))
	if ttl <= 0 {
		return nil
	}
	if err := uc.revocations.Revoke(ctx, payload.TokenID, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}

	uc.logAudit(ctx, "user_signed_out", "token_id", payload.TokenID)
	return nil
}
