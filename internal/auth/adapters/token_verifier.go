// Package adapters maps auth use cases onto the interfaces other packages consume.
package adapters

import (
	"context"

	"shiptrack/internal/auth/models"
	authmw "shiptrack/pkg/platform/middleware/auth"
)

// tokenChecker is satisfied by service.IsAuthenticated.
type tokenChecker interface {
	Execute(ctx context.Context, token string) (*models.Payload, error)
}

// TokenVerifier adapts the authentication check to authmw.TokenVerifier.
type TokenVerifier struct {
	checker tokenChecker
}

func NewTokenVerifier(checker tokenChecker) *TokenVerifier {
	return &TokenVerifier{checker: checker}
}

func (a *TokenVerifier) VerifyToken(ctx context.Context, token string) (*authmw.Claims, error) {
	payload, err := a.checker.Execute(ctx, token)
	if err != nil {
		return nil, err
	}
	return toMiddlewareClaims(payload), nil
}

func toMiddlewareClaims(p *models.Payload) *authmw.Claims {
	return &authmw.Claims{
		Name:      p.Name,
		Email:     p.Email,
		TokenID:   p.TokenID,
		ExpiresAt: p.ExpiresAt,
	}
}
