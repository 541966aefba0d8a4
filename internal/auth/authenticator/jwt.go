// Package authenticator issues and verifies HS256 access tokens.
package authenticator

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shiptrack/internal/auth/models"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/requestcontext"
)

// Claims is the token body: the user payload plus registered claims.
type Claims struct {
	Payload payloadClaim `json:"payload"`
	jwt.RegisteredClaims
}

type payloadClaim struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JWTAuthenticator signs tokens with a shared secret.
type JWTAuthenticator struct {
	signingKey []byte
	expiresIn  time.Duration
}

func NewJWT(signingKey string, expiresIn time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		signingKey: []byte(signingKey),
		expiresIn:  expiresIn,
	}
}

// Generate issues a token for payload. Expiry is relative to the request time.
func (a *JWTAuthenticator) Generate(ctx context.Context, payload models.Payload) (models.Token, error) {
	now := requestcontext.Now(ctx)
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Payload: payloadClaim{Name: payload.Name, Email: payload.Email},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})

	signed, err := newToken.SignedString(a.signingKey)
	if err != nil {
		return models.Token{}, err
	}
	return models.Token{Token: signed}, nil
}

// Verify checks signature and expiry. Every failure is CodeUnauthorized.
func (a *JWTAuthenticator) Verify(ctx context.Context, token string) (*models.Payload, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return a.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return requestcontext.Now(ctx) }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return &models.Payload{
		Name:      claims.Payload.Name,
		Email:     claims.Payload.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
