package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/auth/models"
	dErrors "shiptrack/pkg/domain-errors"
)

type checkerFunc func(ctx context.Context, token string) (*models.Payload, error)

func (f checkerFunc) Execute(ctx context.Context, token string) (*models.Payload, error) {
	return f(ctx, token)
}

func TestTokenVerifier_MapsPayload(t *testing.T) {
	exp := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	v := NewTokenVerifier(checkerFunc(func(_ context.Context, token string) (*models.Payload, error) {
		assert.Equal(t, "tok", token)
		return &models.Payload{Name: "Ana", Email: "ana@example.com", TokenID: "jti-1", ExpiresAt: exp}, nil
	}))

	claims, err := v.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "jti-1", claims.TokenID)
	assert.Equal(t, exp, claims.ExpiresAt)
}

func TestTokenVerifier_PropagatesError(t *testing.T) {
	v := NewTokenVerifier(checkerFunc(func(context.Context, string) (*models.Payload, error) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has been revoked")
	}))

	claims, err := v.VerifyToken(context.Background(), "tok")
	assert.Nil(t, claims)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
