package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/requestcontext"
	"shiptrack/pkg/testutil"
)

type stubVerifier struct {
	claims *Claims
	err    error
	got    string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (*Claims, error) {
	s.got = token
	return s.claims, s.err
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRequireAuth(t *testing.T) {
	expires := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)

	t.Run("valid token populates the context", func(t *testing.T) {
		verifier := &stubVerifier{claims: &Claims{Name: "Ana", Email: "ana@example.com", TokenID: "jti-1", ExpiresAt: expires}}
		var email, tokenID, raw string
		h := RequireAuth(verifier, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email = requestcontext.UserEmail(r.Context())
			tokenID = requestcontext.TokenID(r.Context())
			raw = requestcontext.RawToken(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer tkn")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		testutil.AssertStatusOK(t, rr)
		assert.Equal(t, "tkn", verifier.got)
		assert.Equal(t, "ana@example.com", email)
		assert.Equal(t, "jti-1", tokenID)
		assert.Equal(t, "tkn", raw)
	})

	tests := []struct {
		name       string
		header     string
		verifier   *stubVerifier
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", &stubVerifier{}, http.StatusUnauthorized, "unauthorized"},
		{"wrong scheme", "Basic abc", &stubVerifier{}, http.StatusUnauthorized, "unauthorized"},
		{"empty bearer", "Bearer  ", &stubVerifier{}, http.StatusUnauthorized, "unauthorized"},
		{"rejected token", "Bearer bad", &stubVerifier{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")}, http.StatusUnauthorized, "unauthorized"},
		{"verifier failure", "Bearer tkn", &stubVerifier{err: errors.New("redis down")}, http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := RequireAuth(tt.verifier, logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			testutil.AssertStatusAndError(t, rr, tt.wantStatus, tt.wantCode)
			assert.False(t, called)
		})
	}
}
