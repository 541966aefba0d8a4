// Package auth guards routes behind a bearer token.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/httputil"
	"shiptrack/pkg/requestcontext"
)

// Claims is what a verified token tells the middleware about its holder.
type Claims struct {
	Name      string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenVerifier validates a raw bearer token, including revocation.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Claims, error)
}

const bearerPrefix = "Bearer "

// RequireAuth rejects requests without a valid bearer token. On success the
// user, token id, expiry and raw token are placed on the request context.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid authorization header"))
				return
			}

			claims, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestID,
					)
				} else {
					logger.ErrorContext(ctx, "failed to verify token",
						"error", err,
						"request_id", requestID,
					)
				}
				httputil.WriteError(w, err)
				return
			}

			ctx = requestcontext.WithUser(ctx, claims.Name, claims.Email)
			ctx = requestcontext.WithToken(ctx, claims.TokenID, claims.ExpiresAt)
			ctx = requestcontext.WithRawToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
