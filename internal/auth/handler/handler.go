// Package handler exposes signup, signin and token lifecycle endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shiptrack/internal/auth/models"
	"shiptrack/internal/auth/service"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/httputil"
	"shiptrack/pkg/requestcontext"
)

// UseCases groups the auth operations the handler serves.
type UseCases struct {
	Signup  *service.SignupUser
	Signin  *service.SigninUser
	Signout *service.SignoutUser
}

type Handler struct {
	uc     UseCases
	logger *slog.Logger
}

func New(uc UseCases, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// Register mounts the public routes on r and the token-holder routes behind requireAuth.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Post("/signup", h.HandleSignup)
	r.Post("/signin", h.HandleSignin)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/user", h.HandleUser)
		r.Post("/signout", h.HandleSignout)
	})
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SignupRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	token, err := h.uc.Signup.Execute(ctx, req.Name, req.Email, req.Pass)
	if err != nil {
		h.fail(w, r, "signup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, token)
}

func (h *Handler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SigninRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	token, err := h.uc.Signin.Execute(ctx, req.Email, req.Pass)
	if err != nil {
		h.fail(w, r, "signin failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, token)
}

// HandleUser echoes the identity carried by the caller's token.
func (h *Handler) HandleUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	httputil.WriteJSON(w, http.StatusOK, models.Payload{
		Name:  requestcontext.UserName(ctx),
		Email: requestcontext.UserEmail(ctx),
	})
}

func (h *Handler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.uc.Signout.Execute(ctx, requestcontext.RawToken(ctx)); err != nil {
		h.fail(w, r, "signout failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	}
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
