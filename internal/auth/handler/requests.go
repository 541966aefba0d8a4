package handler

import (
	"strings"

	dErrors "shiptrack/pkg/domain-errors"
)

var errInvalidArgs = dErrors.New(dErrors.CodeBadRequest, "invalid args")

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

func (r *SignupRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Pass == "" {
		return errInvalidArgs
	}
	return nil
}

// SigninRequest is the body of POST /api/auth/signin.
type SigninRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

func (r *SigninRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Email) == "" || r.Pass == "" {
		return errInvalidArgs
	}
	return nil
}
