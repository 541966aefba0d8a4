package service

import (
	"context"
	"errors"

	"shiptrack/internal/auth/models"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/sentinel"
)

var errBadCredentials = dErrors.New(dErrors.CodeForbidden, "invalid email and/or pass")

// SignupUser registers a new account and returns an access token for it.
type SignupUser struct {
	users         UserStore
	authenticator Authenticator
	encrypter     Encrypter
	deps
}

func NewSignupUser(users UserStore, authenticator Authenticator, encrypter Encrypter, opts ...Option) *SignupUser {
	return &SignupUser{users: users, authenticator: authenticator, encrypter: encrypter, deps: newDeps(opts)}
}

func (uc *SignupUser) Execute(ctx context.Context, name, email, pass string) (models.Token, error) {
	_, err := uc.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.Token{}, dErrors.New(dErrors.CodeConflict, "user already exists")
	case !errors.Is(err, sentinel.ErrNotFound):
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	hash, err := uc.encrypter.Hash(pass)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			return models.Token{}, err
		}
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash pass")
	}

	user, err := models.NewUser(name, email, pass, hash)
	if err != nil {
		return models.Token{}, err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return models.Token{}, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}

	token, err := uc.authenticator.Generate(ctx, models.Payload{Name: user.Name(), Email: user.Email()})
	if err != nil {
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	uc.logAudit(ctx, "user_signed_up", "user_id", user.ID())
	return token, nil
}

// SigninUser exchanges credentials for an access token. Unknown emails and
// wrong passwords fail identically.
type SigninUser struct {
	users         UserStore
	authenticator Authenticator
	encrypter     Encrypter
	deps
}

func NewSigninUser(users UserStore, authenticator Authenticator, encrypter Encrypter, opts ...Option) *SigninUser {
	return &SigninUser{users: users, authenticator: authenticator, encrypter: encrypter, deps: newDeps(opts)}
}

func (uc *SigninUser) Execute(ctx context.Context, email, pass string) (models.Token, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Token{}, errBadCredentials
		}
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	ok, err := uc.encrypter.Compare(pass, user.PassHash())
	if err != nil {
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compare pass")
	}
	if !ok {
		return models.Token{}, errBadCredentials
	}

	token, err := uc.authenticator.Generate(ctx, models.Payload{Name: user.Name(), Email: user.Email()})
	if err != nil {
		return models.Token{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	uc.logAudit(ctx, "user_signed_in", "user_id", user.ID())
	return token, nil
}
