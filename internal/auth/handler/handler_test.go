package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"shiptrack/internal/auth/adapters"
	"shiptrack/internal/auth/authenticator"
	"shiptrack/internal/auth/encrypter"
	"shiptrack/internal/auth/models"
	"shiptrack/internal/auth/service"
	"shiptrack/internal/auth/store/revocation"
	"shiptrack/internal/auth/store/user"
	authmw "shiptrack/pkg/platform/middleware/auth"
	"shiptrack/pkg/testutil"
)

type AuthHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := user.NewInMemory()
	revocations := revocation.NewInMemory()
	jwt := authenticator.NewJWT("test-secret", time.Hour)
	bc := encrypter.NewBcrypt(bcrypt.MinCost)
	opts := []service.Option{service.WithLogger(logger)}

	h := New(UseCases{
		Signup:  service.NewSignupUser(users, jwt, bc, opts...),
		Signin:  service.NewSigninUser(users, jwt, bc, opts...),
		Signout: service.NewSignoutUser(jwt, revocations, opts...),
	}, logger)
	verifier := adapters.NewTokenVerifier(service.NewIsAuthenticated(jwt, revocations))

	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		h.Register(r, authmw.RequireAuth(verifier, logger))
	})
	s.router = r
}

func (s *AuthHandlerSuite) signup(name, email, pass string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/signup",
		map[string]string{"name": name, "email": email, "pass": pass}))
}

func (s *AuthHandlerSuite) bearer(method, path, token string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithBearer(testutil.NewRequest(s.T(), method, path), token))
}

func (s *AuthHandlerSuite) TestSignupSigninAndUser() {
	rr := s.signup("Ana", "ana@example.com", "secret-pass")
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	signup := testutil.UnmarshalResponse[models.Token](s.T(), rr)
	s.NotEmpty(signup.Token)

	rr = testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/signin",
		map[string]string{"email": "ana@example.com", "pass": "secret-pass"}))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	signin := testutil.UnmarshalResponse[models.Token](s.T(), rr)

	rr = s.bearer(http.MethodGet, "/api/auth/user", signin.Token)
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`{"name":"Ana","email":"ana@example.com"}`, rr.Body.String())
}

func (s *AuthHandlerSuite) TestSignup_Rejections() {
	s.Run("missing fields", func() {
		rr := s.signup("", "ana@example.com", "secret-pass")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
		s.Equal("invalid args", testutil.UnmarshalErrorResponse(s.T(), rr)["error_description"])
	})

	s.Run("short pass", func() {
		rr := s.signup("Ana", "ana@example.com", "short")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("existing user", func() {
		testutil.AssertStatus(s.T(), s.signup("Bea", "bea@example.com", "secret-pass"), http.StatusCreated)
		rr := s.signup("Bea", "bea@example.com", "another-pass")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
	})
}

func (s *AuthHandlerSuite) TestSignin_BadCredentials() {
	testutil.AssertStatus(s.T(), s.signup("Ana", "ana@example.com", "secret-pass"), http.StatusCreated)

	for name, body := range map[string]map[string]string{
		"wrong pass":    {"email": "ana@example.com", "pass": "wrong-pass"},
		"unknown email": {"email": "nobody@example.com", "pass": "secret-pass"},
	} {
		s.Run(name, func() {
			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/signin", body))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
			s.Equal("invalid email and/or pass", testutil.UnmarshalErrorResponse(s.T(), rr)["error_description"])
		})
	}
}

func (s *AuthHandlerSuite) TestSignout_RevokesToken() {
	rr := s.signup("Ana", "ana@example.com", "secret-pass")
	token := testutil.UnmarshalResponse[models.Token](s.T(), rr).Token

	testutil.AssertStatus(s.T(), s.bearer(http.MethodPost, "/api/auth/signout", token), http.StatusNoContent)

	rr = s.bearer(http.MethodGet, "/api/auth/user", token)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
}

func (s *AuthHandlerSuite) TestProtectedRoutes_RequireToken() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/auth/user"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")

	rr = s.bearer(http.MethodPost, "/api/auth/signout", "not-a-jwt")
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
}
