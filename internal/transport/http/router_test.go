package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"shiptrack/internal/auth/adapters"
	authhandler "shiptrack/internal/auth/handler"
	"shiptrack/internal/auth/authenticator"
	"shiptrack/internal/auth/encrypter"
	authmodels "shiptrack/internal/auth/models"
	authservice "shiptrack/internal/auth/service"
	"shiptrack/internal/auth/store/revocation"
	"shiptrack/internal/auth/store/user"
	"shiptrack/internal/platform/metrics"
	trackinghandler "shiptrack/internal/tracking/handler"
	"shiptrack/internal/tracking/service"
	"shiptrack/internal/tracking/store/port"
	"shiptrack/internal/tracking/store/vessel"
	"shiptrack/pkg/platform/middleware/request"
	"shiptrack/pkg/testutil"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	users := user.NewInMemory()
	revocations := revocation.NewInMemory()
	jwt := authenticator.NewJWT("router-secret", time.Hour)
	bc := encrypter.NewBcrypt(bcrypt.MinCost)
	authH := authhandler.New(authhandler.UseCases{
		Signup:  authservice.NewSignupUser(users, jwt, bc),
		Signin:  authservice.NewSigninUser(users, jwt, bc),
		Signout: authservice.NewSignoutUser(jwt, revocations),
	}, logger)

	ports := port.NewInMemory()
	vessels := vessel.NewInMemory()
	trackingH := trackinghandler.New(
		trackinghandler.PortUseCases{
			Create: service.NewCreatePort(ports),
			Get:    service.NewGetPort(ports),
			List:   service.NewListPorts(ports),
			Delete: service.NewDeletePort(ports),
		},
		trackinghandler.VesselUseCases{
			Create:           service.NewCreateVessel(vessels),
			Get:              service.NewGetVessel(vessels),
			List:             service.NewListVessels(vessels),
			Delete:           service.NewDeleteVessel(vessels),
			Dock:             service.NewDockVessel(vessels),
			Undock:           service.NewUndockVessel(vessels),
			ReplaceNextStops: service.NewReplaceNextStops(vessels),
			Itinerary:        service.NewDescribeItinerary(vessels, ports),
		},
		logger,
	)

	s.router = NewRouter(Options{
		CORSAllowedOrigins: []string{"https://ops.example.com"},
		RequestTimeout:     5 * time.Second,
	}, Deps{
		Logger:   logger,
		Gatherer: reg,
		Metrics:  metrics.New(reg),
		Verifier: adapters.NewTokenVerifier(authservice.NewIsAuthenticated(jwt, revocations)),
		Auth:     authH,
		Tracking: trackingH,
	})
}

func (s *RouterSuite) token() string {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/signup",
		map[string]string{"name": "Ops", "email": "ops@example.com", "pass": "secret-pass"}))
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	return testutil.UnmarshalResponse[authmodels.Token](s.T(), rr).Token
}

func (s *RouterSuite) TestHealth() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/"))
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`{"status":"ok"}`, rr.Body.String())
	s.NotEmpty(rr.Header().Get(request.HeaderRequestID))
}

func (s *RouterSuite) TestUnknownRoute() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/nowhere"))
	s.Equal(http.StatusNotFound, rr.Code)
	s.JSONEq(`{"error":"not_found","error_description":"route not found"}`, rr.Body.String())
}

func (s *RouterSuite) TestTrackingRequiresToken() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/api/ports"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")

	rr = testutil.DoRequest(s.router, testutil.WithBearer(testutil.NewRequest(s.T(), http.MethodGet, "/api/ports"), s.token()))
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`[]`, rr.Body.String())
}

func (s *RouterSuite) TestRejectsNonJSONBody() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/auth/signin", "email=a")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *RouterSuite) TestCORSPreflight() {
	req := testutil.NewRequest(s.T(), http.MethodOptions, "/api/ports")
	req.Header.Set("Origin", "https://ops.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := testutil.DoRequest(s.router, req)

	s.Equal("https://ops.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterSuite) TestMetricsEndpoint() {
	testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(s.T(), rr)
	body := rr.Body.String()
	s.True(strings.Contains(body, "shiptrack_http_requests_total"), body)
	s.True(strings.Contains(body, `route="/"`), body)
}
