package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"shiptrack/internal/auth/adapters"
	"shiptrack/internal/auth/authenticator"
	"shiptrack/internal/auth/encrypter"
	authhandler "shiptrack/internal/auth/handler"
	authservice "shiptrack/internal/auth/service"
	"shiptrack/internal/auth/store/revocation"
	"shiptrack/internal/auth/store/user"
	"shiptrack/internal/platform/config"
	platformmetrics "shiptrack/internal/platform/metrics"
	"shiptrack/internal/platform/postgres"
	platformredis "shiptrack/internal/platform/redis"
	trackinghandler "shiptrack/internal/tracking/handler"
	trackingmetrics "shiptrack/internal/tracking/metrics"
	"shiptrack/internal/tracking/service"
	"shiptrack/internal/tracking/store/port"
	"shiptrack/internal/tracking/store/vessel"
)

// infra holds the process-wide connections. Either may be nil, in which
// case the in-memory stores are used.
type infra struct {
	db    *sql.DB
	redis *platformredis.Client
}

func openInfra(ctx context.Context, cfg config.Config, logger *slog.Logger) (*infra, error) {
	in := &infra{}
	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, postgres.Config{
			URL:             cfg.Database.URL,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		in.db = db
		logger.InfoContext(ctx, "using postgres stores")
	} else {
		logger.WarnContext(ctx, "DATABASE_URL not set, using in-memory stores")
	}

	client, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		_ = in.Close()
		return nil, err
	}
	in.redis = client
	if client == nil {
		logger.WarnContext(ctx, "REDIS_URL not set, using in-memory revocation list")
	}
	return in, nil
}

func (in *infra) Close() error {
	var errs []error
	if in.db != nil {
		errs = append(errs, in.db.Close())
	}
	if in.redis != nil {
		errs = append(errs, in.redis.Close())
	}
	return errors.Join(errs...)
}

type trackingBackend struct {
	ports   service.PortStore
	vessels service.VesselStore
}

func (in *infra) trackingStores() trackingBackend {
	if in.db != nil {
		return trackingBackend{ports: port.NewPostgres(in.db), vessels: vessel.NewPostgres(in.db)}
	}
	return trackingBackend{ports: port.NewInMemory(), vessels: vessel.NewInMemory()}
}

func (in *infra) userStore() authservice.UserStore {
	if in.db != nil {
		return user.NewPostgres(in.db)
	}
	return user.NewInMemory()
}

func (in *infra) revocationList() authservice.RevocationList {
	if in.redis != nil {
		return revocation.NewRedis(in.redis.Client)
	}
	return revocation.NewInMemory()
}

// application is the fully wired set of handlers and instruments.
type application struct {
	registry    *prometheus.Registry
	httpMetrics *platformmetrics.Metrics
	verifier    *adapters.TokenVerifier
	auth        *authhandler.Handler
	tracking    *trackinghandler.Handler
	createPort  *service.CreatePort
}

func buildApplication(cfg config.Config, in *infra, logger *slog.Logger) *application {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	trackingOpts := []service.Option{
		service.WithLogger(logger),
		service.WithMetrics(trackingmetrics.New(registry)),
	}
	stores := in.trackingStores()
	createPort := service.NewCreatePort(stores.ports, trackingOpts...)
	tracking := trackinghandler.New(
		trackinghandler.PortUseCases{
			Create: createPort,
			Get:    service.NewGetPort(stores.ports),
			List:   service.NewListPorts(stores.ports),
			Delete: service.NewDeletePort(stores.ports, trackingOpts...),
		},
		trackinghandler.VesselUseCases{
			Create:           service.NewCreateVessel(stores.vessels, trackingOpts...),
			Get:              service.NewGetVessel(stores.vessels),
			List:             service.NewListVessels(stores.vessels),
			Delete:           service.NewDeleteVessel(stores.vessels, trackingOpts...),
			Dock:             service.NewDockVessel(stores.vessels, trackingOpts...),
			Undock:           service.NewUndockVessel(stores.vessels, trackingOpts...),
			ReplaceNextStops: service.NewReplaceNextStops(stores.vessels, trackingOpts...),
			Itinerary:        service.NewDescribeItinerary(stores.vessels, stores.ports, trackingOpts...),
		},
		logger,
	)

	users := in.userStore()
	revocations := in.revocationList()
	jwt := authenticator.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	hasher := encrypter.NewBcrypt(cfg.Auth.BcryptCost)
	authOpts := []authservice.Option{authservice.WithLogger(logger)}
	auth := authhandler.New(authhandler.UseCases{
		Signup:  authservice.NewSignupUser(users, jwt, hasher, authOpts...),
		Signin:  authservice.NewSigninUser(users, jwt, hasher, authOpts...),
		Signout: authservice.NewSignoutUser(jwt, revocations, authOpts...),
	}, logger)

	return &application{
		registry:    registry,
		httpMetrics: platformmetrics.New(registry),
		verifier:    adapters.NewTokenVerifier(authservice.NewIsAuthenticated(jwt, revocations)),
		auth:        auth,
		tracking:    tracking,
		createPort:  createPort,
	}
}
