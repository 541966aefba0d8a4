package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shiptrack/internal/platform/config"
	"shiptrack/internal/platform/httpserver"
	"shiptrack/internal/platform/logger"
	"shiptrack/internal/platform/postgres"
	"shiptrack/internal/tracking/seed"
	httptransport "shiptrack/internal/transport/http"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shiptrack",
		Short:        "Vessel and port tracking API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), seedPortsCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded PostgreSQL schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("DATABASE_URL is required for migrate")
			}
			ctx := cmd.Context()
			db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Database.URL})
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := postgres.Migrate(ctx, db, log)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "migrations complete", "applied", len(applied))
			return nil
		},
	}
}

func seedPortsCmd() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "seed-ports",
		Short: "Create the ports listed in a YAML or JSON catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			entries, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			in, err := openInfra(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer in.Close()
			if in.db == nil {
				log.WarnContext(ctx, "seeding in-memory stores; ports are lost on exit")
			}

			app := buildApplication(cfg, in, log)
			created, err := seed.NewSeeder(app.createPort, log).Run(ctx, entries)
			if err != nil {
				return fmt.Errorf("seeded %d of %d ports: %w", len(created), len(entries), err)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Port catalogue path (required)")
	_ = c.MarkFlagRequired("file")
	return c
}

func bootstrap() (config.Config, *slog.Logger, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger.New(cfg.Log), nil
}

func runServe(parent context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.Close()
	if in.db != nil {
		if _, err := postgres.Migrate(ctx, in.db, log); err != nil {
			return err
		}
	}

	app := buildApplication(cfg, in, log)
	router := httptransport.NewRouter(httptransport.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RequestTimeout:     cfg.Server.RequestTimeout,
	}, httptransport.Deps{
		Logger:   log,
		Gatherer: app.registry,
		Metrics:  app.httpMetrics,
		Verifier: app.verifier,
		Auth:     app.auth,
		Tracking: app.tracking,
	})

	srv := httpserver.New(cfg.Server.Addr(), router)
	log.InfoContext(ctx, "starting shiptrack", "addr", cfg.Server.Addr(), "env", cfg.Env)
	return httpserver.Run(ctx, srv, cfg.Server.ShutdownTimeout, log)
}
