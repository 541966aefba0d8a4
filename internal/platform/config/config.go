// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

// Config is the full process configuration.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Server   Server
	Auth     Auth
	Database Database
	Redis    RedisConfig
	Log      Log
}

// Server captures HTTP server level configuration.
type Server struct {
	Host               string        `env:"APP_HOST" envDefault:"localhost"`
	Port               string        `env:"APP_PORT" envDefault:"4000"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Addr is the listen address.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Auth configures token issuance and password hashing.
type Auth struct {
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"super-secret"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`
}

// Database configures PostgreSQL. An empty URL selects in-memory stores.
type Database struct {
	URL             string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the revocation list backend. An empty URL selects
// the in-memory list.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// FromEnv loads <APP_ENV>.env (outside production) and parses the environment.
// Variables already set in the process win over the file.
func FromEnv() (Config, error) {
	appEnv, _ := env.ParseAs[struct {
		Env string `env:"APP_ENV" envDefault:"development"`
	}]()
	if appEnv.Env != EnvProduction {
		if err := godotenv.Load(appEnv.Env + ".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s.env: %w", appEnv.Env, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.IsProduction() && cfg.Auth.JWTSecret == "super-secret" {
		return Config{}, errors.New("JWT_SECRET must be set in production")
	}
	return cfg, nil
}
