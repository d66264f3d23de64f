package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"inscription-api/internal/config/configs"
	"inscription-api/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis       configs.Redis       `envPrefix:"REDIS_"`
	Rotation    configs.Rotation    `envPrefix:"ROTATION_"`
	Attribution configs.Attribution `envPrefix:"ATTRIBUTION_"`
	Auth        configs.Auth        `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. The
// given dotenv files (".env" when none are given) are loaded first; missing
// files are ignored and variables already set in the environment win. All
// fields are loaded with their specified defaults when no environment
// variable is provided. The result is validated.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values env.Parse cannot enforce.
func (c Config) Validate() error {
	var errs []error
	switch c.Rotation.Backend {
	case configs.StateBackendPostgres, configs.StateBackendRedis:
	default:
		errs = append(errs, fmt.Errorf("rotation state backend %q: want postgres or redis", c.Rotation.Backend))
	}
	if !domain.RotationPolicy(c.Rotation.Policy).Valid() {
		errs = append(errs, fmt.Errorf("rotation policy %q: want uniform or personalized_first", c.Rotation.Policy))
	}
	if c.Rotation.Key == "" {
		errs = append(errs, errors.New("rotation key must not be empty"))
	}
	if c.Rotation.CASAttempts < 1 {
		errs = append(errs, errors.New("rotation CAS attempts must be at least 1"))
	}
	if c.Rotation.Hold < 0 {
		errs = append(errs, errors.New("rotation hold must not be negative"))
	}
	if c.Rotation.FallbackURL == "" {
		errs = append(errs, errors.New("rotation fallback url must not be empty"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}
