package configs

import "time"

const (
	StateBackendPostgres = "postgres"
	StateBackendRedis    = "redis"
)

// Rotation configures the link rotation engine.
type Rotation struct {
	// Key is the rotation key of the singleton state record.
	Key string `env:"KEY" envDefault:"current_link_id"`
	// Backend selects where rotation state lives: "postgres" or "redis".
	Backend string `env:"STATE_BACKEND" envDefault:"postgres"`
	// Policy is "uniform" or "personalized_first".
	Policy string `env:"POLICY" envDefault:"uniform"`
	// Hold keeps serving the same link for this long. Zero rotates on
	// every request.
	Hold        time.Duration `env:"HOLD" envDefault:"0s"`
	CASAttempts int           `env:"CAS_ATTEMPTS" envDefault:"3"`
	// FallbackURL is returned with 404 when no link is eligible.
	FallbackURL string `env:"FALLBACK_URL" envDefault:"https://gracedesalpes.com/fallback"`
}
