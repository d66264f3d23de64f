package configs

// Redis configures the optional Redis rotation state backend. It is only
// dialled when Rotation.Backend is "redis".
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every key written by the service.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"inscription:"`
}
