package configs

// Auth configures the admin gate. Admin requests carry an HS256 JWT signed
// with JWTSecret whose "role" claim equals AdminRole.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	AdminRole string `env:"ADMIN_ROLE" envDefault:"admin"`
}
