package configs

import "time"

// Auth holds token signing configuration. JWTSecret must be set in any real
// deployment; the default only exists so local development works out of the
// box.
type Auth struct {
	// JWTSecret signs HS256 access tokens.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// TokenTTL is the access token lifetime. Defaults to 7 days, matching
	// the token expiry the platform has always used.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	// Issuer is stamped into token claims.
	Issuer string `env:"ISSUER" envDefault:"lifted"`
}
