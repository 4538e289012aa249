package configs

import "time"

// HTTP defines configuration for the HTTP server. Port specifies which port
// the server will bind to; the timeouts are applied to the underlying
// http.Server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout and WriteTimeout bound a single request/response cycle.
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	// AllowedOrigins lists origins permitted by the CORS middleware.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}
