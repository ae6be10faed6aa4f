package configs

import "time"

// HTTP defines configuration for the HTTP server. Port selects the TCP port
// to bind; the timeouts are applied to the underlying http.Server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port        uint16        `env:"PORT" envDefault:"8080"`
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	// WriteTimeout must exceed the advisor timeout, evaluations wait for it.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
}
