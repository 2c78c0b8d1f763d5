package server

import "time"

// Config holds HTTP server initialization parameters.
type Config struct {
	Addr         string        `json:"addr,omitempty" env:"CHATBOT_HTTP_ADDR"`
	ReadTimeout  time.Duration `json:"read_timeout,omitempty" env:"CHATBOT_HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `json:"write_timeout,omitempty" env:"CHATBOT_HTTP_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `json:"idle_timeout,omitempty" env:"CHATBOT_HTTP_IDLE_TIMEOUT"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}
	if source.ReadTimeout > 0 {
		c.ReadTimeout = source.ReadTimeout
	}
	if source.WriteTimeout > 0 {
		c.WriteTimeout = source.WriteTimeout
	}
	if source.IdleTimeout > 0 {
		c.IdleTimeout = source.IdleTimeout
	}
}
