package server

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string `validate:"required"`
	Port int    `validate:"required,min=1,max=65535"`

	ReadTimeout  time.Duration `validate:"min=0"`
	WriteTimeout time.Duration `validate:"min=0"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `validate:"min=0"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8080,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	return nil
}
