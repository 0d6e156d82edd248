package config

import (
	"fmt"
	"strings"
	"time"
)

// HTTPConfig configures the public REST server of the demo service.
type HTTPConfig struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	Host              string        `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout       time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	IdleTimeout       time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes    int           `envconfig:"MAX_HEADER_BYTES" default:"524288" validate:"min=1"` // 512KB
}

// Validate performs validation on the HTTPConfig.
func (c *HTTPConfig) Validate() error {
	if err := validatePort(c.Port, "http"); err != nil {
		return err
	}
	if c.Host == "" {
		return fmt.Errorf("http host cannot be empty")
	}
	if strings.TrimSpace(c.Host) != c.Host {
		return fmt.Errorf("http host cannot contain whitespace")
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}
