package config

import "time"

// GRPCConfig configures the gRPC server of the demo service.
type GRPCConfig struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Port    string `envconfig:"PORT" default:"9000"`

	// MaxConnectionAge forces clients to reconnect periodically so load rebalances.
	MaxConnectionAge time.Duration `envconfig:"MAX_CONNECTION_AGE" default:"30m" validate:"min=0"`
}

// Validate checks the port only when the server is enabled.
func (c *GRPCConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validatePort(c.Port, "grpc")
}
