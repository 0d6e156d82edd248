package config

import (
	"fmt"
	"time"

	"github.com/rafaeljc/dbc/pkg/contract"
)

// Trace sink identifiers accepted by DBC_CONTRACT_SINK.
const (
	SinkLog      = "log"
	SinkStderr   = "stderr"
	SinkRedis    = "redis"
	SinkPostgres = "postgres"
)

// ContractConfig controls how the process-wide checker reports violations.
type ContractConfig struct {
	// Mode is raise, trace or panic. Trace is a debugging aid and is refused in production.
	// When DBC_CONTRACT_MODE is unset the compiled contract.DefaultMode applies.
	Mode contract.Mode `envconfig:"MODE"`

	// Sink selects where trace-mode output goes.
	Sink string `envconfig:"SINK" default:"log" validate:"oneof=log stderr redis postgres"`

	// SinkTimeout bounds each write to a network-backed sink.
	SinkTimeout time.Duration `envconfig:"SINK_TIMEOUT" default:"250ms" validate:"min=1ms"`

	// DedupeWindow suppresses identical trace lines seen within the window. Zero disables it.
	DedupeWindow time.Duration `envconfig:"DEDUPE_WINDOW" default:"0s" validate:"min=0"`

	// DedupeCapacity caps the number of distinct lines remembered for deduplication.
	DedupeCapacity int `envconfig:"DEDUPE_CAPACITY" default:"10000" validate:"min=1"`
}

// Validate checks ContractConfig fields for correctness.
func (c *ContractConfig) Validate(environment string) error {
	if !c.Mode.Valid() {
		return fmt.Errorf("contract mode %d is not supported", int32(c.Mode))
	}
	if environment == EnvironmentProduction && c.Mode == contract.ModeTrace {
		return fmt.Errorf("contract trace mode is intended for development and cannot be used in production")
	}
	return nil
}

// DedupeEnabled reports whether repeated trace lines should be suppressed.
func (c *ContractConfig) DedupeEnabled() bool {
	return c.DedupeWindow > 0
}
