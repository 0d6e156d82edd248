package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaeljc/dbc/pkg/contract"
)

func TestContractConfigEnvValidation(t *testing.T) {
	runLoadCases(t, []loadCase{
		{
			name:    "Should parse the mode case-insensitively",
			envVars: map[string]string{"DBC_CONTRACT_MODE": "PANIC"},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, contract.ModePanic, cfg.Contract.Mode)
			},
		},
		{
			name:    "Should reject an unknown mode",
			envVars: map[string]string{"DBC_CONTRACT_MODE": "assertions"},
			wantErr: true,
		},
		{
			name:    "Should reject an unknown sink",
			envVars: map[string]string{"DBC_CONTRACT_SINK": "eventlog"},
			wantErr: true,
		},
		{
			name:    "Should reject a negative dedupe window",
			envVars: map[string]string{"DBC_CONTRACT_DEDUPE_WINDOW": "-1s"},
			wantErr: true,
		},
		{
			name: "Should refuse trace mode in production",
			envVars: map[string]string{
				"DBC_APP_ENV":       "production",
				"DBC_CONTRACT_MODE": "trace",
			},
			wantErr: true,
		},
		{
			name: "Should allow raise mode in production",
			envVars: map[string]string{
				"DBC_APP_ENV":       "production",
				"DBC_CONTRACT_MODE": "raise",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, contract.ModeRaise, cfg.Contract.Mode)
			},
		},
		{
			name:    "Should require redis settings when the redis sink is selected",
			envVars: map[string]string{"DBC_CONTRACT_SINK": "redis"},
			wantErr: true,
		},
		{
			name:    "Should accept the redis sink with connection settings",
			envVars: redisSinkEnv(),
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, SinkRedis, cfg.Contract.Sink)
				assert.Equal(t, "dbc:traces", cfg.Redis.TraceKey)
				assert.Equal(t, int64(10000), cfg.Redis.TraceMaxLen)
			},
		},
		{
			name:    "Should require database settings when the postgres sink is selected",
			envVars: map[string]string{"DBC_CONTRACT_SINK": "postgres"},
			wantErr: true,
		},
		{
			name:    "Should accept the postgres sink with connection settings",
			envVars: postgresSinkEnv(),
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, SinkPostgres, cfg.Contract.Sink)
				assert.True(t, cfg.Database.IsConfigured())
			},
		},
	})
}

func TestContractConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := ContractConfig{Mode: contract.Mode(9)}
	assert.Error(t, cfg.Validate("development"))
}
