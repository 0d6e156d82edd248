package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisConfigEnvValidation(t *testing.T) {
	runLoadCases(t, []loadCase{
		{
			name: "Should accept a valid redis URL",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_REDIS_URL": "redis://localhost:6379/2",
			}),
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.Address())
			},
		},
		{
			name: "Should reject a redis URL with a wrong scheme",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_REDIS_URL": "http://localhost:6379",
			}),
			wantErr: true,
		},
		{
			name: "Should reject a redis URL with an out-of-range database",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_REDIS_URL": "redis://localhost:6379/16",
			}),
			wantErr: true,
		},
		{
			name: "Should reject min idle conns above pool size",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_REDIS_POOL_SIZE":      "2",
				"DBC_REDIS_MIN_IDLE_CONNS": "3",
			}),
			wantErr: true,
		},
		{
			name: "Should require password and TLS in production",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_APP_ENV": "production",
			}),
			wantErr: true,
		},
		{
			name: "Should accept a hardened production configuration",
			envVars: withEnv(redisSinkEnv(), map[string]string{
				"DBC_APP_ENV":           "production",
				"DBC_CONTRACT_MODE":     "raise",
				"DBC_REDIS_PASSWORD":    "RedisSecure123!",
				"DBC_REDIS_TLS_ENABLED": "true",
			}),
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost:6379", cfg.Redis.Address())
			},
		},
	})
}
