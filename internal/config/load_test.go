package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

const testSecret = "thisisasecretkeythatis32charslong!!"

// TestLoadDefaults verifies that the Load function sets the expected default
// values when only the required settings come from the environment.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"GOOP_AUTH_JWT_SECRET": testSecret,
		// Explicitly unset the ones we want to test defaults for
		"GOOP_SERVER_PORT":                 "",
		"GOOP_SERVER_LOG_LEVEL":            "",
		"GOOP_AUTH_TOKEN_LIFETIME_MINUTES": "",
		"GOOP_STORE_SEED_DEMO_DATA":        "",
	})
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err, "Load should succeed with defaults")
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port, "Default port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be info")
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes, "Default token lifetime should be 60 minutes")
	assert.True(t, cfg.Store.SeedDemoData, "Demo data should be seeded by default")
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

// TestLoadFromEnvironment verifies that environment variables override the
// built-in defaults.
func TestLoadFromEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"GOOP_SERVER_PORT":                 "9090",
		"GOOP_SERVER_LOG_LEVEL":            "debug",
		"GOOP_AUTH_JWT_SECRET":             testSecret,
		"GOOP_AUTH_TOKEN_LIFETIME_MINUTES": "120",
		"GOOP_STORE_SEED_DEMO_DATA":        "false",
	})
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 120, cfg.Auth.TokenLifetimeMinutes)
	assert.False(t, cfg.Store.SeedDemoData)
}

// TestLoadValidation verifies that invalid configurations are rejected
// with a validation error.
func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "missing jwt secret",
			envVars: map[string]string{
				"GOOP_AUTH_JWT_SECRET": "",
			},
		},
		{
			name: "jwt secret too short",
			envVars: map[string]string{
				"GOOP_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"GOOP_AUTH_JWT_SECRET": testSecret,
				"GOOP_SERVER_PORT":     "70000",
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"GOOP_AUTH_JWT_SECRET":  testSecret,
				"GOOP_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "non-positive token lifetime",
			envVars: map[string]string{
				"GOOP_AUTH_JWT_SECRET":             testSecret,
				"GOOP_AUTH_TOKEN_LIFETIME_MINUTES": "-5",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()
			require.Error(t, err, "Load should fail for %s", tc.name)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validation")
		})
	}
}
