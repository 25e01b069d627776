// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MAX_WRONG_ATTEMPTS":    "5",
		"APP_PIN_LENGTH":            "6",
		"APP_STARTING_BALANCE":      "250.00",
		"APP_OBFUSCATION_KEY":       "env_secret",
		"APP_BANNED_PINS":           "1234,0000,2580",
		"APP_GENERATOR_MAX_RETRIES": "500",

		// Storage has nested prefixes: STORAGE_ + FILES_
		"STORAGE_FILES_ACCOUNTS_FILE": "/var/data/atm_users.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 5, cfg.App.MaxWrongAttempts)
	assert.Equal(t, 6, cfg.App.PINLength)
	assert.Equal(t, "250.00", cfg.App.StartingBalance)
	assert.Equal(t, "env_secret", cfg.App.ObfuscationKey)
	assert.Equal(t, []string{"1234", "0000", "2580"}, cfg.App.BannedPINs)
	assert.Equal(t, 500, cfg.App.GeneratorMaxRetries)

	assert.Equal(t, "/var/data/atm_users.db", cfg.Storage.Files.AccountsFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_OBFUSCATION_KEY":         "env_secret",
		"STORAGE_FILES_ACCOUNTS_FILE": "/var/data/atm_users.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "env_secret", cfg.App.ObfuscationKey)
	assert.Zero(t, cfg.App.MaxWrongAttempts)
	assert.Zero(t, cfg.App.PINLength)
	assert.Empty(t, cfg.App.StartingBalance)
	assert.Empty(t, cfg.App.BannedPINs)

	assert.Equal(t, "/var/data/atm_users.db", cfg.Storage.Files.AccountsFile)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_NoVariables(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_MAX_WRONG_ATTEMPTS": "three",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	assert.Error(t, err)
}

var knownEnvVars = []string{
	"CONFIG",
	"APP_MAX_WRONG_ATTEMPTS",
	"APP_PIN_LENGTH",
	"APP_STARTING_BALANCE",
	"APP_OBFUSCATION_KEY",
	"APP_BANNED_PINS",
	"APP_GENERATOR_MAX_RETRIES",
	"STORAGE_FILES_ACCOUNTS_FILE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		require.NoError(t, os.Unsetenv(k))
	}
}
