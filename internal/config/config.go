// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-pin-keeper/internal/pin"
)

// StructuredConfig is the top-level configuration container for the
// go-pin-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the lockout policy,
	// PIN parameters, and the record obfuscation key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the file-backed account store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the lockout
// policy, PIN issuance, and record obfuscation.
type App struct {
	// MaxWrongAttempts is how many consecutive wrong PIN submissions an
	// account tolerates before it locks permanently.
	// Env: APP_MAX_WRONG_ATTEMPTS
	MaxWrongAttempts int `env:"MAX_WRONG_ATTEMPTS"`

	// PINLength is the digit count for newly issued PINs. Supported
	// values are 4 and 6; the length is fixed per account at creation.
	// Env: APP_PIN_LENGTH
	PINLength int `env:"PIN_LENGTH"`

	// StartingBalance is the opening balance credited to every new
	// account, as a decimal string (e.g. "1000.00").
	// Env: APP_STARTING_BALANCE
	StartingBalance string `env:"STARTING_BALANCE"`

	// ObfuscationKey is the key used to obfuscate account records on
	// disk. Must be kept confidential.
	// Env: APP_OBFUSCATION_KEY
	ObfuscationKey string `env:"OBFUSCATION_KEY"`

	// BannedPINs are well-known weak PINs the generator refuses to issue,
	// comma-separated in the environment variable.
	// Env: APP_BANNED_PINS
	BannedPINs []string `env:"BANNED_PINS" envSeparator:","`

	// GeneratorMaxRetries bounds the PIN generator's reject-and-retry
	// loop.
	// Env: APP_GENERATOR_MAX_RETRIES
	GeneratorMaxRetries int `env:"GENERATOR_MAX_RETRIES"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Files holds the file-system settings for the account store.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the account store.
type Files struct {
	// AccountsFile is the path to the obfuscated account store file. A
	// relative path is resolved against the process working directory.
	// Env: STORAGE_FILES_ACCOUNTS_FILE
	AccountsFile string `env:"ACCOUNTS_FILE"`
}

// defaultConfig returns the built-in fallback values. They reproduce the
// classic ATM policy: three strikes, four-digit PINs, a thousand units of
// starting balance.
func defaultConfig() *StructuredConfig {
	banned := make([]string, len(pin.DefaultBannedPINs))
	copy(banned, pin.DefaultBannedPINs)

	return &StructuredConfig{
		App: App{
			MaxWrongAttempts:    3,
			PINLength:           pin.LengthShort,
			StartingBalance:     "1000.00",
			ObfuscationKey:      "sachin_key_v1",
			BannedPINs:          banned,
			GeneratorMaxRetries: pin.DefaultMaxRetries,
		},
		Storage: Storage{
			Files: Files{
				AccountsFile: "atm_users.db",
			},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in order — environment variables,
// command-line flags, JSON file (path resolved from the first two), then
// built-in defaults — and for every field the first source that sets it
// wins; the defaults only fill what nothing else provided.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
