package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-keeper/internal/pin"
)

func TestConfigBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.App.MaxWrongAttempts)
	assert.Equal(t, pin.LengthShort, cfg.App.PINLength)
	assert.Equal(t, "1000.00", cfg.App.StartingBalance)
	assert.Equal(t, "sachin_key_v1", cfg.App.ObfuscationKey)
	assert.Equal(t, pin.DefaultBannedPINs, cfg.App.BannedPINs)
	assert.Equal(t, "atm_users.db", cfg.Storage.Files.AccountsFile)
}

// The first source to set a field wins; defaults only fill the gaps.
func TestConfigBuilder_ExplicitSourceBeatsDefaults(t *testing.T) {
	explicit := &StructuredConfig{
		App: App{
			PINLength:      pin.LengthLong,
			ObfuscationKey: "explicit_secret",
		},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, explicit)
	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, pin.LengthLong, cfg.App.PINLength)
	assert.Equal(t, "explicit_secret", cfg.App.ObfuscationKey)

	// Untouched fields come from the defaults.
	assert.Equal(t, 3, cfg.App.MaxWrongAttempts)
	assert.Equal(t, "1000.00", cfg.App.StartingBalance)
}

func TestConfigBuilder_ValidationRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unsupported pin length",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PINLength = 5 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non-decimal starting balance",
			mutate:  func(cfg *StructuredConfig) { cfg.App.StartingBalance = "a lot" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative starting balance",
			mutate:  func(cfg *StructuredConfig) { cfg.App.StartingBalance = "-1.00" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative max attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxWrongAttempts = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty obfuscation key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ObfuscationKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty accounts file",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.AccountsFile = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
