// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/internal/pin"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping [ErrInvalidAppConfigs] or [ErrInvalidStorageConfigs] otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MaxWrongAttempts < 1 {
		return fmt.Errorf("%w: max wrong attempts must be at least 1", ErrInvalidAppConfigs)
	}

	if cfg.App.PINLength != pin.LengthShort && cfg.App.PINLength != pin.LengthLong {
		return fmt.Errorf("%w: pin length must be %d or %d",
			ErrInvalidAppConfigs, pin.LengthShort, pin.LengthLong)
	}

	balance, err := decimal.NewFromString(cfg.App.StartingBalance)
	if err != nil {
		return fmt.Errorf("%w: starting balance %q is not a decimal",
			ErrInvalidAppConfigs, cfg.App.StartingBalance)
	}
	if balance.IsNegative() {
		return fmt.Errorf("%w: starting balance must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.App.ObfuscationKey == "" {
		return fmt.Errorf("%w: obfuscation key must not be empty", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Files.AccountsFile == "" {
		return fmt.Errorf("%w: accounts file path must not be empty", ErrInvalidStorageConfigs)
	}

	return nil
}
