// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Account represents one bank account entity: its identity, its numeric
// access code, and its lockout state. It is the durable unit of the record
// store — every field below is persisted through the record codec.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// Username is the unique account identifier. It is non-empty and must
	// not contain the record delimiter character ('|').
	Username string `json:"username"`

	// PIN is the fixed-length digit access code. The length (4 or 6) is
	// chosen at creation time and never changes for the lifetime of the
	// account. Held in cleartext only in memory; on disk it exists only
	// inside the obfuscated record line. Never exposed via JSON.
	PIN string `json:"-"`

	// Balance is the current account balance. It is never negative; the
	// teller service rejects withdrawals that would overdraw it.
	Balance decimal.Decimal `json:"balance"`

	// WrongAttempts counts consecutive failed authentications since the
	// last success or PIN change.
	WrongAttempts int `json:"wrong_attempts"`

	// Locked marks an account that exhausted its authentication attempts.
	// Once set, every authentication is rejected; no unlock path exists in
	// this application.
	Locked bool `json:"locked"`
}

// PINLength returns the fixed PIN length chosen for this account at
// creation time. A replacement PIN must have exactly this length.
func (a Account) PINLength() int {
	return len(a.PIN)
}

// Summary strips the credential fields and returns the read-only view used
// by the administrative listing.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		Username: a.Username,
		Balance:  a.Balance,
		Locked:   a.Locked,
	}
}

// AccountSummary is the PIN-free projection of an [Account] shown on the
// administrative listing screen.
type AccountSummary struct {
	// Username is the unique account identifier.
	Username string `json:"username"`

	// Balance is the current account balance.
	Balance decimal.Decimal `json:"balance"`

	// Locked reports whether the account is locked out.
	Locked bool `json:"locked"`
}
