// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

func TestHumanizeAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no error", err: nil, want: ""},
		{name: "locked account", err: service.ErrAccountLocked, want: "Card retained: account is locked. Contact your branch."},
		{name: "wrong pin with attempts left", err: &service.WrongPINError{AttemptsRemaining: 2}, want: "Wrong PIN. 2 attempt(s) remaining."},
		{name: "wrong pin locking the account", err: &service.WrongPINError{AttemptsRemaining: 0}, want: "Wrong PIN. Account is now locked."},
		{name: "unknown username", err: store.ErrAccountNotFound, want: "Unknown account."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeAuthError(tt.err))
		})
	}
}

// An unknown account gets its own message, distinct from the wrong-PIN
// wording with its attempt counter.
func TestHumanizeAuthError_UnknownAccountDistinctFromWrongPIN(t *testing.T) {
	unknown := humanizeAuthError(store.ErrAccountNotFound)
	wrong := humanizeAuthError(&service.WrongPINError{AttemptsRemaining: 2})

	assert.NotEqual(t, unknown, wrong)
	assert.NotContains(t, unknown, "attempt", "the unknown-account message must not mention attempts")
}
