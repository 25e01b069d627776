// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

// humanizeAuthError turns service-layer rejections into the messages shown
// on the login form. An unknown username gets its own message and never
// consumes attempts; the attempt counter wording is reserved for wrong PINs
// on accounts that exist.
func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	var wrongPIN *service.WrongPINError
	switch {
	case errors.Is(err, service.ErrAccountLocked):
		return "Card retained: account is locked. Contact your branch."
	case errors.As(err, &wrongPIN):
		if wrongPIN.AttemptsRemaining == 0 {
			return "Wrong PIN. Account is now locked."
		}
		return fmt.Sprintf("Wrong PIN. %d attempt(s) remaining.", wrongPIN.AttemptsRemaining)
	case errors.Is(err, store.ErrAccountNotFound):
		return "Unknown account."
	}

	return err.Error()
}

func humanizeTellerError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return "Amount must be a positive number."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds."
	}

	return err.Error()
}

func humanizeChangePINError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPINLength):
		return "New PIN has the wrong length for this account."
	case errors.Is(err, service.ErrWeakPIN):
		return "New PIN is too weak: digits only, no sequences, no heavy repeats."
	}

	return humanizeAuthError(err)
}
