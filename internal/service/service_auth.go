// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/pin"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// authService is the default implementation of [AuthService]. It drives the
// per-account lockout state machine: Unlocked/NoFailures →
// Unlocked/Failing(n) → Locked, where Locked is terminal — this application
// ships no unlock path, by design.
type authService struct {
	repo        store.AccountRepository
	maxAttempts int
}

// NewAuthService constructs an [AuthService] enforcing a bounded-attempts
// policy of maxAttempts consecutive failures (values below 1 fall back to
// 3, the classic ATM policy).
func NewAuthService(repo store.AccountRepository, maxAttempts int) AuthService {
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	return &authService{
		repo:        repo,
		maxAttempts: maxAttempts,
	}
}

// Authenticate implements [AuthService].
func (s *authService) Authenticate(ctx context.Context, username, candidatePIN string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := s.repo.Get(ctx, username)
	if err != nil {
		return models.Account{}, err
	}

	if account.Locked {
		// Rejected before any comparison: a locked account never consumes
		// attempts and never mutates.
		log.Warn().Str("username", username).Msg("authentication rejected: account locked")
		return models.Account{}, ErrAccountLocked
	}

	if candidatePIN == account.PIN {
		account.WrongAttempts = 0
		if err := s.repo.Update(ctx, account); err != nil {
			return models.Account{}, err
		}
		log.Info().Str("username", username).Msg("authentication successful")
		return account, nil
	}

	account.WrongAttempts++
	if account.WrongAttempts >= s.maxAttempts {
		account.Locked = true
	}

	// Persisted even though the attempt failed, so the lockout state
	// survives a restart between submissions.
	if err := s.repo.Update(ctx, account); err != nil {
		return models.Account{}, err
	}

	remaining := s.maxAttempts - account.WrongAttempts
	if remaining < 0 {
		remaining = 0
	}

	log.Warn().
		Str("username", username).
		Int("wrong_attempts", account.WrongAttempts).
		Bool("locked", account.Locked).
		Msg("authentication failed")

	return models.Account{}, &WrongPINError{AttemptsRemaining: remaining}
}

// ChangePIN implements [AuthService]. Non-digit input is rejected as weak
// before the pattern checks run.
func (s *authService) ChangePIN(ctx context.Context, username, currentPIN, newPIN string) error {
	log := logger.FromContext(ctx)

	account, err := s.Authenticate(ctx, username, currentPIN)
	if err != nil {
		return err
	}

	if len(newPIN) != account.PINLength() {
		return ErrWrongPINLength
	}
	if !isDigits(newPIN) {
		return ErrWeakPIN
	}
	if pin.IsSequential(newPIN) || pin.HasTooManyRepeats(newPIN) {
		return ErrWeakPIN
	}

	account.PIN = newPIN
	account.WrongAttempts = 0
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("pin changed")
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
