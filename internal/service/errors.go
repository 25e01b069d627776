package service

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. All of them are
// recoverable rejections returned to the caller; no service operation may
// terminate the process.
var (
	// ErrWrongPIN is the match target for failed PIN comparisons. The
	// concrete error carrying the remaining attempts is [*WrongPINError].
	ErrWrongPIN = errors.New("wrong pin")

	// ErrAccountLocked is returned for any authentication against a locked
	// account. The attempt does not mutate state and is not consumed.
	ErrAccountLocked = errors.New("account is locked")

	// ErrWeakPIN is returned when a manually chosen replacement PIN is
	// sequential, repeat-heavy, or not purely numeric.
	ErrWeakPIN = errors.New("pin is too weak")

	// ErrWrongPINLength is returned when a replacement PIN does not match
	// the length fixed for the account at creation time.
	ErrWrongPINLength = errors.New("pin has the wrong length")

	// ErrInvalidUsername is returned when a username is empty or contains
	// characters the record format cannot carry.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidAmount is returned when a teller operation is requested
	// with a zero or negative amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// current account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// WrongPINError reports a failed PIN comparison together with the number of
// attempts left before the account locks. It unwraps to [ErrWrongPIN] so
// callers can match it with [errors.Is] without inspecting the count.
type WrongPINError struct {
	// AttemptsRemaining is how many more wrong submissions the account
	// tolerates before locking; zero means this failure locked it.
	AttemptsRemaining int
}

// Error implements the error interface.
func (e *WrongPINError) Error() string {
	return fmt.Sprintf("wrong pin: %d attempts remaining", e.AttemptsRemaining)
}

// Unwrap makes errors.Is(err, ErrWrongPIN) match.
func (e *WrongPINError) Unwrap() error {
	return ErrWrongPIN
}
