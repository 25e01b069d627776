package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// AuthService defines the contract for PIN authentication and the lockout
// state machine. Every transition that mutates the attempts counter, the
// locked flag, or the PIN itself is persisted through the repository
// unconditionally — including failure paths — so lockout state durably
// survives process restarts.
type AuthService interface {
	// Authenticate checks candidatePIN against the stored account PIN.
	//
	// On success the attempts counter is reset to zero, the account is
	// persisted, and the current record is returned. On a wrong PIN the
	// counter is incremented (locking the account when it reaches the
	// configured maximum), the account is persisted, and a [*WrongPINError]
	// carrying the remaining attempts is returned.
	//
	// A locked account is rejected with [ErrAccountLocked] immediately: no
	// counter mutation and no PIN comparison take place, so attempts against
	// a locked account are never consumed. An unknown username yields
	// [store.ErrAccountNotFound].
	Authenticate(ctx context.Context, username, candidatePIN string) (models.Account, error)

	// ChangePIN replaces the account PIN after re-authenticating with
	// currentPIN; a locked account therefore cannot change its PIN (and a
	// wrong currentPIN consumes an attempt like any other authentication).
	//
	// The new PIN must match the account's fixed length
	// ([ErrWrongPINLength]) and must pass both strength checks — not
	// sequential, not repeat-heavy ([ErrWeakPIN]). The banned-PIN set is NOT
	// re-applied here; it gates generation only. On success the new PIN is
	// stored and the attempts counter resets to zero.
	ChangePIN(ctx context.Context, username, currentPIN, newPIN string) error
}

// AccountService defines account creation and the teller operations. It
// owns the balance invariant (never negative) but delegates all credential
// decisions to [AuthService] — callers are expected to authenticate before
// invoking teller operations.
type AccountService interface {
	// Create registers a new account: the username must be non-empty and
	// free of the record delimiter ([ErrInvalidUsername]) and not taken
	// ([store.ErrAccountAlreadyExists]); a PIN of the requested length (4 or
	// 6) is generated, the starting balance applied, and the record
	// persisted. The returned account carries the generated PIN so the UI
	// can show it once.
	Create(ctx context.Context, username string, pinLength int) (models.Account, error)

	// Withdraw subtracts amount from the account balance. The amount must
	// be positive ([ErrInvalidAmount]) and must not exceed the balance
	// ([ErrInsufficientFunds]).
	Withdraw(ctx context.Context, username string, amount decimal.Decimal) (models.Receipt, error)

	// Deposit adds a positive amount to the account balance.
	Deposit(ctx context.Context, username string, amount decimal.Decimal) (models.Receipt, error)

	// Get returns the current record for username, or
	// [store.ErrAccountNotFound].
	Get(ctx context.Context, username string) (models.Account, error)

	// List returns the PIN-free summary of every account for the
	// administrative listing, ordered by username.
	List(ctx context.Context) ([]models.AccountSummary, error)
}
