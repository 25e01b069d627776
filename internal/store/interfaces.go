package store

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

// AccountRepository owns the username → account mapping and its durable
// representation. Implementations materialize the whole store in memory at
// construction and rewrite the backing file in full on every mutation;
// there is no append or partial-update path.
//
// The repository supports exactly one logical actor. It has no locking
// discipline and must not be shared across processes pointed at the same
// backing file.
type AccountRepository interface {
	// Exists reports whether an account with the given username is present.
	Exists(ctx context.Context, username string) bool

	// Add inserts a new account and persists the store. Returns
	// [ErrAccountAlreadyExists] when the username is taken; the store is
	// left untouched in that case.
	Add(ctx context.Context, account models.Account) error

	// Update replaces an existing account record and persists the store.
	// Returns [ErrAccountNotFound] when the username is unknown.
	Update(ctx context.Context, account models.Account) error

	// Get returns the current in-memory record for username, or
	// [ErrAccountNotFound].
	Get(ctx context.Context, username string) (models.Account, error)

	// List returns a snapshot of every account, ordered by username, for
	// administrative display.
	List(ctx context.Context) ([]models.Account, error)
}
