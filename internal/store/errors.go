package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an attempt to add a new
	// account fails because the username is already present in the store.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when a lookup or update targets a
	// username that is not present in the store.
	ErrAccountNotFound = errors.New("account not found")

	// ErrMalformedRecord is returned when a persisted record line cannot be
	// decoded: the codec rejects it, fields are missing, or numeric fields
	// fail to parse. During bulk load such lines are skipped individually;
	// one bad record never aborts loading the rest of the store.
	ErrMalformedRecord = errors.New("malformed account record")

	// ErrRecordNotLineSafe is returned when the codec's output for a record
	// contains a line separator. Writing such a record would split across
	// lines in the file and be discarded as malformed on the next load, so
	// the mutation is rejected up front instead of losing the account.
	ErrRecordNotLineSafe = errors.New("encoded record is not line-safe")
)
