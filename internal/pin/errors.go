package pin

import "errors"

// Sentinel errors returned by the PIN generator. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidLength is returned when a PIN of an unsupported length is
	// requested; only 4- and 6-digit PINs are issued.
	ErrInvalidLength = errors.New("pin length must be 4 or 6 digits")

	// ErrRetriesExhausted is returned when the generator hits its retry
	// ceiling without producing an acceptable PIN. In practice this means
	// the banned set has been misconfigured to cover the whole digit space.
	ErrRetriesExhausted = errors.New("pin generation retries exhausted")
)
