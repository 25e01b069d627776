package crypto

import "errors"

// ErrEmptyKey is returned by codec constructors when no key material is
// supplied. An empty key would make the XOR transform the identity and the
// AES key derivation trivial, so construction refuses it outright.
var ErrEmptyKey = errors.New("codec key must not be empty")
