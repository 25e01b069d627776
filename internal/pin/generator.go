// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pin

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// DefaultBannedPINs is the stock list of well-known weak PINs the generator
// refuses to issue. It is a configuration constant: deployments may extend
// it, and the banned-set check applies only during generation, never when a
// user picks a replacement PIN manually.
var DefaultBannedPINs = []string{
	"1234", "0000", "1111", "1212", "7777", "1004", "2000", "4321", "2580",
}

// DefaultMaxRetries bounds the generator's reject-and-retry loop. The digit
// space vastly exceeds the rejection set, so the ceiling only matters when a
// misconfigured banned set covers the entire space; exhausting it fails
// loudly instead of spinning forever.
const DefaultMaxRetries = 10_000

// Generator issues fixed-length digit PINs that are neither sequential, nor
// repeat-heavy, nor members of the banned set.
type Generator struct {
	source     DigitSource
	banned     map[string]struct{}
	maxRetries int
}

// NewGenerator constructs a [Generator] drawing from source and rejecting
// every PIN in banned. A nil source falls back to the crypto/rand-backed
// [NewCryptoDigitSource]; maxRetries values below 1 fall back to
// [DefaultMaxRetries].
func NewGenerator(source DigitSource, banned []string, maxRetries int) *Generator {
	if source == nil {
		source = NewCryptoDigitSource()
	}
	if maxRetries < 1 {
		maxRetries = DefaultMaxRetries
	}

	bannedSet := make(map[string]struct{}, len(banned))
	for _, p := range banned {
		bannedSet[p] = struct{}{}
	}

	return &Generator{
		source:     source,
		banned:     bannedSet,
		maxRetries: maxRetries,
	}
}

// Generate draws independent random digits until a PIN of the requested
// length passes all three rejection rules: not sequential, no heavy digit
// repetition, not in the banned set.
//
// Returns [ErrInvalidLength] when length is neither [LengthShort] nor
// [LengthLong], [ErrRetriesExhausted] when the retry ceiling is hit, or the
// underlying source error when randomness fails.
func (g *Generator) Generate(length int) (string, error) {
	if length != LengthShort && length != LengthLong {
		return "", ErrInvalidLength
	}

	var b strings.Builder
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		b.Reset()
		for i := 0; i < length; i++ {
			d, err := g.source.Digit()
			if err != nil {
				return "", err
			}
			b.WriteByte(d)
		}

		candidate := b.String()
		if IsSequential(candidate) {
			continue
		}
		if HasTooManyRepeats(candidate) {
			continue
		}
		if _, isBanned := g.banned[candidate]; isBanned {
			continue
		}

		return candidate, nil
	}

	return "", ErrRetriesExhausted
}

// Supported PIN lengths, fixed per account at creation time.
const (
	// LengthShort is the default 4-digit PIN length.
	LengthShort = 4
	// LengthLong is the extended 6-digit PIN length.
	LengthLong = 6
)

// cryptoDigitSource draws digits from the OS CSPRNG via crypto/rand.
type cryptoDigitSource struct{}

// NewCryptoDigitSource returns the production [DigitSource] backed by
// crypto/rand. Each call to Digit consumes entropy from the OS.
func NewCryptoDigitSource() DigitSource {
	return cryptoDigitSource{}
}

var ten = big.NewInt(10)

// Digit implements [DigitSource]. Returns an error only if the OS random
// source fails.
func (cryptoDigitSource) Digit() (byte, error) {
	n, err := rand.Int(rand.Reader, ten)
	if err != nil {
		return 0, err
	}
	return byte('0' + n.Int64()), nil
}
