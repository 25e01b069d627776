// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// aesgcmCodec is the hardened implementation of [Codec] for callers that
// need actual confidentiality rather than obfuscation. The 256-bit key is
// derived from a passphrase and salt with Argon2id; each record is sealed
// with AES-256-GCM under a fresh random nonce and the blob
// (nonce ‖ ciphertext) is Base64-encoded so records stay line-oriented.
//
// Unlike the XOR codec this transform is not self-inverse: Decode verifies
// the GCM authentication tag and rejects records sealed under a different
// passphrase or corrupted on disk.
type aesgcmCodec struct {
	aead cipher.AEAD
}

// Argon2id parameters, matching the OWASP (2024) recommendation:
// 1 iteration, 64 MiB memory, 4 threads, 32-byte key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewAESGCMCodec derives an AES-256 key from passphrase and salt via
// Argon2id and returns a [Codec] sealing records with AES-GCM. The salt is
// not a secret but must be stable across runs, or previously written
// records become undecodable. Returns [ErrEmptyKey] when passphrase or salt
// is empty.
func NewAESGCMCodec(passphrase string, salt []byte) (Codec, error) {
	if passphrase == "" || len(salt) == 0 {
		return nil, ErrEmptyKey
	}

	key := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesgcmCodec{aead: aead}, nil
}

// Encode implements [Codec]. It seals plain under a fresh random nonce and
// returns Base64(nonce ‖ ciphertext). Returns an error if the nonce read
// from the OS CSPRNG fails.
func (c *aesgcmCodec) Encode(plain []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, plain, nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(blob)))
	base64.StdEncoding.Encode(out, blob)
	return out, nil
}

// Decode implements [Codec]. It Base64-decodes the blob, splits out the
// nonce, and opens the ciphertext. An authentication-tag mismatch almost
// always means the passphrase changed between runs.
func (c *aesgcmCodec) Decode(encoded []byte) ([]byte, error) {
	blob := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(blob, encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	blob = blob[:n]

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt record: %w", err)
	}

	return plain, nil
}
