// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the at-rest obfuscation codecs for persisted
// account records: a reversible XOR transform (the on-disk default) and an
// AES-256-GCM alternative for deployments that want real confidentiality.
package crypto

// xorCodec is the default implementation of [Codec]: a byte-wise XOR
// against a fixed repeating key. The transform is self-inverse, so Encode
// and Decode are the same operation.
//
// This is explicitly NOT a security boundary. Anyone who knows the key can
// reverse it, and the key ships in configuration; the codec exists only to
// keep casual eyes off the plaintext record file.
type xorCodec struct {
	key []byte
}

// NewXORCodec constructs the XOR [Codec] with the given key. The key is a
// configuration value injected at construction, never a hard-wired literal.
// Returns [ErrEmptyKey] when key is empty.
func NewXORCodec(key []byte) (Codec, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	// Copy so later mutation of the caller's slice cannot change the codec.
	k := make([]byte, len(key))
	copy(k, key)

	return &xorCodec{key: k}, nil
}

// Encode implements [Codec]: out[i] = in[i] XOR key[i mod len(key)].
func (c *xorCodec) Encode(plain []byte) ([]byte, error) {
	return c.transform(plain), nil
}

// Decode implements [Codec]. XOR with the same key is self-inverse, so
// decoding applies the identical transform again.
func (c *xorCodec) Decode(encoded []byte) ([]byte, error) {
	return c.transform(encoded), nil
}

func (c *xorCodec) transform(in []byte) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ c.key[i%len(c.key)]
	}
	return out
}
