package crypto

import (
	"bytes"
	"testing"
)

func TestNewXORCodec_EmptyKey(t *testing.T) {
	if _, err := NewXORCodec(nil); err != ErrEmptyKey {
		t.Fatalf("NewXORCodec(nil) error = %v, want ErrEmptyKey", err)
	}
	if _, err := NewXORCodec([]byte{}); err != ErrEmptyKey {
		t.Fatalf("NewXORCodec(empty) error = %v, want ErrEmptyKey", err)
	}
}

func TestXORCodec_SelfInverse(t *testing.T) {
	codec, err := NewXORCodec([]byte("storage-key-v1"))
	if err != nil {
		t.Fatalf("NewXORCodec error: %v", err)
	}

	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("alice|8392|1000.00|0|0"),
		[]byte("bytes with | delimiters || and unicode é—"),
		bytes.Repeat([]byte{0x00, 0xFF, 0x7C}, 33),
	}

	for _, in := range inputs {
		encoded, err := codec.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}

		decoded, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}

		if !bytes.Equal(decoded, in) {
			t.Fatalf("decode(encode(%q)) = %q, want original", in, decoded)
		}
	}
}

func TestXORCodec_EncodeChangesContent(t *testing.T) {
	codec, err := NewXORCodec([]byte("storage-key-v1"))
	if err != nil {
		t.Fatalf("NewXORCodec error: %v", err)
	}

	plain := []byte("alice|8392|1000.00|0|0")
	encoded, err := codec.Encode(plain)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if bytes.Equal(encoded, plain) {
		t.Fatalf("encoded output equals plaintext; key was not applied")
	}
	if len(encoded) != len(plain) {
		t.Fatalf("encoded length = %d, want %d", len(encoded), len(plain))
	}
}

func TestXORCodec_KeyCopiedAtConstruction(t *testing.T) {
	key := []byte("mutable-key")
	codec, err := NewXORCodec(key)
	if err != nil {
		t.Fatalf("NewXORCodec error: %v", err)
	}

	plain := []byte("record line")
	before, _ := codec.Encode(plain)

	// Mutating the caller's slice must not change the codec output.
	key[0] = 'X'
	after, _ := codec.Encode(plain)

	if !bytes.Equal(before, after) {
		t.Fatalf("codec output changed after caller mutated the key slice")
	}
}

func TestXORCodec_DifferentKeysDiffer(t *testing.T) {
	c1, _ := NewXORCodec([]byte("key-one"))
	c2, _ := NewXORCodec([]byte("key-two"))

	plain := []byte("same plaintext")
	e1, _ := c1.Encode(plain)
	e2, _ := c2.Encode(plain)

	if bytes.Equal(e1, e2) {
		t.Fatalf("different keys produced identical output")
	}
}
