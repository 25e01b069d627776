package crypto

import (
	"bytes"
	"testing"
)

func TestNewAESGCMCodec_EmptyInputs(t *testing.T) {
	if _, err := NewAESGCMCodec("", []byte("salt")); err != ErrEmptyKey {
		t.Fatalf("empty passphrase error = %v, want ErrEmptyKey", err)
	}
	if _, err := NewAESGCMCodec("passphrase", nil); err != ErrEmptyKey {
		t.Fatalf("empty salt error = %v, want ErrEmptyKey", err)
	}
}

func TestAESGCMCodec_RoundTrip(t *testing.T) {
	codec, err := NewAESGCMCodec("correct horse battery staple", []byte("pin-keeper-salt!"))
	if err != nil {
		t.Fatalf("NewAESGCMCodec error: %v", err)
	}

	inputs := [][]byte{
		[]byte(""),
		[]byte("alice|8392|1000.00|0|0"),
		bytes.Repeat([]byte{0x00, 0x0A, 0x7C}, 50),
	}

	for _, in := range inputs {
		encoded, err := codec.Encode(in)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}

		// Output must stay line-oriented: base64 never contains newlines.
		if bytes.ContainsRune(encoded, '\n') {
			t.Fatalf("encoded record contains a newline: %q", encoded)
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

func TestAESGCMCodec_FreshNoncePerRecord(t *testing.T) {
	codec, err := NewAESGCMCodec("passphrase", []byte("pin-keeper-salt!"))
	if err != nil {
		t.Fatalf("NewAESGCMCodec error: %v", err)
	}

	plain := []byte("same record twice")
	e1, _ := codec.Encode(plain)
	e2, _ := codec.Encode(plain)

	if bytes.Equal(e1, e2) {
		t.Fatalf("two encodings of the same record are identical; nonce is not fresh")
	}
}

func TestAESGCMCodec_WrongPassphraseRejected(t *testing.T) {
	salt := []byte("pin-keeper-salt!")
	writer, err := NewAESGCMCodec("original passphrase", salt)
	if err != nil {
		t.Fatalf("NewAESGCMCodec error: %v", err)
	}
	reader, err := NewAESGCMCodec("different passphrase", salt)
	if err != nil {
		t.Fatalf("NewAESGCMCodec error: %v", err)
	}

	encoded, err := writer.Encode([]byte("alice|8392|1000.00|0|0"))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if _, err := reader.Decode(encoded); err == nil {
		t.Fatalf("expected decode with wrong passphrase to fail")
	}
}

func TestAESGCMCodec_CorruptedRecordRejected(t *testing.T) {
	codec, err := NewAESGCMCodec("passphrase", []byte("pin-keeper-salt!"))
	if err != nil {
		t.Fatalf("NewAESGCMCodec error: %v", err)
	}

	if _, err := codec.Decode([]byte("not base64!!")); err == nil {
		t.Fatalf("expected decode of invalid base64 to fail")
	}
	if _, err := codec.Decode([]byte("c2hvcnQ=")); err == nil { // "short"
		t.Fatalf("expected decode of truncated blob to fail")
	}
}
