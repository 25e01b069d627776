// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-pin-keeper/internal/crypto"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// recordDelimiter separates the fields of a plaintext record line. Usernames
// are validated at creation time to never contain it.
const recordDelimiter = "|"

// recordFieldCount is the number of fields every record line carries, in
// fixed order: username, pin, balance, wrongAttempts, locked.
const recordFieldCount = 5

// encodeRecord serializes one account into its on-disk form: the plaintext
// line `username|pin|balance|wrongAttempts|locked` with the balance rendered
// to exactly two decimal places and locked rendered as "1"/"0", passed
// through the codec as a whole. The codec is applied to the entire line, not
// per-field.
//
// The file is line-oriented, so an encoded record containing a line
// separator would split on reload and its tail be dropped as malformed.
// XOR-style codecs can produce such bytes from ordinary input (the byte
// pairs depend on the key), so the check has to run on the codec output.
// Returns [ErrRecordNotLineSafe] in that case.
func encodeRecord(account models.Account, codec crypto.Codec) ([]byte, error) {
	locked := "0"
	if account.Locked {
		locked = "1"
	}

	plain := strings.Join([]string{
		account.Username,
		account.PIN,
		account.Balance.StringFixed(2),
		strconv.Itoa(account.WrongAttempts),
		locked,
	}, recordDelimiter)

	encoded, err := codec.Encode([]byte(plain))
	if err != nil {
		return nil, fmt.Errorf("encode record for %q: %w", account.Username, err)
	}

	if bytes.ContainsAny(encoded, "\n\r") {
		return nil, fmt.Errorf("record for %q: %w", account.Username, ErrRecordNotLineSafe)
	}

	return encoded, nil
}

// decodeRecord reverses encodeRecord: the codec is applied first, then the
// plaintext is split on the delimiter in the same fixed field order.
//
// Returns [ErrMalformedRecord] (wrapped with detail) when the codec rejects
// the line, fewer than five fields are present, the balance is not a decimal
// number, or the attempts field is not an integer. Fields past the fifth are
// ignored. The locked field is "1" for locked; any other value is unlocked.
func decodeRecord(line []byte, codec crypto.Codec) (models.Account, error) {
	plain, err := codec.Decode(line)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: codec: %v", ErrMalformedRecord, err)
	}

	fields := strings.Split(string(plain), recordDelimiter)
	if len(fields) < recordFieldCount {
		return models.Account{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), recordFieldCount)
	}

	balance, err := decimal.NewFromString(fields[2])
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: balance %q: %v", ErrMalformedRecord, fields[2], err)
	}

	attempts, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: attempts %q: %v", ErrMalformedRecord, fields[3], err)
	}

	return models.Account{
		Username:      fields[0],
		PIN:           fields[1],
		Balance:       balance,
		WrongAttempts: attempts,
		Locked:        fields[4] == "1",
	}, nil
}
