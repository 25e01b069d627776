package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-keeper/internal/crypto"
	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/models"
)

func testCodec(t *testing.T) crypto.Codec {
	t.Helper()
	codec, err := crypto.NewXORCodec([]byte("atm_store_k1"))
	require.NoError(t, err)
	return codec
}

func TestRecord_RoundTrip(t *testing.T) {
	codec := testCodec(t)

	tests := []struct {
		name    string
		account models.Account
	}{
		{
			name: "fresh account",
			account: models.Account{
				Username: "alice",
				PIN:      "8392",
				Balance:  decimal.RequireFromString("1000.00"),
			},
		},
		{
			name: "failing account",
			account: models.Account{
				Username:      "bob",
				PIN:           "493817",
				Balance:       decimal.RequireFromString("0.50"),
				WrongAttempts: 2,
			},
		},
		{
			name: "locked account",
			account: models.Account{
				Username:      "mallory",
				PIN:           "9273",
				Balance:       decimal.Zero,
				WrongAttempts: 3,
				Locked:        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := encodeRecord(tt.account, codec)
			require.NoError(t, err)

			got, err := decodeRecord(line, codec)
			require.NoError(t, err)

			assert.Equal(t, tt.account.Username, got.Username)
			assert.Equal(t, tt.account.PIN, got.PIN)
			assert.True(t, tt.account.Balance.Equal(got.Balance),
				"balance %s != %s", tt.account.Balance, got.Balance)
			assert.Equal(t, tt.account.WrongAttempts, got.WrongAttempts)
			assert.Equal(t, tt.account.Locked, got.Locked)
		})
	}
}

func TestRecord_PlaintextFormat(t *testing.T) {
	codec := testCodec(t)

	account := models.Account{
		Username:      "alice",
		PIN:           "8392",
		Balance:       decimal.RequireFromString("1000"),
		WrongAttempts: 1,
		Locked:        true,
	}

	line, err := encodeRecord(account, codec)
	require.NoError(t, err)

	// Reverse only the codec to inspect the plaintext layout: the balance
	// carries exactly two decimal digits and locked is rendered as "1".
	plain, err := codec.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, "alice|8392|1000.00|1|1", string(plain))
}

func TestRecord_ObfuscationApplied(t *testing.T) {
	codec := testCodec(t)

	account := models.Account{
		Username: "alice",
		PIN:      "8392",
		Balance:  decimal.RequireFromString("1000.00"),
	}

	line, err := encodeRecord(account, codec)
	require.NoError(t, err)

	assert.NotContains(t, string(line), "alice", "username must not appear in cleartext")
	assert.NotContains(t, string(line), "8392", "pin must not appear in cleartext")
}

// A key starting with 's' XORs a leading 'y' in the username to '\n'. Such
// a record would split across lines in the file and be lost on reload, so
// encoding must refuse it.
func TestEncodeRecord_RejectsLineUnsafeOutput(t *testing.T) {
	codec, err := crypto.NewXORCodec([]byte("storage-key-v1"))
	require.NoError(t, err)

	account := models.Account{
		Username: "yoda",
		PIN:      "8392",
		Balance:  decimal.RequireFromString("1000.00"),
	}

	_, err = encodeRecord(account, codec)
	require.ErrorIs(t, err, ErrRecordNotLineSafe)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	codec := testCodec(t)

	encode := func(plain string) []byte {
		line, err := codec.Encode([]byte(plain))
		require.NoError(t, err)
		return line
	}

	tests := []struct {
		name string
		line []byte
	}{
		{name: "too few fields", line: encode("alice|8392|1000.00|0")},
		{name: "single field", line: encode("garbage")},
		{name: "balance not a number", line: encode("alice|8392|lots|0|0")},
		{name: "attempts not an integer", line: encode("alice|8392|1000.00|three|0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRecord(tt.line, codec)
			require.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestDecodeRecord_CodecFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codec := mock.NewMockCodec(ctrl)
	codec.EXPECT().Decode(gomock.Any()).Return(nil, errors.New("authentication tag mismatch"))

	_, err := decodeRecord([]byte("whatever"), codec)
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestDecodeRecord_ExtraFieldsIgnored(t *testing.T) {
	codec := testCodec(t)

	line, err := codec.Encode([]byte("alice|8392|1000.00|0|0|surplus"))
	require.NoError(t, err)

	got, err := decodeRecord(line, codec)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.False(t, got.Locked)
}

func TestDecodeRecord_LockedFlagValues(t *testing.T) {
	codec := testCodec(t)

	for flag, want := range map[string]bool{"1": true, "0": false, "yes": false, "": false} {
		line, err := codec.Encode([]byte("alice|8392|1000.00|0|" + flag))
		require.NoError(t, err)

		got, err := decodeRecord(line, codec)
		require.NoError(t, err)
		assert.Equal(t, want, got.Locked, "locked flag %q", flag)
	}
}
