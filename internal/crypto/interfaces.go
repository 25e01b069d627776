package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec is the at-rest transform applied to every serialized account record
// before it is written to the store file, and reversed when the file is read
// back. It is a swappable construction-time dependency: the default
// [NewXORCodec] only prevents casual plaintext inspection, while deployments
// that need real confidentiality can supply [NewAESGCMCodec] or their own
// implementation.
type Codec interface {
	// Encode transforms one plaintext record line into its on-disk form.
	Encode(plain []byte) ([]byte, error)

	// Decode reverses Encode. Returns an error when the input cannot be
	// decoded, e.g. a truncated or corrupted record.
	Decode(encoded []byte) ([]byte, error)
}
