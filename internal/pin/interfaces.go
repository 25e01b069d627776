package pin

//go:generate mockgen -source=interfaces.go -destination=../mock/digit_source_mock.go -package=mock

// DigitSource produces single random decimal digit characters for the PIN
// generator. It is injected at construction instead of being a process-wide
// singleton so that tests can replay a deterministic digit sequence and
// assert the rejection-loop behavior.
type DigitSource interface {
	// Digit returns one digit character in the range '0'..'9', or an error
	// if the underlying randomness source fails.
	Digit() (byte, error)
}
