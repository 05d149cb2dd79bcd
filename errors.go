package publicip

import "errors"

// ErrNoRecord indicates a response arrived but held no decodable
// address record: the expected record type was missing, or a TXT
// payload did not parse as an IP address.
var ErrNoRecord = errors.New("no usable address record in response")

// ErrVersionMismatch indicates a provider answered a family-pinned
// lookup with an address of the other family.
var ErrVersionMismatch = errors.New("provider answered with an address of the wrong family")

// ExhaustedError is returned when every configured provider failed.
// Unwrap exposes the per-provider failures for errors.Is and errors.As.
type ExhaustedError struct {
	cause error
}

func (e *ExhaustedError) Error() string {
	if e.cause == nil {
		return "publicip: no provider could be queried"
	}
	return "publicip: every provider failed: " + e.cause.Error()
}

func (e *ExhaustedError) Unwrap() error { return e.cause }
