package refined

import (
	"github.com/promptwire/elicit/foundation"
)

// NonEmptyString wraps a string known to be non-empty and, because Go
// strings are arbitrary byte sequences, known to be valid UTF-8.
type NonEmptyString struct{ v string }

// NewNonEmptyString validates len(s) > 0 and well-formed UTF-8.
func NewNonEmptyString(s string) (NonEmptyString, error) {
	if len(s) == 0 {
		return NonEmptyString{}, errf("a non-empty string", "empty string")
	}
	if !foundation.ValidUTF8([]byte(s)) {
		return NonEmptyString{}, errf("valid UTF-8", "%d bytes with a malformed sequence", len(s))
	}
	return NonEmptyString{v: s}, nil
}

// NonEmptyStringFromBytes validates b as non-empty UTF-8 and wraps the
// resulting string. This is the byte-level entry point: callers holding
// raw input route through here instead of converting first and hoping.
func NonEmptyStringFromBytes(b []byte) (NonEmptyString, error) {
	if len(b) == 0 {
		return NonEmptyString{}, errf("a non-empty byte sequence", "empty input")
	}
	if !foundation.ValidUTF8(b) {
		return NonEmptyString{}, errf("valid UTF-8", "%d bytes with a malformed sequence", len(b))
	}
	return NonEmptyString{v: string(b)}, nil
}

// Value returns the validated string.
func (s NonEmptyString) Value() string { return s.v }

// Unwrap returns the inner string; the wrapper is spent.
func (s NonEmptyString) Unwrap() string { return s.v }

func (s NonEmptyString) String() string { return s.v }
