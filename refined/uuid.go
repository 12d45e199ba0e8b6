package refined

import (
	"github.com/google/uuid"

	"github.com/promptwire/elicit/foundation"
)

// UUIDv4 wraps a UUID known to carry version 4 and the RFC 4122 variant.
type UUIDv4 struct{ v uuid.UUID }

// NewUUIDv4 validates the version and variant bits of id.
func NewUUIDv4(id uuid.UUID) (UUIDv4, error) {
	if !foundation.UUIDHasVersion(id, 4) || !foundation.UUIDVariantRFC4122(id) {
		return UUIDv4{}, errf("a version-4 RFC 4122 UUID", "%s (version %d)", id, foundation.UUIDVersion(id))
	}
	return UUIDv4{v: id}, nil
}

// ParseUUIDv4 parses s and routes through NewUUIDv4.
func ParseUUIDv4(s string) (UUIDv4, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUIDv4{}, errf("a UUID in canonical form", "%q", s)
	}
	return NewUUIDv4(id)
}

func (w UUIDv4) Value() uuid.UUID  { return w.v }
func (w UUIDv4) Unwrap() uuid.UUID { return w.v }
func (w UUIDv4) String() string    { return w.v.String() }

// UUIDv7 wraps a UUID known to carry version 7 and the RFC 4122 variant.
type UUIDv7 struct{ v uuid.UUID }

// NewUUIDv7 validates the version and variant bits of id.
func NewUUIDv7(id uuid.UUID) (UUIDv7, error) {
	if !foundation.UUIDHasVersion(id, 7) || !foundation.UUIDVariantRFC4122(id) {
		return UUIDv7{}, errf("a version-7 RFC 4122 UUID", "%s (version %d)", id, foundation.UUIDVersion(id))
	}
	return UUIDv7{v: id}, nil
}

// ParseUUIDv7 parses s and routes through NewUUIDv7.
func ParseUUIDv7(s string) (UUIDv7, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUIDv7{}, errf("a UUID in canonical form", "%q", s)
	}
	return NewUUIDv7(id)
}

func (w UUIDv7) Value() uuid.UUID  { return w.v }
func (w UUIDv7) Unwrap() uuid.UUID { return w.v }
func (w UUIDv7) String() string    { return w.v.String() }

// UUIDNonNil wraps a UUID known to differ from the all-zero UUID. It
// makes no claim about version or variant.
type UUIDNonNil struct{ v uuid.UUID }

// NewUUIDNonNil validates id is not the nil UUID.
func NewUUIDNonNil(id uuid.UUID) (UUIDNonNil, error) {
	if foundation.UUIDNil(id) {
		return UUIDNonNil{}, errf("a non-nil UUID", "00000000-0000-0000-0000-000000000000")
	}
	return UUIDNonNil{v: id}, nil
}

// ParseUUIDNonNil parses s and routes through NewUUIDNonNil.
func ParseUUIDNonNil(s string) (UUIDNonNil, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUIDNonNil{}, errf("a UUID in canonical form", "%q", s)
	}
	return NewUUIDNonNil(id)
}

func (w UUIDNonNil) Value() uuid.UUID  { return w.v }
func (w UUIDNonNil) Unwrap() uuid.UUID { return w.v }
func (w UUIDNonNil) String() string    { return w.v.String() }
