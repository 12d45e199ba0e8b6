package refined

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDv4Wrapper(t *testing.T) {
	id := uuid.New() // always version 4, RFC 4122 variant
	w, err := NewUUIDv4(id)
	if err != nil {
		t.Fatal(err)
	}
	if w.Value() != id {
		t.Fatal("accessor changed the UUID")
	}

	v7, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewUUIDv4(v7); err == nil {
		t.Fatal("version-7 UUID accepted as v4")
	}
	if _, err := NewUUIDv4(uuid.Nil); err == nil {
		t.Fatal("nil UUID accepted as v4")
	}
}

func TestUUIDv7Wrapper(t *testing.T) {
	v7, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewUUIDv7(v7); err != nil {
		t.Fatal(err)
	}
	if _, err := NewUUIDv7(uuid.New()); err == nil {
		t.Fatal("version-4 UUID accepted as v7")
	}
}

func TestUUIDNonNilWrapper(t *testing.T) {
	if _, err := NewUUIDNonNil(uuid.New()); err != nil {
		t.Fatal(err)
	}
	if _, err := NewUUIDNonNil(uuid.Nil); err == nil {
		t.Fatal("nil UUID accepted")
	}
}

func TestParseUUIDRoutesThroughConstructor(t *testing.T) {
	w, err := ParseUUIDv4("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if err != nil {
		t.Fatal(err)
	}
	if w.String() != "f47ac10b-58cc-4372-a567-0e02b2c3d479" {
		t.Fatalf("round-trip %s", w)
	}
	// Well-formed text, wrong version.
	if _, err := ParseUUIDv4("f47ac10b-58cc-1372-a567-0e02b2c3d479"); err == nil {
		t.Fatal("version-1 UUID accepted by ParseUUIDv4")
	}
	if _, err := ParseUUIDv4("not-a-uuid"); err == nil {
		t.Fatal("garbage accepted")
	}
	if _, err := ParseUUIDNonNil("00000000-0000-0000-0000-000000000000"); err == nil {
		t.Fatal("nil UUID text accepted")
	}
}
