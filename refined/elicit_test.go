package refined_test

import (
	"context"
	"errors"
	"testing"

	"github.com/promptwire/elicit/refined"
	"github.com/promptwire/elicit/wire"
	"github.com/promptwire/elicit/wiretest"
)

func TestElicitNonEmptyString(t *testing.T) {
	tr := wiretest.New("hello")
	got, err := refined.ElicitNonEmptyString("say something")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != "hello" {
		t.Fatalf("value %q", got.Value())
	}
	if ops := tr.Ops(); len(ops) != 1 || ops[0] != wire.OpText {
		t.Fatalf("ops %v", ops)
	}
}

func TestElicitRejectionSurfacesValidationError(t *testing.T) {
	tr := wiretest.New("")
	_, err := refined.ElicitNonEmptyString("say something")(context.Background(), tr)
	var verr *refined.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T, want *refined.ValidationError", err)
	}
	// One round-trip happened; the rejection came after, from the
	// constructor, with no automatic re-prompt.
	if tr.CallCount() != 1 {
		t.Fatalf("%d calls issued", tr.CallCount())
	}
}

func TestElicitInRange(t *testing.T) {
	tr := wiretest.New(float64(15))
	got, err := refined.ElicitInRange[int]("pick 10-20", 10, 20)(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != 15 {
		t.Fatalf("value %d", got.Value())
	}

	tr = wiretest.New(float64(25))
	if _, err := refined.ElicitInRange[int]("pick 10-20", 10, 20)(context.Background(), tr); err == nil {
		t.Fatal("out-of-range answer accepted")
	}
}

func TestElicitUUIDv4(t *testing.T) {
	tr := wiretest.New("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	got, err := refined.ElicitUUIDv4("request id")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "f47ac10b-58cc-4372-a567-0e02b2c3d479" {
		t.Fatalf("value %s", got)
	}
}

func TestElicitValidRegex(t *testing.T) {
	tr := wiretest.New(`\d+`)
	got, err := refined.ElicitValidRegex("pattern")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Compiled().MatchString("42") {
		t.Fatal("compiled pattern does not match")
	}
}
