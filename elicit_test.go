package elicit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/promptwire/elicit"
	"github.com/promptwire/elicit/wire"
	"github.com/promptwire/elicit/wiretest"
)

func TestBool(t *testing.T) {
	tr := wiretest.New(true)
	got, err := elicit.Bool("continue?")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("expected true")
	}
	calls := tr.Calls()
	if len(calls) != 1 || calls[0].Op != wire.OpBool {
		t.Fatalf("calls %v", calls)
	}
	if calls[0].Params[wire.KeyQuestion] != "continue?" {
		t.Fatalf("question param %v", calls[0].Params)
	}
}

func TestBoolFormatMismatch(t *testing.T) {
	tr := wiretest.New("yes") // a string is not a boolean
	_, err := elicit.Bool("continue?")(context.Background(), tr)
	var ferr *elicit.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %T, want *FormatError", err)
	}
	if ferr.Expected != "boolean" {
		t.Fatalf("expected field %q", ferr.Expected)
	}
}

func TestTextMissingValueField(t *testing.T) {
	tr := wiretest.New(wiretest.Raw{"unrelated": 1})
	_, err := elicit.Text("name?")(context.Background(), tr)
	var ferr *elicit.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %T, want *FormatError", err)
	}
	if ferr.Received != "payload without value field" {
		t.Fatalf("received field %q", ferr.Received)
	}
}

func TestNumberKinds(t *testing.T) {
	tr := wiretest.New(float64(42))
	n, err := elicit.Number[int]("count?")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("n = %d", n)
	}
	if tr.Calls()[0].Params[wire.KeyKind] != wire.KindInteger {
		t.Fatal("integer type must request the integer kind")
	}

	tr = wiretest.New(float64(2.5))
	f, err := elicit.Number[float64]("ratio?")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if f != 2.5 {
		t.Fatalf("f = %v", f)
	}
	if tr.Calls()[0].Params[wire.KeyKind] != wire.KindFloat {
		t.Fatal("float type must request the float kind")
	}
}

func TestNumberRejectsFractionForIntegral(t *testing.T) {
	tr := wiretest.New(float64(2.5))
	_, err := elicit.Number[int]("count?")(context.Background(), tr)
	var ferr *elicit.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %T, want *FormatError", err)
	}
}

func TestNumberRejectsOverflow(t *testing.T) {
	tr := wiretest.New(float64(300))
	if _, err := elicit.Number[int8]("tiny?")(context.Background(), tr); err == nil {
		t.Fatal("300 accepted into int8")
	}
	tr = wiretest.New(float64(-1))
	if _, err := elicit.Number[uint16]("port?")(context.Background(), tr); err == nil {
		t.Fatal("-1 accepted into uint16")
	}
}

func TestDuration(t *testing.T) {
	tr := wiretest.New("1h30m")
	d, err := elicit.Duration("how long?")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if d != 90*time.Minute {
		t.Fatalf("d = %v", d)
	}
	tr = wiretest.New("ages")
	if _, err := elicit.Duration("how long?")(context.Background(), tr); err == nil {
		t.Fatal("unparseable duration accepted")
	}
}

func TestJustIssuesNoRoundTrip(t *testing.T) {
	tr := wiretest.New()
	v, err := elicit.Just(7)(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 || tr.CallCount() != 0 {
		t.Fatalf("v=%d calls=%d", v, tr.CallCount())
	}
}

func TestTransportErrorPropagatesUnchanged(t *testing.T) {
	cause := errors.New("connection reset")
	tr := wiretest.New(cause)
	_, err := elicit.Text("name?")(context.Background(), tr)
	var terr *elicit.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error %T, want *TransportError", err)
	}
	if terr.Op != wire.OpText || !errors.Is(err, cause) {
		t.Fatalf("terr = %+v", terr)
	}
}
