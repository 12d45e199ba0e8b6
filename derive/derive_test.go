package derive_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/promptwire/elicit"
	"github.com/promptwire/elicit/derive"
	"github.com/promptwire/elicit/wire"
	"github.com/promptwire/elicit/wiretest"
)

type replicaConfig struct {
	Addr string  `json:"addr" jsonschema:"description=Replica address"`
	Lag  float64 `json:"lag"`
}

type serverProfile struct {
	Hostname string         `json:"hostname" jsonschema:"description=Hostname of the server"`
	Port     uint16         `json:"port"`
	TLS      bool           `json:"tls"`
	Mode     string         `json:"mode" jsonschema:"enum=fast,enum=safe"`
	Tags     []string       `json:"tags"`
	Replica  *replicaConfig `json:"replica"`
}

func TestElicitStruct(t *testing.T) {
	tr := wiretest.New(
		"db1.internal",  // hostname
		float64(5432),   // port
		true,            // tls
		"fast",          // mode
		true, "primary", // tags: one element
		false,        // tags: stop
		true,          // replica: provide
		"db2.internal", // replica.addr
		float64(0.25), // replica.lag
	)
	got, err := derive.Elicit[serverProfile](context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	want := &serverProfile{
		Hostname: "db1.internal",
		Port:     5432,
		TLS:      true,
		Mode:     "fast",
		Tags:     []string{"primary"},
		Replica:  &replicaConfig{Addr: "db2.internal", Lag: 0.25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	wantOps := []string{
		wire.OpText,   // hostname
		wire.OpNumber, // port
		wire.OpBool,   // tls
		wire.OpSelect, // mode
		wire.OpBool, wire.OpText, wire.OpBool, // tags
		wire.OpBool, wire.OpText, wire.OpNumber, // replica
	}
	if !reflect.DeepEqual(tr.Ops(), wantOps) {
		t.Fatalf("ops %v", tr.Ops())
	}
}

func TestElicitStructOptionalDeclined(t *testing.T) {
	tr := wiretest.New(
		"db1", float64(5432), false, "safe",
		false, // no tags
		false, // no replica
	)
	got, err := derive.Elicit[serverProfile](context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if got.Replica != nil {
		t.Fatalf("replica %+v, want nil", got.Replica)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("tags %v", got.Tags)
	}
}

func TestElicitEnumRejectsUnknownChoice(t *testing.T) {
	tr := wiretest.New("db1", float64(5432), true, "reckless")
	_, err := derive.Elicit[serverProfile](context.Background(), tr)
	var ferr *elicit.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %T, want *FormatError", err)
	}
}

func TestElicitNumericOverflow(t *testing.T) {
	tr := wiretest.New("db1", float64(70000))
	_, err := derive.Elicit[serverProfile](context.Background(), tr)
	var ferr *elicit.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %T, want *FormatError", err)
	}
}

func TestElicitFieldFailureReturnsNothing(t *testing.T) {
	tr := wiretest.New("db1", "not-a-number")
	got, err := derive.Elicit[serverProfile](context.Background(), tr)
	if err == nil {
		t.Fatal("format mismatch went unnoticed")
	}
	if got != nil {
		t.Fatalf("partial result %+v returned alongside error", got)
	}
}

func TestElicitPointerTarget(t *testing.T) {
	tr := wiretest.New("db2.internal", float64(0.5))
	got, err := derive.Elicit[*replicaConfig](context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got == nil {
		t.Fatal("pointer target yielded nil")
	}
	want := replicaConfig{Addr: "db2.internal", Lag: 0.5}
	if **got != want {
		t.Fatalf("got %+v, want %+v", **got, want)
	}
}

func TestElicitRejectsNonStruct(t *testing.T) {
	if _, err := derive.Elicit[int](context.Background(), wiretest.New()); err == nil {
		t.Fatal("non-struct type accepted")
	}
}

type holdsMap struct {
	Extras map[string]string `json:"extras"`
}

func TestElicitRejectsUnsupportedKind(t *testing.T) {
	if _, err := derive.Elicit[holdsMap](context.Background(), wiretest.New()); err == nil {
		t.Fatal("map field accepted")
	}
}

func TestDescribeGolden(t *testing.T) {
	desc, err := derive.Describe[serverProfile]()
	if err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t)
	g.Assert(t, "server_profile_plan", []byte(desc))
}
