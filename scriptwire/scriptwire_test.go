package scriptwire_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/promptwire/elicit"
	"github.com/promptwire/elicit/scriptwire"
)

const scenario = `
answers:
  - op: prompt/bool
    value: true
  - op: prompt/text
    value: primary
  - op: prompt/bool
    value: true
  - op: prompt/text
    value: replica
  - op: prompt/bool
    value: false
`

func TestReplayScenario(t *testing.T) {
	tr, err := scriptwire.Parse([]byte(scenario))
	if err != nil {
		t.Fatal(err)
	}
	got, err := elicit.Slice("more hosts?", elicit.Text("hostname?"))(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"primary", "replica"}) {
		t.Fatalf("got %v", got)
	}
	if tr.Remaining() != 0 {
		t.Fatalf("%d answers unserved", tr.Remaining())
	}
}

func TestOpMismatch(t *testing.T) {
	tr, err := scriptwire.Parse([]byte("answers:\n  - op: prompt/text\n    value: hi\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = elicit.Bool("ok?")(context.Background(), tr)
	if err == nil {
		t.Fatal("op mismatch went unnoticed")
	}
	if !strings.Contains(err.Error(), "scripted for prompt/text") {
		t.Fatalf("error %v", err)
	}
}

func TestExhaustion(t *testing.T) {
	tr, err := scriptwire.Parse([]byte("answers: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := elicit.Text("name?")(context.Background(), tr); err == nil {
		t.Fatal("exhausted scenario served an answer")
	}
}

func TestAnswerWithoutOpMatchesAny(t *testing.T) {
	tr, err := scriptwire.Parse([]byte("answers:\n  - value: 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := elicit.Number[int]("count?")(context.Background(), tr)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("n = %d", n)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenario), 0o600); err != nil {
		t.Fatal(err)
	}
	tr, err := scriptwire.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Remaining() != 5 {
		t.Fatalf("remaining %d", tr.Remaining())
	}
	if _, err := scriptwire.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file loaded")
	}
	if _, err := scriptwire.Parse([]byte("answers: {not a list}")); err == nil {
		t.Fatal("malformed document parsed")
	}
}
