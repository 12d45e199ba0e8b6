// Package scriptwire provides a Transport that replays answers from a
// YAML scenario file. Scenarios pin both the answer values and the
// operation order, so a replay fails loudly when the elicitation shape
// drifts from what the scenario was written against.
//
// Scenario format:
//
//	answers:
//	  - op: prompt/bool
//	    value: true
//	  - op: prompt/text
//	    value: primary
//
// The op field is optional; an answer without one matches any
// operation.
package scriptwire

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/promptwire/elicit/wire"
)

// Answer is one scripted response.
type Answer struct {
	// Op, when set, must match the operation of the round-trip this
	// answer is served to.
	Op string `yaml:"op,omitempty"`
	// Value is the response value, delivered verbatim.
	Value any `yaml:"value"`
}

// Scenario is a parsed scenario document.
type Scenario struct {
	Answers []Answer `yaml:"answers"`
}

// Transport serves a scenario's answers in order.
type Transport struct {
	mu      sync.Mutex
	answers []Answer
	served  int
}

// Parse decodes a scenario document and builds its Transport.
func Parse(doc []byte) (*Transport, error) {
	var sc Scenario
	if err := yaml.Unmarshal(doc, &sc); err != nil {
		return nil, fmt.Errorf("scriptwire: parse scenario: %w", err)
	}
	return &Transport{answers: sc.Answers}, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Transport, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scriptwire: read scenario: %w", err)
	}
	return Parse(doc)
}

// Call implements the elicitation Transport interface.
func (t *Transport) Call(_ context.Context, op string, _ map[string]any) (map[string]any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.served >= len(t.answers) {
		return nil, fmt.Errorf("scriptwire: scenario exhausted after %d answers (next op %s)", t.served, op)
	}
	a := t.answers[t.served]
	if a.Op != "" && a.Op != op {
		return nil, fmt.Errorf("scriptwire: answer %d scripted for %s, got %s", t.served+1, a.Op, op)
	}
	t.served++
	return wire.Result(a.Value), nil
}

// Remaining returns how many scripted answers are still unserved.
func (t *Transport) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.answers) - t.served
}
