// Package wiretest provides an in-memory Transport for tests: queued
// answers are served in order and every issued operation is recorded.
package wiretest

import (
	"context"
	"fmt"
	"sync"

	"github.com/promptwire/elicit/wire"
)

// Call is one recorded round-trip request.
type Call struct {
	Op     string
	Params map[string]any
}

// Raw marks an answer to be delivered as the response payload verbatim,
// without wrapping it in a value field. Use it to simulate malformed
// payloads.
type Raw map[string]any

// Transport replays a fixed answer queue. Each queued entry is served
// to exactly one Call, in order:
//
//   - an error value is returned as the Call error
//   - a Raw payload is returned as-is
//   - anything else is wrapped with wire.Result
//
// A Call past the end of the queue fails, so a step that issues more
// round-trips than the test scripted is caught immediately.
type Transport struct {
	mu      sync.Mutex
	answers []any
	calls   []Call
}

// New builds a Transport that will serve the given answers in order.
func New(answers ...any) *Transport {
	return &Transport{answers: answers}
}

// Call implements the elicitation Transport interface.
func (t *Transport) Call(_ context.Context, op string, params map[string]any) (map[string]any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, Call{Op: op, Params: params})
	if len(t.answers) == 0 {
		return nil, fmt.Errorf("wiretest: unscripted call %d (op %s)", len(t.calls), op)
	}
	next := t.answers[0]
	t.answers = t.answers[1:]
	switch a := next.(type) {
	case error:
		return nil, a
	case Raw:
		return map[string]any(a), nil
	default:
		return wire.Result(a), nil
	}
}

// Calls returns the recorded round-trips in issue order.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// CallCount returns how many round-trips have been issued.
func (t *Transport) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

// Ops returns just the operation names, in issue order.
func (t *Transport) Ops() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.calls))
	for i, c := range t.calls {
		out[i] = c.Op
	}
	return out
}

// Remaining returns how many scripted answers are still unserved.
func (t *Transport) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.answers)
}
