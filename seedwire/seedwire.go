// Package seedwire provides a deterministic Transport that answers
// every prompt from a seeded generator. Two transports built from the
// same seed produce identical answer sequences, which makes it suitable
// for reproducible fixtures and fuzz-style exploration of composite
// shapes.
package seedwire

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/promptwire/elicit/wire"
)

// Option configures a Transport.
type Option func(*Transport)

// WithMaxContinuations bounds how many consecutive affirmative answers
// the transport will give to the same run of yes/no prompts. Without a
// bound a variable-length container could loop arbitrarily long; the
// default is 3.
func WithMaxContinuations(n int) Option {
	return func(t *Transport) { t.maxRun = n }
}

// WithTextLength sets the inclusive length range for generated text
// answers. The default is 3 to 10 runes.
func WithTextLength(min, max int) Option {
	return func(t *Transport) { t.textMin, t.textMax = min, max }
}

// WithOffset advances the stream by n draws before the first answer,
// selecting a different deterministic run of the same seed.
func WithOffset(n uint64) Option {
	return func(t *Transport) {
		for i := uint64(0); i < n; i++ {
			t.rng.Uint64()
		}
	}
}

// Transport answers prompts from a seeded PCG stream. It is not safe
// for concurrent use: the whole point is a single reproducible answer
// order.
type Transport struct {
	rng     *rand.Rand
	maxRun  int
	run     int
	textMin int
	textMax int
}

// New builds a Transport seeded with seed. The second PCG word is
// derived from the first so one integer fully determines the stream.
func New(seed uint64, opts ...Option) *Transport {
	t := &Transport{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		maxRun:  3,
		textMin: 3,
		textMax: 10,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

const textAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Call implements the elicitation Transport interface.
func (t *Transport) Call(_ context.Context, op string, params map[string]any) (map[string]any, error) {
	switch op {
	case wire.OpBool:
		return wire.Result(t.nextBool()), nil
	case wire.OpText:
		return wire.Result(t.nextText()), nil
	case wire.OpNumber:
		kind, _ := params[wire.KeyKind].(string)
		if kind == wire.KindFloat {
			return wire.Result(t.rng.Float64() * 1000), nil
		}
		return wire.Result(t.rng.Int64N(1000)), nil
	case wire.OpSelect:
		options, _ := params[wire.KeyOptions].([]string)
		if len(options) == 0 {
			return nil, fmt.Errorf("seedwire: selection prompt with no options")
		}
		return wire.Result(options[t.rng.IntN(len(options))]), nil
	default:
		return nil, fmt.Errorf("seedwire: unknown operation %q", op)
	}
}

// nextBool flips a coin but forces a negative answer once maxRun
// consecutive affirmatives have been given, so container loops always
// terminate.
func (t *Transport) nextBool() bool {
	if t.run >= t.maxRun {
		t.run = 0
		return false
	}
	if t.rng.IntN(2) == 1 {
		t.run++
		return true
	}
	t.run = 0
	return false
}

func (t *Transport) nextText() string {
	n := t.textMin
	if t.textMax > t.textMin {
		n += t.rng.IntN(t.textMax - t.textMin + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = textAlphabet[t.rng.IntN(len(textAlphabet))]
	}
	return string(b)
}
