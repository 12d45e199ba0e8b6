// Package stdiowire provides a Transport that asks a human at a
// terminal. It is deliberately forgiving at the line-reading level: a
// mistyped yes/no or an unparseable number is re-asked locally instead
// of failing the elicitation, because the typo never reaches the core.
// Everything semantic (validation, shape) stays upstream.
package stdiowire

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/promptwire/elicit/internal/logctx"
	"github.com/promptwire/elicit/wire"
)

// Transport prompts on out and reads line-oriented answers from in. It
// serializes its prompts; interleaved concurrent elicitations over one
// terminal would be unreadable anyway.
type Transport struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a terminal transport over the given streams.
func New(in io.Reader, out io.Writer) *Transport {
	return &Transport{in: bufio.NewScanner(in), out: out}
}

// Call implements the elicitation Transport interface.
func (t *Transport) Call(ctx context.Context, op string, params map[string]any) (map[string]any, error) {
	id := uuid.NewString()
	logctx.From(ctx).DebugContext(ctx, "terminal prompt", "request_id", id, "op", op)

	switch op {
	case wire.OpBool:
		q, _ := params[wire.KeyQuestion].(string)
		v, err := t.askBool(q)
		if err != nil {
			return nil, err
		}
		return wire.Result(v), nil
	case wire.OpText:
		p, _ := params[wire.KeyPrompt].(string)
		line, err := t.ask(p)
		if err != nil {
			return nil, err
		}
		return wire.Result(line), nil
	case wire.OpNumber:
		p, _ := params[wire.KeyPrompt].(string)
		kind, _ := params[wire.KeyKind].(string)
		v, err := t.askNumber(p, kind)
		if err != nil {
			return nil, err
		}
		return wire.Result(v), nil
	case wire.OpSelect:
		p, _ := params[wire.KeyPrompt].(string)
		options, _ := params[wire.KeyOptions].([]string)
		v, err := t.askSelect(p, options)
		if err != nil {
			return nil, err
		}
		return wire.Result(v), nil
	default:
		return nil, fmt.Errorf("stdiowire: unknown operation %q", op)
	}
}

// ask prints one prompt and reads one line.
func (t *Transport) ask(prompt string) (string, error) {
	fmt.Fprintf(t.out, "%s ", prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("stdiowire: read answer: %w", err)
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

func (t *Transport) askBool(question string) (bool, error) {
	for {
		line, err := t.ask(question + " [y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		fmt.Fprintln(t.out, "please answer y or n")
	}
}

func (t *Transport) askNumber(prompt, kind string) (any, error) {
	for {
		line, err := t.ask(prompt)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if kind == wire.KindFloat {
			if f, err := strconv.ParseFloat(line, 64); err == nil {
				return f, nil
			}
		} else {
			if n, err := strconv.ParseInt(line, 10, 64); err == nil {
				return n, nil
			}
		}
		fmt.Fprintf(t.out, "please enter a %s\n", kind)
	}
}

// askSelect lists the options, then accepts either an option name or
// its 1-based index.
func (t *Transport) askSelect(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("stdiowire: selection prompt with no options")
	}
	for {
		fmt.Fprintln(t.out, prompt)
		for i, o := range options {
			fmt.Fprintf(t.out, "  %d) %s\n", i+1, o)
		}
		line, err := t.ask("choice:")
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1], nil
		}
		for _, o := range options {
			if o == line {
				return o, nil
			}
		}
		fmt.Fprintln(t.out, "please pick an option by name or number")
	}
}
