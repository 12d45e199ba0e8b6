package elicit

import (
	"context"
	"fmt"
)

// ContainerOption configures variable-length container steps.
type ContainerOption func(*containerConfig)

type containerConfig struct {
	maxElements int
}

// WithMaxElements caps the number of elements a variable-length step will
// accept. An affirmative continuation past the cap fails the elicitation
// with a FormatError naming the cap. Zero (the default) means unlimited;
// termination is then driven solely by the negative answer.
func WithMaxElements(n int) ContainerOption {
	return func(c *containerConfig) { c.maxElements = n }
}

// Optional asks question once; a negative answer yields nil immediately
// with no further requests, an affirmative answer recurses into inner.
func Optional[T any](question string, inner Func[T]) Func[*T] {
	return func(ctx context.Context, tr Transport) (*T, error) {
		provide, err := Bool(question)(ctx, tr)
		if err != nil {
			return nil, err
		}
		if !provide {
			return nil, nil
		}
		v, err := inner(ctx, tr)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// Slice loops {ask question; if affirmed, elicit one element} until a
// negative answer terminates the loop. A failing element discards the
// elements already produced and fails the step as a whole.
func Slice[T any](question string, elem Func[T], opts ...ContainerOption) Func[[]T] {
	var cfg containerConfig
	for _, o := range opts {
		o(&cfg)
	}
	return func(ctx context.Context, tr Transport) ([]T, error) {
		var items []T
		for {
			more, err := Bool(question)(ctx, tr)
			if err != nil {
				return nil, err
			}
			if !more {
				return items, nil
			}
			if cfg.maxElements > 0 && len(items) >= cfg.maxElements {
				return nil, &FormatError{
					Expected: fmt.Sprintf("at most %d elements", cfg.maxElements),
					Received: "affirmative continuation past the cap",
				}
			}
			item, err := elem(ctx, tr)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

// ArrayN elicits exactly n elements in order, with no early termination.
// If any element fails, the whole step fails and already-produced elements
// are discarded.
func ArrayN[T any](n int, elem Func[T]) Func[[]T] {
	return func(ctx context.Context, tr Transport) ([]T, error) {
		items := make([]T, 0, n)
		for i := 0; i < n; i++ {
			item, err := elem(ctx, tr)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(items) != n {
			return nil, &SizeError{Want: n, Got: len(items)}
		}
		return items, nil
	}
}

// MapOf loops {ask question; if affirmed, elicit one key then one value}
// until a negative answer. A repeated key is a format mismatch: silently
// overwriting an earlier entry would lose data the remote party supplied.
func MapOf[K comparable, V any](question string, key Func[K], val Func[V], opts ...ContainerOption) Func[map[K]V] {
	var cfg containerConfig
	for _, o := range opts {
		o(&cfg)
	}
	return func(ctx context.Context, tr Transport) (map[K]V, error) {
		out := make(map[K]V)
		for {
			more, err := Bool(question)(ctx, tr)
			if err != nil {
				return nil, err
			}
			if !more {
				return out, nil
			}
			if cfg.maxElements > 0 && len(out) >= cfg.maxElements {
				return nil, &FormatError{
					Expected: fmt.Sprintf("at most %d entries", cfg.maxElements),
					Received: "affirmative continuation past the cap",
				}
			}
			k, err := key(ctx, tr)
			if err != nil {
				return nil, err
			}
			if _, dup := out[k]; dup {
				return nil, &FormatError{
					Expected: "a key not yet present in the map",
					Received: fmt.Sprintf("duplicate key %v", k),
				}
			}
			v, err := val(ctx, tr)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
	}
}
