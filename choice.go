package elicit

import (
	"context"
	"strings"

	"github.com/promptwire/elicit/wire"
)

// Variant names one alternative of a sum shape and the step that produces
// its associated data. Unit variants use Just.
type Variant[T any] struct {
	Name string
	Func Func[T]
}

// Select issues one selection round-trip listing the variant names in
// order, then recurses into the chosen variant's step. A response that
// names no variant is a format mismatch.
func Select[T any](prompt string, variants ...Variant[T]) Func[T] {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return func(ctx context.Context, tr Transport) (T, error) {
		var zero T
		res, err := roundTrip(ctx, tr, wire.OpSelect, wire.SelectParams(prompt, names))
		if err != nil {
			return zero, err
		}
		v, present := extract(res)
		choice, ok := v.(string)
		if !present || !ok {
			return zero, &FormatError{
				Expected: "one of [" + strings.Join(names, ", ") + "]",
				Received: describe(v, present),
			}
		}
		for _, variant := range variants {
			if variant.Name == choice {
				return variant.Func(ctx, tr)
			}
		}
		return zero, &FormatError{
			Expected: "one of [" + strings.Join(names, ", ") + "]",
			Received: describe(choice, true),
		}
	}
}
