package refined

import "fmt"

// Real enumerates the numeric base types the numeric wrappers accept.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive wraps a number known to be > 0.
type Positive[T Real] struct{ v T }

// NewPositive validates v > 0.
func NewPositive[T Real](v T) (Positive[T], error) {
	if v > 0 {
		return Positive[T]{v: v}, nil
	}
	return Positive[T]{}, errf("a value > 0", "%v", v)
}

// Value returns the validated number.
func (p Positive[T]) Value() T { return p.v }

// Unwrap returns the inner number; the wrapper is spent.
func (p Positive[T]) Unwrap() T { return p.v }

// NonNegative wraps a number known to be >= 0.
type NonNegative[T Real] struct{ v T }

// NewNonNegative validates v >= 0.
func NewNonNegative[T Real](v T) (NonNegative[T], error) {
	if v >= 0 {
		return NonNegative[T]{v: v}, nil
	}
	return NonNegative[T]{}, errf("a value >= 0", "%v", v)
}

func (p NonNegative[T]) Value() T  { return p.v }
func (p NonNegative[T]) Unwrap() T { return p.v }

// NonZero wraps a number known to be != 0.
type NonZero[T Real] struct{ v T }

// NewNonZero validates v != 0.
func NewNonZero[T Real](v T) (NonZero[T], error) {
	if v != 0 {
		return NonZero[T]{v: v}, nil
	}
	return NonZero[T]{}, errf("a value != 0", "%v", v)
}

func (p NonZero[T]) Value() T  { return p.v }
func (p NonZero[T]) Unwrap() T { return p.v }

// InRange wraps a number known to satisfy min <= v <= max (both bounds
// inclusive).
type InRange[T Real] struct{ v, min, max T }

// NewInRange validates min <= v <= max. Bounds with min > max are
// rejected outright: no value could satisfy them.
func NewInRange[T Real](v, min, max T) (InRange[T], error) {
	if min > max {
		return InRange[T]{}, errf("bounds with min <= max", "min %v > max %v", min, max)
	}
	if v < min || v > max {
		return InRange[T]{}, errf(fmt.Sprintf("a value in [%v, %v]", min, max), "%v", v)
	}
	return InRange[T]{v: v, min: min, max: max}, nil
}

func (r InRange[T]) Value() T  { return r.v }
func (r InRange[T]) Unwrap() T { return r.v }

// Min returns the inclusive lower bound the value was validated against.
func (r InRange[T]) Min() T { return r.min }

// Max returns the inclusive upper bound the value was validated against.
func (r InRange[T]) Max() T { return r.max }
