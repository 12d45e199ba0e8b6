package refined

// NonEmptySlice wraps a slice known to hold at least one element. The
// constructor copies the input so later mutation of the caller's slice
// cannot invalidate the wrapper.
type NonEmptySlice[T any] struct{ v []T }

// NewNonEmptySlice validates len(v) > 0.
func NewNonEmptySlice[T any](v []T) (NonEmptySlice[T], error) {
	if len(v) == 0 {
		return NonEmptySlice[T]{}, errf("a slice with at least one element", "empty slice")
	}
	cp := make([]T, len(v))
	copy(cp, v)
	return NonEmptySlice[T]{v: cp}, nil
}

// Value returns a copy of the validated slice.
func (s NonEmptySlice[T]) Value() []T {
	cp := make([]T, len(s.v))
	copy(cp, s.v)
	return cp
}

// Unwrap returns the inner slice directly; the wrapper is spent.
func (s NonEmptySlice[T]) Unwrap() []T { return s.v }

// Head returns the first element, which the invariant guarantees exists.
func (s NonEmptySlice[T]) Head() T { return s.v[0] }

// Len returns the element count; always >= 1.
func (s NonEmptySlice[T]) Len() int { return len(s.v) }

// Some wraps a value known to be present, collapsing a *T into a T that
// needs no nil check downstream.
type Some[T any] struct{ v T }

// NewSome validates p != nil and captures the pointed-to value.
func NewSome[T any](p *T) (Some[T], error) {
	if p == nil {
		return Some[T]{}, errf("a present value", "nil")
	}
	return Some[T]{v: *p}, nil
}

func (s Some[T]) Value() T  { return s.v }
func (s Some[T]) Unwrap() T { return s.v }
