package elicit

import (
	"context"
	"math"
	"reflect"
	"time"

	"github.com/promptwire/elicit/wire"
)

// Func is one elicitation step: it drives zero or more round-trips over tr
// and produces a T. Steps are plain values; composing them builds the
// state machine for a composite shape.
type Func[T any] func(ctx context.Context, tr Transport) (T, error)

// Real enumerates the numeric base types Number accepts.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bool asks a yes/no question in a single round-trip.
func Bool(question string) Func[bool] {
	return func(ctx context.Context, tr Transport) (bool, error) {
		res, err := roundTrip(ctx, tr, wire.OpBool, wire.BoolParams(question))
		if err != nil {
			return false, err
		}
		v, present := extract(res)
		b, ok := v.(bool)
		if !present || !ok {
			return false, &FormatError{Expected: "boolean", Received: describe(v, present)}
		}
		return b, nil
	}
}

// Text asks for free-form text in a single round-trip.
func Text(prompt string) Func[string] {
	return func(ctx context.Context, tr Transport) (string, error) {
		res, err := roundTrip(ctx, tr, wire.OpText, wire.TextParams(prompt))
		if err != nil {
			return "", err
		}
		v, present := extract(res)
		s, ok := v.(string)
		if !present || !ok {
			return "", &FormatError{Expected: "text", Received: describe(v, present)}
		}
		return s, nil
	}
}

// Number asks for a numeric value in a single round-trip. The wire kind is
// derived from T: integer for the integral base types, float otherwise.
// Responses that are not numeric, carry a fractional part for an integral
// T, or do not fit T's range are format mismatches.
func Number[T Real](prompt string) Func[T] {
	var zero T
	kind := reflect.TypeOf(zero).Kind()
	wireKind := wire.KindFloat
	if kind != reflect.Float32 && kind != reflect.Float64 {
		wireKind = wire.KindInteger
	}
	return func(ctx context.Context, tr Transport) (T, error) {
		res, err := roundTrip(ctx, tr, wire.OpNumber, wire.NumberParams(prompt, wireKind))
		if err != nil {
			return zero, err
		}
		v, present := extract(res)
		f, ok := toFloat(v)
		if !present || !ok {
			return zero, &FormatError{Expected: "number (" + wireKind + ")", Received: describe(v, present)}
		}
		out, ok := assignReal[T](f, kind)
		if !ok {
			return zero, &FormatError{Expected: "number (" + wireKind + ")", Received: describe(v, present)}
		}
		return out, nil
	}
}

// Duration asks for free-form text and parses it with time.ParseDuration.
func Duration(prompt string) Func[time.Duration] {
	return func(ctx context.Context, tr Transport) (time.Duration, error) {
		s, err := Text(prompt)(ctx, tr)
		if err != nil {
			return 0, err
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, &FormatError{Expected: "duration (e.g. 1h30m)", Received: describe(s, true)}
		}
		return d, nil
	}
}

// Just produces v without any round-trip. It is the step for a unit
// variant inside Select.
func Just[T any](v T) Func[T] {
	return func(context.Context, Transport) (T, error) { return v, nil }
}

// Refine runs inner and passes its result through a validating
// constructor. A constructor failure propagates unchanged; the caller
// decides whether to restart.
func Refine[T, R any](inner Func[T], construct func(T) (R, error)) Func[R] {
	return func(ctx context.Context, tr Transport) (R, error) {
		var zero R
		v, err := inner(ctx, tr)
		if err != nil {
			return zero, err
		}
		return construct(v)
	}
}

// toFloat widens the numeric shapes a transport may deliver. JSON decoding
// yields float64; YAML scenarios yield int.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// assignReal converts f into T, rejecting fractional values for integral
// kinds and anything outside T's representable range.
func assignReal[T Real](f float64, kind reflect.Kind) (T, bool) {
	var zero T
	rv := reflect.New(reflect.TypeOf(zero)).Elem()
	switch kind {
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return zero, false
		}
		rv.SetFloat(f)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return zero, false
		}
		if rv.OverflowUint(uint64(f)) {
			return zero, false
		}
		rv.SetUint(uint64(f))
	default:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return zero, false
		}
		if rv.OverflowInt(int64(f)) {
			return zero, false
		}
		rv.SetInt(int64(f))
	}
	return rv.Interface().(T), true
}
