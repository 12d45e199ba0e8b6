package elicit

import "fmt"

// FormatError reports a response that could not be parsed into the
// requested primitive kind. It aborts the current sub-step and surfaces to
// the caller of the elicitation; the caller may restart with the same
// shape.
type FormatError struct {
	// Expected names the kind the step asked for.
	Expected string
	// Received describes the payload that arrived instead.
	Received string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format mismatch: expected %s, received %s", e.Expected, e.Received)
}

// TransportError reports that the round-trip itself failed. It is fatal to
// the enclosing elicitation and is never retried internally.
type TransportError struct {
	// Op is the operation whose round-trip failed.
	Op string
	// Err is the collaborator-level cause.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SizeError reports an internally impossible assembly count for a
// fixed-size collection. It indicates a defect in this package or in a
// custom step, not a recoverable input condition.
type SizeError struct {
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size mismatch: assembled %d elements, want %d", e.Got, e.Want)
}

// describe renders a received value for FormatError messages without
// leaking deep structure.
func describe(v any, present bool) string {
	if !present {
		return "payload without value field"
	}
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T (%v)", v, v)
}
