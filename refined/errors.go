package refined

import "fmt"

// ValidationError reports that a constructor's predicate did not hold.
// Expected names the required shape; Received describes the rejected
// input. It never carries partially-validated internal state.
type ValidationError struct {
	Expected string
	Received string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value: expected %s, received %s", e.Expected, e.Received)
}

func errf(expected, receivedFormat string, args ...any) *ValidationError {
	return &ValidationError{Expected: expected, Received: fmt.Sprintf(receivedFormat, args...)}
}
