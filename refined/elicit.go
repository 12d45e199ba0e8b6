package refined

import (
	"github.com/promptwire/elicit"
)

// Bridges from the conversational layer into the wrappers: each one
// asks for the base value and routes it through the validating
// constructor. A rejected answer surfaces as the constructor's
// *ValidationError; there is no re-prompt here — retry policy belongs
// to the caller.

// ElicitNonEmptyString asks for text and validates it non-empty UTF-8.
func ElicitNonEmptyString(prompt string) elicit.Func[NonEmptyString] {
	return elicit.Refine(elicit.Text(prompt), NewNonEmptyString)
}

// ElicitPositive asks for a number and validates it > 0.
func ElicitPositive[T Real](prompt string) elicit.Func[Positive[T]] {
	return elicit.Refine(elicit.Number[T](prompt), NewPositive[T])
}

// ElicitNonNegative asks for a number and validates it >= 0.
func ElicitNonNegative[T Real](prompt string) elicit.Func[NonNegative[T]] {
	return elicit.Refine(elicit.Number[T](prompt), NewNonNegative[T])
}

// ElicitInRange asks for a number and validates min <= v <= max.
func ElicitInRange[T Real](prompt string, min, max T) elicit.Func[InRange[T]] {
	return elicit.Refine(elicit.Number[T](prompt), func(v T) (InRange[T], error) {
		return NewInRange(v, min, max)
	})
}

// ElicitUUIDv4 asks for text and parses it as a version-4 UUID.
func ElicitUUIDv4(prompt string) elicit.Func[UUIDv4] {
	return elicit.Refine(elicit.Text(prompt), ParseUUIDv4)
}

// ElicitIPv4Private asks for text and parses it as an RFC 1918 address.
func ElicitIPv4Private(prompt string) elicit.Func[IPv4Private] {
	return elicit.Refine(elicit.Text(prompt), ParseIPv4Private)
}

// ElicitValidRegex asks for text and validates it as a pattern.
func ElicitValidRegex(prompt string) elicit.Func[ValidRegex] {
	return elicit.Refine(elicit.Text(prompt), NewValidRegex)
}

// ElicitPathExists asks for text and validates it names an existing
// filesystem entry.
func ElicitPathExists(prompt string) elicit.Func[PathExists] {
	return elicit.Refine(elicit.Text(prompt), NewPathExists)
}
