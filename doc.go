// Package elicit obtains validated values of arbitrary shape by exchanging
// structured request/response messages with a remote party.
//
// The building block is Func[T]: a step that drives zero or more round-trips
// over a Transport and produces a T. Primitive steps (Bool, Text, Number,
// Duration) perform exactly one round-trip. Combinators assemble composite
// shapes from element steps:
//
//	Optional  one yes/no round-trip, then the inner step if affirmed
//	Slice     a loop of {continue?; element} terminated by a negative answer
//	ArrayN    exactly N element recursions, order preserved
//	MapOf     a loop of {continue?; key; value}
//	Select    one selection round-trip, then the chosen variant's step
//	Refine    an inner step followed by a validating constructor
//
// Requests within one elicitation are strictly sequential: a step never has
// two round-trips outstanding, because later prompts depend on earlier
// answers. Independent elicitations may be driven concurrently; the package
// holds no shared mutable state between them.
//
// Failure of any sub-step propagates unchanged to the caller of the
// outermost step. There is no partial-success value and no retry here;
// callers that want to retry restart the whole elicitation.
package elicit
