// Package refined provides contract wrapper types: opaque wrappers that
// narrow a base type into the subset satisfying one named predicate.
//
// A wrapper can only be obtained through its validating constructor; there
// is no bypass, and deserialization helpers (the Parse* functions) route
// through the same constructor. Once constructed a wrapper is immutable.
// Value returns the inner value unmodified without re-validating; Unwrap
// returns it for callers that are done with the wrapper. Go cannot enforce
// single use after Unwrap; treat the wrapper as spent.
//
// Every predicate is a composition of validators from the foundation
// package (plus, for the filesystem wrappers, one metadata probe — the
// only family with an observable side effect). The layering registry in
// proof.go records the composition for each wrapper; see that file for
// the obligations a new wrapper must discharge.
package refined
