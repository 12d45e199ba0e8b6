// Package foundation holds the pure validators the refined wrapper types
// compose. Every function here is total and deterministic over its input
// bytes: no I/O, no allocation beyond the verdict, no panics.
//
// Higher layers treat each validator as a trusted building block. A
// composite predicate is expressed as calls into this package, never by
// re-implementing equivalent logic inline; the refined package's layering
// registry records which validators each wrapper composes.
package foundation
