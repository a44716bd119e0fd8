// Package path provides policy-typed navigation paths.
//
// A Path is an ordered, append-only sequence of components. Each component
// selects a child of an object or array node (a key or an index) and carries
// a failure policy saying what happens when the selection has no target:
//
//   - StrictPolicy: the failure surfaces as a recoverable error
//   - OptionalPolicy: the failure short-circuits the rest of the path to an
//     empty result, with no error
//   - UnsafePolicy: the failure panics
//
// Components are appended with StrictPolicy. The policy of the last
// component, and only the last, may be demoted once with MakeOptional or
// MakeUnsafe; appending a further component freezes it. Invalid demotions
// are rejected with an error, never silently ignored.
//
// The aggregate failure contract of a whole path is computed by Contract()
// from which policies occur anywhere in it, independent of order:
//
//	strict only            → ThrowingContract
//	optional only          → EmptyContract
//	strict and optional    → ThrowingEmptyContract
//	unsafe only            → FatalContract
//
// Unsafe components add panic risk but never change which of the error and
// empty channels a terminal read can use, so they do not figure in the
// table beyond the all-unsafe case.
//
// Paths have a textual form, e.g.
//
//	europe.countries[0].name
//	africa?.population
//	users[2]!."full name"
//
// where "?" and "!" mark optional and unsafe components. Parse and String
// round-trip this syntax.
//
// Path values are immutable; every operation returns a new Path. The zero
// value (nil) is the empty path.
package path
