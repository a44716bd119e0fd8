// Package treenav navigates untyped value trees with policy-typed paths.
//
// An Accessor binds a root tree node to a path under construction. Each
// navigation step selects a child by key or index and carries a failure
// policy; the aggregate contract of the whole chain is derived from the
// policies present and governs how terminal reads report failure. See the
// path package for the policy and contract model.
//
//	root, _ := parse.JSON(doc)
//	pop, ok, err := treenav.New(root).Key("europe").Key("population").AsInt64()
//
// Optional steps short-circuit to an empty result:
//
//	// ok == false, err == nil when "africa" is absent
//	pop, ok, err := treenav.New(root).Key("africa").MakeOptional().Key("population").AsInt64()
//
// Unsafe steps panic when their target is absent. This is a deliberate
// caller-opt-in escape hatch for "cannot happen" accesses, not an error:
// the failure never returns to the caller.
//
// Terminal conversions uniformly return (value, present, error). Under a
// throwing contract present is true whenever the error is nil; under an
// empty contract the error is always nil; under the fatal contract both
// hold and any internal failure panics instead. Keeping presence and error
// apart matters for mixed chains: an empty result means an optional step
// legitimately found nothing, while an error means a strict step hit a
// missing member or a shape mismatch.
//
// Accessors are immutable values. Navigation never mutates the shared tree,
// so accessors derived from one root may be used concurrently without
// synchronization.
package treenav
