// Package gomap bridges resolved tree nodes to caller-defined Go values.
//
// The navigation core treats decoding as a black box behind the Decoder
// interface: given a structurally valid node (map, list or scalar) and a
// pointer target, populate the target or report why not. The default
// implementation round-trips through JSON, which buys encoding/json field
// tag semantics without reimplementing reflection-based mapping here.
//
// Decoders receive nodes that are structurally consistent with the tree
// model; nothing pre-validates field presence for the target shape. That
// split is deliberate: presence is the path's concern, shape is the
// decoder's.
package gomap
