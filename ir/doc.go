// Package ir provides the value tree over which paths are resolved.
//
// A Node is a recursive tagged union representing a parsed document value:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Fields are string typed and
// unique within an object. ArrayType nodes place their elements in Values.
//
// Numbers are placed under Int64 if they are 64-bit signed integers, and
// under Float64 otherwise.
//
// Each node maintains parent-child relationships (Parent, ParentIndex,
// ParentField), which allows producing positional diagnostics with Path().
//
// Nodes are built once, by a parser or by the constructor functions
// (FromString, FromInt, FromMap, FromSlice, ...), and are read-only
// afterwards. A fully constructed tree may be shared across any number of
// goroutines without synchronization as long as nobody mutates it.
package ir
