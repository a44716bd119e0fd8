// Package encode renders tree nodes as JSON text, preserving object entry
// order and optionally colorizing output per node type for terminal use.
package encode
