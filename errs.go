package treenav

import (
	"errors"
	"fmt"

	"github.com/treenav/go-treenav/ir"
)

// Resolution failure causes for strict components. A key whose value is
// null counts as not found, the same as a missing key.
var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotAMap         = errors.New("not a map")
	ErrNotAList        = errors.New("not a list")
)

// ErrShapeMismatch is the cause wrapped by ConvertError.
var ErrShapeMismatch = errors.New("shape mismatch")

// ResolveError reports a strict component whose selector had no target.
type ResolveError struct {
	Path string // path prefix up to and including the failing component
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// ConvertError reports a terminal conversion applied to a node of the
// wrong shape.
type ConvertError struct {
	Path string
	Want string
	Got  ir.Type
}

func (e *ConvertError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot convert to %s: got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("cannot convert %s to %s: got %s", e.Path, e.Want, e.Got)
}

func (e *ConvertError) Unwrap() error {
	return ErrShapeMismatch
}
