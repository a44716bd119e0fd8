package gomap

import "fmt"

// DecodeError represents a failure to map a node onto a Go value.
type DecodeError struct {
	FieldPath string // position of the node, e.g. "$.europe.countries[0]"
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
