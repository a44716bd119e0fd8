package gomap

import (
	"github.com/segmentio/encoding/json"

	"github.com/treenav/go-treenav/ir"
)

// Decoder populates into, which must be a non-nil pointer, from a tree
// node.
type Decoder interface {
	Decode(node *ir.Node, into any) error
}

// Default returns the JSON round-trip decoder.
func Default() Decoder {
	return jsonDecoder{}
}

// FromIR decodes node into a Go value with the default decoder.
func FromIR(node *ir.Node, into any) error {
	return Default().Decode(node, into)
}

// ToIR converts a Go value into a tree node by round-tripping it through
// JSON, the inverse of FromIR.
func ToIR(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, &DecodeError{Message: "cannot marshal value", Err: err}
	}
	var plain any
	if err := json.Unmarshal(d, &plain); err != nil {
		return nil, &DecodeError{Message: "cannot unmarshal value", Err: err}
	}
	node, err := ir.FromAny(plain)
	if err != nil {
		return nil, &DecodeError{Message: "cannot build node", Err: err}
	}
	return node, nil
}

type jsonDecoder struct{}

func (jsonDecoder) Decode(node *ir.Node, into any) error {
	d, err := json.Marshal(ir.ToAny(node))
	if err != nil {
		return &DecodeError{FieldPath: node.Path(), Message: "cannot marshal node", Err: err}
	}
	if err := json.Unmarshal(d, into); err != nil {
		return &DecodeError{FieldPath: node.Path(), Message: "cannot populate target", Err: err}
	}
	return nil
}
