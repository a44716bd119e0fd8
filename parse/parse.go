// Package parse decodes raw document bytes into value trees.
//
// Two failure modes surface at construction time, both recoverable:
// ErrInvalidEncoding when the bytes are not valid UTF-8 text, and
// ErrInvalidTree when the text is not a well-formed document. Navigation
// never sees either; a tree exists only once parsing succeeded.
package parse

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	segjson "github.com/segmentio/encoding/json"

	"github.com/treenav/go-treenav/ir"
)

var (
	ErrInvalidEncoding = errors.New("parse: input is not valid UTF-8")
	ErrInvalidTree     = errors.New("parse: malformed document")
)

// Parse decodes d into a tree. The format defaults to AutoFormat, which
// tries JSON first and falls back to YAML.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{format: AutoFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if !utf8.Valid(d) {
		return nil, ErrInvalidEncoding
	}
	switch pOpts.format {
	case JSONFormat:
		return decodeJSON(d)
	case YAMLFormat:
		return decodeYAML(d)
	default:
		node, err := decodeJSON(d)
		if err == nil {
			return node, nil
		}
		return decodeYAML(d)
	}
}

// JSON decodes a JSON document.
func JSON(d []byte) (*ir.Node, error) {
	return Parse(d, WithFormat(JSONFormat))
}

// YAML decodes a YAML document.
func YAML(d []byte) (*ir.Node, error) {
	return Parse(d, WithFormat(YAMLFormat))
}

func decodeJSON(d []byte) (*ir.Node, error) {
	var v any
	if err := segjson.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	return node, nil
}

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	return node, nil
}
