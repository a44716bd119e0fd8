package treenav

import (
	"fmt"
	"math"

	"github.com/treenav/go-treenav/gomap"
	"github.com/treenav/go-treenav/ir"
	"github.com/treenav/go-treenav/path"
)

// Resolve walks the path and returns the resolved node, whether a result
// is present, and any recoverable resolution error. It is the terminal
// without a conversion step, so it cannot produce a shape mismatch.
func (a Accessor) Resolve() (*ir.Node, bool, error) {
	if a.err != nil {
		return nil, false, a.err
	}
	return resolve(a.root, a.path)
}

// AsString narrows the resolved node to a string.
func (a Accessor) AsString() (string, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return "", false, err
	}
	if node.Type != ir.StringType {
		return "", false, a.mismatch(node, "string")
	}
	return node.String, true, nil
}

// AsNumber narrows the resolved node to a float64.
func (a Accessor) AsNumber() (float64, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return 0, false, err
	}
	if node.Type != ir.NumberType {
		return 0, false, a.mismatch(node, "number")
	}
	if node.Float64 != nil {
		return *node.Float64, true, nil
	}
	return float64(*node.Int64), true, nil
}

// AsInt narrows the resolved node to a signed integer of the given width
// (8, 16, 32 or 64 bits). Integral floats qualify; out-of-range values are
// shape mismatches.
func (a Accessor) AsInt(bitSize int) (int64, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return 0, false, err
	}
	want := fmt.Sprintf("int%d", bitSize)
	if node.Type != ir.NumberType {
		return 0, false, a.mismatch(node, want)
	}
	v, isInt := intValue(node)
	if !isInt || !fitsInt(v, bitSize) {
		return 0, false, a.mismatch(node, want)
	}
	return v, true, nil
}

// AsInt64 is AsInt(64).
func (a Accessor) AsInt64() (int64, bool, error) {
	return a.AsInt(64)
}

// AsBool narrows the resolved node to a boolean.
func (a Accessor) AsBool() (bool, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return false, false, err
	}
	if node.Type != ir.BoolType {
		return false, false, a.mismatch(node, "bool")
	}
	return node.Bool, true, nil
}

// AsList narrows the resolved node to a list and returns one child
// Accessor per element, each rooted at the resolved node with a fresh
// single-component strict path.
func (a Accessor) AsList() ([]Accessor, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return nil, false, err
	}
	if node.Type != ir.ArrayType {
		return nil, false, a.mismatch(node, "list")
	}
	res := make([]Accessor, len(node.Values))
	for i := range node.Values {
		res[i] = New(node).Index(i)
	}
	return res, true, nil
}

// AsMap narrows the resolved node to a map of child Accessors, one per
// entry, each rooted at the resolved node with a fresh single-component
// strict path. Null-valued entries are omitted; they count as absent.
func (a Accessor) AsMap() (map[string]Accessor, bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return nil, false, err
	}
	if node.Type != ir.ObjectType {
		return nil, false, a.mismatch(node, "map")
	}
	res := make(map[string]Accessor, len(node.Fields))
	for i := range node.Fields {
		if node.Values[i].Type == ir.NullType {
			continue
		}
		res[node.Fields[i].String] = New(node).Key(node.Fields[i].String)
	}
	return res, true, nil
}

// Decode hands the resolved node to a schema-driven decoder populating
// into, which must be a pointer. The decoder defaults to gomap.Default;
// pass one explicitly to override. Decode failures follow the contract the
// same way shape mismatches do.
func (a Accessor) Decode(into any, decs ...gomap.Decoder) (bool, error) {
	node, ok, err := a.Resolve()
	if err != nil || !ok {
		return false, err
	}
	dec := gomap.Default()
	if len(decs) > 0 {
		dec = decs[0]
	}
	if err := dec.Decode(node, into); err != nil {
		switch a.path.Contract() {
		case path.FatalContract:
			panic(fmt.Sprintf("treenav: cannot decode %s: %v", a.pathString(), err))
		case path.EmptyContract:
			return false, nil
		default:
			return false, err
		}
	}
	return true, nil
}

// As resolves a and decodes the result into a value of type T.
func As[T any](a Accessor) (T, bool, error) {
	var v T
	ok, err := a.Decode(&v)
	return v, ok, err
}

// mismatch reports a failed narrowing through the channel the contract
// prescribes: a recoverable ConvertError where the contract has an error
// channel, nil (absence) under the empty contract, and a panic under the
// fatal contract.
func (a Accessor) mismatch(node *ir.Node, want string) error {
	switch a.path.Contract() {
	case path.FatalContract:
		panic(fmt.Sprintf("treenav: cannot convert %s to %s: got %s",
			a.pathString(), want, node.Type))
	case path.EmptyContract:
		return nil
	default:
		return &ConvertError{Path: a.pathString(), Want: want, Got: node.Type}
	}
}

func (a Accessor) pathString() string {
	if a.path.Len() == 0 {
		return "$"
	}
	return a.path.String()
}

// MustString is AsString panicking on error. An empty result returns the
// zero value: absence is a legitimate outcome of optional chains.
func (a Accessor) MustString() string {
	v, _, err := a.AsString()
	if err != nil {
		panic(err)
	}
	return v
}

// MustNumber is AsNumber panicking on error.
func (a Accessor) MustNumber() float64 {
	v, _, err := a.AsNumber()
	if err != nil {
		panic(err)
	}
	return v
}

// MustInt64 is AsInt64 panicking on error.
func (a Accessor) MustInt64() int64 {
	v, _, err := a.AsInt64()
	if err != nil {
		panic(err)
	}
	return v
}

// MustBool is AsBool panicking on error.
func (a Accessor) MustBool() bool {
	v, _, err := a.AsBool()
	if err != nil {
		panic(err)
	}
	return v
}

// intValue extracts an int64 from a number node. The float upper bound is
// strict against 2^63: math.MaxInt64 rounds up to 2^63 as a float64, and
// converting 2^63 to int64 wraps.
func intValue(node *ir.Node) (int64, bool) {
	if node.Int64 != nil {
		return *node.Int64, true
	}
	if node.Float64 != nil {
		f := *node.Float64
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64+1 {
			return int64(f), true
		}
	}
	return 0, false
}

func fitsInt(v int64, bitSize int) bool {
	switch bitSize {
	case 8:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 16:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 32:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return bitSize == 64
	}
}
