package treenav

import (
	"fmt"

	"github.com/treenav/go-treenav/debug"
	"github.com/treenav/go-treenav/ir"
	"github.com/treenav/go-treenav/path"
)

// resolve walks p from root, applying each component's policy in order.
// It returns the resolved node, whether a result is present, and the
// recoverable error of the first failing strict component. An optional
// component whose selector has no target short-circuits: the remaining
// components are skipped and the walk reports absence with no error. An
// unsafe component whose selector has no target panics.
func resolve(root *ir.Node, p *path.Path) (*ir.Node, bool, error) {
	cursor := root
	n := p.Len()
	for i := 0; i < n; i++ {
		c := p.At(i)
		next, cause := step(cursor, c)
		if cause == nil {
			if debug.Resolve() {
				debug.Logf("resolve %s -> %s\n", p.Prefix(i+1), next.Type)
			}
			cursor = next
			continue
		}
		switch c.Policy {
		case path.OptionalPolicy:
			if debug.Resolve() {
				debug.Logf("resolve %s empty: %v\n", p.Prefix(i+1), cause)
			}
			return nil, false, nil
		case path.UnsafePolicy:
			panic(fmt.Sprintf("treenav: unsafe access %s: %v", p.Prefix(i+1), cause))
		default:
			return nil, false, &ResolveError{Path: p.Prefix(i + 1), Err: cause}
		}
	}
	return cursor, true, nil
}

// step resolves one selector against the cursor. Selector/shape pairings
// that don't line up (key against a non-object, index against a non-array)
// are "no target" causes like a missing key, not shape errors; shape
// errors exist only in terminal conversions.
func step(cursor *ir.Node, c path.Component) (*ir.Node, error) {
	switch {
	case c.Key != nil:
		if cursor.Type != ir.ObjectType {
			return nil, ErrNotAMap
		}
		v := ir.Get(cursor, *c.Key)
		if v == nil || v.Type == ir.NullType {
			return nil, ErrKeyNotFound
		}
		return v, nil
	case c.Index != nil:
		if cursor.Type != ir.ArrayType {
			return nil, ErrNotAList
		}
		i := *c.Index
		if i < 0 || i >= len(cursor.Values) {
			return nil, ErrIndexOutOfRange
		}
		return cursor.Values[i], nil
	}
	return nil, fmt.Errorf("component has no selector")
}
