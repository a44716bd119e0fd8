package treenav

import (
	"github.com/treenav/go-treenav/ir"
	"github.com/treenav/go-treenav/path"
)

// Accessor is a transient value binding a root tree node to a path under
// construction. Navigation and demotion return new Accessors; nothing is
// ever mutated in place.
type Accessor struct {
	root *ir.Node
	path *path.Path
	err  error
}

// New returns an Accessor for root with the empty path.
func New(root *ir.Node) Accessor {
	return Accessor{root: root}
}

// At returns an Accessor for root with the path parsed from expr, e.g.
// "europe.countries[0].name" or "africa?.population".
func At(root *ir.Node, expr string) (Accessor, error) {
	p, err := path.Parse(expr)
	if err != nil {
		return Accessor{}, err
	}
	return Accessor{root: root, path: p}, nil
}

// Key appends a strict key component.
func (a Accessor) Key(name string) Accessor {
	return Accessor{root: a.root, path: a.path.Key(name), err: a.err}
}

// Index appends a strict index component.
func (a Accessor) Index(i int) Accessor {
	return Accessor{root: a.root, path: a.path.Index(i), err: a.err}
}

// MakeOptional demotes the last component to the optional policy: if its
// selector has no target, the rest of the chain short-circuits to an empty
// result instead of an error. Demoting an already demoted component, or an
// empty path, records a construction error on the returned Accessor; the
// error is reported by Err and by every terminal conversion.
func (a Accessor) MakeOptional() Accessor {
	if a.err != nil {
		return a
	}
	p, err := a.path.MakeOptional()
	if err != nil {
		return Accessor{root: a.root, path: a.path, err: err}
	}
	return Accessor{root: a.root, path: p}
}

// MakeUnsafe demotes the last component to the unsafe policy: if its
// selector has no target, resolution panics. Demotion rules are as for
// MakeOptional.
func (a Accessor) MakeUnsafe() Accessor {
	if a.err != nil {
		return a
	}
	p, err := a.path.MakeUnsafe()
	if err != nil {
		return Accessor{root: a.root, path: a.path, err: err}
	}
	return Accessor{root: a.root, path: p}
}

// Err returns the construction error recorded by an invalid demotion, or
// nil. Construction errors always surface on the error channel of terminal
// conversions, regardless of contract: they concern the path itself, not
// the data.
func (a Accessor) Err() error {
	return a.err
}

// Path returns the accessor's path.
func (a Accessor) Path() *path.Path {
	return a.path
}

// Contract returns the aggregate failure contract of the accessor's path,
// which governs how terminal conversions report failure.
func (a Accessor) Contract() path.Contract {
	return a.path.Contract()
}
