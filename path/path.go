package path

import (
	"slices"
	"strings"
)

// Path is an ordered, append-only sequence of components. The zero value
// (nil) is the empty path. Paths are immutable; Key, Index, MakeOptional
// and MakeUnsafe return new paths sharing no mutable state with their
// receiver, so a Path may be used from any number of goroutines.
type Path struct {
	comps []Component
}

// Key appends a key component with StrictPolicy.
func (p *Path) Key(name string) *Path {
	return p.append(Component{Key: &name, Policy: StrictPolicy})
}

// Index appends an index component with StrictPolicy.
func (p *Path) Index(i int) *Path {
	return p.append(Component{Index: &i, Policy: StrictPolicy})
}

func (p *Path) append(c Component) *Path {
	n := p.Len()
	comps := make([]Component, n+1)
	if n > 0 {
		copy(comps, p.comps)
	}
	comps[n] = c
	return &Path{comps: comps}
}

// MakeOptional demotes the last component from StrictPolicy to
// OptionalPolicy. It fails on an empty path and on a component that has
// already been demoted: demotion is single-use and applies only to the
// last component, before anything further is appended.
func (p *Path) MakeOptional() (*Path, error) {
	return p.demote(OptionalPolicy)
}

// MakeUnsafe demotes the last component from StrictPolicy to UnsafePolicy,
// under the same rules as MakeOptional.
func (p *Path) MakeUnsafe() (*Path, error) {
	return p.demote(UnsafePolicy)
}

func (p *Path) demote(to Policy) (*Path, error) {
	n := p.Len()
	if n == 0 {
		return nil, ErrNoComponent
	}
	if p.comps[n-1].Policy != StrictPolicy {
		return nil, ErrDemoted
	}
	comps := slices.Clone(p.comps)
	comps[n-1].Policy = to
	return &Path{comps: comps}, nil
}

func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.comps)
}

// At returns the i-th component.
func (p *Path) At(i int) Component {
	return p.comps[i]
}

// Components returns a copy of the component sequence.
func (p *Path) Components() []Component {
	if p == nil {
		return nil
	}
	return slices.Clone(p.comps)
}

// Contract computes the aggregate failure contract from the policies
// present anywhere in the path. Component order does not matter: an
// optional component short-circuits everything after it at runtime, but
// the static worst case across input shapes already has to account for
// every policy category present.
//
// The empty path has no resolution failure modes at all; its terminal
// reads can still hit shape mismatches, which stay on the recoverable
// error channel, so it classifies as ThrowingContract.
func (p *Path) Contract() Contract {
	if p.Len() == 0 {
		return ThrowingContract
	}
	var strict, optional bool
	for i := range p.comps {
		switch p.comps[i].Policy {
		case StrictPolicy:
			strict = true
		case OptionalPolicy:
			optional = true
		}
	}
	switch {
	case optional && strict:
		return ThrowingEmptyContract
	case optional:
		return EmptyContract
	case strict:
		return ThrowingContract
	default:
		return FatalContract
	}
}

// String returns the path-syntax form, parseable by Parse.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return render(p.comps)
}

// Prefix returns the path-syntax form of the first n components, used to
// locate failures in diagnostics.
func (p *Path) Prefix(n int) string {
	if p == nil {
		return ""
	}
	return render(p.comps[:n])
}

func render(comps []Component) string {
	var b strings.Builder
	for i := range comps {
		if comps[i].Key != nil && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(comps[i].String())
	}
	return b.String()
}
