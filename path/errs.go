package path

import "errors"

var (
	// ErrNoComponent is returned when demoting an empty path.
	ErrNoComponent = errors.New("path: no component to demote")
	// ErrDemoted is returned when demoting a component that has already
	// been demoted. Demotion is single-use.
	ErrDemoted = errors.New("path: component already demoted")
	// ErrBadPath is returned by Parse for malformed path expressions.
	ErrBadPath = errors.New("path: invalid path expression")
)
