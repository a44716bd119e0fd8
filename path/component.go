package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Component is a single navigation step: a key or index selector plus the
// policy applied when the selector has no target. Exactly one of Key and
// Index is set.
type Component struct {
	Key    *string
	Index  *int
	Policy Policy
}

// String returns the path-syntax form of this single component, including
// its policy marker, e.g. "name", "'odd key'", "[3]?", "id!".
func (c Component) String() string {
	return c.selectorString() + c.Policy.Marker()
}

func (c Component) selectorString() string {
	if c.Index != nil {
		return fmt.Sprintf("[%d]", *c.Index)
	}
	if c.Key != nil {
		key := *c.Key
		if quoteKey(key) {
			return strconv.Quote(key)
		}
		return key
	}
	return ""
}

// quoteKey reports whether a key needs quoting in path syntax: empty keys
// and keys containing separators, policy markers, quotes, or whitespace.
func quoteKey(key string) bool {
	if key == "" {
		return true
	}
	if strings.ContainsAny(key, ".[]?!\"") {
		return true
	}
	return strings.IndexFunc(key, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) >= 0
}
