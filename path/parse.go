package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses path syntax as produced by Path.String. Key components are
// separated by dots, index components are bracketed and attach without a
// dot, and a component may be suffixed by "?" (optional) or "!" (unsafe):
//
//	europe.countries[0].name
//	africa?.population
//	"a key with spaces".id!
//
// Keys containing separators, markers, quotes or whitespace must be quoted
// with double quotes in Go string-literal syntax. The empty string parses
// to the empty path.
func Parse(s string) (*Path, error) {
	var p *Path
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at offset %d", ErrBadPath, i)
			}
			n, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q at offset %d", ErrBadPath, s[i+1:i+j], i)
			}
			p = p.Index(n)
			i += j + 1
		case s[i] == '.':
			if p.Len() == 0 {
				return nil, fmt.Errorf("%w: leading separator", ErrBadPath)
			}
			i++
			var err error
			p, i, err = parseKey(p, s, i)
			if err != nil {
				return nil, err
			}
		default:
			if p.Len() != 0 {
				return nil, fmt.Errorf("%w: missing separator at offset %d", ErrBadPath, i)
			}
			var err error
			p, i, err = parseKey(p, s, i)
			if err != nil {
				return nil, err
			}
		}
		if i < len(s) {
			var err error
			switch s[i] {
			case '?':
				p, err = p.MakeOptional()
				i++
			case '!':
				p, err = p.MakeUnsafe()
				i++
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadPath, err)
			}
		}
	}
	return p, nil
}

func parseKey(p *Path, s string, i int) (*Path, int, error) {
	if i >= len(s) {
		return nil, 0, fmt.Errorf("%w: missing key at offset %d", ErrBadPath, i)
	}
	if s[i] == '"' {
		prefix, err := strconv.QuotedPrefix(s[i:])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: bad quoted key at offset %d", ErrBadPath, i)
		}
		key, err := strconv.Unquote(prefix)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: bad quoted key at offset %d", ErrBadPath, i)
		}
		return p.Key(key), i + len(prefix), nil
	}
	j := strings.IndexAny(s[i:], ".[]?!\"")
	if j == 0 {
		return nil, 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrBadPath, s[i], i)
	}
	if j < 0 {
		j = len(s) - i
	}
	return p.Key(s[i : i+j]), i + j, nil
}
