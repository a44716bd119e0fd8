package parse

import "fmt"

type Format int

const (
	AutoFormat Format = iota
	JSONFormat
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat parses a format name: json/j, yaml/y, auto.
func ParseFormat(v string) (Format, error) {
	switch v {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	case "auto", "":
		return AutoFormat, nil
	}
	return AutoFormat, fmt.Errorf("unknown format %q", v)
}

type parseOpts struct {
	format Format
}

type Option func(*parseOpts)

func WithFormat(f Format) Option {
	return func(po *parseOpts) { po.format = f }
}
