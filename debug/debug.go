// Package debug provides env-gated debug tracing. Set TN_DEBUG_RESOLVE or
// TN_DEBUG_FILTER to a truthy value to enable the corresponding traces on
// stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Filter  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("TN_DEBUG_RESOLVE")
	d.Filter = boolEnv("TN_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}

func Filter() bool {
	return d.Filter
}
