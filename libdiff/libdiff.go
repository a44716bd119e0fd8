// Package libdiff renders line-based diffs of canonically encoded trees.
package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treenav/go-treenav/encode"
	"github.com/treenav/go-treenav/ir"
)

// Text returns a unified-style line diff between the canonical encodings
// of from and to, and whether the two trees differ at all. With colorize,
// removals are red and insertions green.
func Text(from, to *ir.Node, colorize bool) (string, bool) {
	fromText := encodeLines(from)
	toText := encodeLines(to)
	dmp := diffpatch.New()
	f, t, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(f, t, false), lines)

	var b strings.Builder
	differs := false
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			differs = true
			writePrefixed(&b, "-", d.Text, colorize, color.RedString)
		case diffpatch.DiffInsert:
			differs = true
			writePrefixed(&b, "+", d.Text, colorize, color.GreenString)
		case diffpatch.DiffEqual:
			writePrefixed(&b, " ", d.Text, false, nil)
		}
	}
	return b.String(), differs
}

func encodeLines(node *ir.Node) string {
	var b strings.Builder
	if err := encode.Encode(node, &b); err != nil {
		panic(err)
	}
	return b.String()
}

func writePrefixed(b *strings.Builder, prefix, text string, colorize bool, cf func(string, ...any) string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		out := prefix + line
		if colorize && cf != nil {
			out = cf("%s", out)
		}
		b.WriteString(out)
		b.WriteByte('\n')
	}
}
