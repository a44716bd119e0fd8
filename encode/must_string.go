package encode

import (
	"bytes"
	"strings"

	"github.com/treenav/go-treenav/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeCompact(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
