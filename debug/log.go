package debug

import (
	"fmt"
	"os"

	"github.com/treenav/go-treenav/encode"
	"github.com/treenav/go-treenav/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = encode.MustString(x)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
