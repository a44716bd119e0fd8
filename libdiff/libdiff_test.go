package libdiff

import (
	"strings"
	"testing"

	"github.com/treenav/go-treenav/ir"
)

func TestText_Equal(t *testing.T) {
	a := ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(1)})
	b := ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(1)})
	_, differs := Text(a, b, false)
	if differs {
		t.Error("equal trees reported as different")
	}
}

func TestText_Differs(t *testing.T) {
	a := ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(1), "y": ir.FromInt(2)})
	b := ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(3), "y": ir.FromInt(2)})
	text, differs := Text(a, b, false)
	if !differs {
		t.Fatal("different trees reported as equal")
	}
	if !strings.Contains(text, `-  "x": 1,`) {
		t.Errorf("missing removal line in:\n%s", text)
	}
	if !strings.Contains(text, `+  "x": 3,`) {
		t.Errorf("missing insertion line in:\n%s", text)
	}
}
