package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treenav/go-treenav/ir"
)

type country struct {
	Name       string   `json:"name"`
	Population int64    `json:"population"`
	Tags       []string `json:"tags,omitempty"`
}

func TestFromIR(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("germany")},
		{Key: "population", Val: ir.FromInt(83000000)},
		{Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("eu")})},
	})
	var c country
	if err := FromIR(node, &c); err != nil {
		t.Fatal(err)
	}
	want := country{Name: "germany", Population: 83000000, Tags: []string{"eu"}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("FromIR mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIR_Scalar(t *testing.T) {
	var s string
	if err := FromIR(ir.FromString("x"), &s); err != nil {
		t.Fatal(err)
	}
	if s != "x" {
		t.Errorf("s = %q, want x", s)
	}
}

func TestFromIR_TypeError(t *testing.T) {
	var n int
	err := FromIR(ir.FromString("not a number"), &n)
	if err == nil {
		t.Fatal("expected error")
	}
	var dErr *DecodeError
	if !errors.As(err, &dErr) {
		t.Fatalf("error is %T, want *DecodeError", err)
	}
}

func TestToIR(t *testing.T) {
	node, err := ToIR(country{Name: "france", Population: 68000000})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "name"); got == nil || got.String != "france" {
		t.Errorf("name = %v", got)
	}
	var back country
	if err := FromIR(node, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "france" || back.Population != 68000000 {
		t.Errorf("round trip = %+v", back)
	}
}
