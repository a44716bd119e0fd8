package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treenav/go-treenav/ir"
)

func TestParse_JSON(t *testing.T) {
	node, err := JSON([]byte(`{"europe":{"population":746419440,"countries":[{"name":"germany"}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	pop := ir.Get(ir.Get(node, "europe"), "population")
	if pop == nil || pop.Int64 == nil || *pop.Int64 != 746419440 {
		t.Errorf("population = %v", pop)
	}
	countries := ir.Get(ir.Get(node, "europe"), "countries")
	if countries == nil || countries.Type != ir.ArrayType || len(countries.Values) != 1 {
		t.Fatalf("countries = %v", countries)
	}
	if name := ir.Get(countries.Values[0], "name"); name == nil || name.String != "germany" {
		t.Errorf("name = %v", name)
	}
}

func TestParse_YAML(t *testing.T) {
	node, err := YAML([]byte("europe:\n  population: 746419440\n  countries:\n    - name: germany\n"))
	if err != nil {
		t.Fatal(err)
	}
	jNode, err := JSON([]byte(`{"europe":{"population":746419440,"countries":[{"name":"germany"}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(node, jNode) != 0 {
		t.Errorf("YAML and JSON trees differ:\n%s", cmp.Diff(ir.ToAny(jNode), ir.ToAny(node)))
	}
}

func TestParse_Auto(t *testing.T) {
	jNode, err := Parse([]byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(jNode, "a") == nil {
		t.Error("auto json: missing a")
	}
	yNode, err := Parse([]byte("a: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(yNode, "a") == nil {
		t.Error("auto yaml: missing a")
	}
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{`"x"`, ir.StringType},
		{`3`, ir.NumberType},
		{`3.25`, ir.NumberType},
		{`true`, ir.BoolType},
		{`null`, ir.NullType},
		{`[]`, ir.ArrayType},
		{`{}`, ir.ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node, err := JSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if node.Type != tt.want {
				t.Errorf("Type = %s, want %s", node.Type, tt.want)
			}
		})
	}
}

func TestParse_InvalidEncoding(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, '{', '}'})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("error = %v, want ErrInvalidEncoding", err)
	}
}

func TestParse_InvalidTree(t *testing.T) {
	_, err := JSON([]byte(`{"unclosed":`))
	if !errors.Is(err, ErrInvalidTree) {
		t.Errorf("json error = %v, want ErrInvalidTree", err)
	}
	_, err = YAML([]byte("a: [unclosed\n"))
	if !errors.Is(err, ErrInvalidTree) {
		t.Errorf("yaml error = %v, want ErrInvalidTree", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		bad  bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"y", YAMLFormat, false},
		{"auto", AutoFormat, false},
		{"", AutoFormat, false},
		{"xml", AutoFormat, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFormat(tt.in)
			if tt.bad {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if f != tt.want {
				t.Errorf("ParseFormat() = %s, want %s", f, tt.want)
			}
		})
	}
}
