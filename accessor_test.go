package treenav

import (
	"errors"
	"testing"

	"github.com/treenav/go-treenav/ir"
	"github.com/treenav/go-treenav/parse"
	"github.com/treenav/go-treenav/path"
)

const worldDoc = `{"europe":{"population":746419440,"countries":[{"name":"germany"}]}}`

func worldTree(t *testing.T) *ir.Node {
	t.Helper()
	node, err := parse.JSON([]byte(worldDoc))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestAccessor_StrictInteger(t *testing.T) {
	v, ok, err := New(worldTree(t)).Key("europe").Key("population").AsInt64()
	if err != nil {
		t.Fatalf("AsInt64() error: %v", err)
	}
	if !ok {
		t.Fatal("AsInt64() not present")
	}
	if v != 746419440 {
		t.Errorf("AsInt64() = %d, want 746419440", v)
	}
}

func TestAccessor_StrictMissingKey(t *testing.T) {
	_, _, err := New(worldTree(t)).Key("europe").Key("unknown").AsString()
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("AsString() error = %v, want ErrKeyNotFound", err)
	}
	var rErr *ResolveError
	if !errors.As(err, &rErr) {
		t.Fatalf("error is %T, want *ResolveError", err)
	}
	if rErr.Path != "europe.unknown" {
		t.Errorf("ResolveError.Path = %q, want europe.unknown", rErr.Path)
	}
}

func TestAccessor_NestedIndex(t *testing.T) {
	v, ok, err := New(worldTree(t)).
		Key("europe").Key("countries").Index(0).Key("name").AsString()
	if err != nil || !ok {
		t.Fatalf("AsString() = (_, %v, %v)", ok, err)
	}
	if v != "germany" {
		t.Errorf("AsString() = %q, want germany", v)
	}
}

func TestAccessor_OptionalShortCircuit(t *testing.T) {
	// africa is absent at the root; everything after the optional step
	// is skipped, no error
	v, ok, err := New(worldTree(t)).
		Key("africa").MakeOptional().Key("population").AsInt64()
	if err != nil {
		t.Fatalf("AsInt64() error: %v", err)
	}
	if ok {
		t.Fatalf("AsInt64() = %d, want empty", v)
	}
}

func TestAccessor_OptionalList(t *testing.T) {
	_, ok, err := New(worldTree(t)).
		Key("europe").Key("area").MakeOptional().AsList()
	if err != nil {
		t.Fatalf("AsList() error: %v", err)
	}
	if ok {
		t.Fatal("AsList() present, want empty")
	}
}

func TestAccessor_UnsafePresent(t *testing.T) {
	v, ok, err := New(worldTree(t)).
		Key("europe").Key("population").MakeUnsafe().AsInt64()
	if err != nil || !ok {
		t.Fatalf("AsInt64() = (_, %v, %v)", ok, err)
	}
	if v != 746419440 {
		t.Errorf("AsInt64() = %d, want 746419440", v)
	}
}

func TestAccessor_UnsafeAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(worldTree(t)).Key("europe").Key("missing").MakeUnsafe().AsInt64()
}

func TestAccessor_DemoteTwiceSticky(t *testing.T) {
	a := New(worldTree(t)).Key("europe").MakeOptional().MakeUnsafe()
	if !errors.Is(a.Err(), path.ErrDemoted) {
		t.Fatalf("Err() = %v, want ErrDemoted", a.Err())
	}
	// every terminal surfaces the construction error
	_, _, err := a.AsString()
	if !errors.Is(err, path.ErrDemoted) {
		t.Errorf("AsString() error = %v, want ErrDemoted", err)
	}
	_, _, err = a.Key("population").AsInt64()
	if !errors.Is(err, path.ErrDemoted) {
		t.Errorf("chained AsInt64() error = %v, want ErrDemoted", err)
	}
}

func TestAccessor_DemoteEmptySticky(t *testing.T) {
	a := New(worldTree(t)).MakeOptional()
	if !errors.Is(a.Err(), path.ErrNoComponent) {
		t.Fatalf("Err() = %v, want ErrNoComponent", a.Err())
	}
}

func TestAccessor_Contract(t *testing.T) {
	root := worldTree(t)
	tests := []struct {
		name string
		acc  Accessor
		want path.Contract
	}{
		{"strict", New(root).Key("europe").Key("population"), path.ThrowingContract},
		{"optional", New(root).Key("africa").MakeOptional(), path.EmptyContract},
		{"mixed", New(root).Key("africa").MakeOptional().Key("population"), path.ThrowingEmptyContract},
		{"unsafe", New(root).Key("europe").MakeUnsafe(), path.FatalContract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.acc.Contract(); got != tt.want {
				t.Errorf("Contract() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	root := worldTree(t)
	v, ok, err := mustAt(t, root, "europe.countries[0].name").AsString()
	if err != nil || !ok {
		t.Fatalf("AsString() = (_, %v, %v)", ok, err)
	}
	if v != "germany" {
		t.Errorf("AsString() = %q, want germany", v)
	}
	_, ok, err = mustAt(t, root, "africa?.population").AsInt64()
	if err != nil || ok {
		t.Fatalf("AsInt64() = (_, %v, %v), want empty", ok, err)
	}
	if _, err := At(root, ".bad"); !errors.Is(err, path.ErrBadPath) {
		t.Errorf("At(.bad) error = %v, want ErrBadPath", err)
	}
}

func mustAt(t *testing.T, root *ir.Node, expr string) Accessor {
	t.Helper()
	a, err := At(root, expr)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
