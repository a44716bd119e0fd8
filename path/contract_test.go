package path

import "testing"

// mkPath builds a path with one key component per policy given.
func mkPath(t *testing.T, policies ...Policy) *Path {
	t.Helper()
	var p *Path
	for i, pol := range policies {
		p = p.Key("k" + string(rune('a'+i)))
		var err error
		switch pol {
		case OptionalPolicy:
			p, err = p.MakeOptional()
		case UnsafePolicy:
			p, err = p.MakeUnsafe()
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestContract_Classify(t *testing.T) {
	tests := []struct {
		name     string
		policies []Policy
		want     Contract
	}{
		{"strict", []Policy{StrictPolicy}, ThrowingContract},
		{"strict-strict", []Policy{StrictPolicy, StrictPolicy}, ThrowingContract},
		{"optional", []Policy{OptionalPolicy}, EmptyContract},
		{"optional-optional", []Policy{OptionalPolicy, OptionalPolicy}, EmptyContract},
		{"strict-optional", []Policy{StrictPolicy, OptionalPolicy}, ThrowingEmptyContract},
		{"optional-strict", []Policy{OptionalPolicy, StrictPolicy}, ThrowingEmptyContract},
		{"unsafe", []Policy{UnsafePolicy}, FatalContract},
		{"unsafe-unsafe", []Policy{UnsafePolicy, UnsafePolicy}, FatalContract},
		// unsafe components add panic risk but never change the contract
		{"strict-unsafe", []Policy{StrictPolicy, UnsafePolicy}, ThrowingContract},
		{"unsafe-strict", []Policy{UnsafePolicy, StrictPolicy}, ThrowingContract},
		{"optional-unsafe", []Policy{OptionalPolicy, UnsafePolicy}, EmptyContract},
		{"all-three", []Policy{StrictPolicy, OptionalPolicy, UnsafePolicy}, ThrowingEmptyContract},
		{"all-three-reversed", []Policy{UnsafePolicy, OptionalPolicy, StrictPolicy}, ThrowingEmptyContract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mkPath(t, tt.policies...)
			if got := p.Contract(); got != tt.want {
				t.Errorf("Contract() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestContract_EmptyPath(t *testing.T) {
	var p *Path
	if got := p.Contract(); got != ThrowingContract {
		t.Errorf("empty path Contract() = %s, want throwing", got)
	}
}

func TestContract_Channels(t *testing.T) {
	tests := []struct {
		c        Contract
		canFail  bool
		canEmpty bool
	}{
		{ThrowingContract, true, false},
		{EmptyContract, false, true},
		{ThrowingEmptyContract, true, true},
		{FatalContract, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.CanFail(); got != tt.canFail {
				t.Errorf("CanFail() = %v, want %v", got, tt.canFail)
			}
			if got := tt.c.CanBeEmpty(); got != tt.canEmpty {
				t.Errorf("CanBeEmpty() = %v, want %v", got, tt.canEmpty)
			}
		})
	}
}
