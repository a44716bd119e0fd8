package path

// Policy is the per-component failure behavior applied when a component's
// selector has no target in the tree.
type Policy int

const (
	StrictPolicy Policy = iota
	OptionalPolicy
	UnsafePolicy
)

func (p Policy) String() string {
	switch p {
	case StrictPolicy:
		return "strict"
	case OptionalPolicy:
		return "optional"
	case UnsafePolicy:
		return "unsafe"
	}
	return "<unknown policy>"
}

// Marker returns the path-syntax suffix for the policy.
func (p Policy) Marker() string {
	switch p {
	case OptionalPolicy:
		return "?"
	case UnsafePolicy:
		return "!"
	}
	return ""
}

// Contract is the aggregate failure contract of a whole path, derived from
// which policies occur anywhere in it.
type Contract int

const (
	// ThrowingContract: terminal reads may fail with a recoverable error
	// and are never empty.
	ThrowingContract Contract = iota
	// EmptyContract: terminal reads may be empty and never return an error.
	EmptyContract
	// ThrowingEmptyContract: terminal reads may be empty or fail with a
	// recoverable error; the two outcomes stay distinct.
	ThrowingEmptyContract
	// FatalContract: terminal reads neither fail nor come up empty; any
	// internal failure panics.
	FatalContract
)

func (c Contract) String() string {
	switch c {
	case ThrowingContract:
		return "throwing"
	case EmptyContract:
		return "empty"
	case ThrowingEmptyContract:
		return "throwing-empty"
	case FatalContract:
		return "fatal"
	}
	return "<unknown contract>"
}

// CanFail reports whether terminal reads under this contract have a
// recoverable error channel.
func (c Contract) CanFail() bool {
	return c == ThrowingContract || c == ThrowingEmptyContract
}

// CanBeEmpty reports whether terminal reads under this contract can
// legitimately produce no value.
func (c Contract) CanBeEmpty() bool {
	return c == EmptyContract || c == ThrowingEmptyContract
}
