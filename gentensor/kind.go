package gentensor

// Kind identifies the active representation of a tensor. A variant's
// kind is fixed for its lifetime: changing the representation means
// constructing a new variant (see ToFullRank and ToLowRank).
type Kind int

const (
	// KindNone is the kind reported by an empty tensor handle.
	KindNone Kind = iota
	// KindFull is the dense representation: every element stored.
	KindFull
	// KindLowRank2D separates the axes into two balanced groups.
	KindLowRank2D
	// KindLowRank3D separates the first axis from the remaining ones.
	KindLowRank3D
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindFull:
		return "FullRank"
	case KindLowRank2D:
		return "LowRank-2D"
	case KindLowRank3D:
		return "LowRank-3D"
	default:
		return "Unknown"
	}
}

// IsLowRank reports whether k is one of the separated kinds.
func (k Kind) IsLowRank() bool {
	return k == KindLowRank2D || k == KindLowRank3D
}

// splitFor maps a low-rank kind to its axis bipartition point for a
// tensor of the given dimensionality.
func splitFor(k Kind, ndim int) int {
	if k == KindLowRank3D {
		return 1
	}
	s := ndim / 2
	if s < 1 {
		s = 1
	}
	return s
}
