package gentensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
)

// Range re-exports the per-axis half-open slice range of core/dense.
type Range = dense.Range

// All returns the Range covering a whole axis.
func All() Range {
	return dense.All()
}

// Representation is the capability contract every concrete variant
// implements. Two variants are wired in: the dense full-rank variant
// and the separated low-rank variant.
//
// Every binary operation checks kind equality before touching any data
// and returns a KindMismatchError on violation; kinds are never
// coerced. Capabilities a variant cannot express (axis swap or direct
// dense access on a low-rank tensor) fail with a NotSupportedError
// instead of degrading to a wrong value.
type Representation interface {
	// Kind returns the variant's representation kind.
	Kind() Kind
	// HasData reports whether the variant carries content (a
	// dimensioned zero tensor counts as content).
	HasData() bool
	// Size returns the number of stored coefficients.
	Size() int
	// Ndim returns the number of axes.
	Ndim() int
	// Dim returns the extent of one axis.
	Dim(axis int) (int, error)
	// Rank returns the separation rank, or -1 for the dense variant
	// where rank is not applicable.
	Rank() int

	// CloneDeep returns a deep copy of the same kind.
	CloneDeep() Representation
	// CloneSliced returns a deep copy restricted to ranges, one per
	// axis, of the same kind.
	CloneSliced(ranges []Range) (Representation, error)

	// ReduceRank shrinks a separated representation within eps; it is
	// a no-op for the dense variant.
	ReduceRank(eps float64) error
	// Normf returns the Frobenius norm.
	Normf() (float64, error)
	// TraceConj returns the inner product with other (same kind).
	TraceConj(other Representation) (float64, error)
	// Scale multiplies the content by a.
	Scale(a float64)
	// Gaxpy performs self <- alpha*self + beta*other (same kind,
	// same extents).
	Gaxpy(alpha float64, other Representation, beta float64) error

	// TransformAll contracts every axis against c.
	TransformAll(c *mat.Dense) (Representation, error)
	// TransformEach contracts axis i against cs[i].
	TransformEach(cs []*mat.Dense) (Representation, error)
	// TransformDim contracts only the named axis against c.
	TransformDim(c *mat.Dense, axis int) (Representation, error)

	// InplaceAdd accumulates other restricted to rhsRanges into the
	// lhsRanges region of self (same kind; rank may grow).
	InplaceAdd(other Representation, lhsRanges, rhsRanges []Range) error
	// AccumulateIntoDense adds fac times the (reconstructed) content
	// into a dense target.
	AccumulateIntoDense(target *dense.Tensor, fac float64) error
	// AccumulateInto adds fac times the content into another variant
	// of the same kind.
	AccumulateInto(other Representation, fac float64) error
	// UpdateBy accumulates other without intermediate rank reduction;
	// FinalizeAccumulate closes such a batch.
	UpdateBy(other Representation) error
	// FinalizeAccumulate reduces the rank after a batch of UpdateBy
	// calls; a no-op for the dense variant.
	FinalizeAccumulate() error

	// FullTensor returns a reference to the dense storage without any
	// copy; the low-rank variant fails (reconstruct first).
	FullTensor() (*dense.Tensor, error)
	// Reconstruct returns a dense tensor holding the full content;
	// for the low-rank variant this materializes every element.
	Reconstruct() (*dense.Tensor, error)

	// SwapDims exchanges two axes; not supported for the low-rank
	// variant.
	SwapDims(i, j int) (Representation, error)
	// FillRandom fills the variant with random content.
	FillRandom() error
}
