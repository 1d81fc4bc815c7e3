package gentensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/core/seprep"
	"github.com/ezoic/gentensor/pkg/errors"
)

// GenTensor is the value-semantics front-end over a shared
// representation variant.
//
// Copying a GenTensor value copies the handle, not the content: both
// copies alias one variant, and in-place mutation through either is
// visible through the other. Deep copies are a distinct, named
// operation (Duplicate); construction from a dense tensor or from a
// slice expression is always deep. This asymmetry is the central
// contract clients must respect.
//
// The zero value is the empty tensor: KindNone, no data. Emptiness
// queries are valid on it; numerical methods return an EmptyError.
type GenTensor struct {
	repr Representation
}

// NewOfKind creates a dimensionless tensor of the given kind, to be
// filled by assignment or conversion later.
func NewOfKind(kind Kind) (GenTensor, error) {
	switch kind {
	case KindFull:
		return GenTensor{repr: newFullRepr(dense.Empty())}, nil
	case KindLowRank2D, KindLowRank3D:
		return GenTensor{repr: newLowRankRepr(seprep.Empty(), kind, 0)}, nil
	default:
		return GenTensor{}, errors.NewValueError("gentensor.NewOfKind", "unknown representation kind")
	}
}

// New creates a zero-valued tensor with the given extents and kind.
// The low-rank zero tensor has rank zero, which is a valid state.
func New(dims []int, kind Kind) (GenTensor, error) {
	const op = "gentensor.New"
	switch kind {
	case KindFull:
		t, err := dense.New(dims...)
		if err != nil {
			return GenTensor{}, err
		}
		return GenTensor{repr: newFullRepr(t)}, nil
	case KindLowRank2D, KindLowRank3D:
		sr, err := seprep.Zero(dims, splitFor(kind, len(dims)))
		if err != nil {
			return GenTensor{}, err
		}
		return GenTensor{repr: newLowRankRepr(sr, kind, 0)}, nil
	default:
		return GenTensor{}, errors.NewValueError(op, "unknown representation kind")
	}
}

// NewWithArgs creates a zero-valued tensor with the given extents and
// the kind and tolerance bundled in args.
func NewWithArgs(dims []int, args TensorArgs) (GenTensor, error) {
	g, err := New(dims, args.Kind)
	if err != nil {
		return GenTensor{}, err
	}
	if lr, ok := g.repr.(*lowRankRepr); ok {
		lr.thresh = args.Thresh
	}
	return g, nil
}

// FromDenseEps deep-constructs a tensor of the target kind from a
// dense tensor. Low-rank targets decompose within eps, which must be
// positive; the dense target ignores eps and copies.
func FromDenseEps(t *dense.Tensor, eps float64, kind Kind) (GenTensor, error) {
	const op = "gentensor.FromDenseEps"
	switch kind {
	case KindFull:
		return GenTensor{repr: newFullRepr(t.Copy())}, nil
	case KindLowRank2D, KindLowRank3D:
		if eps <= 0 {
			return GenTensor{}, errors.NewValueError(op, "tolerance must be positive for low-rank kinds")
		}
		sr, err := seprep.Decompose(t, eps, splitFor(kind, t.Ndim()))
		if err != nil {
			return GenTensor{}, err
		}
		return GenTensor{repr: newLowRankRepr(sr, kind, eps)}, nil
	default:
		return GenTensor{}, errors.NewValueError(op, "unknown representation kind")
	}
}

// FromDense deep-constructs a tensor using the bundled args.
func FromDense(t *dense.Tensor, args TensorArgs) (GenTensor, error) {
	return FromDenseEps(t, args.Thresh, args.Kind)
}

// Duplicate returns a deep copy of g: a fresh variant of the same
// kind, never aliasing g. Duplicating an empty tensor yields an empty
// tensor.
func Duplicate(g GenTensor) GenTensor {
	if g.repr == nil {
		return GenTensor{}
	}
	return GenTensor{repr: g.repr.CloneDeep()}
}

// requireData guards numerical methods against the empty state.
func (g *GenTensor) requireData(op string) error {
	if g.repr == nil || !g.repr.HasData() {
		return errors.NewEmptyError(op)
	}
	return nil
}

// HasData reports whether the tensor carries content.
func (g *GenTensor) HasData() bool {
	return g.repr != nil && g.repr.HasData()
}

// Kind returns the active representation kind, KindNone when empty.
func (g *GenTensor) Kind() Kind {
	if g.repr == nil {
		return KindNone
	}
	return g.repr.Kind()
}

// Size returns the number of stored coefficients, zero when empty.
func (g *GenTensor) Size() int {
	if g.repr == nil {
		return 0
	}
	return g.repr.Size()
}

// Ndim returns the number of axes, or -1 for the empty tensor.
func (g *GenTensor) Ndim() int {
	if g.repr == nil {
		return -1
	}
	return g.repr.Ndim()
}

// Rank returns the separation rank: -1 for the dense kind, 0 for the
// empty tensor.
func (g *GenTensor) Rank() int {
	if g.repr == nil {
		return 0
	}
	return g.repr.Rank()
}

// Dim returns the extent of one axis.
func (g *GenTensor) Dim(axis int) (int, error) {
	if err := g.requireData("gentensor.Dim"); err != nil {
		return 0, err
	}
	return g.repr.Dim(axis)
}

// Normf returns the Frobenius norm.
func (g *GenTensor) Normf() (float64, error) {
	if err := g.requireData("gentensor.Normf"); err != nil {
		return 0, err
	}
	return g.repr.Normf()
}

// TraceConj returns the inner product <g|rhs>. Both operands must
// share one kind.
func (g *GenTensor) TraceConj(rhs *GenTensor) (float64, error) {
	const op = "gentensor.TraceConj"
	if err := g.requireData(op); err != nil {
		return 0, err
	}
	if err := rhs.requireData(op); err != nil {
		return 0, err
	}
	return g.repr.TraceConj(rhs.repr)
}

// AddAssign accumulates rhs into g in place (g += rhs). Kinds must
// match; for the low-rank kind the rank grows.
func (g *GenTensor) AddAssign(rhs *GenTensor) error {
	const op = "gentensor.AddAssign"
	if err := g.requireData(op); err != nil {
		return err
	}
	if err := rhs.requireData(op); err != nil {
		return err
	}
	if g.Kind() != rhs.Kind() {
		return errors.NewKindMismatchError(op, g.Kind().String(), rhs.Kind().String())
	}
	return rhs.repr.AccumulateInto(g.repr, 1)
}

// AddAssignSlice accumulates the slice rhs into the whole of g.
func (g *GenTensor) AddAssignSlice(rhs SliceRef) error {
	const op = "gentensor.AddAssignSlice"
	if err := g.requireData(op); err != nil {
		return err
	}
	if g.Kind() != rhs.ref.Kind() {
		return errors.NewKindMismatchError(op, g.Kind().String(), rhs.ref.Kind().String())
	}
	return g.repr.InplaceAdd(rhs.ref.repr, dense.FullRanges(g.Ndim()), rhs.ranges)
}

// Gaxpy performs the in-place generalized combination
// g <- alpha*g + beta*rhs with real coefficients.
func (g *GenTensor) Gaxpy(alpha float64, rhs *GenTensor, beta float64) error {
	const op = "gentensor.Gaxpy"
	if err := g.requireData(op); err != nil {
		return err
	}
	if err := rhs.requireData(op); err != nil {
		return err
	}
	if g.Kind() != rhs.Kind() {
		return errors.NewKindMismatchError(op, g.Kind().String(), rhs.Kind().String())
	}
	return g.repr.Gaxpy(alpha, rhs.repr, beta)
}

// GaxpyComplex is a documented gap: only real coefficients are
// supported, complex ones fail explicitly.
func (g *GenTensor) GaxpyComplex(alpha complex128, rhs *GenTensor, beta complex128) error {
	return errors.NewNotSupportedError("gentensor.GaxpyComplex", "complex gaxpy coefficients")
}

// Scale multiplies the content by a in place. Scaling an empty tensor
// is a no-op.
func (g *GenTensor) Scale(a float64) {
	if g.repr != nil {
		g.repr.Scale(a)
	}
}

// MulScalar returns a deep copy of g scaled by a.
func (g *GenTensor) MulScalar(a float64) (GenTensor, error) {
	if err := g.requireData("gentensor.MulScalar"); err != nil {
		return GenTensor{}, err
	}
	out := Duplicate(*g)
	out.Scale(a)
	return out, nil
}

// Emul, the elementwise multiply, is a documented gap for generic
// tensors and fails explicitly.
func (g *GenTensor) Emul(rhs *GenTensor) error {
	return errors.NewNotSupportedError("gentensor.Emul", "elementwise multiply")
}

// ReduceRank shrinks the low-rank representation within eps; a no-op
// for the dense kind.
func (g *GenTensor) ReduceRank(eps float64) error {
	if err := g.requireData("gentensor.ReduceRank"); err != nil {
		return err
	}
	return g.repr.ReduceRank(eps)
}

// TransformAll contracts every axis against c and returns a new
// tensor of the same kind.
func (g *GenTensor) TransformAll(c *mat.Dense) (GenTensor, error) {
	if err := g.requireData("gentensor.TransformAll"); err != nil {
		return GenTensor{}, err
	}
	r, err := g.repr.TransformAll(c)
	if err != nil {
		return GenTensor{}, err
	}
	return GenTensor{repr: r}, nil
}

// TransformEach contracts axis i against cs[i] and returns a new
// tensor of the same kind.
func (g *GenTensor) TransformEach(cs []*mat.Dense) (GenTensor, error) {
	if err := g.requireData("gentensor.TransformEach"); err != nil {
		return GenTensor{}, err
	}
	r, err := g.repr.TransformEach(cs)
	if err != nil {
		return GenTensor{}, err
	}
	return GenTensor{repr: r}, nil
}

// TransformDim contracts only the named axis against c and returns a
// new tensor of the same kind.
func (g *GenTensor) TransformDim(c *mat.Dense, axis int) (GenTensor, error) {
	if err := g.requireData("gentensor.TransformDim"); err != nil {
		return GenTensor{}, err
	}
	r, err := g.repr.TransformDim(c, axis)
	if err != nil {
		return GenTensor{}, err
	}
	return GenTensor{repr: r}, nil
}

// AccumulateIntoDense adds fac times the content of g into target,
// reconstructing a low-rank g first.
func (g *GenTensor) AccumulateIntoDense(target *dense.Tensor, fac float64) error {
	if err := g.requireData("gentensor.AccumulateIntoDense"); err != nil {
		return err
	}
	return g.repr.AccumulateIntoDense(target, fac)
}

// AccumulateInto adds fac times the content of g into rhs, which must
// share g's kind.
func (g *GenTensor) AccumulateInto(rhs *GenTensor, fac float64) error {
	const op = "gentensor.AccumulateInto"
	if err := g.requireData(op); err != nil {
		return err
	}
	if err := rhs.requireData(op); err != nil {
		return err
	}
	if g.Kind() != rhs.Kind() {
		return errors.NewKindMismatchError(op, g.Kind().String(), rhs.Kind().String())
	}
	return g.repr.AccumulateInto(rhs.repr, fac)
}

// AccumulateIntoDenseComplex is a documented gap: complex factors are
// not implemented and fail explicitly.
func (g *GenTensor) AccumulateIntoDenseComplex(target *dense.Tensor, fac complex128) error {
	return errors.NewNotSupportedError("gentensor.AccumulateIntoDenseComplex", "complex accumulation factor")
}

// AccumulateIntoComplex is a documented gap like AccumulateIntoDenseComplex.
func (g *GenTensor) AccumulateIntoComplex(rhs *GenTensor, fac complex128) error {
	return errors.NewNotSupportedError("gentensor.AccumulateIntoComplex", "complex accumulation factor")
}

// UpdateBy accumulates rhs into g without intermediate rank
// reduction; close the batch with FinalizeAccumulate.
func (g *GenTensor) UpdateBy(rhs *GenTensor) error {
	const op = "gentensor.UpdateBy"
	if err := g.requireData(op); err != nil {
		return err
	}
	if err := rhs.requireData(op); err != nil {
		return err
	}
	if g.Kind() != rhs.Kind() {
		return errors.NewKindMismatchError(op, g.Kind().String(), rhs.Kind().String())
	}
	return g.repr.UpdateBy(rhs.repr)
}

// FinalizeAccumulate compresses after a batch of UpdateBy calls.
func (g *GenTensor) FinalizeAccumulate() error {
	if err := g.requireData("gentensor.FinalizeAccumulate"); err != nil {
		return err
	}
	return g.repr.FinalizeAccumulate()
}

// FullTensor returns a reference to the dense storage without copying;
// it fails for low-rank and empty tensors.
func (g *GenTensor) FullTensor() (*dense.Tensor, error) {
	if err := g.requireData("gentensor.FullTensor"); err != nil {
		return nil, err
	}
	return g.repr.FullTensor()
}

// Reconstruct returns a dense tensor holding the full content; for
// the low-rank kind this materializes every element.
func (g *GenTensor) Reconstruct() (*dense.Tensor, error) {
	if err := g.requireData("gentensor.Reconstruct"); err != nil {
		return nil, err
	}
	return g.repr.Reconstruct()
}

// FullTensorCopy returns a dense tensor no matter the kind: a copy
// for the dense kind, a reconstruction for the low-rank kinds, and an
// empty dense tensor for the empty handle.
func (g *GenTensor) FullTensorCopy() (*dense.Tensor, error) {
	switch g.Kind() {
	case KindNone:
		return dense.Empty(), nil
	case KindFull:
		t, err := g.repr.FullTensor()
		if err != nil {
			return nil, err
		}
		return t.Copy(), nil
	case KindLowRank2D, KindLowRank3D:
		return g.repr.Reconstruct()
	default:
		return nil, errors.NewValueError("gentensor.FullTensorCopy", "unknown representation kind")
	}
}

// SwapDims exchanges two axes, returning a new tensor. Only the dense
// kind supports this.
func (g *GenTensor) SwapDims(i, j int) (GenTensor, error) {
	if err := g.requireData("gentensor.SwapDims"); err != nil {
		return GenTensor{}, err
	}
	r, err := g.repr.SwapDims(i, j)
	if err != nil {
		return GenTensor{}, err
	}
	return GenTensor{repr: r}, nil
}

// FillRandom fills the tensor with random content (test utility).
func (g *GenTensor) FillRandom() error {
	if g.repr == nil {
		return errors.NewEmptyError("gentensor.FillRandom")
	}
	return g.repr.FillRandom()
}
