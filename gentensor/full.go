package gentensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/pkg/errors"
)

// fullRepr is the dense variant: a thin wrapper giving the dense
// tensor the Representation shape. Mutation is direct.
type fullRepr struct {
	data *dense.Tensor
}

func newFullRepr(t *dense.Tensor) *fullRepr {
	return &fullRepr{data: t}
}

// asFull downcasts after the kind check; every cross-variant operation
// goes through here first.
func asFull(op string, r Representation) (*fullRepr, error) {
	f, ok := r.(*fullRepr)
	if !ok {
		return nil, errors.NewKindMismatchError(op, KindFull.String(), r.Kind().String())
	}
	return f, nil
}

func (f *fullRepr) Kind() Kind    { return KindFull }
func (f *fullRepr) HasData() bool { return f.data.HasData() }
func (f *fullRepr) Size() int     { return f.data.Size() }
func (f *fullRepr) Ndim() int     { return f.data.Ndim() }

func (f *fullRepr) Dim(axis int) (int, error) {
	return f.data.Dim(axis)
}

// Rank returns -1: a dense tensor has no separation rank.
func (f *fullRepr) Rank() int { return -1 }

func (f *fullRepr) CloneDeep() Representation {
	return newFullRepr(f.data.Copy())
}

func (f *fullRepr) CloneSliced(ranges []Range) (Representation, error) {
	t, err := f.data.SliceCopy(ranges)
	if err != nil {
		return nil, err
	}
	return newFullRepr(t), nil
}

// ReduceRank is a no-op: dense tensors have no rank to reduce.
func (f *fullRepr) ReduceRank(eps float64) error { return nil }

func (f *fullRepr) Normf() (float64, error) {
	return f.data.Normf(), nil
}

func (f *fullRepr) TraceConj(other Representation) (float64, error) {
	o, err := asFull("gentensor.TraceConj", other)
	if err != nil {
		return 0, err
	}
	return f.data.Dot(o.data)
}

func (f *fullRepr) Scale(a float64) {
	f.data.Scale(a)
}

func (f *fullRepr) Gaxpy(alpha float64, other Representation, beta float64) error {
	o, err := asFull("gentensor.Gaxpy", other)
	if err != nil {
		return err
	}
	return f.data.Gaxpy(alpha, o.data, beta)
}

func (f *fullRepr) TransformAll(c *mat.Dense) (Representation, error) {
	t, err := f.data.TransformAll(c)
	if err != nil {
		return nil, err
	}
	return newFullRepr(t), nil
}

func (f *fullRepr) TransformEach(cs []*mat.Dense) (Representation, error) {
	t, err := f.data.TransformEach(cs)
	if err != nil {
		return nil, err
	}
	return newFullRepr(t), nil
}

func (f *fullRepr) TransformDim(c *mat.Dense, axis int) (Representation, error) {
	t, err := f.data.TransformDim(c, axis)
	if err != nil {
		return nil, err
	}
	return newFullRepr(t), nil
}

func (f *fullRepr) InplaceAdd(other Representation, lhsRanges, rhsRanges []Range) error {
	o, err := asFull("gentensor.InplaceAdd", other)
	if err != nil {
		return err
	}
	return f.data.AddRegion(lhsRanges, o.data, rhsRanges)
}

func (f *fullRepr) AccumulateIntoDense(target *dense.Tensor, fac float64) error {
	return target.Gaxpy(1, f.data, fac)
}

func (f *fullRepr) AccumulateInto(other Representation, fac float64) error {
	o, err := asFull("gentensor.AccumulateInto", other)
	if err != nil {
		return err
	}
	return o.data.Gaxpy(1, f.data, fac)
}

func (f *fullRepr) UpdateBy(other Representation) error {
	o, err := asFull("gentensor.UpdateBy", other)
	if err != nil {
		return err
	}
	return f.data.Gaxpy(1, o.data, 1)
}

func (f *fullRepr) FinalizeAccumulate() error { return nil }

// FullTensor hands out the storage itself, no copy.
func (f *fullRepr) FullTensor() (*dense.Tensor, error) {
	return f.data, nil
}

// Reconstruct is trivial for the dense variant: the storage already
// is the full content.
func (f *fullRepr) Reconstruct() (*dense.Tensor, error) {
	return f.data, nil
}

func (f *fullRepr) SwapDims(i, j int) (Representation, error) {
	t, err := f.data.SwapDims(i, j)
	if err != nil {
		return nil, err
	}
	return newFullRepr(t), nil
}

func (f *fullRepr) FillRandom() error {
	if !f.data.HasData() {
		return errors.NewEmptyError("gentensor.FillRandom")
	}
	f.data.FillRandom()
	return nil
}
