package gentensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/core/seprep"
	"github.com/ezoic/gentensor/pkg/errors"
	"github.com/ezoic/gentensor/pkg/log"
)

var lrLogger = log.GetLoggerWithName("gentensor.lowrank")

// lowRankRepr is the separated variant. There is no per-element write
// by design: all mutation goes through the representation's own
// combination routines and may grow the rank. thresh remembers the
// construction tolerance so FinalizeAccumulate knows how hard to
// compress a batch of deferred accumulations.
type lowRankRepr struct {
	data   *seprep.SepRep
	kind   Kind
	thresh float64
}

func newLowRankRepr(data *seprep.SepRep, kind Kind, thresh float64) *lowRankRepr {
	return &lowRankRepr{data: data, kind: kind, thresh: thresh}
}

// asLowRank downcasts after checking that other carries exactly the
// same low-rank kind; LowRank-2D and LowRank-3D never mix.
func asLowRank(op string, kind Kind, r Representation) (*lowRankRepr, error) {
	l, ok := r.(*lowRankRepr)
	if !ok || l.kind != kind {
		return nil, errors.NewKindMismatchError(op, kind.String(), r.Kind().String())
	}
	return l, nil
}

func (l *lowRankRepr) Kind() Kind    { return l.kind }
func (l *lowRankRepr) HasData() bool { return l.data.IsValid() }
func (l *lowRankRepr) Size() int     { return l.data.NCoeff() }
func (l *lowRankRepr) Ndim() int     { return l.data.Ndim() }

func (l *lowRankRepr) Dim(axis int) (int, error) {
	dims := l.data.Dims()
	if axis < 0 || axis >= len(dims) {
		return 0, errors.NewDimensionError("gentensor.Dim", len(dims), axis, axis)
	}
	return dims[axis], nil
}

func (l *lowRankRepr) Rank() int { return l.data.Rank() }

func (l *lowRankRepr) CloneDeep() Representation {
	return newLowRankRepr(l.data.Copy(), l.kind, l.thresh)
}

func (l *lowRankRepr) CloneSliced(ranges []Range) (Representation, error) {
	sr, err := l.data.SliceCopy(ranges)
	if err != nil {
		return nil, err
	}
	return newLowRankRepr(sr, l.kind, l.thresh), nil
}

func (l *lowRankRepr) ReduceRank(eps float64) error {
	before := l.data.Rank()
	if err := l.data.ReduceRank(eps); err != nil {
		return err
	}
	lrLogger.Debug("rank reduced", "kind", l.kind.String(), "from", before, "to", l.data.Rank())
	return nil
}

func (l *lowRankRepr) Normf() (float64, error) {
	if !l.data.IsValid() {
		return 0, errors.NewEmptyError("gentensor.Normf")
	}
	return l.data.Normf(), nil
}

func (l *lowRankRepr) TraceConj(other Representation) (float64, error) {
	o, err := asLowRank("gentensor.TraceConj", l.kind, other)
	if err != nil {
		return 0, err
	}
	return l.data.Overlap(o.data)
}

func (l *lowRankRepr) Scale(a float64) {
	l.data.Scale(a)
}

func (l *lowRankRepr) Gaxpy(alpha float64, other Representation, beta float64) error {
	const op = "gentensor.Gaxpy"
	o, err := asLowRank(op, l.kind, other)
	if err != nil {
		return err
	}
	if l.Ndim() != o.Ndim() {
		return errors.NewDimensionError(op, l.Ndim(), o.Ndim(), 0)
	}
	full := dense.FullRanges(l.Ndim())
	return l.data.InplaceAdd(o.data, full, full, alpha, beta)
}

func (l *lowRankRepr) TransformAll(c *mat.Dense) (Representation, error) {
	sr, err := l.data.TransformAll(c)
	if err != nil {
		return nil, err
	}
	return newLowRankRepr(sr, l.kind, l.thresh), nil
}

func (l *lowRankRepr) TransformEach(cs []*mat.Dense) (Representation, error) {
	sr, err := l.data.TransformEach(cs)
	if err != nil {
		return nil, err
	}
	return newLowRankRepr(sr, l.kind, l.thresh), nil
}

func (l *lowRankRepr) TransformDim(c *mat.Dense, axis int) (Representation, error) {
	sr, err := l.data.TransformDim(c, axis)
	if err != nil {
		return nil, err
	}
	return newLowRankRepr(sr, l.kind, l.thresh), nil
}

func (l *lowRankRepr) InplaceAdd(other Representation, lhsRanges, rhsRanges []Range) error {
	o, err := asLowRank("gentensor.InplaceAdd", l.kind, other)
	if err != nil {
		return err
	}
	return l.data.InplaceAdd(o.data, lhsRanges, rhsRanges, 1, 1)
}

func (l *lowRankRepr) AccumulateIntoDense(target *dense.Tensor, fac float64) error {
	return l.data.AccumulateInto(target, fac)
}

func (l *lowRankRepr) AccumulateInto(other Representation, fac float64) error {
	o, err := asLowRank("gentensor.AccumulateInto", l.kind, other)
	if err != nil {
		return err
	}
	full := dense.FullRanges(o.Ndim())
	return o.data.InplaceAdd(l.data, full, full, 1, fac)
}

func (l *lowRankRepr) UpdateBy(other Representation) error {
	o, err := asLowRank("gentensor.UpdateBy", l.kind, other)
	if err != nil {
		return err
	}
	return l.data.UpdateBy(o.data)
}

// FinalizeAccumulate compresses the terms collected by UpdateBy. With
// no recorded tolerance (a kind-only construction) it leaves the rank
// alone.
func (l *lowRankRepr) FinalizeAccumulate() error {
	if l.thresh <= 0 {
		return nil
	}
	return l.ReduceRank(l.thresh)
}

// FullTensor is deliberately unavailable: a separated representation
// has no dense storage to reference. Reconstruct first.
func (l *lowRankRepr) FullTensor() (*dense.Tensor, error) {
	return nil, errors.NewNotSupportedError("gentensor.FullTensor",
		"direct dense access on a low-rank tensor; use Reconstruct")
}

func (l *lowRankRepr) Reconstruct() (*dense.Tensor, error) {
	return l.data.Reconstruct()
}

// SwapDims is not supported for the separated representation: the
// axis bipartition fixes the factor layout.
func (l *lowRankRepr) SwapDims(i, j int) (Representation, error) {
	return nil, errors.NewNotSupportedError("gentensor.SwapDims",
		"axis swap on a low-rank tensor")
}

func (l *lowRankRepr) FillRandom() error {
	return l.data.FillRandom()
}
