package gentensor

import (
	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/pkg/errors"
)

// SliceRef is the transient, non-owning handle for tensor(slice)
// expressions. It borrows the tensor it was created from and is meant
// to live for a single statement: materialize it, accumulate into it,
// or zero it, then let it go.
//
// Because a low-rank representation has no per-element writes, a slice
// cannot be overwritten, only accumulated into; Assign and AssignSlice
// exist solely to fail loudly and point callers at the accumulation
// idiom. Every write through a SliceRef may grow the rank of the
// referenced tensor.
type SliceRef struct {
	ref    *GenTensor
	ranges []Range
}

// Slice returns a SliceRef over the region selected by one Range per
// axis. The ranges are validated against the extents here, so a bad
// range fails at construction rather than at resolution.
func (g *GenTensor) Slice(ranges ...Range) (SliceRef, error) {
	const op = "gentensor.Slice"
	if err := g.requireData(op); err != nil {
		return SliceRef{}, err
	}
	dims := make([]int, g.Ndim())
	for i := range dims {
		d, err := g.repr.Dim(i)
		if err != nil {
			return SliceRef{}, err
		}
		dims[i] = d
	}
	rs, err := dense.NormalizeRanges(op, dims, ranges)
	if err != nil {
		return SliceRef{}, err
	}
	return SliceRef{ref: g, ranges: rs}, nil
}

// Materialize deep-copies the referenced region into a new GenTensor
// of the same kind. This is the read path of g2 = g1(slice).
func (s SliceRef) Materialize() (GenTensor, error) {
	r, err := s.ref.repr.CloneSliced(s.ranges)
	if err != nil {
		return GenTensor{}, err
	}
	return GenTensor{repr: r}, nil
}

// AddAssign accumulates rhs into the referenced region
// (g(slice) += rhs). The extents of rhs must equal the region's
// per-axis lengths and kinds must match.
func (s SliceRef) AddAssign(rhs *GenTensor) error {
	const op = "gentensor.SliceRef.AddAssign"
	if err := rhs.requireData(op); err != nil {
		return err
	}
	if s.ref.Kind() != rhs.Kind() {
		return errors.NewKindMismatchError(op, s.ref.Kind().String(), rhs.Kind().String())
	}
	return s.ref.repr.InplaceAdd(rhs.repr, s.ranges, dense.FullRanges(rhs.Ndim()))
}

// AddAssignSlice accumulates the region of another slice into this one
// (g(s1) += g2(s2)).
func (s SliceRef) AddAssignSlice(rhs SliceRef) error {
	const op = "gentensor.SliceRef.AddAssignSlice"
	if s.ref.Kind() != rhs.ref.Kind() {
		return errors.NewKindMismatchError(op, s.ref.Kind().String(), rhs.ref.Kind().String())
	}
	return s.ref.repr.InplaceAdd(rhs.ref.repr, s.ranges, rhs.ranges)
}

// Assign always fails: slice overwrite is forbidden because the
// low-rank form cannot express arbitrary partial replacement without
// unbounded rank growth. Use AddAssign.
func (s SliceRef) Assign(rhs *GenTensor) error {
	return errors.NewNotSupportedError("gentensor.SliceRef.Assign",
		"assignment to a slice; use AddAssign")
}

// AssignSlice always fails, like Assign.
func (s SliceRef) AssignSlice(rhs SliceRef) error {
	return errors.NewNotSupportedError("gentensor.SliceRef.AssignSlice",
		"assignment to a slice; use AddAssignSlice")
}

// AssignScalar zeroes the referenced region when v is exactly zero and
// rejects every other scalar. The zero-out costs one deep slice read
// plus one accumulation of its negation, and may grow the rank: an
// accepted tradeoff of the accumulate-only design.
func (s SliceRef) AssignScalar(v float64) error {
	const op = "gentensor.SliceRef.AssignScalar"
	if v != 0 {
		return errors.NewValueError(op, "only the literal zero may be assigned to a slice")
	}
	tmp, err := s.Materialize()
	if err != nil {
		return err
	}
	tmp.Scale(-1)
	return s.ref.repr.InplaceAdd(tmp.repr, s.ranges, dense.FullRanges(tmp.Ndim()))
}
