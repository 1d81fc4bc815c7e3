package seprep

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/pkg/errors"
)

// SliceCopy returns a new SepRep restricted to the given ranges, one
// per axis. The factor rows belonging to the region are gathered per
// group; the rank is unchanged.
func (s *SepRep) SliceCopy(ranges []dense.Range) (*SepRep, error) {
	const op = "seprep.SliceCopy"
	if !s.IsValid() {
		return nil, errors.NewEmptyError(op)
	}
	rs, err := dense.NormalizeRanges(op, s.dims, ranges)
	if err != nil {
		return nil, err
	}
	outDims := make([]int, len(rs))
	for i, r := range rs {
		outDims[i] = r.Hi - r.Lo
	}
	out := &SepRep{
		dims:    outDims,
		split:   s.split,
		weights: append([]float64(nil), s.weights...),
	}
	if s.Rank() == 0 {
		return out, nil
	}
	rowDims, colDims := s.dims[:s.split], s.dims[s.split:]
	out.rowFac = gatherRows(s.rowFac, dense.RegionOffsets(rowDims, rs[:s.split]))
	out.colFac = gatherRows(s.colFac, dense.RegionOffsets(colDims, rs[s.split:]))
	return out, nil
}

// gatherRows builds a matrix out of the given rows of fac, in order.
func gatherRows(fac *mat.Dense, offs []int) *mat.Dense {
	_, k := fac.Dims()
	out := mat.NewDense(len(offs), k, nil)
	for i, off := range offs {
		for r := 0; r < k; r++ {
			out.Set(i, r, fac.At(off, r))
		}
	}
	return out
}

// InplaceAdd performs the region-restricted weighted accumulation
//
//	s <- alpha*s, then s(lhsRanges) += beta*other(rhsRanges)
//
// by appending other's terms with their row-group and column-group
// factors gathered from rhsRanges and scattered into lhsRanges. The
// two regions must have identical per-axis lengths and both operands
// must separate their axes at the same split. The rank of s grows by
// the rank of other.
func (s *SepRep) InplaceAdd(other *SepRep, lhsRanges, rhsRanges []dense.Range, alpha, beta float64) error {
	const op = "seprep.InplaceAdd"
	if !s.IsValid() || !other.IsValid() {
		return errors.NewEmptyError(op)
	}
	if len(s.dims) != len(other.dims) {
		return errors.NewDimensionError(op, len(s.dims), len(other.dims), 0)
	}
	if s.split != other.split {
		return errors.NewValueError(op, "operands separate their axes differently")
	}
	lrs, err := dense.NormalizeRanges(op, s.dims, lhsRanges)
	if err != nil {
		return err
	}
	rrs, err := dense.NormalizeRanges(op, other.dims, rhsRanges)
	if err != nil {
		return err
	}
	for i := range lrs {
		if lrs[i].Hi-lrs[i].Lo != rrs[i].Hi-rrs[i].Lo {
			return errors.NewDimensionError(op, lrs[i].Hi-lrs[i].Lo, rrs[i].Hi-rrs[i].Lo, i)
		}
	}
	if other == s {
		other = s.Copy()
	}

	s.Scale(alpha)
	if other.Rank() == 0 {
		return nil
	}

	rows, cols := s.groupSizes()
	lhsRowOffs := dense.RegionOffsets(s.dims[:s.split], lrs[:s.split])
	rhsRowOffs := dense.RegionOffsets(other.dims[:other.split], rrs[:other.split])
	lhsColOffs := dense.RegionOffsets(s.dims[s.split:], lrs[s.split:])
	rhsColOffs := dense.RegionOffsets(other.dims[other.split:], rrs[other.split:])

	oldRank, addRank := s.Rank(), other.Rank()
	newRow := mat.NewDense(rows, oldRank+addRank, nil)
	newCol := mat.NewDense(cols, oldRank+addRank, nil)
	if oldRank > 0 {
		for i := 0; i < rows; i++ {
			for r := 0; r < oldRank; r++ {
				newRow.Set(i, r, s.rowFac.At(i, r))
			}
		}
		for j := 0; j < cols; j++ {
			for r := 0; r < oldRank; r++ {
				newCol.Set(j, r, s.colFac.At(j, r))
			}
		}
	}
	for r := 0; r < addRank; r++ {
		for i, lhsOff := range lhsRowOffs {
			newRow.Set(lhsOff, oldRank+r, other.rowFac.At(rhsRowOffs[i], r))
		}
		for j, lhsOff := range lhsColOffs {
			newCol.Set(lhsOff, oldRank+r, other.colFac.At(rhsColOffs[j], r))
		}
		s.weights = append(s.weights, beta*other.weights[r])
	}
	s.rowFac, s.colFac = newRow, newCol
	return nil
}

// UpdateBy accumulates other into s over the full extents without any
// rank reduction; callers batch several updates and reduce once.
func (s *SepRep) UpdateBy(other *SepRep) error {
	full := dense.FullRanges(len(s.dims))
	return s.InplaceAdd(other, full, full, 1, 1)
}

// AccumulateInto adds fac times the reconstruction of s into the dense
// target.
func (s *SepRep) AccumulateInto(target *dense.Tensor, fac float64) error {
	recon, err := s.Reconstruct()
	if err != nil {
		return err
	}
	return target.Gaxpy(1, recon, fac)
}
