package dense

import (
	"github.com/ezoic/gentensor/pkg/errors"
)

// Range selects the half-open interval [Lo, Hi) along one axis.
// Hi == -1 means "up to the end of the axis".
type Range struct {
	Lo int
	Hi int
}

// All returns the Range covering a whole axis.
func All() Range {
	return Range{Lo: 0, Hi: -1}
}

// FullRanges returns one All() range per axis.
func FullRanges(ndim int) []Range {
	rs := make([]Range, ndim)
	for i := range rs {
		rs[i] = All()
	}
	return rs
}

// NormalizeRanges validates ranges against the extents and resolves
// Hi == -1 to the axis extent. One range per axis is required, every
// resolved range must be non-empty and lie within its axis.
func NormalizeRanges(op string, dims []int, ranges []Range) ([]Range, error) {
	if len(ranges) != len(dims) {
		return nil, errors.NewDimensionError(op, len(dims), len(ranges), 0)
	}
	out := make([]Range, len(ranges))
	for i, r := range ranges {
		hi := r.Hi
		if hi == -1 {
			hi = dims[i]
		}
		if r.Lo < 0 || hi > dims[i] || r.Lo >= hi {
			return nil, errors.NewDimensionError(op, dims[i], hi, i)
		}
		out[i] = Range{Lo: r.Lo, Hi: hi}
	}
	return out, nil
}

// regionShape returns the per-axis lengths of normalized ranges.
func regionShape(rs []Range) []int {
	shape := make([]int, len(rs))
	for i, r := range rs {
		shape[i] = r.Hi - r.Lo
	}
	return shape
}

// RegionOffsets enumerates the flat row-major offsets of the region
// selected by normalized ranges, in row-major order of the region's
// own multi-index. Both dense region copies and the factor-row
// scatter/gather in core/seprep rely on this ordering being identical
// for regions of equal shape.
func RegionOffsets(dims []int, rs []Range) []int {
	strides := rowMajorStrides(dims)
	n := 1
	for _, r := range rs {
		n *= r.Hi - r.Lo
	}
	offs := make([]int, 0, n)
	idx := make([]int, len(rs))
	for i := range idx {
		idx[i] = rs[i].Lo
	}
	for {
		off := 0
		for i, x := range idx {
			off += x * strides[i]
		}
		offs = append(offs, off)
		// advance the region multi-index, innermost axis fastest
		axis := len(idx) - 1
		for axis >= 0 {
			idx[axis]++
			if idx[axis] < rs[axis].Hi {
				break
			}
			idx[axis] = rs[axis].Lo
			axis--
		}
		if axis < 0 {
			return offs
		}
	}
}
