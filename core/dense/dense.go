// Package dense implements the n-dimensional dense tensor consumed by
// the gentensor core.
//
// Storage is a contiguous row-major []float64 with per-axis extents.
// Slicing produces deep restricted copies; views are not exposed, so a
// Tensor never aliases another one unless the caller shares the same
// *Tensor value. Two-dimensional kernels (matricized contractions,
// decompositions in core/seprep) are delegated to gonum/mat.
package dense

import (
	"github.com/ezoic/gentensor/pkg/errors"
)

// Tensor is an n-dimensional dense array of float64 in row-major
// order. The zero value is the empty tensor: no axes, no data.
type Tensor struct {
	dims    []int
	strides []int
	data    []float64
}

// Empty returns an empty tensor (no axes, size zero).
func Empty() *Tensor {
	return &Tensor{}
}

// New creates a zero-filled tensor with the given extents.
func New(dims ...int) (*Tensor, error) {
	size, err := checkDims("dense.New", dims)
	if err != nil {
		return nil, err
	}
	return &Tensor{
		dims:    append([]int(nil), dims...),
		strides: rowMajorStrides(dims),
		data:    make([]float64, size),
	}, nil
}

// FromSlice creates a tensor with the given extents from a copy of
// data, which must hold exactly the product of the extents.
func FromSlice(data []float64, dims ...int) (*Tensor, error) {
	size, err := checkDims("dense.FromSlice", dims)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, errors.NewDimensionError("dense.FromSlice", size, len(data), 0)
	}
	return &Tensor{
		dims:    append([]int(nil), dims...),
		strides: rowMajorStrides(dims),
		data:    append([]float64(nil), data...),
	}, nil
}

func checkDims(op string, dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, errors.NewValueError(op, "at least one extent must be provided")
	}
	size := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, errors.NewValueError(op, "all extents must be positive")
		}
		size *= d
	}
	return size, nil
}

func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	s := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = s
		s *= dims[i]
	}
	return strides
}

// Size returns the total number of elements; zero for the empty tensor.
func (t *Tensor) Size() int {
	return len(t.data)
}

// Ndim returns the number of axes; zero for the empty tensor.
func (t *Tensor) Ndim() int {
	return len(t.dims)
}

// Dim returns the extent of the given axis.
func (t *Tensor) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.dims) {
		return 0, errors.NewDimensionError("dense.Dim", len(t.dims), axis, axis)
	}
	return t.dims[axis], nil
}

// Shape returns a copy of the per-axis extents.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.dims...)
}

// HasData reports whether the tensor holds any elements.
func (t *Tensor) HasData() bool {
	return len(t.data) != 0
}

// Data returns the underlying row-major storage. Mutations through the
// returned slice mutate the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-index. It panics on a
// wrong index arity or an out-of-range index, like gonum's mat.Dense.
func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set writes the element at the given multi-index. Panics like At.
func (t *Tensor) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.dims) {
		panic("dense: index arity does not match tensor rank")
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= t.dims[i] {
			panic("dense: index out of range")
		}
		off += x * t.strides[i]
	}
	return off
}

// Copy returns a deep copy.
func (t *Tensor) Copy() *Tensor {
	return &Tensor{
		dims:    append([]int(nil), t.dims...),
		strides: append([]int(nil), t.strides...),
		data:    append([]float64(nil), t.data...),
	}
}

// SameShape reports whether two tensors have identical extents.
func (t *Tensor) SameShape(other *Tensor) bool {
	if len(t.dims) != len(other.dims) {
		return false
	}
	for i, d := range t.dims {
		if other.dims[i] != d {
			return false
		}
	}
	return true
}

// SliceCopy returns a deep copy of the region selected by ranges,
// one Range per axis.
func (t *Tensor) SliceCopy(ranges []Range) (*Tensor, error) {
	rs, err := NormalizeRanges("dense.SliceCopy", t.dims, ranges)
	if err != nil {
		return nil, err
	}
	out, err := New(regionShape(rs)...)
	if err != nil {
		return nil, err
	}
	offs := RegionOffsets(t.dims, rs)
	for i, off := range offs {
		out.data[i] = t.data[off]
	}
	return out, nil
}

// AddRegion accumulates the srcRanges region of src into the dstRanges
// region of t. The two regions must have identical per-axis lengths.
func (t *Tensor) AddRegion(dstRanges []Range, src *Tensor, srcRanges []Range) error {
	const op = "dense.AddRegion"
	drs, err := NormalizeRanges(op, t.dims, dstRanges)
	if err != nil {
		return err
	}
	srs, err := NormalizeRanges(op, src.dims, srcRanges)
	if err != nil {
		return err
	}
	dshape, sshape := regionShape(drs), regionShape(srs)
	if len(dshape) != len(sshape) {
		return errors.NewDimensionError(op, len(dshape), len(sshape), 0)
	}
	for i := range dshape {
		if dshape[i] != sshape[i] {
			return errors.NewDimensionError(op, dshape[i], sshape[i], i)
		}
	}
	doffs := RegionOffsets(t.dims, drs)
	soffs := RegionOffsets(src.dims, srs)
	for i, doff := range doffs {
		t.data[doff] += src.data[soffs[i]]
	}
	return nil
}
