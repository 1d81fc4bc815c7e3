package seprep

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/pkg/errors"
)

// Basis transforms act on each rank-one term independently: a factor
// column is refolded into its group's small tensor, contracted there,
// and flattened back. The weights are untouched, so the rank never
// changes under a transform.

// TransformAll contracts every axis against the same matrix c and
// returns a new SepRep.
func (s *SepRep) TransformAll(c *mat.Dense) (*SepRep, error) {
	const op = "seprep.TransformAll"
	if !s.IsValid() {
		return nil, errors.NewEmptyError(op)
	}
	rowDims, err := transformedDims(op, s.dims[:s.split], uniformMatrices(c, s.split))
	if err != nil {
		return nil, err
	}
	colDims, err := transformedDims(op, s.dims[s.split:], uniformMatrices(c, len(s.dims)-s.split))
	if err != nil {
		return nil, err
	}
	apply := func(t *dense.Tensor) (*dense.Tensor, error) { return t.TransformAll(c) }
	return s.transformGroups(op, apply, apply, rowDims, colDims)
}

// TransformEach contracts axis i against cs[i] and returns a new
// SepRep. One matrix per axis of the full tensor is required.
func (s *SepRep) TransformEach(cs []*mat.Dense) (*SepRep, error) {
	const op = "seprep.TransformEach"
	if !s.IsValid() {
		return nil, errors.NewEmptyError(op)
	}
	if len(cs) != len(s.dims) {
		return nil, errors.NewDimensionError(op, len(s.dims), len(cs), 0)
	}
	rowCs, colCs := cs[:s.split], cs[s.split:]
	rowDims, err := transformedDims(op, s.dims[:s.split], rowCs)
	if err != nil {
		return nil, err
	}
	colDims, err := transformedDims(op, s.dims[s.split:], colCs)
	if err != nil {
		return nil, err
	}
	return s.transformGroups(op,
		func(t *dense.Tensor) (*dense.Tensor, error) { return t.TransformEach(rowCs) },
		func(t *dense.Tensor) (*dense.Tensor, error) { return t.TransformEach(colCs) },
		rowDims, colDims)
}

// TransformDim contracts only the named axis against c and returns a
// new SepRep. Only the group containing the axis is touched.
func (s *SepRep) TransformDim(c *mat.Dense, axis int) (*SepRep, error) {
	const op = "seprep.TransformDim"
	if !s.IsValid() {
		return nil, errors.NewEmptyError(op)
	}
	if axis < 0 || axis >= len(s.dims) {
		return nil, errors.NewDimensionError(op, len(s.dims), axis, axis)
	}
	cr, cc := c.Dims()
	if cr != s.dims[axis] {
		return nil, errors.NewDimensionError(op, s.dims[axis], cr, axis)
	}
	rowDims := append([]int(nil), s.dims[:s.split]...)
	colDims := append([]int(nil), s.dims[s.split:]...)
	identity := func(t *dense.Tensor) (*dense.Tensor, error) { return t, nil }
	rowF, colF := identity, identity
	if axis < s.split {
		rowDims[axis] = cc
		rowF = func(t *dense.Tensor) (*dense.Tensor, error) { return t.TransformDim(c, axis) }
	} else {
		local := axis - s.split
		colDims[local] = cc
		colF = func(t *dense.Tensor) (*dense.Tensor, error) { return t.TransformDim(c, local) }
	}
	return s.transformGroups(op, rowF, colF, rowDims, colDims)
}

// transformGroups applies rowF to every row-group factor and colF to
// every column-group factor, rebuilding the factor matrices. The
// transformed group extents are passed explicitly so the rank-zero
// case, where no factors exist to carry shapes, is covered too.
func (s *SepRep) transformGroups(op string,
	rowF, colF func(*dense.Tensor) (*dense.Tensor, error),
	rowDims, colDims []int) (*SepRep, error) {

	out := &SepRep{
		dims:    append(append([]int(nil), rowDims...), colDims...),
		split:   s.split,
		weights: append([]float64(nil), s.weights...),
	}
	if s.Rank() == 0 {
		return out, nil
	}
	var err error
	out.rowFac, err = transformFactors(s.rowFac, s.dims[:s.split], rowF)
	if err != nil {
		return nil, err
	}
	out.colFac, err = transformFactors(s.colFac, s.dims[s.split:], colF)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// transformFactors runs f over each factor column viewed as the
// group's small dense tensor.
func transformFactors(fac *mat.Dense, gdims []int,
	f func(*dense.Tensor) (*dense.Tensor, error)) (*mat.Dense, error) {

	n, k := fac.Dims()
	var out *mat.Dense
	col := make([]float64, n)
	for r := 0; r < k; r++ {
		for i := 0; i < n; i++ {
			col[i] = fac.At(i, r)
		}
		t, err := dense.FromSlice(col, gdims...)
		if err != nil {
			return nil, err
		}
		tt, err := f(t)
		if err != nil {
			return nil, err
		}
		data := tt.Data()
		if out == nil {
			out = mat.NewDense(len(data), k, nil)
		}
		for i, v := range data {
			out.Set(i, r, v)
		}
	}
	return out, nil
}

// transformedDims applies the column counts of cs to gdims, validating
// the row counts against the current extents.
func transformedDims(op string, gdims []int, cs []*mat.Dense) ([]int, error) {
	if len(cs) != len(gdims) {
		return nil, errors.NewDimensionError(op, len(gdims), len(cs), 0)
	}
	out := make([]int, len(gdims))
	for i, c := range cs {
		cr, cc := c.Dims()
		if cr != gdims[i] {
			return nil, errors.NewDimensionError(op, gdims[i], cr, i)
		}
		out[i] = cc
	}
	return out, nil
}

// uniformMatrices repeats c once per axis.
func uniformMatrices(c *mat.Dense, n int) []*mat.Dense {
	cs := make([]*mat.Dense, n)
	for i := range cs {
		cs[i] = c
	}
	return cs
}
