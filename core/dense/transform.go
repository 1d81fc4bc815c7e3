package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/pkg/errors"
)

// AsMatrix matricizes the tensor: the leading split axes form the row
// index, the remaining axes the column index. Because storage is
// row-major, the flat data already is this matrix; a copy is returned.
func (t *Tensor) AsMatrix(split int) (*mat.Dense, error) {
	const op = "dense.AsMatrix"
	if split < 1 || split >= len(t.dims) {
		return nil, errors.NewValueError(op, "split must separate at least one axis on each side")
	}
	rows, cols := 1, 1
	for i, d := range t.dims {
		if i < split {
			rows *= d
		} else {
			cols *= d
		}
	}
	return mat.NewDense(rows, cols, append([]float64(nil), t.data...)), nil
}

// TransformDim contracts a single axis against c:
//
//	out(..., j, ...) = sum_j' t(..., j', ...) * c(j', j)
//
// The extent of the axis becomes the column count of c.
func (t *Tensor) TransformDim(c *mat.Dense, axis int) (*Tensor, error) {
	const op = "dense.TransformDim"
	n := len(t.dims)
	if axis < 0 || axis >= n {
		return nil, errors.NewDimensionError(op, n, axis, axis)
	}
	cr, cc := c.Dims()
	if cr != t.dims[axis] {
		return nil, errors.NewDimensionError(op, t.dims[axis], cr, axis)
	}
	outDims := t.Shape()
	outDims[axis] = cc
	out, err := New(outDims...)
	if err != nil {
		return nil, err
	}
	outer, inner := 1, 1
	for i := 0; i < axis; i++ {
		outer *= t.dims[i]
	}
	for i := axis + 1; i < n; i++ {
		inner *= t.dims[i]
	}
	k := t.dims[axis]
	for o := 0; o < outer; o++ {
		for jp := 0; jp < k; jp++ {
			src := (o*k + jp) * inner
			for j := 0; j < cc; j++ {
				cij := c.At(jp, j)
				if cij == 0 {
					continue
				}
				dst := (o*cc + j) * inner
				for s := 0; s < inner; s++ {
					out.data[dst+s] += t.data[src+s] * cij
				}
			}
		}
	}
	return out, nil
}

// TransformAll contracts every axis against the same matrix c:
//
//	out(i,j,k,...) = sum t(i',j',k',...) c(i',i) c(j',j) c(k',k) ...
//
// Every extent of t must equal the row count of c.
func (t *Tensor) TransformAll(c *mat.Dense) (*Tensor, error) {
	cur := t
	var err error
	for axis := 0; axis < len(t.dims); axis++ {
		cur, err = cur.TransformDim(c, axis)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// TransformEach contracts each axis against its own matrix,
// cs[axis] transforming axis.
func (t *Tensor) TransformEach(cs []*mat.Dense) (*Tensor, error) {
	if len(cs) != len(t.dims) {
		return nil, errors.NewDimensionError("dense.TransformEach", len(t.dims), len(cs), 0)
	}
	cur := t
	var err error
	for axis, c := range cs {
		cur, err = cur.TransformDim(c, axis)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
