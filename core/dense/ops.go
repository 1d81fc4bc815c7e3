package dense

import (
	"math"
	"math/rand"

	"github.com/ezoic/gentensor/pkg/errors"
)

// Gaxpy performs the generalized in-place combination
// t <- alpha*t + beta*other. Shapes must match exactly.
func (t *Tensor) Gaxpy(alpha float64, other *Tensor, beta float64) error {
	const op = "dense.Gaxpy"
	if !t.SameShape(other) {
		return errors.NewDimensionError(op, len(t.dims), len(other.dims), 0)
	}
	for i := range t.data {
		t.data[i] = alpha*t.data[i] + beta*other.data[i]
	}
	return nil
}

// Scale multiplies every element by a.
func (t *Tensor) Scale(a float64) {
	for i := range t.data {
		t.data[i] *= a
	}
}

// Fill sets every element to v.
func (t *Tensor) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// FillRandom fills the tensor with uniform values in [-1, 1).
func (t *Tensor) FillRandom() {
	for i := range t.data {
		t.data[i] = 2*rand.Float64() - 1
	}
}

// Normf returns the Frobenius norm.
func (t *Tensor) Normf() float64 {
	sum := 0.0
	for _, v := range t.data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// MaxAbs returns the largest absolute element value; zero when empty.
func (t *Tensor) MaxAbs() float64 {
	m := 0.0
	for _, v := range t.data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Dot returns the elementwise inner product with other.
func (t *Tensor) Dot(other *Tensor) (float64, error) {
	if !t.SameShape(other) {
		return 0, errors.NewDimensionError("dense.Dot", len(t.dims), len(other.dims), 0)
	}
	sum := 0.0
	for i, v := range t.data {
		sum += v * other.data[i]
	}
	return sum, nil
}

// SwapDims returns a deep copy with axes i and j exchanged.
func (t *Tensor) SwapDims(i, j int) (*Tensor, error) {
	const op = "dense.SwapDims"
	n := len(t.dims)
	if i < 0 || i >= n {
		return nil, errors.NewDimensionError(op, n, i, i)
	}
	if j < 0 || j >= n {
		return nil, errors.NewDimensionError(op, n, j, j)
	}
	outDims := t.Shape()
	outDims[i], outDims[j] = outDims[j], outDims[i]
	out, err := New(outDims...)
	if err != nil {
		return nil, err
	}
	idx := make([]int, n)
	swapped := make([]int, n)
	for off := range t.data {
		rem := off
		for a := 0; a < n; a++ {
			idx[a] = rem / t.strides[a]
			rem %= t.strides[a]
		}
		copy(swapped, idx)
		swapped[i], swapped[j] = swapped[j], swapped[i]
		out.data[out.offset(swapped)] = t.data[off]
	}
	return out, nil
}
