package dense_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
)

func TestTransformDim(t *testing.T) {
	// t is 2x2, contract axis 1: out(i,j) = sum_j' t(i,j') c(j',j)
	tensor, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	c := mat.NewDense(2, 2, []float64{1, 0, 1, 1}) // c(0,0)=1 c(0,1)=0 c(1,0)=1 c(1,1)=1

	out, err := tensor.TransformDim(c, 1)
	if err != nil {
		t.Fatalf("TransformDim failed: %v", err)
	}
	// out(0,0)=1*1+2*1=3, out(0,1)=1*0+2*1=2
	// out(1,0)=3*1+4*1=7, out(1,1)=3*0+4*1=4
	want := [][]float64{{3, 2}, {7, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := out.At(i, j); math.Abs(got-want[i][j]) > epsilon {
				t.Errorf("out(%d,%d) = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestTransformDimChangesExtent(t *testing.T) {
	tensor, _ := dense.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	c := mat.NewDense(3, 1, []float64{1, 1, 1}) // row-sum along axis 1

	out, err := tensor.TransformDim(c, 1)
	if err != nil {
		t.Fatalf("TransformDim failed: %v", err)
	}
	if out.Ndim() != 2 {
		t.Fatalf("ndim = %d, want 2", out.Ndim())
	}
	if d, _ := out.Dim(1); d != 1 {
		t.Fatalf("dim(1) = %d, want 1", d)
	}
	if math.Abs(out.At(0, 0)-6) > epsilon || math.Abs(out.At(1, 0)-15) > epsilon {
		t.Errorf("row sums = %v, %v, want 6, 15", out.At(0, 0), out.At(1, 0))
	}
}

func TestTransformAllMatchesMatrixForm(t *testing.T) {
	// for a 2D tensor, TransformAll(c) must equal c^T * T * c
	data := []float64{1, 2, 3, 4}
	tensor, _ := dense.FromSlice(data, 2, 2)
	c := mat.NewDense(2, 2, []float64{0.5, 1, -1, 2})

	out, err := tensor.TransformAll(c)
	if err != nil {
		t.Fatalf("TransformAll failed: %v", err)
	}

	tm := mat.NewDense(2, 2, data)
	var tmp, want mat.Dense
	tmp.Mul(c.T(), tm)
	want.Mul(&tmp, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := out.At(i, j); math.Abs(got-want.At(i, j)) > epsilon {
				t.Errorf("out(%d,%d) = %v, want %v", i, j, got, want.At(i, j))
			}
		}
	}
}

func TestTransformEach(t *testing.T) {
	tensor, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	id := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	scale2 := mat.NewDense(2, 2, []float64{2, 0, 0, 2})

	out, err := tensor.TransformEach([]*mat.Dense{id, scale2})
	if err != nil {
		t.Fatalf("TransformEach failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := out.At(i, j); math.Abs(got-2*tensor.At(i, j)) > epsilon {
				t.Errorf("out(%d,%d) = %v, want %v", i, j, got, 2*tensor.At(i, j))
			}
		}
	}

	if _, err := tensor.TransformEach([]*mat.Dense{id}); err == nil {
		t.Error("TransformEach with wrong matrix count should fail")
	}
}

func TestTransformDimValidation(t *testing.T) {
	tensor, _ := dense.New(2, 3)
	c := mat.NewDense(2, 2, nil)
	if _, err := tensor.TransformDim(c, 1); err == nil {
		t.Error("TransformDim with mismatched matrix rows should fail")
	}
	if _, err := tensor.TransformDim(c, 7); err == nil {
		t.Error("TransformDim with bad axis should fail")
	}
}

func TestAsMatrix(t *testing.T) {
	tensor, _ := dense.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	m, err := tensor.AsMatrix(1)
	if err != nil {
		t.Fatalf("AsMatrix failed: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 4 {
		t.Fatalf("dims = %dx%d, want 2x4", r, c)
	}
	if m.At(1, 2) != tensor.At(1, 1, 0) {
		t.Error("matricization should follow row-major order")
	}
	if _, err := tensor.AsMatrix(3); err == nil {
		t.Error("AsMatrix with out-of-range split should fail")
	}
}
