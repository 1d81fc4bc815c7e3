// Package seprep implements the separated low-rank tensor
// representation consumed by the gentensor core.
//
// A SepRep approximates an n-dimensional tensor as a weighted sum of
// rank-one terms over a fixed bipartition of the axes: the leading
// split axes form the row group, the rest the column group, and
//
//	t(i..., j...) ~ sum_r s_r * U(i..., r) * V(j..., r)
//
// where U and V hold one factor column per term over the flattened
// group indices. Construction and rank reduction truncate a thin SVD
// (gonum/mat) so the discarded singular-value tail stays within the
// requested tolerance. Accumulation appends terms, so the rank grows
// under in-place addition until the caller reduces it again; the
// factors are therefore not assumed orthonormal anywhere, and norms
// and inner products use the Gram form.
//
// A SepRep with zero rank is a valid representation of the zero
// tensor. A SepRep without extents is invalid ("empty") and only
// answers validity queries.
package seprep

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/pkg/errors"
)

// SepRep is a separated representation over a two-group axis split.
type SepRep struct {
	dims    []int      // full tensor extents; nil for the invalid/empty value
	split   int        // number of leading axes in the row group
	weights []float64  // one weight per term
	rowFac  *mat.Dense // rows x rank factor matrix; nil at rank zero
	colFac  *mat.Dense // cols x rank factor matrix; nil at rank zero
}

// Empty returns the invalid SepRep: no extents, no content.
func Empty() *SepRep {
	return &SepRep{}
}

// Zero returns a valid rank-zero SepRep representing the zero tensor
// of the given extents.
func Zero(dims []int, split int) (*SepRep, error) {
	if err := checkSplit("seprep.Zero", dims, split); err != nil {
		return nil, err
	}
	return &SepRep{dims: append([]int(nil), dims...), split: split}, nil
}

// Decompose builds a SepRep from a dense tensor by truncated thin SVD
// of its matricization at the given split. The truncation keeps the
// reconstruction within eps in the Frobenius norm.
func Decompose(t *dense.Tensor, eps float64, split int) (*SepRep, error) {
	const op = "seprep.Decompose"
	if eps <= 0 {
		return nil, errors.NewValueError(op, "tolerance must be positive")
	}
	if err := checkSplit(op, t.Shape(), split); err != nil {
		return nil, err
	}
	m, err := t.AsMatrix(split)
	if err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, errors.Newf("%s: SVD failed to converge", op)
	}
	values := svd.Values(nil)

	// keep the smallest leading k whose discarded tail is within eps
	k := len(values)
	tailSq := 0.0
	for k > 0 {
		t2 := tailSq + values[k-1]*values[k-1]
		if math.Sqrt(t2) > eps {
			break
		}
		tailSq = t2
		k--
	}

	s := &SepRep{
		dims:    t.Shape(),
		split:   split,
		weights: append([]float64(nil), values[:k]...),
	}
	if k > 0 {
		var u, v mat.Dense
		svd.UTo(&u)
		svd.VTo(&v)
		rows, _ := u.Dims()
		cols, _ := v.Dims()
		s.rowFac = mat.DenseCopyOf(u.Slice(0, rows, 0, k))
		s.colFac = mat.DenseCopyOf(v.Slice(0, cols, 0, k))
	}
	return s, nil
}

func checkSplit(op string, dims []int, split int) error {
	if len(dims) < 2 {
		return errors.NewValueError(op, "separated representations need at least two axes")
	}
	if split < 1 || split >= len(dims) {
		return errors.NewValueError(op, "split must leave at least one axis on each side")
	}
	return nil
}

// IsValid reports whether the representation carries extents.
func (s *SepRep) IsValid() bool {
	return s.dims != nil
}

// Rank returns the number of terms.
func (s *SepRep) Rank() int {
	return len(s.weights)
}

// Dims returns a copy of the tensor extents.
func (s *SepRep) Dims() []int {
	return append([]int(nil), s.dims...)
}

// Ndim returns the number of axes.
func (s *SepRep) Ndim() int {
	return len(s.dims)
}

// Split returns the number of leading axes in the row group.
func (s *SepRep) Split() int {
	return s.split
}

// NCoeff returns the number of stored coefficients: one factor entry
// per group index per term, plus the weights.
func (s *SepRep) NCoeff() int {
	if !s.IsValid() || s.Rank() == 0 {
		return 0
	}
	rows, cols := s.groupSizes()
	return s.Rank() * (rows + cols + 1)
}

func (s *SepRep) groupSizes() (rows, cols int) {
	rows, cols = 1, 1
	for i, d := range s.dims {
		if i < s.split {
			rows *= d
		} else {
			cols *= d
		}
	}
	return rows, cols
}

// Copy returns a deep copy.
func (s *SepRep) Copy() *SepRep {
	out := &SepRep{
		dims:    append([]int(nil), s.dims...),
		split:   s.split,
		weights: append([]float64(nil), s.weights...),
	}
	if s.rowFac != nil {
		out.rowFac = mat.DenseCopyOf(s.rowFac)
		out.colFac = mat.DenseCopyOf(s.colFac)
	}
	return out
}

// Reconstruct expands the representation to a dense tensor. This is
// the expensive direction: it materializes the full element count.
func (s *SepRep) Reconstruct() (*dense.Tensor, error) {
	const op = "seprep.Reconstruct"
	if !s.IsValid() {
		return nil, errors.NewEmptyError(op)
	}
	out, err := dense.New(s.dims...)
	if err != nil {
		return nil, err
	}
	if s.Rank() == 0 {
		return out, nil
	}
	rows, cols := s.groupSizes()
	// weighted := rowFac * diag(weights)
	weighted := mat.NewDense(rows, s.Rank(), nil)
	for r := 0; r < s.Rank(); r++ {
		w := s.weights[r]
		for i := 0; i < rows; i++ {
			weighted.Set(i, r, w*s.rowFac.At(i, r))
		}
	}
	var m mat.Dense
	m.Mul(weighted, s.colFac.T())
	data := out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return out, nil
}

// Normf returns the Frobenius norm, computed in the Gram form so it
// stays exact for non-orthonormal factors.
func (s *SepRep) Normf() float64 {
	if s.Rank() == 0 {
		return 0
	}
	return math.Sqrt(math.Max(0, gramSum(s, s)))
}

// Overlap returns the inner product <s, other>. Extents and split must
// match.
func (s *SepRep) Overlap(other *SepRep) (float64, error) {
	const op = "seprep.Overlap"
	if !s.IsValid() || !other.IsValid() {
		return 0, errors.NewEmptyError(op)
	}
	if err := sameLayout(op, s, other); err != nil {
		return 0, err
	}
	if s.Rank() == 0 || other.Rank() == 0 {
		return 0, nil
	}
	return gramSum(s, other), nil
}

// gramSum computes sum_{r,q} sA_r sB_q (uA_r . uB_q)(vA_r . vB_q).
func gramSum(a, b *SepRep) float64 {
	var gu, gv mat.Dense
	gu.Mul(a.rowFac.T(), b.rowFac)
	gv.Mul(a.colFac.T(), b.colFac)
	sum := 0.0
	for r := 0; r < a.Rank(); r++ {
		for q := 0; q < b.Rank(); q++ {
			sum += a.weights[r] * b.weights[q] * gu.At(r, q) * gv.At(r, q)
		}
	}
	return sum
}

func sameLayout(op string, a, b *SepRep) error {
	if len(a.dims) != len(b.dims) {
		return errors.NewDimensionError(op, len(a.dims), len(b.dims), 0)
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] {
			return errors.NewDimensionError(op, a.dims[i], b.dims[i], i)
		}
	}
	if a.split != b.split {
		return errors.NewValueError(op, "operands separate their axes differently")
	}
	return nil
}

// Scale multiplies the represented tensor by a.
func (s *SepRep) Scale(a float64) {
	for i := range s.weights {
		s.weights[i] *= a
	}
}

// ReduceRank re-decomposes the representation at the given tolerance,
// shrinking the term count after accumulations have grown it. Content
// is preserved within eps in the Frobenius norm.
func (s *SepRep) ReduceRank(eps float64) error {
	const op = "seprep.ReduceRank"
	if eps <= 0 {
		return errors.NewValueError(op, "tolerance must be positive")
	}
	if !s.IsValid() {
		return errors.NewEmptyError(op)
	}
	if s.Rank() == 0 {
		return nil
	}
	t, err := s.Reconstruct()
	if err != nil {
		return err
	}
	reduced, err := Decompose(t, eps, s.split)
	if err != nil {
		return err
	}
	*s = *reduced
	return nil
}

// FillRandom fills the representation with random content. A
// rank-zero representation receives a single random term; otherwise
// the existing factors and weights are randomized in place.
func (s *SepRep) FillRandom() error {
	const op = "seprep.FillRandom"
	if !s.IsValid() {
		return errors.NewEmptyError(op)
	}
	if s.Rank() == 0 {
		rows, cols := s.groupSizes()
		s.weights = []float64{1}
		s.rowFac = mat.NewDense(rows, 1, nil)
		s.colFac = mat.NewDense(cols, 1, nil)
	}
	randomize := func(m *mat.Dense) {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				m.Set(i, j, 2*rand.Float64()-1)
			}
		}
	}
	randomize(s.rowFac)
	randomize(s.colFac)
	for i := range s.weights {
		s.weights[i] = 2*rand.Float64() - 1
	}
	return nil
}
