package gentensor_test

import (
	"math"
	"testing"

	"github.com/ezoic/gentensor/core/dense"
	"github.com/ezoic/gentensor/gentensor"
	"github.com/ezoic/gentensor/pkg/errors"
)

func TestSliceAccumulate(t *testing.T) {
	// rows [1,3) of a 5x5 tensor receive a 2x5 block of ones; the
	// other rows stay untouched.
	base, _ := dense.New(5, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			base.Set(float64(10*i+j), i, j)
		}
	}
	g := fullOf(t, base)

	ones, _ := dense.New(2, 5)
	ones.Fill(1)
	rhs := fullOf(t, ones)

	s, err := g.Slice(gentensor.Range{Lo: 1, Hi: 3}, gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AddAssign(&rhs); err != nil {
		t.Fatalf("slice AddAssign failed: %v", err)
	}

	got, err := g.FullTensor()
	if err != nil {
		t.Fatalf("FullTensor failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := base.At(i, j)
			if i == 1 || i == 2 {
				want++
			}
			if math.Abs(got.At(i, j)-want) > epsilon {
				t.Errorf("(%d,%d) = %v, want %v", i, j, got.At(i, j), want)
			}
		}
	}
}

func TestSliceAccumulateLowRank(t *testing.T) {
	d := pattern(t, 4)
	g := lowRankOf(t, d, 1e-10, gentensor.KindLowRank3D)

	block, _ := dense.New(2, 4, 4)
	block.Fill(1)
	rhs := lowRankOf(t, block, 1e-10, gentensor.KindLowRank3D)

	s, err := g.Slice(gentensor.Range{Lo: 1, Hi: 3}, gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AddAssign(&rhs); err != nil {
		t.Fatalf("slice AddAssign failed: %v", err)
	}

	got, err := g.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				want := d.At(i, j, k)
				if i == 1 || i == 2 {
					want++
				}
				if math.Abs(got.At(i, j, k)-want) > 1e-8 {
					t.Errorf("(%d,%d,%d) = %v, want %v", i, j, k, got.At(i, j, k), want)
				}
			}
		}
	}
}

func TestSliceZeroOutFull(t *testing.T) {
	d := pattern(t, 4)
	g := fullOf(t, d)

	s, err := g.Slice(gentensor.Range{Lo: 1, Hi: 3}, gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AssignScalar(0); err != nil {
		t.Fatalf("AssignScalar(0) failed: %v", err)
	}

	got, err := g.FullTensor()
	if err != nil {
		t.Fatalf("FullTensor failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				want := d.At(i, j, k)
				if i == 1 || i == 2 {
					want = 0
				}
				if math.Abs(got.At(i, j, k)-want) > epsilon {
					t.Errorf("(%d,%d,%d) = %v, want %v", i, j, k, got.At(i, j, k), want)
				}
			}
		}
	}
}

func TestSliceZeroOutLowRank(t *testing.T) {
	d := pattern(t, 4)
	g := lowRankOf(t, d, 1e-10, gentensor.KindLowRank3D)

	s, err := g.Slice(gentensor.Range{Lo: 0, Hi: 2}, gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AssignScalar(0); err != nil {
		t.Fatalf("AssignScalar(0) failed: %v", err)
	}

	got, err := g.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				want := d.At(i, j, k)
				if i < 2 {
					want = 0
				}
				if math.Abs(got.At(i, j, k)-want) > 1e-8 {
					t.Errorf("(%d,%d,%d) = %v, want %v", i, j, k, got.At(i, j, k), want)
				}
			}
		}
	}
}

func TestSliceAssignScalarRejectsNonzero(t *testing.T) {
	g := fullOf(t, pattern(t, 3))
	s, err := g.Slice(gentensor.All(), gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AssignScalar(1.5); !errors.IsValueError(err) {
		t.Errorf("nonzero scalar assignment must be rejected, got %v", err)
	}
}

func TestSliceAssignAlwaysFails(t *testing.T) {
	g := fullOf(t, pattern(t, 3))
	rhs := gentensor.Duplicate(g)
	s, err := g.Slice(gentensor.All(), gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.Assign(&rhs); !errors.IsNotSupported(err) {
		t.Errorf("Assign must fail, got %v", err)
	}
	if err := s.AssignSlice(s); !errors.IsNotSupported(err) {
		t.Errorf("AssignSlice must fail, got %v", err)
	}
}

func TestSliceMaterialize(t *testing.T) {
	d := pattern(t, 4)
	g := fullOf(t, d)

	s, err := g.Slice(gentensor.Range{Lo: 1, Hi: 3}, gentensor.Range{Lo: 0, Hi: 2}, gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	sub, err := s.Materialize()
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if got := sub.Ndim(); got != 3 {
		t.Fatalf("Ndim = %d, want 3", got)
	}
	st, err := sub.FullTensor()
	if err != nil {
		t.Fatalf("FullTensor failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 4; k++ {
				if st.At(i, j, k) != d.At(i+1, j, k) {
					t.Errorf("materialized (%d,%d,%d) mismatch", i, j, k)
				}
			}
		}
	}

	// materialized content is a deep copy
	g.Scale(2)
	if st.At(0, 0, 0) != d.At(1, 0, 0) {
		t.Error("Materialize must not alias the source")
	}
}

func TestSliceMaterializeLowRank(t *testing.T) {
	d := pattern(t, 4)
	g := lowRankOf(t, d, 1e-10, gentensor.KindLowRank2D)

	s, err := g.Slice(gentensor.Range{Lo: 0, Hi: 2}, gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	sub, err := s.Materialize()
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if sub.Kind() != gentensor.KindLowRank2D {
		t.Errorf("Kind = %v, want KindLowRank2D", sub.Kind())
	}
	recon, err := sub.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				if math.Abs(recon.At(i, j, k)-d.At(i, j, k)) > 1e-8 {
					t.Errorf("materialized (%d,%d,%d) off by %v", i, j, k, recon.At(i, j, k)-d.At(i, j, k))
				}
			}
		}
	}
}

func TestSliceValidation(t *testing.T) {
	g := fullOf(t, pattern(t, 3))

	if _, err := g.Slice(gentensor.Range{Lo: 0, Hi: 4}, gentensor.All(), gentensor.All()); err == nil {
		t.Error("out-of-range slice must fail at construction")
	}
	if _, err := g.Slice(gentensor.All(), gentensor.All()); err == nil {
		t.Error("wrong range count must fail")
	}
	if _, err := g.Slice(gentensor.Range{Lo: 2, Hi: 2}, gentensor.All(), gentensor.All()); err == nil {
		t.Error("empty range must fail")
	}

	var empty gentensor.GenTensor
	if _, err := empty.Slice(gentensor.All()); !errors.IsEmpty(err) {
		t.Errorf("slicing an empty tensor must return EmptyError, got %v", err)
	}
}

func TestSliceKindMismatch(t *testing.T) {
	d := pattern(t, 4)
	full := fullOf(t, d)
	low := lowRankOf(t, d, 1e-8, gentensor.KindLowRank3D)

	s, err := full.Slice(gentensor.All(), gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := s.AddAssign(&low); !errors.IsKindMismatch(err) {
		t.Errorf("cross-kind slice accumulate must fail, got %v", err)
	}
}

func TestAddAssignSliceIntoWhole(t *testing.T) {
	// g2 += g1(rows [0,2)) where g2 is 2x4x4 and g1 is 4x4x4
	d := pattern(t, 4)
	g1 := fullOf(t, d)
	g2, err := gentensor.New([]int{2, 4, 4}, gentensor.KindFull)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s, err := g1.Slice(gentensor.Range{Lo: 0, Hi: 2}, gentensor.All(), gentensor.All())
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if err := g2.AddAssignSlice(s); err != nil {
		t.Fatalf("AddAssignSlice failed: %v", err)
	}
	got, err := g2.FullTensor()
	if err != nil {
		t.Fatalf("FullTensor failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				if math.Abs(got.At(i, j, k)-d.At(i, j, k)) > epsilon {
					t.Errorf("(%d,%d,%d) mismatch", i, j, k)
				}
			}
		}
	}
}
