package gentensor

import (
	"github.com/ezoic/gentensor/core/seprep"
	"github.com/ezoic/gentensor/pkg/errors"
	"github.com/ezoic/gentensor/pkg/log"
)

var convLogger = log.GetLoggerWithName("gentensor.convert")

// ToFullRank converts the tensor behind g to the dense representation
// in place, replacing the handle's variant. A dense tensor is left
// untouched; a low-rank tensor is reconstructed; an empty tensor
// becomes an empty dense tensor. Other handles aliasing the previous
// variant keep seeing the old representation.
func ToFullRank(g *GenTensor) error {
	const op = "gentensor.ToFullRank"
	if !g.HasData() {
		full, err := NewOfKind(KindFull)
		if err != nil {
			return err
		}
		*g = full
		return nil
	}
	switch g.Kind() {
	case KindFull:
		return nil
	case KindLowRank2D, KindLowRank3D:
		rank := g.Rank()
		t, err := g.repr.Reconstruct()
		if err != nil {
			return err
		}
		g.repr = newFullRepr(t)
		convLogger.Debug("converted to full rank", "fromRank", rank, "size", t.Size())
		return nil
	default:
		return errors.NewValueError(op, "unknown representation kind")
	}
}

// ToLowRank converts the tensor behind g to the given low-rank kind in
// place within eps. A tensor already of that kind is left untouched;
// an empty tensor becomes an empty tensor of the target kind.
// Conversion between the two low-rank kinds is not supported.
func ToLowRank(g *GenTensor, eps float64, kind Kind) error {
	const op = "gentensor.ToLowRank"
	if !kind.IsLowRank() {
		return errors.NewValueError(op, "target kind must be a low-rank kind")
	}
	if eps <= 0 {
		return errors.NewValueError(op, "tolerance must be positive")
	}
	if !g.HasData() {
		lr, err := NewOfKind(kind)
		if err != nil {
			return err
		}
		*g = lr
		return nil
	}
	switch g.Kind() {
	case kind:
		return nil
	case KindFull:
		t, err := g.repr.FullTensor()
		if err != nil {
			return err
		}
		sr, err := seprep.Decompose(t, eps, splitFor(kind, t.Ndim()))
		if err != nil {
			return err
		}
		g.repr = newLowRankRepr(sr, kind, eps)
		convLogger.Debug("converted to low rank", "kind", kind.String(), "rank", sr.Rank())
		return nil
	case KindLowRank2D, KindLowRank3D:
		return errors.NewNotSupportedError(op, "conversion between low-rank kinds")
	default:
		return errors.NewValueError(op, "unknown representation kind")
	}
}
