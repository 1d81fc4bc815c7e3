package gentensor

import (
	"github.com/ezoic/gentensor/pkg/errors"
)

// TensorArgs bundles the numerical tolerance and the target kind used
// by every "build or convert to low rank" call site, so a framework
// can thread one configuration value through its tree.
//
// There is no usable zero value: construct through NewTensorArgs.
type TensorArgs struct {
	Thresh float64
	Kind   Kind
}

// NewTensorArgs validates and builds a TensorArgs. Low-rank kinds
// require a strictly positive tolerance; KindNone is rejected.
func NewTensorArgs(thresh float64, kind Kind) (TensorArgs, error) {
	const op = "gentensor.NewTensorArgs"
	switch kind {
	case KindFull:
	case KindLowRank2D, KindLowRank3D:
		if thresh <= 0 {
			return TensorArgs{}, errors.NewValueError(op, "tolerance must be positive for low-rank kinds")
		}
	default:
		return TensorArgs{}, errors.NewValueError(op, "unknown representation kind")
	}
	return TensorArgs{Thresh: thresh, Kind: kind}, nil
}
