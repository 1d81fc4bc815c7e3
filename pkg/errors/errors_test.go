package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	gterrors "github.com/ezoic/gentensor/pkg/errors"
)

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	dimErr := gterrors.NewDimensionError("Slice", 5, 7, 1)
	wrapped := fmt.Errorf("resolving slice failed: %w", dimErr)

	var target *gterrors.DimensionError
	if !stderrors.As(wrapped, &target) {
		t.Fatal("DimensionError not found in wrapped chain")
	}
	if target.Expected != 5 || target.Got != 7 || target.Axis != 1 {
		t.Errorf("unexpected fields: %+v", target)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "value",
			err:  gterrors.NewValueError("FromDenseEps", "tolerance must be positive"),
			want: "FromDenseEps: tolerance must be positive",
		},
		{
			name: "dimension",
			err:  gterrors.NewDimensionError("Gaxpy", 3, 4, 2),
			want: "Gaxpy: dimension mismatch on axis 2: expected 3, got 4",
		},
		{
			name: "kind mismatch",
			err:  gterrors.NewKindMismatchError("TraceConj", "FullRank", "LowRank-3D"),
			want: "TraceConj: representation kind mismatch: FullRank vs LowRank-3D",
		},
		{
			name: "not supported",
			err:  gterrors.NewNotSupportedError("SwapDims", "axis swap on a low-rank tensor"),
			want: "SwapDims: not supported: axis swap on a low-rank tensor",
		},
		{
			name: "empty",
			err:  gterrors.NewEmptyError("Normf"),
			want: "Normf: tensor has no data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	kindErr := gterrors.NewKindMismatchError("op", "a", "b")
	if !gterrors.IsKindMismatch(kindErr) {
		t.Error("IsKindMismatch should match a KindMismatchError")
	}
	if gterrors.IsKindMismatch(gterrors.NewEmptyError("op")) {
		t.Error("IsKindMismatch should not match an EmptyError")
	}
	if !gterrors.IsNotSupported(gterrors.NewNotSupportedError("op", "cap")) {
		t.Error("IsNotSupported should match a NotSupportedError")
	}
	if !gterrors.IsValueError(gterrors.NewValueError("op", "bad")) {
		t.Error("IsValueError should match a ValueError")
	}
	if !gterrors.IsDimensionError(gterrors.NewDimensionError("op", 1, 2, 0)) {
		t.Error("IsDimensionError should match a DimensionError")
	}
	if !gterrors.IsEmpty(gterrors.NewEmptyError("op")) {
		t.Error("IsEmpty should match an EmptyError")
	}
}

func TestStackTraceCaptured(t *testing.T) {
	err := gterrors.NewValueError("op", "bad input")
	verbose := fmt.Sprintf("%+v", err)
	if !strings.Contains(verbose, "errors_test.go") {
		t.Errorf("expected stack trace with call site in %%+v output, got:\n%s", verbose)
	}
}
