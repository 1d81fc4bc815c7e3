// Package errors defines the typed error taxonomy for the gentensor
// library.
//
// Every failure in the library is one of a small number of concrete
// error types, created through the constructor functions below and
// discovered by callers with the standard errors.As/errors.Is
// machinery. Representation bookkeeping mistakes (operating across
// different representation kinds, writing to a slice, calling a
// capability a representation does not support) are programmer errors:
// they are reported immediately at the API boundary and are not meant
// to be recovered from, but they are returned as values rather than
// panics so the surrounding framework decides whether to abort.
//
// All constructors capture a stack trace via cockroachdb/errors, so
// logging an error with %+v prints where it was raised.
package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// ValueError reports an invalid argument value, such as a non-positive
// tolerance or an unknown representation kind.
type ValueError struct {
	Op      string // operation that rejected the value
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return crdberrors.WithStack(&ValueError{Op: op, Message: message})
}

// DimensionError reports a shape mismatch or an out-of-range extent.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch on axis %d: expected %d, got %d",
		e.Op, e.Axis, e.Expected, e.Got)
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return crdberrors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// KindMismatchError reports a binary operation whose operands carry
// different representation kinds. Kinds are never coerced implicitly;
// a mismatch is a contract violation on the caller's side.
type KindMismatchError struct {
	Op    string
	Left  string // kind of the receiver
	Right string // kind of the argument
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s: representation kind mismatch: %s vs %s", e.Op, e.Left, e.Right)
}

// NewKindMismatchError creates a KindMismatchError with a stack trace.
func NewKindMismatchError(op, left, right string) error {
	return crdberrors.WithStack(&KindMismatchError{Op: op, Left: left, Right: right})
}

// NotSupportedError reports a capability that the addressed
// representation deliberately does not implement (complex-valued
// factors, axis swap on a low-rank tensor, slice overwrite, ...).
// The operation fails loudly instead of degrading to a wrong result.
type NotSupportedError struct {
	Op         string
	Capability string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: not supported: %s", e.Op, e.Capability)
}

// NewNotSupportedError creates a NotSupportedError with a stack trace.
func NewNotSupportedError(op, capability string) error {
	return crdberrors.WithStack(&NotSupportedError{Op: op, Capability: capability})
}

// EmptyError reports a numerical method invoked on an empty tensor.
// Emptiness queries are always permitted; arithmetic is not.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: tensor has no data", e.Op)
}

// NewEmptyError creates an EmptyError with a stack trace.
func NewEmptyError(op string) error {
	return crdberrors.WithStack(&EmptyError{Op: op})
}

// Newf forwards to cockroachdb/errors for one-off errors that do not
// fit the taxonomy above.
func Newf(format string, args ...interface{}) error {
	return crdberrors.Newf(format, args...)
}

// Wrapf forwards to cockroachdb/errors.
func Wrapf(err error, format string, args ...interface{}) error {
	return crdberrors.Wrapf(err, format, args...)
}

// IsValueError reports whether err has a ValueError in its chain.
func IsValueError(err error) bool {
	var target *ValueError
	return crdberrors.As(err, &target)
}

// IsDimensionError reports whether err has a DimensionError in its chain.
func IsDimensionError(err error) bool {
	var target *DimensionError
	return crdberrors.As(err, &target)
}

// IsKindMismatch reports whether err has a KindMismatchError in its chain.
func IsKindMismatch(err error) bool {
	var target *KindMismatchError
	return crdberrors.As(err, &target)
}

// IsNotSupported reports whether err has a NotSupportedError in its chain.
func IsNotSupported(err error) bool {
	var target *NotSupportedError
	return crdberrors.As(err, &target)
}

// IsEmpty reports whether err has an EmptyError in its chain.
func IsEmpty(err error) bool {
	var target *EmptyError
	return crdberrors.As(err, &target)
}
