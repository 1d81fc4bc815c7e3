// Package gentensor provides a tensor that transparently switches
// between a dense (full-rank) representation and a separated low-rank
// representation behind one arithmetic interface.
//
// # Shallow and deep
//
// The one table to remember:
//
//	b := a                        // shallow: b aliases a's variant
//	b := Duplicate(a)             // deep: fresh variant
//	b, _ := FromDenseEps(t, e, k) // deep: built from a dense tensor
//	sl, _ := a.Slice(rs...)
//	b, _ := sl.Materialize()      // deep: read of a slice
//
// This mirrors the asymmetry of the surrounding framework's plain
// dense tensors, where t = t1(s) is shallow: for generalized tensors
// slicing is deep, handle copies are shallow.
//
// # Slices of low-rank tensors
//
// A separated representation offers no per-element access, so slices
// cannot be assigned to; they support deep reads, in-place
// accumulation, and zeroing via accumulation of the negated content:
//
//	sl, _ := g.Slice(rs...)
//	sub, _ := sl.Materialize() // read
//	_ = sl.AddAssign(&rhs)     // g(rs) += rhs
//	_ = sl.AssignScalar(0)     // g(rs) = 0
//
// All of these grow the rank of the referenced tensor; reduce it again
// with ReduceRank when a batch of updates is done.
//
// # Kinds
//
// Operands of binary operations must share one representation kind;
// mixing kinds is a contract violation reported as a
// KindMismatchError, never an implicit conversion. Explicit
// conversions are ToFullRank and ToLowRank, which replace the variant
// behind the passed handle in place.
package gentensor
