package gentensor

import (
	"gonum.org/v1/gonum/mat"
)

// Free-function forms of the basis transforms, for call sites written
// in the transform(t, c) style of the surrounding framework. They
// forward to the corresponding methods.

// Transform contracts every axis of t against c:
//
//	result(i,j,k,...) = sum t(i',j',k',...) c(i',i) c(j',j) c(k',k) ...
func Transform(t *GenTensor, c *mat.Dense) (GenTensor, error) {
	return t.TransformAll(c)
}

// GeneralTransform contracts axis i of t against cs[i].
func GeneralTransform(t *GenTensor, cs []*mat.Dense) (GenTensor, error) {
	return t.TransformEach(cs)
}

// TransformDir contracts only the named axis of t against c:
//
//	TransformDir(t, c, 1): result(i,j,k,...) = sum_j' t(i,j',k,...) c(j',j)
func TransformDir(t *GenTensor, c *mat.Dense, axis int) (GenTensor, error) {
	return t.TransformDim(c, axis)
}
