package model

import "fmt"

// #region shape-mismatch
// ShapeMismatchError reports a tensor whose rank or axis lengths disagree
// with the declared factor and modality cardinalities. Construction-time and
// fatal: the model is rejected.
type ShapeMismatchError struct {
	Tensor string // e.g. "A[1]", "B[0]", "C[2]", "D[0]"
	Got    []int
	Want   []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape %v does not match expected %v", e.Tensor, e.Got, e.Want)
}
// #endregion shape-mismatch

// #region not-normalized
// NotNormalizedError reports a conditional-distribution slice that does not
// sum to 1 within tolerance. Construction-time and fatal.
type NotNormalizedError struct {
	Tensor string
	Index  []int // fixed conditioning indices of the offending slice
	Sum    float64
}

func (e *NotNormalizedError) Error() string {
	return fmt.Sprintf("%s: slice at %v sums to %.9f, want 1", e.Tensor, e.Index, e.Sum)
}
// #endregion not-normalized
