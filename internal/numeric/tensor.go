package numeric

import "fmt"

// #region tensor
// Tensor is a dense row-major numeric array with explicit shape metadata.
// The generative model is a ragged collection of these: one likelihood tensor
// per observation modality and one transition tensor per hidden state factor,
// each with its own rank and axis lengths.
type Tensor struct {
	Shape   []int
	Data    []float64
	strides []int
}

// NewTensor wraps data in a tensor of the given shape.
// The data slice is used directly, not copied.
func NewTensor(shape []int, data []float64) (*Tensor, error) {
	n := 1
	for _, s := range shape {
		if s < 1 {
			return nil, fmt.Errorf("axis length %d: must be >= 1", s)
		}
		n *= s
	}
	if len(data) != n {
		return nil, fmt.Errorf("data length %d does not match shape %v (want %d)", len(data), shape, n)
	}
	return &Tensor{
		Shape:   append([]int(nil), shape...),
		Data:    data,
		strides: computeStrides(shape),
	}, nil
}

// Zeros allocates a zero-filled tensor of the given shape.
func Zeros(shape ...int) *Tensor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return &Tensor{
		Shape:   append([]int(nil), shape...),
		Data:    make([]float64, n),
		strides: computeStrides(shape),
	}
}

func computeStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}
// #endregion tensor

// #region accessors
// Idx converts a multi-index into a flat offset into Data.
func (t *Tensor) Idx(indices ...int) int {
	off := 0
	for i, ix := range indices {
		off += ix * t.strides[i]
	}
	return off
}

// At returns the element at the given multi-index.
func (t *Tensor) At(indices ...int) float64 {
	return t.Data[t.Idx(indices...)]
}

// Set writes the element at the given multi-index.
func (t *Tensor) Set(v float64, indices ...int) {
	t.Data[t.Idx(indices...)] = v
}

// Stride returns the flat step size along the given axis.
func (t *Tensor) Stride(axis int) int {
	return t.strides[axis]
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		Shape:   append([]int(nil), t.Shape...),
		Data:    append([]float64(nil), t.Data...),
		strides: append([]int(nil), t.strides...),
	}
}
// #endregion accessors

// #region multi-index
// NextIndex advances idx through the index grid defined by sizes, last axis
// fastest, and reports whether a next position exists. Starting from all
// zeros, repeated calls visit every cell exactly once in lexicographic order.
func NextIndex(idx, sizes []int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < sizes[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}
// #endregion multi-index
