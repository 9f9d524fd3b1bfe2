package nn

import (
	"github.com/born-ml/classwork/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation module: f(x) = max(0, x).
type ReLU[T tensor.DType, B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[T tensor.DType, B tensor.Backend]() *ReLU[T, B] {
	return &ReLU[T, B]{}
}

// Forward applies max(0, x) element-wise.
func (r *ReLU[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return input.ReLU()
}

// Parameters returns an empty slice.
func (r *ReLU[T, B]) Parameters() []*Parameter[T, B] {
	return []*Parameter[T, B]{}
}
