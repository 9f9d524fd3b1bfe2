package nn

import (
	"github.com/born-ml/classwork/internal/tensor"
)

// Parameter is a named tensor owned by a module, such as a weight or bias.
type Parameter[T tensor.DType, B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[T, B]
}

// NewParameter creates a named parameter wrapping t.
func NewParameter[T tensor.DType, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.tensor
}
