// Package nn implements neural network modules for the classwork exercises.
//
// This package provides building blocks for hand-parameterized networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named parameter tensors
//   - Affine: y = x·W + b with caller-supplied weights
//   - ReLU activation
//   - Sequential: Container for stacking layers
//   - MSELoss: Mean squared error
//
// Modules are generic over the element type so integer exercises run
// without conversion until the loss.
package nn

import (
	"github.com/born-ml/classwork/internal/tensor"
)

// Module is the base interface for all neural network components.
//
//	model := nn.NewSequential[int64, Backend](
//	    affine1,
//	    nn.NewReLU[int64, Backend](),
//	    affine2,
//	)
type Module[T tensor.DType, B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B]

	// Parameters returns the module's parameters, including nested ones.
	// Modules without parameters return an empty, non-nil slice.
	Parameters() []*Parameter[T, B]
}
