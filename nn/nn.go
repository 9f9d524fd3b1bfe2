// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/classwork/internal/nn"
	"github.com/born-ml/classwork/internal/tensor"
)

// Module is the common interface for all neural network modules.
type Module[T tensor.DType, B tensor.Backend] = nn.Module[T, B]

// Parameter is a named tensor owned by a module.
type Parameter[T tensor.DType, B tensor.Backend] = nn.Parameter[T, B]

// ErrInvalidParameter is returned when layer parameters have unusable shapes.
var ErrInvalidParameter = nn.ErrInvalidParameter

// NewParameter creates a named parameter.
func NewParameter[T tensor.DType, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter(name, t)
}

// Layers

// Affine computes y = x·W + b with caller-supplied parameters.
type Affine[T tensor.DType, B tensor.Backend] = nn.Affine[T, B]

// NewAffine creates an Affine layer. The bias may be nil.
func NewAffine[T tensor.DType, B tensor.Backend](weight, bias *tensor.Tensor[T, B]) (*Affine[T, B], error) {
	return nn.NewAffine(weight, bias)
}

// Activations

// ReLU applies max(0, x).
type ReLU[T tensor.DType, B tensor.Backend] = nn.ReLU[T, B]

// NewReLU creates a ReLU activation.
func NewReLU[T tensor.DType, B tensor.Backend]() *ReLU[T, B] {
	return nn.NewReLU[T, B]()
}

// Containers

// Sequential chains modules.
type Sequential[T tensor.DType, B tensor.Backend] = nn.Sequential[T, B]

// NewSequential creates a Sequential container.
func NewSequential[T tensor.DType, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return nn.NewSequential(modules...)
}

// NewPerceptron builds relu(x·W1 + b1)·W2 + b2.
func NewPerceptron[T tensor.DType, B tensor.Backend](w1, b1, w2, b2 *tensor.Tensor[T, B]) (*Sequential[T, B], error) {
	return nn.NewPerceptron(w1, b1, w2, b2)
}

// Loss functions

// MSELoss computes mean squared error.
type MSELoss[T tensor.Float, B tensor.Backend] = nn.MSELoss[T, B]

// NewMSELoss creates an MSE loss.
func NewMSELoss[T tensor.Float, B tensor.Backend](backend B) *MSELoss[T, B] {
	return nn.NewMSELoss[T](backend)
}
