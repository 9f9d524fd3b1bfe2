package nn

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// NewPerceptron builds the two-layer network relu(x·W1 + b1)·W2 + b2.
//
// The returned Sequential holds [Affine, ReLU, Affine], so Trace yields the
// hidden pre-activation, the hidden activation and the output in that order.
func NewPerceptron[T tensor.DType, B tensor.Backend](w1, b1, w2, b2 *tensor.Tensor[T, B]) (*Sequential[T, B], error) {
	hidden, err := NewAffine(w1, b1)
	if err != nil {
		return nil, fmt.Errorf("hidden layer: %w", err)
	}
	output, err := NewAffine(w2, b2)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	if hidden.OutFeatures() != output.InFeatures() {
		return nil, fmt.Errorf("%w: hidden layer has %d outputs but output layer expects %d inputs",
			ErrInvalidParameter, hidden.OutFeatures(), output.InFeatures())
	}

	return NewSequential[T, B](hidden, NewReLU[T, B](), output), nil
}
