package nn

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// MSELoss computes Mean Squared Error loss: mean((predictions - targets)²).
//
// Integer predictions must be converted first, e.g. output.Float32().
//
// Example:
//
//	mse := nn.NewMSELoss[float32](backend)
//	loss := mse.Forward(predictions, targets)
//	fmt.Println(loss.Item())
type MSELoss[T tensor.Float, B tensor.Backend] struct {
	backend B
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[T tensor.Float, B tensor.Backend](backend B) *MSELoss[T, B] {
	return &MSELoss[T, B]{
		backend: backend,
	}
}

// Forward computes the MSE loss and returns it as a 0-D tensor.
// Panics if predictions and targets have different shapes.
func (m *MSELoss[T, B]) Forward(predictions, targets *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("MSELoss: predictions shape %v does not match targets shape %v",
			predictions.Shape(), targets.Shape()))
	}

	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}
