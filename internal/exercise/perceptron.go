// Package exercise holds the classroom forward-pass exercises: literal
// weights, one forward pass, and printed results.
package exercise

import (
	"fmt"
	"io"

	"github.com/born-ml/classwork/internal/nn"
	"github.com/born-ml/classwork/internal/tensor"
)

// PerceptronResult holds every stage of the single-input perceptron pass.
type PerceptronResult[B tensor.Backend] struct {
	Input  *tensor.Tensor[float32, B]
	Hidden *tensor.Tensor[float32, B] // x·W1 + b1
	Active *tensor.Tensor[float32, B] // relu(Hidden)
	Output *tensor.Tensor[float32, B] // Active·W2 + b2
}

// Perceptron evaluates relu(x·W1 + b1)·W2 + b2 for x = [5, 5] with
// W1 = [[1,-1],[-1,1]], b1 = [0,0], W2 = [1,-1], b2 = [0].
func Perceptron[B tensor.Backend](backend B) (*PerceptronResult[B], error) {
	w1, err := tensor.Matrix([][]float32{{1, -1}, {-1, 1}}, backend)
	if err != nil {
		return nil, fmt.Errorf("W1: %w", err)
	}
	b1, err := tensor.Vector([]float32{0, 0}, backend)
	if err != nil {
		return nil, fmt.Errorf("b1: %w", err)
	}
	w2, err := tensor.Vector([]float32{1, -1}, backend)
	if err != nil {
		return nil, fmt.Errorf("W2: %w", err)
	}
	b2, err := tensor.Vector([]float32{0}, backend)
	if err != nil {
		return nil, fmt.Errorf("b2: %w", err)
	}
	x, err := tensor.Vector([]float32{5, 5}, backend)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	model, err := nn.NewPerceptron(w1, b1, w2, b2)
	if err != nil {
		return nil, fmt.Errorf("build perceptron: %w", err)
	}

	trace := model.Trace(x)
	return &PerceptronResult[B]{
		Input:  x,
		Hidden: trace[0],
		Active: trace[1],
		Output: trace[2],
	}, nil
}

func runPerceptron[B tensor.Backend](w io.Writer, backend B) error {
	res, err := Perceptron(backend)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.Output)
	return err
}
