package exercise

import (
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/classwork/internal/backend/cpu"
)

// ErrUnknownExercise is returned by Lookup for names not in the registry.
var ErrUnknownExercise = errors.New("unknown exercise")

// Exercise is a named, runnable classroom computation.
type Exercise struct {
	Name        string
	Description string
	run         func(io.Writer, *cpu.CPUBackend) error
}

// Run executes the exercise on backend and prints its transcript to w.
func (e Exercise) Run(w io.Writer, backend *cpu.CPUBackend) error {
	if err := e.run(w, backend); err != nil {
		return fmt.Errorf("exercise %s: %w", e.Name, err)
	}
	return nil
}

var registry = []Exercise{
	{
		Name:        "perceptron",
		Description: "two-layer perceptron forward pass on x = [5, 5]",
		run:         runPerceptron[*cpu.CPUBackend],
	},
	{
		Name:        "compare",
		Description: "two hand-parameterized models scored with mean-squared-error",
		run:         runCompare[*cpu.CPUBackend],
	},
}

// All returns every exercise in run order.
func All() []Exercise {
	return append([]Exercise(nil), registry...)
}

// Lookup returns the exercise with the given name.
func Lookup(name string) (Exercise, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
}
