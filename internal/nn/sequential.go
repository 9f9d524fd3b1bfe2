package nn

import (
	"github.com/born-ml/classwork/internal/tensor"
)

// Sequential chains modules; each module's output is the next one's input.
type Sequential[T tensor.DType, B tensor.Backend] struct {
	modules []Module[T, B]
}

// NewSequential creates a new Sequential container.
func NewSequential[T tensor.DType, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return &Sequential[T, B]{
		modules: modules,
	}
}

// Forward applies all modules in order.
func (s *Sequential[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Trace applies all modules in order and returns every module's output,
// so intermediate activations can be inspected. The last element equals
// Forward(input).
func (s *Sequential[T, B]) Trace(input *tensor.Tensor[T, B]) []*tensor.Tensor[T, B] {
	outputs := make([]*tensor.Tensor[T, B], 0, len(s.modules))
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
		outputs = append(outputs, output)
	}
	return outputs
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential[T, B]) Parameters() []*Parameter[T, B] {
	params := []*Parameter[T, B]{}
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential[T, B]) Add(module Module[T, B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential[T, B]) Len() int {
	return len(s.modules)
}

// Module returns the module at index i.
func (s *Sequential[T, B]) Module(i int) Module[T, B] {
	return s.modules[i]
}
