package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// ErrInvalidParameter is returned when layer parameters have unusable shapes.
var ErrInvalidParameter = errors.New("invalid layer parameter")

// Affine applies y = x·W + b with a caller-supplied weight and bias.
//
// The weight is stored as [in_features, out_features], so no transpose is
// needed in Forward. A 1-D weight of shape [in_features] maps each input row
// to a single value, with the output dimension squeezed away:
//
//	x [2]    · W [2, 2] + b [2] → [2]
//	x [3, 3] · W [3]    + b [1] → [3]
//
// The bias may be nil.
type Affine[T tensor.DType, B tensor.Backend] struct {
	weight *Parameter[T, B]
	bias   *Parameter[T, B]
}

// NewAffine creates an Affine layer from literal parameters.
//
// The weight must be 1-D or 2-D. A non-nil bias must broadcast against the
// output: for a 2-D weight it holds 1 or out_features elements along a single
// dimension, for a 1-D weight it holds exactly one element.
func NewAffine[T tensor.DType, B tensor.Backend](weight, bias *tensor.Tensor[T, B]) (*Affine[T, B], error) {
	if weight == nil {
		return nil, fmt.Errorf("%w: weight is nil", ErrInvalidParameter)
	}
	ws := weight.Shape()
	if len(ws) != 1 && len(ws) != 2 {
		return nil, fmt.Errorf("%w: weight must be 1-D or 2-D, got shape %v", ErrInvalidParameter, ws)
	}

	a := &Affine[T, B]{weight: NewParameter("weight", weight)}
	if bias == nil {
		return a, nil
	}

	bs := bias.Shape()
	if len(bs) > 1 {
		return nil, fmt.Errorf("%w: bias must be 0-D or 1-D, got shape %v", ErrInvalidParameter, bs)
	}
	n := bias.NumElements()
	switch {
	case len(ws) == 1 && n != 1:
		return nil, fmt.Errorf("%w: bias for 1-D weight must have one element, got shape %v", ErrInvalidParameter, bs)
	case len(ws) == 2 && n != 1 && n != ws[1]:
		return nil, fmt.Errorf("%w: bias shape %v does not match %d output features", ErrInvalidParameter, bs, ws[1])
	}

	a.bias = NewParameter("bias", bias)
	return a, nil
}

// Forward computes x·W + b.
// Panics if the input's last dimension differs from InFeatures.
func (a *Affine[T, B]) Forward(input *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	shape := input.Shape()
	if len(shape) == 0 || shape[len(shape)-1] != a.InFeatures() {
		panic(fmt.Sprintf("Affine.Forward: expected input with %d features, got shape %v", a.InFeatures(), shape))
	}

	output := input.MatMul(a.weight.Tensor())
	if a.bias != nil {
		output = output.Add(a.bias.Tensor())
	}
	return output
}

// Parameters returns [weight, bias], or [weight] when there is no bias.
func (a *Affine[T, B]) Parameters() []*Parameter[T, B] {
	if a.bias != nil {
		return []*Parameter[T, B]{a.weight, a.bias}
	}
	return []*Parameter[T, B]{a.weight}
}

// Weight returns the weight parameter.
func (a *Affine[T, B]) Weight() *Parameter[T, B] {
	return a.weight
}

// Bias returns the bias parameter, or nil.
func (a *Affine[T, B]) Bias() *Parameter[T, B] {
	return a.bias
}

// InFeatures returns the number of input features.
func (a *Affine[T, B]) InFeatures() int {
	return a.weight.Tensor().Shape()[0]
}

// OutFeatures returns the number of output features; 1 for a 1-D weight.
func (a *Affine[T, B]) OutFeatures() int {
	ws := a.weight.Tensor().Shape()
	if len(ws) == 1 {
		return 1
	}
	return ws[1]
}
