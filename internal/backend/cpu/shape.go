package cpu

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// Transpose permutes the tensor's dimensions.
// With no axes the dimensions are reversed; tensors with fewer than two
// dimensions are returned as a copy.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		if ndim < 2 {
			return t.Clone()
		}
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}
	result := tensor.MustNewRaw(newShape, t.DType(), cpu.device)

	switch t.DType() {
	case tensor.Float32:
		permute(result.AsFloat32(), t.AsFloat32(), t.Strides(), newShape, axes)
	case tensor.Float64:
		permute(result.AsFloat64(), t.AsFloat64(), t.Strides(), newShape, axes)
	case tensor.Int32:
		permute(result.AsInt32(), t.AsInt32(), t.Strides(), newShape, axes)
	case tensor.Int64:
		permute(result.AsInt64(), t.AsInt64(), t.Strides(), newShape, axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}
	return result
}

func permute[T tensor.DType](dst, src []T, srcStrides []int, dstShape tensor.Shape, axes []int) {
	idx := make([]int, len(dstShape))
	for i := range dst {
		offset := 0
		for d, ax := range axes {
			offset += idx[d] * srcStrides[ax]
		}
		dst[i] = src[offset]

		for d := len(dstShape) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < dstShape[d] {
				break
			}
			idx[d] = 0
		}
	}
}
