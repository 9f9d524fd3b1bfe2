package cpu

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

func (cpu *CPUBackend) binary(name string, op binaryOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameDType(name, a, b)

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	result := tensor.MustNewRaw(outShape, a.DType(), cpu.device)

	switch a.DType() {
	case tensor.Float32:
		broadcastApply[float32](result, a, b, op)
	case tensor.Float64:
		broadcastApply[float64](result, a, b, op)
	case tensor.Int32:
		broadcastApply[int32](result, a, b, op)
	case tensor.Int64:
		broadcastApply[int64](result, a, b, op)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
	return result
}

// broadcastApply walks out in row-major order, advancing each operand by its
// broadcast strides.
func broadcastApply[T tensor.DType](out, a, b *tensor.RawTensor, op binaryOp) {
	dst := tensor.View[T](out)
	x := tensor.View[T](a)
	y := tensor.View[T](b)

	shape := out.Shape()
	aStrides := a.Shape().BroadcastStrides(shape)
	bStrides := b.Shape().BroadcastStrides(shape)
	idx := make([]int, len(shape))

	ai, bi := 0, 0
	for i := range dst {
		dst[i] = apply(op, x[ai], y[bi])

		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			ai += aStrides[d]
			bi += bStrides[d]
			if idx[d] < shape[d] {
				break
			}
			ai -= aStrides[d] * shape[d]
			bi -= bStrides[d] * shape[d]
			idx[d] = 0
		}
	}
}

func apply[T tensor.DType](op binaryOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	default:
		return x * y
	}
}
