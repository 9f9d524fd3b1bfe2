package cpu

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// ReLU applies max(0, x) element-wise. NaN inputs propagate.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result := tensor.MustNewRaw(x.Shape(), x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		relu(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		relu(result.AsFloat64(), x.AsFloat64())
	case tensor.Int32:
		relu(result.AsInt32(), x.AsInt32())
	case tensor.Int64:
		relu(result.AsInt64(), x.AsInt64())
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s", x.DType()))
	}
	return result
}

func relu[T tensor.DType](dst, src []T) {
	for i, v := range src {
		if v < 0 {
			v = 0
		}
		dst[i] = v
	}
}
