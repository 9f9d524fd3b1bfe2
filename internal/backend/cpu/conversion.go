package cpu

import (
	"fmt"

	"github.com/born-ml/classwork/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Float to integer conversion truncates toward zero.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result := tensor.MustNewRaw(x.Shape(), dtype, cpu.device)

	switch dtype {
	case tensor.Float32:
		castInto(result.AsFloat32(), x)
	case tensor.Float64:
		castInto(result.AsFloat64(), x)
	case tensor.Int32:
		castInto(result.AsInt32(), x)
	case tensor.Int64:
		castInto(result.AsInt64(), x)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}
	return result
}

func castInto[To tensor.DType](dst []To, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		convert(dst, x.AsFloat32())
	case tensor.Float64:
		convert(dst, x.AsFloat64())
	case tensor.Int32:
		convert(dst, x.AsInt32())
	case tensor.Int64:
		convert(dst, x.AsInt64())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
}

func convert[To, From tensor.DType](dst []To, src []From) {
	for i, v := range src {
		dst[i] = To(v)
	}
}
