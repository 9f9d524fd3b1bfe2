package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/classwork/internal/tensor"
)

// Sum returns the sum of all elements as a 0-D tensor of the same dtype.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := tensor.MustNewRaw(tensor.Shape{}, x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = float32(sumFloat32(x.AsFloat32()))
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sumInt(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sumInt(x.AsInt64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return result
}

// Mean returns the mean of all elements as a 0-D tensor.
// Only float dtypes are supported; cast integer tensors first.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	if !x.DType().IsFloat() {
		panic(fmt.Sprintf("mean: dtype %s is not a float type, cast before reducing", x.DType()))
	}

	result := tensor.MustNewRaw(tensor.Shape{}, x.DType(), cpu.device)
	n := float64(x.NumElements())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = float32(sumFloat32(x.AsFloat32()) / n)
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64()) / n
	}
	return result
}

// sumFloat32 accumulates in float64 to limit rounding error.
func sumFloat32(data []float32) float64 {
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum
}

func sumInt[T int32 | int64](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}
