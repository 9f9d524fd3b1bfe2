package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/classwork/internal/tensor"
)

// MatMul performs a matrix product of 1-D or 2-D tensors.
//
// A 1-D left operand is treated as a row (1, K) and a 1-D right operand as a
// column (K, 1); the promoted dimension is dropped from the result:
//
//	(M, K) @ (K, N) -> (M, N)
//	(K)    @ (K, N) -> (N)
//	(M, K) @ (K)    -> (M)
//	(K)    @ (K)    -> ()
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameDType("matmul", a, b)

	aShape := a.Shape()
	bShape := b.Shape()
	if len(aShape) < 1 || len(aShape) > 2 || len(bShape) < 1 || len(bShape) > 2 {
		panic(fmt.Sprintf("matmul: only 1-D and 2-D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := 1, aShape[len(aShape)-1]
	if len(aShape) == 2 {
		m = aShape[0]
	}
	kAlt, n := bShape[0], 1
	if len(bShape) == 2 {
		n = bShape[1]
	}
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v", aShape, bShape))
	}

	outShape := tensor.Shape{}
	if len(aShape) == 2 {
		outShape = append(outShape, m)
	}
	if len(bShape) == 2 {
		outShape = append(outShape, n)
	}
	result := tensor.MustNewRaw(outShape, a.DType(), cpu.device)

	switch a.DType() {
	case tensor.Float32:
		gemmFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		gemmFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	case tensor.Int32:
		matmulInt(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmulInt(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

func gemmFloat32(c, a, b []float32, m, k, n int) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c},
	)
}

func gemmFloat64(c, a, b []float64, m, k, n int) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: c},
	)
}

// matmulInt is the naive kernel for integer dtypes, which BLAS does not cover.
func matmulInt[T int32 | int64](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
