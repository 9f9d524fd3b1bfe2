// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum BLAS kernels for float32 and float64 matrix products
//   - Integer kernels for int32 and int64
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/classwork/backend/cpu"
//	    "github.com/born-ml/classwork/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Matrix([][]int64{{1, 2}, {4, 5}}, backend)
//	    fmt.Println(x.ReLU())
//	}
package cpu
