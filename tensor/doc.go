// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors for the classwork exercises.
//
// # Overview
//
// Tensors are small, fixed-shape numeric arrays. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting for element-wise arithmetic
//   - Matrix products with 1-D promotion
//   - Value printing in the familiar tensor([...]) layout
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
//
//	    x, _ := tensor.Vector([]float32{5, 5}, backend)
//	    w, _ := tensor.Matrix([][]float32{{1, -1}, {-1, 1}}, backend)
//	    fmt.Println(x.MatMul(w).ReLU()) // tensor([0., 0.])
//	}
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//
// Means and losses need a float type; convert integer tensors with
// Float32() or Float64() first.
package tensor
