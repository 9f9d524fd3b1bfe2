// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/classwork/internal/tensor"
)

// DType is a constraint for tensor element types: float32, float64, int32, int64.
type DType = tensor.DType

// Float is the constraint for float element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the host device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor. An empty Shape is a scalar.
type Shape = tensor.Shape

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// RawTensor is the low-level, untyped tensor representation used by backends.
// Most users should use Tensor[T, B] instead.
type RawTensor = tensor.RawTensor

// Tensor is a generic type-safe tensor.
//
// T is the element type and B the backend implementation.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice; the data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]int64{1, 2, 4, 5}, tensor.Shape{2, 2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Vector creates a 1-D tensor.
func Vector[T DType, B Backend](values []T, b B) (*Tensor[T, B], error) {
	return tensor.Vector(values, b)
}

// Matrix creates a 2-D tensor from equal-length rows.
func Matrix[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.Matrix(rows, b)
}

// Scalar creates a 0-D tensor.
func Scalar[T DType, B Backend](v T, b B) *Tensor[T, B] {
	return tensor.Scalar(v, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T](shape, b)
}
