package tensor

import "fmt"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	z := x.MatMul(w) // Shape: [3, 3]
//	z = z.Add(b)     // b has shape [3], broadcast over rows
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// MatMul performs a matrix product.
//
// Supported shapes:
//   - (M, K) @ (K, N) → (M, N)
//   - (K) @ (K, N) → (N)
//   - (M, K) @ (K) → (M)
//   - (K) @ (K) → () (dot product)
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Transpose permutes dimensions. With no axes it reverses them,
// so a 1-D tensor is returned unchanged.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// T is shorthand for Transpose().
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	return t.Transpose()
}

// Reshape returns a tensor sharing storage under a new shape.
// Panics if the element count differs.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	raw, err := t.raw.WithShape(Shape(newShape))
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return New[T, B](raw, t.backend)
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor[T, B]) ReLU() *Tensor[T, B] {
	return New[T, B](t.backend.ReLU(t.raw), t.backend)
}

// Sum returns the sum of all elements as a 0-D tensor.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	return New[T, B](t.backend.Sum(t.raw), t.backend)
}

// Mean returns the mean of all elements as a 0-D tensor.
// Integer tensors must be converted to a float type first.
func (t *Tensor[T, B]) Mean() *Tensor[T, B] {
	return New[T, B](t.backend.Mean(t.raw), t.backend)
}

// Float32 converts the tensor to float32.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	return New[float32, B](t.backend.Cast(t.raw, Float32), t.backend)
}

// Float64 converts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	return New[float64, B](t.backend.Cast(t.raw, Float64), t.backend)
}

// Int32 converts the tensor to int32, truncating toward zero.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	return New[int32, B](t.backend.Cast(t.raw, Int32), t.backend)
}

// Int64 converts the tensor to int64, truncating toward zero.
func (t *Tensor[T, B]) Int64() *Tensor[int64, B] {
	return New[int64, B](t.backend.Cast(t.raw, Int64), t.backend)
}
