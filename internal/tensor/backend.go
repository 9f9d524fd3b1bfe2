package tensor

// Backend defines the interface that compute backends implement.
// Kernels panic on shape or dtype mismatches; callers are expected to pass
// compatible operands.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MatMul is a matrix product with 1-D promotion:
	// (K)@(K,N) -> (N), (M,K)@(K) -> (M), (K)@(K) -> ().
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose permutes dimensions; with no axes it reverses them.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// ReLU applies max(0, x) element-wise.
	ReLU(x *RawTensor) *RawTensor

	// Reductions over all elements, returning a 0-D tensor.
	Sum(x *RawTensor) *RawTensor
	Mean(x *RawTensor) *RawTensor

	// Cast converts to a different data type.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	Name() string
	Device() Device
}
