package tensor_test

import (
	"testing"

	"github.com/born-ml/classwork/internal/backend/cpu"
	"github.com/born-ml/classwork/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.True(t, x.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, float32(6), x.At(1, 2))

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Error(t, err)
}

func TestFromSlice_CopiesInput(t *testing.T) {
	data := []int64{1, 2}
	x, err := tensor.Vector(data, cpu.New())
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, []int64{1, 2}, x.Data())
}

func TestMatrix(t *testing.T) {
	backend := cpu.New()

	m, err := tensor.Matrix([][]int64{{1, 2}, {4, 5}, {2, 1}}, backend)
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, int64(5), m.At(1, 1))

	_, err = tensor.Matrix([][]int64{{1, 2}, {3}}, backend)
	assert.Error(t, err)

	_, err = tensor.Matrix([][]int64{}, backend)
	assert.Error(t, err)
}

func TestItem(t *testing.T) {
	backend := cpu.New()

	s := tensor.Scalar[float32](2.5, backend)
	assert.Empty(t, s.Shape())
	assert.Equal(t, float32(2.5), s.Item())

	one, err := tensor.Vector([]float32{7}, backend)
	require.NoError(t, err)
	assert.Equal(t, float32(7), one.Item())

	two, err := tensor.Vector([]float32{1, 2}, backend)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = two.Item() })
}

func TestAt_OutOfBounds(t *testing.T) {
	x := tensor.Zeros[float32](tensor.Shape{2, 2}, cpu.New())
	assert.Panics(t, func() { _ = x.At(2, 0) })
	assert.Panics(t, func() { _ = x.At(0) })
}

func TestClone_IsDeep(t *testing.T) {
	x, err := tensor.Vector([]float32{1, 2}, cpu.New())
	require.NoError(t, err)

	c := x.Clone()
	c.Data()[0] = 10
	assert.Equal(t, float32(1), x.At(0))
}

func TestReshape(t *testing.T) {
	x, err := tensor.Vector([]int64{1, 2, 3, 4}, cpu.New())
	require.NoError(t, err)

	m := x.Reshape(2, 2)
	assert.Equal(t, int64(3), m.At(1, 0))
	assert.Panics(t, func() { _ = x.Reshape(3) })
}

func TestString(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		make func() (interface{ String() string }, error)
		want string
	}{
		{
			name: "float scalar-like",
			make: func() (interface{ String() string }, error) {
				return tensor.Vector([]float32{0}, backend)
			},
			want: "tensor([0.])",
		},
		{
			name: "0-D float",
			make: func() (interface{ String() string }, error) {
				return tensor.Scalar[float32](0, backend), nil
			},
			want: "tensor(0.)",
		},
		{
			name: "fractional float",
			make: func() (interface{ String() string }, error) {
				return tensor.Vector([]float32{0.5, -1.25}, backend)
			},
			want: "tensor([ 0.5000, -1.2500])",
		},
		{
			name: "int matrix",
			make: func() (interface{ String() string }, error) {
				return tensor.Matrix([][]int64{{1, 2}, {4, 5}, {2, 1}}, backend)
			},
			want: "tensor([[1, 2],\n        [4, 5],\n        [2, 1]])",
		},
		{
			name: "aligned columns",
			make: func() (interface{ String() string }, error) {
				return tensor.Matrix([][]int64{{1, -1, 0}, {1, -1, 0}}, backend)
			},
			want: "tensor([[ 1, -1,  0],\n        [ 1, -1,  0]])",
		},
		{
			name: "non-default dtype",
			make: func() (interface{ String() string }, error) {
				return tensor.Vector([]float64{1, 2}, backend)
			},
			want: "tensor([1., 2.], dtype=float64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := tt.make()
			require.NoError(t, err)
			assert.Equal(t, tt.want, x.String())
		})
	}
}

func TestTranspose(t *testing.T) {
	backend := cpu.New()

	v, err := tensor.Vector([]int64{1, -1, 0}, backend)
	require.NoError(t, err)
	vt := v.T()
	assert.True(t, vt.Shape().Equal(tensor.Shape{3}), "1-D transpose keeps the shape")
	assert.Equal(t, []int64{1, -1, 0}, vt.Data())

	m, err := tensor.Matrix([][]int64{{-4, 6, 5}, {2, -4, 7}}, backend)
	require.NoError(t, err)
	mt := m.T()
	assert.True(t, mt.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, int64(7), mt.At(2, 1))
	assert.Equal(t, mt.Data(), m.Transpose(1, 0).Data())
}
