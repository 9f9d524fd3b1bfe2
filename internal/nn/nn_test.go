package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/classwork/internal/backend/cpu"
	"github.com/born-ml/classwork/internal/nn"
	"github.com/born-ml/classwork/internal/tensor"
)

type Backend = *cpu.CPUBackend

func matrix[T tensor.DType](t *testing.T, rows [][]T, b Backend) *tensor.Tensor[T, Backend] {
	t.Helper()
	m, err := tensor.Matrix(rows, b)
	require.NoError(t, err)
	return m
}

func vector[T tensor.DType](t *testing.T, values []T, b Backend) *tensor.Tensor[T, Backend] {
	t.Helper()
	v, err := tensor.Vector(values, b)
	require.NoError(t, err)
	return v
}

func TestParameter(t *testing.T) {
	backend := cpu.New()
	data := vector(t, []float32{1, 2, 3}, backend)

	param := nn.NewParameter("test_param", data)
	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
}

func TestAffine_Forward(t *testing.T) {
	backend := cpu.New()
	w := matrix(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, backend)
	b := vector(t, []float32{0.5, -0.5, 1}, backend)

	layer, err := nn.NewAffine(w, b)
	require.NoError(t, err)
	assert.Equal(t, 2, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())

	x := matrix(t, [][]float32{{1, 0}, {0, 1}, {1, 1}}, backend)
	out := layer.Forward(x)

	assert.True(t, out.Shape().Equal(tensor.Shape{3, 3}))
	assert.Equal(t, []float32{1.5, 1.5, 4, 4.5, 4.5, 7, 5.5, 6.5, 10}, out.Data())
}

func TestAffine_VectorWeight(t *testing.T) {
	backend := cpu.New()
	layer, err := nn.NewAffine(vector(t, []int64{1, -1, 0}, backend), vector(t, []int64{0}, backend))
	require.NoError(t, err)
	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 1, layer.OutFeatures())

	h := matrix(t, [][]int64{{3, 0, 0}, {9, 0, 0}, {3, 0, 0}}, backend)
	out := layer.Forward(h)
	assert.True(t, out.Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []int64{3, 9, 3}, out.Data())
}

func TestAffine_NoBias(t *testing.T) {
	backend := cpu.New()
	layer, err := nn.NewAffine(matrix(t, [][]float64{{2}}, backend), nil)
	require.NoError(t, err)
	assert.Nil(t, layer.Bias())
	assert.Len(t, layer.Parameters(), 1)

	out := layer.Forward(vector(t, []float64{3}, backend))
	assert.Equal(t, []float64{6}, out.Data())
}

func TestNewAffine_Errors(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name   string
		weight *tensor.Tensor[float32, Backend]
		bias   *tensor.Tensor[float32, Backend]
	}{
		{name: "nil weight"},
		{
			name:   "3-D weight",
			weight: tensor.Zeros[float32](tensor.Shape{2, 2, 2}, backend),
		},
		{
			name:   "2-D bias",
			weight: tensor.Zeros[float32](tensor.Shape{2, 3}, backend),
			bias:   tensor.Zeros[float32](tensor.Shape{1, 3}, backend),
		},
		{
			name:   "bias width mismatch",
			weight: tensor.Zeros[float32](tensor.Shape{2, 3}, backend),
			bias:   tensor.Zeros[float32](tensor.Shape{2}, backend),
		},
		{
			name:   "vector weight with wide bias",
			weight: tensor.Zeros[float32](tensor.Shape{3}, backend),
			bias:   tensor.Zeros[float32](tensor.Shape{3}, backend),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nn.NewAffine(tt.weight, tt.bias)
			assert.ErrorIs(t, err, nn.ErrInvalidParameter)
		})
	}
}

func TestAffine_ForwardPanicsOnFeatureMismatch(t *testing.T) {
	backend := cpu.New()
	layer, err := nn.NewAffine(tensor.Zeros[float32](tensor.Shape{2, 3}, backend), nil)
	require.NoError(t, err)

	assert.Panics(t, func() {
		layer.Forward(tensor.Zeros[float32](tensor.Shape{4, 3}, backend))
	})
}

func TestReLU(t *testing.T) {
	backend := cpu.New()
	relu := nn.NewReLU[float32, Backend]()

	out := relu.Forward(vector(t, []float32{-2, 0, 3}, backend))
	assert.Equal(t, []float32{0, 0, 3}, out.Data())
	assert.NotNil(t, relu.Parameters())
	assert.Empty(t, relu.Parameters())
}

func TestSequential(t *testing.T) {
	backend := cpu.New()
	first, err := nn.NewAffine(matrix(t, [][]float32{{1, -1}}, backend), nil)
	require.NoError(t, err)

	model := nn.NewSequential[float32, Backend](first)
	model.Add(nn.NewReLU[float32, Backend]())
	assert.Equal(t, 2, model.Len())
	assert.Same(t, first, model.Module(0))

	x := matrix(t, [][]float32{{2}, {-3}}, backend)
	out := model.Forward(x)
	assert.Equal(t, []float32{2, 0, 0, 3}, out.Data())

	trace := model.Trace(x)
	require.Len(t, trace, 2)
	assert.Equal(t, []float32{2, -2, -3, 3}, trace[0].Data())
	assert.Equal(t, out.Data(), trace[1].Data())
	assert.Len(t, model.Parameters(), 1)
}

func TestPerceptron(t *testing.T) {
	backend := cpu.New()
	model, err := nn.NewPerceptron(
		matrix(t, [][]float32{{1, -1}, {-1, 1}}, backend),
		vector(t, []float32{0, 0}, backend),
		vector(t, []float32{1, -1}, backend),
		vector(t, []float32{0}, backend),
	)
	require.NoError(t, err)
	assert.Len(t, model.Parameters(), 4)

	trace := model.Trace(vector(t, []float32{5, 5}, backend))
	require.Len(t, trace, 3)
	assert.Equal(t, []float32{0, 0}, trace[0].Data())
	assert.Equal(t, []float32{0, 0}, trace[1].Data())
	assert.True(t, trace[2].Shape().Equal(tensor.Shape{1}))
	assert.Equal(t, float32(0), trace[2].Item())
}

func TestPerceptron_Errors(t *testing.T) {
	backend := cpu.New()

	_, err := nn.NewPerceptron(
		matrix(t, [][]float32{{1, -1, 0}, {1, -1, 0}}, backend),
		vector(t, []float32{0, 0, 0}, backend),
		vector(t, []float32{1, -1}, backend),
		vector(t, []float32{0}, backend),
	)
	assert.ErrorIs(t, err, nn.ErrInvalidParameter, "hidden width mismatch")

	_, err = nn.NewPerceptron(
		matrix(t, [][]float32{{1, -1}, {-1, 1}}, backend),
		vector(t, []float32{0, 0, 0}, backend),
		vector(t, []float32{1, -1}, backend),
		vector(t, []float32{0}, backend),
	)
	assert.ErrorIs(t, err, nn.ErrInvalidParameter, "bad hidden bias")
	assert.ErrorContains(t, err, "hidden layer")
}

func TestMSELoss(t *testing.T) {
	backend := cpu.New()
	mse := nn.NewMSELoss[float32](backend)

	pred := vector(t, []float32{1, 2, 3}, backend)
	target := vector(t, []float32{1, 4, 0}, backend)

	loss := mse.Forward(pred, target)
	assert.Empty(t, loss.Shape())
	assert.InDelta(t, float32(13.0/3.0), loss.Item(), 1e-6)

	zero := mse.Forward(target, target)
	assert.Equal(t, float32(0), zero.Item())
}

func TestMSELoss_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	mse := nn.NewMSELoss[float64](backend)

	assert.Panics(t, func() {
		mse.Forward(
			vector(t, []float64{1, 2}, backend),
			vector(t, []float64{1, 2, 3}, backend),
		)
	})
}
