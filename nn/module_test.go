// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/classwork/backend/cpu"
	"github.com/born-ml/classwork/nn"
	"github.com/born-ml/classwork/tensor"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.Matrix([][]float32{{1, 0}, {0, 1}}, backend)
	require.NoError(t, err)
	affine, err := nn.NewAffine(w, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		module nn.Module[float32, *cpu.Backend]
	}{
		{name: "Affine", module: affine},
		{name: "ReLU", module: nn.NewReLU[float32, *cpu.Backend]()},
		{
			name:   "Sequential",
			module: nn.NewSequential[float32, *cpu.Backend](affine, nn.NewReLU[float32, *cpu.Backend]()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := tensor.Matrix([][]float32{{1, -2}}, backend)
			require.NoError(t, err)

			out := tt.module.Forward(input)
			assert.True(t, out.Shape().Equal(tensor.Shape{1, 2}))
			assert.NotNil(t, tt.module.Parameters())
		})
	}
}

func TestPerceptronAndLoss(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.Matrix([][]int64{{1, 2}, {4, 5}, {2, 1}}, backend)
	require.NoError(t, err)
	y, err := tensor.Vector([]int64{3, 9, 3}, backend)
	require.NoError(t, err)
	w1, err := tensor.Matrix([][]int64{{1, -1, 0}, {1, -1, 0}}, backend)
	require.NoError(t, err)
	b1, err := tensor.Vector([]int64{0, 0, 0}, backend)
	require.NoError(t, err)
	w2, err := tensor.Vector([]int64{1, -1, 0}, backend)
	require.NoError(t, err)
	b2, err := tensor.Vector([]int64{0}, backend)
	require.NoError(t, err)

	model, err := nn.NewPerceptron(w1, b1, w2, b2)
	require.NoError(t, err)

	out := model.Forward(x)
	assert.Equal(t, []int64{3, 9, 3}, out.Data())

	loss := nn.NewMSELoss[float32](backend).Forward(out.Float32(), y.Float32())
	assert.Equal(t, float32(0), loss.Item())
}
