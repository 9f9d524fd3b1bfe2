// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers for hand-parameterized networks.
//
// # Overview
//
// This package contains:
//   - Layers: Affine (y = x·W + b with literal weights)
//   - Activations: ReLU
//   - Loss functions: MSELoss
//   - Utilities: Sequential, Module interface, Parameter, NewPerceptron
//
// # Basic Usage
//
//	backend := cpu.New()
//
//	w1, _ := tensor.Matrix([][]float32{{1, -1}, {-1, 1}}, backend)
//	b1, _ := tensor.Vector([]float32{0, 0}, backend)
//	w2, _ := tensor.Vector([]float32{1, -1}, backend)
//	b2, _ := tensor.Vector([]float32{0}, backend)
//
//	model, err := nn.NewPerceptron(w1, b1, w2, b2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Forward(x))
package nn
