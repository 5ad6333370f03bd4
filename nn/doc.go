// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multi-layer perceptrons over
// autodiff scalars.
//
// # Overview
//
// This package contains:
//   - Layers: Neuron, Layer, MLP
//   - Loss functions: MSELoss, HingeLoss, L2Penalty
//   - Utilities: Module interface, ZeroGrad, NumParameters, Values
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.NewRand(42))
//
//	    pred := model.Call(nn.Values(2, 3, -1))
//	    loss := nn.MSELoss([]*autodiff.Value{pred}, nn.Values(1))
//
//	    nn.ZeroGrad(model)
//	    loss.Backward()
//	    for _, p := range model.Parameters() {
//	        p.SetData(p.Data() - 0.05*p.Grad())
//	    }
//	}
//
// # Training loops
//
// Gradients accumulate. Call ZeroGrad before every backward pass; forgetting
// it silently mixes gradients from previous steps.
//
// Each Forward call builds a new graph over the same parameter leaves, so
// results of separate calls never alias each other.
//
// # Initialization
//
// Constructors take an explicit *rand.Rand. Weights are drawn from U[-1, 1]
// and biases start at 0. Equal seeds produce equal networks.
package nn
