// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network components.
type Module = nn.Module

// ZeroGrad sets the gradient of every parameter of m to 0.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of trainable leaves of m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}

// Values wraps plain numbers as input leaves.
func Values(xs ...float64) []*autodiff.Value {
	return nn.Values(xs...)
}

// NewRand returns a seeded generator for reproducible initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Layers

// Neuron computes activation(Σ wᵢ·xᵢ + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights drawn from U[-1, 1] and a zero bias.
func NewNeuron(nin int, nonlinear bool, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, nonlinear, rng)
}

// Layer applies several neurons to the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons reading nin inputs.
func NewLayer(nin, nout int, nonlinear bool, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, nonlinear, rng)
}

// MLP chains layers; all but the last use ReLU.
type MLP = nn.MLP

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.NewRand(42))
//	y := model.Call(nn.Values(2, 3, -1))
func NewMLP(nin int, widths []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, widths, rng)
}

// Loss functions

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.MSELoss(predictions, targets)
}

// HingeLoss computes mean(relu(1 - yᵢ·ŷᵢ)).
func HingeLoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.HingeLoss(predictions, targets)
}

// L2Penalty computes alpha * Σ p².
func L2Penalty(params []*autodiff.Value, alpha float64) *autodiff.Value {
	return nn.L2Penalty(params, alpha)
}
