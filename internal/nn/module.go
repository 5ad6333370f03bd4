// Package nn builds small feed-forward networks out of autodiff scalars.
//
// This package provides:
//   - Module: capability contract (Forward + Parameters)
//   - Neuron: weighted sum plus bias with optional ReLU
//   - Layer: neurons sharing one input
//   - MLP: layers chained input to output, last layer linear
//   - Losses: MSE, hinge, L2 penalty
//
// Weight initialization takes an explicit *rand.Rand so runs are reproducible.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the interface every composable component satisfies.
//
// Modules can be nested freely; ZeroGrad and parameter counting work on any of them:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//	out := model.Forward(x)
//	nn.ZeroGrad(model)
type Module interface {
	// Forward evaluates the module on an ordered input vector and returns the
	// output vector. Each call builds a fresh subgraph over the same parameters.
	Forward(x []*autodiff.Value) []*autodiff.Value

	// Parameters returns every trainable leaf in a fixed order.
	Parameters() []*autodiff.Value
}

// ZeroGrad sets the gradient of every parameter of m to 0.
//
// Call it before each backward pass of a training loop. Backward never does this itself.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns len(m.Parameters()).
func NumParameters(m Module) int {
	return len(m.Parameters())
}

// Values wraps plain numbers as leaf inputs.
func Values(xs ...float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}
