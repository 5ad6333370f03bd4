package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes activation(Σ wᵢ·xᵢ + b).
//
// Weights are drawn from U[-1, 1]; the bias starts at 0. The activation is
// ReLU when the neuron is nonlinear and the identity otherwise.
//
// Example:
//
//	n := nn.NewNeuron(3, true, nn.NewRand(1))
//	y := n.Call(nn.Values(1, 2, 3))
type Neuron struct {
	weights   []*autodiff.Value
	bias      *autodiff.Value
	nonlinear bool
}

// NewNeuron creates a neuron reading nin inputs.
//
// Parameters:
//   - nin: Input width
//   - nonlinear: Apply ReLU to the weighted sum
//   - rng: Source for weight initialization
//
// Returns a new Neuron.
func NewNeuron(nin int, nonlinear bool, rng *rand.Rand) *Neuron {
	if nin < 0 {
		panic(fmt.Sprintf("NewNeuron: negative input width %d", nin))
	}
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = Uniform(rng, -1, 1)
	}
	return &Neuron{
		weights:   weights,
		bias:      Zero(),
		nonlinear: nonlinear,
	}
}

// Call evaluates the neuron on x and returns its single output.
//
// x must have exactly as many elements as the neuron has weights.
func (n *Neuron) Call(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Call: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	products := make([]*autodiff.Value, len(x))
	for i, w := range n.weights {
		products[i] = w.Mul(x[i])
	}
	act := autodiff.Sum(n.bias, products...)

	if n.nonlinear {
		return act.ReLU()
	}
	return act
}

// Forward implements Module by returning Call(x) as a one-element vector.
func (n *Neuron) Forward(x []*autodiff.Value) []*autodiff.Value {
	return []*autodiff.Value{n.Call(x)}
}

// Parameters returns the weights in declaration order followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Nonlinear reports whether the output passes through ReLU.
func (n *Neuron) Nonlinear() bool {
	return n.nonlinear
}

// InFeatures returns the input width.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}

func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlinear {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.weights))
}

// Verbose renders every weight and the bias as Neuron(Value(...), ..., Value(...)).
func (n *Neuron) Verbose() string {
	parts := make([]string, 0, len(n.weights)+1)
	for _, w := range n.weights {
		parts = append(parts, w.String())
	}
	parts = append(parts, n.bias.String())
	return "Neuron(" + strings.Join(parts, ", ") + ")"
}
