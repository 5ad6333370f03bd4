package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer applies nout neurons to the same input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each reading nin inputs.
func NewLayer(nin, nout int, nonlinear bool, rng *rand.Rand) *Layer {
	if nout < 0 {
		panic(fmt.Sprintf("NewLayer: negative output width %d", nout))
	}
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlinear, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward returns the outputs of every neuron, in declaration order.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Call(x)
	}
	return out
}

// Single evaluates a width-1 layer and returns its only output.
func (l *Layer) Single(x []*autodiff.Value) *autodiff.Value {
	if len(l.neurons) != 1 {
		panic(fmt.Sprintf("Layer.Single: layer has %d outputs, want 1", len(l.neurons)))
	}
	return l.neurons[0].Call(x)
}

// Parameters returns the parameters of each neuron in declaration order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the contained neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}

// Verbose renders the layer with every parameter value.
func (l *Layer) Verbose() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.Verbose()
	}
	return "Layer(" + strings.Join(parts, ", ") + ")"
}
