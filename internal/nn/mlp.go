package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: a chain of layers where each layer's
// output becomes the next layer's input.
//
// Every layer except the last applies ReLU; the last is linear, suited to
// regression targets or logits. The topology is fixed at construction.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.NewRand(42))
//	y := model.Call(nn.Values(2, 3, -1))
//
// This is equivalent to:
//
//	h1 := layer1.Forward(x) // 3 -> 4, ReLU
//	h2 := layer2.Forward(h1) // 4 -> 4, ReLU
//	y := layer3.Forward(h2) // 4 -> 1, linear
type MLP struct {
	inFeatures int
	layers     []*Layer
}

// NewMLP creates a network reading nin inputs with one layer per entry of widths.
func NewMLP(nin int, widths []int, rng *rand.Rand) *MLP {
	layers := make([]*Layer, len(widths))
	in := nin
	for i, w := range widths {
		layers[i] = NewLayer(in, w, i != len(widths)-1, rng)
		in = w
	}
	return &MLP{inFeatures: nin, layers: layers}
}

// Forward threads x through every layer and returns the last layer's output.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := x
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Call evaluates a network whose last layer has width 1.
func (m *MLP) Call(x []*autodiff.Value) *autodiff.Value {
	out := m.Forward(x)
	if len(out) != 1 {
		panic(fmt.Sprintf("MLP.Call: network has %d outputs, want 1", len(out)))
	}
	return out[0]
}

// Parameters returns the parameters of each layer in declaration order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the layers in forward order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InFeatures returns the input width.
func (m *MLP) InFeatures() int {
	return m.inFeatures
}

// OutFeatures returns the width of the final layer, or the input width for
// a network with no layers.
func (m *MLP) OutFeatures() int {
	if len(m.layers) == 0 {
		return m.inFeatures
	}
	return m.layers[len(m.layers)-1].OutFeatures()
}

func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}

// Verbose renders the network with every parameter value.
func (m *MLP) Verbose() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.Verbose()
	}
	return "MLP(" + strings.Join(parts, ", ") + ")"
}
