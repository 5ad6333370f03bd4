// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every operator allocates a new Value that remembers its operands and a local
// backward rule. Calling Backward on a root walks the implicit graph in reverse
// topological order and accumulates gradients into every ancestor:
//
//	a := autodiff.NewValue(2)
//	b := autodiff.NewValue(-3)
//	y := a.Mul(b).Add(a.Pow(2))
//	y.Backward()
//	_ = a.Grad() // b + 2a = 1
//
// The engine is single-threaded. Independent graphs share no state.
package autodiff

import (
	"fmt"
	"math"
)

// Value is a node of the computation graph.
//
// Leaves (inputs and parameters) are created with NewValue. Every other Value
// is produced by an operator and keeps non-owning references to its operands.
type Value struct {
	data     float64
	grad     float64
	prev     []*Value // unique operands, in argument order
	op       string   // diagnostic tag only
	backward func()   // adds this node's grad into prev; nil for leaves
}

// NewValue creates a leaf Value with zero gradient.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// Scalar wraps a numeric constant as a leaf.
func Scalar(data float64) *Value {
	return NewValue(data)
}

// newResult allocates an operator output over the given operands.
// Repeated operands (a*a) are recorded once.
func newResult(data float64, op string, operands ...*Value) *Value {
	prev := make([]*Value, 0, len(operands))
	for _, o := range operands {
		if !containsValue(prev, o) {
			prev = append(prev, o)
		}
	}
	return &Value{data: data, prev: prev, op: op}
}

func containsValue(vs []*Value, v *Value) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Intended for external optimizers updating parameter leaves between cycles.
// Nodes already derived from v are not recomputed.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the accumulated gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the tag of the operator that produced v, or "" for leaves.
func (v *Value) Op() string {
	return v.op
}

// Prev returns a copy of the operands that produced v.
func (v *Value) Prev() []*Value {
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// IsLeaf reports whether v has no predecessors.
func (v *Value) IsLeaf() bool {
	return len(v.prev) == 0
}

// IsFinite reports whether both data and grad are finite.
func (v *Value) IsFinite() bool {
	return !math.IsNaN(v.data) && !math.IsInf(v.data, 0) &&
		!math.IsNaN(v.grad) && !math.IsInf(v.grad, 0)
}

// String renders v as Value(data=<d>, grad=<g>).
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v, grad=%v)", v.data, v.grad)
}
