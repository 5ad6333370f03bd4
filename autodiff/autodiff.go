// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Each operator returns a new Value that remembers its operands. Backward on
// a root accumulates gradients into every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(-4)
//	    b := autodiff.NewValue(2)
//	    y := a.Mul(b).Add(b.Pow(3)).ReLU()
//	    y.Backward()
//	    fmt.Println(a, b) // gradients dy/da, dy/db
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a scalar node of the computation graph.
type Value = autodiff.Value

// NewValue creates a leaf with the given data and zero gradient.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Scalar wraps a constant as a leaf.
//
// Example:
//
//	inv := autodiff.Scalar(10).Div(f) // 10 / f
func Scalar(data float64) *Value {
	return autodiff.Scalar(data)
}

// Sum folds terms onto start with Add.
func Sum(start *Value, terms ...*Value) *Value {
	return autodiff.Sum(start, terms...)
}

// Tape is the recorded topological order of one backward pass.
type Tape = autodiff.Tape

// Record captures every node reachable from root in topological order.
//
// Example:
//
//	tape := autodiff.Record(loss)
//	tape.Backward()
//	if bad := tape.NonFinite(); len(bad) > 0 {
//	    // handle NaN/Inf
//	}
//	tape.Release()
func Record(root *Value) *Tape {
	return autodiff.Record(root)
}

// TopologicalSort returns the nodes reachable from root, each after its predecessors.
func TopologicalSort(root *Value) []*Value {
	return autodiff.TopologicalSort(root)
}
