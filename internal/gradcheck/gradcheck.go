// Package gradcheck compares autodiff gradients against central differences.
//
// A Func builds a fresh graph from its leaves on every call, so the perturbed
// evaluations are independent and may run concurrently.
package gradcheck

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
)

// Func builds a scalar expression over the given leaves.
// It must not retain or share nodes between calls.
type Func func(x []*autodiff.Value) *autodiff.Value

// DefaultEpsilon is the finite-difference step used when eps <= 0.
const DefaultEpsilon = 1e-6

// Mismatch describes one input whose gradients disagree.
type Mismatch struct {
	Index     int
	Analytic  float64
	Numerical float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("input %d: analytic=%g numerical=%g", m.Index, m.Analytic, m.Numerical)
}

// Report is the outcome of Compare.
type Report struct {
	Analytic   []float64
	Numerical  []float64
	MaxAbsDiff float64
	Mismatches []Mismatch
}

// OK reports whether every gradient was within tolerance.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Analytic evaluates f once at inputs and returns d f / d inputs via Backward.
func Analytic(f Func, inputs []float64) []float64 {
	leaves := leavesFrom(inputs)
	out := f(leaves)
	tape := autodiff.Record(out)
	tape.Backward()

	grads := make([]float64, len(leaves))
	for i, l := range leaves {
		grads[i] = l.Grad()
	}
	tape.Release()
	return grads
}

// Numerical estimates d f / d inputs with (f(x+eps) - f(x-eps)) / 2eps.
func Numerical(f Func, inputs []float64, eps float64, cfg parallel.Config) []float64 {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	eval := func(x []float64) float64 {
		return f(leavesFrom(x)).Data()
	}
	return parallel.Map(len(inputs), func(i int) float64 {
		plus := perturb(inputs, i, eps)
		minus := perturb(inputs, i, -eps)
		return (eval(plus) - eval(minus)) / (2 * eps)
	}, cfg)
}

// Compare runs Analytic and Numerical and flags inputs whose absolute
// difference exceeds tol.
func Compare(f Func, inputs []float64, eps, tol float64) Report {
	r := Report{
		Analytic:  Analytic(f, inputs),
		Numerical: Numerical(f, inputs, eps, parallel.DefaultConfig()),
	}
	for i := range inputs {
		diff := math.Abs(r.Analytic[i] - r.Numerical[i])
		if math.IsNaN(diff) {
			diff = math.Inf(1)
		}
		r.MaxAbsDiff = math.Max(r.MaxAbsDiff, diff)
		if diff > tol {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Index:     i,
				Analytic:  r.Analytic[i],
				Numerical: r.Numerical[i],
			})
		}
	}
	return r
}

func leavesFrom(x []float64) []*autodiff.Value {
	leaves := make([]*autodiff.Value, len(x))
	for i, v := range x {
		leaves[i] = autodiff.NewValue(v)
	}
	return leaves
}

func perturb(x []float64, i int, delta float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	out[i] += delta
	return out
}
