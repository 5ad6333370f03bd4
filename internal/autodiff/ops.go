package autodiff

import (
	"math"
	"strconv"
)

// Add returns v + other.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so both operands receive out.grad.
func (v *Value) Add(other *Value) *Value {
	out := newResult(v.data+other.data, "+", v, other)
	out.backward = func() {
		v.grad += out.grad
		other.grad += out.grad
	}
	return out
}

// Mul returns v * other.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(other *Value) *Value {
	out := newResult(v.data*other.data, "*", v, other)
	out.backward = func() {
		v.grad += other.data * out.grad
		other.grad += v.data * out.grad
	}
	return out
}

// Pow returns v^n for an integer exponent.
//
// Backward: d(x^n)/dx = n * x^(n-1). There is no domain guard: a negative
// exponent at x = 0 yields Inf/NaN in data and grad.
func (v *Value) Pow(n int) *Value {
	exp := float64(n)
	out := newResult(math.Pow(v.data, exp), "**"+strconv.Itoa(n), v)
	out.backward = func() {
		v.grad += exp * math.Pow(v.data, exp-1) * out.grad
	}
	return out
}

// ReLU returns max(0, v).
//
// Backward: the gradient passes through only where the output is positive.
// The subgradient at 0 is 0.
func (v *Value) ReLU() *Value {
	out := newResult(math.Max(0, v.data), "ReLU", v)
	out.backward = func() {
		if out.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}

// Neg returns -v, computed as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(Scalar(-1))
}

// Sub returns v - other, computed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, computed as v * other^-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + x.
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(Scalar(x))
}

// SubScalar returns v - x.
func (v *Value) SubScalar(x float64) *Value {
	return v.Sub(Scalar(x))
}

// MulScalar returns v * x.
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(Scalar(x))
}

// DivScalar returns v / x.
func (v *Value) DivScalar(x float64) *Value {
	return v.Div(Scalar(x))
}

// Sum folds terms with Add, starting from start.
// Returns start when terms is empty.
func Sum(start *Value, terms ...*Value) *Value {
	acc := start
	for _, t := range terms {
		acc = acc.Add(t)
	}
	return acc
}
