package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Leaf tests construction of a leaf node.
func TestValue_Leaf(t *testing.T) {
	v := autodiff.NewValue(3.5)

	assert.Equal(t, 3.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Op())
	assert.Empty(t, v.Prev())
}

// TestValue_String tests the debug rendering.
func TestValue_String(t *testing.T) {
	v := autodiff.NewValue(2)
	y := v.Mul(autodiff.NewValue(-1.5))
	y.Backward()

	assert.Equal(t, "Value(data=2, grad=-1.5)", v.String())
	assert.Equal(t, "Value(data=-3, grad=1)", y.String())
}

// TestOps_Forward tests forward values and operator tags.
func TestOps_Forward(t *testing.T) {
	a := autodiff.NewValue(3)
	b := autodiff.NewValue(-2)

	tests := []struct {
		name string
		out  *autodiff.Value
		want float64
		op   string
	}{
		{"Add", a.Add(b), 1, "+"},
		{"Mul", a.Mul(b), -6, "*"},
		{"Pow", a.Pow(3), 27, "**3"},
		{"PowNegative", b.Pow(-2), 0.25, "**-2"},
		{"ReLUPositive", a.ReLU(), 3, "ReLU"},
		{"ReLUNegative", b.ReLU(), 0, "ReLU"},
		{"Neg", a.Neg(), -3, "*"},
		{"Sub", a.Sub(b), 5, "+"},
		{"Div", a.Div(b), -1.5, "*"},
		{"AddScalar", a.AddScalar(1), 4, "+"},
		{"SubScalar", a.SubScalar(1), 2, "+"},
		{"MulScalar", a.MulScalar(2), 6, "*"},
		{"DivScalar", a.DivScalar(2), 1.5, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.out.Data(), 1e-12)
			assert.Equal(t, tt.op, tt.out.Op())
			assert.False(t, tt.out.IsLeaf())
		})
	}

	// Operators never touch their operands.
	assert.Equal(t, 3.0, a.Data())
	assert.Equal(t, -2.0, b.Data())
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, b.Grad())
}

// TestOps_PrevDeduplicated tests that a repeated operand is recorded once.
func TestOps_PrevDeduplicated(t *testing.T) {
	a := autodiff.NewValue(3)
	sq := a.Mul(a)

	require.Len(t, sq.Prev(), 1)
	assert.Same(t, a, sq.Prev()[0])

	sq.Backward()
	assert.Equal(t, 6.0, a.Grad(), "both operand slots must contribute")
}

// TestSumRule tests that addition passes the gradient through exactly.
func TestSumRule(t *testing.T) {
	for _, pair := range [][2]float64{{0, 0}, {1e9, -3}, {-7.25, 0.125}, {math.Pi, math.E}} {
		a := autodiff.NewValue(pair[0])
		b := autodiff.NewValue(pair[1])
		a.Add(b).Backward()

		assert.Equal(t, 1.0, a.Grad())
		assert.Equal(t, 1.0, b.Grad())
	}
}

// TestDiamondAccumulation tests that a node used on several paths receives
// the sum of all contributions.
func TestDiamondAccumulation(t *testing.T) {
	a := autodiff.NewValue(3)

	// y = a*a + 2a, dy/da = 2a + 2 = 8
	y := a.Mul(a).Add(a.MulScalar(2))
	y.Backward()

	assert.Equal(t, 8.0, a.Grad())

	// Shared intermediate: h = a + 1; y = h*h + h, dy/da = 2h + 1 = 9
	a2 := autodiff.NewValue(3)
	h := a2.AddScalar(1)
	y2 := h.Mul(h).Add(h)
	y2.Backward()

	assert.Equal(t, 9.0, h.Grad())
	assert.Equal(t, 9.0, a2.Grad())
}

// TestReLU_Subgradient tests the gradient on both sides of and at the kink.
func TestReLU_Subgradient(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"Negative", -2, 0},
		{"Zero", 0, 0},
		{"Positive", 2, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := autodiff.NewValue(tt.x)
			y := x.ReLU().MulScalar(3.5)
			y.Backward()
			assert.Equal(t, tt.want, x.Grad())
		})
	}
}

// TestPow_NoDomainGuard tests that undefined results propagate as non-finite values.
func TestPow_NoDomainGuard(t *testing.T) {
	x := autodiff.NewValue(0)
	y := x.Pow(-1)

	assert.True(t, math.IsInf(y.Data(), 1))

	tape := autodiff.Record(y)
	tape.Backward()

	assert.True(t, math.IsInf(x.Grad(), -1))
	assert.False(t, x.IsFinite())
	assert.Len(t, tape.NonFinite(), 2)
}

// TestBackward_AccumulatesAcrossCalls tests that gradients are not reset implicitly.
func TestBackward_AccumulatesAcrossCalls(t *testing.T) {
	x := autodiff.NewValue(2)
	y := x.Pow(2)

	y.Backward()
	assert.Equal(t, 4.0, x.Grad())

	y.Backward()
	assert.Equal(t, 8.0, x.Grad())

	x.ZeroGrad()
	y.ZeroGrad()
	y.Backward()
	assert.Equal(t, 4.0, x.Grad())
}

// TestBackward_SeedsRoot tests that the root receives gradient 1.
func TestBackward_SeedsRoot(t *testing.T) {
	x := autodiff.NewValue(5)
	x.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

// TestSum tests folding terms onto a start value.
func TestSum(t *testing.T) {
	b := autodiff.NewValue(1)
	xs := []*autodiff.Value{autodiff.NewValue(2), autodiff.NewValue(3)}

	s := autodiff.Sum(b, xs...)
	s.Backward()

	assert.Equal(t, 6.0, s.Data())
	assert.Equal(t, 1.0, b.Grad())
	assert.Same(t, b, autodiff.Sum(b))
}

// TestSetData tests that SetData only changes the leaf itself.
func TestSetData(t *testing.T) {
	w := autodiff.NewValue(1)
	y := w.MulScalar(2)

	w.SetData(5)

	assert.Equal(t, 5.0, w.Data())
	assert.Equal(t, 2.0, y.Data())
}

// TestCanonicalExpression reproduces the reference micrograd sanity check.
func TestCanonicalExpression(t *testing.T) {
	a := autodiff.NewValue(-4.0)
	b := autodiff.NewValue(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))
	c = c.Add(c.AddScalar(1))
	c = c.Add(autodiff.Scalar(1).Add(c).Add(a.Neg()))
	d = d.Add(d.MulScalar(2).Add(b.Add(a).ReLU()))
	d = d.Add(autodiff.Scalar(3).Mul(d).Add(b.Sub(a).ReLU()))
	e := c.Sub(d)
	f := e.Pow(2)
	g := f.DivScalar(2.0).Add(autodiff.Scalar(10.0).Div(f))
	g.Backward()

	assert.InDelta(t, 24.70408163265306, g.Data(), 1e-6)
	assert.InDelta(t, 138.83381924198252, a.Grad(), 1e-6)
	assert.InDelta(t, 645.5772594752186, b.Grad(), 1e-6)
}
