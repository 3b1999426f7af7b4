package chain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/scalar"
)

// TestGraph_ForwardValues tests the eager forward values of the graph.
func TestGraph_ForwardValues(t *testing.T) {
	g := chain.New()
	a := scalar.New(6)
	b := scalar.New(2)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"Add", g.Add(a, b).Value(), 8},
		{"Sub", g.Sub(a, b).Value(), 4},
		{"Mul", g.Mul(a, b).Value(), 12},
		{"Div", g.Div(a, b).Value(), 3},
		{"Neg", g.Neg(a).Value(), -6},
		{"Exp", g.Exp(b).Value(), math.Exp(2)},
		{"Log", g.Log(a).Value(), math.Log(6)},
		{"Sqrt", g.Sqrt(a).Value(), math.Sqrt(6)},
		{"Tanh", g.Tanh(b).Value(), math.Tanh(2)},
		{"Pow", g.Pow(a, 3).Value(), 216},
		{"Sum", g.Sum([]*scalar.Node{a, b, a}).Value(), 14},
		{"Const", g.Const(1.5).Value(), 1.5},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

// TestBackward_Composite tests y = (x + 2) * 3, dy/dx = 3.
func TestBackward_Composite(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(5)
	y := g.Mul(g.Add(x, g.Const(2)), g.Const(3))

	if y.Value() != 21 {
		t.Errorf("y = %f, want 21", y.Value())
	}
	grads := g.Tape().Backward(y, 1)
	if grads[x] != 3 {
		t.Errorf("dy/dx = %f, want 3", grads[x])
	}
}

// TestBackward_Polynomial tests f(x) = x³ - 2x² + x at x = 2,
// f'(x) = 3x² - 4x + 1 = 5.
func TestBackward_Polynomial(t *testing.T) {
	g := chain.New()
	g.Tape().StartRecording()

	x := scalar.New(2)
	y := g.Add(g.Sub(g.Pow(x, 3), g.Mul(g.Const(2), g.Mul(x, x))), x)

	grads := g.Tape().Backward(y, 1)
	if want := 5.0; math.Abs(grads[x]-want) > 1e-12 {
		t.Errorf("f'(2) = %f, want %f", grads[x], want)
	}
}

// TestTrace_Pullback tests the trace-and-pullback primitive on
// f(x) = x₀² + 3x₁.
func TestTrace_Pullback(t *testing.T) {
	f := func(ops chain.Ops, params []*scalar.Node) (*scalar.Node, error) {
		return ops.Add(ops.Mul(params[0], params[0]), ops.Mul(ops.Const(3), params[1])), nil
	}

	value, pb, err := chain.Trace(f, []float64{2, 5})
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if value != 19 {
		t.Errorf("value = %f, want 19", value)
	}

	grad := pb(1)
	if grad[0] != 4 || grad[1] != 3 {
		t.Errorf("pb(1) = %v, want [4 3]", grad)
	}

	// Seeding scales linearly and the tape can be replayed.
	grad2 := pb(2)
	if grad2[0] != 8 || grad2[1] != 6 {
		t.Errorf("pb(2) = %v, want [8 6]", grad2)
	}
}

// TestTrace_Error tests that a fault from the traced function propagates
// unchanged.
func TestTrace_Error(t *testing.T) {
	fault := errors.New("outside support")
	f := func(ops chain.Ops, params []*scalar.Node) (*scalar.Node, error) {
		return nil, fault
	}

	_, _, err := chain.Trace(f, []float64{1})
	if !errors.Is(err, fault) {
		t.Errorf("Trace() error = %v, want %v", err, fault)
	}
}
