package ops_test

import (
	"testing"

	"github.com/score-ml/score/internal/chain/ops"
	"github.com/score-ml/score/internal/scalar"
)

// TestCustomOp_BackwardMulti tests the custom-rule op on a linear map
// y = (2x₀, 3x₁) with vjp (2Δ₀, 3Δ₁).
func TestCustomOp_BackwardMulti(t *testing.T) {
	in := scalar.Lift([]float64{4, 5})
	out := scalar.Lift([]float64{8, 15})
	op := ops.NewCustomOp(in, out, func(x, ct []float64) []float64 {
		return []float64{2 * ct[0], 3 * ct[1]}
	})

	grads := op.BackwardMulti([]float64{1, 1})
	if grads[0] != 2 || grads[1] != 3 {
		t.Errorf("BackwardMulti() = %v, want [2 3]", grads)
	}

	if len(op.Outputs()) != 2 || op.Output() != out[0] {
		t.Error("Outputs()/Output() should expose the forward outputs")
	}
	if len(op.Inputs()) != 2 {
		t.Errorf("Inputs() length = %d, want 2", len(op.Inputs()))
	}
}

// TestCustomOp_VJPReceivesUntrackedPoint tests that the vjp closure sees
// the plain input values.
func TestCustomOp_VJPReceivesUntrackedPoint(t *testing.T) {
	in := scalar.Lift([]float64{1.5, -2.5})
	out := scalar.Lift([]float64{0})
	op := ops.NewCustomOp(in, out, func(x, ct []float64) []float64 {
		if x[0] != 1.5 || x[1] != -2.5 {
			t.Errorf("vjp point = %v, want [1.5 -2.5]", x)
		}
		return make([]float64, len(x))
	})
	op.BackwardMulti([]float64{1})
}

// TestSumOp_Backward tests that the gradient broadcasts to every term.
func TestSumOp_Backward(t *testing.T) {
	in := scalar.Lift([]float64{1, 2, 3})
	op := ops.NewSumOp(in, scalar.New(6))

	grads := op.Backward(2)
	for i, g := range grads {
		if g != 2 {
			t.Errorf("grads[%d] = %f, want 2", i, g)
		}
	}
}
