package ops

import "github.com/score-ml/score/internal/scalar"

// DivOp represents a division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct {
	inputs []*scalar.Node // [a, b]
	output *scalar.Node   // a / b
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *scalar.Node) *DivOp {
	return &DivOp{
		inputs: []*scalar.Node{a, b},
		output: output,
	}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0].Value(), op.inputs[1].Value()
	return []float64{outputGrad / b, -outputGrad * a / (b * b)}
}

// Inputs returns the input nodes [a, b].
func (op *DivOp) Inputs() []*scalar.Node {
	return op.inputs
}

// Output returns the output node a / b.
func (op *DivOp) Output() *scalar.Node {
	return op.output
}
