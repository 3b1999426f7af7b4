package ops

import "github.com/score-ml/score/internal/scalar"

// MulOp represents a multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs []*scalar.Node // [a, b]
	output *scalar.Node   // a * b
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *scalar.Node) *MulOp {
	return &MulOp{
		inputs: []*scalar.Node{a, b},
		output: output,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{outputGrad * b.Value(), outputGrad * a.Value()}
}

// Inputs returns the input nodes [a, b].
func (op *MulOp) Inputs() []*scalar.Node {
	return op.inputs
}

// Output returns the output node a * b.
func (op *MulOp) Output() *scalar.Node {
	return op.output
}
