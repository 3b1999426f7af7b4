package ops

import "github.com/score-ml/score/internal/scalar"

// SubOp represents a subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct {
	inputs []*scalar.Node // [a, b]
	output *scalar.Node   // a - b
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *scalar.Node) *SubOp {
	return &SubOp{
		inputs: []*scalar.Node{a, b},
		output: output,
	}
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}

// Inputs returns the input nodes [a, b].
func (op *SubOp) Inputs() []*scalar.Node {
	return op.inputs
}

// Output returns the output node a - b.
func (op *SubOp) Output() *scalar.Node {
	return op.output
}
