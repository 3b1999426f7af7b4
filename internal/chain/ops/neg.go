package ops

import "github.com/score-ml/score/internal/scalar"

// NegOp represents a negation operation: output = -x.
//
// Backward pass:
//
//	d(-x)/dx = -1, so grad_x = -outputGrad
type NegOp struct {
	input  *scalar.Node
	output *scalar.Node
}

// NewNegOp creates a new NegOp.
func NewNegOp(input, output *scalar.Node) *NegOp {
	return &NegOp{input: input, output: output}
}

// Backward computes the gradient with respect to input.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}

// Inputs returns the input nodes.
func (op *NegOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *NegOp) Output() *scalar.Node {
	return op.output
}
