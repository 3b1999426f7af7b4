package ops

import "github.com/score-ml/score/internal/scalar"

// ExpOp represents an exponential operation.
//
// Forward:
//
//	output = exp(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * exp(input) = ∂L/∂output * output
type ExpOp struct {
	input  *scalar.Node
	output *scalar.Node
}

// NewExpOp creates a new exp operation.
func NewExpOp(input, output *scalar.Node) *ExpOp {
	return &ExpOp{input: input, output: output}
}

// Backward computes the gradient with respect to input.
// The forward value is reused: d(exp(x))/dx = exp(x).
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.output.Value()}
}

// Inputs returns the input nodes.
func (op *ExpOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *ExpOp) Output() *scalar.Node {
	return op.output
}
