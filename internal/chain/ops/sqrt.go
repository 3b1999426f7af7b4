package ops

import "github.com/score-ml/score/internal/scalar"

// SqrtOp represents a square root operation.
//
// Forward:
//
//	output = sqrt(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output / (2 * sqrt(input)) = ∂L/∂output / (2 * output)
type SqrtOp struct {
	input  *scalar.Node
	output *scalar.Node
}

// NewSqrtOp creates a new sqrt operation.
func NewSqrtOp(input, output *scalar.Node) *SqrtOp {
	return &SqrtOp{input: input, output: output}
}

// Backward computes the gradient with respect to input,
// reusing the forward value.
func (op *SqrtOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad / (2 * op.output.Value())}
}

// Inputs returns the input nodes.
func (op *SqrtOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *SqrtOp) Output() *scalar.Node {
	return op.output
}
