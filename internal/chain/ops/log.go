package ops

import "github.com/score-ml/score/internal/scalar"

// LogOp represents a natural logarithm operation.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Note: This assumes input > 0. Log densities evaluated outside a
// distribution's support are expected to fault before reaching the tape.
type LogOp struct {
	input  *scalar.Node
	output *scalar.Node
}

// NewLogOp creates a new log operation.
func NewLogOp(input, output *scalar.Node) *LogOp {
	return &LogOp{input: input, output: output}
}

// Backward computes the gradient with respect to input.
func (op *LogOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad / op.input.Value()}
}

// Inputs returns the input nodes.
func (op *LogOp) Inputs() []*scalar.Node {
	return []*scalar.Node{op.input}
}

// Output returns the output node.
func (op *LogOp) Output() *scalar.Node {
	return op.output
}
