// Package ops defines operation interfaces and implementations for
// reverse-mode automatic differentiation over tracked scalars.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: the value is computed by the graph before recording
//   - Backward pass: computes gradients for inputs given the output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division
//   - NegOp, ExpOp, LogOp, PowOp, SqrtOp, TanhOp: unary elementary functions
//   - SumOp: n-ary summation
//   - CustomOp: hand-written vector-Jacobian-product rule
package ops

import "github.com/score-ml/score/internal/scalar"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input node.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad float64) []float64

	// Inputs returns the input nodes for this operation.
	Inputs() []*scalar.Node

	// Output returns the output node produced by this operation.
	Output() *scalar.Node
}

// MultiOutputOperation represents an operation that produces multiple
// outputs. The only such operation here is CustomOp, whose vector-valued
// forward function yields one node per output component.
//
// The tape handles these specially by collecting gradients for ALL outputs
// before calling BackwardMulti.
type MultiOutputOperation interface {
	Operation

	// Outputs returns all output nodes produced by this operation.
	Outputs() []*scalar.Node

	// BackwardMulti computes gradients for inputs given gradients for ALL
	// outputs. This is used instead of Backward for multi-output operations.
	BackwardMulti(outputGrads []float64) []float64
}
