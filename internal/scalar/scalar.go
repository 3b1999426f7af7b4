// Package scalar defines the tracked scalar value that flows through a
// differentiated model evaluation.
//
// A Node pairs a plain float64 with an identity: gradient tapes key
// accumulated gradients by node pointer, so the same *Node must be used
// wherever the same logical quantity appears in a trace.
package scalar

// Node is a scalar carried through a differentiated computation.
//
// Nodes are created by an engine (as leaves for the parameter vector, or as
// outputs of recorded operations) and must not be copied once they
// participate in a trace.
type Node struct {
	value float64
}

// New creates a node holding v.
func New(v float64) *Node {
	return &Node{value: v}
}

// Value returns the primal (untracked) value of the node.
func (n *Node) Value() float64 {
	return n.value
}

// Lift wraps a plain vector into fresh leaf nodes, in order.
func Lift(xs []float64) []*Node {
	nodes := make([]*Node, len(xs))
	for i, x := range xs {
		nodes[i] = New(x)
	}
	return nodes
}

// Values strips tracking from a node slice, returning the primal values
// in the same order.
func Values(ns []*Node) []float64 {
	xs := make([]float64, len(ns))
	for i, n := range ns {
		xs[i] = n.Value()
	}
	return xs
}
