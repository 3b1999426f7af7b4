// Package transform provides the constrained↔unconstrained
// reparameterization transforms whose internal construction the reverse
// tracer cannot differentiate through, together with the hand-written
// vector-Jacobian-product rules that stand in for native tracing.
//
// Two families are covered: simplex-valued distributions (stick-breaking)
// and positive-definite-matrix-valued distributions (Cholesky). Rules are
// held in an explicit table keyed by (family, direction), populated at
// startup; adding a family means registering rules, not extending a
// conditional chain.
//
// The fallback pattern is general: whenever native tracing cannot cover a
// non-elementary function, its rule substitutes a dense Jacobian from the
// forward-mode directional-sweep primitive and applies the chain rule at
// that call site.
package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/score-ml/score/internal/backend"
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/forward"
	"github.com/score-ml/score/internal/scalar"
)

// Direction selects which way a reparameterization runs.
type Direction int

const (
	// Link maps constrained space to unconstrained space.
	Link Direction = iota
	// Invlink maps unconstrained space back to constrained space.
	Invlink
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Link {
		return "link"
	}
	return "invlink"
}

// Rule is a stateless transform with a derivable backward pass. Forward
// operates on plain values only; matrix-valued inputs and outputs are
// flattened row-major.
type Rule struct {
	Forward func(x []float64) []float64
}

type ruleKey struct {
	family string
	dir    Direction
}

var rules = map[ruleKey]Rule{}

// Register installs a rule for a (family, direction) pair, replacing any
// previous registration.
func Register(family string, dir Direction, r Rule) {
	rules[ruleKey{family: family, dir: dir}] = r
}

func init() {
	Register("simplex", Link, Rule{Forward: SimplexLink})
	Register("simplex", Invlink, Rule{Forward: SimplexInvlink})
	Register("cholesky", Link, Rule{Forward: CholLink})
	Register("cholesky", Invlink, Rule{Forward: CholInvlink})
}

// familyOf maps a distribution to its transform family.
func familyOf(dist any) (string, bool) {
	switch dist.(type) {
	case *distmv.Dirichlet:
		return "simplex", true
	case *distmat.Wishart:
		return "cholesky", true
	}
	return "", false
}

// Lookup resolves the rule for a distribution and direction.
func Lookup(dist any, dir Direction) (Rule, bool) {
	family, ok := familyOf(dist)
	if !ok {
		return Rule{}, false
	}
	r, ok := rules[ruleKey{family: family, dir: dir}]
	return r, ok
}

// VJP contracts an output cotangent against the transpose of the rule's
// Jacobian at the untracked input x. The Jacobian comes from the
// forward-mode directional-sweep primitive, so the contraction is
// independent of any reverse tracer. The result is shaped like x; matrix
// inputs are contracted flattened and reshaped by the caller.
func VJP(r Rule, x, cotangent []float64) []float64 {
	jac := forward.Jacobian(r.Forward, len(cotangent), x, backend.Resolve().ChunkSize)

	var out mat.VecDense
	out.MulVec(jac.T(), mat.NewVecDense(len(cotangent), cotangent))

	grad := make([]float64, len(x))
	for i := range grad {
		grad[i] = out.AtVec(i)
	}
	return grad
}

// Apply runs the transform for dist in the given direction over tracked
// inputs. The forward pass uses plain values only; when the ops tape is
// recording, a single custom operation carries the rule's VJP, so the
// tracer never descends into the transform's internals. No cotangent is
// produced for the distribution argument.
func Apply(ops chain.Ops, dist any, dir Direction, in []*scalar.Node) ([]*scalar.Node, error) {
	r, ok := Lookup(dist, dir)
	if !ok {
		return nil, fmt.Errorf("transform: no %s rule registered for %T", dir, dist)
	}
	out := ops.Custom(in, r.Forward, func(x, cotangent []float64) []float64 {
		return VJP(r, x, cotangent)
	})
	return out, nil
}
