// Copyright 2026 Score ML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform provides the public API for constrained↔unconstrained
// reparameterization transforms and their hand-written gradient rules.
//
// Example:
//
//	dir := distmv.NewDirichlet([]float64{2, 2, 2, 2}, nil)
//	y, err := transform.Apply(ops, dir, transform.Link, simplexNodes)
package transform

import (
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/scalar"
	"github.com/score-ml/score/internal/transform"
)

// Type aliases for public API

// Direction selects which way a reparameterization runs.
type Direction = transform.Direction

// Directions.
const (
	Link    = transform.Link
	Invlink = transform.Invlink
)

// Rule is a stateless transform with a derivable backward pass.
type Rule = transform.Rule

// Register installs a rule for a (family, direction) pair.
func Register(family string, dir Direction, r Rule) {
	transform.Register(family, dir, r)
}

// Apply runs the transform for dist in the given direction over tracked
// inputs, recording a custom-VJP operation when the tape is recording.
func Apply(ops chain.Ops, dist any, dir Direction, in []*scalar.Node) ([]*scalar.Node, error) {
	return transform.Apply(ops, dist, dir, in)
}

// VJP contracts an output cotangent against the transpose of the rule's
// Jacobian at x.
func VJP(r Rule, x, cotangent []float64) []float64 {
	return transform.VJP(r, x, cotangent)
}

// Plain transforms, usable outside any trace.
var (
	SimplexLink    = transform.SimplexLink
	SimplexInvlink = transform.SimplexInvlink
	CholLink       = transform.CholLink
	CholInvlink    = transform.CholInvlink
)
