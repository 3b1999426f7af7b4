// Copyright 2026 Score ML Project. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the public API for the model-evaluation boundary.
//
// A model is anything that can recompute its variable values and log
// density for a given parameter vector. Arithmetic goes through Ops so the
// same model definition works under every differentiation backend.
//
// Example:
//
//	ev := model.EvaluatorFunc(func(ctx model.Context, ops model.Ops, params []*model.Node) (*model.Node, error) {
//	    // log p(θ) = -½‖θ‖²
//	    terms := make([]*model.Node, len(params))
//	    for i, p := range params {
//	        terms[i] = ops.Mul(p, p)
//	    }
//	    lp := ops.Mul(ops.Const(-0.5), ops.Sum(terms))
//	    ctx.SetLogDensity(lp.Value())
//	    return lp, nil
//	})
package model

import (
	"github.com/score-ml/score/internal/chain"
	"github.com/score-ml/score/internal/model"
	"github.com/score-ml/score/internal/scalar"
)

// Type aliases for public API

// Context is the mutable evaluation store owned by one in-flight gradient
// computation.
type Context = model.Context

// Evaluator recomputes all variable values and the log density for the
// given parameters.
type Evaluator = model.Evaluator

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc = model.EvaluatorFunc

// Store is a map-backed Context implementation.
type Store = model.Store

// Ops is the arithmetic surface a model evaluator programs against.
type Ops = chain.Ops

// Node is a tracked scalar flowing through an evaluation.
type Node = scalar.Node

// NewStore creates an empty store.
func NewStore() *Store {
	return model.NewStore()
}
