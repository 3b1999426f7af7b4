// Package main provides the Score CLI.
package main

import (
	"fmt"
	"os"

	"github.com/score-ml/score/ad"
	"github.com/score-ml/score/model"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Score %s\n", version)
			return
		case "check":
			if err := check(); err != nil {
				fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Score - Pluggable log-density gradients for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  check      Run a cross-backend gradient self-check")
}

// check computes the gradient of a standard normal log density on every
// backend and prints the results side by side.
func check() error {
	gaussian := model.EvaluatorFunc(func(ctx model.Context, ops model.Ops, params []*model.Node) (*model.Node, error) {
		terms := make([]*model.Node, len(params))
		for i, p := range params {
			terms[i] = ops.Mul(p, p)
		}
		lp := ops.Mul(ops.Const(-0.5), ops.Sum(terms))
		ctx.SetLogDensity(lp.Value())
		return lp, nil
	})

	theta := []float64{0.5, -1.5, 2.0}
	fmt.Printf("log p(θ) = -½‖θ‖² at θ = %v (exact gradient -θ)\n\n", theta)

	for _, name := range []string{"forward", "tracked", "pullback"} {
		if err := ad.SetBackend(name); err != nil {
			return err
		}
		res, err := ad.ValueAndGradient(theta, model.NewStore(), gaussian, ad.NewHandle())
		if err != nil {
			return err
		}
		ok := ad.Validate(res.Gradient)
		fmt.Printf("%-9s value=%.6f gradient=%.6v finite=%t\n", name, res.Value, res.Gradient, ok)
	}
	return nil
}
