package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rootfind/internal/config"
	"rootfind/internal/funcs"
	"rootfind/pkg/rootfind"
)

// engineOptions are the flags shared by solve and trace.
type engineOptions struct {
	expr  string
	deriv string
	a, b  float64
	x0    float64
	x1    float64
	tol   config.Tolerances
}

func addEngineFlags(cmd *cobra.Command, opts *engineOptions) {
	d := config.DefaultTolerances()
	f := cmd.Flags()
	f.StringVar(&opts.expr, "expr", "", "f(x) as an expression, e.g. \"x**2 - 4*sin(x)\" (required)")
	f.StringVar(&opts.deriv, "deriv", "", "f'(x) as an expression (required for newton)")
	f.Float64Var(&opts.a, "a", 0, "Bisection bracket start")
	f.Float64Var(&opts.b, "b", 0, "Bisection bracket end")
	f.Float64Var(&opts.x0, "x0", 0, "Newton seed, or first secant seed")
	f.Float64Var(&opts.x1, "x1", 0, "Second secant seed")
	f.IntVar(&opts.tol.MaxIter, "max-iter", d.MaxIter, "Iteration limit")
	f.Float64Var(&opts.tol.StepTol, "step-tol", d.StepTol, "Stop when |x_{k+1} - x_k| is below this")
	f.Float64Var(&opts.tol.ValueTol, "value-tol", d.ValueTol, "Stop when |f(x_k)| is below this")
	f.Float64Var(&opts.tol.DerivTol, "deriv-tol", d.DerivTol, "Newton fails when |f'(x_k)| is below this")
	f.Float64Var(&opts.tol.DiffTol, "diff-tol", d.DiffTol, "Secant fails when |f(x_k) - f(x_{k-1})| is below this")
	_ = cmd.MarkFlagRequired("expr")
}

// function compiles the --expr and --deriv flags.
func (o *engineOptions) function() (*funcs.Function, error) {
	return funcs.New("f", "", o.expr, o.deriv)
}

// methodArg parses the positional method argument.
func methodArg(args []string) (rootfind.Method, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected one method argument (bisection, newton, secant)")
	}
	return rootfind.ParseMethod(args[0])
}
