package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rootfind/internal/display"
	"rootfind/internal/format"
	"rootfind/internal/render"
	"rootfind/pkg/rootfind"
)

type traceOptions struct {
	engine engineOptions
	format string
}

func newTraceCmd() *cobra.Command {
	var opts traceOptions
	cmd := &cobra.Command{
		Use:   "trace <bisection|newton|secant>",
		Short: "Show how each iterate is constructed",
		Long: `Trace prints one row per iteration: the bracket and midpoint for
bisection, the tangent line for Newton's method, or the secant line for the
secant method, together with the line's x-intercept.`,
		Example: `  rootfind trace newton --expr "x**2 - 1" --deriv "2*x" --x0 1.5
  rootfind trace secant --expr "x**2 - 1" --x0 0 --x1 2 --format markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, args, &opts)
		},
	}
	addEngineFlags(cmd, &opts.engine)
	cmd.Flags().StringVar(&opts.format, "format", "ascii", "Table format (ascii, markdown, csv)")
	return cmd
}

func runTrace(cmd *cobra.Command, args []string, opts *traceOptions) error {
	method, err := methodArg(args)
	if err != nil {
		return err
	}
	mode, err := format.ParseMode(opts.format)
	if err != nil {
		return err
	}
	fn, err := opts.engine.function()
	if err != nil {
		return err
	}
	tol := opts.engine.tol.WithDefaults()
	e := opts.engine

	var table string
	var sum rootfind.Summary
	switch method {
	case rootfind.MethodBisection:
		res := rootfind.Bisect(fn.F, e.a, e.b, tol.BisectOptions())
		table, sum = render.BisectTrace(res.Steps, mode), res.Summary()
	case rootfind.MethodNewton:
		if !fn.HasDerivative() {
			return fmt.Errorf("newton needs --deriv")
		}
		res := rootfind.Newton(fn.F, fn.FPrime, e.x0, tol.NewtonOptions())
		table, sum = render.TangentTrace(res.Steps, mode), res.Summary()
	case rootfind.MethodSecant:
		res := rootfind.Secant(fn.F, e.x0, e.x1, tol.SecantOptions())
		table, sum = render.SecantTrace(res.Steps, mode), res.Summary()
	}

	if mode == format.CSV {
		_, err = fmt.Fprint(cmd.OutOrStdout(), table)
		return err
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n\n", display.Method(method), fn.Name))
	b.WriteString(table)
	b.WriteString("\n\n")
	b.WriteString(render.Summary(sum))
	_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
