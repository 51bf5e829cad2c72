package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rootfind/internal/compare"
	"rootfind/internal/display"
	"rootfind/internal/format"
	"rootfind/internal/logging"
	"rootfind/internal/render"
)

type solveOptions struct {
	engine engineOptions
	format string
	series bool
	trace  bool
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve <bisection|newton|secant>",
		Short: "Find a root of one function with one method",
		Example: `  rootfind solve bisection --expr "x**2 - 1" --a 0 --b 3
  rootfind solve newton --expr "x**2 - 4*sin(x)" --deriv "2*x - 4*cos(x)" --x0 1.5
  rootfind solve secant --expr "x**3 - 2*x - 5" --x0 2 --x1 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, &opts)
		},
	}
	addEngineFlags(cmd, &opts.engine)
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format (text, json)")
	cmd.Flags().BoolVar(&opts.series, "series", false, "Print the per-iterate convergence series")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Log every iterate at debug level")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, opts *solveOptions) error {
	method, err := methodArg(args)
	if err != nil {
		return err
	}
	fn, err := opts.engine.function()
	if err != nil {
		return err
	}
	req := compare.Request{
		Method:     method,
		Function:   fn,
		Interval:   [2]float64{opts.engine.a, opts.engine.b},
		X0:         opts.engine.x0,
		X1:         opts.engine.x1,
		Tolerances: opts.engine.tol,
	}
	if opts.trace {
		req.Observer = compare.TraceObserver(logging.New("engine"), fn.ID)
	}
	run, err := compare.Solve(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(opts.format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case "", "text":
	default:
		return fmt.Errorf("unknown output format %q (available: text, json)", opts.format)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n%s: %s after %d iterations", fn.Name, display.Method(run.Method), display.Outcome(run.Outcome), run.Iterations))
	if c := display.Criterion(run.Criterion); c != "" {
		b.WriteString(" (" + c + ")")
	}
	b.WriteString("\n")
	if run.Reason != "" {
		b.WriteString("  reason: " + run.Reason + "\n")
	}
	if run.Root != nil {
		b.WriteString("  x = " + format.FloatPrec(*run.Root, 17) + "\n")
	}
	if run.FRoot != nil {
		b.WriteString("  f(x) = " + format.Sci(*run.FRoot) + "\n")
	}
	b.WriteString("  empirical rate: " + display.Rate(run.Rate, run.RateNote) + "\n")
	if opts.series && len(run.Iterates) > 0 {
		tol := opts.engine.tol.WithDefaults()
		b.WriteString("\n")
		b.WriteString(render.Series(run.Iterates, tol.StepTol, tol.ValueTol, format.ASCII))
	}
	_, err = fmt.Fprint(out, b.String())
	return err
}
