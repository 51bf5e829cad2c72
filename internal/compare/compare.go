// Package compare drives the three engines over every function of a
// scenario and collects the results into a Report.
package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rootfind/internal/config"
	"rootfind/internal/convergence"
	"rootfind/internal/funcs"
	"rootfind/internal/logging"
	"rootfind/pkg/rootfind"
)

// ErrNoDerivative marks a Newton run skipped because the function has no
// derivative expression.
var ErrNoDerivative = errors.New("compare: no derivative supplied")

// Config controls a comparison.
type Config struct {
	Scenario *config.Scenario
	// Methods restricts the engines run; empty means all three.
	Methods []rootfind.Method
	// Parallel bounds concurrent engine calls (1 = serial).
	Parallel int
	// Trace logs every iterate at debug level.
	Trace bool
}

type job struct {
	index  int
	fn     *funcs.Function
	def    config.Function
	method rootfind.Method
}

// Compile turns every scenario function into evaluators.
func Compile(s *config.Scenario) ([]*funcs.Function, error) {
	out := make([]*funcs.Function, 0, len(s.Functions))
	for _, f := range s.Functions {
		fn, err := funcs.New(f.ID, f.Name, f.Expr, f.Derivative)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		out = append(out, fn)
	}
	return out, nil
}

// Compare runs every (function, method) pair. Jobs run on a bounded
// errgroup; each writes its own slot, so Report.Runs is in scenario order
// regardless of scheduling.
func Compare(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Scenario == nil {
		return nil, errors.New("compare: scenario is required")
	}
	methods := cfg.Methods
	if len(methods) == 0 {
		methods = rootfind.Methods()
	}
	parallel := cfg.Parallel
	if parallel < 1 {
		parallel = 1
	}

	fns, err := Compile(cfg.Scenario)
	if err != nil {
		return nil, err
	}

	logger := logging.New("compare")
	logger.Info("comparison started",
		"scenario", cfg.Scenario.Name, "functions", len(fns), "methods", len(methods), "parallel", parallel)

	var jobs []job
	for fi, fn := range fns {
		for mi, m := range methods {
			jobs = append(jobs, job{
				index:  fi*len(methods) + mi,
				fn:     fn,
				def:    cfg.Scenario.Functions[fi],
				method: m,
			})
		}
	}

	runs := make([]Run, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runs[j.index] = runJob(cfg, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare %q: %w", cfg.Scenario.Name, err)
	}

	for _, r := range runs {
		logger.Info("run finished",
			"function", r.FunctionID, "method", r.Method, "outcome", r.Outcome, "iterations", r.Iterations)
	}

	return &Report{
		Scenario:   cfg.Scenario.Name,
		Tolerances: cfg.Scenario.Tolerances,
		Methods:    methods,
		Runs:       runs,
	}, nil
}

func runJob(cfg Config, j job) Run {
	s := cfg.Scenario
	tol := s.Tolerances
	run := Run{FunctionID: j.fn.ID, Function: j.fn.Name, Method: j.method}

	var obs rootfind.Observer
	if cfg.Trace {
		obs = TraceObserver(logging.New("engine"), j.fn.ID)
	}

	var sum rootfind.Summary
	switch j.method {
	case rootfind.MethodBisection:
		opts := tol.BisectOptions()
		opts.Observer = obs
		res, iv, attempts, err := FirstBracket(j.fn.F, s.IntervalsFor(j.def), opts)
		run.Attempts = attempts
		if err != nil {
			run.Outcome = rootfind.PrecursorFailed
			run.Reason = err.Error()
			return run
		}
		run.Interval = &iv
		sum = res.Summary()
	case rootfind.MethodNewton:
		seed := s.NewtonFor(j.def)
		run.Seeds = []float64{seed.X0}
		if !j.fn.HasDerivative() {
			run.Outcome = rootfind.PrecursorFailed
			run.Reason = ErrNoDerivative.Error()
			return run
		}
		opts := tol.NewtonOptions()
		opts.Observer = obs
		sum = rootfind.Newton(j.fn.F, j.fn.FPrime, seed.X0, opts).Summary()
	case rootfind.MethodSecant:
		seeds := s.SecantFor(j.def)
		run.Seeds = []float64{seeds.X0, seeds.X1}
		opts := tol.SecantOptions()
		opts.Observer = obs
		sum = rootfind.Secant(j.fn.F, seeds.X0, seeds.X1, opts).Summary()
	default:
		run.Outcome = rootfind.PrecursorFailed
		run.Reason = fmt.Sprintf("unknown method %q", j.method)
		return run
	}

	fill(&run, sum)
	return run
}

// fill copies the engine summary into run and derives the empirical rate.
func fill(run *Run, sum rootfind.Summary) {
	run.Outcome = sum.Outcome
	if sum.Outcome == rootfind.Converged {
		run.Criterion = sum.Criterion
	}
	if err := sum.Err(); err != nil {
		run.Reason = err.Error()
	}
	run.Iterations = sum.Iterations
	run.Iterates = sum.Iterates
	if last, ok := sum.Last(); ok {
		run.Root = Finite(last.X)
		run.FRoot = Finite(last.FX)
	}

	p, err := convergence.Rate(sum.Xs())
	if err != nil {
		run.RateNote = "insufficient data"
		return
	}
	run.Rate = Finite(p)
}

// TraceObserver logs every engine event at debug level. It replaces the
// per-iteration printing of an interactive session.
func TraceObserver(logger *slog.Logger, function string) rootfind.Observer {
	return func(e rootfind.Event) {
		if e.Outcome != rootfind.Running {
			attrs := []any{"function", function, "method", e.Method, "outcome", e.Outcome, "iterations", e.Iter}
			if e.Reason != nil {
				attrs = append(attrs, "reason", e.Reason)
			}
			logger.Debug("engine finished", attrs...)
			return
		}
		logger.Debug("iterate",
			"function", function, "method", e.Method, "iter", e.Iter, "x", e.Iterate.X, "fx", e.Iterate.FX)
	}
}
