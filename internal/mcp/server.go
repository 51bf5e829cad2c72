// Package mcp exposes the root-finding engines as Model Context Protocol
// tools.
package mcp

import (
	"context"
	"fmt"

	"rootfind/internal/compare"
	"rootfind/internal/config"
	"rootfind/internal/format"
	"rootfind/internal/funcs"
	"rootfind/internal/logging"
	"rootfind/internal/render"
	"rootfind/pkg/rootfind"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server
	// Parallel bounds concurrent engine calls in compare when the caller
	// does not set it.
	Parallel int
}

// NewServer creates an MCP server with the scenario, solve and compare tools.
func NewServer() *Server {
	s := &Server{Parallel: 1}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "rootfind", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_scenarios",
		Description: "List the built-in comparison scenarios with their functions.",
	}, s.handleListScenarios)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "solve",
		Description: "Find a root of f(x) given as an expression in x, with bisection (a, b), Newton (x0, derivative) or secant (x0, x1).",
	}, s.handleSolve)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare",
		Description: "Run bisection, Newton and secant on every function of a scenario and return the comparison table.",
	}, s.handleCompare)
}

// --- Tool input/output types ---

type listScenariosInput struct{}

type scenarioInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Functions   []string `json:"functions"`
}

type listScenariosOutput struct {
	Scenarios []scenarioInfo `json:"scenarios"`
}

type solveInput struct {
	Method     string  `json:"method" jsonschema:"bisection, newton or secant"`
	Expr       string  `json:"expr" jsonschema:"f(x) as an expression, e.g. x**2 - 4*sin(x)"`
	Derivative string  `json:"derivative,omitempty" jsonschema:"f'(x) as an expression; required for newton"`
	A          float64 `json:"a,omitempty" jsonschema:"bisection bracket start"`
	B          float64 `json:"b,omitempty" jsonschema:"bisection bracket end"`
	X0         float64 `json:"x0,omitempty" jsonschema:"newton seed, or first secant seed"`
	X1         float64 `json:"x1,omitempty" jsonschema:"second secant seed"`
	MaxIter    int     `json:"max_iter,omitempty" jsonschema:"iteration limit (default 100)"`
	StepTol    float64 `json:"step_tol,omitempty" jsonschema:"step tolerance (default 1e-12)"`
	ValueTol   float64 `json:"value_tol,omitempty" jsonschema:"residual tolerance (default 1e-12)"`
	Iterates   bool    `json:"iterates,omitempty" jsonschema:"include the full iterate sequence"`
}

type iterateOut struct {
	X  *float64 `json:"x"`
	FX *float64 `json:"fx"`
}

type runOut struct {
	FunctionID string       `json:"function_id,omitempty"`
	Function   string       `json:"function"`
	Method     string       `json:"method"`
	Outcome    string       `json:"outcome"`
	Criterion  string       `json:"criterion,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	Interval   []float64    `json:"interval,omitempty"`
	Attempts   int          `json:"attempts,omitempty"`
	Seeds      []float64    `json:"seeds,omitempty"`
	Iterations int          `json:"iterations"`
	Root       *float64     `json:"root,omitempty"`
	FRoot      *float64     `json:"f_root,omitempty"`
	Rate       *float64     `json:"empirical_rate,omitempty"`
	RateNote   string       `json:"rate_note,omitempty"`
	Iterates   []iterateOut `json:"iterates,omitempty"`
}

type compareInput struct {
	Scenario string   `json:"scenario,omitempty" jsonschema:"built-in scenario name (default classic)"`
	Methods  []string `json:"methods,omitempty" jsonschema:"subset of bisection, newton, secant"`
	Parallel int      `json:"parallel,omitempty" jsonschema:"number of parallel engine runs (default 1 = serial)"`
	Format   string   `json:"format,omitempty" jsonschema:"table format: ascii or markdown (default markdown)"`
}

type compareOutput struct {
	Scenario    string   `json:"scenario"`
	Runs        []runOut `json:"runs"`
	Table       string   `json:"table"`
	Conclusions []string `json:"conclusions"`
}

// --- Tool handlers ---

func (s *Server) handleListScenarios(_ context.Context, _ *sdkmcp.CallToolRequest, _ listScenariosInput) (*sdkmcp.CallToolResult, listScenariosOutput, error) {
	var out listScenariosOutput
	for _, name := range config.ListScenarios() {
		sc, err := config.LoadScenario(name)
		if err != nil {
			return nil, listScenariosOutput{}, err
		}
		info := scenarioInfo{Name: sc.Name, Description: sc.Description}
		for _, fn := range sc.Functions {
			info.Functions = append(info.Functions, fn.ID+": "+fn.Expr)
		}
		out.Scenarios = append(out.Scenarios, info)
	}
	return nil, out, nil
}

func (s *Server) handleSolve(_ context.Context, _ *sdkmcp.CallToolRequest, input solveInput) (*sdkmcp.CallToolResult, runOut, error) {
	method, err := rootfind.ParseMethod(input.Method)
	if err != nil {
		return nil, runOut{}, err
	}
	fn, err := funcs.New("f", "", input.Expr, input.Derivative)
	if err != nil {
		return nil, runOut{}, err
	}
	run, err := compare.Solve(compare.Request{
		Method:   method,
		Function: fn,
		Interval: [2]float64{input.A, input.B},
		X0:       input.X0,
		X1:       input.X1,
		Tolerances: config.Tolerances{
			MaxIter:  input.MaxIter,
			StepTol:  input.StepTol,
			ValueTol: input.ValueTol,
		},
	})
	if err != nil {
		return nil, runOut{}, err
	}

	logging.New("mcp").Info("solve", "method", method, "expr", input.Expr, "outcome", run.Outcome, "iterations", run.Iterations)
	return nil, toRunOut(run, input.Iterates), nil
}

func (s *Server) handleCompare(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	name := input.Scenario
	if name == "" {
		name = config.DefaultScenario
	}
	sc, err := config.LoadScenario(name)
	if err != nil {
		return nil, compareOutput{}, err
	}

	methods := make([]rootfind.Method, 0, len(input.Methods))
	for _, m := range input.Methods {
		pm, err := rootfind.ParseMethod(m)
		if err != nil {
			return nil, compareOutput{}, err
		}
		methods = append(methods, pm)
	}

	mode := format.Markdown
	if input.Format != "" {
		if mode, err = format.ParseMode(input.Format); err != nil {
			return nil, compareOutput{}, err
		}
	}

	parallel := input.Parallel
	if parallel < 1 {
		parallel = s.Parallel
	}
	report, err := compare.Compare(ctx, compare.Config{Scenario: sc, Methods: methods, Parallel: parallel})
	if err != nil {
		return nil, compareOutput{}, fmt.Errorf("compare: %w", err)
	}

	out := compareOutput{
		Scenario:    report.Scenario,
		Table:       render.ComparisonTable(report, mode),
		Conclusions: render.Conclusions(report),
	}
	for _, run := range report.Runs {
		out.Runs = append(out.Runs, toRunOut(run, false))
	}
	return nil, out, nil
}

func toRunOut(run compare.Run, iterates bool) runOut {
	out := runOut{
		FunctionID: run.FunctionID,
		Function:   run.Function,
		Method:     string(run.Method),
		Outcome:    run.Outcome.String(),
		Reason:     run.Reason,
		Attempts:   run.Attempts,
		Seeds:      run.Seeds,
		Iterations: run.Iterations,
		Root:       run.Root,
		FRoot:      run.FRoot,
		Rate:       run.Rate,
		RateNote:   run.RateNote,
	}
	if run.Criterion != rootfind.CriterionNone {
		out.Criterion = run.Criterion.String()
	}
	if run.Interval != nil {
		out.Interval = run.Interval[:]
	}
	if iterates {
		for _, it := range run.Iterates {
			out.Iterates = append(out.Iterates, iterateOut{X: compare.Finite(it.X), FX: compare.Finite(it.FX)})
		}
	}
	return out
}
