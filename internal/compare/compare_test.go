package compare_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rootfind/internal/compare"
	"rootfind/internal/config"
	"rootfind/internal/logging"
	"rootfind/pkg/rootfind"
)

func loadScenario(t *testing.T, name string) *config.Scenario {
	t.Helper()
	s, err := config.LoadScenario(name)
	if err != nil {
		t.Fatalf("LoadScenario(%q): %v", name, err)
	}
	return s
}

func findRun(t *testing.T, r *compare.Report, fn string, m rootfind.Method) compare.Run {
	t.Helper()
	for _, run := range r.Runs {
		if run.FunctionID == fn && run.Method == m {
			return run
		}
	}
	t.Fatalf("no run for %s/%s", fn, m)
	return compare.Run{}
}

func TestCompare_Classic(t *testing.T) {
	report, err := compare.Compare(context.Background(), compare.Config{Scenario: loadScenario(t, "classic")})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(report.Runs) != 9 {
		t.Fatalf("len(Runs) = %d, want 9", len(report.Runs))
	}

	var order []string
	for _, run := range report.Runs {
		order = append(order, run.FunctionID+"/"+string(run.Method))
		if run.Outcome != rootfind.Converged {
			t.Errorf("%s/%s outcome = %v (%s), want converged", run.FunctionID, run.Method, run.Outcome, run.Reason)
		}
	}
	wantOrder := []string{
		"f1/bisection", "f1/newton", "f1/secant",
		"f2/bisection", "f2/newton", "f2/secant",
		"f3/bisection", "f3/newton", "f3/secant",
	}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Errorf("run order mismatch:\n%s", diff)
	}

	// f2 = x^2 - 1: [-4,1], [-2,2] and [-1,1] share signs, [-2,0] brackets -1
	// and its first midpoint is the root.
	bis := findRun(t, report, "f2", rootfind.MethodBisection)
	if bis.Attempts != 4 || bis.Interval == nil || *bis.Interval != [2]float64{-2, 0} {
		t.Errorf("f2 bisection interval = %v after %d attempts, want [-2 0] after 4", bis.Interval, bis.Attempts)
	}
	if bis.Iterations != 1 || *bis.Root != -1 {
		t.Errorf("f2 bisection = %d iterations, root %v; want 1, -1", bis.Iterations, *bis.Root)
	}

	nr := findRun(t, report, "f2", rootfind.MethodNewton)
	if nr.Iterations != 5 || math.Abs(*nr.Root-1) > 1e-12 {
		t.Errorf("f2 newton = %d iterations, root %v; want 5, 1", nr.Iterations, *nr.Root)
	}
	if nr.Rate == nil || *nr.Rate < 1.8 {
		t.Errorf("f2 newton rate = %v, want >= 1.8", nr.Rate)
	}
	if diff := cmp.Diff([]float64{1.5}, nr.Seeds); diff != "" {
		t.Errorf("newton seeds:\n%s", diff)
	}

	sec := findRun(t, report, "f2", rootfind.MethodSecant)
	if sec.Iterations != 8 || len(sec.Iterates) != 10 {
		t.Errorf("f2 secant = %d iterations / %d iterates, want 8 / 10", sec.Iterations, len(sec.Iterates))
	}

	f3 := findRun(t, report, "f3", rootfind.MethodNewton)
	b3 := findRun(t, report, "f3", rootfind.MethodBisection)
	if f3.Iterations <= 5 {
		t.Errorf("f3 newton iterations = %d, expected slow convergence at the triple root", f3.Iterations)
	}
	if b3.Attempts != 1 {
		t.Errorf("f3 bisection attempts = %d, want 1", b3.Attempts)
	}
}

func TestCompare_ParallelMatchesSerial(t *testing.T) {
	s := loadScenario(t, "classic")
	serial, err := compare.Compare(context.Background(), compare.Config{Scenario: s, Parallel: 1})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := compare.Compare(context.Background(), compare.Config{Scenario: s, Parallel: 8})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel run differs from serial:\n%s", diff)
	}
}

func TestCompare_MethodFilter(t *testing.T) {
	report, err := compare.Compare(context.Background(), compare.Config{
		Scenario: loadScenario(t, "classic"),
		Methods:  []rootfind.Method{rootfind.MethodSecant},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Runs) != 3 {
		t.Fatalf("len(Runs) = %d, want 3", len(report.Runs))
	}
	for _, run := range report.Runs {
		if run.Method != rootfind.MethodSecant {
			t.Errorf("unexpected method %s", run.Method)
		}
	}
}

func TestCompare_TextbookFailures(t *testing.T) {
	report, err := compare.Compare(context.Background(), compare.Config{Scenario: loadScenario(t, "textbook"), Parallel: 3})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		fn, want string
		method   rootfind.Method
	}{
		{"double", "failed for all intervals", rootfind.MethodBisection},
		{"flat", "derivative too small", rootfind.MethodNewton},
		{"flat", "secant slope too small", rootfind.MethodSecant},
	}
	for _, tt := range tests {
		run := findRun(t, report, tt.fn, tt.method)
		if run.Outcome != rootfind.PrecursorFailed {
			t.Errorf("%s/%s outcome = %v, want precursor-failed", tt.fn, tt.method, run.Outcome)
		}
		if !strings.Contains(run.Reason, tt.want) {
			t.Errorf("%s/%s reason = %q, want it to mention %q", tt.fn, tt.method, run.Reason, tt.want)
		}
	}

	double := findRun(t, report, "double", rootfind.MethodBisection)
	if double.Attempts != 2 || double.HasRoot() {
		t.Errorf("double bisection: attempts %d, root %v", double.Attempts, double.Root)
	}
	if run := findRun(t, report, "wallis", rootfind.MethodNewton); run.Outcome != rootfind.Converged {
		t.Errorf("wallis newton outcome = %v", run.Outcome)
	}
}

func TestCompare_NoDerivative(t *testing.T) {
	s, err := config.Load([]byte("name: nd\nsecant: {x0: 1, x1: 2}\nbisection: {intervals: [[0, 3]]}\nfunctions:\n  - {id: g, expr: \"x**2 - 2\"}\n"), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	report, err := compare.Compare(context.Background(), compare.Config{Scenario: s})
	if err != nil {
		t.Fatal(err)
	}
	nr := findRun(t, report, "g", rootfind.MethodNewton)
	if nr.Outcome != rootfind.PrecursorFailed || nr.Reason != compare.ErrNoDerivative.Error() {
		t.Errorf("newton without derivative = %v %q", nr.Outcome, nr.Reason)
	}
	if sec := findRun(t, report, "g", rootfind.MethodSecant); sec.Outcome != rootfind.Converged {
		t.Errorf("secant outcome = %v", sec.Outcome)
	}
}

func TestCompare_BadExpression(t *testing.T) {
	s, err := config.Load([]byte("name: bad\nsecant: {x0: 1, x1: 2}\nfunctions:\n  - {id: g, expr: \"x +\"}\n"), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := compare.Compare(context.Background(), compare.Config{Scenario: s}); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestCompare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := compare.Compare(ctx, compare.Config{Scenario: loadScenario(t, "classic")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCompare_NilScenario(t *testing.T) {
	if _, err := compare.Compare(context.Background(), compare.Config{}); err == nil {
		t.Error("expected error for nil scenario")
	}
}

func TestFirstBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }
	opts := rootfind.BisectOptions{Stop: rootfind.DefaultStop()}

	res, iv, attempts, err := compare.FirstBracket(f, [][2]float64{{2, 3}, {0, 3}}, opts)
	if err != nil {
		t.Fatalf("FirstBracket: %v", err)
	}
	if iv != [2]float64{0, 3} || attempts != 2 || res.Outcome != rootfind.Converged {
		t.Errorf("got interval %v attempts %d outcome %v", iv, attempts, res.Outcome)
	}

	_, _, attempts, err = compare.FirstBracket(f, [][2]float64{{2, 3}, {-3, -2}}, opts)
	if !errors.Is(err, compare.ErrNoBracket) || attempts != 2 {
		t.Errorf("err = %v attempts %d, want ErrNoBracket after 2", err, attempts)
	}

	if _, _, _, err := compare.FirstBracket(f, nil, opts); !errors.Is(err, compare.ErrNoBracket) {
		t.Errorf("err = %v, want ErrNoBracket for empty list", err)
	}
}

func TestFirstBracket_InvalidOptionsStopsSearch(t *testing.T) {
	f := func(x float64) float64 { return x*x - 1 }

	bad := rootfind.BisectOptions{Stop: rootfind.Stop{MaxIter: 0}}
	_, iv, attempts, err := compare.FirstBracket(f, [][2]float64{{0, 3}, {-3, 0}}, bad)
	if !errors.Is(err, rootfind.ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
	if attempts != 1 || iv != ([2]float64{}) {
		t.Errorf("got interval %v attempts %d, want zero interval after 1", iv, attempts)
	}

	opts := rootfind.BisectOptions{Stop: rootfind.DefaultStop()}
	_, _, attempts, err = compare.FirstBracket(f, [][2]float64{{2, 3}, {math.NaN(), 3}, {0, 3}}, opts)
	if !errors.Is(err, rootfind.ErrInvalidOptions) || attempts != 2 {
		t.Errorf("err = %v attempts %d, want ErrInvalidOptions after 2", err, attempts)
	}
}

func TestTraceObserver_LogsIterates(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, "text", &buf)
	t.Cleanup(func() { logging.Init(slog.LevelInfo, "text") })

	_, err := compare.Compare(context.Background(), compare.Config{
		Scenario: loadScenario(t, "classic"),
		Methods:  []rootfind.Method{rootfind.MethodNewton},
		Trace:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"component=engine", "msg=iterate", "method=newton", "msg=\"engine finished\"", "component=compare"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestReport_ByFunction(t *testing.T) {
	report, err := compare.Compare(context.Background(), compare.Config{Scenario: loadScenario(t, "classic")})
	if err != nil {
		t.Fatal(err)
	}
	groups := report.ByFunction()
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	for _, g := range groups {
		if len(g) != 3 {
			t.Errorf("group %s has %d runs, want 3", g[0].FunctionID, len(g))
		}
	}
}

func TestFinite(t *testing.T) {
	if compare.Finite(math.NaN()) != nil || compare.Finite(math.Inf(-1)) != nil {
		t.Error("non-finite values should map to nil")
	}
	if v := compare.Finite(2.5); v == nil || *v != 2.5 {
		t.Errorf("Finite(2.5) = %v", v)
	}
}
