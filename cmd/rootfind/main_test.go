package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCompare_Classic(t *testing.T) {
	out, _, err := execute(t, "compare")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{
		"=== Root-Finding Method Comparison ===",
		"Scenario:   classic",
		"Linear (theoretical)",
		"--- Conclusions ---",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCompare_JSON(t *testing.T) {
	out, _, err := execute(t, "compare", "--format", "json", "--methods", "newton,secant", "--parallel", "2")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var report struct {
		Scenario string `json:"scenario"`
		Runs     []struct {
			Method  string `json:"method"`
			Outcome string `json:"outcome"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if report.Scenario != "classic" || len(report.Runs) != 6 {
		t.Fatalf("got scenario %q with %d runs", report.Scenario, len(report.Runs))
	}
	for _, r := range report.Runs {
		if r.Method == "bisection" || r.Outcome != "converged" {
			t.Errorf("unexpected run %+v", r)
		}
	}
}

func TestCompare_ScenarioFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.json")
	data := `{"name": "mine", "secant": {"x0": 1, "x1": 2}, "functions": [{"id": "g", "expr": "x**2 - 2", "derivative": "2*x"}], "newton": {"x0": 1}, "bisection": {"intervals": [[0, 2]]}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "compare", "--scenario-file", path, "--format", "csv")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 {
		t.Errorf("got %d CSV lines, want 4:\n%s", len(lines), out)
	}

	t.Setenv(envScenario, "textbook")
	out, _, err = execute(t, "compare", "--format", "markdown", "--conclusions=false")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "Scenario:   textbook") || strings.Contains(out, "Conclusions") {
		t.Errorf("ROOTFIND_SCENARIO not honoured:\n%s", out)
	}
}

func TestCompare_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown scenario", []string{"compare", "--scenario", "nope"}, `scenario "nope" not found`},
		{"unknown method", []string{"compare", "--methods", "regula"}, "unknown method"},
		{"unknown format", []string{"compare", "--format", "html"}, "unknown table format"},
		{"bad log level", []string{"--log-level", "loud", "compare"}, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "bisection",
			args: []string{"solve", "bisection", "--expr", "x**2 - 1", "--a", "0", "--b", "3"},
			want: []string{"Bisection Method: Converged after 41 iterations", "x = 1"},
		},
		{
			name: "newton",
			args: []string{"solve", "nr", "--expr", "x**2 - 1", "--deriv", "2*x", "--x0", "1.5", "--series"},
			want: []string{"Newton's Method: Converged after 5 iterations (|f(x_k)| < tol)", "(Quadratic)", "|x_{k+1} - x_k|   "},
		},
		{
			name: "newton without derivative",
			args: []string{"solve", "newton", "--expr", "x**2 - 1", "--x0", "1.5"},
			want: []string{"Failed after 0 iterations", "no derivative supplied"},
		},
		{
			name: "secant small slope",
			args: []string{"solve", "secant", "--expr", "x**2 - 1", "--x0", "-2", "--x1", "2"},
			want: []string{"Secant Method: Failed", "secant slope too small"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := execute(t, "solve", "secant", "--expr", "x**2 - 1", "--x0", "0", "--x1", "2", "--format", "json")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	var run map[string]any
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if run["outcome"] != "converged" || run["iterations"] != float64(8) || run["method"] != "secant" {
		t.Errorf("run = %v", run)
	}
}

func TestSolve_Errors(t *testing.T) {
	if _, _, err := execute(t, "solve", "bisection"); err == nil || !strings.Contains(err.Error(), "expr") {
		t.Errorf("missing --expr: err = %v", err)
	}
	if _, _, err := execute(t, "solve", "golden", "--expr", "x"); err == nil {
		t.Error("expected unknown method error")
	}
	if _, _, err := execute(t, "solve", "newton", "--expr", "x +"); err == nil {
		t.Error("expected compile error")
	}
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, "trace", "newton", "--expr", "x**2 - 1", "--deriv", "2*x", "--x0", "1.5")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	for _, want := range []string{"Newton's Method: f(x) = x**2 - 1", "y = 3 (x - 1.5) + 1.25", "Converged after 5 iterations"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "trace", "bisect", "--expr", "x**2 - 1", "--a", "0", "--b", "3", "--max-iter", "3", "--format", "csv")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 4 {
		t.Errorf("got %d CSV lines, want header + 3 steps:\n%s", len(lines), out)
	}

	if _, _, err := execute(t, "trace", "newton", "--expr", "x"); err == nil {
		t.Error("expected error without --deriv")
	}
}

func TestScenarios(t *testing.T) {
	out, _, err := execute(t, "scenarios")
	if err != nil {
		t.Fatalf("scenarios: %v", err)
	}
	if !strings.Contains(out, "classic") || !strings.Contains(out, "textbook") {
		t.Errorf("output:\n%s", out)
	}

	out, _, err = execute(t, "scenarios", "show", "classic")
	if err != nil {
		t.Fatalf("scenarios show: %v", err)
	}
	for _, want := range []string{"name: classic", "max_iter: 100", "expr: x**2 - 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q:\n%s", want, out)
		}
	}
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ROOTFIND_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(envLogLevel) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--env-file", path, "solve", "secant", "--expr", "x**2 - 1", "--x0", "0", "--x1", "2", "--trace"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(errOut.String(), "level=DEBUG") || !strings.Contains(errOut.String(), "msg=iterate") {
		t.Errorf("debug logging from .env not applied:\n%s", errOut.String())
	}

	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing env file: %v", err)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv(envParallel, "4")
	if n, err := envInt(envParallel, 1); err != nil || n != 4 {
		t.Errorf("envInt = %d, %v", n, err)
	}
	t.Setenv(envParallel, "many")
	if _, err := envInt(envParallel, 1); err == nil {
		t.Error("expected parse error")
	}
	t.Setenv(envParallel, "")
	if n, _ := envInt(envParallel, 3); n != 3 {
		t.Errorf("envInt default = %d", n)
	}
}
