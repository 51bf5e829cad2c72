// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, markdown reports, logs, and docs.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import (
	"fmt"
	"strings"

	"rootfind/internal/convergence"
	"rootfind/pkg/rootfind"
)

// --- Methods ---

var methods = map[rootfind.Method]string{
	rootfind.MethodBisection: "Bisection Method",
	rootfind.MethodNewton:    "Newton's Method",
	rootfind.MethodSecant:    "Secant Method",
}

// Method returns the human-readable name for a method code.
// Unknown codes are returned as-is.
func Method(m rootfind.Method) string {
	if name, ok := methods[m]; ok {
		return name
	}
	return string(m)
}

// --- Convergence order ---

var theoretical = map[rootfind.Method]string{
	rootfind.MethodBisection: "Linear",
	rootfind.MethodNewton:    "Quadratic",
	rootfind.MethodSecant:    "Superlinear",
}

// Theoretical returns the textbook order of a method near a simple root,
// e.g. "Quadratic (theoretical)". Unknown methods yield "".
func Theoretical(m rootfind.Method) string {
	if name, ok := theoretical[m]; ok {
		return name + " (theoretical)"
	}
	return ""
}

// Rate renders an empirical order with its class: "1.98 (Quadratic)".
// A nil rate renders the note, or "-" without one.
func Rate(p *float64, note string) string {
	if p == nil {
		if note != "" {
			return note
		}
		return "-"
	}
	return fmt.Sprintf("%.4g (%s)", *p, convergence.Label(*p))
}

// --- Outcomes ---

var outcomes = map[rootfind.Outcome]string{
	rootfind.Running:         "Running",
	rootfind.Converged:       "Converged",
	rootfind.Exhausted:       "Max iterations reached",
	rootfind.PrecursorFailed: "Failed",
}

// Outcome returns the human-readable name for an outcome.
func Outcome(o rootfind.Outcome) string {
	if name, ok := outcomes[o]; ok {
		return name
	}
	return o.String()
}

// OutcomeMark is "✓" for converged runs and "✗" otherwise.
func OutcomeMark(o rootfind.Outcome) string {
	if o == rootfind.Converged {
		return "✓"
	}
	return "✗"
}

// Criterion names the test that stopped a converged run.
// "step" -> "|x_{k+1} - x_k| < tol".
func Criterion(c rootfind.Criterion) string {
	switch c {
	case rootfind.StepTolerance:
		return "|x_{k+1} - x_k| < tol"
	case rootfind.ValueTolerance:
		return "|f(x_k)| < tol"
	default:
		return ""
	}
}

// --- Seeds and brackets ---

// Interval renders a bracket as "[-2, 0]".
func Interval(iv [2]float64) string {
	return fmt.Sprintf("[%g, %g]", iv[0], iv[1])
}

// Seeds renders starting points as "x0=0, x1=2".
func Seeds(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("x%d=%g", i, x)
	}
	return strings.Join(parts, ", ")
}
