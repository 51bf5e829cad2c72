package render

import (
	"fmt"
	"math"
	"strings"

	"rootfind/internal/compare"
	"rootfind/internal/convergence"
	"rootfind/internal/display"
	"rootfind/pkg/rootfind"
)

// Conclusions summarises a report: for every function, the method that
// converged in the fewest iterations and the methods that did not converge,
// followed by how the measured rates compare with theory.
func Conclusions(r *compare.Report) []string {
	var lines []string
	for _, group := range r.ByFunction() {
		lines = append(lines, functionVerdict(group))
	}

	var matched, measured int
	for _, run := range r.Runs {
		if run.Rate == nil || run.Outcome != rootfind.Converged {
			continue
		}
		measured++
		if rateMatches(run.Method, *run.Rate) {
			matched++
		}
	}
	if measured > 0 {
		lines = append(lines, fmt.Sprintf("Empirical rates match the theoretical order in %d of %d converged runs with enough iterates.", matched, measured))
	}
	lines = append(lines, fmt.Sprintf("With tolerances of %g the converged roots carry about %d correct digits.",
		r.Tolerances.ValueTol, digits(r.Tolerances.ValueTol)))
	return lines
}

func functionVerdict(group []compare.Run) string {
	best := -1
	var winners, failed []string
	for _, run := range group {
		if run.Outcome != rootfind.Converged {
			failed = append(failed, display.Method(run.Method))
			continue
		}
		switch {
		case best < 0 || run.Iterations < best:
			best = run.Iterations
			winners = []string{display.Method(run.Method)}
		case run.Iterations == best:
			winners = append(winners, display.Method(run.Method))
		}
	}

	var b strings.Builder
	b.WriteString(group[0].Function + ": ")
	if best < 0 {
		b.WriteString("no method converged")
	} else {
		b.WriteString(fmt.Sprintf("fewest iterations with %s (%d)", strings.Join(winners, " and "), best))
	}
	if len(failed) > 0 && best >= 0 {
		b.WriteString("; did not converge: " + strings.Join(failed, ", "))
	}
	return b.String()
}

// classRank orders the convergence classes from slowest to fastest.
var classRank = map[string]int{
	"Sublinear":   0,
	"Linear":      1,
	"Superlinear": 2,
	"Quadratic":   3,
}

// rateMatches reports whether p falls in the class of m's theoretical
// order. Rates in a faster class count as a match.
func rateMatches(m rootfind.Method, p float64) bool {
	order := m.Order()
	if order == 0 {
		return false
	}
	return classRank[convergence.Label(p)] >= classRank[convergence.Label(order)]
}

func digits(tol float64) int {
	if tol <= 0 || tol >= 1 {
		return 0
	}
	return int(math.Round(-math.Log10(tol)))
}
