// Package render turns comparison reports and engine results into terminal
// and document output.
package render

import (
	"fmt"
	"strings"

	"rootfind/internal/compare"
	"rootfind/internal/display"
	"rootfind/internal/format"
	"rootfind/pkg/rootfind"
)

// Options selects what Report includes.
type Options struct {
	Mode format.Mode
	// Series appends the per-iterate convergence view of every run.
	Series bool
	// Conclusions appends the summary footer.
	Conclusions bool
}

// Report produces the human-readable comparison report.
func Report(r *compare.Report, opts Options) string {
	if opts.Mode == format.CSV {
		return ComparisonTable(r, opts.Mode)
	}

	var b strings.Builder
	heading(&b, opts.Mode, 1, "Root-Finding Method Comparison")
	b.WriteString(fmt.Sprintf("Scenario:   %s\n", r.Scenario))
	tol := r.Tolerances
	b.WriteString(fmt.Sprintf("Stop:       |x_{k+1} - x_k| < %g or |f(x_k)| < %g, at most %d iterations\n",
		tol.StepTol, tol.ValueTol, tol.MaxIter))
	b.WriteString(fmt.Sprintf("Guards:     |f'(x)| >= %g (Newton), |f(x_k) - f(x_{k-1})| >= %g (secant)\n\n",
		tol.DerivTol, tol.DiffTol))

	for _, group := range r.ByFunction() {
		heading(&b, opts.Mode, 2, group[0].Function)
		for _, run := range group {
			writeRun(&b, run)
		}
		b.WriteString("\n")
	}

	heading(&b, opts.Mode, 2, "Comprehensive Method Comparison")
	b.WriteString(ComparisonTable(r, opts.Mode))
	b.WriteString("\n")

	if opts.Series {
		for _, run := range r.Runs {
			if len(run.Iterates) == 0 {
				continue
			}
			b.WriteString("\n")
			heading(&b, opts.Mode, 3, fmt.Sprintf("%s: %s", run.Function, display.Method(run.Method)))
			b.WriteString(Series(run.Iterates, tol.StepTol, tol.ValueTol, opts.Mode))
			b.WriteString("\n")
		}
	}

	if opts.Conclusions {
		b.WriteString("\n")
		heading(&b, opts.Mode, 2, "Conclusions")
		for i, line := range Conclusions(r) {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
		}
	}
	return b.String()
}

func writeRun(b *strings.Builder, run compare.Run) {
	b.WriteString(fmt.Sprintf("%s %s", display.OutcomeMark(run.Outcome), display.Method(run.Method)))
	switch {
	case run.Interval != nil:
		b.WriteString(fmt.Sprintf(" on %s (interval %d tried)", display.Interval(*run.Interval), run.Attempts))
	case len(run.Seeds) > 0:
		b.WriteString(" from " + display.Seeds(run.Seeds))
	}
	b.WriteString("\n")

	if run.Outcome == rootfind.PrecursorFailed && !run.HasRoot() {
		b.WriteString(fmt.Sprintf("    failed: %s\n", run.Reason))
		return
	}
	b.WriteString(fmt.Sprintf("    %s after %d iterations", display.Outcome(run.Outcome), run.Iterations))
	if c := display.Criterion(run.Criterion); c != "" {
		b.WriteString(" (" + c + ")")
	}
	if run.Reason != "" {
		b.WriteString(": " + run.Reason)
	}
	b.WriteString("\n")
	if run.HasRoot() {
		b.WriteString("    root " + format.FloatPrec(*run.Root, 15))
		if run.FRoot != nil {
			b.WriteString(", f(root) " + format.Sci(*run.FRoot))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("    empirical rate %s\n", display.Rate(run.Rate, run.RateNote)))
}

// heading writes a section title: "=== T ===" / "--- T ---" for ASCII and
// "#" headings for Markdown.
func heading(b *strings.Builder, m format.Mode, level int, title string) {
	if m == format.Markdown {
		b.WriteString(strings.Repeat("#", level) + " " + title + "\n\n")
		return
	}
	switch level {
	case 1:
		b.WriteString("=== " + title + " ===\n")
	default:
		b.WriteString("--- " + title + " ---\n")
	}
}
