package render

import (
	"rootfind/internal/compare"
	"rootfind/internal/display"
	"rootfind/internal/format"
)

// functionWidth caps the Function column; longer names are cut with "...".
const functionWidth = 32

// ComparisonTable renders one row per run: Function, Method, Iterations,
// Root, f(Root), Empirical Rate, Theoretical, Outcome.
func ComparisonTable(r *compare.Report, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Function", "Method", "Iterations", "Root", "f(Root)", "Empirical Rate", "Theoretical", "Outcome")
	tb.Columns(
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	for _, run := range r.Runs {
		root, froot := "-", "-"
		if run.Root != nil {
			root = format.Float(*run.Root)
		}
		if run.FRoot != nil {
			froot = format.Float(*run.FRoot)
		}
		tb.Row(
			format.Truncate(run.Function, functionWidth),
			display.Method(run.Method),
			run.Iterations,
			root,
			froot,
			display.Rate(run.Rate, run.RateNote),
			display.Theoretical(run.Method),
			display.Outcome(run.Outcome),
		)
	}
	return tb.String()
}
