package render

import (
	"fmt"
	"math"
	"strings"

	"rootfind/internal/format"
	"rootfind/pkg/rootfind"
)

// Series renders the convergence of one run: for every iterate x_k, the
// residual |f(x_k)| and the step |x_{k+1} - x_k|, marking rows under the
// tolerances. Two sparklines on a log scale follow the table.
func Series(iterates []rootfind.Iterate, stepTol, valueTol float64, mode format.Mode) string {
	residuals := make([]float64, len(iterates))
	steps := make([]float64, 0, len(iterates))

	tb := format.NewTable(mode)
	tb.Header("k", "x_k", "|f(x_k)|", "|x_{k+1} - x_k|", "below tol")
	tb.Columns(
		format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignCenter},
	)
	for k, it := range iterates {
		residuals[k] = math.Abs(it.FX)
		below := residuals[k] < valueTol
		step := "-"
		if k+1 < len(iterates) {
			d := math.Abs(iterates[k+1].X - it.X)
			steps = append(steps, d)
			step = format.Sci(d)
			below = below || d < stepTol
		}
		tb.Row(k, format.FloatPrec(it.X, 15), format.Sci(residuals[k]), step, format.BoolMark(below))
	}

	if mode == format.CSV {
		return tb.String()
	}

	var b strings.Builder
	b.WriteString(tb.String())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("|f(x_k)|          %s  (tol %g)\n", format.Sparkline(residuals), valueTol))
	if len(steps) > 0 {
		b.WriteString(fmt.Sprintf("|x_{k+1} - x_k|   %s  (tol %g)\n", format.Sparkline(steps), stepTol))
	}
	return b.String()
}
