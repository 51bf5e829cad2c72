package render

import (
	"fmt"
	"strings"

	"rootfind/internal/display"
	"rootfind/internal/format"
	"rootfind/pkg/rootfind"
)

// BisectTrace shows the bracket at the start of every bisection step and
// the midpoint it produced.
func BisectTrace(steps []rootfind.BisectStep, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Iter", "a", "b", "(b - a)/2", "c", "f(c)")
	for _, s := range steps {
		tb.Row(s.Iter, format.Float(s.A), format.Float(s.B), format.Sci(s.HalfWidth), format.FloatPrec(s.C, 15), format.Sci(s.FC))
	}
	return tb.String()
}

// TangentTrace shows the tangent line drawn at every Newton iterate and its
// x-intercept.
func TangentTrace(steps []rootfind.TangentStep, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Iter", "x_k", "f(x_k)", "f'(x_k)", "Tangent", "x-intercept", "f(x-intercept)")
	for _, s := range steps {
		tb.Row(s.Iter, format.FloatPrec(s.X, 15), format.Sci(s.FX), format.Float(s.FPrime),
			Line(s.FPrime, s.X, s.FX), format.FloatPrec(s.Next, 15), format.Sci(s.FNext))
	}
	return tb.String()
}

// SecantTrace shows the line through the two latest iterates and its
// x-intercept.
func SecantTrace(steps []rootfind.SecantStep, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Iter", "x_{k-1}", "x_k", "Slope", "Secant", "x-intercept", "f(x-intercept)")
	for _, s := range steps {
		slope := (s.FXCur - s.FXPrev) / (s.XCur - s.XPrev)
		tb.Row(s.Iter, format.FloatPrec(s.XPrev, 15), format.FloatPrec(s.XCur, 15), format.Float(slope),
			Line(slope, s.XCur, s.FXCur), format.FloatPrec(s.Next, 15), format.Sci(s.FNext))
	}
	return tb.String()
}

// Line renders the point-slope form y = m (x - x0) + y0.
func Line(slope, x0, y0 float64) string {
	return fmt.Sprintf("y = %s (x - %s) + %s", format.Float(slope), format.Float(x0), format.Float(y0))
}

// Summary is the one-paragraph verdict of a single engine run.
func Summary(sum rootfind.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s after %d iterations", display.Method(sum.Method), display.Outcome(sum.Outcome), sum.Iterations))
	if c := display.Criterion(sum.Criterion); c != "" && sum.Outcome == rootfind.Converged {
		b.WriteString(" (" + c + ")")
	}
	b.WriteString("\n")
	if err := sum.Err(); err != nil {
		b.WriteString("  reason: " + err.Error() + "\n")
	}
	if last, ok := sum.Last(); ok {
		b.WriteString(fmt.Sprintf("  x = %s\n  f(x) = %s\n", format.FloatPrec(last.X, 17), format.Sci(last.FX)))
	}
	return b.String()
}
