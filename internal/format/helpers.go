package format

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Float formats v with 8 significant digits, the precision of the
// comparison table.
func Float(v float64) string {
	return FloatPrec(v, 8)
}

// FloatPrec formats v with prec significant digits using %g. Non-finite
// values render as NaN, +Inf and -Inf.
func FloatPrec(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return fmt.Sprintf("%.*g", prec, v)
}

// Sci formats v in scientific notation with 3 decimals, for residuals and
// step sizes.
func Sci(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FloatPrec(v, 0)
	}
	return fmt.Sprintf("%.3e", v)
}

// Truncate shortens s to at most maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// sparkTicks are ordered from lowest to highest.
var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws a one-line bar chart of vals on a log10 scale, which is
// how residual and step series are best read. Zero and non-finite values
// render as a blank.
func Sparkline(vals []float64) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	logs := make([]float64, len(vals))
	for i, v := range vals {
		v = math.Abs(v)
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			logs[i] = math.NaN()
			continue
		}
		logs[i] = math.Log10(v)
		lo = math.Min(lo, logs[i])
		hi = math.Max(hi, logs[i])
	}

	var b strings.Builder
	for _, l := range logs {
		if math.IsNaN(l) {
			b.WriteRune(' ')
			continue
		}
		idx := len(sparkTicks) - 1
		if hi > lo {
			idx = int(math.Round((l - lo) / (hi - lo) * float64(len(sparkTicks)-1)))
		}
		b.WriteRune(sparkTicks[idx])
	}
	return b.String()
}
