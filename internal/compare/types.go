package compare

import (
	"math"

	"rootfind/internal/config"
	"rootfind/pkg/rootfind"
)

// Report is the outcome of a full comparison: one Run per function and
// method, ordered function-major in scenario order.
type Report struct {
	Scenario   string            `json:"scenario"`
	Tolerances config.Tolerances `json:"tolerances"`
	Methods    []rootfind.Method `json:"methods"`
	Runs       []Run             `json:"runs"`
}

// Run is the method-agnostic record of one engine call, plus the reporting
// data derived from it.
type Run struct {
	FunctionID string           `json:"function_id"`
	Function   string           `json:"function"`
	Method     rootfind.Method  `json:"method"`
	Outcome    rootfind.Outcome `json:"outcome"`
	// Criterion is set for converged runs only.
	Criterion rootfind.Criterion `json:"criterion,omitempty"`
	Reason    string             `json:"reason,omitempty"`

	// Interval is the bracket bisection used; Attempts counts every
	// bracket tried, the successful one included.
	Interval *[2]float64 `json:"interval,omitempty"`
	Attempts int         `json:"attempts,omitempty"`
	// Seeds are the starting points for Newton (one) and secant (two).
	Seeds []float64 `json:"seeds,omitempty"`

	Iterations int      `json:"iterations"`
	Root       *float64 `json:"root,omitempty"`
	FRoot      *float64 `json:"f_root,omitempty"`
	Rate       *float64 `json:"empirical_rate,omitempty"`
	RateNote   string   `json:"rate_note,omitempty"`

	Iterates []rootfind.Iterate `json:"-"`
}

// Xs returns the x sequence of the run.
func (r Run) Xs() []float64 {
	out := make([]float64, len(r.Iterates))
	for i, it := range r.Iterates {
		out[i] = it.X
	}
	return out
}

// FXs returns the f(x) sequence of the run.
func (r Run) FXs() []float64 {
	out := make([]float64, len(r.Iterates))
	for i, it := range r.Iterates {
		out[i] = it.FX
	}
	return out
}

// HasRoot reports whether the run produced any estimate.
func (r Run) HasRoot() bool { return r.Root != nil }

// Finite returns a pointer to v, or nil when v is NaN or infinite, so the
// value survives JSON encoding.
func Finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ByFunction groups runs by function id, preserving order.
func (r *Report) ByFunction() [][]Run {
	var groups [][]Run
	idx := map[string]int{}
	for _, run := range r.Runs {
		i, ok := idx[run.FunctionID]
		if !ok {
			i = len(groups)
			idx[run.FunctionID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], run)
	}
	return groups
}
