package rootfind

import "math"

// Iterate is one point of the sequence produced by an engine.
type Iterate struct {
	X  float64 `json:"x"`
	FX float64 `json:"fx"`
}

// BisectStep is the construction used at one bisection pass: the bracket
// active on entry and the midpoint evaluated inside it.
type BisectStep struct {
	Iter      int     `json:"iter"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	HalfWidth float64 `json:"half_width"`
	C         float64 `json:"c"`
	FC        float64 `json:"fc"`
}

// TangentStep is the tangent line used at one Newton pass.
type TangentStep struct {
	Iter   int     `json:"iter"`
	X      float64 `json:"x"`
	FX     float64 `json:"fx"`
	FPrime float64 `json:"fprime"`
	Delta  float64 `json:"delta"`
	Next   float64 `json:"next"`
	FNext  float64 `json:"fnext"`
}

// SecantStep is the secant line through the two previous iterates.
type SecantStep struct {
	Iter   int     `json:"iter"`
	XPrev  float64 `json:"x_prev"`
	FXPrev float64 `json:"fx_prev"`
	XCur   float64 `json:"x_cur"`
	FXCur  float64 `json:"fx_cur"`
	Delta  float64 `json:"delta"`
	Next   float64 `json:"next"`
	FNext  float64 `json:"fnext"`
}

// Step constrains the per-step detail types.
type Step interface {
	BisectStep | TangentStep | SecantStep
}

// Result is the complete output of one engine call. Iterates and Steps are
// owned by the Result and are not modified after the engine returns.
type Result[S Step] struct {
	Method    Method
	Outcome   Outcome
	Criterion Criterion
	// Reason is set only when Outcome is PrecursorFailed.
	Reason   error
	Iterates []Iterate
	Steps    []S
}

// Err returns the precondition failure, or nil for converged and exhausted runs.
func (r Result[S]) Err() error {
	if r.Outcome == PrecursorFailed {
		return r.Reason
	}
	return nil
}

// Last returns the newest iterate. For an exhausted run this is the
// best-effort estimate.
func (r Result[S]) Last() (Iterate, bool) {
	if len(r.Iterates) == 0 {
		return Iterate{X: math.NaN(), FX: math.NaN()}, false
	}
	return r.Iterates[len(r.Iterates)-1], true
}

// Iterations is the number of completed loop passes.
func (r Result[S]) Iterations() int {
	return len(r.Steps)
}

// Xs returns a copy of the x sequence.
func (r Result[S]) Xs() []float64 {
	out := make([]float64, len(r.Iterates))
	for i, it := range r.Iterates {
		out[i] = it.X
	}
	return out
}

// FXs returns a copy of the f(x) sequence.
func (r Result[S]) FXs() []float64 {
	out := make([]float64, len(r.Iterates))
	for i, it := range r.Iterates {
		out[i] = it.FX
	}
	return out
}

// Summary drops the method-specific step detail so results of different
// engines can be handled uniformly.
func (r Result[S]) Summary() Summary {
	return Summary{
		Method:     r.Method,
		Outcome:    r.Outcome,
		Criterion:  r.Criterion,
		Reason:     r.Reason,
		Iterations: len(r.Steps),
		Iterates:   r.Iterates,
	}
}

// Summary is the method-agnostic view of a Result.
type Summary struct {
	Method     Method
	Outcome    Outcome
	Criterion  Criterion
	Reason     error
	Iterations int
	Iterates   []Iterate
}

// Err mirrors Result.Err.
func (s Summary) Err() error {
	if s.Outcome == PrecursorFailed {
		return s.Reason
	}
	return nil
}

// Last mirrors Result.Last.
func (s Summary) Last() (Iterate, bool) {
	if len(s.Iterates) == 0 {
		return Iterate{X: math.NaN(), FX: math.NaN()}, false
	}
	return s.Iterates[len(s.Iterates)-1], true
}

// Xs mirrors Result.Xs.
func (s Summary) Xs() []float64 {
	out := make([]float64, len(s.Iterates))
	for i, it := range s.Iterates {
		out[i] = it.X
	}
	return out
}

func fail[S Step](m Method, reason error, iterates []Iterate, steps []S) Result[S] {
	return Result[S]{Method: m, Outcome: PrecursorFailed, Reason: reason, Iterates: iterates, Steps: steps}
}
