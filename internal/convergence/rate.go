// Package convergence estimates the empirical order of convergence of an
// iterate sequence.
package convergence

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when the sequence is too short, or too
// many of its errors are below the noise floor, to fit a rate.
var ErrInsufficientData = errors.New("convergence: insufficient data")

const (
	// MinIterates is the shortest sequence Rate will consider.
	MinIterates = 4
	// MinPairs is the number of usable consecutive error pairs required.
	MinPairs = 3
	// NoiseFloor drops errors too small to carry a meaningful logarithm.
	NoiseFloor = 1e-10
	// Window is how many trailing per-pair rates are averaged.
	Window = 3
)

// Rate estimates p in |e_{n+1}| ≈ C|e_n|^p.
//
// The root is unknown, so the final iterate stands in for it and
// e_i = |x_i - x_final| for every earlier iterate. Pairs where either error
// is at or below NoiseFloor are skipped. Each remaining pair contributes
// ln(e_{i+1}) / ln(e_i) (0 when e_i == 1) and the result is the mean of the
// last Window contributions.
func Rate(xs []float64) (float64, error) {
	if len(xs) < MinIterates {
		return 0, ErrInsufficientData
	}

	star := xs[len(xs)-1]
	errs := make([]float64, len(xs)-1)
	for i, x := range xs[:len(xs)-1] {
		errs[i] = math.Abs(x - star)
	}

	var rates []float64
	for i := 0; i+1 < len(errs); i++ {
		e1, e2 := errs[i], errs[i+1]
		if e1 <= NoiseFloor || e2 <= NoiseFloor {
			continue
		}
		if e1 == 1 {
			rates = append(rates, 0)
			continue
		}
		rates = append(rates, math.Log(e2)/math.Log(e1))
	}
	if len(rates) < MinPairs {
		return 0, ErrInsufficientData
	}

	tail := rates[len(rates)-min(Window, len(rates)):]
	var sum float64
	for _, r := range tail {
		sum += r
	}
	return sum / float64(len(tail)), nil
}

// Label buckets an empirical rate into the usual names.
func Label(p float64) string {
	switch {
	case p < 0.5:
		return "Sublinear"
	case p < 1.2:
		return "Linear"
	case p < 1.8:
		return "Superlinear"
	default:
		return "Quadratic"
	}
}
