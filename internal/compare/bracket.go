package compare

import (
	"errors"
	"fmt"

	"rootfind/pkg/rootfind"
)

// ErrNoBracket is returned when none of the candidate intervals has a sign change.
var ErrNoBracket = errors.New("compare: bisection failed for all intervals")

// FirstBracket runs bisection on each candidate interval in order and
// returns the first run that did not fail its precondition, with the
// interval used and the number of intervals tried. Invalid options or
// endpoints stop the search with ErrInvalidOptions.
func FirstBracket(f rootfind.Func, intervals [][2]float64, opts rootfind.BisectOptions) (rootfind.Result[rootfind.BisectStep], [2]float64, int, error) {
	var last rootfind.Result[rootfind.BisectStep]
	for i, iv := range intervals {
		res := rootfind.Bisect(f, iv[0], iv[1], opts)
		if err := res.Err(); errors.Is(err, rootfind.ErrInvalidOptions) {
			return res, [2]float64{}, i + 1, err
		}
		if !errors.Is(res.Err(), rootfind.ErrNoSignChange) {
			return res, iv, i + 1, nil
		}
		last = res
	}
	if len(intervals) == 0 {
		return last, [2]float64{}, 0, fmt.Errorf("%w: no intervals configured", ErrNoBracket)
	}
	return last, [2]float64{}, len(intervals), fmt.Errorf("%w (%d tried)", ErrNoBracket, len(intervals))
}
