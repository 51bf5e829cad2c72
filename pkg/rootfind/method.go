package rootfind

import (
	"fmt"
	"strings"
)

// Method identifies one of the three engines.
type Method string

const (
	MethodBisection Method = "bisection"
	MethodNewton    Method = "newton"
	MethodSecant    Method = "secant"
)

// Methods lists every engine in reporting order.
func Methods() []Method {
	return []Method{MethodBisection, MethodNewton, MethodSecant}
}

// Order returns the theoretical convergence order of the method near a
// simple root: 1 for bisection, 2 for Newton, the golden ratio for secant.
func (m Method) Order() float64 {
	switch m {
	case MethodBisection:
		return 1
	case MethodNewton:
		return 2
	case MethodSecant:
		return 1.618033988749895
	default:
		return 0
	}
}

// ParseMethod accepts the canonical names plus the short aliases used on the
// command line (bisect, nr, sec).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bisection", "bisect":
		return MethodBisection, nil
	case "newton", "nr", "newton-raphson":
		return MethodNewton, nil
	case "secant", "sec":
		return MethodSecant, nil
	}
	return "", fmt.Errorf("unknown method %q (available: bisection, newton, secant)", s)
}
