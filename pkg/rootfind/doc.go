// Package rootfind provides three iterative root-finding engines for scalar
// real functions: bisection, Newton's method and the secant method.
//
// Usage:
//
//	res := rootfind.Bisect(f, 0, 3, rootfind.BisectOptions{Stop: rootfind.DefaultStop()})
//	if err := res.Err(); err != nil {
//		// precondition failed (no sign change, flat derivative, flat secant)
//	}
//	root, _ := res.Last()
//
// Every engine is a pure function of its arguments: it evaluates the supplied
// Func values, runs a bounded loop and returns a Result holding the full
// iterate sequence, the per-step construction detail and a tagged Outcome.
// Engines keep no package-level state, so independent calls may run
// concurrently as long as the evaluators are reentrant.
package rootfind
