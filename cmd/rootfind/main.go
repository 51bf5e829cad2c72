// rootfind compares bisection, Newton's method and the secant method.
//
// Usage:
//
//	rootfind compare [--scenario=classic | --scenario-file=<path>] [--format=ascii|markdown|csv|json] [--series]
//	rootfind solve <method> --expr=<f(x)> [--deriv=<f'(x)>] [--a= --b= | --x0= [--x1=]]
//	rootfind trace <method> --expr=<f(x)> ...
//	rootfind scenarios [show <name>]
//	rootfind serve
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
