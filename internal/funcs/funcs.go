// Package funcs compiles textual function definitions such as
// "x**2 - 4*sin(x)" into rootfind evaluators.
//
// Expressions use expr-lang syntax over a single variable x. The constants
// pi and e and the usual elementary functions are available; ** and ^ both
// denote exponentiation.
package funcs

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"rootfind/pkg/rootfind"
)

// env is the evaluation environment. A fresh value is built per call so
// compiled programs can be shared across goroutines.
type env struct {
	X  float64 `expr:"x"`
	Pi float64 `expr:"pi"`
	E  float64 `expr:"e"`
}

var unary = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
}

func options() []expr.Option {
	opts := []expr.Option{expr.Env(env{}), expr.AsFloat64()}
	for name, fn := range unary {
		fn := fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			v, err := toFloat(params[0])
			if err != nil {
				return nil, err
			}
			return fn(v), nil
		}, new(func(float64) float64)))
	}
	return opts
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// Compile parses and type-checks src. The returned evaluator yields NaN if
// evaluation fails at run time, which cannot happen for an expression that
// compiled against the numeric environment.
func Compile(src string) (rootfind.Func, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("compile expression: empty source")
	}
	program, err := expr.Compile(src, options()...)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", src, err)
	}
	return evaluator(program), nil
}

func evaluator(program *vm.Program) rootfind.Func {
	return func(x float64) float64 {
		out, err := expr.Run(program, env{X: x, Pi: math.Pi, E: math.E})
		if err != nil {
			return math.NaN()
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN()
		}
		return v
	}
}

// Function is a named test function with an optional derivative.
type Function struct {
	ID         string
	Name       string
	Expr       string
	Derivative string

	F      rootfind.Func
	FPrime rootfind.Func // nil when no derivative was supplied
}

// New compiles a Function. An empty derivative leaves FPrime nil.
func New(id, name, src, derivative string) (*Function, error) {
	f, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", id, err)
	}
	fn := &Function{ID: id, Name: name, Expr: src, Derivative: derivative, F: f}
	if fn.Name == "" {
		fn.Name = fmt.Sprintf("%s(x) = %s", id, src)
	}
	if strings.TrimSpace(derivative) != "" {
		fp, err := Compile(derivative)
		if err != nil {
			return nil, fmt.Errorf("function %s derivative: %w", id, err)
		}
		fn.FPrime = fp
	}
	return fn, nil
}

// HasDerivative reports whether Newton's method can run on the function.
func (f *Function) HasDerivative() bool {
	return f.FPrime != nil
}
