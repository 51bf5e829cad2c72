package funcs_test

import (
	"math"
	"sync"
	"testing"

	"rootfind/internal/funcs"
)

func TestCompile_Evaluates(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x**2 - 1", 3, 8},
		{"x^2 - 1", 3, 8},
		{"x**2 - 4*sin(x)", 0, 0},
		{"x**3 - 3*x**2 + 3*x - 1", 1, 0},
		{"cos(x) - x", 0, 1},
		{"exp(x) - e", 1, 0},
		{"sin(pi/2)", 0, 1},
		{"sqrt(x) + 2", 9, 5},
		{"2", 7, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f, err := funcs.Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.src, err)
			}
			if got := f(tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("f(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{"", "x +", "y * 2", "sin(x, x)", `"text"`} {
		if _, err := funcs.Compile(src); err == nil {
			t.Errorf("Compile(%q): expected error", src)
		}
	}
}

func TestNew_DerivativeOptional(t *testing.T) {
	fn, err := funcs.New("f2", "", "x**2 - 1", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fn.HasDerivative() {
		t.Error("expected no derivative")
	}
	if fn.Name != "f2(x) = x**2 - 1" {
		t.Errorf("Name = %q", fn.Name)
	}

	fn, err = funcs.New("f2", "f2(x) = x^2 - 1", "x**2 - 1", "2*x")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !fn.HasDerivative() || fn.FPrime(1.5) != 3 {
		t.Errorf("derivative not compiled: %v", fn.FPrime)
	}
}

func TestNew_BadDerivative(t *testing.T) {
	if _, err := funcs.New("f", "", "x", "2 *"); err == nil {
		t.Error("expected derivative compile error")
	}
}

func TestCompile_ConcurrentUse(t *testing.T) {
	f, err := funcs.Compile("x**2 - 4*sin(x)")
	if err != nil {
		t.Fatal(err)
	}
	want := f(1.25)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := f(1.25); got != want {
					t.Errorf("concurrent eval = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
