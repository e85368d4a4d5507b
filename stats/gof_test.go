// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
	"testing"
)

func TestGoodnessOfFitUniform(t *testing.T) {
	o := []float64{1.0 / 3, 1.0 / 2, 1.0 / 6}
	e := PMFEach(DiscreteUniformDist{Lo: 1, Hi: 3}, []float64{1, 2, 3})

	for _, c := range []struct {
		name string
		f    func(o, e []float64) float64
		want float64
	}{
		{"ChiSquare", ChiSquare, 1.0 / 6},
		{"RSquare", RSquare, 0},
		{"RMSE", RMSE, math.Sqrt(1.0 / 54)},
		{"KS", KS, 1.0 / 6},
	} {
		if got := c.f(o, e); !aeq(c.want, got) {
			t.Errorf("%s = %v; want %v", c.name, got, c.want)
		}
	}
}

func TestGoodnessOfFitPerfect(t *testing.T) {
	o := []float64{0.1, 0.4, 0.3, 0.2}
	e := append([]float64(nil), o...)
	if got := ChiSquare(o, e); got != 0 {
		t.Errorf("ChiSquare(O, O) = %v; want 0", got)
	}
	if got := RSquare(o, e); got != 1 {
		t.Errorf("RSquare(O, O) = %v; want 1", got)
	}
	if got := RMSE(o, e); got != 0 {
		t.Errorf("RMSE(O, O) = %v; want 0", got)
	}
	if got := KS(o, e); got != 0 {
		t.Errorf("KS(O, O) = %v; want 0", got)
	}
}

func TestGoodnessOfFitNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := 1 + r.Intn(20)
		o, e := make([]float64, n), make([]float64, n)
		for j := range o {
			o[j], e[j] = r.Float64(), r.Float64()
		}
		if got := RMSE(o, e); !(got >= 0) {
			t.Fatalf("RMSE(%v, %v) = %v; want >= 0", o, e, got)
		}
		if got := KS(o, e); !(got >= 0) {
			t.Fatalf("KS(%v, %v) = %v; want >= 0", o, e, got)
		}
		e[r.Intn(n)] += 0.5
		if got := RMSE(o, e); !(got > 0) {
			t.Fatalf("RMSE of unequal vectors = %v; want > 0", got)
		}
	}
}

func TestGoodnessOfFitUndefined(t *testing.T) {
	// Zero expectation makes chi-square undefined but leaves the
	// rest alone.
	o := []float64{0.5, 0.25, 0.25}
	e := []float64{0, 0.5, 0.5}
	if got := ChiSquare(o, e); !math.IsNaN(got) {
		t.Errorf("ChiSquare with E_i=0 = %v; want NaN", got)
	}
	for name, got := range map[string]float64{
		"RSquare": RSquare(o, e),
		"RMSE":    RMSE(o, e),
		"KS":      KS(o, e),
	} {
		if math.IsNaN(got) {
			t.Errorf("%s with E_i=0 = NaN; want a number", name)
		}
	}

	// Constant observations make R² undefined.
	o = []float64{0.5, 0.5}
	if got := RSquare(o, []float64{0.4, 0.6}); !math.IsNaN(got) {
		t.Errorf("RSquare with constant O = %v; want NaN", got)
	}
	if got := RSquare([]float64{1}, []float64{1}); !math.IsNaN(got) {
		t.Errorf("RSquare with one point = %v; want NaN", got)
	}

	// A failed fit yields NaN everywhere.
	o = []float64{0.2, 0.8}
	e = []float64{nan, nan}
	for name, f := range map[string]func(o, e []float64) float64{
		"ChiSquare": ChiSquare, "RSquare": RSquare, "RMSE": RMSE, "KS": KS,
	} {
		if got := f(o, e); !math.IsNaN(got) {
			t.Errorf("%s with NaN expectation = %v; want NaN", name, got)
		}
	}
}

func TestGoodnessOfFitLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mismatched lengths did not panic")
		}
	}()
	RMSE([]float64{1, 2}, []float64{1})
}
