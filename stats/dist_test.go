// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestDiscreteUniformDist(t *testing.T) {
	dist := DiscreteUniformDist{Lo: 1, Hi: 3}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1:  0,
			0:   0,
			1:   1.0 / 3,
			1.5: 1.0 / 3,
			2:   1.0 / 3,
			3:   1.0 / 3,
			4:   0,
		})
	testFunc(t, fmt.Sprintf("%+v.Density", dist), dist.Density,
		map[float64]float64{
			0.99: 0,
			1.01: 1.0 / 3,
			2.5:  1.0 / 3,
			3.01: 0,
		})

	single := DiscreteUniformDist{Lo: 5, Hi: 5}
	if got := single.PMF(5); got != 1 {
		t.Errorf("%+v.PMF(5) = %v; want 1", single, got)
	}
}

func TestBetaBinomialDist(t *testing.T) {
	// With a uniform prior, the beta-binomial is uniform on 0..N.
	dist := BetaBinomialDist{N: 4, Alpha: 1, Beta: 1}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1: 0,
			0:  0.2,
			1:  0.2,
			2:  0.2,
			3:  0.2,
			4:  0.2,
			5:  0,
		})

	// N=1 collapses to Bernoulli(Alpha/(Alpha+Beta)).
	dist = BetaBinomialDist{N: 1, Alpha: 2, Beta: 3}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			0: 0.6,
			1: 0.4,
		})

	for _, d := range []BetaBinomialDist{
		{N: 10, Alpha: 0.5, Beta: 0.5},
		{N: 10, Alpha: 2, Beta: 7},
		{N: 50, Alpha: 900, Beta: 3},
		{N: 400, Alpha: 1000, Beta: 1000},
	} {
		var sum, mean float64
		for k := 0; k <= d.N; k++ {
			p := d.PMF(float64(k))
			sum += p
			mean += float64(k) * p
		}
		if !aeq(1, sum) {
			t.Errorf("%+v: PMF sums to %v; want 1", d, sum)
		}
		if math.Abs(mean-d.Mean()) > 1e-6*float64(d.N) {
			t.Errorf("%+v: PMF mean %v; want %v", d, mean, d.Mean())
		}
	}
}

func TestBetaBinomialDensity(t *testing.T) {
	d := BetaBinomialDist{N: 6, Alpha: 2.5, Beta: 1.5}
	for k := 0; k <= d.N; k++ {
		if p, q := d.PMF(float64(k)), d.Density(float64(k)); !aeq(p, q) {
			t.Errorf("%+v: PMF(%d)=%v but Density=%v", d, k, p, q)
		}
	}
	// Between two points the curve is continuous, so the midpoint
	// lies near its neighbors.
	lo, mid, hi := d.Density(3), d.Density(3.5), d.Density(4)
	if mid < math.Min(lo, hi)*0.9 || mid > math.Max(lo, hi)*1.1 {
		t.Errorf("Density(3.5) = %v; neighbors %v, %v", mid, lo, hi)
	}
	if d.Density(-0.1) != 0 || d.Density(6.1) != 0 {
		t.Errorf("Density outside [0, N] should be 0")
	}

	// A boundary value of the prior is not a proper density.
	d = BetaBinomialDist{N: 3, Alpha: 0, Beta: 1}
	if p := d.PMF(0); !math.IsNaN(p) && !math.IsInf(p, 0) {
		t.Errorf("%+v.PMF(0) = %v; want non-finite", d, p)
	}
	d = BetaBinomialDist{N: 3, Alpha: nan, Beta: 1}
	if p := d.PMF(1); !math.IsNaN(p) {
		t.Errorf("%+v.PMF(1) = %v; want NaN", d, p)
	}
}

func TestZipfDist(t *testing.T) {
	dist := ZipfDist{C: 2}
	z := math.Pi*math.Pi/6 - 1
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-2:  0,
			0:   0,
			1:   1 / z,
			2:   1 / (4 * z),
			2.7: 1 / (4 * z),
			10:  1 / (100 * z),
		})

	// The masses from 2 up sum to 1.
	var sum float64
	for x := 1e6; x >= 2; x-- {
		sum += dist.PMF(x)
	}
	if math.Abs(sum-1) > 1e-5 {
		t.Errorf("Σ PMF(2..1e6) = %v; want ≈1", sum)
	}

	if p := (ZipfDist{C: 1}).PMF(3); p != 0 {
		t.Errorf("PMF at the zeta pole = %v; want 0", p)
	}
	if p := (ZipfDist{C: nan}).PMF(3); !math.IsNaN(p) {
		t.Errorf("PMF with NaN exponent = %v; want NaN", p)
	}
	if p := (ZipfDist{C: 0.5}).Density(4); !aeq(0.5/Zetac(0.5), p) {
		t.Errorf("Density(4) for c=0.5 = %v", p)
	}
}

func TestZetac(t *testing.T) {
	testFunc(t, "Zetac", Zetac, map[float64]float64{
		-4:   -1,
		-3:   1.0/120 - 1,
		-2:   -1,
		-1:   -1.0/12 - 1,
		-0.5: -0.20788622497735457 - 1,
		0:    -1.5,
		0.5:  -1.4603545088095868 - 1,
		0.9:  -9.4301140968003897 - 1,
		1.1:  10.584448464950810 - 1,
		2:    0.6449340668482264,
		3:    0.2020569031595942,
		4:    0.0823232337111382,
	})
	if z := Zetac(1); !math.IsInf(z, 1) {
		t.Errorf("Zetac(1) = %v; want +Inf", z)
	}
	if z := Zetac(60); math.Abs(z/math.Pow(2, -60)-1) > 1e-9 {
		t.Errorf("Zetac(60) = %v; want ≈2^-60", z)
	}
	if z := Zetac(inf); z != 0 {
		t.Errorf("Zetac(+Inf) = %v; want 0", z)
	}
}

func TestPMFEach(t *testing.T) {
	got := PMFEach(DiscreteUniformDist{Lo: 0, Hi: 3}, []float64{0, 1, 2, 3})
	for i, p := range got {
		if p != 0.25 {
			t.Errorf("PMFEach[%d] = %v; want 0.25", i, p)
		}
	}
}
