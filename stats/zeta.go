// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Zetac returns ζ(s) - 1, where ζ is the Riemann zeta function
// extended to all real s != 1 by analytic continuation.
//
// Subtracting 1 directly from ζ(s) loses all precision as s grows,
// so for s > 1 this sums the series from 2 instead (the Hurwitz zeta
// function ζ(s, 2)). Zetac(1) is +Inf.
func Zetac(s float64) float64 {
	switch {
	case math.IsNaN(s):
		return nan
	case math.IsInf(s, 1):
		return 0
	case s == 1:
		return inf
	case s > 1:
		return mathext.Zeta(s, 2)
	case s >= 0:
		return zetaEta(s) - 1
	}
	return zetaReflect(s) - 1
}

// zetaEtaTerms is the number of terms used by zetaEta. The relative
// error of Borwein's method is about 3/(3+√8)^n.
const zetaEtaTerms = 30

// zetaEta computes ζ(s) for 0 <= s < 1 from the Dirichlet eta
// function,
//
//	ζ(s) = η(s) / (1 - 2^(1-s)),
//
// with η summed by Borwein's accelerated alternating series.
//
// Borwein, P. (2000) An efficient algorithm for the Riemann zeta
// function.
func zetaEta(s float64) float64 {
	const n = zetaEtaTerms
	// d[k] = n Σ_{i=0}^{k} (n+i-1)! 4^i / ((n-i)! (2i)!)
	var d [n + 1]float64
	t, sum := 1.0, 1.0
	d[0] = sum
	for i := 1; i <= n; i++ {
		fi := float64(i)
		t *= 4 * (n + fi - 1) * (n - fi + 1) / ((2 * fi) * (2*fi - 1))
		sum += t
		d[i] = sum
	}

	var eta float64
	for k := 0; k < n; k++ {
		term := (d[k] - d[n]) / math.Pow(float64(k+1), s)
		if k%2 == 1 {
			term = -term
		}
		eta += term
	}
	eta = -eta / d[n]
	return eta / (1 - math.Pow(2, 1-s))
}

// zetaReflect computes ζ(s) for s < 0 using the functional equation
//
//	ζ(s) = 2^s π^(s-1) sin(πs/2) Γ(1-s) ζ(1-s).
func zetaReflect(s float64) float64 {
	if math.Mod(s, 2) == 0 {
		// Trivial zeros. sin(πs/2) isn't exactly 0 in
		// floating point.
		return 0
	}
	z := 1 + mathext.Zeta(1-s, 2)
	return math.Pow(2, s) * math.Pow(math.Pi, s-1) * math.Sin(math.Pi*s/2) * math.Gamma(1-s) * z
}
