// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ZipfDist is a Zipfian (power law) distribution over the positive
// integers with exponent C:
//
//	P(x) = x^-C / Zetac(C)
//
// The normalizer is the complemented zeta function ζ(C)-1, so for C > 1
// the masses at x >= 2 sum to 1. C <= 1 is accepted and evaluated
// through the analytic continuation of ζ, which yields values that are
// not a probability distribution but are still well defined for curve
// fitting.
//
// The PMF is 0 at x <= 0. x^-C diverges at 0 for C > 0, and the law
// has no meaning for non-positive ranks.
type ZipfDist struct {
	C float64
}

// PMF returns the mass at int(x).
func (d ZipfDist) PMF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	return d.Density(float64(floorInt(x)))
}

// Density evaluates the power law at a real-valued x. It is 0 for
// x <= 0.
func (d ZipfDist) Density(x float64) float64 {
	if math.IsNaN(x) || math.IsNaN(d.C) {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return math.Pow(x, -d.C) / Zetac(d.C)
}

func (d ZipfDist) Bounds() (float64, float64) {
	return 1, inf
}
