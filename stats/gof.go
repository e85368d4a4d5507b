// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Goodness-of-fit metrics comparing an observed probability vector O
// with an expected (fitted) probability vector E over the same
// support. O and E must have the same length; the functions panic
// otherwise.
//
// A metric that cannot be computed for its inputs is reported as NaN.
// NaN in either vector also yields NaN.

// ChiSquare returns Pearson's chi-square statistic,
//
//	Σ (O_i - E_i)² / E_i.
//
// It is NaN if any E_i is 0, since that term is a division by zero.
func ChiSquare(o, e []float64) float64 {
	checkLen(o, e)
	if len(o) == 0 || floats.HasNaN(o) || floats.HasNaN(e) {
		return nan
	}
	for _, x := range e {
		if x == 0 {
			return nan
		}
	}
	return stat.ChiSquare(o, e)
}

// RSquare returns the coefficient of determination of E as a
// predictor of O,
//
//	1 - Σ (O_i - E_i)² / Σ (O_i - mean(O))².
//
// It is NaN if all O_i are equal, since the denominator is 0.
func RSquare(o, e []float64) float64 {
	checkLen(o, e)
	if len(o) == 0 || floats.HasNaN(o) || floats.HasNaN(e) {
		return nan
	}
	mean := stat.Mean(o, nil)
	var ssTot float64
	for _, x := range o {
		ssTot += (x - mean) * (x - mean)
	}
	if ssTot == 0 {
		return nan
	}
	return stat.RSquaredFrom(e, o, nil)
}

// RMSE returns the root mean square error sqrt(mean((O_i - E_i)²)).
func RMSE(o, e []float64) float64 {
	checkLen(o, e)
	if len(o) == 0 || floats.HasNaN(o) || floats.HasNaN(e) {
		return nan
	}
	return floats.Distance(o, e, 2) / math.Sqrt(float64(len(o)))
}

// KS returns the Kolmogorov–Smirnov statistic: the largest absolute
// difference between the running sums of O and E, taken in support
// order. The running sums are not renormalized, so a fitted vector
// whose mass doesn't sum to 1 is penalized for it.
func KS(o, e []float64) float64 {
	checkLen(o, e)
	if len(o) == 0 || floats.HasNaN(o) || floats.HasNaN(e) {
		return nan
	}
	co := floats.CumSum(make([]float64, len(o)), o)
	ce := floats.CumSum(make([]float64, len(e)), e)
	if floats.HasNaN(ce) {
		// Opposite infinities.
		return nan
	}
	return floats.Distance(co, ce, math.Inf(1))
}

func checkLen(o, e []float64) {
	if len(o) != len(e) {
		panic("stats: observed and expected lengths differ")
	}
}
