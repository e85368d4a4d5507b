// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A DiscreteDist is a discrete statistical distribution over the
// integers.
//
// The probability mass function takes a float64 for the random
// variable and rounds it down to the nearest integer. float64 values
// can exactly represent integers between ±2**53, so this shouldn't be
// an issue for any support this package deals with.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// integer.
	PMF(x float64) float64

	// Bounds returns the support of this distribution as a
	// closed interval [lo, hi]. PMF is 0 outside of it.
	Bounds() (lo, hi float64)
}

// A SmoothDist is a distribution whose mass function extends to a
// real-valued density between the integer points. Density agrees
// with PMF at integers.
type SmoothDist interface {
	DiscreteDist

	// Density returns the real-valued extension of the PMF at x.
	Density(x float64) float64
}

// PMFEach returns d.PMF(xs[i]) for each i.
func PMFEach(d DiscreteDist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PMF(x)
	}
	return res
}

// DensityEach returns d.Density(xs[i]) for each i.
func DensityEach(d SmoothDist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.Density(x)
	}
	return res
}

// floorInt rounds x down to an integer. int(x) truncates toward 0,
// so floor first.
func floorInt(x float64) int {
	return int(math.Floor(x))
}
