// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BetaBinomialDist is a beta-binomial distribution: the number of
// successes in N Bernoulli trials whose success probability is drawn
// from Beta(Alpha, Beta).
//
// The PMF is
//
//	P(k) = C(N, k) · B(Alpha+k, Beta+N-k) / B(Alpha, Beta)
//
// where B is the Euler beta function. The random variable is a rank
// position 0..N, not a raw observed value; callers with a support
// that starts elsewhere must offset into it.
type BetaBinomialDist struct {
	// N is the number of trials. N >= 0.
	N int

	// Alpha and Beta are the shape parameters of the beta prior.
	// Both must be > 0 for the PMF to be finite.
	Alpha, Beta float64
}

// PMF is the probability of exactly int(k) successes.
func (d BetaBinomialDist) PMF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	ki := floorInt(k)
	if ki < 0 || ki > d.N {
		return 0
	}
	return d.Density(float64(ki))
}

// Density evaluates the beta-binomial mass formula at a real-valued
// x in [0, d.N], using the generalized binomial coefficient. It
// agrees with PMF at integers and is 0 outside [0, d.N].
//
// This is useful for drawing smooth curves through the PMF.
func (d BetaBinomialDist) Density(x float64) float64 {
	if math.IsNaN(x) || math.IsNaN(d.Alpha) || math.IsNaN(d.Beta) {
		return nan
	}
	n := float64(d.N)
	if x < 0 || x > n {
		return 0
	}
	// Work in log space. B(a, b) underflows quickly as the
	// support grows.
	lc := combin.LogGeneralizedBinomial(n, x)
	lb := mathext.Lbeta(d.Alpha+x, d.Beta+n-x) - mathext.Lbeta(d.Alpha, d.Beta)
	return math.Exp(lc + lb)
}

func (d BetaBinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BetaBinomialDist) Mean() float64 {
	return float64(d.N) * d.Alpha / (d.Alpha + d.Beta)
}

func (d BetaBinomialDist) Variance() float64 {
	n, a, b := float64(d.N), d.Alpha, d.Beta
	return n * a * b * (a + b + n) / ((a + b) * (a + b) * (a + b + 1))
}
