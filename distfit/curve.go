// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"fmt"
	"math"

	"github.com/distfit/distfit/stats"
)

// maxCurvePoints bounds the size of a Curve.
const maxCurvePoints = 1 << 22

// Curve samples the fitted models on a grid finer than the integer
// support, for drawing smooth lines over the empirical bar chart.
type Curve struct {
	// Xs are the grid points, from Empirical.Min to Empirical.Max.
	Xs []float64

	// Ys[m][i] is the density of model m at Xs[i].
	Ys [NumModels][]float64
}

// Curves evaluates the real-valued extension of each fitted model at
// Min, Min+step, ... up to Max. The beta-binomial is evaluated at the
// offset x-Min with the trial count fixed to the support size; the
// Zipfian at x itself.
func Curves(r *Result, step float64) (*Curve, error) {
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, fmt.Errorf("distfit: curve step must be positive and finite, got %v", step)
	}
	lo, hi := float64(r.Empirical.Min), float64(r.Empirical.Max)
	steps := math.Floor((hi-lo)/step + 1e-9)
	if steps+1 > maxCurvePoints {
		return nil, fmt.Errorf("distfit: curve step %v gives more than %d points", step, maxCurvePoints)
	}

	c := &Curve{Xs: make([]float64, int(steps)+1)}
	for i := range c.Xs {
		c.Xs[i] = math.Min(lo+float64(i)*step, hi)
	}
	offsets := make([]float64, len(c.Xs))
	for i, x := range c.Xs {
		offsets[i] = x - lo
	}
	c.Ys[DiscreteUniform] = stats.DensityEach(r.Uniform(), c.Xs)
	c.Ys[BetaBinomial] = stats.DensityEach(r.BetaBinomial(), offsets)
	c.Ys[Zipfian] = stats.DensityEach(r.Zipf(), c.Xs)
	return c, nil
}
