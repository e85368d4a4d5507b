// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// DiscreteUniformDist is a discrete uniform distribution over the
// integers Lo through Hi, inclusive.
type DiscreteUniformDist struct {
	Lo, Hi int
}

// N returns the number of integers in the support of d.
func (d DiscreteUniformDist) N() int {
	return d.Hi - d.Lo + 1
}

// PMF is 1/N for every integer in [d.Lo, d.Hi] and 0 elsewhere.
func (d DiscreteUniformDist) PMF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	k := floorInt(x)
	if k < d.Lo || k > d.Hi || d.N() <= 0 {
		return 0
	}
	return 1 / float64(d.N())
}

// Density is 1/N everywhere on [d.Lo, d.Hi].
func (d DiscreteUniformDist) Density(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < float64(d.Lo) || x > float64(d.Hi) || d.N() <= 0 {
		return 0
	}
	return 1 / float64(d.N())
}

func (d DiscreteUniformDist) Bounds() (float64, float64) {
	return float64(d.Lo), float64(d.Hi)
}

func (d DiscreteUniformDist) Mean() float64 {
	return (float64(d.Lo) + float64(d.Hi)) / 2
}

func (d DiscreteUniformDist) Variance() float64 {
	n := float64(d.N())
	return (n*n - 1) / 12
}
