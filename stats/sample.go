// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations.
//
// Variance and StdDev use the population convention (dividing by N,
// not N-1), since the sample is treated as the whole population being
// described.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, this returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Range returns max - min of the Sample, or NaN if it is empty.
func (s Sample) Range() float64 {
	lo, hi := s.Bounds()
	return hi - lo
}

// Mean returns the arithmetic mean of the Sample, or NaN if it is
// empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the population variance of the Sample, or NaN if
// it is empty.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	_, v := stat.PopMeanVariance(s.Xs, nil)
	return v
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the q'th quantile of the Sample, interpolating
// linearly between the order statistics that bracket position
// q·(N-1). q is clamped to [0, 1]. This is the R-7 definition used by
// most numerical packages.
//
// If the Sample is empty, this returns NaN.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 || math.IsNaN(q) {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	switch {
	case q <= 0:
		return s.Xs[0]
	case q >= 1:
		return s.Xs[len(s.Xs)-1]
	}

	h := q * float64(len(s.Xs)-1)
	lo := int(math.Floor(h))
	if lo+1 >= len(s.Xs) {
		return s.Xs[lo]
	}
	frac := h - float64(lo)
	return s.Xs[lo] + frac*(s.Xs[lo+1]-s.Xs[lo])
}

// IQR returns the interquartile range, Quantile(0.75) - Quantile(0.25).
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}
