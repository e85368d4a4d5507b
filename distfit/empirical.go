// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"math"

	"github.com/distfit/distfit/stats"
)

// MaxSupport is the largest support (max - min + 1) accepted. Every
// integer in the range gets a probability slot, so a sparse sample
// with a huge range would otherwise allocate without bound.
const MaxSupport = 1 << 24

// Empirical is the observed distribution of an integer sample over
// the contiguous range from its minimum to its maximum. Integers in
// that range that never occur are part of the support with count 0.
type Empirical struct {
	// Min and Max are the smallest and largest sample values.
	Min, Max int

	// N is the number of observations.
	N int

	// Counts[i] is the number of observations equal to Min+i.
	Counts []int

	// Probs[i] is Counts[i] / N.
	Probs []float64
}

// NewEmpirical builds the empirical distribution of xs. It returns an
// *InvalidInputError if xs is empty or spans more than MaxSupport
// integers.
func NewEmpirical(xs []int) (*Empirical, error) {
	if len(xs) == 0 {
		return nil, invalidInput("%v", stats.ErrSampleSize)
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	// The unsigned difference is exact even where hi-lo overflows.
	if span := uint64(hi) - uint64(lo); span >= MaxSupport {
		return nil, invalidInput("support [%d, %d] exceeds %d values", lo, hi, MaxSupport)
	}

	e := &Empirical{Min: lo, Max: hi, N: len(xs)}
	n := hi - lo + 1
	e.Counts = make([]int, n)
	for _, x := range xs {
		e.Counts[x-lo]++
	}
	e.Probs = make([]float64, n)
	for i, c := range e.Counts {
		e.Probs[i] = float64(c) / float64(e.N)
	}
	return e, nil
}

// Len returns the size of the support, Max - Min + 1.
func (e *Empirical) Len() int {
	return len(e.Counts)
}

// Support returns the support values Min, Min+1, ..., Max.
func (e *Empirical) Support() []float64 {
	xs := make([]float64, e.Len())
	for i := range xs {
		xs[i] = float64(e.Min + i)
	}
	return xs
}

// Offsets returns the rank positions 0, 1, ..., Len()-1 of the
// support.
func (e *Empirical) Offsets() []float64 {
	xs := make([]float64, e.Len())
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// Stats are descriptive statistics of a raw sample. StdDev and
// Variance use the population convention.
type Stats struct {
	Mean     float64
	StdDev   float64
	Range    float64
	Variance float64
	IQR      float64
}

// Describe computes the descriptive statistics of xs. All fields are
// NaN if xs is empty.
func Describe(xs []int) Stats {
	s := stats.Sample{Xs: make([]float64, len(xs))}
	for i, x := range xs {
		s.Xs[i] = float64(x)
	}
	s.Sort()
	return Stats{
		Mean:     s.Mean(),
		StdDev:   s.StdDev(),
		Range:    s.Range(),
		Variance: s.Variance(),
		IQR:      s.IQR(),
	}
}

// Ints converts float-valued observations to integers. It returns an
// *InvalidInputError if any value is not a finite integer.
func Ints(xs []float64) ([]int, error) {
	out := make([]int, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, invalidInput("value %v at index %d is not an integer", x, i)
		}
		if math.Abs(x) > 1<<53 {
			return nil, invalidInput("value %v at index %d is out of range", x, i)
		}
		out[i] = int(x)
	}
	return out, nil
}
