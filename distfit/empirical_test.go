// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmpirical(t *testing.T) {
	e, err := NewEmpirical([]int{1, 1, 2, 2, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, e.Min)
	require.Equal(t, 3, e.Max)
	require.Equal(t, 6, e.N)
	require.Equal(t, 3, e.Len())
	require.Equal(t, []int{2, 3, 1}, e.Counts)
	require.InDeltaSlice(t, []float64{1.0 / 3, 0.5, 1.0 / 6}, e.Probs, 1e-12)
	require.Equal(t, []float64{1, 2, 3}, e.Support())
	require.Equal(t, []float64{0, 1, 2}, e.Offsets())
}

func TestNewEmpiricalGaps(t *testing.T) {
	e, err := NewEmpirical([]int{5, -2, 5, 1})
	require.NoError(t, err)
	require.Equal(t, -2, e.Min)
	require.Equal(t, 8, e.Len())
	require.Equal(t, []int{1, 0, 0, 1, 0, 0, 0, 2}, e.Counts)
	require.Equal(t, 0.0, e.Probs[1])
}

func TestNewEmpiricalInvalid(t *testing.T) {
	var invalid *InvalidInputError

	_, err := NewEmpirical(nil)
	require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %v", err)

	_, err = NewEmpirical([]int{math.MinInt64, math.MaxInt64})
	require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %v", err)

	_, err = NewEmpirical([]int{0, MaxSupport})
	require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %v", err)

	_, err = NewEmpirical([]int{0, MaxSupport - 1})
	require.NoError(t, err)
}

func TestEmpiricalProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		xs := make([]int, 1+r.Intn(100))
		lo := r.Intn(50) - 25
		for j := range xs {
			xs[j] = lo + r.Intn(1+r.Intn(30))
		}
		e, err := NewEmpirical(xs)
		require.NoError(t, err)

		min, max := xs[0], xs[0]
		for _, x := range xs {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		require.Equal(t, max-min+1, e.Len())

		var sum float64
		var count int
		for j, p := range e.Probs {
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
			count += e.Counts[j]
		}
		require.InDelta(t, 1, sum, 1e-9)
		require.Equal(t, len(xs), count)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]int{3, 1, 2, 2, 1, 2})
	require.InDelta(t, 11.0/6, s.Mean, 1e-12)
	require.InDelta(t, 17.0/36, s.Variance, 1e-12)
	require.InDelta(t, math.Sqrt(17.0/36), s.StdDev, 1e-12)
	require.Equal(t, 2.0, s.Range)
	require.InDelta(t, 0.75, s.IQR, 1e-12)
}

func TestInts(t *testing.T) {
	xs, err := Ints([]float64{3, -2, 0, 7})
	require.NoError(t, err)
	require.Equal(t, []int{3, -2, 0, 7}, xs)

	var invalid *InvalidInputError
	for _, bad := range [][]float64{
		{1, 2.5},
		{math.NaN()},
		{math.Inf(1)},
		{1e300},
	} {
		_, err := Ints(bad)
		require.True(t, errors.As(err, &invalid), "%v: want InvalidInputError, got %v", bad, err)
	}
}
