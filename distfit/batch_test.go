// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitAll(t *testing.T) {
	samples := [][]int{
		{1, 1, 2, 2, 2, 3},
		{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		{1, 1, 1, 1, 2, 2, 3, 4},
		{1, 2, 2, 3, 3, 3},
		{2, 3, 3, 4, 4, 4, 4, 5, 5, 7, 9},
	}
	for _, par := range []int{0, 1, 3} {
		results, err := FitAll(context.Background(), samples, nil, par)
		require.NoError(t, err)
		require.Len(t, results, len(samples))
		for i, xs := range samples {
			want, err := Fit(context.Background(), xs, nil)
			require.NoError(t, err)
			require.Equal(t, want.Table(), results[i].Table(), "parallelism %d, sample set %d", par, i)
			require.Equal(t, want.Params, results[i].Params)
		}
	}
}

func TestFitAllInvalid(t *testing.T) {
	samples := [][]int{{1, 2, 3}, {}, {4, 4}}
	results, err := FitAll(context.Background(), samples, nil, 2)
	require.Nil(t, results)
	require.ErrorContains(t, err, "sample set 1")
	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %v", err)
}

func TestFitAllEmpty(t *testing.T) {
	results, err := FitAll(context.Background(), nil, nil, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}
