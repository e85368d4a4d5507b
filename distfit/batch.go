// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FitAll fits each sample set independently, running up to
// parallelism fits at once (GOMAXPROCS if parallelism <= 0).
// results[i] corresponds to samples[i].
//
// If any sample set is invalid, FitAll returns the first such error,
// annotated with its index, and cancels the fits still running.
func FitAll(ctx context.Context, samples [][]int, opts *Options, parallelism int) ([]*Result, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(samples))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range samples {
		i := i
		g.Go(func() error {
			res, err := Fit(ctx, samples[i], opts)
			if err != nil {
				return fmt.Errorf("sample set %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
