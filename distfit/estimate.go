// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"context"

	"github.com/distfit/distfit/curvefit"
	"github.com/distfit/distfit/stats"
)

// BetaBinomialMaxParam is the upper bound on both beta-binomial
// shape parameters. The lower bound is 0.
const BetaBinomialMaxParam = 1000

// FitBetaBinomial estimates the beta-binomial shape parameters
// (a, b) in [0, BetaBinomialMaxParam] that minimize the squared error
// against e.Probs. The model is evaluated at the rank offsets
// 0..n-1 of the support with N = n = e.Len().
//
// On failure it returns a *FitFailure wrapping the solver's error.
func FitBetaBinomial(ctx context.Context, e *Empirical, opts *Options) (stats.BetaBinomialDist, *curvefit.Result, error) {
	opts = opts.withDefaults()
	n := e.Len()
	prob := curvefit.Problem{
		F: func(k float64, p []float64) float64 {
			return stats.BetaBinomialDist{N: n, Alpha: p[0], Beta: p[1]}.PMF(k)
		},
		Xs:    e.Offsets(),
		Ys:    e.Probs,
		Lower: []float64{0, 0},
		Upper: []float64{BetaBinomialMaxParam, BetaBinomialMaxParam},
	}
	p0 := []float64{opts.BetaBinomialInit[0], opts.BetaBinomialInit[1]}
	res, err := curvefit.LeastSquares(ctx, prob, p0, &opts.Solver)
	if err != nil {
		return stats.BetaBinomialDist{}, nil, &FitFailure{Model: BetaBinomial, Err: err}
	}
	return stats.BetaBinomialDist{N: n, Alpha: res.Params[0], Beta: res.Params[1]}, res, nil
}

// FitZipf estimates the Zipfian exponent c that minimizes the squared
// error against e.Probs. Unlike the beta-binomial, the model is
// evaluated at the raw support values; non-positive values have mass
// 0 under every exponent.
//
// The exponent is unbounded. With only one or two positive support
// points the cost can be nearly flat, and the fit may settle on a large
// negative c, where ζ(c) oscillates. Such a fit is still reported as
// converged.
//
// On failure it returns a *FitFailure wrapping the cause.
func FitZipf(ctx context.Context, e *Empirical, opts *Options) (stats.ZipfDist, *curvefit.Result, error) {
	opts = opts.withDefaults()
	if e.Max <= 0 {
		return stats.ZipfDist{}, nil, &FitFailure{Model: Zipfian, Err: ErrNoPositiveSupport}
	}
	prob := curvefit.Problem{
		F: func(x float64, p []float64) float64 {
			return stats.ZipfDist{C: p[0]}.PMF(x)
		},
		Xs: e.Support(),
		Ys: e.Probs,
	}
	res, err := curvefit.LeastSquares(ctx, prob, []float64{opts.ZipfInit}, &opts.Solver)
	if err != nil {
		return stats.ZipfDist{}, nil, &FitFailure{Model: Zipfian, Err: err}
	}
	return stats.ZipfDist{C: res.Params[0]}, res, nil
}
