// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distfit fits discrete uniform, beta-binomial, and Zipfian
// models to the empirical distribution of an integer sample and scores
// each fit with chi-square, R², RMSE, and Kolmogorov–Smirnov
// statistics.
//
// Every call is independent: Fit holds no state between calls and may
// be called concurrently on different samples.
package distfit // import "github.com/distfit/distfit/distfit"

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"

	"github.com/distfit/distfit/curvefit"
	"github.com/distfit/distfit/stats"
)

// Options configure Fit. The zero value (or a nil *Options) is a
// reasonable default configuration.
type Options struct {
	// Solver configures the least-squares solver used for the
	// beta-binomial and Zipfian fits.
	Solver curvefit.Settings

	// BetaBinomialInit is the starting (a, b). If both are 0, the
	// fit starts at (1, 1).
	BetaBinomialInit [2]float64

	// ZipfInit is the starting exponent. If 0, the fit starts at
	// 2, away from the pole of the normalizer at 1.
	ZipfInit float64

	// Logger receives a warning for each model that fails to fit.
	// If nil, nothing is logged.
	Logger log.Logger
}

func (o *Options) withDefaults() *Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.BetaBinomialInit == [2]float64{} {
		out.BetaBinomialInit = [2]float64{1, 1}
	}
	if out.ZipfInit == 0 {
		out.ZipfInit = 2
	}
	if out.Logger == nil {
		out.Logger = log.NewNopLogger()
	}
	return &out
}

// Metrics are the goodness-of-fit statistics of one model. A metric
// that can't be computed is NaN; see IsUndefined.
type Metrics struct {
	ChiSquare float64
	RSquare   float64
	RMSE      float64
	KS        float64
}

// Get returns the value of metric m.
func (m Metrics) Get(metric Metric) float64 {
	switch metric {
	case ChiSquare:
		return m.ChiSquare
	case RSquare:
		return m.RSquare
	case RMSE:
		return m.RMSE
	case KS:
		return m.KS
	}
	return math.NaN()
}

func score(o, e []float64) Metrics {
	return Metrics{
		ChiSquare: stats.ChiSquare(o, e),
		RSquare:   stats.RSquare(o, e),
		RMSE:      stats.RMSE(o, e),
		KS:        stats.KS(o, e),
	}
}

// ModelFit is the fitted distribution of one model and its scores.
type ModelFit struct {
	Model Model

	// Params are the fitted parameters: none for the uniform,
	// (a, b) for the beta-binomial, and (c) for the Zipfian. They
	// are NaN if the fit failed.
	Params []float64

	// Density is the fitted probability of each support point,
	// aligned with Empirical.Probs. It is all NaN if the fit
	// failed.
	Density []float64

	Metrics Metrics

	// Solver describes the solver run. It is nil for the uniform
	// model and for failed fits.
	Solver *curvefit.Result

	// Err is the *FitFailure for this model, or nil.
	Err error
}

// Params are the fitted parameters of the beta-binomial (A, B) and
// Zipfian (C) models. A parameter is NaN if its fit failed.
type Params struct {
	A, B, C float64
}

// Result is the outcome of Fit. It always has the same shape: a
// failed model still has its ModelFit, with NaN values.
type Result struct {
	// Stats describe the raw sample.
	Stats Stats

	// Empirical is the observed distribution.
	Empirical *Empirical

	// Fits is indexed by Model.
	Fits [NumModels]ModelFit

	Params Params

	// Failures combines the FitFailure of every failed model, or
	// is nil if all succeeded. Use multierr.Errors to split it.
	Failures error
}

// Table returns the metrics as a NumMetrics × NumModels table, rows in
// MetricList order and columns in Models order.
func (r *Result) Table() [NumMetrics][NumModels]float64 {
	var t [NumMetrics][NumModels]float64
	for i, metric := range MetricList {
		for j, model := range Models {
			t[i][j] = r.Fits[model].Metrics.Get(metric)
		}
	}
	return t
}

// Uniform, BetaBinomial, and Zipf return the fitted distributions.
// A failed fit has NaN parameters.

func (r *Result) Uniform() stats.DiscreteUniformDist {
	return stats.DiscreteUniformDist{Lo: r.Empirical.Min, Hi: r.Empirical.Max}
}

func (r *Result) BetaBinomial() stats.BetaBinomialDist {
	return stats.BetaBinomialDist{N: r.Empirical.Len(), Alpha: r.Params.A, Beta: r.Params.B}
}

func (r *Result) Zipf() stats.ZipfDist {
	return stats.ZipfDist{C: r.Params.C}
}

// Fit builds the empirical distribution of samples, fits the three
// models to it, and scores each fit.
//
// The only error Fit returns is an *InvalidInputError for an unusable
// sample. A model that fails to fit is reported in Result.Failures
// and through a warning on opts.Logger; the other models are still
// fit and scored.
//
// ctx bounds the solver runs. Cancelling it fails the remaining fits
// rather than the call.
func Fit(ctx context.Context, samples []int, opts *Options) (*Result, error) {
	opts = opts.withDefaults()
	emp, err := NewEmpirical(samples)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Stats:     Describe(samples),
		Empirical: emp,
	}

	support, offsets := emp.Support(), emp.Offsets()

	uni := res.Uniform()
	res.Fits[DiscreteUniform] = ModelFit{
		Model:   DiscreteUniform,
		Params:  []float64{},
		Density: stats.PMFEach(uni, support),
	}

	bb, bbRes, err := FitBetaBinomial(ctx, emp, opts)
	res.Fits[BetaBinomial] = ModelFit{Model: BetaBinomial, Solver: bbRes, Err: err}
	if err != nil {
		res.fail(BetaBinomial, err, opts.Logger, "Could not optimize Beta Binomial fit")
		res.Params.A, res.Params.B = math.NaN(), math.NaN()
	} else {
		res.Params.A, res.Params.B = bb.Alpha, bb.Beta
		res.logConverged(opts.Logger, BetaBinomial, bbRes)
	}
	res.Fits[BetaBinomial].Params = []float64{res.Params.A, res.Params.B}
	res.Fits[BetaBinomial].Density = stats.PMFEach(res.BetaBinomial(), offsets)

	zipf, zipfRes, err := FitZipf(ctx, emp, opts)
	res.Fits[Zipfian] = ModelFit{Model: Zipfian, Solver: zipfRes, Err: err}
	if err != nil {
		res.fail(Zipfian, err, opts.Logger, "Could not optimize Zipfian fit")
		res.Params.C = math.NaN()
	} else {
		res.Params.C = zipf.C
		res.logConverged(opts.Logger, Zipfian, zipfRes)
	}
	res.Fits[Zipfian].Params = []float64{res.Params.C}
	res.Fits[Zipfian].Density = stats.PMFEach(res.Zipf(), support)

	for i := range res.Fits {
		f := &res.Fits[i]
		f.Metrics = score(emp.Probs, f.Density)
	}
	return res, nil
}

func (r *Result) fail(model Model, err error, logger log.Logger, msg string) {
	r.Failures = multierr.Append(r.Failures, err)
	_ = level.Warn(logger).Log("msg", msg, "model", model, "err", err)
}

func (r *Result) logConverged(logger log.Logger, model Model, res *curvefit.Result) {
	_ = level.Debug(logger).Log(
		"msg", "fit converged",
		"model", model,
		"params", fmtParams(res.Params),
		"cost", res.Cost,
		"status", res.Status,
		"iterations", res.Iterations,
		"evaluations", res.Evaluations,
	)
}

func fmtParams(ps []float64) string {
	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = fmt.Sprintf("%g", p)
	}
	return strings.Join(strs, ",")
}
