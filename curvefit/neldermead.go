// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curvefit

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// boxTransform maps an unconstrained vector u onto the box
// [lo, hi], so that an unconstrained minimizer can't leave it.
//
//	both bounds:  x = lo + (hi-lo)(sin u + 1)/2
//	lower only:   x = lo - 1 + sqrt(u² + 1)
//	upper only:   x = hi + 1 - sqrt(u² + 1)
//
// James, F. and Roos, M. (1975) MINUIT.
type boxTransform struct {
	prob Problem
}

func (b boxTransform) toBox(dst, u []float64) []float64 {
	for j, v := range u {
		lo, hi := b.prob.lower(j), b.prob.upper(j)
		switch loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1); {
		case loInf && hiInf:
			dst[j] = v
		case hiInf:
			dst[j] = lo - 1 + math.Sqrt(v*v+1)
		case loInf:
			dst[j] = hi + 1 - math.Sqrt(v*v+1)
		default:
			dst[j] = lo + (hi-lo)*(math.Sin(v)+1)/2
		}
	}
	return dst
}

func (b boxTransform) fromBox(dst, x []float64) []float64 {
	for j, v := range x {
		lo, hi := b.prob.lower(j), b.prob.upper(j)
		switch loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1); {
		case loInf && hiInf:
			dst[j] = v
		case hiInf:
			d := v - lo + 1
			dst[j] = math.Sqrt(d*d - 1)
		case loInf:
			d := hi - v + 1
			dst[j] = math.Sqrt(d*d - 1)
		case lo == hi:
			dst[j] = 0
		default:
			dst[j] = math.Asin(2*(v-lo)/(hi-lo) - 1)
		}
	}
	return dst
}

func nelderMead(ctx context.Context, prob Problem, x0 []float64, s Settings) (*Result, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, stopped(err)
	}
	n := len(x0)
	bt := boxTransform{prob}
	u0 := bt.fromBox(make([]float64, n), prob.clip(make([]float64, n), x0))

	r := make([]float64, len(prob.Xs))
	x := make([]float64, n)
	cost := func(u []float64) float64 {
		ss := prob.residuals(r, bt.toBox(x, u))
		if !isFinite(ss) {
			// Treat the region as a wall.
			return math.MaxFloat64
		}
		return ss
	}
	if !isFinite(prob.residuals(r, bt.toBox(x, u0))) {
		return nil, ErrNonFinite
	}

	p := optimize.Problem{
		Func: cost,
		Status: func() (optimize.Status, error) {
			if err := ctxErr(ctx); err != nil {
				return optimize.Failure, err
			}
			return optimize.NotTerminated, nil
		},
	}
	settings := &optimize.Settings{
		MajorIterations: s.MaxIterations,
		FuncEvaluations: s.MaxEvaluations,
		Runtime:         s.Timeout,
		Converger: &optimize.FunctionConverge{
			Absolute:   s.GTol,
			Relative:   s.FTol,
			Iterations: 50,
		},
	}
	res, err := optimize.Minimize(p, u0, settings, &optimize.NelderMead{})
	if err != nil {
		if cerr := ctxErr(ctx); cerr != nil {
			return nil, stopped(cerr)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}
	if res.Status == optimize.RuntimeLimit {
		return nil, stopped(context.DeadlineExceeded)
	}
	if res.Status.Early() || res.Status == optimize.Failure {
		return nil, stopped(fmt.Errorf("nelder-mead: %v", res.Status))
	}
	if res.F == math.MaxFloat64 {
		return nil, ErrNonFinite
	}

	status := FunctionConvergence
	if res.F == 0 {
		status = ExactFit
	}
	return &Result{
		Params:      bt.toBox(make([]float64, n), res.X),
		Cost:        res.F,
		Iterations:  res.MajorIterations,
		Evaluations: res.FuncEvaluations,
		Status:      status,
	}, nil
}
