// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curvefit fits the parameters of a model function to data
// points by bounded nonlinear least squares.
package curvefit // import "github.com/distfit/distfit/curvefit"

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNotConverged is returned when the solver runs out of
	// iterations, evaluations, or time before converging.
	ErrNotConverged = errors.New("curvefit: did not converge")

	// ErrNonFinite is returned when the residuals or their
	// Jacobian are not finite at a point the solver must use.
	ErrNonFinite = errors.New("curvefit: non-finite residual")

	// ErrSingular is returned when the damped normal equations
	// cannot be solved for any damping.
	ErrSingular = errors.New("curvefit: singular system")

	// ErrBadProblem is returned for malformed problems.
	ErrBadProblem = errors.New("curvefit: bad problem")
)

// Func is a model function y = f(x; params).
type Func func(x float64, params []float64) float64

// Problem is a least-squares curve fitting problem: find params
// minimizing Σ (F(Xs[i]; params) - Ys[i])² subject to
// Lower[j] <= params[j] <= Upper[j].
type Problem struct {
	F      Func
	Xs, Ys []float64

	// Lower and Upper bound each parameter. Either may be nil,
	// meaning unbounded on that side; use ±Inf to leave a single
	// parameter unbounded.
	Lower, Upper []float64
}

// Method selects the minimization algorithm.
type Method int

const (
	// LevenbergMarquardt is a damped Gauss-Newton method using a
	// forward-difference Jacobian. Parameters that reach a bound
	// with the gradient pushing outward are frozen for the step.
	LevenbergMarquardt Method = iota

	// NelderMead is the derivative-free downhill simplex method,
	// run on a transformed problem in which the box constraints
	// can't be violated.
	NelderMead
)

func (m Method) String() string {
	switch m {
	case LevenbergMarquardt:
		return "lm"
	case NelderMead:
		return "nelder-mead"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses the String form of a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "lm", "levenberg-marquardt":
		return LevenbergMarquardt, nil
	case "nelder-mead", "nm":
		return NelderMead, nil
	}
	return 0, fmt.Errorf("curvefit: unknown method %q", s)
}

// Settings control the solver. The zero value selects
// LevenbergMarquardt with the defaults documented on each field.
type Settings struct {
	Method Method

	// MaxIterations caps the number of outer iterations. If 0,
	// it defaults to 400.
	MaxIterations int

	// MaxEvaluations caps the number of evaluations of the
	// residual vector. If 0, it defaults to 4000.
	MaxEvaluations int

	// Timeout, if non-zero, bounds the wall time of the fit.
	Timeout time.Duration

	// FTol is the relative reduction in cost below which an
	// accepted step ends the fit. If 0, it defaults to 1e-10.
	FTol float64

	// XTol is the relative step length below which the fit
	// ends. If 0, it defaults to 1e-10.
	XTol float64

	// GTol is the gradient magnitude below which the fit ends.
	// If 0, it defaults to 1e-12.
	GTol float64
}

func (s Settings) withDefaults() Settings {
	if s.MaxIterations <= 0 {
		s.MaxIterations = 400
	}
	if s.MaxEvaluations <= 0 {
		s.MaxEvaluations = 4000
	}
	if s.FTol <= 0 {
		s.FTol = 1e-10
	}
	if s.XTol <= 0 {
		s.XTol = 1e-10
	}
	if s.GTol <= 0 {
		s.GTol = 1e-12
	}
	return s
}

// Status describes why a successful fit stopped.
type Status int

const (
	NotTerminated Status = iota
	// ExactFit means the residuals are all 0.
	ExactFit
	// FunctionConvergence means the cost stopped decreasing.
	FunctionConvergence
	// StepConvergence means the parameters stopped moving.
	StepConvergence
	// GradientConvergence means the projected gradient vanished.
	GradientConvergence
	// DampingExhausted means no step, however short, reduces the
	// cost.
	DampingExhausted
)

var statusNames = [...]string{
	NotTerminated:       "NotTerminated",
	ExactFit:            "ExactFit",
	FunctionConvergence: "FunctionConvergence",
	StepConvergence:     "StepConvergence",
	GradientConvergence: "GradientConvergence",
	DampingExhausted:    "DampingExhausted",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a successful fit.
type Result struct {
	// Params are the fitted parameters.
	Params []float64

	// Cost is the residual sum of squares at Params.
	Cost float64

	Iterations  int
	Evaluations int
	Status      Status
}

// LeastSquares fits prob starting from params0, which is clipped into
// the bounds first.
//
// It returns ErrNotConverged if a limit in settings or the context
// stops the fit early, ErrNonFinite if the starting point or a needed
// Jacobian is not finite, and ErrSingular if no damping makes the
// linearized problem solvable. A nil settings uses the defaults.
func LeastSquares(ctx context.Context, prob Problem, params0 []float64, settings *Settings) (*Result, error) {
	var s Settings
	if settings != nil {
		s = *settings
	}
	s = s.withDefaults()
	if err := prob.check(params0); err != nil {
		return nil, err
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	switch s.Method {
	case LevenbergMarquardt:
		return levenbergMarquardt(ctx, prob, params0, s)
	case NelderMead:
		return nelderMead(ctx, prob, params0, s)
	}
	return nil, fmt.Errorf("%w: unknown method %v", ErrBadProblem, s.Method)
}

// ctxErr is ctx.Err, except that a passed deadline is reported even
// before the context's timer has fired.
func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
		return context.DeadlineExceeded
	}
	return nil
}

func (prob Problem) check(params0 []float64) error {
	switch {
	case prob.F == nil:
		return fmt.Errorf("%w: nil model function", ErrBadProblem)
	case len(prob.Xs) != len(prob.Ys):
		return fmt.Errorf("%w: %d x values but %d y values", ErrBadProblem, len(prob.Xs), len(prob.Ys))
	case len(prob.Xs) == 0:
		return fmt.Errorf("%w: no data points", ErrBadProblem)
	case len(params0) == 0:
		return fmt.Errorf("%w: no parameters", ErrBadProblem)
	case prob.Lower != nil && len(prob.Lower) != len(params0),
		prob.Upper != nil && len(prob.Upper) != len(params0):
		return fmt.Errorf("%w: bounds don't match %d parameters", ErrBadProblem, len(params0))
	}
	for j := range params0 {
		if lo, hi := prob.lower(j), prob.upper(j); !(lo <= hi) {
			return fmt.Errorf("%w: empty bounds [%v, %v] for parameter %d", ErrBadProblem, lo, hi, j)
		}
	}
	return nil
}

func (prob Problem) lower(j int) float64 {
	if prob.Lower == nil {
		return math.Inf(-1)
	}
	return prob.Lower[j]
}

func (prob Problem) upper(j int) float64 {
	if prob.Upper == nil {
		return math.Inf(1)
	}
	return prob.Upper[j]
}

// clip copies x into dst, moving each element into its bounds.
func (prob Problem) clip(dst, x []float64) []float64 {
	for j, v := range x {
		dst[j] = math.Max(prob.lower(j), math.Min(prob.upper(j), v))
	}
	return dst
}

// residuals stores F(Xs[i]; params) - Ys[i] in dst and returns the
// sum of squares.
func (prob Problem) residuals(dst, params []float64) float64 {
	var ss float64
	for i, x := range prob.Xs {
		r := prob.F(x, params) - prob.Ys[i]
		dst[i] = r
		ss += r * r
	}
	return ss
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// stopped wraps the reason a fit stopped early.
func stopped(reason error) error {
	return fmt.Errorf("%w: %w", ErrNotConverged, reason)
}

var (
	errIterations  = errors.New("iteration limit reached")
	errEvaluations = errors.New("evaluation limit reached")
)
