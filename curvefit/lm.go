// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curvefit

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// lmMaxDamping is the damping above which a step can no longer
	// make progress.
	lmMaxDamping = 1e16

	// lmMinDiag floors the diagonal scaling so a parameter with no
	// influence on the residuals still gets damped.
	lmMinDiag = 1e-300
)

// lmState is the working state of one Levenberg-Marquardt fit.
type lmState struct {
	prob Problem
	s    Settings

	m, n  int
	evals int
}

func (st *lmState) eval(dst, params []float64) (float64, error) {
	if st.evals >= st.s.MaxEvaluations {
		return 0, stopped(errEvaluations)
	}
	st.evals++
	return st.prob.residuals(dst, params), nil
}

// jacobian fills jac with the forward-difference Jacobian of the
// residuals at x, where r holds the residuals at x. Steps that would
// leave the bounds are taken backward instead.
func (st *lmState) jacobian(jac *mat.Dense, x, r []float64) error {
	xh := make([]float64, st.n)
	rh := make([]float64, st.m)
	sqrtEps := math.Sqrt(2.220446049250313e-16)
	for j := 0; j < st.n; j++ {
		copy(xh, x)
		h := sqrtEps * math.Max(math.Abs(x[j]), 1)
		if x[j]+h > st.prob.upper(j) {
			h = -h
		}
		xh[j] = x[j] + h
		// Use the step actually represented in floating point.
		h = xh[j] - x[j]
		if _, err := st.eval(rh, xh); err != nil {
			return err
		}
		for i := 0; i < st.m; i++ {
			d := (rh[i] - r[i]) / h
			if !isFinite(d) {
				return ErrNonFinite
			}
			jac.Set(i, j, d)
		}
	}
	return nil
}

func levenbergMarquardt(ctx context.Context, prob Problem, x0 []float64, s Settings) (*Result, error) {
	st := &lmState{prob: prob, s: s, m: len(prob.Xs), n: len(x0)}
	m, n := st.m, st.n

	x := prob.clip(make([]float64, n), x0)
	r := make([]float64, m)
	cost, err := st.eval(r, x)
	if err != nil {
		return nil, err
	}
	if !isFinite(cost) {
		return nil, ErrNonFinite
	}

	var (
		jac    = mat.NewDense(m, n, nil)
		jtj    = mat.NewSymDense(n, nil)
		grad   = mat.NewVecDense(n, nil)
		sys    = mat.NewSymDense(n, nil)
		rhs    = mat.NewVecDense(n, nil)
		delta  = mat.NewVecDense(n, nil)
		chol   mat.Cholesky
		active = make([]bool, n)
		xNew   = make([]float64, n)
		step   = make([]float64, n)
		rNew   = make([]float64, m)
		lambda float64
	)

	res := &Result{}
	done := func(status Status) (*Result, error) {
		res.Params = append([]float64(nil), x...)
		res.Cost = cost
		res.Evaluations = st.evals
		res.Status = status
		return res, nil
	}

	for {
		if err := ctxErr(ctx); err != nil {
			return nil, stopped(err)
		}
		if cost == 0 {
			return done(ExactFit)
		}
		if res.Iterations >= s.MaxIterations {
			return nil, stopped(errIterations)
		}
		res.Iterations++

		if err := st.jacobian(jac, x, r); err != nil {
			return nil, err
		}
		jtj.SymOuterK(1, jac.T())
		grad.MulVec(jac.T(), mat.NewVecDense(m, r))

		// Freeze parameters sitting on a bound that the
		// gradient would push them through.
		gmax := 0.0
		for j := 0; j < n; j++ {
			g := grad.AtVec(j)
			active[j] = x[j] <= prob.lower(j) && g > 0 || x[j] >= prob.upper(j) && g < 0
			if !active[j] {
				gmax = math.Max(gmax, math.Abs(g))
			}
		}
		if gmax <= s.GTol {
			return done(GradientConvergence)
		}
		if lambda == 0 {
			for j := 0; j < n; j++ {
				if !active[j] {
					lambda = math.Max(lambda, jtj.At(j, j))
				}
			}
			lambda *= 1e-3
			if lambda == 0 {
				lambda = 1e-3
			}
		}

		// Shrink the step until it reduces the cost.
		for {
			if err := ctxErr(ctx); err != nil {
				return nil, stopped(err)
			}
			for j := 0; j < n; j++ {
				for k := j; k < n; k++ {
					v := jtj.At(j, k)
					if active[j] || active[k] {
						v = 0
					}
					if j == k {
						if active[j] {
							v = 1
						} else {
							v += lambda * math.Max(v, lmMinDiag)
						}
					}
					sys.SetSym(j, k, v)
				}
				if active[j] {
					rhs.SetVec(j, 0)
				} else {
					rhs.SetVec(j, -grad.AtVec(j))
				}
			}

			solved := chol.Factorize(sys)
			if solved {
				solved = chol.SolveVecTo(delta, rhs) == nil
			}
			if !solved {
				lambda *= 10
				if lambda > lmMaxDamping {
					return nil, ErrSingular
				}
				continue
			}

			for j := 0; j < n; j++ {
				xNew[j] = x[j] + delta.AtVec(j)
			}
			prob.clip(xNew, xNew)
			floats.SubTo(step, xNew, x)
			if floats.Norm(step, 2) <= s.XTol*(floats.Norm(x, 2)+s.XTol) {
				return done(StepConvergence)
			}

			costNew, err := st.eval(rNew, xNew)
			if err != nil {
				return nil, err
			}
			if isFinite(costNew) && costNew < cost {
				reduction := (cost - costNew) / cost
				x, xNew = xNew, x
				r, rNew = rNew, r
				cost = costNew
				lambda = math.Max(lambda/3, 1e-15)
				if reduction <= s.FTol {
					return done(FunctionConvergence)
				}
				break
			}

			lambda *= 4
			if lambda > lmMaxDamping {
				return done(DampingExhausted)
			}
		}
	}
}
