// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inverse

import (
	"math"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/curioloop/optimizer/lbfgsb"
	"github.com/curioloop/optimizer/numdiff"
	"gonum.org/v1/gonum/optimize"
)

// scores
const (
	Failed  = 1e10 // score of candidates whose misfit cannot be computed
	Penalty = 1e3  // penalty per unit of constraint violation
)

// Result holds the outcome of an optimisation
type Result struct {
	X      []float64 // best parameters
	F      float64   // misfit at X
	Evals  int       // number of misfit evaluations
	Status string    // termination status reported by the optimiser
}

// SearchData holds the settings of the population search
type SearchData struct {
	Population int     // population size; 0 means the default of CMA-ES
	MaxEvals   int     // max number of misfit evaluations; 0 means 1000
	Concurrent int     // number of concurrent evaluations; 0 means sequential
	InitStep   float64 // initial step size; 0 means 0.3
	Verbose    bool    // show messages
}

// score returns the misfit of x clipped to the box plus a penalty for the violation
// of the box. Failures give the Failed score so that a single bad candidate does not
// stop the whole search.
func (o *Objective) score(x []float64) float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Min(math.Max(v, 0), 1)
	}
	f, err := o.Fitness(y)
	if err != nil {
		return Failed
	}
	return f + Penalty*o.Violation(x)
}

// Search minimises the misfit with the covariance matrix adaptation evolution
// strategy, starting at x0
func (o *Objective) Search(x0 []float64, dat SearchData) (*Result, error) {
	if len(x0) != Nprms {
		return nil, chk.Err("initial vector must have %d components. %d is invalid", Nprms, len(x0))
	}
	var nevals int64
	prob := optimize.Problem{
		Func: func(x []float64) float64 {
			atomic.AddInt64(&nevals, 1)
			return o.score(x)
		},
	}
	step := dat.InitStep
	if step <= 0 {
		step = 0.3
	}
	maxevals := dat.MaxEvals
	if maxevals <= 0 {
		maxevals = 1000
	}
	method := &optimize.CmaEsChol{InitStepSize: step, Population: dat.Population}
	settings := &optimize.Settings{FuncEvaluations: maxevals, Concurrent: dat.Concurrent}
	res, err := optimize.Minimize(prob, x0, settings, method)
	if err != nil {
		return nil, err
	}
	x := make([]float64, len(res.X))
	for i, v := range res.X {
		x[i] = math.Min(math.Max(v, 0), 1)
	}
	f, err := o.Fitness(x)
	if err != nil {
		return nil, err
	}
	if dat.Verbose {
		io.Pf("search: x = %v f = %g (%d evaluations, %v)\n", x, f, nevals, res.Status)
	}
	return &Result{X: x, F: f, Evals: int(nevals), Status: res.Status.String()}, nil
}

// Polish refines x0 with the bounded L-BFGS-B method; the gradient is computed with
// central differences inside the box 0 ≤ x_i ≤ 1
func (o *Objective) Polish(x0 []float64, maxit int) (*Result, error) {
	n := len(x0)
	if n != Nprms {
		return nil, chk.Err("initial vector must have %d components. %d is invalid", Nprms, n)
	}
	if maxit <= 0 {
		maxit = 50
	}

	// misfit and its gradient. The central differences evaluate x first.
	var ferr error
	var f0 float64
	var ncalls, nevals int
	fitness := func(x, y []float64) {
		f, err := o.Fitness(x)
		if err != nil {
			if ferr == nil {
				ferr = err
			}
			f = Failed
		}
		if ncalls == 0 {
			f0 = f
		}
		ncalls++
		nevals++
		y[0] = f
	}
	bounds := make([]numdiff.Bound, n)
	for i := range bounds {
		bounds[i] = numdiff.Bound{0, 1}
	}
	approx := numdiff.ApproxSpec{N: n, M: 1, Object: fitness, Method: numdiff.Central, Bounds: bounds, AbsStep: 1e-4}
	eval := func(x, g []float64) float64 {
		ncalls = 0
		xc := make([]float64, n)
		copy(xc, x)
		if err := approx.Diff(xc, g); err != nil {
			if ferr == nil {
				ferr = err
			}
			return Failed
		}
		return f0
	}

	// optimiser
	box := make([]lbfgsb.Bound, n)
	for i := range box {
		box[i] = lbfgsb.Bound{Lower: 0, Upper: 1}
	}
	prob := lbfgsb.Problem{
		N:    n,
		M:    5,
		Eval: eval,
		Stop: lbfgsb.Termination{
			MaxIterations:     maxit,
			EpsAccuracyFactor: 1e7,
			ProjGradTolerance: 1e-8,
		},
		Bounds: box,
	}
	opt, err := prob.New(nil)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i, v := range x0 {
		x[i] = math.Min(math.Max(v, 0), 1)
	}
	res := opt.Fit(x, opt.Init())
	if ferr != nil {
		return nil, ferr
	}
	return &Result{X: res.X, F: res.F, Evals: nevals, Status: io.Sf("%v", res.Status)}, nil
}
