// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inverse

import (
	"errors"
	"sync"
	"testing"

	"github.com/aanpilovv/anpilov/cauchy"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// brokenSolver fails every integration
type brokenSolver struct{}

func (o brokenSolver) Solve(sys cauchy.System, y []complex128, xa, xb float64) error {
	return &cauchy.IntegrationError{Xa: xa, Xb: xb, Err: errors.New("broken")}
}

func Test_fitness01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fitness01. argument mismatch")

	prob := NewProblem()
	prob.Synth.Eval.Solver = brokenSolver{}
	points := Grid(0, Spacing, 3)

	_, err := prob.Fitness([]float64{0, 1}, points, make([]complex128, 2), Kappa)
	require.ErrorIs(tst, err, ErrArgumentMismatch)

	_, err = prob.Fitness([]float64{0, 1}, points, nil, Kappa)
	require.ErrorIs(tst, err, ErrArgumentMismatch)

	_, err = prob.Fitness([]float64{0, 1}, nil, make([]complex128, 1), Kappa)
	require.ErrorIs(tst, err, ErrArgumentMismatch)

	_, err = prob.Fitness([]float64{0}, points, make([]complex128, 3), Kappa)
	require.ErrorIs(tst, err, ErrArgumentMismatch)

	// consistent arguments reach the integrator
	_, err = prob.Fitness([]float64{0, 1}, points, make([]complex128, 3), Kappa)
	var ierr *cauchy.IntegrationError
	require.ErrorAs(tst, err, &ierr)
	io.Pforan("%v\n", err)
}

func Test_objective01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("objective01. misfit of the reference parameters")

	obj, err := NewObjective(*NewProblem(), nil, nil, Kappa)
	require.NoError(tst, err)
	require.Len(tst, obj.Points, Npts)
	require.Len(tst, obj.Observed, Npts)
	require.InDelta(tst, 2.7, obj.Points[Npts-1], 1e-15)

	f, err := obj.Fitness([]float64{0, 1})
	require.NoError(tst, err)
	require.Less(tst, f, 1e-9)

	g, err := obj.Fitness([]float64{0.5, 0.5})
	require.NoError(tst, err)
	require.Greater(tst, g, 0.0)
	io.Pforan("f(0,1) = %g  f(.5,.5) = %g\n", f, g)

	v, err := obj.Eval([]float64{0.5, 0.5})
	require.NoError(tst, err)
	require.Equal(tst, []float64{-g}, v)

	_, err = obj.Eval([]float64{0.5})
	require.ErrorIs(tst, err, ErrArgumentMismatch)
}

func Test_constraint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constraint01. box constraints")

	var obj Objective
	require.Equal(tst, []float64{-0.2, -0.7, -0.8, -0.30000000000000004}, obj.Constraint([]float64{0.2, 0.7}))
	require.Equal(tst, 0.0, obj.Violation([]float64{0, 1}))
	require.InDelta(tst, 0.7, obj.Violation([]float64{-0.5, 1.2}), 1e-15)
}

func Test_concurrent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concurrent01. concurrent evaluations")

	obj, err := NewObjective(*NewProblem(), nil, Grid(0, 0.5, 4), Kappa)
	require.NoError(tst, err)

	candidates := [][]float64{{0, 0}, {0.3, 0.9}, {1, 0.2}, {0.5, 0.5}}
	seq := make([]float64, len(candidates))
	for i, x := range candidates {
		seq[i], err = obj.Fitness(x)
		require.NoError(tst, err)
	}

	par := make([]float64, len(candidates))
	errs := make([]error, len(candidates))
	var wg sync.WaitGroup
	for i, x := range candidates {
		wg.Add(1)
		go func(i int, x []float64) {
			defer wg.Done()
			par[i], errs[i] = obj.Fitness(x)
		}(i, x)
	}
	wg.Wait()
	for i := range candidates {
		require.NoError(tst, errs[i])
	}
	require.Equal(tst, seq, par)
}

func Test_search01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("search01. population search and polish")

	obj, err := NewObjective(*NewProblem(), nil, Grid(0, 0.6, 5), Kappa)
	require.NoError(tst, err)

	_, err = obj.Search([]float64{0.5}, SearchData{})
	require.Error(tst, err)
	_, err = obj.Polish([]float64{0.5, 0.5, 0.5}, 1)
	require.Error(tst, err)

	res, err := obj.Search([]float64{0.5, 0.5}, SearchData{Population: 6, MaxEvals: 24, Concurrent: 3, Verbose: chk.Verbose})
	require.NoError(tst, err)
	require.Len(tst, res.X, 2)
	for _, x := range res.X {
		require.True(tst, x >= 0 && x <= 1)
	}
	require.Greater(tst, res.Evals, 0)
	f, err := obj.Fitness(res.X)
	require.NoError(tst, err)
	require.Equal(tst, f, res.F)

	x0 := []float64{0.2, 0.8}
	f0, err := obj.Fitness(x0)
	require.NoError(tst, err)
	pol, err := obj.Polish(x0, 2)
	require.NoError(tst, err)
	io.Pforan("polish: %v f = %g -> %g (%s)\n", pol.X, f0, pol.F, pol.Status)
	require.LessOrEqual(tst, pol.F, f0)
	for _, x := range pol.X {
		require.True(tst, x >= 0 && x <= 1)
	}
	f, err = obj.Fitness(pol.X)
	require.NoError(tst, err)
	require.Equal(tst, f, pol.F)
}
