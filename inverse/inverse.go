// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inverse implements the reconstruction of the stiffness profile from the
// surface wavefield
package inverse

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/aanpilovv/anpilov/cauchy"
	"github.com/aanpilovv/anpilov/mdl/medium"
	"github.com/aanpilovv/anpilov/modal"
	"github.com/cpmech/gosl/io"
)

// ErrArgumentMismatch indicates inconsistent lengths of points, observed values or parameters
var ErrArgumentMismatch = errors.New("argument mismatch")

// default values
const (
	Kappa   = 1.0 // frequency of the inverse problem
	Npts    = 10  // number of sampling points
	Spacing = 0.3 // distance between sampling points
	Nprms   = 2   // number of parameters of the stiffness law
)

// Problem computes wavefields of trial profiles. A Problem holds no mutable state;
// thus the same value can be used by concurrent evaluations.
type Problem struct {
	Synth modal.Synthesizer // settings of the modal synthesis; the medium is set per call
	Rho   medium.Func       // density of reconstructed profiles; nil means ρ = 1
}

// NewProblem returns a new problem with default synthesis settings
func NewProblem() *Problem {
	return &Problem{Synth: *modal.NewSynthesizer(cauchy.Evaluator{})}
}

// Grid returns n points x_i = x0 + i・dx
func Grid(x0, dx float64, n int) []float64 {
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = x0 + float64(i)*dx
	}
	return res
}

// Observed computes the wavefield of the reference profile at points
func (o Problem) Observed(ref *medium.Profile, points []float64, κ float64) ([]complex128, error) {
	synth := o.Synth
	synth.Eval.Medium = ref
	sol, err := synth.Solve(κ)
	if err != nil {
		return nil, err
	}
	if len(sol.Degenerate) > 0 && synth.Verbose {
		io.PfYel("κ = %g: %d degenerate mode(s) excluded from the wavefield\n", κ, len(sol.Degenerate))
	}
	return sol.Sample(points), nil
}

// Reconstructed computes the wavefield at points of the profile with stiffness
//   μ(x) = 1 + p[0]・(1 - x) + p[1]・x
func (o Problem) Reconstructed(p, points []float64, κ float64) ([]complex128, error) {
	if len(p) != Nprms {
		return nil, fmt.Errorf("%w: %d parameters given; %d required", ErrArgumentMismatch, len(p), Nprms)
	}
	return o.Observed(medium.New(medium.Interp(p), o.rho()), points, κ)
}

// Fitness returns the misfit Σ|w_i - obs_i|² between the reconstructed wavefield w and
// the observed values
func (o Problem) Fitness(p, points []float64, obs []complex128, κ float64) (float64, error) {
	if len(points) != len(obs) {
		return 0, fmt.Errorf("%w: %d points and %d observed values", ErrArgumentMismatch, len(points), len(obs))
	}
	w, err := o.Reconstructed(p, points, κ)
	if err != nil {
		return 0, err
	}
	var res float64
	for i := range w {
		d := cmplx.Abs(w[i] - obs[i])
		res += d * d
	}
	return res, nil
}

// rho returns the density of reconstructed profiles
func (o Problem) rho() medium.Func {
	if o.Rho == nil {
		return medium.Cte(1)
	}
	return o.Rho
}
