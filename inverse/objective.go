// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inverse

import (
	"github.com/aanpilovv/anpilov/mdl/medium"
)

// Objective measures how well a parameter vector reproduces the wavefield of a reference
// profile. The observed data are computed once by NewObjective.
type Objective struct {
	Problem  Problem      // wavefield of trial profiles
	Kappa    float64      // frequency
	Points   []float64    // sampling points
	Observed []complex128 // wavefield of the reference profile at Points
}

// NewObjective computes the observed data of ref at points. If ref is nil, the reference
// profile is μ = 1 + x, ρ = 1; i.e. the exact parameters are {0, 1}. If points is nil,
// Npts points spaced by Spacing are used. κ ≤ 0 means Kappa.
func NewObjective(prob Problem, ref *medium.Profile, points []float64, κ float64) (*Objective, error) {
	if ref == nil {
		ref = Reference()
	}
	if points == nil {
		points = Grid(0, Spacing, Npts)
	}
	if κ <= 0 {
		κ = Kappa
	}
	obs, err := prob.Observed(ref, points, κ)
	if err != nil {
		return nil, err
	}
	return &Objective{Problem: prob, Kappa: κ, Points: points, Observed: obs}, nil
}

// Reference returns the default reference profile μ = 1 + x, ρ = 1
func Reference() *medium.Profile {
	return medium.New(func(x float64) float64 { return 1 + x }, medium.Cte(1))
}

// Fitness returns the misfit of parameters x
func (o *Objective) Fitness(x []float64) (float64, error) {
	return o.Problem.Fitness(x, o.Points, o.Observed, o.Kappa)
}

// Eval returns {-fitness(x)}; i.e. larger values are better
func (o *Objective) Eval(x []float64) ([]float64, error) {
	f, err := o.Fitness(x)
	if err != nil {
		return nil, err
	}
	return []float64{-f}, nil
}

// Constraint returns the inequality constraints g(x) ≤ 0 of the box 0 ≤ x_i ≤ 1
//   g = {-x_0, -x_1, ..., x_0 - 1, x_1 - 1, ...}
func (o *Objective) Constraint(x []float64) []float64 {
	n := len(x)
	g := make([]float64, 2*n)
	for i, v := range x {
		g[i] = -v
		g[n+i] = v - 1
	}
	return g
}

// Violation returns the sum of positive constraint values
func (o *Objective) Violation(x []float64) (res float64) {
	for _, g := range o.Constraint(x) {
		if g > 0 {
			res += g
		}
	}
	return
}
