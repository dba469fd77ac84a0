// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package medium implements the material profile of a functionally graded layer
//  The layer occupies the normalised depth 0 ≤ x ≤ 1 and is described by
//    μ(x) -- stiffness (shear modulus)
//    ρ(x) -- density
package medium

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Func is a scalar law over the normalised depth
type Func func(x float64) float64

// Profile holds the stiffness and density laws. A Profile is never modified after
// construction and may be shared by concurrent evaluations.
type Profile struct {
	Mu  Func // stiffness μ(x)
	Rho Func // density ρ(x)
}

// New returns a new profile
func New(mu, rho Func) *Profile {
	return &Profile{Mu: mu, Rho: rho}
}

// Check samples the profile at np points along [0,1] and returns an error if μ or ρ
// is not strictly positive or not finite at any of them
func (o *Profile) Check(np int) error {
	if o.Mu == nil || o.Rho == nil {
		return chk.Err("profile is not initialised: mu and rho must be given")
	}
	if np < 2 {
		np = 2
	}
	for _, x := range utl.LinSpace(0, 1, np) {
		mu, rho := o.Mu(x), o.Rho(x)
		if !(mu > 0) || math.IsInf(mu, 0) {
			return chk.Err("stiffness must be positive and finite. mu(%g) = %g", x, mu)
		}
		if !(rho > 0) || math.IsInf(rho, 0) {
			return chk.Err("density must be positive and finite. rho(%g) = %g", x, rho)
		}
	}
	return nil
}

// Cte returns a constant law
func Cte(c float64) Func {
	return func(x float64) float64 { return c }
}

// Interp returns the stiffness law used by the inverse problem
//   μ(x) = 1 + p[0]・(1 - x) + p[1]・x
func Interp(p []float64) Func {
	p0, p1 := p[0], p[1]
	return func(x float64) float64 { return 1 + p0*(1-x) + p1*x }
}
