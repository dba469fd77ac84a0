// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cauchy

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/aanpilovv/anpilov/mdl/medium"
)

// ErrDegenerate indicates that the derivative channel vanishes at a mode; i.e. the
// mode is not a simple root of the characteristic function
var ErrDegenerate = errors.New("degenerate mode: residue denominator vanishes")

// Evaluator computes the characteristic function of the layer. With u the displacement
// and v = μ・du/dx the traction, the Cauchy problem on 0 ≤ x ≤ 1 reads:
//
//    du/dx = v / μ(x)
//    dv/dx = (α²・μ(x) - κ²・ρ(x))・u        u(0) = 0,  v(0) = 1
//
// and the characteristic value is v(1). The augmented systems append the partial
// derivatives p = ∂u/∂α, q = ∂v/∂α, s = ∂p/∂α and t = ∂q/∂α:
//
//    dp/dx = q / μ(x)
//    dq/dx = 2・α・u + (α²・μ(x) - κ²・ρ(x))・p
//    ds/dx = t / μ(x)
//    dt/dx = 2・u + 4・α・p + (α²・μ(x) - κ²・ρ(x))・s
//
// with zero initial values.
type Evaluator struct {
	Medium *medium.Profile // material profile
	Solver Integrator      // integrator; nil means Dopri with default tolerance
}

// NewEvaluator returns a new evaluator
func NewEvaluator(prof *medium.Profile, solver Integrator) Evaluator {
	return Evaluator{Medium: prof, Solver: solver}
}

// Char returns the characteristic value v(1) for a complex spectral parameter α
func (o Evaluator) Char(α, κ complex128) (complex128, error) {
	y := []complex128{0, 1}
	err := o.integrator().Solve(o.system(α, κ, 2), y, 0, 1)
	if err != nil {
		return 0, err
	}
	return y[1], nil
}

// CharReal returns Re(v(1)) for a real spectral parameter α
func (o Evaluator) CharReal(α, κ float64) (float64, error) {
	v, err := o.Char(complex(α, 0), complex(κ, 0))
	return real(v), err
}

// CharImag returns Re(v(1)) for the purely imaginary spectral parameter α = iβ
func (o Evaluator) CharImag(β, κ float64) (float64, error) {
	v, err := o.Char(complex(0, β), complex(κ, 0))
	return real(v), err
}

// Augmented returns u(1) and ∂v/∂α(1)
func (o Evaluator) Augmented(α, κ complex128) (u, q complex128, err error) {
	y := []complex128{0, 1, 0, 0}
	err = o.integrator().Solve(o.system(α, κ, 4), y, 0, 1)
	if err != nil {
		return
	}
	return y[0], y[3], nil
}

// Residue returns u(1) / (∂v/∂α)(1). It fails with ErrDegenerate if the ratio
// cannot be computed.
func (o Evaluator) Residue(α, κ complex128) (complex128, error) {
	u, q, err := o.Augmented(α, κ)
	if err != nil {
		return 0, err
	}
	if q == 0 {
		return 0, fmt.Errorf("α = %v, κ = %v: %w", α, κ, ErrDegenerate)
	}
	r := u / q
	if cmplx.IsNaN(r) || cmplx.IsInf(r) {
		return 0, fmt.Errorf("α = %v, κ = %v: residue = %v: %w", α, κ, r, ErrDegenerate)
	}
	return r, nil
}

// integrator returns the integrator in use
func (o Evaluator) integrator() Integrator {
	if o.Solver == nil {
		return Dopri{Tol: Tol}
	}
	return o.Solver
}

// system returns the right-hand side of the Cauchy problem with ndim = 2, 4 or 6 unknowns
func (o Evaluator) system(α, κ complex128, ndim int) System {
	mu, rho := o.Medium.Mu, o.Medium.Rho
	α2, κ2 := α*α, κ*κ
	return func(f []complex128, x float64, y []complex128) {
		m := complex(mu(x), 0)
		c := α2*m - κ2*complex(rho(x), 0)
		f[0] = y[1] / m
		f[1] = c * y[0]
		if ndim > 2 {
			f[2] = y[3] / m
			f[3] = 2*α*y[0] + c*y[2]
		}
		if ndim > 4 {
			f[4] = y[5] / m
			f[5] = 2*y[0] + 4*α*y[2] + c*y[4]
		}
	}
}
