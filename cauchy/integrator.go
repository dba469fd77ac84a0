// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cauchy implements the Cauchy problems behind the characteristic function of
// a functionally graded layer and the adaptive integrator used to solve them
package cauchy

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/ode"
)

// Tol is the default integration tolerance
const Tol = 1e-7

// System computes f = dy/dx for the complex state y at x
type System func(f []complex128, x float64, y []complex128)

// Integrator solves dy/dx = f(x,y) from xa to xb. The initial state is given in y
// and it is replaced by the state at xb.
type Integrator interface {
	Solve(sys System, y []complex128, xa, xb float64) error
}

// IntegrationError is returned when the integrator fails to reach the end of the interval
type IntegrationError struct {
	Xa, Xb float64 // interval
	Err    error   // error from the underlying solver
}

func (e *IntegrationError) Error() string {
	return io.Sf("integration from x=%g to x=%g failed:\n%v", e.Xa, e.Xb, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

// Dopri implements Integrator with the explicit Dormand-Prince 5(4) method of gosl/ode.
// Each complex unknown is stored as two real unknowns {Re, Im}.
type Dopri struct {
	Tol      float64 // absolute and relative tolerance; 0 means Tol
	MaxSteps int     // max number of substeps; 0 means solver default
}

// Solve solves the Cauchy problem in place
func (o Dopri) Solve(sys System, y []complex128, xa, xb float64) error {

	// workspace
	n := len(y)
	yc := make([]complex128, n)
	fc := make([]complex128, n)
	ξ := make([]float64, 2*n)
	for i, v := range y {
		ξ[2*i], ξ[2*i+1] = real(v), imag(v)
	}

	// callback
	//   ξ[2i]   = Re(y[i])
	//   ξ[2i+1] = Im(y[i])
	fcn := func(f []float64, dx, x float64, ξ []float64) error {
		for i := range yc {
			yc[i] = complex(ξ[2*i], ξ[2*i+1])
		}
		sys(fc, x, yc)
		for i, v := range fc {
			f[2*i], f[2*i+1] = real(v), imag(v)
		}
		return nil
	}

	// ode solver
	tol := o.Tol
	if tol <= 0 {
		tol = Tol
	}
	var odesol ode.Solver
	odesol.Init("Dopri5", 2*n, fcn, nil, nil, nil)
	odesol.SetTol(tol, tol)
	if o.MaxSteps > 0 {
		odesol.NmaxSS = o.MaxSteps
	}
	odesol.Distr = false // this is important to avoid problems with parallel evaluations

	// solve
	err := odesol.Solve(ξ, xa, xb, xb-xa, false)
	if err != nil {
		return &IntegrationError{Xa: xa, Xb: xb, Err: err}
	}
	for i := range y {
		y[i] = complex(ξ[2*i], ξ[2*i+1])
	}
	return nil
}
