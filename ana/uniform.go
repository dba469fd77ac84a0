// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// UniformLayer computes the closed-form solution of a homogeneous layer with constant
// stiffness μ and density ρ. With
//
//    k = sqrt(κ²・ρ/μ - α²)
//
// the Cauchy problem solved by package cauchy has
//
//    u(1) = sin(k) / (k・μ)
//    v(1) = cos(k)
//    q(1) = α・sin(k) / (k・μ)      (derivative channel with forcing 2・α・u)
//
// Thus the modes are k = (n + ½)・π, n = 0, 1, 2, ... and every residue is u/q = 1/α.
type UniformLayer struct {
	Mu  float64 // stiffness
	Rho float64 // density
}

// K returns k(α, κ)
func (o UniformLayer) K(α, κ complex128) complex128 {
	return cmplx.Sqrt(κ*κ*complex(o.Rho/o.Mu, 0) - α*α)
}

// Char returns the characteristic value v(1)
func (o UniformLayer) Char(α, κ complex128) complex128 {
	return cmplx.Cos(o.K(α, κ))
}

// CharReal returns Re(v(1)) with real α
func (o UniformLayer) CharReal(α, κ float64) (float64, error) {
	return real(o.Char(complex(α, 0), complex(κ, 0))), nil
}

// CharImag returns Re(v(1)) with α = iβ
func (o UniformLayer) CharImag(β, κ float64) (float64, error) {
	return real(o.Char(complex(0, β), complex(κ, 0))), nil
}

// Field returns u(1)
func (o UniformLayer) Field(α, κ complex128) complex128 {
	k := o.K(α, κ)
	if k == 0 {
		return complex(1/o.Mu, 0)
	}
	return cmplx.Sin(k) / (k * complex(o.Mu, 0))
}

// Deriv returns q(1) = ∂v/∂α(1) as computed by the derivative-augmented system
func (o UniformLayer) Deriv(α, κ complex128) complex128 {
	k := o.K(α, κ)
	if k == 0 {
		return α / complex(o.Mu, 0)
	}
	return α * cmplx.Sin(k) / (k * complex(o.Mu, 0))
}

// Residue returns the residue of mode α
func (o UniformLayer) Residue(α complex128) complex128 {
	return 1 / α
}

// Propagating returns the real modes α in ascending order
func (o UniformLayer) Propagating(κ float64) (alphas []float64) {
	κ2 := κ * κ * o.Rho / o.Mu
	for n := 0; ; n++ {
		kn := (float64(n) + 0.5) * math.Pi
		if kn*kn >= κ2 {
			break
		}
		alphas = append(alphas, math.Sqrt(κ2-kn*kn))
	}
	sort.Float64s(alphas)
	return
}

// Evanescent returns the magnitudes β ≤ βmax of the imaginary modes α = iβ in ascending order
func (o UniformLayer) Evanescent(κ, βmax float64) (betas []float64) {
	κ2 := κ * κ * o.Rho / o.Mu
	for n := 0; ; n++ {
		kn := (float64(n) + 0.5) * math.Pi
		if kn*kn <= κ2 {
			continue
		}
		β := math.Sqrt(kn*kn - κ2)
		if β > βmax {
			break
		}
		betas = append(betas, β)
	}
	return
}

// NumPropagating returns the number of real modes at frequency κ
func (o UniformLayer) NumPropagating(κ float64) int {
	return len(o.Propagating(κ))
}

// Cutoff returns the frequency at which the n-th real mode appears
func (o UniformLayer) Cutoff(n int) float64 {
	return (float64(n) + 0.5) * math.Pi * math.Sqrt(o.Mu/o.Rho)
}

// Plot plots the dispersion curves (α, κ) for 0 < κ ≤ κmax
func (o UniformLayer) Plot(dirout, fnkey string, κmax float64, np int) {
	for n := 0; o.Cutoff(n) < κmax; n++ {
		K := utl.LinSpace(o.Cutoff(n), κmax, np)
		A := make([]float64, np)
		for i, κ := range K {
			kn := (float64(n) + 0.5) * math.Pi
			A[i] = math.Sqrt(math.Max(κ*κ*o.Rho/o.Mu-kn*kn, 0))
		}
		plt.Plot(A, K, &plt.A{C: "k", Ls: "-"})
	}
	plt.Gll("$\\alpha$", "$\\kappa$", nil)
	plt.SaveD(dirout, fnkey+".eps")
}
