// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/aanpilovv/anpilov/ana"
	"github.com/aanpilovv/anpilov/cauchy"
	"github.com/aanpilovv/anpilov/mdl/medium"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// noDeriv integrates normally but zeroes the derivative channel
type noDeriv struct{}

func (o noDeriv) Solve(sys cauchy.System, y []complex128, xa, xb float64) error {
	err := cauchy.Dopri{Tol: cauchy.Tol}.Solve(sys, y, xa, xb)
	if len(y) > 2 {
		y[3] = 0
	}
	return err
}

func Test_wave01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wave01. residue sum")

	// single mode: exact closed form
	α, r := complex(2.5, 0), complex(0.3, -0.7)
	for _, x := range []float64{0, 0.1, 1.3} {
		u := WaveAt(x, []Mode{{Propagating, 2.5}}, []complex128{r})
		if u != 1i*r*cmplx.Exp(1i*α*complex(x, 0)) {
			tst.Errorf("u(%g) = %v is not equal to the closed form\n", x, u)
		}
	}

	modes := []Mode{{Propagating, 2}, {Evanescent, 3}}
	res := []complex128{0.5, 1}
	for _, x := range []float64{0, 0.3, 1.7} {
		correct := 0.5i*cmplx.Exp(complex(0, 2*x)) + 1i*complex(math.Exp(-3*x), 0)
		u := WaveAt(x, modes, res)
		chk.Float64(tst, io.Sf("Re u(%g)", x), 1e-15, real(u), real(correct))
		chk.Float64(tst, io.Sf("Im u(%g)", x), 1e-15, imag(u), imag(correct))
	}

	fld, err := Wavefield(1, 2, 0.1, modes, res)
	if err != nil {
		tst.Errorf("wavefield failed: %v\n", err)
		return
	}
	chk.IntAssert(len(fld.X), 10)
	chk.IntAssert(len(fld.U), 10)
	chk.Float64(tst, "x0", 1e-15, fld.X[0], 1)
	chk.Float64(tst, "x9", 1e-15, fld.X[9], 1.9)
	for i, x := range fld.X {
		chk.Float64(tst, "|u|", 1e-15, fld.Abs()[i], cmplx.Abs(WaveAt(x, modes, res)))
		chk.Float64(tst, "Re", 1e-15, fld.Re()[i], real(fld.U[i]))
		chk.Float64(tst, "Im", 1e-15, fld.Im()[i], imag(fld.U[i]))
	}

	if _, err = Wavefield(1, 2, 0, modes, res); err == nil {
		tst.Errorf("zero step should fail\n")
	}
	if _, err = Wavefield(1, 2, 0.1, modes, res[:1]); err == nil {
		tst.Errorf("mismatched residues should fail\n")
	}
}

func Test_modes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes01. modes and residues of homogeneous layer")

	sol := ana.UniformLayer{Mu: 1, Rho: 1}
	κ := 10.0
	synth := NewSynthesizer(cauchy.NewEvaluator(medium.New(medium.Cte(1), medium.Cte(1)), nil))
	modes, err := synth.FindModes(κ)
	if err != nil {
		tst.Errorf("FindModes failed: %v\n", err)
		return
	}

	re, im := sol.Propagating(κ), sol.Evanescent(κ, ImagMax)
	chk.IntAssert(len(modes), len(re)+len(im))
	for i, m := range modes {
		if i < len(re) {
			chk.IntAssert(int(m.Kind), int(Propagating))
			chk.AnaNum(tst, io.Sf("α%d", i), 1e-5, re[i], m.Value, chk.Verbose)
			continue
		}
		chk.IntAssert(int(m.Kind), int(Evanescent))
		chk.AnaNum(tst, io.Sf("β%d", i-len(re)), 1e-5, im[i-len(re)], m.Value, chk.Verbose)
	}

	res, err := synth.Residues(modes, κ)
	if err != nil {
		tst.Errorf("Residues failed: %v\n", err)
		return
	}
	for i, m := range modes {
		r := sol.Residue(m.Alpha())
		tol := 1e-4 * cmplx.Abs(r)
		chk.AnaNum(tst, io.Sf("Re r(%v)", m), tol, real(r), real(res[i]), chk.Verbose)
		chk.AnaNum(tst, io.Sf("Im r(%v)", m), tol, imag(r), imag(res[i]), chk.Verbose)
	}
}

func Test_degenerate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("degenerate01. vanishing derivative channel")

	synth := NewSynthesizer(cauchy.NewEvaluator(medium.New(medium.Cte(1), medium.Cte(1)), noDeriv{}))
	synth.RealOnly = true
	κ := 5.0

	modes, err := synth.Propagating(κ)
	if err != nil {
		tst.Errorf("Propagating failed: %v\n", err)
		return
	}
	chk.IntAssert(len(modes), 2)

	res, err := synth.Residues(modes, κ)
	var degen *DegenerateError
	if !errors.As(err, &degen) {
		tst.Errorf("DegenerateError expected. got %v\n", err)
		return
	}
	if !errors.Is(err, cauchy.ErrDegenerate) {
		tst.Errorf("error should wrap ErrDegenerate\n")
	}
	io.Pforan("%v\n", err)
	chk.IntAssert(len(degen.Modes), 2)
	chk.IntAssert(len(res), 2)
	for _, r := range res {
		chk.Float64(tst, "zero weight", 1e-17, cmplx.Abs(r), 0)
	}

	sol, err := synth.Solve(κ)
	if err != nil {
		tst.Errorf("Solve should not fail: %v\n", err)
		return
	}
	chk.IntAssert(len(sol.Degenerate), 2)
	chk.Float64(tst, "u(1.5)", 1e-17, cmplx.Abs(sol.At(1.5)), 0)
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. heterogeneous layer: wavefield synthesis")

	prof := medium.New(medium.Cte(1), func(x float64) float64 { return math.Exp(x) })
	synth := NewSynthesizer(cauchy.NewEvaluator(prof, nil))
	synth.Verbose = chk.Verbose
	sol, err := synth.Solve(10)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if len(sol.Modes) == 0 {
		tst.Errorf("modes expected\n")
		return
	}
	chk.IntAssert(len(sol.Residues), len(sol.Modes))
	chk.IntAssert(len(sol.Degenerate), 0)

	var bound float64
	for _, r := range sol.Residues {
		bound += cmplx.Abs(r)
	}

	fld, err := sol.Field(1, 2, 0.1)
	if err != nil {
		tst.Errorf("Field failed: %v\n", err)
		return
	}
	chk.IntAssert(len(fld.X), 10)
	pts := sol.Sample(fld.X)
	for i, u := range fld.U {
		if cmplx.IsNaN(u) || cmplx.IsInf(u) {
			tst.Errorf("u(%g) = %v is not finite\n", fld.X[i], u)
			return
		}
		if cmplx.Abs(u) > bound*(1+1e-12) {
			tst.Errorf("|u(%g)| = %g exceeds Σ|r| = %g\n", fld.X[i], cmplx.Abs(u), bound)
		}
		chk.Float64(tst, "sample", 1e-15, cmplx.Abs(pts[i]-u), 0)
		io.Pf("%6.2f%23.15e%23.15e\n", fld.X[i], real(u), imag(u))
	}
}

func Test_spectrum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum01. wavenumber spectrum of a single mode")

	n, dx := 64, math.Pi/16
	modes, res := []Mode{{Propagating, 2}}, []complex128{1}
	fld := new(Field)
	for i := 0; i < n; i++ {
		x := float64(i) * dx
		fld.X = append(fld.X, x)
		fld.U = append(fld.U, WaveAt(x, modes, res))
	}

	k, amp := fld.Spectrum()
	chk.IntAssert(len(k), n)
	chk.Float64(tst, "kmin", 1e-13, k[0], -16)
	for j := range k {
		if math.Abs(k[j]-2) < 1e-10 {
			chk.Float64(tst, "peak", 1e-12, amp[j], 1)
			continue
		}
		chk.Float64(tst, io.Sf("amp(%g)", k[j]), 1e-12, amp[j], 0)
	}

	k, amp = new(Field).Spectrum()
	chk.IntAssert(len(k), 0)
	chk.IntAssert(len(amp), 0)
}
