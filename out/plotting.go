// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/aanpilovv/anpilov/disp"
	"github.com/aanpilovv/anpilov/mdl/medium"
	"github.com/aanpilovv/anpilov/modal"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotDispersion plots the dispersion curves (α, κ) and saves dirout/fnkey-disp.eps
func PlotDispersion(dirout, fnkey string, set disp.Set) {
	plt.Reset(false, nil)
	sty := GetCurveStyles(set.NumCurves())
	for i := range sty {
		alphas, kappas := set.Curve(i)
		plt.Plot(alphas, kappas, &sty[i])
	}
	plt.Gll(GetTexLabel("alpha", ""), GetTexLabel("kappa", ""), nil)
	plt.SaveD(dirout, fnkey+"-disp.eps")
}

// PlotWavefield plots the real and imaginary parts of the wavefield and its wavenumber
// spectrum; saves dirout/fnkey-wave.eps
func PlotWavefield(dirout, fnkey string, fld *modal.Field) {
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(fld.X, fld.Re(), &plt.A{C: "r", Ls: "-", L: "Re"})
	plt.Plot(fld.X, fld.Im(), &plt.A{C: "b", Ls: "-", L: "Im"})
	plt.Plot(fld.X, fld.Abs(), &plt.A{C: "grey", Ls: "--", L: "abs"})
	plt.Gll(GetTexLabel("x1", ""), "$u$", nil)
	plt.Subplot(2, 1, 2)
	k, amp := fld.Spectrum()
	plt.Plot(k, amp, &plt.A{C: "k", Ls: "-", M: "o"})
	plt.Gll(GetTexLabel("k", ""), GetTexLabel("amp", ""), nil)
	plt.SaveD(dirout, fnkey+"-wave.eps")
}

// PlotProfile plots μ(x) and ρ(x) over [0,1] with np points; saves dirout/fnkey-prof.eps
func PlotProfile(dirout, fnkey string, prof *medium.Profile, np int) {
	X := utl.LinSpace(0, 1, np)
	M := make([]float64, np)
	R := make([]float64, np)
	for i, x := range X {
		M[i], R[i] = prof.Mu(x), prof.Rho(x)
	}
	plt.Reset(false, nil)
	plt.Plot(X, M, &plt.A{C: "r", Ls: "-", L: GetTexLabel("mu", "")})
	plt.Plot(X, R, &plt.A{C: "b", Ls: "--", L: GetTexLabel("rho", "")})
	plt.Gll("$x$", "", nil)
	plt.SaveD(dirout, fnkey+"-prof.eps")
}
