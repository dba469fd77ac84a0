// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/mjibson/go-dsp/fft"
)

// WaveAt computes the residue sum
//
//    u(x1) = Σ_m i・r_m・exp(i・α_m・x1)
//
// res must have the same length as modes
func WaveAt(x1 float64, modes []Mode, res []complex128) complex128 {
	var u complex128
	for i, m := range modes {
		u += 1i * res[i] * cmplx.Exp(1i*m.Alpha()*complex(x1, 0))
	}
	return u
}

// Field holds the wavefield sampled at increasing coordinates
type Field struct {
	X []float64    // coordinates x1
	U []complex128 // displacements
}

// Wavefield samples the residue sum at x1 = a + i・step < b
func Wavefield(a, b, step float64, modes []Mode, res []complex128) (*Field, error) {
	if step <= 0 {
		return nil, chk.Err("step must be positive. step = %g is invalid", step)
	}
	if len(modes) != len(res) {
		return nil, chk.Err("number of residues must be equal to number of modes. %d != %d", len(res), len(modes))
	}
	o := new(Field)
	for i := 0; ; i++ {
		x := a + float64(i)*step
		if x >= b {
			break
		}
		o.X = append(o.X, x)
		o.U = append(o.U, WaveAt(x, modes, res))
	}
	return o, nil
}

// Re returns the real part of the displacements
func (o *Field) Re() []float64 {
	res := make([]float64, len(o.U))
	for i, u := range o.U {
		res[i] = real(u)
	}
	return res
}

// Im returns the imaginary part of the displacements
func (o *Field) Im() []float64 {
	res := make([]float64, len(o.U))
	for i, u := range o.U {
		res[i] = imag(u)
	}
	return res
}

// Abs returns the magnitude of the displacements
func (o *Field) Abs() []float64 {
	res := make([]float64, len(o.U))
	for i, u := range o.U {
		res[i] = cmplx.Abs(u)
	}
	return res
}

// Spectrum computes the wavenumber spectrum of a uniformly sampled field. The wavenumbers
// are in ascending order (negative ones first) and amp holds |Û(k)|/N.
func (o *Field) Spectrum() (k, amp []float64) {
	n := len(o.U)
	if n < 2 {
		return
	}
	dx := o.X[1] - o.X[0]
	Y := fft.FFT(o.U)
	k = make([]float64, n)
	amp = make([]float64, n)
	for j := 0; j < n; j++ {
		idx := j - n/2
		src := idx
		if idx < 0 {
			src = idx + n
		}
		k[j] = 2 * math.Pi * float64(idx) / (float64(n) * dx)
		amp[j] = cmplx.Abs(Y[src]) / float64(n)
	}
	return
}

// Solution holds the modes and residues at one frequency
type Solution struct {
	Kappa      float64      // frequency
	Modes      []Mode       // modes
	Residues   []complex128 // residues; zero for degenerate modes
	Degenerate []Mode       // modes excluded from the residue sum
}

// Solve finds modes and residues at κ. Degenerate modes do not abort the computation.
func (o Synthesizer) Solve(κ float64) (sol *Solution, err error) {
	var modes []Mode
	if o.RealOnly {
		modes, err = o.Propagating(κ)
	} else {
		modes, err = o.FindModes(κ)
	}
	if err != nil {
		return
	}
	res, err := o.Residues(modes, κ)
	sol = &Solution{Kappa: κ, Modes: modes, Residues: res}
	var degen *DegenerateError
	if errors.As(err, &degen) {
		sol.Degenerate = degen.Modes
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return
}

// At returns the displacement at x1
func (o *Solution) At(x1 float64) complex128 {
	return WaveAt(x1, o.Modes, o.Residues)
}

// Sample returns the displacements at the given points
func (o *Solution) Sample(points []float64) []complex128 {
	res := make([]complex128, len(points))
	for i, x := range points {
		res[i] = o.At(x)
	}
	return res
}

// Field samples the wavefield at x1 = a + i・step < b
func (o *Solution) Field(a, b, step float64) (*Field, error) {
	return Wavefield(a, b, step, o.Modes, o.Residues)
}
