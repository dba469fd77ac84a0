// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package modal implements the modal synthesis of the wavefield: modes, residues and
// the residue sum
package modal

import (
	"errors"
	"strings"

	"github.com/aanpilovv/anpilov/cauchy"
	"github.com/aanpilovv/anpilov/roots"
	"github.com/cpmech/gosl/io"
)

// default values
const (
	Nsub    = 20  // number of subintervals for bracketing
	ImagMax = 50  // upper limit of the search for evanescent modes
	RealFac = 1.5 // propagating modes are searched for 0 ≤ α ≤ RealFac・κ
)

// Kind defines the family of a mode
type Kind int

// families of modes
const (
	Propagating Kind = iota // real α
	Evanescent              // imaginary α = iβ
)

// String returns the name of the family
func (k Kind) String() string {
	if k == Evanescent {
		return "evanescent"
	}
	return "propagating"
}

// Mode holds a root of the characteristic function
type Mode struct {
	Kind  Kind    // family
	Value float64 // α for propagating modes; β for evanescent modes with α = iβ
}

// Alpha returns the spectral parameter α
func (o Mode) Alpha() complex128 {
	if o.Kind == Evanescent {
		return complex(0, o.Value)
	}
	return complex(o.Value, 0)
}

// String returns a string representation of this mode
func (o Mode) String() string {
	if o.Kind == Evanescent {
		return io.Sf("%gi", o.Value)
	}
	return io.Sf("%g", o.Value)
}

// DegenerateError lists the modes whose residues could not be computed because the
// derivative channel vanishes. These modes carry zero weight in the residue sum.
type DegenerateError struct {
	Kappa float64 // frequency
	Modes []Mode  // degenerate modes
	Errs  []error // reasons
}

func (e *DegenerateError) Error() string {
	l := make([]string, len(e.Modes))
	for i, m := range e.Modes {
		l[i] = io.Sf("α = %v (%v)", m.Alpha(), e.Errs[i])
	}
	return io.Sf("κ = %g: %d degenerate mode(s): %s", e.Kappa, len(e.Modes), strings.Join(l, "; "))
}

func (e *DegenerateError) Unwrap() error { return cauchy.ErrDegenerate }

// Synthesizer finds modes and residues at a given frequency
type Synthesizer struct {
	Eval     cauchy.Evaluator // characteristic function of the layer
	Finder   roots.Finder     // root finder
	N        int              // number of subintervals; 0 means Nsub
	ImagMax  float64          // upper limit for β; 0 means ImagMax
	RealOnly bool             // Solve uses propagating modes only
	Verbose  bool             // show messages
}

// NewSynthesizer returns a new synthesizer with default settings
func NewSynthesizer(eval cauchy.Evaluator) *Synthesizer {
	return &Synthesizer{Eval: eval, N: Nsub, ImagMax: ImagMax}
}

// Propagating returns the real modes found for 0 ≤ α ≤ 1.5・κ
func (o Synthesizer) Propagating(κ float64) ([]Mode, error) {
	f := func(α float64) (float64, error) { return o.Eval.CharReal(α, κ) }
	res, err := o.Finder.Bracket(0, RealFac*κ, f, o.nsub())
	if err != nil {
		return nil, err
	}
	return tag(res, Propagating), nil
}

// Evanescent returns the imaginary modes α = iβ found for 0 ≤ β ≤ ImagMax
func (o Synthesizer) Evanescent(κ float64) ([]Mode, error) {
	f := func(β float64) (float64, error) { return o.Eval.CharImag(β, κ) }
	βmax := o.ImagMax
	if βmax <= 0 {
		βmax = ImagMax
	}
	res, err := o.Finder.Bracket(0, βmax, f, o.nsub())
	if err != nil {
		return nil, err
	}
	return tag(res, Evanescent), nil
}

// FindModes returns the propagating modes followed by the evanescent modes
func (o Synthesizer) FindModes(κ float64) ([]Mode, error) {
	re, err := o.Propagating(κ)
	if err != nil {
		return nil, err
	}
	im, err := o.Evanescent(κ)
	if err != nil {
		return nil, err
	}
	if o.Verbose {
		io.Pf("κ = %g: %d propagating and %d evanescent modes\n", κ, len(re), len(im))
	}
	return append(re, im...), nil
}

// Residues computes the residue of each mode. Integration errors abort the computation.
// Degenerate modes get a zero residue and are reported with a *DegenerateError; in
// this case the returned residues are still valid.
func (o Synthesizer) Residues(modes []Mode, κ float64) ([]complex128, error) {
	res := make([]complex128, len(modes))
	var degen *DegenerateError
	for i, m := range modes {
		r, err := o.Eval.Residue(m.Alpha(), complex(κ, 0))
		if err != nil {
			if !errors.Is(err, cauchy.ErrDegenerate) {
				return nil, err
			}
			if degen == nil {
				degen = &DegenerateError{Kappa: κ}
			}
			degen.Modes = append(degen.Modes, m)
			degen.Errs = append(degen.Errs, err)
			continue
		}
		res[i] = r
	}
	if degen != nil {
		if o.Verbose {
			io.PfYel("%v\n", degen)
		}
		return res, degen
	}
	return res, nil
}

// nsub returns the number of subintervals
func (o Synthesizer) nsub() int {
	if o.N < 1 {
		return Nsub
	}
	return o.N
}

// tag converts roots into modes of the given family
func tag(values []float64, kind Kind) []Mode {
	res := make([]Mode, len(values))
	for i, v := range values {
		res[i] = Mode{Kind: kind, Value: v}
	}
	return res
}
