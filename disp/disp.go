// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package disp builds dispersion sets: frequency versus the roots of the characteristic function
package disp

import (
	"fmt"
	"math"
	"sort"

	"github.com/aanpilovv/anpilov/roots"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CharFunc computes a real characteristic value for spectral parameter α and frequency κ
type CharFunc func(α, κ float64) (float64, error)

// Entry holds the roots found at one frequency
type Entry struct {
	Kappa  float64   // frequency κ
	Alphas []float64 // roots in ascending order
}

// Set holds a dispersion set with ascending frequencies. Sets are not modified after being built.
type Set []Entry

// Builder builds dispersion sets
type Builder struct {
	Finder  roots.Finder // root finder
	N       int          // number of subintervals for bracketing
	Verbose bool         // show messages
}

// Uniform computes the roots at κ = step, 2・step, ... < κmax searching 0 ≤ α ≤ 1.5・κ
func (o Builder) Uniform(κmax, step float64, f CharFunc) (set Set, err error) {
	if step <= 0 {
		return nil, chk.Err("frequency step must be positive. step = %g is invalid", step)
	}
	for i := 0; ; i++ {
		κ := float64(i+1) * step
		if κ >= κmax {
			break
		}
		var e Entry
		e, err = o.entry(κ, 1.5*κ, f)
		if err != nil {
			return
		}
		set = append(set, e)
	}
	return
}

// Extended computes a coarse sweep: the first entry at κ = step searches 0 ≤ α ≤ 1.5・κ;
// then κ advances by 4 and every following entry searches 0 ≤ α ≤ κmax with κ advancing
// by 5 while κ ≤ κmax
func (o Builder) Extended(κmax, step float64, f CharFunc) (set Set, err error) {
	if step <= 0 {
		return nil, chk.Err("frequency step must be positive. step = %g is invalid", step)
	}
	κ := step
	e, err := o.entry(κ, 1.5*κ, f)
	if err != nil {
		return
	}
	set = append(set, e)
	for κ += 4; κ <= κmax; κ += 5 {
		e, err = o.entry(κ, κmax, f)
		if err != nil {
			return
		}
		set = append(set, e)
	}
	return
}

// entry finds the roots for 0 ≤ α ≤ αmax at κ
func (o Builder) entry(κ, αmax float64, f CharFunc) (e Entry, err error) {
	ff := func(α float64) (float64, error) { return f(α, κ) }
	e.Kappa = κ
	e.Alphas, err = o.Finder.Bracket(0, αmax, ff, o.N)
	if err != nil {
		err = fmt.Errorf("cannot find roots at κ = %g: %w", κ, err)
		return
	}
	sort.Float64s(e.Alphas)
	if o.Verbose {
		io.Pf("κ = %8.4f  nroots = %d\n", κ, len(e.Alphas))
	}
	return
}

// Merge concatenates the roots of the real branch with the negated roots of the
// imaginary branch computed over the same frequencies
func Merge(re, im Set) (Set, error) {
	if len(re) != len(im) {
		return nil, chk.Err("sets must have the same frequencies. %d != %d entries", len(re), len(im))
	}
	res := make(Set, len(re))
	for i, e := range re {
		if im[i].Kappa != e.Kappa {
			return nil, chk.Err("sets must have the same frequencies. κ = %g != %g", e.Kappa, im[i].Kappa)
		}
		alphas := make([]float64, 0, len(e.Alphas)+len(im[i].Alphas))
		alphas = append(alphas, e.Alphas...)
		for _, β := range im[i].Alphas {
			alphas = append(alphas, -β)
		}
		res[i] = Entry{Kappa: e.Kappa, Alphas: alphas}
	}
	return res, nil
}

// Get returns the roots at κ
func (o Set) Get(κ float64) (alphas []float64, ok bool) {
	i := sort.Search(len(o), func(i int) bool { return o[i].Kappa >= κ })
	if i < len(o) && o[i].Kappa == κ {
		return o[i].Alphas, true
	}
	return nil, false
}

// Kappas returns all frequencies
func (o Set) Kappas() []float64 {
	res := make([]float64, len(o))
	for i, e := range o {
		res[i] = e.Kappa
	}
	return res
}

// Counts returns the number of roots at each frequency
func (o Set) Counts() []int {
	res := make([]int, len(o))
	for i, e := range o {
		res[i] = len(e.Alphas)
	}
	return res
}

// NumCurves returns the number of curves for plotting; i.e. the number of roots at the highest frequency
func (o Set) NumCurves() int {
	if len(o) == 0 {
		return 0
	}
	return len(o[len(o)-1].Alphas)
}

// Curve returns the i-th root at every frequency where it exists, sorted in ascending order
func (o Set) Curve(i int) (alphas, kappas []float64) {
	for _, e := range o {
		if i < len(e.Alphas) {
			sorted := append([]float64{}, e.Alphas...)
			sort.Float64s(sorted)
			alphas = append(alphas, sorted[i])
			kappas = append(kappas, e.Kappa)
		}
	}
	return
}

// Range returns the min and max roots over all frequencies
func (o Set) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, e := range o {
		for _, α := range e.Alphas {
			min = math.Min(min, α)
			max = math.Max(max, α)
		}
	}
	return
}
