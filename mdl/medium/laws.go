// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package medium

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Law defines a named scalar law whose coefficients come from a parameters list
type Law interface {
	Init(prms fun.Params) error     // initialises law
	GetPrms(example bool) fun.Params // gets (an example) of parameters
	F(x float64) float64             // evaluates the law at depth x
}

// NewLaw returns a new law
func NewLaw(name string) (law Law, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("law %q is not available in 'medium' database", name)
	}
	return allocator(), nil
}

// Build allocates and initialises law 'name' and returns its evaluation function
func Build(name string, prms fun.Params) (Func, error) {
	law, err := NewLaw(name)
	if err != nil {
		return nil, err
	}
	if len(prms) == 0 {
		prms = law.GetPrms(true)
	}
	err = law.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise law %q:\n%v", name, err)
	}
	return law.F, nil
}

// allocators holds all available laws
var allocators = map[string]func() Law{
	"cte":    func() Law { return new(Constant) },
	"lin":    func() Law { return new(Linear) },
	"exp":    func() Law { return new(Exponential) },
	"sin":    func() Law { return new(Sine) },
	"interp": func() Law { return new(Interpolated) },
}

// Constant implements f(x) = c
type Constant struct {
	C float64
}

// Init initialises this structure
func (o *Constant) Init(prms fun.Params) error {
	o.C = 1
	for _, p := range prms {
		switch p.N {
		case "c":
			o.C = p.V
		default:
			return chk.Err("cte: parameter named %q is invalid", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{&fun.P{N: "c", V: 1}}
	}
	return fun.Params{&fun.P{N: "c", V: o.C}}
}

// F evaluates the law
func (o Constant) F(x float64) float64 { return o.C }

// Linear implements f(x) = a + b・x
type Linear struct {
	A, B float64
}

// Init initialises this structure
func (o *Linear) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		default:
			return chk.Err("lin: parameter named %q is invalid", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "a", V: 1},
			&fun.P{N: "b", V: 1},
		}
	}
	return fun.Params{
		&fun.P{N: "a", V: o.A},
		&fun.P{N: "b", V: o.B},
	}
}

// F evaluates the law
func (o Linear) F(x float64) float64 { return o.A + o.B*x }

// Exponential implements f(x) = a + b・exp(c・x)
type Exponential struct {
	A, B, C float64
}

// Init initialises this structure
func (o *Exponential) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("exp: parameter named %q is invalid", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
//  the example is the density law ρ = exp(x)
func (o Exponential) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "a", V: 0},
			&fun.P{N: "b", V: 1},
			&fun.P{N: "c", V: 1},
		}
	}
	return fun.Params{
		&fun.P{N: "a", V: o.A},
		&fun.P{N: "b", V: o.B},
		&fun.P{N: "c", V: o.C},
	}
}

// F evaluates the law
func (o Exponential) F(x float64) float64 { return o.A + o.B*math.Exp(o.C*x) }

// Sine implements f(x) = a + b・sin(c・π・x)
type Sine struct {
	A, B, C float64
}

// Init initialises this structure
func (o *Sine) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("sin: parameter named %q is invalid", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Sine) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "a", V: 1},
			&fun.P{N: "b", V: 0.5},
			&fun.P{N: "c", V: 1},
		}
	}
	return fun.Params{
		&fun.P{N: "a", V: o.A},
		&fun.P{N: "b", V: o.B},
		&fun.P{N: "c", V: o.C},
	}
}

// F evaluates the law
func (o Sine) F(x float64) float64 { return o.A + o.B*math.Sin(o.C*math.Pi*x) }

// Interpolated implements f(x) = base + l・(1 - x) + r・x
type Interpolated struct {
	Base, L, R float64
}

// Init initialises this structure
func (o *Interpolated) Init(prms fun.Params) error {
	o.Base = 1
	for _, p := range prms {
		switch p.N {
		case "base":
			o.Base = p.V
		case "l":
			o.L = p.V
		case "r":
			o.R = p.V
		default:
			return chk.Err("interp: parameter named %q is invalid", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Interpolated) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "base", V: 1},
			&fun.P{N: "l", V: 0},
			&fun.P{N: "r", V: 1},
		}
	}
	return fun.Params{
		&fun.P{N: "base", V: o.Base},
		&fun.P{N: "l", V: o.L},
		&fun.P{N: "r", V: o.R},
	}
}

// F evaluates the law
func (o Interpolated) F(x float64) float64 { return o.Base + o.L*(1-x) + o.R*x }
