// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json) configuration file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aanpilovv/anpilov/cauchy"
	"github.com/aanpilovv/anpilov/inverse"
	"github.com/aanpilovv/anpilov/mdl/medium"
	"github.com/aanpilovv/anpilov/modal"
	"github.com/aanpilovv/anpilov/roots"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// LawData holds the definition of a law of the material profile
type LawData struct {
	Type string     `json:"type"` // name of law; e.g. "cte", "lin", "exp", "sin", "interp"
	Prms fun.Params `json:"prms"` // parameters; empty means the example parameters of the law
}

// InverseData holds data for the reconstruction of the stiffness profile
type InverseData struct {
	Run        bool      `json:"run"`        // run the inverse problem
	Kappa      float64   `json:"kappa"`      // frequency
	Npts       int       `json:"npts"`       // number of sampling points
	Spacing    float64   `json:"spacing"`    // distance between sampling points
	X0         []float64 `json:"x0"`         // initial parameters
	Population int       `json:"population"` // population size; 0 means default
	MaxEvals   int       `json:"maxevals"`   // max number of misfit evaluations
	Concurrent int       `json:"concurrent"` // number of concurrent evaluations
	PolishIt   int       `json:"polishit"`   // max iterations of the final polish; 0 means no polish
}

// Config holds all input data
type Config struct {

	// global information
	Desc    string `json:"desc"`    // description of analysis
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/anpilov
	FnKey   string `json:"fnkey"`   // filename key; default is the key of the config file
	Verbose bool   `json:"verbose"` // show messages

	// dispersion set
	KapMax   float64 `json:"kapmax"`   // max frequency
	KapStep  float64 `json:"kapstep"`  // frequency step
	Nsub     int     `json:"nsub"`     // number of subintervals for root bracketing
	Sweep    string  `json:"sweep"`    // "uniform" or "extended"
	Branches string  `json:"branches"` // "real" or "both"

	// wavefield
	Kappa    float64 `json:"kappa"`    // frequency
	Xa       float64 `json:"xa"`       // first sampling coordinate
	Xb       float64 `json:"xb"`       // end of sampling interval (excluded)
	Dx       float64 `json:"dx"`       // sampling step
	ImagMax  float64 `json:"imagmax"`  // upper limit of the search for evanescent modes
	RealOnly bool    `json:"realonly"` // wavefield with propagating modes only

	// numerics
	Tol      float64 `json:"tol"`      // integration tolerance
	Eps      float64 `json:"eps"`      // root finding tolerance
	MaxIt    int     `json:"maxit"`    // max number of root refinement iterations
	MaxSteps int     `json:"maxsteps"` // max number of integration substeps; 0 means default

	// material profile
	Stiffness LawData `json:"stiffness"` // stiffness μ(x)
	Density   LawData `json:"density"`   // density ρ(x)

	// inverse problem
	Inverse InverseData `json:"inverse"`

	// output
	Plot bool `json:"plot"` // generate figures
	Tikz bool `json:"tikz"` // generate pgfplots coordinates
	Xlsx bool `json:"xlsx"` // generate workbook

	// derived
	Profile *medium.Profile // material profile
}

// SetDefault sets default values
func (o *Config) SetDefault() {

	// dispersion set
	o.KapMax = 10
	o.KapStep = 0.1
	o.Nsub = modal.Nsub
	o.Sweep = "uniform"
	o.Branches = "real"

	// wavefield
	o.Kappa = 10
	o.Xa = 1
	o.Xb = 2
	o.Dx = 0.1
	o.ImagMax = modal.ImagMax
	o.RealOnly = true

	// numerics
	o.Tol = cauchy.Tol
	o.Eps = roots.Eps
	o.MaxIt = roots.MaxIt

	// material profile
	o.Stiffness.Type = "cte"
	o.Density.Type = "exp"

	// inverse problem
	o.Inverse.Kappa = inverse.Kappa
	o.Inverse.Npts = inverse.Npts
	o.Inverse.Spacing = inverse.Spacing
	o.Inverse.X0 = []float64{0.5, 0.5}
	o.Inverse.MaxEvals = 1000

	// output
	o.Tikz = true
}

// PostProcess checks the data and builds the material profile
func (o *Config) PostProcess() (err error) {
	if o.Sweep != "uniform" && o.Sweep != "extended" {
		return chk.Err("sweep must be \"uniform\" or \"extended\". %q is invalid", o.Sweep)
	}
	if o.Branches != "real" && o.Branches != "both" {
		return chk.Err("branches must be \"real\" or \"both\". %q is invalid", o.Branches)
	}
	if o.KapMax <= 0 || o.KapStep <= 0 || o.Dx <= 0 {
		return chk.Err("kapmax, kapstep and dx must be positive. %g, %g and %g are invalid", o.KapMax, o.KapStep, o.Dx)
	}
	if o.Nsub < 1 {
		return chk.Err("nsub must be positive. %d is invalid", o.Nsub)
	}
	if o.Xb <= o.Xa {
		return chk.Err("sampling interval is empty: [%g, %g)", o.Xa, o.Xb)
	}
	mu, err := medium.Build(o.Stiffness.Type, o.Stiffness.Prms)
	if err != nil {
		return chk.Err("cannot build stiffness:\n%v", err)
	}
	rho, err := medium.Build(o.Density.Type, o.Density.Prms)
	if err != nil {
		return chk.Err("cannot build density:\n%v", err)
	}
	o.Profile = medium.New(mu, rho)
	return o.Profile.Check(101)
}

// Evaluator returns the characteristic function evaluator
func (o *Config) Evaluator() cauchy.Evaluator {
	return cauchy.NewEvaluator(o.Profile, cauchy.Dopri{Tol: o.Tol, MaxSteps: o.MaxSteps})
}

// Finder returns the root finder
func (o *Config) Finder() roots.Finder {
	return roots.Finder{Eps: o.Eps, MaxIt: o.MaxIt}
}

// Synthesizer returns the modal synthesizer
func (o *Config) Synthesizer() *modal.Synthesizer {
	return &modal.Synthesizer{
		Eval:     o.Evaluator(),
		Finder:   o.Finder(),
		N:        o.Nsub,
		ImagMax:  o.ImagMax,
		RealOnly: o.RealOnly,
		Verbose:  o.Verbose,
	}
}

// Problem returns the inverse problem; reconstructed profiles have ρ = 1
func (o *Config) Problem() *inverse.Problem {
	synth := o.Synthesizer()
	synth.RealOnly = false
	return &inverse.Problem{Synth: *synth}
}

// ReadConfig reads all input data from a JSON file
func ReadConfig(cfgpath string, createDirOut bool) (o *Config, err error) {

	// read file
	b, err := io.ReadFile(cfgpath)
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q", cfgpath)
	}

	// decode
	o = new(Config)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal configuration file %q:\n%v", cfgpath, err)
	}

	// filename key and output directory
	fnkey := io.FnKey(filepath.Base(cfgpath))
	if o.FnKey == "" {
		o.FnKey = fnkey
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/anpilov/" + fnkey
	}
	o.DirOut = os.ExpandEnv(o.DirOut)
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// check data and build profile
	err = o.PostProcess()
	return
}
