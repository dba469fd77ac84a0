// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aanpilovv/anpilov/disp"
	"github.com/aanpilovv/anpilov/inp"
	"github.com/aanpilovv/anpilov/inverse"
	"github.com/aanpilovv/anpilov/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	doprof := io.ArgToInt(2, 0)

	// message
	if verbose {
		io.PfWhite("\nAnpilov -- guided waves in functionally graded layers\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// configuration
	cfg, err := inp.ReadConfig(fnamepath, true)
	if err != nil {
		chk.Panic("cannot read configuration:\n%v", err)
	}
	cfg.Verbose = cfg.Verbose || verbose
	if cfg.Desc != "" && verbose {
		io.Pfcyan("%s\n", cfg.Desc)
	}

	// dispersion set
	set, err := dispersion(cfg)
	if err != nil {
		chk.Panic("dispersion set failed:\n%v", err)
	}

	// wavefield
	synth := cfg.Synthesizer()
	sol, err := synth.Solve(cfg.Kappa)
	if err != nil {
		chk.Panic("modal synthesis failed:\n%v", err)
	}
	if len(sol.Degenerate) > 0 {
		io.PfYel("%d degenerate mode(s) excluded from the wavefield: %v\n", len(sol.Degenerate), sol.Degenerate)
	}
	fld, err := sol.Field(cfg.Xa, cfg.Xb, cfg.Dx)
	if err != nil {
		chk.Panic("wavefield failed:\n%v", err)
	}

	// output
	if cfg.Tikz {
		out.WriteTikz(cfg.DirOut, cfg.FnKey, set, fld)
	}
	if cfg.Plot {
		out.PlotProfile(cfg.DirOut, cfg.FnKey, cfg.Profile, 101)
		out.PlotDispersion(cfg.DirOut, cfg.FnKey, set)
		out.PlotWavefield(cfg.DirOut, cfg.FnKey, fld)
	}
	if cfg.Xlsx {
		err = out.WriteWorkbook(cfg.DirOut, cfg.FnKey, set, fld)
		if err != nil {
			chk.Panic("cannot write workbook:\n%v", err)
		}
	}
	if verbose {
		io.Pf("results saved in %s\n", cfg.DirOut)
	}

	// inverse problem
	if cfg.Inverse.Run {
		err = reconstruct(cfg)
		if err != nil {
			chk.Panic("inverse problem failed:\n%v", err)
		}
	}
}

// dispersion builds the dispersion set of the real branch or of both branches
func dispersion(cfg *inp.Config) (set disp.Set, err error) {
	eval := cfg.Evaluator()
	builder := disp.Builder{Finder: cfg.Finder(), N: cfg.Nsub, Verbose: cfg.Verbose}
	sweep := builder.Uniform
	if cfg.Sweep == "extended" {
		sweep = builder.Extended
	}
	set, err = sweep(cfg.KapMax, cfg.KapStep, eval.CharReal)
	if err != nil || cfg.Branches == "real" {
		return
	}
	im, err := sweep(cfg.KapMax, cfg.KapStep, eval.CharImag)
	if err != nil {
		return
	}
	return disp.Merge(set, im)
}

// reconstruct recovers the stiffness parameters of the reference profile μ = 1 + x
func reconstruct(cfg *inp.Config) (err error) {
	dat := cfg.Inverse
	obj, err := inverse.NewObjective(*cfg.Problem(), nil, inverse.Grid(0, dat.Spacing, dat.Npts), dat.Kappa)
	if err != nil {
		return
	}
	res, err := obj.Search(dat.X0, inverse.SearchData{
		Population: dat.Population,
		MaxEvals:   dat.MaxEvals,
		Concurrent: dat.Concurrent,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return
	}
	io.Pfgreen("search: μ(x) = 1 + %.6f・(1-x) + %.6f・x  misfit = %g\n", res.X[0], res.X[1], res.F)
	if dat.PolishIt > 0 {
		res, err = obj.Polish(res.X, dat.PolishIt)
		if err != nil {
			return
		}
		io.Pfgreen("polish: μ(x) = 1 + %.6f・(1-x) + %.6f・x  misfit = %g\n", res.X[0], res.X[1], res.F)
	}
	return
}
