// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package medium

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_laws01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws01. example parameters")

	X := utl.LinSpace(0, 1, 11)
	for _, name := range []string{"cte", "lin", "exp", "sin", "interp"} {
		f, err := Build(name, nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		for _, x := range X {
			var correct float64
			switch name {
			case "cte":
				correct = 1
			case "lin", "interp":
				correct = 1 + x
			case "exp":
				correct = math.Exp(x)
			case "sin":
				correct = 1 + 0.5*math.Sin(math.Pi*x)
			}
			chk.Float64(tst, name, 1e-15, f(x), correct)
		}
	}
}

func Test_laws02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws02. parameters and errors")

	law, err := NewLaw("exp")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = law.Init(fun.Params{
		&fun.P{N: "a", V: 1},
		&fun.P{N: "b", V: 1},
		&fun.P{N: "c", V: -1},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "1+exp(-x) @ 0", 1e-15, law.F(0), 2)
	chk.Float64(tst, "1+exp(-x) @ 1", 1e-15, law.F(1), 1+math.Exp(-1))
	prms := law.GetPrms(false)
	chk.IntAssert(len(prms), 3)

	if _, err = NewLaw("quadratic"); err == nil {
		tst.Errorf("unknown law should fail\n")
	}
	if _, err = Build("lin", fun.Params{&fun.P{N: "slope", V: 1}}); err == nil {
		tst.Errorf("invalid parameter should fail\n")
	}
}

func Test_profile01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("profile01. positivity check")

	ok := New(Cte(1), func(x float64) float64 { return math.Exp(x) })
	if err := ok.Check(21); err != nil {
		tst.Errorf("test failed: %v\n", err)
	}

	zeroMu := New(func(x float64) float64 { return 1 - x }, Cte(1))
	if err := zeroMu.Check(21); err == nil {
		tst.Errorf("stiffness vanishing at x=1 should be detected\n")
	}

	negRho := New(Cte(1), func(x float64) float64 { return x - 0.5 })
	if err := negRho.Check(21); err == nil {
		tst.Errorf("negative density should be detected\n")
	}

	nanMu := New(func(x float64) float64 { return math.NaN() }, Cte(1))
	if err := nanMu.Check(3); err == nil {
		tst.Errorf("NaN stiffness should be detected\n")
	}

	var empty Profile
	if err := empty.Check(3); err == nil {
		tst.Errorf("empty profile should be detected\n")
	}
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. inverse-problem stiffness")

	ref, err := Build("lin", nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mu := Interp([]float64{0, 1})
	for _, x := range utl.LinSpace(0, 1, 7) {
		if mu(x) != ref(x) {
			tst.Errorf("Interp([0,1]) must reproduce 1+x exactly. %v != %v\n", mu(x), ref(x))
		}
	}

	mu = Interp([]float64{0.5, 0.25})
	chk.Float64(tst, "mu(0)", 1e-15, mu(0), 1.5)
	chk.Float64(tst, "mu(1)", 1e-15, mu(1), 1.25)
	chk.Float64(tst, "mu(½)", 1e-15, mu(0.5), 1.375)
}
