// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles holds one style per curve
type Styles []plt.A

// GetCurveStyles returns styles for n dispersion curves; solid lines for the first curve
// of each colour and dashed lines afterwards
func GetCurveStyles(n int) Styles {
	colors := []string{"k", "r", "b", "g", "m", "c"}
	sty := make([]plt.A, n)
	for i := range sty {
		sty[i].C = colors[i%len(colors)]
		sty[i].Ls = "-"
		if i >= len(colors) {
			sty[i].Ls = "--"
		}
		sty[i].L = io.Sf("mode %d", i)
	}
	return sty
}

// GetTexLabel returns a TeX label for quantity key with an optional unit
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "alpha":
		l += "\\alpha"
	case "beta":
		l += "\\beta"
	case "kappa":
		l += "\\kappa"
	case "x1":
		l += "x_1"
	case "k":
		l += "k_1"
	case "re":
		l += "\\mathrm{Re}\\,u"
	case "im":
		l += "\\mathrm{Im}\\,u"
	case "abs":
		l += "|u|"
	case "amp":
		l += "|\\hat{u}|"
	case "mu":
		l += "\\mu"
	case "rho":
		l += "\\rho"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
