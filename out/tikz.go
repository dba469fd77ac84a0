// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of dispersion sets and wavefields: pgfplots
// coordinates, figures and workbooks
package out

import (
	"bytes"

	"github.com/aanpilovv/anpilov/disp"
	"github.com/aanpilovv/anpilov/modal"
	"github.com/cpmech/gosl/io"
)

// TikzDispersion returns a tikzpicture with one curve (α, κ) per root index. The roots
// of each entry are taken in ascending order.
func TikzDispersion(set disp.Set) *bytes.Buffer {
	var b bytes.Buffer
	tikzBegin(&b)
	for i := 0; i < set.NumCurves(); i++ {
		alphas, kappas := set.Curve(i)
		io.Ff(&b, "\\addplot[smooth, black] plot coordinates{\n")
		for j, α := range alphas {
			io.Ff(&b, "(%g, %g) ", α, kappas[j])
		}
		io.Ff(&b, "};\n")
	}
	tikzEnd(&b)
	return &b
}

// TikzWavefield returns a tikzpicture with the real (red) and imaginary (blue) parts of
// the wavefield
func TikzWavefield(fld *modal.Field) *bytes.Buffer {
	var b bytes.Buffer
	tikzBegin(&b)
	for k, part := range [][]float64{fld.Re(), fld.Im()} {
		io.Ff(&b, "\\addplot[smooth, %s] plot coordinates{\n", partColors[k])
		for i, x := range fld.X {
			io.Ff(&b, "(%g, %g) ", x, part[i])
		}
		io.Ff(&b, "};\n")
	}
	tikzEnd(&b)
	return &b
}

// WriteTikz saves the dispersion set and the wavefield (if not nil) to
//   dirout/fnkey-disp.tex and dirout/fnkey-wave.tex
func WriteTikz(dirout, fnkey string, set disp.Set, fld *modal.Field) {
	if set != nil {
		io.WriteFileSD(dirout, fnkey+"-disp.tex", TikzDispersion(set).String())
	}
	if fld != nil {
		io.WriteFileSD(dirout, fnkey+"-wave.tex", TikzWavefield(fld).String())
	}
}

var partColors = []string{"red", "blue"}

func tikzBegin(b *bytes.Buffer) {
	io.Ff(b, "\\begin{tikzpicture}[scale=1.5]\n")
	io.Ff(b, "\\begin{axis}[grid]\n")
}

func tikzEnd(b *bytes.Buffer) {
	io.Ff(b, "\\end{axis}\n")
	io.Ff(b, "\\end{tikzpicture}\n")
}
