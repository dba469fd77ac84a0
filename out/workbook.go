// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aanpilovv/anpilov/disp"
	"github.com/aanpilovv/anpilov/modal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetDisp = "dispersion"
	SheetWave = "wavefield"
)

// WriteWorkbook saves the dispersion set and the wavefield to dirout/fnkey.xlsx. The
// dispersion sheet has one row per frequency: κ followed by the roots in ascending
// order. The wavefield sheet has the columns x1, Re u, Im u and |u|. Nil inputs are
// skipped.
func WriteWorkbook(dirout, fnkey string, set disp.Set, fld *modal.Field) (err error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	sheet := func(name string) (*excelize.StreamWriter, error) {
		if first {
			first = false
			f.SetSheetName("Sheet1", name)
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		return f.NewStreamWriter(name)
	}

	if set != nil {
		sw, err := sheet(SheetDisp)
		if err != nil {
			return err
		}
		header := []interface{}{"kappa"}
		for i := 0; i < maxCount(set); i++ {
			header = append(header, io.Sf("alpha%d", i))
		}
		if err = sw.SetRow("A1", header); err != nil {
			return err
		}
		for i, e := range set {
			alphas := append([]float64{}, e.Alphas...)
			sort.Float64s(alphas)
			row := []interface{}{e.Kappa}
			for _, α := range alphas {
				row = append(row, α)
			}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err = sw.SetRow(cell, row); err != nil {
				return err
			}
		}
		if err = sw.Flush(); err != nil {
			return err
		}
	}

	if fld != nil {
		sw, err := sheet(SheetWave)
		if err != nil {
			return err
		}
		if err = sw.SetRow("A1", []interface{}{"x1", "Re u", "Im u", "|u|"}); err != nil {
			return err
		}
		re, im, abs := fld.Re(), fld.Im(), fld.Abs()
		for i, x := range fld.X {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err = sw.SetRow(cell, []interface{}{x, re[i], im[i], abs[i]}); err != nil {
				return err
			}
		}
		if err = sw.Flush(); err != nil {
			return err
		}
	}

	if first {
		return chk.Err("nothing to write to workbook %q", fnkey)
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return err
	}
	return f.SaveAs(filepath.Join(dirout, fnkey+".xlsx"))
}

// maxCount returns the largest number of roots of all entries
func maxCount(set disp.Set) (n int) {
	for _, c := range set.Counts() {
		if c > n {
			n = c
		}
	}
	return
}
