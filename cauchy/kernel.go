// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cauchy

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// KernelStates integrates the second-derivative system and returns the state
// {u, v, p, q, s, t} at the n midpoints x_i = (i + ½)/n
func (o Evaluator) KernelStates(α, κ complex128, n int) (states [][]complex128, err error) {
	if n < 1 {
		return nil, chk.Err("number of kernel points must be positive. n = %d is invalid", n)
	}
	sys := o.system(α, κ, 6)
	sol := o.integrator()
	y := []complex128{0, 1, 0, 0, 0, 0}
	x := 0.0
	states = make([][]complex128, n)
	for i := 0; i < n; i++ {
		xi := (float64(i) + 0.5) / float64(n)
		err = sol.Solve(sys, y, x, xi)
		if err != nil {
			return nil, err
		}
		states[i] = append([]complex128{}, y...)
		x = xi
	}
	return
}

// KernelAt combines the states computed by KernelStates into the correction kernel at x1
//
//    K = (2・u・(p - u・t/q) - i・u²・x1) / q²
func KernelAt(states [][]complex128, x1 float64) []complex128 {
	res := make([]complex128, len(states))
	for i, y := range states {
		u, p, q, t := y[0], y[2], y[3], y[5]
		res[i] = (2*u*(p-u*t/q) - 1i*u*u*complex(x1, 0)) / q / q
	}
	return res
}

// Kernel returns the correction kernel at the n midpoints for a given x1
func (o Evaluator) Kernel(α, κ complex128, n int, x1 float64) ([]complex128, error) {
	states, err := o.KernelStates(α, κ, n)
	if err != nil {
		return nil, err
	}
	return KernelAt(states, x1), nil
}

// KernelMatrix returns the rows×n matrix whose k-th row is the kernel at
// x1 = c + k・(d - c)/rows. The Cauchy problem is integrated once.
func (o Evaluator) KernelMatrix(α, κ complex128, n, rows int, c, d float64) (*mat.CDense, error) {
	if rows < 1 {
		return nil, chk.Err("number of rows must be positive. rows = %d is invalid", rows)
	}
	states, err := o.KernelStates(α, κ, n)
	if err != nil {
		return nil, err
	}
	K := mat.NewCDense(rows, n, nil)
	for k := 0; k < rows; k++ {
		x1 := c + float64(k)*(d-c)/float64(rows)
		for j, v := range KernelAt(states, x1) {
			K.Set(k, j, v)
		}
	}
	return K, nil
}
