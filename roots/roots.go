// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package roots implements the bracketing and secant refinement used to locate
// the zeros of the characteristic function
package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
)

// default values
const (
	Eps   = 1e-7 // default tolerance on |b - a|
	MaxIt = 100  // default max number of refinement iterations
)

// ErrNonConvergence indicates that the secant refinement did not converge
var ErrNonConvergence = errors.New("secant refinement did not converge")

// Func is a real scalar function whose evaluation may fail
type Func func(x float64) (float64, error)

// Finder locates the zeros of a real function
type Finder struct {
	Eps   float64 // tolerance on |b - a|; 0 means Eps
	MaxIt int     // max number of iterations; 0 means MaxIt
}

// Refine refines the bracket [a,b] with the two-sided secant update
//
//    a ← b - (b - a)・f(b) / (f(b) - f(a))
//    b ← a - (a - b)・f(a) / (f(a) - f(b))
//
// where the second line uses the updated a and the function values of the
// previous iteration. Both endpoints move on every iteration, which stops when
// |b - a| ≤ ϵ; b is returned. An endpoint that is an exact zero is returned
// immediately.
func (o Finder) Refine(a, b float64, f Func) (float64, error) {
	eps, maxit := o.settings()
	for it := 0; math.Abs(b-a) > eps; it++ {
		if it == maxit {
			return b, fmt.Errorf("[%g, %g] after %d iterations: %w", a, b, maxit, ErrNonConvergence)
		}
		fa, err := f(a)
		if err != nil {
			return b, err
		}
		if fa == 0 {
			return a, nil
		}
		fb, err := f(b)
		if err != nil {
			return b, err
		}
		if fb == 0 {
			return b, nil
		}
		if fa == fb {
			return b, fmt.Errorf("f(%g) = f(%g) = %g: %w", a, b, fa, ErrNonConvergence)
		}
		a = b - (b-a)*fb/(fb-fa)
		b = a - (a-b)*fa/(fa-fb)
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
			return b, fmt.Errorf("a = %g, b = %g: %w", a, b, ErrNonConvergence)
		}
	}
	return b, nil
}

// Bracket splits [a,b] into n subintervals of equal width and refines every
// subinterval whose endpoint values have strictly opposite signs. Hence:
//   * at most one root per subinterval is returned
//   * roots of even multiplicity (tangential) are not detected
//   * roots falling exactly on a subinterval endpoint are not detected
func (o Finder) Bracket(a, b float64, f Func, n int) (res []float64, err error) {
	if n < 1 {
		return nil, chk.Err("number of subintervals must be positive. n = %d is invalid", n)
	}
	h := (b - a) / float64(n)
	var fl, fr, root float64
	for i := 0; i < n; i++ {
		left := a + float64(i)*h
		right := left + h
		fl, err = f(left)
		if err != nil {
			return
		}
		fr, err = f(right)
		if err != nil {
			return
		}
		if fl*fr < 0 {
			root, err = o.Refine(left, right, f)
			if err != nil {
				return
			}
			res = append(res, root)
		}
	}
	return
}

// settings returns the tolerance and max number of iterations
func (o Finder) settings() (eps float64, maxit int) {
	eps, maxit = o.Eps, o.MaxIt
	if eps <= 0 {
		eps = Eps
	}
	if maxit <= 0 {
		maxit = MaxIt
	}
	return
}
