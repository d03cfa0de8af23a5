// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// CharRoots computes the three real roots of the characteristic polynomial
//
//  p(σ) = σ³ - I1 σ² + I2 σ - I3 = 0
//
// The polynomial is scaled by s = max(|I1|/3, √|I2|, ∛|I3|) and solved with
// num.EqCubicSolveReal. When less than three roots are reported (repeated roots
// perturbed by roundoff), the remaining two come from the deflated quadratic
//
//  x² + (a + x1) x + b + x1 (a + x1) = 0,  a = -I1/s,  b = I2/s²
//
// whose discriminant is clamped to zero. A triple root I1/3 is returned when the
// scaled deviatoric invariant (a² - 3b)/9 vanishes. The invariants must come
// from a symmetric tensor. Roots are sorted in descending order
func CharRoots(I1, I2, I3 float64) (σ []float64) {
	s := math.Max(math.Abs(I1)/3.0, math.Max(math.Sqrt(math.Abs(I2)), math.Cbrt(math.Abs(I3))))
	if s == 0 {
		return []float64{0, 0, 0}
	}
	a, b, c := -I1/s, I2/(s*s), -I3/(s*s*s)
	if (a*a-3.0*b)/9.0 <= 1e-14 {
		m := I1 / 3.0
		return []float64{m, m, m}
	}
	x1, x2, x3, nx := num.EqCubicSolveReal(a, b, c)
	if nx < 3 {
		p := a + x1
		q := b + x1*p
		d := math.Sqrt(math.Max(p*p/4.0-q, 0))
		x2, x3 = -p/2.0+d, -p/2.0-d
	}
	σ = []float64{x1 * s, x2 * s, x3 * s}
	sort.Sort(sort.Reverse(sort.Float64Slice(σ)))
	return
}

// CharRootsScan finds the roots of the characteristic polynomial "graphically":
// p(σ) is sampled at npts points in [σmin, σmax]; each sign change is refined
// with Brent's method. Samples where p is exactly zero are also taken as roots.
// Repeated roots touching zero without a sign change are not detected; compare
// with CharRoots to identify them. Roots are returned in descending order
func CharRootsScan(I1, I2, I3, σmin, σmax float64, npts int) (σ []float64, err error) {
	if npts < 2 {
		return nil, chk.Err("number of sampling points must be at least 2; npts=%d is invalid", npts)
	}
	if σmax <= σmin {
		return nil, chk.Err("sampling range is invalid: [%g, %g]", σmin, σmax)
	}
	f := func(x float64) float64 { return CharPoly(x, I1, I2, I3) }
	brent := num.NewBrent(f, nil)
	xx := utl.LinSpace(σmin, σmax, npts)
	fa := f(xx[0])
	if fa == 0 {
		σ = append(σ, xx[0])
	}
	for i := 1; i < npts; i++ {
		fb := f(xx[i])
		if fb == 0 {
			σ = append(σ, xx[i])
		} else if fa*fb < 0 {
			σ = append(σ, brent.Root(xx[i-1], xx[i]))
		}
		fa = fb
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(σ)))
	return
}

// GershgorinRange returns an interval containing all eigenvalues of a
//  lo = min_i ( a_ii - Σ_{j≠i} |a_ij| )
//  hi = max_i ( a_ii + Σ_{j≠i} |a_ij| )
func GershgorinRange(a [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range a {
		var rad float64
		for j := range a[i] {
			if j != i {
				rad += math.Abs(a[i][j])
			}
		}
		lo = math.Min(lo, a[i][i]-rad)
		hi = math.Max(hi, a[i][i]+rad)
	}
	return
}
