// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/Lima98/TKT4150/tests"
	"github.com/cpmech/gosl/chk"
)

func Test_ex213(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("ex2.1.3. principal stress analysis of a 3D state")

	tests.CompareResults(tst, "data/ex2.1.3.json", "cmp/ex2.1.3.cmp", "", 1e-10, chk.Verbose)
}

func Test_ex213b(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("ex2.1.3b. principal and maximum shear directions")

	main := tests.RunCase(tst, "data/ex2.1.3.json", "dirs")
	if main == nil {
		return
	}
	res := main.Get("ex2.1.3")

	// n2 is normal to the plane of maximum shear; n1 and n3 lie in it
	r := 1.0 / math.Sqrt(3)
	s := 1.0 / math.Sqrt(2)
	n := res.Matrices["dirs"]
	chk.Array(tst, "|n1|", 1e-10, abs(n[0]), []float64{r / math.Sqrt2, 2 * r / math.Sqrt2, r / math.Sqrt2})
	chk.Array(tst, "|n2|", 1e-10, abs(n[1]), []float64{s, 0, s})
	chk.Array(tst, "|n3|", 1e-10, abs(n[2]), []float64{r, r, r})

	// shear directions bisect n1 and n3
	for k, m := range res.Matrices["sheardirs"] {
		chk.Float64(tst, "m⋅n2", 1e-10, dot(m, n[1]), 0)
		chk.Float64(tst, "|m⋅n1|", 1e-10, math.Abs(dot(m, n[0])), s)
		chk.Float64(tst, "|m⋅n3|", 1e-10, math.Abs(dot(m, n[2])), s)
		if k == 0 {
			chk.Float64(tst, "m1⋅m2", 1e-10, dot(m, res.Matrices["sheardirs"][1]), 0)
		}
	}
}

func Test_ex311(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("ex3.1.1. plane stress in the femur")

	tests.CompareResults(tst, "data/ex3.1.1.yaml", "cmp/ex3.1.1.cmp", "", 1e-10, chk.Verbose)
}

func abs(v []float64) (w []float64) {
	w = make([]float64, len(v))
	for i, x := range v {
		w[i] = math.Abs(x)
	}
	return
}

func dot(u, v []float64) (res float64) {
	for i := range u {
		res += u[i] * v[i]
	}
	return
}
