// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_eigen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen01. principal values and directions")

	σ := exampleStress()
	λ, n, err := PrincValsVecs(σ)
	if err != nil {
		tst.Errorf("PrincValsVecs failed: %v\n", err)
		return
	}
	io.Pforan("λ = %v\n", λ)
	io.Pforan("n = %v\n", n)
	chk.Array(tst, "λ", 1e-12, λ, []float64{150, 90, 60})

	s6, s2, s3 := math.Sqrt(6), math.Sqrt2, math.Sqrt(3)
	chk.Array(tst, "n1", 1e-12, n[0], []float64{1 / s6, -2 / s6, 1 / s6})
	chk.Array(tst, "n2", 1e-12, n[1], []float64{1 / s2, 0, -1 / s2})
	chk.Array(tst, "n3", 1e-12, n[2], []float64{1 / s3, 1 / s3, 1 / s3})

	dots, norms := OrthoCheck(n)
	chk.Array(tst, "n_i⋅n_j", 1e-14, dots, []float64{0, 0, 0})
	chk.Array(tst, "|n_i|", 1e-14, norms, []float64{1, 1, 1})

	// σ⋅n = λ n
	for k := 0; k < 3; k++ {
		chk.Array(tst, io.Sf("σ⋅n%d", k+1), 1e-11, MatVec(σ, n[k]), []float64{λ[k] * n[k][0], λ[k] * n[k][1], λ[k] * n[k][2]})
	}

	// invariants from principal values
	I1, I2, I3 := Invariants(σ)
	chk.Float64(tst, "I1(λ)", 1e-11, λ[0]+λ[1]+λ[2], I1)
	chk.Float64(tst, "I2(λ)", 1e-9, λ[0]*λ[1]+λ[1]*λ[2]+λ[2]*λ[0], I2)
	chk.Float64(tst, "I3(λ)", 1e-7, λ[0]*λ[1]*λ[2], I3)

	// only values
	vals, err := PrincVals(σ)
	if err != nil {
		tst.Errorf("PrincVals failed: %v\n", err)
		return
	}
	chk.Array(tst, "vals", 1e-12, vals, λ)
}

func Test_eigen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen02. spectral decomposition and max shear")

	σ := exampleStress()
	λ, n, err := PrincValsVecs(σ)
	if err != nil {
		tst.Errorf("PrincValsVecs failed: %v\n", err)
		return
	}

	// recompose
	chk.Deep2(tst, "σ(spectral)", 1e-12, SpectralCompose(λ, n), σ)

	// eigenprojectors sum to identity
	P := Eigenprojectors(n)
	sum := Add(1, P[0], 1, P[1])
	sum = Add(1, sum, 1, P[2])
	chk.Deep2(tst, "ΣP", 1e-14, sum, Identity(3))

	// Mandel representation
	m := Ten2Man(σ)
	chk.Array(tst, "m", 1e-13, m, []float64{90, 120, 90, -30 * math.Sqrt2, -30 * math.Sqrt2, 0})
	chk.Deep2(tst, "Man2Ten", 1e-13, Man2Ten(m), σ)
	Pm := EigenprojectorsMan(n)
	chk.Array(tst, "P1(Mandel)", 1e-14, Pm[0], Ten2Man(P[0]))

	// maximum shear
	τmax, m1, m2, axis := MaxShear(λ, n)
	io.Pforan("τmax = %v\n", τmax)
	chk.Float64(tst, "τmax", 1e-12, τmax, 45)
	chk.Array(tst, "axis", 1e-15, axis, n[1])
	σn, τn := NormalShearOn(σ, m1)
	chk.Float64(tst, "σn(m1)", 1e-11, σn, 105)
	chk.Float64(tst, "τn(m1)", 1e-6, τn, 45)
	σn, τn = NormalShearOn(σ, m2)
	chk.Float64(tst, "σn(m2)", 1e-11, σn, 105)
	chk.Float64(tst, "τn(m2)", 1e-6, τn, 45)
	chk.Float64(tst, "m1⋅m2", 1e-14, VecDot(m1, m2), 0)
}

func Test_eigen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen03. plane tensor and errors")

	σ := [][]float64{{-50, 35}, {35, -70}}
	λ, n, err := PrincValsVecs(σ)
	if err != nil {
		tst.Errorf("PrincValsVecs failed: %v\n", err)
		return
	}
	R := math.Sqrt(1325)
	chk.Array(tst, "λ", 1e-12, λ, []float64{-60 + R, -60 - R})
	θ := math.Atan2(70, 20) / 2.0
	chk.Array(tst, "n1", 1e-12, n[0], []float64{math.Cos(θ), math.Sin(θ)})
	chk.Array(tst, "n2", 1e-12, n[1], []float64{-math.Sin(θ), math.Cos(θ)})

	τmax, _, _, axis := MaxShear(λ, n)
	chk.Float64(tst, "τmax", 1e-12, τmax, R)
	if axis != nil {
		tst.Errorf("axis should be nil in 2D\n")
		return
	}

	_, _, err = PrincValsVecs([][]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}})
	if err == nil {
		tst.Errorf("non-symmetric tensor should have failed\n")
	}
}

func Test_eigen04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eigen04. orientation and repeated values")

	// the directions form a right-handed basis: det[n1 n2 (n3)] = 1
	for _, a := range [][][]float64{
		{{-50, 35}, {35, -70}},
		{{2, -3}, {-3, 1}},
		{{1, 0}, {0, 5}},
		{{4, 1e-3}, {1e-3, -4}},
		exampleStress(),
		{{1, 0, 0}, {0, 5, 0}, {0, 0, 3}},
		{{-2, 4, 1}, {4, 0, -1}, {1, -1, 6}},
	} {
		λ, n, err := PrincValsVecs(a)
		if err != nil {
			tst.Errorf("PrincValsVecs failed: %v\n", err)
			return
		}
		io.Pforan("λ = %v  n = %v\n", λ, n)
		chk.Float64(tst, "det[n]", 1e-14, Det(n), 1)
		chk.Deep2(tst, "a(spectral)", 1e-12*MaxAbs(a), SpectralCompose(λ, n), a)
		for k := 0; k < len(n)-1; k++ {
			for _, x := range n[k] {
				if math.Abs(x) > 1e-10 {
					if x < 0 {
						tst.Errorf("first component of n%d must be positive: %v\n", k+1, n[k])
						return
					}
					break
				}
			}
		}
	}

	// repeated values and scaling
	λ, n, err := PrincValsVecs([][]float64{{3e6, 0, 0}, {0, 1e6, 0}, {0, 0, 3e6}})
	if err != nil {
		tst.Errorf("PrincValsVecs failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ(double)", 1e-9, λ, []float64{3e6, 3e6, 1e6})
	chk.Array(tst, "n3(double)", 1e-15, n[2], []float64{0, -1, 0}) // e1 × e3
	dots, norms := OrthoCheck(n)
	chk.Array(tst, "n_i⋅n_j", 1e-15, dots, []float64{0, 0, 0})
	chk.Array(tst, "|n_i|", 1e-15, norms, []float64{1, 1, 1})

	// null tensor
	λ, n, err = PrincValsVecs(Alloc())
	if err != nil {
		tst.Errorf("PrincValsVecs failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ(null)", 1e-15, λ, []float64{0, 0, 0})
	chk.Deep2(tst, "n(null)", 1e-15, n, Identity(3))
}
