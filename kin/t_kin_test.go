// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"math"
	"testing"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_shear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shear01. homogeneous deformation x1 = X1 + a X2, x2 = (1+a) X2")

	a := 0.1
	F, err := DefGrad([][]float64{{0, a}, {0, a}})
	if err != nil {
		tst.Errorf("DefGrad failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "F", 1e-14, F, [][]float64{{1, 0.1}, {0, 1.1}})

	// corners
	X := UnitSquare(2)
	x := MapPoints(F, X)
	io.Pforan("x = %v\n", x)
	chk.Deep2(tst, "x", 1e-14, x, [][]float64{{0, 0}, {1, 0}, {1.1, 1.1}, {0.1, 1.1}})

	// diagonals
	chk.Float64(tst, "λ_AC", 1e-14, LineStretch(F, X[0], X[2]), 1.1)
	chk.Float64(tst, "λ_BD", 1e-14, LineStretch(F, X[1], X[3]), math.Sqrt(1.01))

	// shear angle
	γ := ShearAngle(F, 0, 1)
	io.Pforan("γ = %v\n", γ)
	chk.Float64(tst, "γ", 1e-14, γ, math.Atan(0.1/1.1))

	// strains
	E := GreenFromF(F)
	chk.Deep2(tst, "E", 1e-14, E, [][]float64{{0, 0.05}, {0.05, 0.11}})
	chk.Deep2(tst, "E(H)", 1e-14, GreenLagrange(DispGrad(F)), E)

	// longitudinal strains agree with stretches
	for _, θ := range []float64{0, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4} {
		λ := StretchAt(F, θ)
		εG := LongStrainGreen(E, []float64{math.Cos(θ), math.Sin(θ)})
		chk.Float64(tst, io.Sf("εG(%.2f)", θ), 1e-14, εG, (λ*λ-1)/2)
	}

	// principal stretches
	λ, N, err := PrincStretches(F)
	if err != nil {
		tst.Errorf("PrincStretches failed: %v\n", err)
		return
	}
	io.Pforan("λ = %v\n", λ)
	chk.Array(tst, "λ", 1e-14, λ, []float64{math.Sqrt(1.11 + math.Sqrt(0.0221)), math.Sqrt(1.11 - math.Sqrt(0.0221))})
	Ek, err := ten.PrincVals(E)
	if err != nil {
		tst.Errorf("PrincVals failed: %v\n", err)
		return
	}
	chk.Array(tst, "Ek", 1e-14, Ek, []float64{0.055 + math.Sqrt(0.005525), 0.055 - math.Sqrt(0.005525)})
	λg, err := StretchesFromGreen(Ek)
	if err != nil {
		tst.Errorf("StretchesFromGreen failed: %v\n", err)
		return
	}
	chk.Array(tst, "λ(E)", 1e-14, λg, λ)
	chk.Float64(tst, "λ(N1)", 1e-14, Stretch(F, N[0]), λ[0])

	// sweep
	sw := StretchSweep(F, 3601)
	io.Pforan("θmax, λmax = %v, %v\n", sw.ThetaMax, sw.LambdaMax)
	chk.Float64(tst, "λmax", 1e-5, sw.LambdaMax, λ[0])
	chk.Float64(tst, "λmin", 1e-5, sw.LambdaMin, λ[1])
	θN1 := math.Atan2(N[0][1], N[0][0])
	chk.Float64(tst, "sin θmax", 1e-2, math.Abs(math.Sin(sw.ThetaMax-θN1)), 0)

	// volume ratio
	J, err := Jacobian(F)
	if err != nil {
		tst.Errorf("Jacobian failed: %v\n", err)
		return
	}
	chk.Float64(tst, "J", 1e-14, J, 1.1)

	if chk.Verbose {
		plt.Reset(false, nil)
		plt.Plot(sw.Theta, sw.Lambda, &plt.A{C: "b", L: "$\\lambda(\\theta)$"})
		plt.PlotOne(sw.ThetaMax, sw.LambdaMax, &plt.A{C: "r", M: "o"})
		plt.PlotOne(sw.ThetaMin, sw.LambdaMin, &plt.A{C: "g", M: "o"})
		plt.Gll("$\\theta$", "$\\lambda$", nil)
		plt.Save("/tmp/tkt4150", "kin_shear01")
	}
}

func Test_strains01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strains01. strain measures from displacement gradient")

	H := [][]float64{
		{0.02, 0.01, 0.005},
		{0.015, 0.03, 0.008},
		{0.003, 0.012, 0.025},
	}

	ε := SmallStrain(H)
	chk.Deep2(tst, "ε", 1e-14, ε, [][]float64{
		{0.02, 0.0125, 0.004},
		{0.0125, 0.03, 0.01},
		{0.004, 0.01, 0.025},
	})
	chk.Deep2(tst, "ε+ω", 1e-14, ten.Add(1, ε, 1, Rotation(H)), H)

	E := GreenLagrange(H)
	F, _ := DefGrad(H)
	chk.Deep2(tst, "E", 1e-14, E, GreenFromF(F))
	chk.Float64(tst, "E00", 1e-14, E[0][0], 0.02+(0.02*0.02+0.015*0.015+0.003*0.003)/2)

	e, err := Almansi(F)
	if err != nil {
		tst.Errorf("Almansi failed: %v\n", err)
		return
	}
	h, err := SpatialDispGrad(F)
	if err != nil {
		tst.Errorf("SpatialDispGrad failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "e(h)", 1e-14, AlmansiSpatial(h), e)

	// E = Fᵀ⋅e⋅F
	chk.Deep2(tst, "E=Fᵀ⋅e⋅F", 1e-14, ten.Dot(ten.Transpose(F), ten.Dot(e, F)), E)

	// small strains are recovered for small gradients
	Hs := [][]float64{
		{0.001, 0.0005, 0.0002},
		{0.0003, -0.0008, 0.0001},
		{0.0001, 0.0002, 0.0005},
	}
	Fs, _ := DefGrad(Hs)
	es, _ := Almansi(Fs)
	chk.Deep2(tst, "E≈ε", 2e-6, GreenLagrange(Hs), SmallStrain(Hs))
	chk.Deep2(tst, "e≈ε", 2e-6, es, SmallStrain(Hs))

	// inverted element
	_, err = Almansi([][]float64{{-1, 0}, {0, 1}})
	if err == nil {
		tst.Errorf("Almansi should fail with J < 0\n")
		return
	}
	_, err = StretchesFromGreen([]float64{-0.6})
	if err == nil {
		tst.Errorf("StretchesFromGreen should fail with E < -½\n")
		return
	}
}

func Test_jacobian01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian01. admissible deformation gradients")

	// volume preserving shear and uniform stretch
	J, err := Jacobian([][]float64{{1, 0.5, 0}, {0, 1, 0}, {0, 0, 1}})
	if err != nil {
		tst.Errorf("Jacobian failed: %v\n", err)
		return
	}
	chk.Float64(tst, "J(shear)", 1e-15, J, 1)
	J, err = Jacobian([][]float64{{1.1, 0}, {0, 1.1}})
	if err != nil {
		tst.Errorf("Jacobian failed: %v\n", err)
		return
	}
	chk.Float64(tst, "J(stretch)", 1e-15, J, 1.21)

	// reflected and collapsed configurations
	for _, F := range [][][]float64{
		{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{0, 1}, {1, 0}},
		{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
		{{1, 2}, {0.5, 1}},
	} {
		J, err = Jacobian(F)
		if err == nil {
			tst.Errorf("F=%v with J=%g should have failed\n", F, J)
			return
		}
		io.Pforan("%v\n", err)
		if _, err = Almansi(F); err == nil {
			tst.Errorf("Almansi strain of F=%v should have failed\n", F)
			return
		}
	}
	J, _ = Jacobian([][]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	chk.Float64(tst, "J(reflected)", 1e-15, J, -1)
}
