// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_cubic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic01. closed-form roots of characteristic polynomial")

	I1, I2, I3 := Invariants(exampleStress())
	σ := CharRoots(I1, I2, I3)
	io.Pforan("σ = %v\n", σ)
	chk.Array(tst, "σ", 1e-10, σ, []float64{150, 90, 60})

	// isotropic: triple root
	I1, I2, I3 = Invariants(Identity(3))
	chk.Array(tst, "σ(iso)", 1e-15, CharRoots(I1, I2, I3), []float64{1, 1, 1})

	// double root
	I1, I2, I3 = Invariants([][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 3}})
	chk.Array(tst, "σ(double)", 1e-6, CharRoots(I1, I2, I3), []float64{3, 3, 1})

	// repeated roots perturbed by roundoff (less than three real roots from the solver)
	for _, λ := range [][]float64{{90, 90, 60}, {100, -50, -50}, {5, 0, 0}, {0, 0, -5}, {1.2e6, 3e5, 3e5}} {
		I1, I2, I3 = Invariants([][]float64{{λ[0], 0, 0}, {0, λ[1], 0}, {0, 0, λ[2]}})
		σ = CharRoots(I1, I2, I3)
		io.Pforan("%v => σ = %v\n", λ, σ)
		chk.Array(tst, io.Sf("σ%v", λ), 1e-8*MaxAbs([][]float64{λ})+1e-6, σ, λ)
	}

	// null tensor
	chk.Array(tst, "σ(null)", 1e-15, CharRoots(0, 0, 0), []float64{0, 0, 0})
}

func Test_cubic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic02. graphical roots of characteristic polynomial")

	a := exampleStress()
	lo, hi := GershgorinRange(a)
	chk.Float64(tst, "lo", 1e-15, lo, 60)
	chk.Float64(tst, "hi", 1e-15, hi, 180)

	// roots on sampling points
	I1, I2, I3 := Invariants(a)
	σ, err := CharRootsScan(I1, I2, I3, 50, 190, 141)
	if err != nil {
		tst.Errorf("CharRootsScan failed: %v\n", err)
		return
	}
	chk.Array(tst, "σ(scan,exact)", 1e-10, σ, []float64{150, 90, 60})

	// roots between sampling points
	σ, err = CharRootsScan(I1, I2, I3, 50.3, 190.1, 97)
	if err != nil {
		tst.Errorf("CharRootsScan failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)
	chk.Array(tst, "σ(scan,brent)", 1e-7, σ, []float64{150, 90, 60})

	// errors
	_, err = CharRootsScan(I1, I2, I3, 50, 190, 1)
	if err == nil {
		tst.Errorf("npts=1 should have failed\n")
		return
	}
	_, err = CharRootsScan(I1, I2, I3, 190, 50, 10)
	if err == nil {
		tst.Errorf("inverted range should have failed\n")
		return
	}

	if chk.Verbose {
		x := utl.LinSpace(50, 190, 201)
		y := make([]float64, len(x))
		for i, s := range x {
			y[i] = CharPoly(s, I1, I2, I3)
		}
		plt.Reset(false, nil)
		plt.Plot(x, y, &plt.A{C: "b", Ls: "-", L: "p(σ)"})
		for _, s := range σ {
			plt.PlotOne(s, 0, &plt.A{C: "r", M: "o"})
		}
		plt.Gll("$\\sigma$", "$p(\\sigma)$", nil)
		plt.Save("/tmp/tkt4150", "ten_cubic02")
	}
}
