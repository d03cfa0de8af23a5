// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. solid models database")

	chk.String(tst, io.Sf("%v", Names()), "[lin-elast neo-hooke]")
	for _, name := range Names() {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(3, false, mdl.GetPrms())
		if err != nil {
			tst.Errorf("Init with example parameters failed: %v\n", err)
			return
		}
		io.Pforan("%-10s rho = %g\n", name, mdl.GetRho())
		if mdl.GetRho() <= 0 {
			tst.Errorf("density of %q must be positive\n", name)
		}
	}
	_, err := New("mohr-coulomb")
	if err == nil {
		tst.Errorf("New must fail with unknown model\n")
	}
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. Hooke's law in 3D")

	var o LinElast
	err := o.Init(3, false, []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G", 1e-12, o.G, 400)
	chk.Float64(tst, "λ", 1e-12, o.Lam, 400)
	chk.Float64(tst, "K", 1e-12, o.K, 2000.0/3.0)

	ε := [][]float64{
		{1e-3, 2e-4, 0},
		{2e-4, -5e-4, 0},
		{0, 0, 3e-4},
	}
	σ, err := o.Stress(ε)
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)
	chk.Deep2(tst, "σ", 1e-14, σ, [][]float64{
		{1.12, 0.16, 0},
		{0.16, -0.08, 0},
		{0, 0, 0.56},
	})

	εb, err := o.Strain(σ)
	if err != nil {
		tst.Errorf("Strain failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "ε(σ(ε))", 1e-15, εb, ε)

	// same constants from K and G
	var p LinElast
	err = p.Init(3, false, []*dbf.P{
		&dbf.P{N: "K", V: 2000.0 / 3.0},
		&dbf.P{N: "G", V: 400},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E", 1e-12, p.E, 1000)
	chk.Float64(tst, "ν", 1e-15, p.Nu, 0.25)
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. plane stress")

	var o LinElast
	err := o.Init(2, true, []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// uniaxial strain in the plane
	σ, err := o.Stress([][]float64{{1e-3, 0}, {0, 0}})
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	c := 1000.0 / (1.0 - 0.25*0.25)
	chk.Float64(tst, "σ11", 1e-15, σ[0][0], c*1e-3)
	chk.Float64(tst, "σ22", 1e-15, σ[1][1], c*0.25e-3)
	chk.Float64(tst, "σ33", 1e-17, σ[2][2], 0)

	ε, err := o.Strain(σ)
	if err != nil {
		tst.Errorf("Strain failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ε11", 1e-15, ε[0][0], 1e-3)
	chk.Float64(tst, "ε22", 1e-15, ε[1][1], 0)
	chk.Float64(tst, "ε33", 1e-15, ε[2][2], -1e-3/3.0)

	// errors
	_, err = o.Strain([][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}})
	if err == nil {
		tst.Errorf("Strain must fail with out-of-plane stress\n")
	}
	var p LinElast
	err = p.Init(3, true, o.GetPrms())
	if err == nil {
		tst.Errorf("Init must fail with plane stress in 3D\n")
	}
	err = p.Init(3, false, []*dbf.P{&dbf.P{N: "E", V: 1000}})
	if err == nil {
		tst.Errorf("Init must fail without Poisson's coefficient\n")
	}
	err = p.Init(3, false, []*dbf.P{&dbf.P{N: "E", V: 1000}, &dbf.P{N: "nu", V: 0.5}})
	if err == nil {
		tst.Errorf("Init must fail with ν = 0.5\n")
	}
}

func Test_neohooke01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("neohooke01. stretch along x and plane strain")

	var o NeoHooke
	err := o.Init(3, false, []*dbf.P{
		&dbf.P{N: "E", V: 1},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// undeformed
	σ, err := o.Cauchy(ten.Identity(3))
	if err != nil {
		tst.Errorf("Cauchy failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "σ(I)", 1e-17, σ, ten.Alloc())

	// F = diag(λ, 1, 1)
	λ := 1.2
	σ, err = o.Cauchy([][]float64{{λ, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	if err != nil {
		tst.Errorf("Cauchy failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", σ)
	lat := o.Lam * math.Log(λ) / λ
	chk.Float64(tst, "σ11", 1e-15, σ[0][0], o.G/λ*(λ*λ-1)+lat)
	chk.Float64(tst, "σ22", 1e-15, σ[1][1], lat)
	chk.Float64(tst, "σ33", 1e-15, σ[2][2], lat)
	chk.Float64(tst, "σ12", 1e-17, σ[0][1], 0)

	// 2x2 gradient is plane strain
	σb, err := o.Cauchy([][]float64{{λ, 0}, {0, 1}})
	if err != nil {
		tst.Errorf("Cauchy failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "σ(2D)", 1e-15, σb, σ)

	// inverted element
	_, err = o.Cauchy([][]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	if err == nil {
		tst.Errorf("Cauchy must fail with J ≤ 0\n")
	}
}

func Test_neohooke02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("neohooke02. small strains recover Hooke's law")

	prms := []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
	}
	var nh NeoHooke
	var le LinElast
	if err := nh.Init(3, false, prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if err := le.Init(3, false, prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	H := [][]float64{
		{2e-6, 1e-6, -3e-6},
		{4e-6, -1e-6, 2e-6},
		{0, 1e-6, 3e-6},
	}
	F := ten.Add(1, ten.Identity(3), 1, H)
	σnh, err := nh.Cauchy(F)
	if err != nil {
		tst.Errorf("Cauchy failed: %v\n", err)
		return
	}
	σle, err := le.Stress(ten.Sym(H))
	if err != nil {
		tst.Errorf("Stress failed: %v\n", err)
		return
	}
	io.Pforan("σ (neo-Hooke) = %v\n", σnh)
	io.Pforan("σ (Hooke)     = %v\n", σle)
	chk.Deep2(tst, "σ", 1e-7, σnh, σle)
}
