// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. tube cross-sections")

	// femur shaft: ri = 8 mm, t = 5 mm
	var tube Tube
	err := tube.Init(8, 5)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("femur shaft: %v\n", tube.String())
	chk.Float64(tst, "R", 1e-17, tube.R, 13)
	chk.Float64(tst, "A", 1e-12, tube.A, math.Pi*(169-64))
	chk.Float64(tst, "I", 1e-9, tube.I, math.Pi*(28561-4096)/4)
	chk.Float64(tst, "J", 1e-9, tube.J, math.Pi*(28561-4096)/2)

	// solid shaft (ri = 0) and thin-wall limit A ≈ 2π ri t
	err = tube.Init(0, 1)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A(solid)", 1e-15, tube.A, math.Pi)
	chk.Float64(tst, "J(solid)", 1e-15, tube.J, math.Pi/2)
	err = tube.Init(100, 0.01)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A(thin)", 1e-3, tube.A, 2*math.Pi*100*0.01)

	for _, x := range [][]float64{{-1, 1}, {8, 0}} {
		if err = tube.Init(x[0], x[1]); err == nil {
			tst.Errorf("tube with ri=%g and t=%g should have failed\n", x[0], x[1])
			return
		}
	}
}

func Test_materials01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materials01. reference materials parameters")

	var mat Material
	err := mat.Init("cortical-bone", "MPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mat.String())
	chk.Float64(tst, "E ", 1e-12, mat.E, 17000)
	chk.Float64(tst, "G ", 1e-10, mat.G, 17000/2.6)
	chk.Float64(tst, "σy", 1e-12, mat.Sy, 130)
	chk.String(tst, mat.UnitDens, "Gg/m³")

	err = mat.Init("cortical-bone", "kPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E [kPa]", 1e-8, mat.E, 17e6)
	chk.Float64(tst, "ρ [Mg/m³]", 1e-15, mat.Rho, 1.9)
	chk.String(tst, mat.UnitDens, "Mg/m³")

	err = mat.Init("cortical-bone", "GPa")
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "E [GPa]", 1e-12, mat.E, 17)
	chk.Float64(tst, "σy [GPa]", 1e-15, mat.Sy, 0.13)

	for _, x := range [][]string{{"bamboo", "MPa"}, {"steel", "psi"}} {
		if err = mat.Init(x[0], x[1]); err == nil {
			tst.Errorf("material %q in %q should have failed\n", x[0], x[1])
			return
		}
	}

	var yc YieldCheck
	err = yc.Init(mat.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	sf, safe := yc.Check(0.1)
	chk.Float64(tst, "SF", 1e-14, sf, 1.3)
	if !safe {
		tst.Errorf("0.1 GPa is below yield\n")
		return
	}
	_, safe = yc.Check(0.2)
	if safe {
		tst.Errorf("0.2 GPa is above yield\n")
		return
	}
	sf, safe = yc.Check(0)
	if !math.IsInf(sf, 1) || !safe {
		tst.Errorf("zero stress must give infinite safety factor\n")
		return
	}

	names := MaterialTypes()
	chk.Int(tst, "number of materials", len(names), 7)
	chk.String(tst, names[0], "artery")
}
