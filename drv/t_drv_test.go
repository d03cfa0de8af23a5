// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/mdl/solid"
	"github.com/Lima98/TKT4150/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_drv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv01. run all kinds of analyses")

	main, err := NewMain("data/all.json", "", chk.Verbose, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of results", len(main.Results), 9)

	// stress
	s := main.Get("s")
	chk.Array(tst, "σ", 1e-12, s.Vectors["vals"], []float64{150, 90, 60})
	chk.Array(tst, "scan", 1e-7, s.Vectors["scan"], []float64{150, 90, 60})
	chk.Float64(tst, "σvm", 1e-12, s.Scalars["svm"], math.Sqrt(6300))
	chk.Float64(tst, "SF", 1e-12, s.Scalars["sf"], 130/math.Sqrt(6300))
	if !s.Flags["safe"] {
		tst.Errorf("stress state should be safe\n")
		return
	}

	// plane
	p := main.Get("p")
	R := math.Sqrt(35*35 + 30*30)
	chk.Float64(tst, "σ1", 1e-12, p.Scalars["s1"], 45+R)
	chk.Float64(tst, "σ2", 1e-12, p.Scalars["s2"], 45-R)
	chk.Float64(tst, "R ", 1e-12, p.Scalars["radius"], R)

	// strain
	e := main.Get("e")
	chk.Float64(tst, "εvol", 1e-15, e.Scalars["vol"], 0.005)
	chk.Array(tst, "γ", 1e-15, e.Vectors["shear"], []float64{0.1, 0, 0})

	// deformation
	d := main.Get("d")
	chk.Float64(tst, "J", 1e-15, d.Scalars["J"], 1)
	chk.Float64(tst, "γ12", 1e-14, d.Scalars["gamma"], math.Atan(0.1))
	chk.Array(tst, "test λ", 1e-15, d.Vectors["testlam"][:1], []float64{1})

	// vessels
	v := main.Get("v")
	chk.Float64(tst, "σθ", 1e-15, v.Scalars["sigtheta"], 0.16)
	chk.Float64(tst, "σz", 1e-15, v.Scalars["sigz"], 0.08)
	chk.Float64(tst, "Δp", 1e-17, v.Scalars["dp"], 0)
	vh := main.Get("vh")
	chk.Float64(tst, "Δp (dh = 1200 mm)", 1e-6, vh.Scalars["dp"], 1.06*9.81*1.2e-3)
	chk.Float64(tst, "p+Δp", 1e-15, vh.Scalars["p"], 0.016+vh.Scalars["dp"])
	chk.Float64(tst, "σθ(p+Δp)", 1e-14, vh.Scalars["sigtheta"], vh.Scalars["p"]*10)
	chk.Float64(tst, "σ sphere", 1e-15, main.Get("sph").Scalars["sig"], 0.08)

	// thick cylinder
	t := main.Get("t")
	chk.Float64(tst, "σr(a)", 1e-12, t.Scalars["sra"], -30)
	chk.Float64(tst, "σθ(a)", 1e-12, t.Scalars["sta"], 50)
	chk.Float64(tst, "σr(b)", 1e-12, t.Scalars["srb"], 0)
	chk.Float64(tst, "σθ(b)", 1e-12, t.Scalars["stb"], 20)
	chk.Float64(tst, "σz (plane strain)", 1e-12, t.Scalars["sigz"], 2*0.3*10)
	chk.Array(tst, "σvm", 1e-12, t.Vectors["svm"], []float64{math.Sqrt((80*80 + 44*44 + 36*36) / 2.0), math.Sqrt((20*20 + 14*14 + 6*6) / 2.0)})
	chk.Float64(tst, "P0", 1e-12, t.Scalars["p0"], (260/math.Sqrt(3))*0.75/2)
	if _, ok := t.Scalars["c"]; ok {
		tst.Errorf("elastic cylinder must not have a plastic zone\n")
		return
	}

	// column
	c := main.Get("c")
	chk.Array(tst, "depth", 1e-15, c.Vectors["depth"], []float64{0, 0.6, 1.2})
	chk.Float64(tst, "Δp(1.2)", 1e-3, c.Vectors["dp"][2], 1.06*9.81*1.2)
	chk.Array(tst, "p (Radau5)", 1e-7, c.Vectors["pnum"], c.Vectors["p"])

	// files
	b, err := inp.ReadFile("/tmp/tkt4150/drv/all.txt")
	if err != nil {
		tst.Errorf("cannot read report:\n%v", err)
		return
	}
	if !strings.Contains(string(b), "[vessel] vh: vessel in the foot of a standing person") {
		tst.Errorf("report is incomplete\n")
		return
	}
	b, err = inp.ReadFile("/tmp/tkt4150/drv/all-res.json")
	if err != nil {
		tst.Errorf("cannot read results:\n%v", err)
		return
	}
	var res []*out.Result
	err = json.Unmarshal(b, &res)
	if err != nil {
		tst.Errorf("cannot decode results:\n%v", err)
		return
	}
	chk.Int(tst, "number of saved results", len(res), 9)
	chk.String(tst, res[7].Tag, "t")
}

func Test_drv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv02. errors")

	_, err := NewMain("data/badmat.yaml", "", false, false)
	if err == nil {
		tst.Errorf("unknown material should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = NewMain("data/nonexistent.json", "", false, false)
	if err == nil {
		tst.Errorf("missing case file should have failed\n")
		return
	}
}

func Test_drv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv03. stresses from constitutive models")

	main, err := NewMain("data/models.yaml", "", chk.Verbose, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// Hooke's law with the constants of cortical bone
	var le solid.LinElast
	err = le.Init(3, false, main.MatPrms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	h := main.Get("hooke")
	io.Pforan("σ = %v\n", h.Matrices["sig"])
	chk.Float64(tst, "σ11", 1e-12, h.Matrices["sig"][0][0], (le.Lam+2*le.G)*1e-3)
	chk.Float64(tst, "σ22", 1e-12, h.Matrices["sig"][1][1], le.Lam*1e-3)
	chk.Float64(tst, "σ33", 1e-12, h.Matrices["sig"][2][2], le.Lam*1e-3)
	if !h.Flags["safe"] {
		tst.Errorf("0.1%% strain of cortical bone should be safe\n")
	}

	// neo-Hookean stress is close to Hooke's for small stretches
	n := main.Get("neo")
	chk.Float64(tst, "σ11 (neo-Hooke)", 2e-3*h.Matrices["sig"][0][0], n.Matrices["sig"][0][0], h.Matrices["sig"][0][0])
	chk.Float64(tst, "σ22 (neo-Hooke)", 2e-3*h.Matrices["sig"][0][0], n.Matrices["sig"][1][1], h.Matrices["sig"][1][1])
}

func Test_drv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv04. errors with constitutive models")

	main, err := NewMain("data/badmodel.yaml", "", false, false)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err == nil {
		tst.Errorf("unknown model should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = NewMain("data/stressmodel.yaml", "", false, false)
	if err == nil {
		tst.Errorf("model in stress analysis should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	main, err = NewMain("data/badpoint.yaml", "", false, false)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = main.Run()
	if err == nil {
		tst.Errorf("point inside the bore of the cylinder should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
}
