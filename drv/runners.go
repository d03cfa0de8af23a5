// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import (
	"math"

	"github.com/Lima98/TKT4150/ana"
	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/out"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Runner runs one analysis, writes its report and fills its results
type Runner func(o *Main, a *inp.AnaData, res *out.Result) error

// runners holds all available runners
var runners = map[string]Runner{
	"stress":      runStress,
	"plane":       runPlane,
	"strain":      runStrain,
	"deformation": runDeformation,
	"vessel":      runVessel,
	"sphere":      runSphere,
	"thick":       runThick,
	"column":      runColumn,
}

// KPa2Unit holds the factors converting kPa to the unit of pressure of a case
var KPa2Unit = map[string]float64{"kPa": 1, "MPa": 1e-3, "GPa": 1e-6}

// Unit2M holds the factors converting the unit of length of a case to m
var Unit2M = map[string]float64{"mm": 1e-3, "cm": 1e-2, "m": 1}

// prms returns the material parameters followed by the parameters of the analysis
func (o *Main) prms(a *inp.AnaData) (prms dbf.Params) {
	prms = a.MergePrms(o.MatPrms)
	if a.Npts > 0 {
		prms = append(prms, &dbf.P{N: "npts", V: float64(a.Npts)})
	}
	return
}

func runStress(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	var s ana.StressAnalysis
	err = s.Init(a.Tensor, o.prms(a))
	if err != nil {
		return
	}
	o.Report.Stress(&s)

	// results
	res.Set("I1", s.I1)
	res.Set("I2", s.I2)
	res.Set("I3", s.I3)
	res.Set("taumax", s.TauMax)
	res.Set("mean", s.Mean)
	res.Set("J2", s.J2)
	res.Set("J3", s.J3)
	res.Set("sigoct", s.SigOct)
	res.Set("tauoct", s.TauOct)
	res.Set("lode", s.Lode)
	res.Set("svm", s.VonMises)
	res.Set("svmp", s.VonMisesPrinc)
	res.Set("residual", s.Residual())
	res.SetVec("roots", s.RootsCubic)
	res.SetVec("scan", s.RootsScan)
	res.SetVec("vals", s.Vals)
	res.SetVec("dots", s.Dots)
	res.SetVec("norms", s.Norms)
	res.SetMat("dirs", s.Dirs)
	res.SetMat("sheardirs", s.ShearDirs)
	res.SetMat("dev", s.Dev)
	setYield(res, s.Yield, s.SafetyFactor, s.Safe)

	// figures
	if o.plotting(a) {
		unit, dirout := o.Case.Units.Pres, o.Case.DirOut
		out.PlotCharPoly(&s, dirout, o.plotKey(a, "charpoly"), unit)
		out.PlotPrincDirs(s.Dirs, s.ShearDirs, dirout, o.plotKey(a, "dirs"))
		out.PlotMohr3d(s.Vals, dirout, o.plotKey(a, "mohr"), unit)
	}
	return
}

func runPlane(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	var s ana.PlaneStressAnalysis
	err = s.Init(a.Tensor, o.prms(a))
	if err != nil {
		return
	}
	o.Report.Plane(&s)

	// results
	res.Set("s1", s.S1)
	res.Set("s2", s.S2)
	res.Set("theta1", s.Theta1)
	res.Set("theta2", s.Theta2)
	res.Set("thetap", s.ThetaP)
	res.Set("center", s.Center)
	res.Set("radius", s.Radius)
	res.Set("thetas1", s.ThetaS1)
	res.Set("thetas2", s.ThetaS2)
	res.Set("taumax3d", s.TauMax3d)
	res.Set("svm", s.VonMises)
	res.SetVec("vals", s.Vals)
	res.SetMat("dirs", s.Dirs)
	setYield(res, s.Yield, s.SafetyFactor, s.Safe)

	// figures
	if o.plotting(a) {
		out.PlotPlane(&s, o.Case.DirOut, o.plotKey(a, "mohr"), o.Case.Units.Pres)
	}
	return
}

func runStrain(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	ε, err := a.StrainTensor()
	if err != nil {
		return
	}
	var s ana.StrainAnalysis
	err = s.Init(ε, o.prms(a))
	if err != nil {
		return
	}
	o.Report.Strain(&s, a.Measure)

	// results
	res.Set("I1", s.I1)
	res.Set("I2", s.I2)
	res.Set("I3", s.I3)
	res.Set("mean", s.Mean)
	res.Set("vol", s.Vol)
	res.Set("devnorm", s.DevNorm)
	res.Set("equiv", s.Equiv)
	res.Set("maxshear", s.MaxShear)
	res.Set("maxsheareng", s.MaxShearEng)
	res.Set("magnitude", s.Magnitude)
	res.SetVec("vals", s.Vals)
	res.SetVec("normal", s.EngNormal)
	res.SetVec("shear", s.EngShear)
	res.SetMat("eps", s.Eps)
	res.SetMat("dirs", s.Dirs)
	res.SetMat("dev", s.Dev)
	res.SetFlag("expansion", s.Expansion)
	res.SetFlag("tensile", s.Tensile)
	res.SetFlag("compress", s.Compress)

	// stress given by constitutive model
	var F [][]float64
	if a.Tensor == nil {
		F, err = a.DefGradTensor()
		if err != nil {
			return
		}
	}
	err = modelStress(o, a, res, ε, F)
	if err != nil {
		return
	}

	// figures
	if o.plotting(a) {
		out.PlotStrainBars(&s, o.Case.DirOut, o.plotKey(a, "bars"))
		out.PlotMohr3d(s.Vals, o.Case.DirOut, o.plotKey(a, "mohr"), "")
	}
	return
}

func runDeformation(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	F, err := a.DefGradTensor()
	if err != nil {
		return
	}
	var d ana.Deformation
	err = d.Init(F, a.Points, a.Labels, o.prms(a))
	if err != nil {
		return
	}
	o.Report.Deformation(&d)

	// results
	res.Set("J", d.J)
	res.Set("gamma", d.Gamma)
	res.Set("alphadef", d.AlphaDef)
	res.Set("gammamax", d.GammaMax)
	res.Set("lammax", d.Sweep.LambdaMax)
	res.Set("thetamax", d.Sweep.ThetaMax)
	res.Set("lammin", d.Sweep.LambdaMin)
	res.Set("thetamin", d.Sweep.ThetaMin)
	res.SetVec("edgelam", d.EdgeLam)
	res.SetVec("diaglam", d.DiagLam)
	res.SetVec("greenvals", d.GreenVals)
	res.SetVec("lam", d.Lam)
	res.SetVec("testlam", d.TestLam)
	res.SetVec("testepsdir", d.TestEpsDir)
	res.SetVec("testepsg", d.TestEpsG)
	res.SetMat("F", d.F)
	res.SetMat("xdef", d.Xdef)
	res.SetMat("small", d.SmallEps)
	res.SetMat("green", d.Green)
	res.SetMat("almansi", d.AlmansiE)
	res.SetMat("greendirs", d.GreenDirs)

	// measure requested in case file
	if a.Measure != "" {
		var ε [][]float64
		ε, err = a.StrainTensor()
		if err != nil {
			return
		}
		res.SetMat("strain", ε)
	}

	// stress given by constitutive model
	err = modelStress(o, a, res, ten.Expand3(d.SmallEps), d.F)
	if err != nil {
		return
	}

	// figures
	if o.plotting(a) {
		out.PlotDeformation(&d, o.Case.DirOut, o.plotKey(a, "deformed"))
	}
	return
}

func runVessel(o *Main, a *inp.AnaData, res *out.Result) (err error) {

	// hydrostatic increment of blood pressure at depth dh below the heart;
	// dh is given in the unit of length of the case
	prms := o.prms(a)
	dp := 0.0
	if dh, found := a.GetPrm("dh"); found {
		dh *= Unit2M[o.Case.Units.Len]
		var cyl ana.ThinCylinder
		err = cyl.Init(prms)
		if err != nil {
			return
		}
		var blood ana.Fluid
		blood.Init("blood")
		var col ana.HydrostaticColumn
		col.Init(&blood, 0, 9.81, dh)
		dp = col.Delta(dh) * KPa2Unit[o.Case.Units.Pres]
		prms = append(prms, &dbf.P{N: "p", V: cyl.P + dp})
	}

	var c ana.ThinCylinder
	err = c.Init(prms)
	if err != nil {
		return
	}
	o.Report.Vessel(&c, dp)

	// results
	res.Set("p", c.P)
	res.Set("dp", dp)
	res.Set("sigtheta", c.SigTheta)
	res.Set("sigz", c.SigZ)
	res.Set("sigr", c.SigR)
	res.Set("sigzexact", c.SigZExact)
	res.Set("fpressure", c.Fpressure)
	res.Set("faxial", c.Faxial)
	res.Set("fhoop", c.Fhoop)
	res.Set("fhoopp", c.Fhoopp)
	res.Set("svm", c.VonMises)
	res.SetMat("sig", c.Tensor())
	res.SetFlag("thinwall", c.ThinWall)
	setYield(res, c.Yield, c.SafetyFactor, c.Safe)

	// figures
	if o.plotting(a) {
		out.PlotVessel(&c, o.Case.DirOut, o.plotKey(a, "fbd"), o.Case.Units.Pres)
	}
	return
}

func runSphere(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	var s ana.ThinSphere
	err = s.Init(o.prms(a))
	if err != nil {
		return
	}
	o.Report.Sphere(&s)
	res.Set("p", s.P)
	res.Set("sig", s.Sig)
	return
}

func runThick(o *Main, a *inp.AnaData, res *out.Result) (err error) {
	var t ana.ThickCylinder
	err = t.Init(o.prms(a))
	if err != nil {
		return
	}
	nr := 11
	if a.Npts > 1 {
		nr = a.Npts
	}
	o.Report.Thick(&t, nr)

	// results
	sra, sta := t.Stresses(t.A)
	srb, stb := t.Stresses(t.B)
	res.Set("sra", sra)
	res.Set("sta", sta)
	res.Set("srb", srb)
	res.Set("stb", stb)
	res.Set("sigz", t.SigZ())
	res.Set("ub", t.Displ(t.B))
	res.SetVec("svm", []float64{t.VonMises(t.A), t.VonMises(t.B)})
	if len(a.Points) > 0 {
		sxy := utl.Alloc(len(a.Points), 3)
		for i, x := range a.Points {
			if r := math.Hypot(x[0], x[1]); r < t.A || r > t.B {
				return chk.Err("point (%g, %g) is outside the wall: r=%g", x[0], x[1], r)
			}
			sxy[i][0], sxy[i][1], sxy[i][2] = t.StressXY(x[0], x[1])
		}
		res.SetMat("sxy", sxy)
	}
	if t.Y > 0 {
		res.Set("p0", t.P0)
		res.Set("plim", t.Plim)
		if t.P > t.P0 && t.P < t.Plim {
			var c float64
			c, err = t.CalcC(t.P)
			if err != nil {
				return
			}
			res.Set("c", c)
		}
	}

	// figures
	if o.plotting(a) {
		out.PlotThick(&t, out.Npts, o.Case.DirOut, o.plotKey(a, "lame"), o.Case.Units.Pres, o.Case.Units.Len)
	}
	return
}

func runColumn(o *Main, a *inp.AnaData, res *out.Result) (err error) {

	// parameters [kPa, m]
	p0, g, H := 13.3, 9.81, 1.2
	for _, p := range a.Prms {
		switch p.N {
		case "p0":
			p0 = p.V
		case "g":
			g = p.V
		case "H":
			H = p.V
		}
	}
	if g <= 0 || H <= 0 {
		return chk.Err("gravity and height of column must be positive. g=%g, H=%g are invalid", g, H)
	}
	var fluid ana.Fluid
	fluid.Init(a.Fluid)
	var col ana.HydrostaticColumn
	col.Init(&fluid, p0, g, H)

	// depths below reference level
	n := 5
	if a.Npts > 1 {
		n = a.Npts
	}
	depths := utl.LinSpace(0, H, n)
	o.Report.Column(&col, depths)

	// results
	P := make([]float64, n)
	R := make([]float64, n)
	Dp := make([]float64, n)
	for i, dh := range depths {
		P[i], R[i] = col.Calc(H - dh)
		Dp[i] = P[i] - p0
	}
	res.Set("p0", p0)
	res.Set("rho0", col.R0)
	res.Set("H", H)
	res.SetVec("depth", depths)
	res.SetVec("p", P)
	res.SetVec("dp", Dp)
	res.SetVec("rho", R)

	// numerical integration of the column
	Pnum := make([]float64, n)
	for i, dh := range depths {
		Pnum[i], _ = col.CalcNum(H - dh)
	}
	res.SetVec("pnum", Pnum)

	// figures
	if o.plotting(a) {
		out.PlotColumn(&col, o.Case.DirOut, o.plotKey(a, "column"))
	}
	return
}

// setYield sets results of yield check
func setYield(res *out.Result, y *ana.YieldCheck, sf float64, safe bool) {
	if y == nil {
		return
	}
	res.Set("sigy", y.Sy)
	res.Set("sf", sf)
	res.SetFlag("safe", safe)
}
