// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analyses of stress and strain states and analytical
// solutions for simple biomechanical structures
package ana

import (
	"math"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// StressAnalysis collects the quantities characterising a 3D stress state
//
//          σ33
//           ^
//           |  σ23
//       σ13 +---->
//          /|
//         / |           principal values:  σ1 ≥ σ2 ≥ σ3
//   σ11  v  +---> σ22   principal dirs:    n1, n2, n3 (right-handed)
//
type StressAnalysis struct {

	// input
	T    [][]float64 // stress tensor (3x3, symmetric)
	Npts int         // number of points to sample the characteristic polynomial

	// invariants and characteristic polynomial
	I1, I2, I3 float64   // principal invariants
	RootsCubic []float64 // roots from the closed-form solution
	RootsScan  []float64 // roots from sampling + Brent's method
	ScanMin    float64   // lower bound of sampling range
	ScanMax    float64   // upper bound of sampling range

	// principal values and directions
	Vals  []float64   // principal stresses from eigen decomposition
	Dirs  [][]float64 // principal directions
	Dots  []float64   // n_i⋅n_j for i < j
	Norms []float64   // |n_i|

	// maximum shear
	TauMax    float64     // (σ1 - σ3)/2
	ShearDirs [][]float64 // normals of the planes of maximum shear
	ShearAxis []float64   // intermediate principal direction

	// deviatoric quantities
	Mean   float64     // mean (hydrostatic) stress I1/3
	Dev    [][]float64 // deviatoric stress
	J2, J3 float64     // deviatoric invariants
	SigOct float64     // octahedral normal stress
	TauOct float64     // octahedral shear stress
	Lode   float64     // Lode angle [rad]

	// equivalent stress and yield
	VonMises      float64     // σvm from components
	VonMisesPrinc float64     // σvm from principal values
	Yield         *YieldCheck // yield check; nil if no yield strength was given
	SafetyFactor  float64     // σy / σvm
	Safe          bool        // σvm < σy
}

// Init runs the analysis
//  Parameters:
//   "npts" -- number of sampling points for the graphical roots [default = 201]
//   "sigy" -- yield strength [optional]
func (o *StressAnalysis) Init(T [][]float64, prms dbf.Params) (err error) {

	// input
	err = ten.CheckSym(T, ten.SymTol)
	if err != nil {
		return
	}
	if len(T) != 3 {
		return chk.Err("stress analysis requires a 3x3 tensor")
	}
	o.T = ten.Clone(T)
	o.Npts = 201
	for _, p := range prms {
		switch p.N {
		case "npts":
			o.Npts = int(p.V)
		}
	}

	// invariants and roots
	o.I1, o.I2, o.I3 = ten.Invariants(o.T)
	o.RootsCubic = ten.CharRoots(o.I1, o.I2, o.I3)
	lo, hi := ten.GershgorinRange(o.T)
	pad := 0.1 * math.Max(hi-lo, 1)
	o.ScanMin, o.ScanMax = lo-pad, hi+pad
	o.RootsScan, err = ten.CharRootsScan(o.I1, o.I2, o.I3, o.ScanMin, o.ScanMax, o.Npts)
	if err != nil {
		return
	}

	// eigen decomposition
	o.Vals, o.Dirs, err = ten.PrincValsVecs(o.T)
	if err != nil {
		return
	}
	o.Dots, o.Norms = ten.OrthoCheck(o.Dirs)

	// maximum shear
	var m1, m2 []float64
	o.TauMax, m1, m2, o.ShearAxis = ten.MaxShear(o.Vals, o.Dirs)
	o.ShearDirs = [][]float64{m1, m2}

	// deviatoric
	o.Dev, o.Mean = ten.Dev(o.T)
	o.J2, o.J3 = ten.DevInvariants(o.T)
	o.SigOct, o.TauOct = ten.Octahedral(o.T)
	o.Lode = ten.LodeAngle(o.T)

	// von Mises
	o.VonMises = ten.VonMises(o.T)
	o.VonMisesPrinc = ten.VonMisesPrinc(o.Vals[0], o.Vals[1], o.Vals[2])
	if HasPrm(prms, "sigy") {
		o.Yield = new(YieldCheck)
		err = o.Yield.Init(prms)
		if err != nil {
			return
		}
		o.SafetyFactor, o.Safe = o.Yield.Check(o.VonMises)
	}
	return
}

// Residual returns the largest difference between the closed-form roots of the
// characteristic polynomial and the eigenvalues
func (o StressAnalysis) Residual() (res float64) {
	for i := range o.Vals {
		res = math.Max(res, math.Abs(o.RootsCubic[i]-o.Vals[i]))
	}
	return
}

// Traction returns the normal and shear stresses on the plane with normal n
func (o StressAnalysis) Traction(n []float64) (σn, τn float64) {
	return ten.NormalShearOn(o.T, n)
}
