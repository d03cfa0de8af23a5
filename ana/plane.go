// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/Lima98/TKT4150/mohr"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/fun/dbf"
)

// PlaneStressAnalysis analyses a plane stress state (σ33 = σ13 = σ23 = 0)
type PlaneStressAnalysis struct {

	// input
	T     [][]float64 // stress tensor (2x2 or 3x3 with zero out-of-plane components)
	Plane mohr.Plane  // in-plane components

	// principal values and directions
	Vals   []float64   // in-plane principal stresses from eigen decomposition
	Dirs   [][]float64 // in-plane principal directions from eigen decomposition
	S1, S2 float64     // principal stresses from Mohr's circle
	Theta1 float64     // angle [deg] between x1 and σ1 direction, in [0, 180)
	Theta2 float64     // angle [deg] between x1 and σ2 direction, in [0, 180)
	ThetaP float64     // ½ atan2(2τ, σ11 - σ22) [deg]

	// Mohr's circle and shear
	Center    float64 // centre of Mohr's circle
	Radius    float64 // radius = in-plane maximum shear
	ThetaS1   float64 // angle [deg] of first plane of maximum in-plane shear
	ThetaS2   float64 // angle [deg] of second plane of maximum in-plane shear
	TauMax3d  float64 // absolute maximum shear including σ3 = 0
	Circles3d []mohr.Circle

	// equivalent stress and yield
	VonMises     float64     // σvm with σ3 = 0
	Yield        *YieldCheck // nil if no yield strength was given
	SafetyFactor float64     // σy / σvm
	Safe         bool        // σvm < σy
}

// Init runs the analysis
//  Parameters:
//   "sigy" -- yield strength [optional]
func (o *PlaneStressAnalysis) Init(T [][]float64, prms dbf.Params) (err error) {

	// input
	err = ten.CheckSym(T, ten.SymTol)
	if err != nil {
		return
	}
	err = mohr.Check(T, ten.SymTol)
	if err != nil {
		return
	}
	o.T = ten.Clone(T)
	pl, err := mohr.NewPlane(o.T)
	if err != nil {
		return
	}
	o.Plane = *pl

	// eigen decomposition of the in-plane block
	o.Vals, o.Dirs, err = ten.PrincValsVecs(o.Plane.Tensor())
	if err != nil {
		return
	}

	// Mohr's circle
	o.S1, o.S2 = o.Plane.Principal()
	o.Theta1, o.Theta2 = o.Plane.PrincAngles()
	o.ThetaP = o.Plane.PrincAngleRad() * 180.0 / math.Pi
	o.Center, o.Radius = o.Plane.Center(), o.Plane.Radius()
	o.ThetaS1, o.ThetaS2 = o.Plane.ShearAngles()
	o.Circles3d = mohr.Circles3d(o.S1, o.S2, 0)
	o.TauMax3d = o.Circles3d[0].R

	// von Mises
	o.VonMises = ten.VonMisesPrinc(o.S1, o.S2, 0)
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
