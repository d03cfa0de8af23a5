// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ThinCylinder implements Laplace's law for a closed thin-walled cylindrical vessel
// (e.g. a blood vessel or the shaft of a long bone under internal pressure)
//
//        ←------------- L -------------→
//        +=============================+  ↑ t
//   σz ← |  →  →  →  p  →  →  →  →  →  | → σz
//        +=============================+
//             r: mean radius
//
//  σθ = p r / t       (hoop)
//  σz = p r / (2 t)   (axial; closed ends)
//
// Free body of a transverse cut: the pressure resultant Fp = p π r² balances the
// axial wall force Fz = σz 2π r t
type ThinCylinder struct {

	// input
	P float64 // internal (gauge) pressure
	R float64 // radius
	T float64 // wall thickness
	L float64 // length (for hoop force balance)

	// derived
	SigTheta     float64     // hoop stress
	SigZ         float64     // axial stress
	SigR         float64     // mean radial stress -p/2 (usually neglected)
	Fpressure    float64     // axial pressure resultant p π r²
	Faxial       float64     // axial wall force σz 2π r t
	Fhoop        float64     // hoop force on a longitudinal cut 2 σθ t L
	Fhoopp       float64     // pressure resultant on a longitudinal cut 2 p r L
	SigZExact    float64     // axial stress using the exact wall area π((r+t)² - r²) with inner radius r
	Wall         Tube        // wall section (tube with inner radius r)
	ThinWall     bool        // r/t ≥ 10
	VonMises     float64     // σvm of (σθ, σz, 0)
	Yield        *YieldCheck // nil if no yield strength was given
	SafetyFactor float64     // σy / σvm
	Safe         bool        // σvm < σy
}

// Init initialises this structure
//  Parameters:
//   "p"    -- internal pressure [default = 0.016 MPa ≈ 120 mmHg]
//   "r"    -- radius [default = 10 mm]
//   "t"    -- wall thickness [default = 1.5 mm]
//   "L"    -- length [default = 1]
//   "sigy" -- yield strength [optional]
func (o *ThinCylinder) Init(prms dbf.Params) (err error) {

	// default values
	o.P = 0.016
	o.R = 10
	o.T = 1.5
	o.L = 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "p":
			o.P = p.V
		case "r":
			o.R = p.V
		case "t":
			o.T = p.V
		case "L":
			o.L = p.V
		}
	}
	if o.R <= 0 || o.T <= 0 || o.L <= 0 {
		return chk.Err("radius, thickness and length must be positive. r=%g, t=%g, L=%g are invalid", o.R, o.T, o.L)
	}

	// stresses
	o.SigTheta = o.P * o.R / o.T
	o.SigZ = o.P * o.R / (2.0 * o.T)
	o.SigR = -o.P / 2.0
	o.ThinWall = o.R/o.T >= 10

	// force balances
	o.Fpressure = o.P * math.Pi * o.R * o.R
	o.Faxial = o.SigZ * 2.0 * math.Pi * o.R * o.T
	o.Fhoop = 2.0 * o.SigTheta * o.T * o.L
	o.Fhoopp = 2.0 * o.P * o.R * o.L
	err = o.Wall.Init(o.R, o.T)
	if err != nil {
		return
	}
	o.SigZExact = o.Fpressure / o.Wall.A

	// yield
	o.VonMises = ten.VonMisesPrinc(o.SigTheta, o.SigZ, 0)
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

// Tensor returns the stress tensor in cylindrical coordinates (r, θ, z) with σr = 0
func (o ThinCylinder) Tensor() [][]float64 {
	return [][]float64{
		{0, 0, 0},
		{0, o.SigTheta, 0},
		{0, 0, o.SigZ},
	}
}

// ThinSphere implements Laplace's law for a thin-walled spherical vessel (e.g. an
// aneurysm or the bladder)
//
//  σ = p r / (2 t)   (both in-plane directions)
type ThinSphere struct {
	P   float64 // internal pressure
	R   float64 // radius
	T   float64 // wall thickness
	Sig float64 // membrane stress
}

// Init initialises this structure
//  Parameters: "p", "r", "t" (as ThinCylinder)
func (o *ThinSphere) Init(prms dbf.Params) (err error) {
	o.P, o.R, o.T = 0.016, 10, 1.5
	for _, p := range prms {
		switch p.N {
		case "p":
			o.P = p.V
		case "r":
			o.R = p.V
		case "t":
			o.T = p.V
		}
	}
	if o.R <= 0 || o.T <= 0 {
		return chk.Err("radius and thickness must be positive. r=%g, t=%g are invalid", o.R, o.T)
	}
	o.Sig = o.P * o.R / (2.0 * o.T)
	return
}
