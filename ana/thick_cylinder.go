// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// ThickCylinder implements the solution of a thick-walled cylinder under internal
// pressure P: Lamé's elastic solution with plane strain or closed ends and Hill's
// elastic-perfectly plastic solution (von Mises, plane strain)
//
//               , - - ,
//           , '         ' ,
//         ,                 ,
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,
//       ,     |  ← P →  |     ,       a: inner radius
//       ,      \ ↙ ↓ ↘ /      ,       b: outer radius
//        ,      `-...-'      ,
//         ,                 ,
//           ,            , '
//             ' - , ,  '
//
//  Elastic:  σr = A - B/r²,  σθ = A + B/r²,  A = P a²/(b² - a²),  B = A b²
//  Axial:    σz = 2 ν A (plane strain) or σz = A (closed ends)
type ThickCylinder struct {

	// input
	A          float64 // inner radius
	B          float64 // outer radius
	P          float64 // internal pressure
	E          float64 // Young's modulus
	ν          float64 // Poisson's coefficient
	σy         float64 // uniaxial yield stress (0 => plastic solution unavailable)
	ClosedEnds bool    // closed ends instead of plane strain

	// derived
	Lc   float64 // Lamé constant A
	Lb   float64 // Lamé constant B
	Y    float64 // 2 σy / √3
	P0   float64 // pressure at first yield (inner surface)
	Plim float64 // limiting pressure (fully plastic)
}

// Init initialises this structure
//  Parameters:
//   "a", "b" -- radii [default = 10, 20 mm]
//   "P"      -- internal pressure [default = 0.016 MPa]
//   "E"      -- Young's modulus [default = 1 MPa]
//   "nu"     -- Poisson's coefficient [default = 0.45]
//   "sigy"   -- yield stress [optional]
//   "closed" -- closed ends if positive [default = 0 => plane strain]
func (o *ThickCylinder) Init(prms dbf.Params) (err error) {

	// default values
	o.A = 10
	o.B = 20
	o.P = 0.016
	o.E = 1.0
	o.ν = 0.45

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "P", "p":
			o.P = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "sigy":
			o.σy = p.V
		case "closed":
			o.ClosedEnds = p.V > 0
		}
	}
	if o.A <= 0 || o.B <= o.A {
		return chk.Err("radii must satisfy 0 < a < b. a=%g, b=%g are invalid", o.A, o.B)
	}
	if o.E <= 0 || o.ν <= -1 || o.ν >= 0.5 {
		return chk.Err("elastic parameters are invalid: E=%g, nu=%g", o.E, o.ν)
	}

	// derived
	o.Lc, o.Lb = lame(o.A, o.B, o.P)
	o.Y = 2.0 * o.σy / math.Sqrt(3.0)
	o.P0 = o.Y * (1.0 - o.A*o.A/(o.B*o.B)) / 2.0
	o.Plim = o.Y * math.Log(o.B/o.A)
	return
}

// Stresses computes the elastic radial and hoop stresses at radius r
func (o ThickCylinder) Stresses(r float64) (sr, st float64) {
	c := o.Lb / (r * r)
	return o.Lc - c, o.Lc + c
}

// SigZ returns the axial stress; constant across the wall
func (o ThickCylinder) SigZ() float64 {
	if o.ClosedEnds {
		return o.Lc
	}
	return 2.0 * o.ν * o.Lc
}

// VonMises computes the elastic von Mises stress at r including σz
func (o ThickCylinder) VonMises(r float64) float64 {
	sr, st := o.Stresses(r)
	return ten.VonMisesPrinc(sr, st, o.SigZ())
}

// Displ computes the elastic radial displacement at r from the hoop strain
//  u = r εθ = r [σθ - ν (σr + σz)] / E
func (o ThickCylinder) Displ(r float64) float64 {
	sr, st := o.Stresses(r)
	return r * (st - o.ν*(sr+o.SigZ())) / o.E
}

// StressXY computes the Cartesian stress components at (x, y)
func (o ThickCylinder) StressXY(x, y float64) (sx, sy, sxy float64) {
	sr, st := o.Stresses(math.Hypot(x, y))
	return CartesianStresses(x, y, sr, st, 0)
}

// Hill's solution /////////////////////////////////////////////////////////////////////////////////

// The elastic zone c ≤ r ≤ b behaves as a cylinder with inner radius c loaded by the
// pressure that brings r = c to first yield: Pc = Y (1 - c²/b²) / 2

// boundaryPress returns the pressure Pc at the elastic/plastic boundary c
func (o ThickCylinder) boundaryPress(c float64) float64 {
	return o.Y * (1.0 - c*c/(o.B*o.B)) / 2.0
}

// HillPress computes the internal pressure for the elastic/plastic boundary c.
// The plastic zone adds Y ln(c/a) to the pressure carried by the elastic zone
func (o ThickCylinder) HillPress(c float64) float64 {
	return o.boundaryPress(c) + o.Y*math.Log(c/o.A)
}

// HillDispl computes the radial displacement at the outer surface for the
// elastic/plastic boundary c (plane strain)
//  u(b) = 2 (1 - ν²) Ac b / E   with   Ac = Pc c²/(b² - c²)
func (o ThickCylinder) HillDispl(c float64) float64 {
	Ac, _ := lame(c, o.B, o.boundaryPress(c))
	return 2.0 * (1.0 - o.ν*o.ν) * Ac * o.B / o.E
}

// CalcC computes the radius c of the elastic/plastic boundary for pressure P.
// Returns c = a if P ≤ P0 (fully elastic)
func (o ThickCylinder) CalcC(P float64) (c float64, err error) {
	if o.Y <= 0 {
		return 0, chk.Err("yield stress is required for the plastic solution")
	}
	if P <= o.P0 {
		return o.A, nil
	}
	if P >= o.Plim {
		return 0, chk.Err("pressure P=%g reaches the limit pressure Plim=%g", P, o.Plim)
	}
	ffcn := func(x float64) float64 { return o.HillPress(x) - P }
	Jfcn := func(x float64) float64 { return o.Y * (1.0/x - x/(o.B*o.B)) }
	brent := num.NewBrent(ffcn, Jfcn)
	return brent.Root(o.A, o.B), nil
}

// StressesEP computes the radial and hoop stresses at r given the elastic/plastic
// boundary c. In the plastic zone σr = -P + Y ln(r/a) and σθ = σr + Y
func (o ThickCylinder) StressesEP(c, r float64) (sr, st float64) {
	if r > c {
		Ac, Bc := lame(c, o.B, o.boundaryPress(c))
		return Ac - Bc/(r*r), Ac + Bc/(r*r)
	}
	sr = -o.HillPress(c) + o.Y*math.Log(r/o.A)
	return sr, sr + o.Y
}

// CalcPressDisp returns internal pressures and outer displacements along the
// load-displacement curve: the origin followed by np points with the
// elastic/plastic boundary going from a (first yield) to b (limit pressure)
func (o ThickCylinder) CalcPressDisp(np int) (P, Ub []float64) {
	P = make([]float64, np+1)
	Ub = make([]float64, np+1)
	for i, c := range utl.LinSpace(o.A, o.B, np) {
		P[i+1], Ub[i+1] = o.HillPress(c), o.HillDispl(c)
	}
	return
}

// CalcStresses computes the elastic stresses along the wall at nr radii
func (o ThickCylinder) CalcStresses(nr int) (R, Sr, St []float64) {
	R = utl.LinSpace(o.A, o.B, nr)
	Sr = make([]float64, nr)
	St = make([]float64, nr)
	for i, r := range R {
		Sr[i], St[i] = o.Stresses(r)
	}
	return
}

// CalcStressesEP computes elastic-plastic stresses along the wall for each pressure
func (o ThickCylinder) CalcStressesEP(Pvals []float64, nr int) (R []float64, Sr, St [][]float64, err error) {
	R = utl.LinSpace(o.A, o.B, nr)
	Sr = utl.Alloc(len(Pvals), nr)
	St = utl.Alloc(len(Pvals), nr)
	for i, P := range Pvals {
		c, e := o.CalcC(P)
		if e != nil {
			return nil, nil, nil, e
		}
		for j := 0; j < nr; j++ {
			Sr[i][j], St[i][j] = o.StressesEP(c, R[j])
		}
	}
	return
}

// lame returns the Lamé constants of a cylinder with radii ri < ro under internal
// pressure p and zero external pressure
func lame(ri, ro, p float64) (A, B float64) {
	A = p * ri * ri / (ro*ro - ri*ri)
	return A, A * ro * ro
}
