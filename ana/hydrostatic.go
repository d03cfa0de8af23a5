// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// HydrostaticColumn computes pressure (p) and intrinsic density (R) of a fluid
// along a vertical column with gravity (g); e.g. blood along the body of a
// standing person with the reference (heart) level at z = H
//
//    R  = R0 + C・(p - p0)   thus   dR/dp = C
//    dp = -R(p)・g・dz
//
//    p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)
//
//  Units: kPa, Mg/m³, m, m/s²
type HydrostaticColumn struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure at the reference level
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation of the reference level
}

// Init initialises this structure
func (o *HydrostaticColumn) Init(fluid *Fluid, p0, g, H float64) {
	o.R0 = fluid.Rho
	o.P0 = p0
	o.C = fluid.C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density at elevation z
func (o HydrostaticColumn) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Expm1(o.C*o.Grav*(o.H-z)))
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density at elevation z by integrating ξ := {p, R}
// with Radau5 over T ∈ [0, 1], where the elevation is H - T・(H - z)
func (o HydrostaticColumn) CalcNum(z float64) (p, R float64) {
	Δz := o.H - z
	if Δz == 0 {
		return o.P0, o.R0
	}
	ξ := la.NewVectorSlice([]float64{o.P0, o.R0})
	ode.Radau5simple(func(f la.Vector, dT, T float64, ξ la.Vector) {
		f[0] = ξ[1] * o.Grav * Δz // dp/dT
		f[1] = o.C * f[0]         // dR/dT
	}, nil, ξ, 1, 1e-10)
	return ξ[0], ξ[1]
}

// Delta returns the pressure increase at depth dh below the reference level
func (o HydrostaticColumn) Delta(dh float64) float64 {
	p, _ := o.Calc(o.H - dh)
	return p - o.P0
}

// Plot plots pressure and density along the height of the column
func (o HydrostaticColumn) Plot(dirout, fnkey, subscript string, np int) {
	Z := utl.LinSpace(0, o.H, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, z := range Z {
		P[i], R[i] = o.Calc(z)
	}
	pMaxLin := o.P0 + o.R0*o.Grav*o.H
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, &plt.A{C: "k", Ls: "-"})
	plt.Plot([]float64{o.P0, pMaxLin}, []float64{o.H, 0}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$p_{"+subscript+"}$ [kPa]", "$z$ [m]", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(R, Z, &plt.A{C: "r", Ls: "-"})
	plt.Plot([]float64{o.R0, o.R0 + o.C*(pMaxLin-o.P0)}, []float64{o.H, 0}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$\\rho_{"+subscript+"}$ [Mg/m³]", "$z$ [m]", nil)
	plt.Save(dirout, fnkey)
}
