// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mohr implements plane stress transformations and Mohr's circles
package mohr

import (
	"math"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Plane holds an in-plane stress (or strain) state
//
//          σy
//          ^
//      τ ↗ | ↗ τ
//   ---+---+---+---> σx
//      ↙   |   ↙
//
//  Positive τ acts along +y on the face with normal +x
type Plane struct {
	Sx  float64 // normal component along x
	Sy  float64 // normal component along y
	Sxy float64 // shear component
}

// NewPlane returns the in-plane state of a 2x2 or 3x3 symmetric tensor
// (upper-left 2x2 block)
func NewPlane(T [][]float64) (o *Plane, err error) {
	err = ten.CheckSym(T, ten.SymTol)
	if err != nil {
		return
	}
	return &Plane{Sx: T[0][0], Sy: T[1][1], Sxy: T[0][1]}, nil
}

// Tensor returns the 2x2 tensor
func (o Plane) Tensor() [][]float64 {
	return [][]float64{{o.Sx, o.Sxy}, {o.Sxy, o.Sy}}
}

// Center returns the centre of Mohr's circle (σx + σy)/2
func (o Plane) Center() float64 {
	return (o.Sx + o.Sy) / 2.0
}

// Radius returns the radius of Mohr's circle, which equals the in-plane maximum shear
//  R = √[ ((σx - σy)/2)² + τ² ]
func (o Plane) Radius() float64 {
	return math.Hypot((o.Sx-o.Sy)/2.0, o.Sxy)
}

// Principal returns the in-plane principal values σ1 ≥ σ2
func (o Plane) Principal() (σ1, σ2 float64) {
	c, r := o.Center(), o.Radius()
	return c + r, c - r
}

// PrincAngleRad returns the angle θp ∈ (-π/2, π/2] between x and the σ1 direction
//  θp = ½ atan2(2τ, σx - σy)
func (o Plane) PrincAngleRad() float64 {
	return math.Atan2(2.0*o.Sxy, o.Sx-o.Sy) / 2.0
}

// PrincAngles returns the angles [degrees] between x and the principal directions;
// θ1 corresponds to σ1 and θ2 to σ2. Both are in [0, 180)
func (o Plane) PrincAngles() (θ1, θ2 float64) {
	θ1 = wrap180(o.PrincAngleRad() * 180.0 / math.Pi)
	θ2 = wrap180(θ1 + 90.0)
	return
}

// ShearAngles returns the angles [degrees] in [0, 180) between x and the normals of
// the planes of maximum in-plane shear (θ1 ± 45)
func (o Plane) ShearAngles() (θs1, θs2 float64) {
	θ1, _ := o.PrincAngles()
	return wrap180(θ1 - 45.0), wrap180(θ1 + 45.0)
}

// PrincDirs returns the unit principal directions n[0] (σ1) and n[1] (σ2)
func (o Plane) PrincDirs() (n [][]float64) {
	θ := o.PrincAngleRad()
	c, s := math.Cos(θ), math.Sin(θ)
	return [][]float64{{c, s}, {-s, c}}
}

// Rotate computes the components w.r.t axes rotated counter-clockwise by θ [rad]
//  σx' = c + d cos 2θ + τ sin 2θ
//  σy' = c - d cos 2θ - τ sin 2θ
//  τ'  =   - d sin 2θ + τ cos 2θ
//  with c = (σx + σy)/2 and d = (σx - σy)/2
func (o Plane) Rotate(θ float64) (r Plane) {
	c, d := o.Center(), (o.Sx-o.Sy)/2.0
	c2, s2 := math.Cos(2.0*θ), math.Sin(2.0*θ)
	r.Sx = c + d*c2 + o.Sxy*s2
	r.Sy = c - d*c2 - o.Sxy*s2
	r.Sxy = -d*s2 + o.Sxy*c2
	return
}

// VonMises returns the von Mises stress assuming zero out-of-plane stresses
//  σvm = √(σx² - σx σy + σy² + 3 τ²)
func (o Plane) VonMises() float64 {
	return math.Sqrt(o.Sx*o.Sx - o.Sx*o.Sy + o.Sy*o.Sy + 3.0*o.Sxy*o.Sxy)
}

// Circle returns Mohr's circle
func (o Plane) Circle() Circle {
	return Circle{C: o.Center(), R: o.Radius()}
}

// Points returns np points on Mohr's circle
func (o Plane) Points(np int) (σ, τ []float64) {
	return o.Circle().Points(np)
}

// Check returns an error if the out-of-plane components of the 3x3 tensor T are not
// negligible, i.e. if T is not a plane stress state
func Check(T [][]float64, tol float64) error {
	if len(T) != 3 {
		return nil
	}
	ref := math.Max(1, ten.MaxAbs(T))
	for _, v := range []float64{T[0][2], T[1][2], T[2][2], T[2][0], T[2][1]} {
		if math.Abs(v) > tol*ref {
			return chk.Err("tensor is not a plane state: out-of-plane components must be zero\n%v", T)
		}
	}
	return nil
}

// wrap180 maps an angle in degrees into [0, 180)
func wrap180(θ float64) float64 {
	θ = math.Mod(θ, 180.0)
	if θ < 0 {
		θ += 180.0
	}
	if θ >= 180.0-1e-12 {
		θ = 0
	}
	return θ
}

// linspace360 returns np angles in [0, 2π]
func linspace360(np int) []float64 {
	return utl.LinSpace(0, 2.0*math.Pi, np)
}
