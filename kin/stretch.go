// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"math"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Map maps a material point X to its spatial position x = F⋅X (homogeneous
// deformation with fixed origin)
func Map(F [][]float64, X []float64) []float64 {
	return ten.MatVec(F, X)
}

// MapPoints maps a set of material points
func MapPoints(F [][]float64, Xs [][]float64) (xs [][]float64) {
	xs = make([][]float64, len(Xs))
	for i, X := range Xs {
		xs[i] = Map(F, X)
	}
	return
}

// Stretch computes the stretch λ = |F⋅n0| / |n0| of a material line element along n0
func Stretch(F [][]float64, n0 []float64) float64 {
	return ten.VecNorm(ten.MatVec(F, n0)) / ten.VecNorm(n0)
}

// StretchAt computes the stretch along the in-plane direction (cos θ, sin θ) [θ in rad]
func StretchAt(F [][]float64, θ float64) float64 {
	n0 := make([]float64, len(F))
	n0[0], n0[1] = math.Cos(θ), math.Sin(θ)
	return Stretch(F, n0)
}

// LineStretch computes the stretch of the material segment AB: |F⋅(B - A)| / |B - A|
func LineStretch(F [][]float64, A, B []float64) float64 {
	d := make([]float64, len(A))
	for i := range A {
		d[i] = B[i] - A[i]
	}
	return Stretch(F, d)
}

// LongStrainGreen computes the longitudinal Green strain along n0
//  εG = n0⋅E⋅n0 / |n0|² = ½(λ² - 1)
func LongStrainGreen(E [][]float64, n0 []float64) float64 {
	return ten.VecDot(n0, ten.MatVec(E, n0)) / ten.VecDot(n0, n0)
}

// ShearAngle computes the change of the angle between two material directions
// initially along the coordinate axes i and j
//  γ = π/2 - α   with   cos α = (F⋅e_i)⋅(F⋅e_j) / (|F⋅e_i| |F⋅e_j|)
func ShearAngle(F [][]float64, i, j int) float64 {
	return ShearAngleDirs(F, unit(len(F), i), unit(len(F), j))
}

// ShearAngleDirs computes the change of the angle between the material directions
// a and b: γ = α0 - α, where α0 and α are the angles before and after deformation
func ShearAngleDirs(F [][]float64, a, b []float64) float64 {
	angle := func(u, v []float64) float64 {
		c := ten.VecDot(u, v) / (ten.VecNorm(u) * ten.VecNorm(v))
		return math.Acos(math.Max(-1, math.Min(1, c)))
	}
	return angle(a, b) - angle(ten.MatVec(F, a), ten.MatVec(F, b))
}

// Sweep holds stretches of in-plane directions (cos θ, sin θ), θ ∈ [0, 2π]
type Sweep struct {
	Theta     []float64 // angles [rad]
	Lambda    []float64 // stretches
	ThetaMax  float64   // angle of largest sampled stretch
	LambdaMax float64   // largest sampled stretch
	ThetaMin  float64   // angle of smallest sampled stretch
	LambdaMin float64   // smallest sampled stretch
}

// StretchSweep samples the stretch of np in-plane directions and locates the extremes
func StretchSweep(F [][]float64, np int) (o *Sweep) {
	o = new(Sweep)
	o.Theta = utl.LinSpace(0, 2.0*math.Pi, np)
	o.Lambda = make([]float64, np)
	o.LambdaMax, o.LambdaMin = math.Inf(-1), math.Inf(1)
	for i, θ := range o.Theta {
		o.Lambda[i] = StretchAt(F, θ)
		if o.Lambda[i] > o.LambdaMax {
			o.ThetaMax, o.LambdaMax = θ, o.Lambda[i]
		}
		if o.Lambda[i] < o.LambdaMin {
			o.ThetaMin, o.LambdaMin = θ, o.Lambda[i]
		}
	}
	return
}

// PrincStretches computes the principal stretches λk = √(eigenvalues of C) in
// descending order and the corresponding material (Lagrangian) principal directions
func PrincStretches(F [][]float64) (λ []float64, N [][]float64, err error) {
	μ, N, err := ten.PrincValsVecs(RightCauchyGreen(F))
	if err != nil {
		return
	}
	λ = make([]float64, len(μ))
	for k, v := range μ {
		if v <= 0 {
			return nil, nil, chk.Err("right Cauchy-Green tensor must be positive definite; eigenvalue=%g is invalid", v)
		}
		λ[k] = math.Sqrt(v)
	}
	return
}

// StretchesFromGreen converts principal Green-Lagrange strains into principal
// stretches λk = √(2 Ek + 1)
func StretchesFromGreen(Ek []float64) (λ []float64, err error) {
	λ = make([]float64, len(Ek))
	for k, e := range Ek {
		if 2*e+1 <= 0 {
			return nil, chk.Err("Green strain E=%g gives a non-positive squared stretch", e)
		}
		λ[k] = math.Sqrt(2*e + 1)
	}
	return
}

// UnitSquare returns the corners A, B, C, D of the unit square (or cube base) in
// counter-clockwise order
func UnitSquare(ndim int) (X [][]float64) {
	X = utl.Alloc(4, ndim)
	X[1][0] = 1
	X[2][0], X[2][1] = 1, 1
	X[3][1] = 1
	return
}

func unit(ndim, i int) (e []float64) {
	e = make([]float64, ndim)
	e[i] = 1
	return
}
