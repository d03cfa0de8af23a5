// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements the kinematics of homogeneous deformations: deformation
// gradient, strain measures, stretches and shear angles
package kin

import (
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
)

// DefGrad computes the deformation gradient F = I + H from the (material)
// displacement gradient H = ∂u/∂X
func DefGrad(H [][]float64) (F [][]float64, err error) {
	err = ten.CheckShape(H)
	if err != nil {
		return
	}
	F = ten.Add(1, ten.Identity(len(H)), 1, H)
	return
}

// DispGrad computes H = F - I
func DispGrad(F [][]float64) (H [][]float64) {
	return ten.Add(1, F, -1, ten.Identity(len(F)))
}

// SmallStrain computes the infinitesimal strain tensor ε = ½(H + Hᵀ)
func SmallStrain(H [][]float64) [][]float64 {
	return ten.Sym(H)
}

// Rotation computes the infinitesimal rotation tensor ω = ½(H - Hᵀ)
func Rotation(H [][]float64) [][]float64 {
	return ten.Skew(H)
}

// GreenLagrange computes the Green-Lagrange strain tensor from the material
// displacement gradient
//  E = ½(H + Hᵀ + Hᵀ⋅H)
func GreenLagrange(H [][]float64) (E [][]float64) {
	HtH := ten.Dot(ten.Transpose(H), H)
	E = ten.Sym(H)
	for i := range E {
		for j := range E[i] {
			E[i][j] += HtH[i][j] / 2.0
		}
	}
	return
}

// RightCauchyGreen computes C = Fᵀ⋅F
func RightCauchyGreen(F [][]float64) [][]float64 {
	return ten.Dot(ten.Transpose(F), F)
}

// LeftCauchyGreen computes b = F⋅Fᵀ
func LeftCauchyGreen(F [][]float64) [][]float64 {
	return ten.Dot(F, ten.Transpose(F))
}

// GreenFromF computes the Green-Lagrange strain tensor E = ½(Fᵀ⋅F - I)
func GreenFromF(F [][]float64) [][]float64 {
	return ten.Add(0.5, RightCauchyGreen(F), -0.5, ten.Identity(len(F)))
}

// Almansi computes the Euler-Almansi strain tensor
//  e = ½(I - F⁻ᵀ⋅F⁻¹) = ½(I - b⁻¹)
func Almansi(F [][]float64) (e [][]float64, err error) {
	_, err = Jacobian(F)
	if err != nil {
		return
	}
	bi, err := ten.Inv(LeftCauchyGreen(F))
	if err != nil {
		return
	}
	return ten.Add(0.5, ten.Identity(len(F)), -0.5, bi), nil
}

// SpatialDispGrad computes the spatial displacement gradient h = ∂u/∂x = I - F⁻¹
func SpatialDispGrad(F [][]float64) (h [][]float64, err error) {
	Fi, err := ten.Inv(F)
	if err != nil {
		return
	}
	return ten.Add(1, ten.Identity(len(F)), -1, Fi), nil
}

// AlmansiSpatial computes the Euler-Almansi strain tensor from the spatial
// displacement gradient h = ∂u/∂x
//  e = ½(h + hᵀ - hᵀ⋅h)
func AlmansiSpatial(h [][]float64) (e [][]float64) {
	hth := ten.Dot(ten.Transpose(h), h)
	e = ten.Sym(h)
	for i := range e {
		for j := range e[i] {
			e[i][j] -= hth[i][j] / 2.0
		}
	}
	return
}

// Jacobian computes J = det(F), the volume ratio dv/dV. A reflected or collapsed
// configuration (J ≤ 0) is reported as an error along with J
func Jacobian(F [][]float64) (J float64, err error) {
	err = ten.CheckShape(F)
	if err != nil {
		return
	}
	J = ten.Det(F)
	if J <= 0 {
		return J, chk.Err("deformation gradient must have a positive determinant; J=%g is invalid", J)
	}
	return
}
