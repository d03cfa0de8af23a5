// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/Lima98/TKT4150/kin"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/fun/dbf"
)

// NeoHooke implements a compressible neo-Hookean model for soft tissues
//
//  σ = G/J (b - I) + λ ln(J)/J I     with  b = F⋅Fᵀ  and  J = det F
//
//  G and λ are the shear modulus and Lamé's first parameter of the linearised
//  model, thus σ → Hooke's law for small strains
type NeoHooke struct {
	E   float64 // Young's modulus (small strains)
	Nu  float64 // Poisson's coefficient (small strains)
	Rho float64 // density
	G   float64 // shear modulus
	Lam float64 // Lamé's first parameter
}

// add model to factory
func init() {
	allocators["neo-hooke"] = func() Model { return new(NeoHooke) }
}

// Init initialises model
//  Parameters: either "E" and "nu" or "K" and "G"; "rho" is optional
func (o *NeoHooke) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.E, o.Nu, o.Rho, err = elasticPrms(prms)
	if err != nil {
		return
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHooke) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "nu", V: 0.49},
		&dbf.P{N: "rho", V: 1.06e-3},
	}
}

// GetRho returns density
func (o NeoHooke) GetRho() float64 {
	return o.Rho
}

// Cauchy computes the Cauchy stress for given deformation gradient. 2x2
// gradients are taken as plane strain (F33 = 1)
func (o NeoHooke) Cauchy(F [][]float64) (σ [][]float64, err error) {
	F3 := ten.Expand3(F)
	if len(F) == 2 {
		F3[2][2] = 1
	}
	J, err := kin.Jacobian(F3)
	if err != nil {
		return nil, err
	}
	b := kin.LeftCauchyGreen(F3)
	c := o.Lam * math.Log(J) / J
	σ = ten.Alloc()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = o.G / J * b[i][j]
		}
		σ[i][i] += c - o.G/J
	}
	return
}
