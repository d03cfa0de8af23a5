// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements isotropic linear elasticity (Hooke's law)
//
//  σ = λ tr(ε) I + 2 G ε
//  ε = (1+ν)/E σ - ν/E tr(σ) I
//
//  Plane stress (pstress = true): σ33 = σ13 = σ23 = 0 and ε33 = -ν/(1-ν) (ε11 + ε22)
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived
	K   float64 // bulk modulus
	G   float64 // shear modulus
	Lam float64 // Lamé's first parameter λ

	// options
	Ndim    int  // space dimension
	Pstress bool // plane stress (2D only)
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
//  Parameters: either "E" and "nu" or "K" and "G"; "rho" is optional
func (o *LinElast) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.Ndim, o.Pstress = ndim, pstress
	if pstress && ndim != 2 {
		return chk.Err("plane stress requires ndim = 2; ndim=%d is invalid", ndim)
	}
	o.E, o.Nu, o.Rho, err = elasticPrms(prms)
	if err != nil {
		return
	}
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 17000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 1.9e-3},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// Stress computes stresses for given strains
func (o LinElast) Stress(ε [][]float64) (σ [][]float64, err error) {
	err = ten.CheckSym(ε, ten.SymTol)
	if err != nil {
		return
	}
	e := ten.Expand3(ε)
	σ = ten.Alloc()
	if o.Pstress {
		λb := 2.0 * o.G * o.Lam / (o.Lam + 2.0*o.G) // λ with σ33 eliminated
		tr := e[0][0] + e[1][1]
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				σ[i][j] = 2.0 * o.G * e[i][j]
			}
			σ[i][i] += λb * tr
		}
		return
	}
	tr := ten.Tr(e)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = 2.0 * o.G * e[i][j]
		}
		σ[i][i] += o.Lam * tr
	}
	return
}

// Strain computes strains for given stresses
func (o LinElast) Strain(σ [][]float64) (ε [][]float64, err error) {
	err = ten.CheckSym(σ, ten.SymTol)
	if err != nil {
		return
	}
	s := ten.Expand3(σ)
	if o.Pstress && (s[2][2] != 0 || s[0][2] != 0 || s[1][2] != 0) {
		return nil, chk.Err("out-of-plane stress components must be zero in plane stress")
	}
	tr := ten.Tr(s)
	ε = ten.Alloc()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ε[i][j] = (1.0 + o.Nu) / o.E * s[i][j]
		}
		ε[i][i] -= o.Nu / o.E * tr
	}
	return
}

// elasticPrms reads isotropic elastic parameters
func elasticPrms(prms dbf.Params) (E, ν, ρ float64, err error) {
	var K, G float64
	var hasE, hasNu, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasNu = p.V, true
		case "K":
			K, hasK = p.V, true
		case "G":
			G, hasG = p.V, true
		case "rho":
			ρ = p.V
		}
	}
	switch {
	case hasE && hasNu:
	case hasK && hasG:
		E = 9.0 * K * G / (3.0*K + G)
		ν = (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
	default:
		return 0, 0, 0, chk.Err("elastic models require either \"E\" and \"nu\" or \"K\" and \"G\"")
	}
	if E <= 0 || ν <= -1 || ν >= 0.5 {
		return 0, 0, 0, chk.Err("elastic parameters are invalid: E=%g, nu=%g", E, ν)
	}
	return
}
