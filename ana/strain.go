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

// StrainAnalysis collects the quantities characterising a strain state
//
//  tensorial shear:    ε_ij (i ≠ j)
//  engineering shear:  γ_ij = 2 ε_ij
type StrainAnalysis struct {

	// input
	Eps [][]float64 // strain tensor (3x3, symmetric)

	// invariants and principal values
	I1, I2, I3 float64     // principal invariants
	Vals       []float64   // principal strains ε1 ≥ ε2 ≥ ε3
	Dirs       [][]float64 // principal directions

	// volumetric and deviatoric parts
	Mean    float64     // mean normal strain I1/3
	Vol     float64     // volumetric strain I1 = ΔV/V (small strains)
	Dev     [][]float64 // deviatoric strain
	DevNorm float64     // |e|
	Equiv   float64     // equivalent (von Mises) strain √(2/3 e:e)

	// engineering quantities
	EngNormal   []float64   // [ε11, ε22, ε33]
	EngShear    []float64   // [γ12, γ23, γ13]
	MaxShear    float64     // tensorial maximum shear (ε1 - ε3)/2
	MaxShearEng float64     // engineering maximum shear γmax = ε1 - ε3
	ShearDirs   [][]float64 // normals of the planes of maximum shear
	Magnitude   float64     // Frobenius norm |ε|

	// qualitative flags
	Expansion bool // Vol > 0
	Tensile   bool // ε1 > 0
	Compress  bool // ε3 < 0
}

// Init runs the analysis
//  Parameters: none yet; prms is accepted for uniformity with other analyses
func (o *StrainAnalysis) Init(ε [][]float64, prms dbf.Params) (err error) {

	// input
	err = ten.CheckSym(ε, ten.SymTol)
	if err != nil {
		return
	}
	if len(ε) != 3 {
		return chk.Err("strain analysis requires a 3x3 tensor")
	}
	o.Eps = ten.Clone(ε)

	// invariants and principal values
	o.I1, o.I2, o.I3 = ten.Invariants(o.Eps)
	o.Vals, o.Dirs, err = ten.PrincValsVecs(o.Eps)
	if err != nil {
		return
	}

	// volumetric and deviatoric
	o.Vol = o.I1
	o.Dev, o.Mean = ten.Dev(o.Eps)
	o.DevNorm = ten.Norm(o.Dev)
	o.Equiv = math.Sqrt(2.0/3.0) * o.DevNorm

	// engineering
	o.EngNormal = []float64{o.Eps[0][0], o.Eps[1][1], o.Eps[2][2]}
	o.EngShear = []float64{2 * o.Eps[0][1], 2 * o.Eps[1][2], 2 * o.Eps[0][2]}
	var m1, m2 []float64
	o.MaxShear, m1, m2, _ = ten.MaxShear(o.Vals, o.Dirs)
	o.MaxShearEng = 2 * o.MaxShear
	o.ShearDirs = [][]float64{m1, m2}
	o.Magnitude = ten.Norm(o.Eps)

	// flags
	o.Expansion = o.Vol > 0
	o.Tensile = o.Vals[0] > 0
	o.Compress = o.Vals[2] < 0
	return
}
