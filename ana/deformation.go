// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/Lima98/TKT4150/kin"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Deformation analyses a homogeneous deformation x = F⋅X
//
//      D'--------C'          D ------- C
//     /         /            |         |
//    /         /      <==    |         |
//   A'--------B'             A ------- B
//
type Deformation struct {

	// input
	F      [][]float64 // deformation gradient
	X      [][]float64 // material points (default: unit square A, B, C, D)
	Labels []string    // labels of points
	Npts   int         // number of directions in stretch sweep

	// mapped geometry
	Xdef      [][]float64 // spatial points x = F⋅X
	EdgeLam   []float64   // stretch of edges X[i] → X[i+1] (closed polygon)
	DiagLam   []float64   // stretch of diagonals (four points only): AC, BD
	Gamma     float64     // change of the angle between e1 and e2 [rad]
	AlphaDef  float64     // angle between F⋅e1 and F⋅e2 [rad]
	J         float64     // det(F)
	H         [][]float64 // displacement gradient F - I
	SmallEps  [][]float64 // small strain ½(H + Hᵀ)
	Green     [][]float64 // Green-Lagrange strain
	AlmansiE  [][]float64 // Euler-Almansi strain
	GreenVals []float64   // principal Green strains
	GreenDirs [][]float64 // principal directions of E
	Lam       []float64   // principal stretches √(2 Ek + 1)
	GammaMax  float64     // engineering maximum shear (Green) E1 - E3 (E1 - E2 in 2D)

	// directions
	TestAngles []float64  // test directions [deg]
	TestLam    []float64  // stretches along test directions
	TestEpsDir []float64  // λ - 1
	TestEpsG   []float64  // n0⋅E⋅n0
	Sweep      *kin.Sweep // stretches for θ ∈ [0, 2π]
}

// Init runs the analysis
//  Parameters:
//   "npts" -- number of directions in the stretch sweep [default = 1000]
func (o *Deformation) Init(F [][]float64, X [][]float64, labels []string, prms dbf.Params) (err error) {

	// input
	err = ten.CheckShape(F)
	if err != nil {
		return
	}
	ndim := len(F)
	o.F = ten.Clone(F)
	o.Npts = 1000
	for _, p := range prms {
		switch p.N {
		case "npts":
			o.Npts = int(p.V)
		}
	}
	if o.Npts < 2 {
		return chk.Err("number of sweep directions must be at least 2; npts=%d is invalid", o.Npts)
	}
	o.J, err = kin.Jacobian(o.F)
	if err != nil {
		return
	}

	// points
	if len(X) == 0 {
		X = kin.UnitSquare(ndim)
		labels = []string{"A", "B", "C", "D"}
	}
	for i, x := range X {
		if len(x) != ndim {
			return chk.Err("point %d has %d coordinates; %d are required", i, len(x), ndim)
		}
	}
	o.X = ten.Clone(X)
	o.Labels = make([]string, len(X))
	for i := range o.Labels {
		if i < len(labels) {
			o.Labels[i] = labels[i]
		} else {
			o.Labels[i] = string(rune('A' + i%26))
		}
	}
	o.Xdef = kin.MapPoints(o.F, o.X)

	// stretches of edges and diagonals
	np := len(o.X)
	if np > 1 {
		o.EdgeLam = make([]float64, np)
		for i := 0; i < np; i++ {
			o.EdgeLam[i] = kin.LineStretch(o.F, o.X[i], o.X[(i+1)%np])
		}
	}
	if np == 4 {
		o.DiagLam = []float64{
			kin.LineStretch(o.F, o.X[0], o.X[2]),
			kin.LineStretch(o.F, o.X[1], o.X[3]),
		}
	}

	// shear angle
	o.Gamma = kin.ShearAngle(o.F, 0, 1)
	o.AlphaDef = math.Pi/2.0 - o.Gamma

	// strains
	o.H = kin.DispGrad(o.F)
	o.SmallEps = kin.SmallStrain(o.H)
	o.Green = kin.GreenFromF(o.F)
	o.AlmansiE, err = kin.Almansi(o.F)
	if err != nil {
		return
	}
	o.GreenVals, o.GreenDirs, err = ten.PrincValsVecs(o.Green)
	if err != nil {
		return
	}
	o.Lam, err = kin.StretchesFromGreen(o.GreenVals)
	if err != nil {
		return
	}
	o.GammaMax = o.GreenVals[0] - o.GreenVals[len(o.GreenVals)-1]

	// test directions
	o.TestAngles = []float64{0, 45, 90, 135}
	for _, deg := range o.TestAngles {
		θ := deg * math.Pi / 180.0
		n0 := make([]float64, ndim)
		n0[0], n0[1] = math.Cos(θ), math.Sin(θ)
		λ := kin.Stretch(o.F, n0)
		o.TestLam = append(o.TestLam, λ)
		o.TestEpsDir = append(o.TestEpsDir, λ-1)
		o.TestEpsG = append(o.TestEpsG, kin.LongStrainGreen(o.Green, n0))
	}

	// sweep
	o.Sweep = kin.StretchSweep(o.F, o.Npts)
	return
}
