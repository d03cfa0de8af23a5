// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/Lima98/TKT4150/kin"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
)

// Measures holds the names of the available strain measures
var Measures = []string{"small", "green", "almansi", "almansi-spatial"}

// DefGradTensor returns the deformation gradient given directly or computed as F = I + H
func (o *AnaData) DefGradTensor() (F [][]float64, err error) {
	if o.DefGrad != nil {
		err = ten.CheckShape(o.DefGrad)
		if err != nil {
			return
		}
		return ten.Clone(o.DefGrad), nil
	}
	if o.DispGrad != nil {
		return kin.DefGrad(o.DispGrad)
	}
	return nil, chk.Err("\"defgrad\" or \"dispgrad\" must be given")
}

// StrainTensor returns the 3x3 strain tensor of this analysis. The tensor is used
// directly if given; otherwise it is computed from the displacement or the
// deformation gradient according to Measure (default = "small"). A given
// displacement gradient enters the small and Green measures without the round
// trip through F
//
//  small           ε = ½(H + Hᵀ)
//  green           E = ½(H + Hᵀ + Hᵀ⋅H)
//  almansi         e = ½(I - F⁻ᵀ⋅F⁻¹)
//  almansi-spatial e = ½(h + hᵀ - hᵀ⋅h)  with  h = I - F⁻¹
func (o *AnaData) StrainTensor() (ε [][]float64, err error) {
	if o.Tensor != nil {
		err = ten.CheckShape(o.Tensor)
		if err != nil {
			return
		}
		return ten.Expand3(o.Tensor), nil
	}
	err = o.checkMeasure()
	if err != nil {
		return
	}
	F, err := o.DefGradTensor()
	if err != nil {
		return
	}
	var H [][]float64
	if o.DefGrad == nil {
		H = ten.Clone(o.DispGrad)
	} else {
		H = kin.DispGrad(F)
	}
	switch o.Measure {
	case "", "small":
		ε = kin.SmallStrain(H)
	case "green":
		ε = kin.GreenLagrange(H)
	case "almansi":
		ε, err = kin.Almansi(F)
	case "almansi-spatial":
		var h [][]float64
		h, err = kin.SpatialDispGrad(F)
		if err == nil {
			ε = kin.AlmansiSpatial(h)
		}
	}
	if err != nil {
		return nil, err
	}
	return ten.Expand3(ε), nil
}

// checkMeasure checks the name of the strain measure
func (o *AnaData) checkMeasure() error {
	if o.Measure == "" {
		return nil
	}
	for _, m := range Measures {
		if o.Measure == m {
			return nil
		}
	}
	return chk.Err("strain measure %q is unavailable; options are %v", o.Measure, Measures)
}
