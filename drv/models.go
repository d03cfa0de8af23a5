// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import (
	"github.com/Lima98/TKT4150/ana"
	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/mdl/solid"
	"github.com/Lima98/TKT4150/out"
	"github.com/cpmech/gosl/chk"
)

// modelStress computes the stress given by the constitutive model of analysis a
// and analyses it. Large deformation models take F; small strain models take ε
//  Note: does nothing if a.Model is empty
func modelStress(o *Main, a *inp.AnaData, res *out.Result, ε, F [][]float64) (err error) {
	if a.Model == "" {
		return
	}

	// model
	mdl, err := solid.New(a.Model)
	if err != nil {
		return
	}
	prms := o.prms(a)
	pstress := false
	if v, ok := a.GetPrm("pstress"); ok {
		pstress = v > 0
	}
	ndim := 3
	if pstress {
		ndim = 2
	}
	err = mdl.Init(ndim, pstress, prms)
	if err != nil {
		return chk.Err("cannot initialise model %q:\n%v", a.Model, err)
	}

	// stress
	var σ [][]float64
	switch m := mdl.(type) {
	case solid.Large:
		if F == nil {
			return chk.Err("model %q requires the deformation gradient", a.Model)
		}
		σ, err = m.Cauchy(F)
	case solid.Small:
		if ε == nil {
			return chk.Err("model %q requires a strain tensor", a.Model)
		}
		σ, err = m.Stress(ε)
	default:
		return chk.Err("model %q cannot compute stresses", a.Model)
	}
	if err != nil {
		return
	}

	// analysis of stress
	var s ana.StressAnalysis
	err = s.Init(σ, prms)
	if err != nil {
		return
	}
	o.Report.Model(a.Model, &s)
	res.SetMat("sig", s.T)
	res.SetVec("sigvals", s.Vals)
	res.Set("sigmean", s.Mean)
	res.Set("svm", s.VonMises)
	setYield(res, s.Yield, s.SafetyFactor, s.Safe)
	return
}
