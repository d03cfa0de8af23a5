// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// YieldCheck compares an equivalent stress with the yield strength of a material
//
//  SF = σy / σvm      safe  ⇔  σvm < σy
type YieldCheck struct {
	Sy float64 // yield strength
}

// Init initialises the yield check
//  Parameters:
//   "sigy" -- yield strength (required; > 0)
func (o *YieldCheck) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "sigy":
			o.Sy = p.V
		}
	}
	if o.Sy <= 0 {
		return chk.Err("yield strength must be positive. sigy=%g is invalid", o.Sy)
	}
	return
}

// Check computes the safety factor and whether the stress state is below yield
func (o YieldCheck) Check(σvm float64) (sf float64, safe bool) {
	if σvm == 0 {
		return math.Inf(1), true
	}
	return o.Sy / σvm, σvm < o.Sy
}

// HasPrm returns whether a parameter named n is present in prms
func HasPrm(prms dbf.Params, n string) bool {
	for _, p := range prms {
		if p.N == n {
			return true
		}
	}
	return false
}
