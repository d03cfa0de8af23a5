// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Tube holds the cross-section of a hollow circular wall (vessel, bone shaft)
//
//       , - - ,
//     ,  , - ,  ,
//    ,  ,  o--,-,--
//     ,  ' - ' ri ,
//       ' - - '  t
//
type Tube struct {
	Ri float64 // inner radius
	T  float64 // wall thickness
	R  float64 // outer radius
	A  float64 // wall area π (R² - ri²)
	I  float64 // second moment of area about a diameter π (R⁴ - ri⁴) / 4
	J  float64 // polar moment 2 I
}

// Init computes the properties of the tube with inner radius ri and thickness t
func (o *Tube) Init(ri, t float64) (err error) {
	if ri < 0 || t <= 0 {
		return chk.Err("tube requires ri ≥ 0 and t > 0. ri=%g, t=%g are invalid", ri, t)
	}
	o.Ri, o.T, o.R = ri, t, ri+t
	ro2, ri2 := o.R*o.R, ri*ri
	o.A = math.Pi * (ro2 - ri2)
	o.I = math.Pi * (ro2 - ri2) * (ro2 + ri2) / 4.0
	o.J = 2.0 * o.I
	return
}

// String returns a summary of the section properties
func (o *Tube) String() string {
	return io.Sf("tube ri=%g t=%g: A=%g I=%g J=%g", o.Ri, o.T, o.A, o.I, o.J)
}
