// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/chk"

// Fluid holds reference properties of body fluids (units: kPa, Mg/m³)
type Fluid struct {
	Name string  // "blood", "water" or "plasma"
	K    float64 // bulk modulus
	Rho  float64 // intrinsic density @ body temperature
	C    float64 // compressibility Rho/K
	Mu   float64 // dynamic viscosity [Pa・s] (Newtonian approximation)
}

// Init initialises data
func (o *Fluid) Init(name string) {
	o.Name = name
	switch name {
	case "blood":
		o.K = 2.2e6   // [kPa]
		o.Rho = 1.060 // [Mg/m³] 37°C
		o.Mu = 3.5e-3 // [Pa・s]
	case "plasma":
		o.K = 2.2e6   // [kPa]
		o.Rho = 1.025 // [Mg/m³] 37°C
		o.Mu = 1.3e-3 // [Pa・s]
	case "water":
		o.K = 2.2e6       // [kPa]    25°C
		o.Rho = 0.9970479 // [Mg/m³]  25°C
		o.Mu = 0.89e-3    // [Pa・s]
	default:
		chk.Panic("fluid %q is unavailable", name)
	}
	o.C = o.Rho / o.K // [Mg/(m³・kPa)]
}
