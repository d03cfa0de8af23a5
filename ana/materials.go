// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds parameters of some reference tissues and implant materials
type Material struct {

	// input
	Type     string // type of material; e.g. "cortical-bone"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	K        float64 // bulk modulus
	Rho      float64 // density
	Sy       float64 // (tensile) yield or failure strength
}

// matdata holds reference values: E [MPa], ν [-], ρ [Gg/m³], σy [MPa]
var matdata = map[string]struct {
	desc       string
	E, ν, ρ, σ float64
}{
	"cortical-bone":   {"Bone: cortical (femur, longitudinal)", 17000.0, 0.30, 1.90e-3, 130.0},
	"trabecular-bone": {"Bone: trabecular (vertebra)", 500.0, 0.30, 0.80e-3, 5.0},
	"cartilage":       {"Cartilage: articular", 10.0, 0.45, 1.10e-3, 10.0},
	"tendon":          {"Tendon: Achilles", 1200.0, 0.40, 1.12e-3, 100.0},
	"artery":          {"Arterial wall: aorta", 1.0, 0.49, 1.06e-3, 1.5},
	"steel":           {"Steel: stainless 316L implant", 193000.0, 0.30, 8.00e-3, 290.0},
	"titanium":        {"Titanium: Ti-6Al-4V implant", 114000.0, 0.34, 4.43e-3, 880.0},
}

// MaterialTypes returns the names of all available reference materials
func MaterialTypes() (names []string) {
	for name := range matdata {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// unitScale holds the factor converting MPa (and Gg/m³) to other units of
// pressure; pressure and density keep m and s as the other base units
var unitScale = map[string]struct {
	factor float64
	dens   string
}{
	"kPa": {1e3, "Mg/m³"},
	"MPa": {1, "Gg/m³"},
	"GPa": {1e-3, "Tg/m³"},
}

// Init initialises the parameters of the reference material typ in the unit of
// pressure unitPres ("kPa", "MPa" or "GPa"). The density follows the same unit
// system, e.g. Mg/m³ with kPa
func (o *Material) Init(typ, unitPres string) (err error) {
	d, ok := matdata[typ]
	if !ok {
		return chk.Err("material %q is unavailable; options are %v", typ, MaterialTypes())
	}
	u, ok := unitScale[unitPres]
	if !ok {
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}
	o.Type, o.Desc = typ, d.desc
	o.UnitPres, o.UnitDens = unitPres, u.dens
	o.E = d.E * u.factor
	o.Sy = d.σ * u.factor
	o.Rho = d.ρ * u.factor
	o.Nu = d.ν
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	return
}

// GetPrms returns the material parameters as a list of named parameters
func (o *Material) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "G", V: o.G},
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "sigy", V: o.Sy},
	}
}

// String returns a summary of the material parameters
func (o *Material) String() string {
	l := io.Sf("%s (%s)\n", o.Type, o.Desc)
	l += io.Sf("  E    = %g %s\n", o.E, o.UnitPres)
	l += io.Sf("  nu   = %g\n", o.Nu)
	l += io.Sf("  G    = %g %s\n", o.G, o.UnitPres)
	l += io.Sf("  K    = %g %s\n", o.K, o.UnitPres)
	l += io.Sf("  rho  = %g %s\n", o.Rho, o.UnitDens)
	l += io.Sf("  sigy = %g %s", o.Sy, o.UnitPres)
	return l
}
