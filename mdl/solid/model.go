// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for solids and soft tissues
/*
 *            |    Total (elastic)
 *  ============================================
 *            |
 *    Small   | σ = f(ε)
 *            | Stress, Strain
 *            |
 *  --------------------------------------------
 *            |
 *    Large   | σ = f(F)   (Cauchy stress)
 *            | Cauchy
 *            |
 */
package solid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, pstress bool, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                                // gets (an example) of parameters
	GetRho() float64                                    // returns density
}

// Small defines solid models for small strain analyses
type Small interface {
	Stress(ε [][]float64) (σ [][]float64, err error) // computes stresses for given strains
}

// SmallStrainUpdater defines small strain models that can compute strains for given stresses
type SmallStrainUpdater interface {
	Strain(σ [][]float64) (ε [][]float64, err error) // computes strains for given stresses
}

// Large defines solid models for large deformation analyses
type Large interface {
	Cauchy(F [][]float64) (σ [][]float64, err error) // computes the Cauchy stress for given deformation gradient
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
