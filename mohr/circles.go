// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mohr

import (
	"math"
	"sort"
)

// Circle defines a Mohr circle in the (σ, τ) plane
type Circle struct {
	C float64 // centre
	R float64 // radius
}

// Points returns np points on the circle
func (o Circle) Points(np int) (σ, τ []float64) {
	α := linspace360(np)
	σ = make([]float64, np)
	τ = make([]float64, np)
	for i, a := range α {
		σ[i] = o.C + o.R*math.Cos(a)
		τ[i] = o.R * math.Sin(a)
	}
	return
}

// Contains returns whether (σ, τ) lies inside or on the circle
func (o Circle) Contains(σ, τ float64) bool {
	return math.Hypot(σ-o.C, τ) <= o.R*(1+1e-12)+1e-14
}

// Circles3d returns the three Mohr circles of a 3D principal state. The principal
// values are sorted first; the circles are C13 (outer), C12 and C23
func Circles3d(σa, σb, σc float64) (circles []Circle) {
	s := []float64{σa, σb, σc}
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))
	σ1, σ2, σ3 := s[0], s[1], s[2]
	return []Circle{
		{C: (σ1 + σ3) / 2.0, R: (σ1 - σ3) / 2.0},
		{C: (σ1 + σ2) / 2.0, R: (σ1 - σ2) / 2.0},
		{C: (σ2 + σ3) / 2.0, R: (σ2 - σ3) / 2.0},
	}
}

// Admissible returns whether (σn, τn) is an admissible traction state for the 3D
// principal state: inside the outer circle and outside both inner ones
func Admissible(circles []Circle, σn, τn float64) bool {
	tol := 1e-9 * math.Max(1, circles[0].R)
	d := func(c Circle) float64 { return math.Hypot(σn-c.C, τn) - c.R }
	return d(circles[0]) <= tol && d(circles[1]) >= -tol && d(circles[2]) >= -tol
}
