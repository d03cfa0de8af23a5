// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mohr

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plot draws Mohr's circle of a plane state with the principal values, the
// original state points (σx, τ) and (σy, -τ), and the maximum shear points
//  unit -- unit of stress used in labels; e.g. "MPa"
func (o Plane) Plot(np int, unit string) {
	σ1, σ2 := o.Principal()
	c, r := o.Center(), o.Radius()
	x, y := o.Points(np)
	plt.Plot(x, y, &plt.A{C: "b", Ls: "-", Lw: 2, L: "Mohr's circle", NoClip: true})
	plotAxes(c-1.2*r, c+1.2*r, 1.2*r)
	plt.Plot([]float64{σ1, σ2}, []float64{0, 0}, &plt.A{C: "r", M: "o", Ls: "none", L: "principal", NoClip: true})
	plt.Text(σ1, 0.08*r, io.Sf("$\\sigma_1=%.2f$", σ1), &plt.A{Ha: "center", Fsz: 9})
	plt.Text(σ2, 0.08*r, io.Sf("$\\sigma_2=%.2f$", σ2), &plt.A{Ha: "center", Fsz: 9})
	plt.Plot([]float64{o.Sx, o.Sy}, []float64{o.Sxy, -o.Sxy}, &plt.A{C: "g", M: "s", Ls: "--", L: "original state", NoClip: true})
	plt.Plot([]float64{c, c}, []float64{r, -r}, &plt.A{C: "m", M: "o", Ls: "none", L: io.Sf("$\\tau_{max}=%.2f$", r), NoClip: true})
	plt.Equal()
	plt.Gll(io.Sf("$\\sigma$ [%s]", unit), io.Sf("$\\tau$ [%s]", unit), nil)
}

// PlotCircles3d draws the three Mohr circles of a 3D principal state
func PlotCircles3d(circles []Circle, np int, unit string) {
	colors := []string{"b", "r", "g"}
	labels := []string{"$C_{13}$", "$C_{12}$", "$C_{23}$"}
	for i, c := range circles {
		x, y := c.Points(np)
		plt.Plot(x, y, &plt.A{C: colors[i], Ls: "-", Lw: 2, L: labels[i], NoClip: true})
	}
	outer := circles[0]
	plotAxes(outer.C-1.2*outer.R, outer.C+1.2*outer.R, 1.2*outer.R)
	plt.Equal()
	plt.Gll(io.Sf("$\\sigma$ [%s]", unit), io.Sf("$\\tau$ [%s]", unit), nil)
}

// PlotDirs draws the coordinate axes and the in-plane principal directions with their angles
func (o Plane) PlotDirs() {
	n := o.PrincDirs()
	θ1, θ2 := o.PrincAngles()
	plt.Arrow(0, 0, 1.2, 0, &plt.A{C: "grey", Fc: "grey", Ec: "grey"})
	plt.Arrow(0, 0, 0, 1.2, &plt.A{C: "grey", Fc: "grey", Ec: "grey"})
	plt.Text(1.3, -0.1, "$x_1$", &plt.A{Ha: "center"})
	plt.Text(-0.1, 1.3, "$x_2$", &plt.A{Ha: "center"})
	clr := []string{"r", "b"}
	ang := []float64{θ1, θ2}
	for k := 0; k < 2; k++ {
		// draw the direction pointing into the upper half plane, matching the angle in [0, 180)
		dx, dy := n[k][0], n[k][1]
		if dy < 0 || (dy == 0 && dx < 0) {
			dx, dy = -dx, -dy
		}
		plt.Arrow(0, 0, 1.5*dx, 1.5*dy, &plt.A{C: clr[k], Fc: clr[k], Ec: clr[k], Lw: 2})
		plt.Text(1.7*dx, 1.7*dy, io.Sf("$\\sigma_%d$: %.1f°", k+1, ang[k]), &plt.A{C: clr[k], Ha: "center", Va: "center"})
	}
	plt.Equal()
	plt.AxisRange(-2, 2, -2, 2)
	plt.Gll("$x_1$", "$x_2$", nil)
}

// plotAxes draws the σ and τ axes
func plotAxes(xmin, xmax, ymax float64) {
	plt.Plot([]float64{xmin, xmax}, []float64{0, 0}, &plt.A{C: "k", Ls: "-", Lw: 0.5})
	if xmin <= 0 && xmax >= 0 {
		plt.Plot([]float64{0, 0}, []float64{-ymax, ymax}, &plt.A{C: "k", Ls: "-", Lw: 0.5})
	}
}
