// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/Lima98/TKT4150/ana"
	"github.com/Lima98/TKT4150/mohr"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotCharPoly draws the characteristic polynomial p(σ) over the scanned range with
// the closed-form roots and the roots found by the scan
func PlotCharPoly(a *ana.StressAnalysis, dirout, fnkey, unit string) {
	X := utl.LinSpace(a.ScanMin, a.ScanMax, Npts)
	Y := make([]float64, len(X))
	for i, x := range X {
		Y[i] = ten.CharPoly(x, a.I1, a.I2, a.I3)
	}
	plt.Reset(false, nil)
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", Lw: 2, L: "$p(\\sigma)$", NoClip: true})
	plt.Plot([]float64{a.ScanMin, a.ScanMax}, []float64{0, 0}, &plt.A{C: "k", Ls: "-", Lw: 0.5})
	sty := GetDefaultStyles(len(a.RootsCubic))
	for i, σ := range a.RootsCubic {
		plt.PlotOne(σ, 0, &plt.A{C: sty[i].C, M: "o", Ms: 8, NoClip: true})
		plt.Text(σ, 0, io.Sf("$\\sigma_%d=%.4g$", i+1, σ), &plt.A{C: sty[i].C, Ha: "center", Va: "bottom", Fsz: 9})
	}
	for _, σ := range a.RootsScan {
		plt.PlotOne(σ, 0, &plt.A{C: "k", M: "+", Ms: 12, NoClip: true})
	}
	plt.Gll(GetTexLabel("sig", unit), GetTexLabel("p(\\sigma)", ""), nil)
	plt.Save(dirout, fnkey)
}

// PlotPrincDirs draws the projections of the principal directions and of the
// normals of the planes of maximum shear onto the three coordinate planes
func PlotPrincDirs(n, m [][]float64, dirout, fnkey string) {
	planes := [][]int{{0, 1}, {1, 2}, {0, 2}}
	sty := GetDefaultStyles(len(n))
	plt.Reset(false, nil)
	for k, ij := range planes {
		i, j := ij[0], ij[1]
		plt.Subplot(1, 3, k+1)
		for p, v := range n {
			arrow(v[i], v[j], &sty[p])
			plt.Text(1.15*v[i], 1.15*v[j], io.Sf("$n_%d$", p+1), &plt.A{C: sty[p].C, Ha: "center", Va: "center"})
		}
		for p, v := range m {
			plt.Plot([]float64{0, v[i]}, []float64{0, v[j]}, &plt.A{C: "grey", Ls: "--", Lw: 1})
			plt.Text(1.15*v[i], 1.15*v[j], io.Sf("$m_%d$", p+1), &plt.A{C: "grey", Ha: "center", Va: "center", Fsz: 8})
		}
		plt.Equal()
		plt.AxisRange(-1.3, 1.3, -1.3, 1.3)
		plt.Gll(GetTexLabel(io.Sf("x%d", i+1), ""), GetTexLabel(io.Sf("x%d", j+1), ""), nil)
	}
	plt.Save(dirout, fnkey)
}

// PlotMohr3d draws the three Mohr circles of a 3D principal state
func PlotMohr3d(vals []float64, dirout, fnkey, unit string) {
	plt.Reset(false, nil)
	circles := mohr.Circles3d(vals[0], vals[1], vals[2])
	mohr.PlotCircles3d(circles, Npts, unit)
	sty := GetDefaultStyles(3)
	for i, σ := range vals {
		plt.PlotOne(σ, 0, &plt.A{C: sty[i].C, M: "o", NoClip: true})
	}
	plt.Save(dirout, fnkey)
}

// PlotPlane draws Mohr's circle and the principal directions of a plane stress state
func PlotPlane(a *ana.PlaneStressAnalysis, dirout, fnkey, unit string) {
	plt.Reset(false, nil)
	plt.Subplot(1, 2, 1)
	a.Plane.Plot(Npts, unit)
	plt.Subplot(1, 2, 2)
	a.Plane.PlotDirs()
	plt.Save(dirout, fnkey)
}

// PlotStrainBars draws the principal strains and the engineering strains as bars
func PlotStrainBars(a *ana.StrainAnalysis, dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Subplot(1, 2, 1)
	sty := GetDefaultStyles(len(a.Vals))
	for i, ε := range a.Vals {
		bar(float64(i+1), ε, 0.6, &sty[i])
		plt.Text(float64(i+1), ε, io.Sf("%.3g", ε), &plt.A{Ha: "center", Va: "bottom", Fsz: 9})
	}
	plt.Plot([]float64{0.5, 3.5}, []float64{0, 0}, &plt.A{C: "k", Lw: 0.5})
	plt.Gll("principal strain index", GetTexLabel("eps", ""), nil)
	plt.Subplot(1, 2, 2)
	vals := append(append([]float64{}, a.EngNormal...), a.EngShear...)
	for i, v := range vals {
		clr := &plt.A{C: "b", Fc: "b", Ec: "b"}
		if i > 2 {
			clr = &plt.A{C: "m", Fc: "m", Ec: "m"}
		}
		bar(float64(i+1), v, 0.6, clr)
	}
	lbls := []string{"$\\varepsilon_{11}$", "$\\varepsilon_{22}$", "$\\varepsilon_{33}$", "$\\gamma_{12}$", "$\\gamma_{23}$", "$\\gamma_{13}$"}
	for i, l := range lbls {
		plt.Text(float64(i+1), 0, l, &plt.A{Ha: "center", Va: "top", Fsz: 9})
	}
	plt.Plot([]float64{0.5, 6.5}, []float64{0, 0}, &plt.A{C: "k", Lw: 0.5})
	plt.Gll("", "strain", nil)
	plt.Save(dirout, fnkey)
}

// PlotDeformation draws the original and the deformed polygon (first two
// coordinates) and the stretch of in-plane directions
func PlotDeformation(a *ana.Deformation, dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Subplot(1, 2, 1)
	polygon(a.X, &plt.A{C: "k", Ls: "--", M: "o", L: "original", NoClip: true})
	polygon(a.Xdef, &plt.A{C: "r", Ls: "-", M: "s", L: "deformed", NoClip: true})
	for i, x := range a.Xdef {
		plt.Text(x[0], x[1], a.Labels[i]+"'", &plt.A{C: "r", Ha: "left", Va: "bottom"})
		plt.Text(a.X[i][0], a.X[i][1], a.Labels[i], &plt.A{C: "k", Ha: "right", Va: "top"})
	}
	plt.Equal()
	plt.Gll(GetTexLabel("x1", ""), GetTexLabel("x2", ""), nil)
	if a.Sweep != nil {
		plt.Subplot(1, 2, 2)
		deg := make([]float64, len(a.Sweep.Theta))
		for i, θ := range a.Sweep.Theta {
			deg[i] = θ * 180.0 / math.Pi
		}
		plt.Plot(deg, a.Sweep.Lambda, &plt.A{C: "b", Ls: "-", L: "$\\lambda(\\theta)$", NoClip: true})
		plt.PlotOne(a.Sweep.ThetaMax*180.0/math.Pi, a.Sweep.LambdaMax, &plt.A{C: "r", M: "o", L: "max", NoClip: true})
		plt.PlotOne(a.Sweep.ThetaMin*180.0/math.Pi, a.Sweep.LambdaMin, &plt.A{C: "g", M: "o", L: "min", NoClip: true})
		for i, θ := range a.TestAngles {
			plt.PlotOne(θ, a.TestLam[i], &plt.A{C: "k", M: "x", NoClip: true})
		}
		plt.Gll(GetTexLabel("theta", "deg"), GetTexLabel("lam", ""), nil)
	}
	plt.Save(dirout, fnkey)
}

// PlotThick draws the radial and hoop stresses across the wall of a thick
// cylinder. The elastic-plastic stresses and the load-displacement curve are
// added if the yield stress is available
func PlotThick(a *ana.ThickCylinder, nr int, dirout, fnkey, unitS, unitL string) {
	ClearSplots()
	R, Sr, St := a.CalcStresses(nr)
	Splot("srr", "radial stress")
	Plot(R, Sr, "r", "srr", "elastic", plt.A{C: "b", Lw: 2})
	Splot("stt", "hoop stress")
	Plot(R, St, "r", "stt", "elastic", plt.A{C: "r", Lw: 2})
	if a.Y > 0 {
		Pvals := []float64{a.P0, (a.P0 + a.Plim) / 2.0, 0.95 * a.Plim}
		_, SrEP, StEP, err := a.CalcStressesEP(Pvals, nr)
		if err == nil {
			for i, P := range Pvals {
				l := io.Sf("P=%.3g", P)
				Csplot = Splots[0]
				Plot(R, SrEP[i], "r", "srr", l, plt.A{C: "k", Ls: "--"})
				Csplot = Splots[1]
				Plot(R, StEP[i], "r", "stt", l, plt.A{C: "k", Ls: "--"})
			}
		}
		P, Ub := a.CalcPressDisp(21)
		Splot("pu", "pressure-displacement")
		Plot(Ub, P, "ub", "p", "Hill", plt.A{C: "g", M: "."})
		SplotConfig(unitL, unitS, 1, 1)
	}
	for _, s := range Splots[:2] {
		Csplot = s
		SplotConfig(unitL, unitS, 1, 1)
	}
	Draw(dirout, fnkey, 1, -1, false, nil)
	ClearSplots()
}

// PlotVessel draws the free body diagram of half of a thin-walled cylinder cut
// transversely: the pressure resultant balances the axial wall forces
func PlotVessel(a *ana.ThinCylinder, dirout, fnkey, unit string) {
	r, t := a.R, a.T
	L := 2.0 * r
	plt.Reset(false, nil)

	// walls
	for _, y := range []float64{r, -r - t} {
		bar2(0, L, y, y+t, &plt.A{C: "grey", Fc: "lightgrey", Ec: "k"})
	}
	plt.Plot([]float64{L, L}, []float64{-r - t, r + t}, &plt.A{C: "k", Ls: ":", Lw: 1})

	// pressure on the closed end
	for _, y := range utl.LinSpace(-0.8*r, 0.8*r, 7) {
		plt.Arrow(0.15*L, y, 0.02*L, y, &plt.A{C: "b", Fc: "b", Ec: "b"})
		plt.Arrow(0.15*L, y, -0.02*L, y, &plt.A{C: "b", Fc: "b", Ec: "b"})
	}
	plt.Plot([]float64{0, 0}, []float64{-r, r}, &plt.A{C: "k", Lw: 3})
	plt.Text(0.25*L, 0, io.Sf("$F_p = p \\pi r^2 = %.4g$", a.Fpressure), &plt.A{C: "b", Va: "center"})

	// axial wall stresses at the cut
	for _, y := range []float64{r + t/2, -r - t/2} {
		plt.Arrow(L, y, L+0.25*L, y, &plt.A{C: "r", Fc: "r", Ec: "r", Lw: 2})
	}
	plt.Text(L+0.3*L, r+t/2, io.Sf("$\\sigma_z = %.4g$ %s", a.SigZ, unit), &plt.A{C: "r", Va: "center"})
	plt.Text(L+0.3*L, -r-t/2, io.Sf("$F_z = \\sigma_z 2 \\pi r t = %.4g$", a.Faxial), &plt.A{C: "r", Va: "center"})
	plt.Text(L/2, r+2*t, io.Sf("$\\sigma_\\theta = p r / t = %.4g$ %s", a.SigTheta, unit), &plt.A{Ha: "center"})
	plt.Equal()
	plt.AxisRange(-0.2*L, 2.2*L, -1.5*(r+t), 1.5*(r+t))
	plt.Gll(GetTexLabel("z", ""), GetTexLabel("r", ""), nil)
	plt.Save(dirout, fnkey)
}

// PlotColumn draws pressure and density along a hydrostatic column
func PlotColumn(a *ana.HydrostaticColumn, dirout, fnkey string) {
	a.Plot(dirout, fnkey, "b", Npts)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// arrow draws an arrow from the origin to (x, y) unless it is degenerate
func arrow(x, y float64, args *plt.A) {
	if math.Hypot(x, y) < 1e-10 {
		plt.PlotOne(0, 0, &plt.A{C: args.C, M: "o"})
		return
	}
	plt.Arrow(0, 0, x, y, args)
}

// bar draws a vertical bar centred at x with height h and width w
func bar(x, h, w float64, args *plt.A) {
	bar2(x-w/2, x+w/2, 0, h, args)
}

// bar2 draws the outline of rectangle [xa, xb] × [ya, yb]
func bar2(xa, xb, ya, yb float64, args *plt.A) {
	plt.Plot([]float64{xa, xb, xb, xa, xa}, []float64{ya, ya, yb, yb, ya}, &plt.A{C: args.Ec, Lw: 1.5, NoClip: true})
}

// polygon draws a closed polygon with the first two coordinates of X
func polygon(X [][]float64, args *plt.A) {
	n := len(X)
	x := make([]float64, n+1)
	y := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x[i], y[i] = X[i%n][0], X[i%n][1]
	}
	plt.Plot(x, y, args)
}
