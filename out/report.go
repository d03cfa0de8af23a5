// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"strings"

	"github.com/Lima98/TKT4150/ana"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Report accumulates the formatted output of analyses
type Report struct {
	Buf     bytes.Buffer // formatted text
	UnitS   string       // unit of stress; e.g. "MPa"
	UnitL   string       // unit of length; e.g. "mm"
	NumFmt  string       // format of numbers in tensors and vectors
	Verbose bool         // echo sections to console
}

// NewReport returns a new report
func NewReport(title, unitStress, unitLen string, verbose bool) (o *Report) {
	o = &Report{UnitS: unitStress, UnitL: unitLen, NumFmt: "%13.6g", Verbose: verbose}
	io.Ff(&o.Buf, "%s\n%s\n", title, strings.Repeat("=", len(title)))
	return
}

// Material writes the parameters of the material of the case
func (o *Report) Material(name string, prms dbf.Params) {
	o.write("\nmaterial: %s\n", name)
	for _, p := range prms {
		o.scalar(p.N, p.V, "")
	}
}

// String returns the whole report
func (o *Report) String() string {
	return o.Buf.String()
}

// Section writes the heading of an analysis
func (o *Report) Section(kind, tag, desc string) {
	head := io.Sf("[%s] %s", kind, tag)
	if desc != "" {
		head += ": " + desc
	}
	io.Ff(&o.Buf, "\n%s\n%s\n", head, strings.Repeat("-", len(head)))
	if o.Verbose {
		io.Pfyel("\n%s\n", head)
	}
}

// Stress writes the results of a 3D stress analysis
func (o *Report) Stress(a *ana.StressAnalysis) {
	o.tensor("stress tensor σ", a.T)
	o.invariants(a.I1, a.I2, a.I3)
	o.line("characteristic polynomial", io.Sf("p(σ) = σ³ - %g σ² + %g σ - %g", a.I1, a.I2, a.I3))
	o.vector("roots (closed form)", a.RootsCubic)
	o.vector(io.Sf("roots (scan of [%g, %g] with %d points)", a.ScanMin, a.ScanMax, a.Npts), a.RootsScan)
	if len(a.RootsScan) < 3 {
		o.line("note", "repeated roots without sign change are not found by the scan")
	}
	o.vector("principal stresses (eigen)", a.Vals)
	o.scalar("max |root - eigenvalue|", a.Residual(), "")
	o.dirs("n", a.Dirs)
	o.vector("n_i⋅n_j (12, 13, 23)", a.Dots)
	o.vector("|n_i|", a.Norms)
	o.scalar("τmax = (σ1 - σ3)/2", a.TauMax, o.UnitS)
	o.dirs("m", a.ShearDirs)
	o.scalar("mean stress", a.Mean, o.UnitS)
	o.tensor("deviatoric stress s", a.Dev)
	o.scalar("J2", a.J2, "")
	o.scalar("J3", a.J3, "")
	o.scalar("σoct", a.SigOct, o.UnitS)
	o.scalar("τoct", a.TauOct, o.UnitS)
	o.scalar("Lode angle [deg]", a.Lode*180.0/math.Pi, "")
	o.scalar("σvm (components)", a.VonMises, o.UnitS)
	o.scalar("σvm (principal)", a.VonMisesPrinc, o.UnitS)
	o.yield(a.Yield, a.SafetyFactor, a.Safe)
}

// Plane writes the results of a plane stress analysis
func (o *Report) Plane(a *ana.PlaneStressAnalysis) {
	o.tensor("stress tensor σ", a.T)
	o.vector("principal stresses (eigen)", a.Vals)
	o.dirs("n", a.Dirs)
	o.scalar("σ1 (Mohr)", a.S1, o.UnitS)
	o.scalar("σ2 (Mohr)", a.S2, o.UnitS)
	o.scalar("θp = ½ atan2(2τ, σx - σy) [deg]", a.ThetaP, "")
	o.scalar("θ1 [deg]", a.Theta1, "")
	o.scalar("θ2 [deg]", a.Theta2, "")
	o.scalar("centre of Mohr's circle", a.Center, o.UnitS)
	o.scalar("radius = in-plane τmax", a.Radius, o.UnitS)
	o.scalar("θs1 [deg]", a.ThetaS1, "")
	o.scalar("θs2 [deg]", a.ThetaS2, "")
	o.scalar("absolute τmax (σ3 = 0)", a.TauMax3d, o.UnitS)
	o.scalar("σvm (σ3 = 0)", a.VonMises, o.UnitS)
	o.yield(a.Yield, a.SafetyFactor, a.Safe)
}

// Strain writes the results of a strain analysis
//  measure -- name of the strain measure; e.g. "green"
func (o *Report) Strain(a *ana.StrainAnalysis, measure string) {
	if measure == "" {
		measure = "small"
	}
	o.tensor(io.Sf("strain tensor ε (%s)", measure), a.Eps)
	o.invariants(a.I1, a.I2, a.I3)
	o.vector("principal strains", a.Vals)
	o.dirs("n", a.Dirs)
	o.scalar("mean strain I1/3", a.Mean, "")
	o.scalar("volumetric strain I1", a.Vol, "")
	o.tensor("deviatoric strain e", a.Dev)
	o.scalar("|e|", a.DevNorm, "")
	o.scalar("equivalent strain √(2/3 e:e)", a.Equiv, "")
	o.vector("normal strains ε11, ε22, ε33", a.EngNormal)
	o.vector("engineering shears γ12, γ23, γ13", a.EngShear)
	o.scalar("max shear (ε1 - ε3)/2", a.MaxShear, "")
	o.scalar("max engineering shear ε1 - ε3", a.MaxShearEng, "")
	o.dirs("m", a.ShearDirs)
	o.scalar("|ε|", a.Magnitude, "")
	o.line("expansion", io.Sf("%v", a.Expansion))
	o.line("tensile ε1 > 0", io.Sf("%v", a.Tensile))
	o.line("compressive ε3 < 0", io.Sf("%v", a.Compress))
}

// Deformation writes the results of a homogeneous deformation analysis
func (o *Report) Deformation(a *ana.Deformation) {
	o.tensor("deformation gradient F", a.F)
	o.scalar("J = det F", a.J, "")
	for i, X := range a.X {
		o.line(io.Sf("%s", a.Labels[i]), io.Sf("%v → %v", o.vec(X), o.vec(a.Xdef[i])))
	}
	if a.EdgeLam != nil {
		n := len(a.X)
		for i, λ := range a.EdgeLam {
			o.scalar(io.Sf("stretch %s%s", a.Labels[i], a.Labels[(i+1)%n]), λ, "")
		}
	}
	if a.DiagLam != nil {
		o.scalar(io.Sf("stretch %s%s", a.Labels[0], a.Labels[2]), a.DiagLam[0], "")
		o.scalar(io.Sf("stretch %s%s", a.Labels[1], a.Labels[3]), a.DiagLam[1], "")
	}
	o.scalar("shear angle γ12 [deg]", a.Gamma*180.0/math.Pi, "")
	o.scalar("deformed angle [deg]", a.AlphaDef*180.0/math.Pi, "")
	o.tensor("small strain ε", a.SmallEps)
	o.tensor("Green-Lagrange E", a.Green)
	o.tensor("Euler-Almansi e", a.AlmansiE)
	o.vector("principal Green strains", a.GreenVals)
	o.dirs("N", a.GreenDirs)
	o.vector("principal stretches", a.Lam)
	o.scalar("max engineering shear (Green)", a.GammaMax, "")
	for i, deg := range a.TestAngles {
		o.line(io.Sf("direction %3g°", deg), io.Sf("λ = %.6g, λ-1 = %.6g, n⋅E⋅n = %.6g", a.TestLam[i], a.TestEpsDir[i], a.TestEpsG[i]))
	}
	if a.Sweep != nil {
		o.line("max stretch (sweep)", io.Sf("λ = %.6g at θ = %.4g°", a.Sweep.LambdaMax, a.Sweep.ThetaMax*180.0/math.Pi))
		o.line("min stretch (sweep)", io.Sf("λ = %.6g at θ = %.4g°", a.Sweep.LambdaMin, a.Sweep.ThetaMin*180.0/math.Pi))
	}
}

// Model writes the stress given by a constitutive model
func (o *Report) Model(model string, a *ana.StressAnalysis) {
	o.tensor(io.Sf("stress σ (%s)", model), a.T)
	o.vector("principal stresses", a.Vals)
	o.scalar("mean stress", a.Mean, o.UnitS)
	o.scalar("σvm", a.VonMises, o.UnitS)
	o.yield(a.Yield, a.SafetyFactor, a.Safe)
}

// Vessel writes the results of a thin-walled cylinder (Laplace's law)
//  dp -- hydrostatic pressure increment already added to p (zero if none)
func (o *Report) Vessel(a *ana.ThinCylinder, dp float64) {
	if dp != 0 {
		o.scalar("hydrostatic increment Δp", dp, o.UnitS)
	}
	o.scalar("p", a.P, o.UnitS)
	o.scalar("r", a.R, o.UnitL)
	o.scalar("t", a.T, o.UnitL)
	o.line("thin wall (r/t ≥ 10)", io.Sf("%v (r/t = %.4g)", a.ThinWall, a.R/a.T))
	o.scalar("σθ = p r / t", a.SigTheta, o.UnitS)
	o.scalar("σz = p r / (2 t)", a.SigZ, o.UnitS)
	o.scalar("σz (exact wall area)", a.SigZExact, o.UnitS)
	o.scalar("mean σr = -p/2", a.SigR, o.UnitS)
	o.scalar("axial: pressure resultant p π r²", a.Fpressure, "")
	o.scalar("axial: wall force σz 2π r t", a.Faxial, "")
	o.scalar("hoop: pressure resultant 2 p r L", a.Fhoopp, "")
	o.scalar("hoop: wall force 2 σθ t L", a.Fhoop, "")
	o.scalar("σvm", a.VonMises, o.UnitS)
	o.yield(a.Yield, a.SafetyFactor, a.Safe)
}

// Sphere writes the results of a thin-walled sphere
func (o *Report) Sphere(a *ana.ThinSphere) {
	o.scalar("p", a.P, o.UnitS)
	o.scalar("r", a.R, o.UnitL)
	o.scalar("t", a.T, o.UnitL)
	o.scalar("σ = p r / (2 t)", a.Sig, o.UnitS)
}

// Thick writes the results of a thick-walled cylinder
//  nr -- number of radii in the table of stresses
func (o *Report) Thick(a *ana.ThickCylinder, nr int) {
	o.scalar("a", a.A, o.UnitL)
	o.scalar("b", a.B, o.UnitL)
	o.scalar("P", a.P, o.UnitS)
	o.scalar("Lamé A", a.Lc, o.UnitS)
	o.scalar("Lamé B", a.Lb, "")
	if a.ClosedEnds {
		o.scalar("σz (closed ends)", a.SigZ(), o.UnitS)
	} else {
		o.scalar("σz (plane strain)", a.SigZ(), o.UnitS)
	}
	o.scalar("u(b)", a.Displ(a.B), o.UnitL)
	R, Sr, St := a.CalcStresses(nr)
	o.write("  %13s %13s %13s\n", "r", "σr", "σθ")
	for i, r := range R {
		o.write("  %s\n", o.nums([]float64{r, Sr[i], St[i]}, " "))
	}
	if a.Y > 0 {
		o.scalar("P at first yield", a.P0, o.UnitS)
		o.scalar("limiting pressure", a.Plim, o.UnitS)
		if a.P > a.P0 && a.P < a.Plim {
			c, err := a.CalcC(a.P)
			if err == nil {
				o.scalar("elastic-plastic boundary c", c, o.UnitL)
			}
		}
	}
}

// Column writes the pressure increment of a hydrostatic column
func (o *Report) Column(a *ana.HydrostaticColumn, depths []float64) {
	o.scalar("p0 [kPa]", a.P0, "")
	o.scalar("ρ0 [Mg/m³]", a.R0, "")
	o.scalar("H [m]", a.H, "")
	for _, dh := range depths {
		p, R := a.Calc(a.H - dh)
		o.line(io.Sf("depth %g m", dh), io.Sf("p = %.6g kPa (Δp = %.6g kPa = %.4g mmHg), ρ = %.8g", p, p-a.P0, (p-a.P0)*7.50061683, R))
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// write writes to the buffer and echoes to the console if verbose
func (o *Report) write(format string, args ...interface{}) {
	l := io.Sf(format, args...)
	o.Buf.WriteString(l)
	if o.Verbose {
		io.Pf("%s", l)
	}
}

func (o *Report) line(key, val string) {
	o.write("  %-36s : %s\n", key, val)
}

func (o *Report) scalar(key string, val float64, unit string) {
	s := io.Sf("%.8g", clean(val))
	if unit != "" {
		s += " " + unit
	}
	o.line(key, s)
}

// nums formats v with NumFmt; values near zero are printed as zero
func (o *Report) nums(v []float64, sep string) string {
	l := make([]string, len(v))
	for i, x := range v {
		l[i] = io.Sf(o.NumFmt, clean(x))
	}
	return strings.Join(l, sep)
}

func (o *Report) vec(v []float64) string {
	return "[" + o.nums(v, ",") + "]"
}

func (o *Report) vector(key string, v []float64) {
	o.line(key, o.vec(v))
}

func (o *Report) tensor(key string, a [][]float64) {
	o.line(key, "")
	for _, row := range a {
		o.write("    %s\n", o.nums(row, ""))
	}
}

func (o *Report) dirs(symbol string, n [][]float64) {
	for k, v := range n {
		o.vector(io.Sf("%s%d", symbol, k+1), v)
	}
}

func (o *Report) invariants(I1, I2, I3 float64) {
	o.scalar("I1", I1, "")
	o.scalar("I2", I2, "")
	o.scalar("I3", I3, "")
}

func (o *Report) yield(y *ana.YieldCheck, sf float64, safe bool) {
	if y == nil {
		return
	}
	o.scalar("yield strength σy", y.Sy, o.UnitS)
	if math.IsInf(sf, 1) {
		o.line("safety factor σy/σvm", "∞")
	} else {
		o.scalar("safety factor σy/σvm", sf, "")
	}
	if safe {
		o.line("status", "below yield")
	} else {
		o.line("status", "YIELD (σvm ≥ σy)")
	}
}
