// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "math"

// Invariants computes the principal invariants of a
//
//  I1 = tr(a)
//  I2 = ½ [ tr(a)² - tr(a⋅a) ]
//  I3 = det(a)
//
//  2x2 tensors are taken as plane tensors (zero out-of-plane row and column); thus I3 = 0
func Invariants(a [][]float64) (I1, I2, I3 float64) {
	b := Expand3(a)
	I1 = Tr(b)
	I2 = (I1*I1 - Tr(Dot(b, b))) / 2.0
	I3 = Det(b)
	return
}

// CharPoly evaluates the characteristic polynomial p(σ) = σ³ - I1 σ² + I2 σ - I3
func CharPoly(σ, I1, I2, I3 float64) float64 {
	return ((σ-I1)*σ+I2)*σ - I3
}

// CharPolyDeriv evaluates dp/dσ = 3σ² - 2 I1 σ + I2
func CharPolyDeriv(σ, I1, I2 float64) float64 {
	return (3.0*σ-2.0*I1)*σ + I2
}

// DevInvariants computes the invariants of the deviatoric tensor s = a - tr(a)/3 I
//  J2 = ½ s:s
//  J3 = det(s)
func DevInvariants(a [][]float64) (J2, J3 float64) {
	s, _ := Dev(a)
	J2 = DDot(s, s) / 2.0
	J3 = Det(s)
	return
}

// Octahedral computes the octahedral normal and shear stresses
//  σoct = I1 / 3
//  τoct = √(2 J2 / 3)
func Octahedral(a [][]float64) (σoct, τoct float64) {
	J2, _ := DevInvariants(a)
	σoct = Tr(a) / 3.0
	τoct = math.Sqrt(2.0 * J2 / 3.0)
	return
}

// LodeAngle computes the Lode angle θ ∈ [0, π/3] from
//  cos(3θ) = (3√3/2) J3 / J2^(3/2)
// θ = 0 when σ2 = σ3 and θ = π/3 when σ1 = σ2 (σ1 ≥ σ2 ≥ σ3). Returns 0 for isotropic tensors
func LodeAngle(a [][]float64) float64 {
	J2, J3 := DevInvariants(a)
	if J2 < 1e-15*math.Max(1, MaxAbs(a)*MaxAbs(a)) {
		return 0
	}
	c := 1.5 * math.Sqrt(3.0) * J3 / math.Pow(J2, 1.5)
	return math.Acos(clamp(c, -1, 1)) / 3.0
}

// VonMises computes the von Mises equivalent stress σvm = √(3 J2) from the components of a
func VonMises(a [][]float64) float64 {
	J2, _ := DevInvariants(a)
	return math.Sqrt(3.0 * J2)
}

// VonMisesPrinc computes the von Mises equivalent stress from principal values
//  σvm = √{ ½ [ (σ1-σ2)² + (σ2-σ3)² + (σ3-σ1)² ] }
func VonMisesPrinc(σ1, σ2, σ3 float64) float64 {
	d12, d23, d31 := σ1-σ2, σ2-σ3, σ3-σ1
	return math.Sqrt((d12*d12 + d23*d23 + d31*d31) / 2.0)
}

// TractionOn computes the traction vector t = a⋅n̂ on the plane with normal n (not necessarily unit)
func TractionOn(a [][]float64, n []float64) (t []float64) {
	nn := VecNorm(n)
	t = MatVec(a, n)
	for i := range t {
		t[i] /= nn
	}
	return
}

// NormalShearOn computes the normal and (magnitude of) shear components of the
// traction on the plane with normal n
func NormalShearOn(a [][]float64, n []float64) (σn, τn float64) {
	t := TractionOn(a, n)
	nn := VecNorm(n)
	σn = VecDot(t, n) / nn
	τn = math.Sqrt(math.Max(0, VecDot(t, t)-σn*σn))
	return
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
