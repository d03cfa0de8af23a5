// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "math"

// SQ2 is √2, used by the Mandel representation
var SQ2 = math.Sqrt2

// SpectralCompose recreates a tensor from its spectral decomposition
//  a = Σ_k λ[k] n[k] ⊗ n[k]
//  λ -- principal values
//  n -- principal directions [nvecs][ncomps]
func SpectralCompose(λ []float64, n [][]float64) (a [][]float64) {
	dim := len(n[0])
	a = make([][]float64, dim)
	for i := 0; i < dim; i++ {
		a[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			for k := range λ {
				a[i][j] += λ[k] * n[k][i] * n[k][j]
			}
		}
	}
	return
}

// Eigenprojectors computes P_k = n[k] ⊗ n[k] for each principal direction
func Eigenprojectors(n [][]float64) (P [][][]float64) {
	P = make([][][]float64, len(n))
	for k := range n {
		P[k] = Dyad(n[k], n[k])
	}
	return
}

// Ten2Man converts a symmetric tensor to Mandel's representation
//  3x3: m = [a00, a11, a22, √2 a01, √2 a12, √2 a20]
//  2x2: m = [a00, a11, 0, √2 a01]
func Ten2Man(a [][]float64) (m []float64) {
	if len(a) == 2 {
		return []float64{a[0][0], a[1][1], 0, a[0][1] * SQ2}
	}
	return []float64{a[0][0], a[1][1], a[2][2], a[0][1] * SQ2, a[1][2] * SQ2, a[2][0] * SQ2}
}

// Man2Ten converts Mandel's representation (4 or 6 components) back to a 3x3 tensor
func Man2Ten(m []float64) (a [][]float64) {
	a = Alloc()
	a[0][0], a[1][1], a[2][2] = m[0], m[1], m[2]
	a[0][1] = m[3] / SQ2
	a[1][0] = a[0][1]
	if len(m) > 4 {
		a[1][2] = m[4] / SQ2
		a[2][1] = a[1][2]
		a[2][0] = m[5] / SQ2
		a[0][2] = a[2][0]
	}
	return
}

// EigenprojectorsMan computes the eigenprojectors in Mandel's representation;
// P[k] has 6 components
func EigenprojectorsMan(n [][]float64) (P [][]float64) {
	P = make([][]float64, len(n))
	for k, Pk := range Eigenprojectors(n) {
		P[k] = Ten2Man(Expand3(Pk))
	}
	return
}
