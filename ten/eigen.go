// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// SymTol is the relative tolerance used to accept a tensor as symmetric
var SymTol = 1e-10

// PrincVals computes the principal values (eigenvalues) of the symmetric tensor a
// sorted in descending order: λ[0] ≥ λ[1] ≥ λ[2]
func PrincVals(a [][]float64) (λ []float64, err error) {
	λ, _, err = eigen(a, false)
	return
}

// PrincValsVecs computes the principal values and principal directions of the
// symmetric tensor a
//
//  λ[k] -- principal values sorted in descending order
//  n[k] -- unit principal direction corresponding to λ[k]
//
//  Sign convention: the first non-negligible component of every direction but the
//  last is positive; the last one completes a right-handed basis (n3 = n1 × n2 in 3D
//  and n2 = e3 × n1 in 2D)
func PrincValsVecs(a [][]float64) (λ []float64, n [][]float64, err error) {
	return eigen(a, true)
}

// eigen computes eigenvalues and, optionally, eigenvectors with Jacobi rotations.
// The tensor is scaled by its largest absolute component before the rotations
func eigen(a [][]float64, vecs bool) (λ []float64, n [][]float64, err error) {
	err = CheckSym(a, SymTol)
	if err != nil {
		return
	}
	dim := len(a)
	λ = make([]float64, dim)
	scale := MaxAbs(a)
	if scale == 0 {
		if vecs {
			n = Identity(dim)
		}
		return
	}
	A := la.NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			A.Set(i, j, (a[i][j]+a[j][i])/(2.0*scale))
		}
	}
	Q := la.NewMatrix(dim, dim)
	v := la.NewVector(dim)
	err = jacobi(Q, v, A)
	if err != nil {
		return nil, nil, err
	}

	// sort in descending order
	idx := make([]int, dim)
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(i, j int) bool { return v[idx[i]] > v[idx[j]] })
	for k := 0; k < dim; k++ {
		λ[k] = v[idx[k]] * scale
	}
	if !vecs {
		return
	}

	// vectors are the columns of Q
	n = utl.Alloc(dim, dim)
	for k := 0; k < dim; k++ {
		for i := 0; i < dim; i++ {
			n[k][i] = Q.Get(i, idx[k])
		}
		if k < dim-1 {
			fixSign(n[k])
		}
	}
	if dim == 3 {
		utl.Cross3d(n[2], n[0], n[1]) // n3 := n1 cross n2
	} else {
		n[1][0], n[1][1] = -n[0][1], n[0][0] // n2 := e3 cross n1
	}
	return
}

// jacobi runs la.Jacobi returning its panics as errors
func jacobi(Q *la.Matrix, v la.Vector, A *la.Matrix) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("eigen decomposition of symmetric tensor failed: %v", r)
		}
	}()
	la.Jacobi(Q, v, A)
	return
}

// fixSign flips v such that its first non-negligible component is positive
func fixSign(v []float64) {
	for _, x := range v {
		if math.Abs(x) > 1e-10 {
			if x < 0 {
				for i := range v {
					v[i] = -v[i]
				}
			}
			return
		}
	}
}

// OrthoCheck computes the dot products n_i⋅n_j (i < j) and the norms of the
// directions in n; an orthonormal set gives zeros and ones
func OrthoCheck(n [][]float64) (dots, norms []float64) {
	for i := 0; i < len(n); i++ {
		norms = append(norms, VecNorm(n[i]))
		for j := i + 1; j < len(n); j++ {
			dots = append(dots, VecDot(n[i], n[j]))
		}
	}
	return
}

// MaxShear computes the maximum shear value and the normals of the planes where it acts
//
//  τmax = (λ1 - λ3) / 2
//  m1   = (n1 + n3) / |n1 + n3|
//  m2   = (n1 - n3) / |n1 - n3|
//
//  axis -- intermediate principal direction n2, contained in both planes (3D only; nil in 2D)
//
//  Input: λ and n as returned by PrincValsVecs
func MaxShear(λ []float64, n [][]float64) (τmax float64, m1, m2, axis []float64) {
	last := len(λ) - 1
	τmax = (λ[0] - λ[last]) / 2.0
	dim := len(n[0])
	m1 = make([]float64, dim)
	m2 = make([]float64, dim)
	for i := 0; i < dim; i++ {
		m1[i] = n[0][i] + n[last][i]
		m2[i] = n[0][i] - n[last][i]
	}
	l1, l2 := VecNorm(m1), VecNorm(m2)
	for i := 0; i < dim; i++ {
		m1[i] /= l1
		m2[i] /= l2
	}
	if len(n) == 3 {
		axis = make([]float64, dim)
		copy(axis, n[1])
	}
	return
}
