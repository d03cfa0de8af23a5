// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ten implements second-order tensor operations for continuum mechanics:
// invariants, principal values and directions, deviatoric quantities and the
// von Mises equivalent stress
package ten

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Alloc allocates a 3x3 tensor
func Alloc() [][]float64 {
	return utl.Alloc(3, 3)
}

// Identity returns the n x n identity tensor
func Identity(n int) (I [][]float64) {
	I = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		I[i][i] = 1
	}
	return
}

// Clone returns a deep copy of a
func Clone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}

// CheckShape returns an error if a is not square with size 2 or 3
func CheckShape(a [][]float64) error {
	n := len(a)
	if n != 2 && n != 3 {
		return chk.Err("tensor must be 2x2 or 3x3; got %d rows", n)
	}
	for i, row := range a {
		if len(row) != n {
			return chk.Err("tensor must be square; row %d has %d columns instead of %d", i, len(row), n)
		}
	}
	return nil
}

// CheckSym returns an error if a is not a square symmetric tensor
//  tol -- tolerance relative to the largest component (or 1 if smaller)
func CheckSym(a [][]float64, tol float64) error {
	if err := CheckShape(a); err != nil {
		return err
	}
	ref := math.Max(1, MaxAbs(a))
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol*ref {
				return chk.Err("tensor is not symmetric: a[%d][%d]=%g != a[%d][%d]=%g", i, j, a[i][j], j, i, a[j][i])
			}
		}
	}
	return nil
}

// MaxAbs returns the largest absolute component of a
func MaxAbs(a [][]float64) (res float64) {
	for _, row := range a {
		for _, v := range row {
			res = math.Max(res, math.Abs(v))
		}
	}
	return
}

// Transpose returns aᵀ
func Transpose(a [][]float64) (b [][]float64) {
	b = utl.Alloc(len(a[0]), len(a))
	for i := range a {
		for j := range a[i] {
			b[j][i] = a[i][j]
		}
	}
	return
}

// Sym returns the symmetric part ½(a + aᵀ)
func Sym(a [][]float64) (b [][]float64) {
	n := len(a)
	b = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[i][j] = (a[i][j] + a[j][i]) / 2.0
		}
	}
	return
}

// Skew returns the skew-symmetric part ½(a - aᵀ)
func Skew(a [][]float64) (b [][]float64) {
	n := len(a)
	b = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[i][j] = (a[i][j] - a[j][i]) / 2.0
		}
	}
	return
}

// Add returns α⋅a + β⋅b
func Add(α float64, a [][]float64, β float64, b [][]float64) (c [][]float64) {
	n := len(a)
	c = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i][j] = α*a[i][j] + β*b[i][j]
		}
	}
	return
}

// Tr returns the trace of a
func Tr(a [][]float64) (res float64) {
	for i := range a {
		res += a[i][i]
	}
	return
}

// Det returns the determinant of a computed with the LU factorisation
func Det(a [][]float64) float64 {
	return mat.Det(toDense(a))
}

// InvTol is the smallest |det(a)|/max|aij|ⁿ accepted by Inv
var InvTol = 1e-14

// Inv returns the inverse of the 2x2 or 3x3 tensor a
func Inv(a [][]float64) (ai [][]float64, err error) {
	err = CheckShape(a)
	if err != nil {
		return
	}
	n := len(a)
	tol := InvTol * math.Pow(MaxAbs(a), float64(n))
	if tol == 0 {
		return nil, chk.Err("cannot invert null tensor")
	}
	defer func() {
		if r := recover(); r != nil {
			ai, err = nil, chk.Err("cannot invert tensor: %v", r)
		}
	}()
	A := la.NewMatrixDeep2(a)
	Ai := la.NewMatrix(n, n)
	la.MatInvSmall(Ai, A, tol)
	return Ai.GetDeep2(), nil
}

// Norm returns the Frobenius norm √(a:a)
func Norm(a [][]float64) float64 {
	return math.Sqrt(DDot(a, a))
}

// Dot returns the single contraction c = a⋅b
func Dot(a, b [][]float64) (c [][]float64) {
	n, m, p := len(a), len(b), len(b[0])
	c = utl.Alloc(n, p)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			for k := 0; k < m; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// DDot returns the double contraction a:b
func DDot(a, b [][]float64) (res float64) {
	for i := range a {
		for j := range a[i] {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// MatVec returns u = a⋅v
func MatVec(a [][]float64, v []float64) (u []float64) {
	u = make([]float64, len(a))
	for i := range a {
		for j := range v {
			u[i] += a[i][j] * v[j]
		}
	}
	return
}

// Dyad returns u⊗v
func Dyad(u, v []float64) (a [][]float64) {
	a = utl.Alloc(len(u), len(v))
	for i := range u {
		for j := range v {
			a[i][j] = u[i] * v[j]
		}
	}
	return
}

// VecNorm returns the Euclidean norm of v
func VecNorm(v []float64) (res float64) {
	for _, x := range v {
		res += x * x
	}
	return math.Sqrt(res)
}

// VecDot returns u⋅v
func VecDot(u, v []float64) (res float64) {
	for i := range u {
		res += u[i] * v[i]
	}
	return
}

// Dev returns the deviatoric part s = a - mean⋅I and the mean value tr(a)/3.
// 2x2 tensors are treated as 3x3 tensors with zero out-of-plane components;
// thus s is always 3x3
func Dev(a [][]float64) (s [][]float64, mean float64) {
	mean = Tr(a) / 3.0
	s = Expand3(a)
	for i := range s {
		s[i][i] -= mean
	}
	return
}

// Expand3 returns a 3x3 copy of a; 2x2 tensors get zero out-of-plane components
func Expand3(a [][]float64) (b [][]float64) {
	b = Alloc()
	for i := range a {
		for j := range a[i] {
			b[i][j] = a[i][j]
		}
	}
	return
}

// toDense converts a to a gonum dense matrix
func toDense(a [][]float64) *mat.Dense {
	n, m := len(a), len(a[0])
	d := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			d.Set(i, j, a[i][j])
		}
	}
	return d
}
