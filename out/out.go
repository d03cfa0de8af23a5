// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of analyses: results records, text reports and figures
package out

import (
	"math"
	"sort"

	"github.com/Lima98/TKT4150/ten"
)

// constants
var (
	TolZero = 1e-12 // values with smaller magnitude are printed as zero
	Npts    = 201   // default number of points in curves
)

// Result holds the results of one analysis. Non-finite scalars (e.g. the safety
// factor of a stress-free state) are not stored
type Result struct {
	Kind     string                 `json:"kind"`     // kind of analysis
	Tag      string                 `json:"tag"`      // tag of analysis
	Desc     string                 `json:"desc"`     // description
	Scalars  map[string]float64     `json:"scalars"`  // scalar results; e.g. "I1", "svm"
	Vectors  map[string][]float64   `json:"vectors"`  // vector results; e.g. "vals"
	Matrices map[string][][]float64 `json:"matrices"` // matrix results; e.g. "dirs"
	Flags    map[string]bool        `json:"flags"`    // boolean results; e.g. "safe"
}

// ResultsMap maps tags to results
type ResultsMap map[string]*Result

// NewResult returns a new Result
func NewResult(kind, tag, desc string) *Result {
	return &Result{
		Kind:     kind,
		Tag:      tag,
		Desc:     desc,
		Scalars:  make(map[string]float64),
		Vectors:  make(map[string][]float64),
		Matrices: make(map[string][][]float64),
		Flags:    make(map[string]bool),
	}
}

// Set sets scalar result
func (o *Result) Set(key string, val float64) {
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return
	}
	o.Scalars[key] = val
}

// SetVec sets vector result (a copy is stored)
func (o *Result) SetVec(key string, v []float64) {
	if v == nil {
		return
	}
	w := make([]float64, len(v))
	copy(w, v)
	o.Vectors[key] = w
}

// SetMat sets matrix result (a copy is stored)
func (o *Result) SetMat(key string, a [][]float64) {
	if a == nil {
		return
	}
	o.Matrices[key] = ten.Clone(a)
}

// SetFlag sets boolean result
func (o *Result) SetFlag(key string, val bool) {
	o.Flags[key] = val
}

// ScalarKeys returns the sorted keys of scalar results
func (o *Result) ScalarKeys() (keys []string) {
	for key := range o.Scalars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// clean returns zero if |x| is smaller than TolZero
func clean(x float64) float64 {
	if math.Abs(x) < TolZero {
		return 0
	}
	return x
}
