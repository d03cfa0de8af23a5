// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to compare the results of case files
// with reference values
package tests

import (
	"encoding/json"
	"math"
	"sort"
	"testing"

	"github.com/Lima98/TKT4150/drv"
	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Expected holds the reference results of one analysis
type Expected struct {
	Tag      string                 `json:"tag"`      // tag of analysis
	Note     string                 `json:"note"`     // where the values come from
	Tol      float64                `json:"tol"`      // tolerance; 0 => use the tolerance given to CompareResults. Scaled by max(1, |ref|)
	Scalars  map[string]float64     `json:"scalars"`  // scalar results
	Vectors  map[string][]float64   `json:"vectors"`  // vector results
	Matrices map[string][][]float64 `json:"matrices"` // matrix results
	Flags    map[string]bool        `json:"flags"`    // boolean results
}

// ExpectedSet is a set of reference results
type ExpectedSet []*Expected

// RunCase reads and runs a case file
func RunCase(tst *testing.T, casefile, alias string) (main *drv.Main) {
	main, err := drv.NewMain(casefile, alias, chk.Verbose, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return nil
	}
	err = main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return nil
	}
	return
}

// CompareResults runs a case file and compares its results with the ones in a .cmp file
func CompareResults(tst *testing.T, casefile, cmpfname, alias string, tol float64, verbose bool) {

	// run
	main := RunCase(tst, casefile, alias)
	if main == nil {
		return
	}

	// read file with comparison results
	buf, err := inp.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}

	// unmarshal json
	var cmpSet ExpectedSet
	err = json.Unmarshal(buf, &cmpSet)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v", err)
		return
	}

	// run comparisons
	for _, cmp := range cmpSet {
		res := main.Get(cmp.Tag)
		if res == nil {
			tst.Errorf("CompareResults: cannot find results of analysis %q\n", cmp.Tag)
			continue
		}
		if verbose {
			io.PfYel("\n%s . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . .\n", cmp.Tag)
			if cmp.Note != "" {
				io.Pfyel("%s\n", cmp.Note)
			}
		}
		tl := tol
		if cmp.Tol > 0 {
			tl = cmp.Tol
		}

		// scalars
		for _, key := range sortedKeys(cmp.Scalars) {
			val, ok := res.Scalars[key]
			if !ok {
				tst.Errorf("%s: scalar %q is missing\n", cmp.Tag, key)
				continue
			}
			chk.Float64(tst, io.Sf("%s: %s", cmp.Tag, key), Scaled(tl, cmp.Scalars[key]), val, cmp.Scalars[key])
		}

		// vectors
		for key, ref := range cmp.Vectors {
			v, ok := res.Vectors[key]
			if !ok {
				tst.Errorf("%s: vector %q is missing\n", cmp.Tag, key)
				continue
			}
			chk.Array(tst, io.Sf("%s: %s", cmp.Tag, key), Scaled(tl, ref...), v, ref)
		}

		// matrices
		for key, ref := range cmp.Matrices {
			a, ok := res.Matrices[key]
			if !ok {
				tst.Errorf("%s: matrix %q is missing\n", cmp.Tag, key)
				continue
			}
			chk.Deep2(tst, io.Sf("%s: %s", cmp.Tag, key), Scaled(tl, ten.MaxAbs(ref)), a, ref)
		}

		// flags
		for key, ref := range cmp.Flags {
			flag, ok := res.Flags[key]
			if !ok {
				tst.Errorf("%s: flag %q is missing\n", cmp.Tag, key)
				continue
			}
			if flag != ref {
				tst.Errorf("%s: flag %q is %v but should be %v\n", cmp.Tag, key, flag, ref)
				continue
			}
			if verbose {
				io.Pf("%s: %s = %v OK\n", cmp.Tag, key, flag)
			}
		}
	}
}

// Scaled returns tol⋅max(1, |ref_i|) such that large reference values are compared
// with a relative tolerance
func Scaled(tol float64, ref ...float64) float64 {
	m := 1.0
	for _, r := range ref {
		m = math.Max(m, math.Abs(r))
	}
	return tol * m
}

// sortedKeys returns the keys of m in ascending order
func sortedKeys(m map[string]float64) (keys []string) {
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}
