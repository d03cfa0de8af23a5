// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"encoding/json"

	"github.com/Lima98/TKT4150/ana"
	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/out"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

type Input struct {
	Tensor [][]float64 // stress tensor (2x2 or 3x3)
	Plane  bool        // plane stress analysis of the upper-left 2x2 block
	Sigy   float64     // yield strength; 0 => no yield check
	Unit   string      // unit of stress
	DoPlot bool        // generate figures
	DirOut string      // directory for figures

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Unit == "" {
		o.Unit = "MPa"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/tkt4150"
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"stress tensor", "Tensor", io.Sf("%v", o.Tensor),
		"plane stress", "Plane", o.Plane,
		"yield strength", "Sigy", o.Sigy,
		"unit of stress", "Unit", o.Unit,
		"generate figures", "DoPlot", o.DoPlot,
		"directory for figures", "DirOut", o.DirOut,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/tensorcalc1", ".inp", true)

	// read and parse input data
	b, err := inp.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// parameters
	var prms dbf.Params
	if in.Sigy > 0 {
		prms = append(prms, &dbf.P{N: "sigy", V: in.Sigy})
	}

	// run
	fnkey := io.FnKey(in.inpfn)
	rpt := out.NewReport(fnkey, in.Unit, "", true)
	if in.Plane {
		var s ana.PlaneStressAnalysis
		err = s.Init(in.Tensor, prms)
		if err != nil {
			io.PfRed("plane stress analysis failed: %v\n", err)
			return
		}
		rpt.Plane(&s)
		if in.DoPlot {
			out.PlotPlane(&s, in.DirOut, fnkey+"-mohr", in.Unit)
		}
		return
	}
	var s ana.StressAnalysis
	err = s.Init(in.Tensor, prms)
	if err != nil {
		io.PfRed("stress analysis failed: %v\n", err)
		return
	}
	rpt.Stress(&s)
	if in.DoPlot {
		out.PlotCharPoly(&s, in.DirOut, fnkey+"-charpoly", in.Unit)
		out.PlotPrincDirs(s.Dirs, s.ShearDirs, in.DirOut, fnkey+"-dirs")
		out.PlotMohr3d(s.Vals, in.DirOut, fnkey+"-mohr", in.Unit)
	}
}
