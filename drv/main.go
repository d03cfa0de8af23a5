// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drv implements the driver that runs all analyses of a case file
package drv

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Lima98/TKT4150/ana"
	"github.com/Lima98/TKT4150/inp"
	"github.com/Lima98/TKT4150/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for running the analyses of a case
type Main struct {
	Case    *inp.Case      // case data
	Report  *out.Report    // formatted results
	Results []*out.Result  // results of all analyses, in order
	ResMap  out.ResultsMap // maps tags to results
	MatPrms dbf.Params     // material parameters; nil if no material was given
	DoPlot  bool           // generate figures
	ShowMsg bool           // show messages
}

// NewMain returns a new Main structure
//  Input:
//   casefile -- case (.json or .yaml) filename including full path
//   alias    -- word to be appended to the case key; e.g. when running variations of a case
//   verbose  -- show messages
//   doplot   -- generate figures
func NewMain(casefile, alias string, verbose, doplot bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.DoPlot = doplot
	o.ShowMsg = verbose

	// read input data
	o.Case, err = inp.ReadCase(casefile, alias)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Case file read\n")
	}

	// material parameters
	o.MatPrms, err = o.materialPrms()
	if err != nil {
		return nil, err
	}

	// report
	title := o.Case.Desc
	if title == "" {
		title = o.Case.FnKey
	}
	o.Report = out.NewReport(title, o.Case.Units.Pres, o.Case.Units.Len, verbose)
	if o.Case.Material != "" {
		o.Report.Material(o.Case.Material, o.MatPrms)
	}
	o.ResMap = make(map[string]*out.Result)
	return
}

// Run runs all analyses and saves the report and the results
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %d analyses\n", len(o.Case.Analyses))
	}

	// loop over analyses
	for _, a := range o.Case.Analyses {
		runner, ok := runners[a.Kind]
		if !ok {
			return chk.Err("cannot find runner for analysis of kind %q", a.Kind)
		}
		res := out.NewResult(a.Kind, a.Tag, a.Desc)
		o.Report.Section(a.Kind, a.Tag, a.Desc)
		err = runner(o, a, res)
		if err != nil {
			return chk.Err("analysis %q failed:\n%v", a.Tag, err)
		}
		o.Results = append(o.Results, res)
		o.ResMap[a.Tag] = res
	}
	return
}

// Get returns the results of the analysis with the given tag
//  Note: returns nil if not found
func (o *Main) Get(tag string) *out.Result {
	return o.ResMap[tag]
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit saves report and results and prints final message
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.Pfgreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		return prevErr
	}

	// save report
	io.WriteFileVD(o.Case.DirOut, o.Case.FnKey+".txt", &o.Report.Buf)

	// save results
	b, err := json.MarshalIndent(o.Results, "", "  ")
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	io.WriteFileVD(o.Case.DirOut, o.Case.FnKey+"-res.json", bytes.NewBuffer(b))
	return
}

// materialPrms returns the parameters of the material of the case: the entry in
// the materials file if found; otherwise the reference material with this name
func (o *Main) materialPrms() (prms dbf.Params, err error) {
	c := o.Case
	if c.Material == "" {
		return
	}
	if c.MatDat != nil {
		if c.MatDat.Units != "" && c.MatDat.Units != c.Units.Pres {
			return nil, chk.Err("unit of material %q (%s) differs from the unit of the case (%s)", c.Material, c.MatDat.Units, c.Units.Pres)
		}
		return c.MatDat.Prms, nil
	}
	var mat ana.Material
	err = mat.Init(c.Material, c.Units.Pres)
	if err != nil {
		return nil, chk.Err("material %q is not in the materials file: %v", c.Material, err)
	}
	return mat.GetPrms(), nil
}

// plotKey returns the file name key of a figure
func (o *Main) plotKey(a *inp.AnaData, name string) string {
	return io.Sf("%s-%s-%s", o.Case.FnKey, a.Tag, name)
}

// plotting tells whether figures of analysis a should be generated
func (o *Main) plotting(a *inp.AnaData) bool {
	return o.DoPlot && !a.NoPlot
}
