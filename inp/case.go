// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a case file (.json or .yaml)
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lima98/TKT4150/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Kinds holds the names of all available analyses
var Kinds = []string{"stress", "plane", "strain", "deformation", "vessel", "sphere", "thick", "column"}

// Units holds the units used in a case
type Units struct {
	Pres string `json:"pres" yaml:"pres"` // unit of pressure/stress: "kPa", "MPa" or "GPa"
	Len  string `json:"len" yaml:"len"`   // unit of length; e.g. "mm"
}

// AnaData holds the input data of one analysis
type AnaData struct {

	// input data
	Kind     string      `json:"kind" yaml:"kind"`         // kind of analysis; see Kinds
	Tag      string      `json:"tag" yaml:"tag"`           // tag identifying results; e.g. "ex2.1.3"
	Desc     string      `json:"desc" yaml:"desc"`         // description
	Tensor   [][]float64 `json:"tensor" yaml:"tensor"`     // stress or strain tensor
	DispGrad [][]float64 `json:"dispgrad" yaml:"dispgrad"` // displacement gradient H = ∂u/∂X
	DefGrad  [][]float64 `json:"defgrad" yaml:"defgrad"`   // deformation gradient F
	Measure  string      `json:"measure" yaml:"measure"`   // strain measure: "small", "green", "almansi", "almansi-spatial"
	Points   [][]float64 `json:"points" yaml:"points"`     // material points of deformation analysis; (x, y) in the wall of thick cylinder
	Labels   []string    `json:"labels" yaml:"labels"`     // labels of points
	Fluid    string      `json:"fluid" yaml:"fluid"`       // fluid of hydrostatic column: "blood", "plasma" or "water"
	Model    string      `json:"model" yaml:"model"`       // constitutive model giving the stress of strain and deformation analyses; e.g. "lin-elast"
	Npts     int         `json:"npts" yaml:"npts"`         // number of points for sweeps and plots; 0 => use default
	NoPlot   bool        `json:"noplot" yaml:"noplot"`     // do not generate figures for this analysis
	Prms     dbf.Params  `json:"prms" yaml:"prms"`         // parameters
}

// Case holds all data of a set of analyses
type Case struct {

	// input
	Desc     string     `json:"desc" yaml:"desc"`         // description of case
	DirOut   string     `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/tkt4150
	Units    Units      `json:"units" yaml:"units"`       // units
	Material string     `json:"material" yaml:"material"` // name of material; reference material or entry of Matfile
	Matfile  string     `json:"matfile" yaml:"matfile"`   // materials file path (relative to case file)
	Analyses []*AnaData `json:"analyses" yaml:"analyses"` // analyses

	// derived
	Dir    string   `json:"-" yaml:"-"` // directory of case file
	FnKey  string   `json:"-" yaml:"-"` // file name key of case file (+ alias)
	MatDb  *MatDb   `json:"-" yaml:"-"` // materials database; nil if Matfile is empty
	MatDat *MatData `json:"-" yaml:"-"` // material from Matfile; nil if not found
}

// ReadCase reads a case file. The format is selected by the file extension:
// ".json" or ".yaml"/".yml"
//  alias -- is appended to the file name key of output files
func ReadCase(casefile, alias string) (o *Case, err error) {

	// read file
	b, err := ReadFile(casefile)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", casefile, err)
	}

	// decode
	o = new(Case)
	err = decode(b, io.FnExt(casefile), o)
	if err != nil {
		return nil, chk.Err("cannot decode case file %q:\n%v", casefile, err)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(casefile))
	o.FnKey = io.FnKey(filepath.Base(casefile))
	if alias != "" {
		o.FnKey += "-" + alias
	}

	// defaults and checks
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("case file %q is invalid:\n%v", casefile, err)
	}

	// materials database
	if o.Matfile != "" {
		o.MatDb, err = ReadMat(o.Dir, o.Matfile)
		if err != nil {
			return nil, err
		}
		o.MatDat = o.MatDb.Get(o.Material)
	}
	return
}

// PostProcess sets default values and checks the analyses data
func (o *Case) PostProcess() (err error) {

	// defaults
	if o.DirOut == "" {
		o.DirOut = "/tmp/tkt4150"
	}
	if o.Units.Pres == "" {
		o.Units.Pres = "MPa"
	}
	if o.Units.Len == "" {
		o.Units.Len = "mm"
	}
	switch o.Units.Pres {
	case "kPa", "MPa", "GPa":
	default:
		return chk.Err("unit of pressure %q is invalid; options are \"kPa\", \"MPa\" and \"GPa\"", o.Units.Pres)
	}
	switch o.Units.Len {
	case "mm", "cm", "m":
	default:
		return chk.Err("unit of length %q is invalid; options are \"mm\", \"cm\" and \"m\"", o.Units.Len)
	}

	// analyses
	if len(o.Analyses) == 0 {
		return chk.Err("at least one analysis must be given")
	}
	tags := make(map[string]bool)
	for i, a := range o.Analyses {
		if a.Tag == "" {
			a.Tag = io.Sf("%s%d", a.Kind, i)
		}
		if tags[a.Tag] {
			return chk.Err("tag %q is repeated", a.Tag)
		}
		tags[a.Tag] = true
		err = a.Check()
		if err != nil {
			return chk.Err("analysis %q: %v", a.Tag, err)
		}
	}
	return
}

// Check checks whether the data required by the kind of analysis is present
func (o *AnaData) Check() (err error) {
	o.Kind = strings.ToLower(o.Kind)
	if o.Model != "" && o.Kind != "strain" && o.Kind != "deformation" {
		return chk.Err("\"model\" is only available for strain and deformation analyses")
	}
	switch o.Kind {
	case "stress", "plane":
		if o.Tensor == nil {
			return chk.Err("%s analysis requires \"tensor\"", o.Kind)
		}
		if o.Kind == "stress" && len(o.Tensor) != 3 {
			return chk.Err("stress analysis requires a 3x3 tensor")
		}
		return ten.CheckShape(o.Tensor)

	case "strain":
		n := 0
		for _, a := range [][][]float64{o.Tensor, o.DispGrad, o.DefGrad} {
			if a != nil {
				if err = ten.CheckShape(a); err != nil {
					return
				}
				n++
			}
		}
		if n != 1 {
			return chk.Err("strain analysis requires one (and only one) of \"tensor\", \"dispgrad\" or \"defgrad\"")
		}
		return o.checkMeasure()

	case "deformation":
		if (o.DispGrad == nil) == (o.DefGrad == nil) {
			return chk.Err("deformation analysis requires one (and only one) of \"dispgrad\" or \"defgrad\"")
		}
		if o.DefGrad != nil {
			err = ten.CheckShape(o.DefGrad)
		} else {
			err = ten.CheckShape(o.DispGrad)
		}
		if err != nil {
			return
		}
		if o.Labels != nil && len(o.Labels) != len(o.Points) {
			return chk.Err("number of labels (%d) must be equal to number of points (%d)", len(o.Labels), len(o.Points))
		}
		return o.checkMeasure()

	case "column":
		switch o.Fluid {
		case "":
			o.Fluid = "blood"
		case "blood", "plasma", "water":
		default:
			return chk.Err("fluid %q is unavailable; options are \"blood\", \"plasma\" and \"water\"", o.Fluid)
		}
		return

	case "thick":
		for i, x := range o.Points {
			if len(x) != 2 {
				return chk.Err("point %d of thick cylinder must have 2 coordinates", i)
			}
		}
		return

	case "vessel", "sphere":
		return

	case "":
		return chk.Err("\"kind\" must be given")
	}
	return chk.Err("kind of analysis %q is unavailable; options are %v", o.Kind, Kinds)
}

// GetPrm returns the value of parameter n and whether it exists
func (o *AnaData) GetPrm(n string) (val float64, found bool) {
	for _, p := range o.Prms {
		if p.N == n {
			return p.V, true
		}
	}
	return
}

// MergePrms returns base followed by the parameters of this analysis, thus the
// latter take precedence when processed in order
func (o *AnaData) MergePrms(base dbf.Params) (prms dbf.Params) {
	prms = make([]*dbf.P, 0, len(base)+len(o.Prms))
	prms = append(prms, base...)
	prms = append(prms, o.Prms...)
	return
}

// GetInfo writes the case data in JSON format
func (o *Case) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// ReadFile reads file fn. Failures (panics of io.ReadFile) are returned as errors
func ReadFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	return io.ReadFile(fn), nil
}

// decode unmarshals b according to the file extension ext
func decode(b []byte, ext string, v interface{}) (err error) {
	switch strings.ToLower(ext) {
	case ".json":
		return json.Unmarshal(b, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, v)
	}
	return chk.Err("file extension %q is invalid; options are \".json\", \".yaml\" and \".yml\"", ext)
}
