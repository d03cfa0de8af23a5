// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MatData holds material data
type MatData struct {
	Name  string     `json:"name" yaml:"name"`   // name of material
	Desc  string     `json:"desc" yaml:"desc"`   // description; e.g. "porcine aorta, circumferential"
	Units string     `json:"units" yaml:"units"` // unit of pressure of the parameters; e.g. "MPa"
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // parameters; e.g. "E", "nu", "rho", "sigy"
}

// MatsData holds materials
type MatsData []*MatData

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials" yaml:"materials"` // all materials
}

// ReadMat reads all materials data from a .json or .yaml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	path := filepath.Join(dir, fn)
	b, err := ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", path, err)
	}

	// decode
	mdb = new(MatDb)
	err = decode(b, io.FnExt(fn), mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", path, err)
	}

	// check
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("all materials in %q must have a name", path)
		}
		if names[m.Name] {
			return nil, chk.Err("material %q is repeated in %q", m.Name, path)
		}
		names[m.Name] = true
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *MatData {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *MatData) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"desc\"  : %q,\n      \"units\" : %q,\n      \"prms\"  : [\n", o.Name, o.Desc, o.Units)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
