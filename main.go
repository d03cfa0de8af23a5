// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Lima98/TKT4150/drv"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nTKT4150 -- Biomechanics: stress, strain and vessel analyses\n")
		io.Pf("Copyright 2016 The TKT4150 Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"case filename path (.json or .yaml)", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"generate figures", "doplot", doplot,
			"alias appended to output files", "alias", alias,
		))
	}

	// analyses data
	analysis, err := drv.NewMain(fnamepath, alias, verbose, doplot)
	if err != nil {
		chk.Panic("cannot read case file:\n%v", err)
	}

	// run analyses
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
