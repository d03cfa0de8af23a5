// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// stress tensor used in several tests [MPa]
func exampleStress() [][]float64 {
	return [][]float64{
		{90, -30, 0},
		{-30, 120, -30},
		{0, -30, 90},
	}
}
