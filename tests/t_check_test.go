// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_scaled01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("scaled01. tolerance relative to reference values")

	chk.Float64(tst, "small", 1e-17, Scaled(1e-9, 0.5, -0.2), 1e-9)
	chk.Float64(tst, "none", 1e-17, Scaled(1e-9), 1e-9)
	chk.Float64(tst, "large", 1e-15, Scaled(1e-9, 300, 27900, -810000), 8.1e-4)

	// third invariant of the ex2.1.3 stress state computed by LU factorisation
	I3 := 809999.9999999988
	chk.Float64(tst, "I3", Scaled(1e-9, 810000), I3, 810000)
}
