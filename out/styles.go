// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.A

// GetDefaultStyles returns styles for the principal values; e.g. σ1, σ2, σ3
func GetDefaultStyles(n int) Styles {
	colors := []string{"r", "g", "b", "m", "c", "k"}
	sty := make([]plt.A, n)
	for i := 0; i < n; i++ {
		sty[i].C = colors[i%len(colors)]
		sty[i].Fc = colors[i%len(colors)]
		sty[i].Ec = colors[i%len(colors)]
		sty[i].Lw = 2
		sty[i].L = io.Sf("%d", i+1)
	}
	return sty
}

func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "r":
		l += "r"
	case "z":
		l += "z"
	case "p":
		l += "p"
	case "ub":
		l += "u_b"
	case "sig":
		l += "\\sigma"
	case "tau":
		l += "\\tau"
	case "srr":
		l += "\\sigma_r"
	case "stt":
		l += "\\sigma_{\\theta}"
	case "szz":
		l += "\\sigma_z"
	case "svm":
		l += "\\sigma_{vm}"
	case "eps":
		l += "\\varepsilon"
	case "gam":
		l += "\\gamma"
	case "lam":
		l += "\\lambda"
	case "theta":
		l += "\\theta"
	case "rho":
		l += "\\rho"
	case "depth":
		l += "h"
	case "ba":
		l += "b/a"
	case "sx":
		l += "\\sigma_{x'}"
	case "sy":
		l += "\\sigma_{y'}"
	case "sxy":
		l += "\\tau_{x'y'}"
	case "x1":
		l += "x_1"
	case "x2":
		l += "x_2"
	case "x3":
		l += "x_3"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;[" + unit + "]"
	}
	l += "$"
	return l
}
