// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "r")
	Ylbl  string    // vertical axis label (raw; e.g. "srr")
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // x range
	Xlbl   string       // x-axis label (formatted; e.g. "$r$")
	Ylbl   string       // y-axis label (formatted; e.g. "$\sigma_r$")
	Data   []*PltEntity // data and styles to be plotted
}

// subplots
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// ClearSplots removes all subplots
func ClearSplots() {
	Splots = make([]*SplotDat, 0)
	Csplot = nil
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot adds a curve to the current subplot
//  xlbl, ylbl -- raw keys of labels; e.g. "r" and "srr"
//  alias      -- alias such as "elastic"
//  fm         -- formatting codes; e.g. plt.A{C:"blue", L:"label"}
func Plot(x, y []float64, xlbl, ylbl, alias string, fm plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	e := &PltEntity{Alias: alias, X: x, Y: y, Xlbl: xlbl, Ylbl: ylbl, Style: fm}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, e)
	SplotConfig("", "", 1, 1)
}

// Draw draws and saves figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- file name key (without extension)
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  split  -- split subplots into separated figures named fnkey_id
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fnkey string, nr, nc int, split bool, extra func(id string)) {
	nplots := len(Splots)
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	plt.Reset(false, nil)
	for k := 0; k < nplots; k++ {
		spl := Splots[k]
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			if d.Style.L == "" {
				d.Style.L = d.Alias
			}
			d.Style.NoClip = true
			x, y := scale(spl.Xscale, d.X), scale(spl.Yscale, d.Y)
			plt.Plot(x, y, &d.Style)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Xrange) == 2 {
			plt.AxisXrange(spl.Xrange[0], spl.Xrange[1])
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
		if split {
			plt.Save(dirout, fnkey+"_"+spl.Id)
			plt.Reset(false, nil)
		}
	}
	if !split {
		plt.Save(dirout, fnkey)
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// scale returns s⋅v; v itself if s is zero or one
func scale(s float64, v []float64) []float64 {
	if math.Abs(s) == 0 || s == 1 {
		return v
	}
	w := make([]float64, len(v))
	for i, x := range v {
		w[i] = s * x
	}
	return w
}
