// Copyright 2016 The TKT4150 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/Lima98/TKT4150/mohr"
)

// PolarStresses computes stress components w.r.t the polar system at (x, y) from
// the Cartesian components
func PolarStresses(x, y, sx, sy, sxy float64) (r, sr, st, srt float64) {
	r = math.Hypot(x, y)
	p := mohr.Plane{Sx: sx, Sy: sy, Sxy: sxy}.Rotate(math.Atan2(y, x))
	return r, p.Sx, p.Sy, p.Sxy
}

// CartesianStresses computes Cartesian stress components at (x, y) from the polar ones
func CartesianStresses(x, y, sr, st, srt float64) (sx, sy, sxy float64) {
	p := mohr.Plane{Sx: sr, Sy: st, Sxy: srt}.Rotate(-math.Atan2(y, x))
	return p.Sx, p.Sy, p.Sxy
}
