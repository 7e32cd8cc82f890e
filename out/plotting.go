// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/cstr"
)

// PlotSeries plots the trajectories of selected components in one zone and
// saves the figure as <dirout>/<fnkey>-<zone>.png
func PlotSeries(ts *cstr.TimeSeries, ztype string, comps []int, dirout, fnkey string) {

	kz := -1
	for k, z := range ts.Zones {
		if z == ztype {
			kz = k
		}
	}
	if kz < 0 {
		io.PfRed("zone %q not found in time series\n", ztype)
		return
	}

	plt.Reset()
	y := make([]float64, len(ts.Times))
	for _, i := range comps {
		for n, s := range ts.States[kz] {
			y[n] = s.Vector()[i]
		}
		plt.Plot(ts.Times, y, io.Sf("label='%s', clip_on=0", asm.CompNames[i]))
	}
	plt.Gll("$t$ [d]", "$C$ [g/m³]", "")
	plt.SaveD(dirout, io.Sf("%s-%s.png", fnkey, ztype))
}
