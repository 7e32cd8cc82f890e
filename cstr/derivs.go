// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
)

// DORelax is the first-order relaxation rate [1/d] pulling dissolved oxygen
// towards the setpoint of an aerated zone, standing in for the external
// aeration control loop
const DORelax = 960.0

// Derivs computes the full derivative of one completely stirred zone:
// biological conversion plus the hydraulic transport term (feed-state)/τ.
// hrt is given in hours and must be positive (validated on input); the
// behaviour at hrt→0 is undefined. In aerobic zones the oxygen component
// is additionally driven towards the DO setpoint.
func Derivs(mdl *asm.Model, s, feed asm.State, hrt float64, ztype string, doset float64) []float64 {
	tau := hrt / 24.0 // hours to days
	dcdt := mdl.Derivs(s)
	fv := feed.Vector()
	sv := s.Vector()
	for i := 0; i < asm.Ncomp; i++ {
		dcdt[i] += (fv[i] - sv[i]) / tau
	}
	if ztype == inp.ZoneAerobic {
		dcdt[asm.ISO] += DORelax * (doset - s.SO)
	}
	return dcdt
}
