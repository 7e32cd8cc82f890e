// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
)

// blend returns the flow-weighted mix of two states
func blend(a asm.State, wa float64, b asm.State, wb float64) asm.State {
	av, bv := a.Vector(), b.Vector()
	m := make([]float64, asm.Ncomp)
	for i := 0; i < asm.Ncomp; i++ {
		m[i] = (wa*av[i] + wb*bv[i]) / (wa + wb)
	}
	return asm.StateFromVector(m)
}

// flowMultipliers returns the relative flow through each zone (influent
// flow = 1): the return sludge joins ahead of the first zone and the
// internal recycle ahead of the first anoxic zone
func flowMultipliers(rc *inp.Reactor) []float64 {
	mult := make([]float64, len(rc.Zones))
	m := 1.0 + rc.RRAS
	intAdded := false
	for k, z := range rc.Zones {
		if z.Type == inp.ZoneAnoxic && !intAdded {
			m += rc.RInt
			intAdded = true
		}
		mult[k] = m
	}
	return mult
}

// MultiZone solves the zone train to steady state. Zones are processed in
// sequence; each zone is fed the previous zone's output blended with the
// recycle streams (internal nitrate recycle into the first anoxic zone,
// return activated sludge into the head of the train) and initialised from
// the previous zone's solution. The recycle source is the last zone, so the
// train is swept several times until the recycle loop settles. Every
// configured zone appears as a key in the result.
func MultiZone(mdl *asm.Model, feed asm.State, rc *inp.Reactor, ini asm.State,
	stp Stepper, dt, tol float64, maxIt, sweeps int) (zones map[string]asm.State, iterations int) {

	nz := len(rc.Zones)
	mult := flowMultipliers(rc)
	states := make([]asm.State, nz)
	for k := range states {
		states[k] = ini
	}

	for sweep := 0; sweep < sweeps; sweep++ {
		last := states[nz-1] // recycle source
		intAdded := false
		for k, z := range rc.Zones {

			// feed: previous zone output plus recycle junctions
			var fd asm.State
			switch {
			case k == 0:
				fd = blend(feed, 1, last, rc.RRAS)
			case z.Type == inp.ZoneAnoxic && !intAdded:
				fd = blend(states[k-1], mult[k-1], last, rc.RInt)
			default:
				fd = states[k-1]
			}
			if z.Type == inp.ZoneAnoxic {
				intAdded = true
			}

			// effective retention time shrinks with the recycle flow
			hrt := z.HRT / mult[k]

			res := SteadyState(mdl, fd, states[k], hrt, z.Type, z.DO, stp, dt, tol, maxIt)
			states[k] = res.State
			iterations += res.Iterations
		}
	}

	zones = make(map[string]asm.State)
	for k, z := range rc.Zones {
		zones[z.Type] = states[k]
	}
	return
}
