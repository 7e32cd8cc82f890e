// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
)

// TimeSeries holds sampled state trajectories of every zone
type TimeSeries struct {
	Times  []float64     // sample times [d]
	Zones  []string      // zone type tags, in train order
	States [][]asm.State // [zone][sample]
}

// Last returns the final sampled state of zone k
func (o *TimeSeries) Last(k int) asm.State {
	return o.States[k][len(o.States[k])-1]
}

// Transient marches the whole zone train through time with a fixed step,
// all zones advancing together and the recycle streams drawn from the
// current states. The trajectory is sampled every outEvery steps.
func Transient(mdl *asm.Model, feed asm.State, rc *inp.Reactor, ini asm.State,
	stp Stepper, dt, duration float64, outEvery int) *TimeSeries {

	nz := len(rc.Zones)
	mult := flowMultipliers(rc)
	states := make([]asm.State, nz)
	for k := range states {
		states[k] = ini
	}

	ts := &TimeSeries{
		Times:  []float64{0},
		Zones:  make([]string, nz),
		States: make([][]asm.State, nz),
	}
	for k, z := range rc.Zones {
		ts.Zones[k] = z.Type
		ts.States[k] = []asm.State{ini}
	}

	nsteps := int(duration / dt)
	for step := 1; step <= nsteps; step++ {
		last := states[nz-1]
		next := make([]asm.State, nz)
		intAdded := false
		for k, z := range rc.Zones {
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
			hrt := z.HRT / mult[k]
			f := func(x []float64) []float64 {
				return Derivs(mdl, asm.StateFromVector(x), fd, hrt, z.Type, z.DO)
			}
			next[k] = asm.StateFromVector(stp.Step(states[k].Vector(), f, dt))
		}
		states = next

		if step%outEvery == 0 || step == nsteps {
			ts.Times = append(ts.Times, float64(step)*dt)
			for k := range states {
				ts.States[k] = append(ts.States[k], states[k])
			}
		}
	}
	return ts
}
