// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
)

// Main holds all data for one plant simulation
type Main struct {
	Sim     *inp.Simulation // simulation input data
	Mdl     *asm.Model      // biokinetic model at operating temperature
	Stp     Stepper         // fixed-step integrator
	ShowMsg bool            // show messages
}

// Results holds the outputs of one plant simulation
type Results struct {
	Influent   asm.State            // fractionated influent state
	Zones      map[string]asm.State // steady state per zone type
	Series     *TimeSeries          // transient trajectories
	Iterations int                  // total steady-state iterations
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main) {

	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	dir, fn := filepath.Split(simfilepath)
	sim, err := inp.ReadSim(dir, fn)
	if err != nil {
		chk.Panic("cannot read simulation input data:\n%v", err)
	}
	o.Sim = sim

	// biokinetic model at operating temperature
	o.Mdl = asm.NewModel(sim.Kin.CorrectTemperature(sim.Data.Temp), sim.Stc)

	// stepper
	o.Stp, err = New(sim.Solver.Type)
	if err != nil {
		chk.Panic("cannot allocate stepper:\n%v", err)
	}

	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read: %s\n", sim.Key)
		io.Pf("> Operating temperature: %g °C\n", sim.Data.Temp)
	}
	return
}

// Run fractionates the influent, solves the zone train to steady state and
// runs the transient simulation
func (o *Main) Run() (res *Results, err error) {

	res = new(Results)

	// fractionation
	res.Influent, err = inp.Fractionate(o.Sim.Influent)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Influent fractionated\n")
	}

	// steady state of the zone train
	sv := o.Sim.Solver
	ini := asm.DefaultInitialState()
	res.Zones, res.Iterations = MultiZone(o.Mdl, res.Influent, o.Sim.Reactor, ini,
		o.Stp, sv.Dt, sv.Tol, sv.MaxIt, sv.Sweeps)
	if o.ShowMsg {
		io.Pf("> Zone train solved: %d iterations\n", res.Iterations)
	}

	// transient simulation
	res.Series = Transient(o.Mdl, res.Influent, o.Sim.Reactor, ini,
		o.Stp, sv.Dt, sv.Duration, sv.OutEvery)
	if o.ShowMsg {
		io.Pf("> Transient simulation completed: %d samples\n", len(res.Series.Times))
	}
	return
}
