// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/mkin"
	"github.com/verchemxyz/asm2d/mstoich"
)

// Data holds global data for simulations
type Data struct {
	Desc   string  `json:"desc"`   // description of simulation
	DirOut string  `json:"dirout"` // directory for output; e.g. /tmp/asm2d
	Temp   float64 `json:"temp"`   // operating temperature [°C]
}

// SolverData holds solver settings
type SolverData struct {
	Type     string  `json:"type"`     // stepper type: "euler" or "rk4"
	Dt       float64 `json:"dt"`       // fixed step size [d]
	MaxIt    int     `json:"maxit"`    // maximum steady-state iterations
	Tol      float64 `json:"tol"`      // convergence tolerance on state change
	Sweeps   int     `json:"sweeps"`   // recycle sweeps over the zone train
	Duration float64 `json:"duration"` // transient simulation span [d]
	OutEvery int     `json:"outevery"` // steps between recorded time-series points
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data     Data       `json:"data"`     // global data
	Solver   SolverData `json:"solver"`   // solver settings
	Influent *Influent  `json:"influent"` // raw influent record
	Reactor  *Reactor   `json:"reactor"`  // zone train and recycles
	KinPrms  fun.Prms   `json:"kinetic"`  // kinetic parameter overrides
	StcPrms  fun.Prms   `json:"stoich"`   // stoichiometric parameter overrides

	// derived
	Key string          // simulation key: input filename without extension
	Kin *mkin.Params    // kinetic parameters at 20°C (after overrides)
	Stc *mstoich.Params // stoichiometric parameters (after overrides)
}

// setDefaults fills in unset solver settings
func (o *Simulation) setDefaults() {
	if o.Solver.Type == "" {
		o.Solver.Type = "euler"
	}
	if o.Solver.Dt <= 0 {
		o.Solver.Dt = 1e-4
	}
	if o.Solver.MaxIt <= 0 {
		o.Solver.MaxIt = 200000
	}
	if o.Solver.Tol <= 0 {
		o.Solver.Tol = 1e-6
	}
	if o.Solver.Sweeps <= 0 {
		o.Solver.Sweeps = 3
	}
	if o.Solver.Duration <= 0 {
		o.Solver.Duration = 100
	}
	if o.Solver.OutEvery <= 0 {
		o.Solver.OutEvery = 1000
	}
	if o.Data.Temp == 0 {
		o.Data.Temp = 20
	}
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/asm2d"
	}
}

// ReadSim reads simulation input data from a .sim JSON file
func ReadSim(dir, fn string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	o = new(Simulation)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", fn, err)
	}
	o.Key = fnkey(fn)
	o.setDefaults()

	// validate input records
	if o.Influent == nil {
		return nil, chk.Err("simulation file %q misses the influent record", fn)
	}
	if err = o.Influent.Validate(); err != nil {
		return nil, err
	}
	if o.Reactor == nil {
		o.Reactor = GetDefaultReactor()
	}
	if err = o.Reactor.Validate(); err != nil {
		return nil, err
	}

	// parameter sets with overrides applied
	o.Kin = new(mkin.Params)
	if err = o.Kin.Init(o.KinPrms); err != nil {
		return nil, err
	}
	o.Stc = new(mstoich.Params)
	if err = o.Stc.Init(o.StcPrms); err != nil {
		return nil, err
	}
	return
}

// fnkey returns the filename without directory and extension
func fnkey(fn string) string {
	base := filepath.Base(fn)
	return base[:len(base)-len(filepath.Ext(base))]
}
