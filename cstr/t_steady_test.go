// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
	"github.com/verchemxyz/asm2d/mkin"
	"github.com/verchemxyz/asm2d/mstoich"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func model() *asm.Model {
	return asm.NewModel(mkin.GetDefault(), mstoich.GetDefault())
}

func Test_stepper01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper01. stepper factory")

	for _, name := range []string{"euler", "rk4"} {
		if _, err := New(name); err != nil {
			tst.Errorf("cannot allocate %q: %v", name, err)
			return
		}
	}
	if _, err := New("adams"); err == nil {
		tst.Errorf("unknown stepper name must fail")
		return
	}
}

func Test_stepper02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stepper02. steppers against exponential decay")

	// dx/dt = -k x with known solution
	k := 2.0
	f := func(x []float64) []float64 { return []float64{-k * x[0]} }
	exact := math.Exp(-k) // x(1) with x(0)=1

	for name, tol := range map[string]float64{"euler": 1e-3, "rk4": 1e-9} {
		stp, err := New(name)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v", name, err)
			return
		}
		dt := 0.001
		x := []float64{1}
		for i := 0; i < 1000; i++ {
			x = stp.Step(x, f, dt)
		}
		chk.Scalar(tst, io.Sf("%s x(1)", name), tol, x[0], exact)
	}
}

func Test_cstr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cstr01. transport term and DO relaxation")

	mdl := model()
	feed, err := inp.Fractionate(inp.GetDefaultInfluent())
	if err != nil {
		tst.Errorf("Fractionate failed: %v", err)
		return
	}
	s := asm.DefaultInitialState()

	// derivative is finite everywhere
	d := Derivs(mdl, s, feed, 8.0, inp.ZoneAerobic, 2.0)
	if len(d) != asm.Ncomp {
		tst.Errorf("derivative length %d is incorrect", len(d))
		return
	}
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("dC/dt[%s] is not finite: %g", asm.CompNames[i], v)
			return
		}
	}

	// dilution: with biology removed (no biomass) the inert balance is
	// purely hydraulic
	empty := asm.State{SI: 10}
	dd := Derivs(mdl, empty, feed, 6.0, inp.ZoneAnaerobic, 0)
	chk.Scalar(tst, "dSI/dt hydraulic", 1e-10, dd[asm.ISI], (feed.SI-10)/(6.0/24.0))

	// aeration pulls SO up in an aerobic zone, even from zero
	low := s
	low.SO = 0
	da := Derivs(mdl, low, feed, 8.0, inp.ZoneAerobic, 2.0)
	if da[asm.ISO] <= 0 {
		tst.Errorf("aeration must raise SO towards the setpoint")
		return
	}
}

func Test_steady01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steady01. aerobic zone develops biomass")

	mdl := model()
	feed, err := inp.Fractionate(inp.GetDefaultInfluent())
	if err != nil {
		tst.Errorf("Fractionate failed: %v", err)
		return
	}
	stp, _ := New("euler")

	res := SteadyState(mdl, feed, asm.DefaultInitialState(), 8.0, inp.ZoneAerobic, 2.0,
		stp, 1e-4, 1e-6, 20000)
	s := res.State

	// biomass above the (zero) influent values
	if s.XH <= feed.XH || s.XAUT <= feed.XAUT {
		tst.Errorf("XH=%g and XAUT=%g must exceed their influent values", s.XH, s.XAUT)
		return
	}

	// readily biodegradable substrate consumed below influent levels
	if s.SF >= feed.SF || s.SA >= feed.SA {
		tst.Errorf("SF=%g and SA=%g must drop below influent values (%g, %g)",
			s.SF, s.SA, feed.SF, feed.SA)
		return
	}

	// everything stays non-negative and finite
	for i, v := range s.Vector() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("component %s is invalid: %g", asm.CompNames[i], v)
			return
		}
	}
}

func Test_steady02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steady02. convergence failure is silent")

	mdl := model()
	feed, _ := inp.Fractionate(inp.GetDefaultInfluent())
	stp, _ := New("euler")

	maxIt := 5
	res := SteadyState(mdl, feed, asm.DefaultInitialState(), 8.0, inp.ZoneAerobic, 2.0,
		stp, 1e-4, 1e-12, maxIt)
	if res.Iterations != maxIt {
		tst.Errorf("iteration cap must flag non-convergence: %d != %d", res.Iterations, maxIt)
		return
	}
}

func Test_multizone01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multizone01. A2O train with recycle")

	mdl := model()
	feed, _ := inp.Fractionate(inp.GetDefaultInfluent())
	rc := inp.GetDefaultReactor()
	stp, _ := New("euler")

	zones, its := MultiZone(mdl, feed, rc, asm.DefaultInitialState(), stp, 1e-4, 1e-6, 3000, 2)
	if its <= 0 {
		tst.Errorf("iterations must be positive")
		return
	}

	// every configured zone appears in the output
	for _, z := range rc.Zones {
		if _, ok := zones[z.Type]; !ok {
			tst.Errorf("zone %q missing from results", z.Type)
			return
		}
	}

	// recirculated sludge keeps biomass alive in every zone
	for ztype, s := range zones {
		if s.Biomass() <= 0 {
			tst.Errorf("zone %q has no biomass", ztype)
			return
		}
	}

	// only the aerated zone holds dissolved oxygen
	if zones[inp.ZoneAerobic].SO <= zones[inp.ZoneAnaerobic].SO {
		tst.Errorf("aerobic SO=%g must exceed anaerobic SO=%g",
			zones[inp.ZoneAerobic].SO, zones[inp.ZoneAnaerobic].SO)
		return
	}
	if zones[inp.ZoneAnaerobic].SO > 0.5 {
		tst.Errorf("anaerobic SO=%g is too high", zones[inp.ZoneAnaerobic].SO)
		return
	}
}

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. full simulation driver")

	o := NewMain("data/a2o.sim", chk.Verbose)

	// shorten the run for testing
	o.Sim.Solver.MaxIt = 3000
	o.Sim.Solver.Sweeps = 2
	o.Sim.Solver.Duration = 2.0
	o.Sim.Solver.OutEvery = 2000

	res, err := o.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if len(res.Series.Times) < 2 {
		tst.Errorf("time series is empty")
		return
	}
	if len(res.Zones) != 3 {
		tst.Errorf("%d zones in results; must be 3", len(res.Zones))
		return
	}

	// trajectories are clamped non-negative everywhere
	for k := range res.Series.Zones {
		for _, s := range res.Series.States[k] {
			for i, v := range s.Vector() {
				if v < 0 {
					tst.Errorf("negative %s in zone %s trajectory", asm.CompNames[i], res.Series.Zones[k])
					return
				}
			}
		}
	}
}
