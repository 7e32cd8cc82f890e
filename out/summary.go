// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/cstr"
	"github.com/verchemxyz/asm2d/inp"
)

// Summary aggregates every derived output of one plant simulation
type Summary struct {
	Effluent    *EffluentQuality
	Performance *Performance
	PAO         *PAOMetrics
	Sludge      *SludgeProduction
	Oxygen      *OxygenDemand
	Phosphorus  *PhosphorusBalance
}

// Compute derives all plant outputs from the solved zone train. The
// clarifier feed is the last zone of the train; PAO denitrification is
// read from the anoxic zone when one exists.
func Compute(sim *inp.Simulation, mdl *asm.Model, res *cstr.Results) *Summary {

	final := res.Zones[sim.Reactor.Zones[len(sim.Reactor.Zones)-1].Type]
	anoxic, ok := res.Zones[inp.ZoneAnoxic]
	if !ok {
		anoxic = final
	}

	eff := Effluent(final, sim.Stc, sim.Reactor.Clarifier)
	sld := Sludge(sim.Influent, eff, final, sim.Stc)
	return &Summary{
		Effluent:    eff,
		Performance: Assess(sim.Influent, eff),
		PAO:         PAO(mdl, final, anoxic),
		Sludge:      sld,
		Oxygen:      Oxygen(sim.Influent, eff, sld),
		Phosphorus:  PBalance(sim.Influent, eff, sld),
	}
}

// Print writes the summary tables
func (o *Summary) Print() {
	thick := "===================================================="
	thin := "----------------------------------------------------"
	e, p := o.Effluent, o.Performance
	io.Pf("\n%s\n", thick)
	io.Pf("%-14s%12s%12s\n", "constituent", "effluent", "removal")
	io.Pf("%s\n", thin)
	io.Pf("%-14s%12.2f%11.1f%%\n", "COD", e.COD, p.CODRemoval)
	io.Pf("%-14s%12.2f%11.1f%%\n", "BOD5", e.BOD5, p.BOD5Removal)
	io.Pf("%-14s%12.2f%11.1f%%\n", "TSS", e.TSS, p.TSSRemoval)
	io.Pf("%-14s%12.2f%11.1f%%\n", "TKN", e.TKN, p.TKNRemoval)
	io.Pf("%-14s%12.2f%11.1f%%\n", "NH4-N", e.NH4N, p.NH4NRemoval)
	io.Pf("%-14s%12.2f\n", "NO3-N", e.NO3N)
	io.Pf("%-14s%12.2f%11.1f%%\n", "TN", e.TN, p.TNRemoval)
	io.Pf("%-14s%12.2f%11.1f%%\n", "TP", e.TP, p.TPRemoval)
	io.Pf("%-14s%12.2f%11.1f%%\n", "PO4-P", e.PO4P, p.PO4PRemoval)
	io.Pf("%s\n", thin)
	io.Pf("sludge production  = %.1f kgTSS/d (yield %.3f, P %.3f gP/gTSS)\n",
		o.Sludge.Production, o.Sludge.ObservedYield, o.Sludge.PContent)
	io.Pf("oxygen demand      = %.1f kgO2/d (carbonaceous %.1f + nitrogenous %.1f)\n",
		o.Oxygen.Total, o.Oxygen.Carbonaceous, o.Oxygen.Nitrogenous)
	io.Pf("PAO                = %.1f%% of biomass, dPAO activity %.1f%%\n",
		o.PAO.BiomassFraction*100, o.PAO.DenitActivity*100)
	io.Pf("P balance closure  = %.1f%%\n", o.Phosphorus.Closure)
	io.Pf("%s\n", thick)
}
