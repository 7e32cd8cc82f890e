// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
	"github.com/verchemxyz/asm2d/mstoich"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_effluent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("effluent01. clarified effluent quality")

	stc := mstoich.GetDefault()
	s := asm.State{
		SI: 30, SF: 2, SA: 0.5, SO: 2, SNO: 8, SNH: 1, SND: 0.8, SPO4: 1.5, SALK: 3,
		XI: 1200, XS: 50, XH: 2000, XAUT: 120, XPAO: 300, XPHA: 10, XPP: 80, XP: 500, XND: 3,
	}
	clarifier := 0.995
	eff := Effluent(s, stc, clarifier)

	// solubles pass through unchanged
	chk.Scalar(tst, "NH4N", 1e-15, eff.NH4N, s.SNH)
	chk.Scalar(tst, "NO3N", 1e-15, eff.NO3N, s.SNO)
	chk.Scalar(tst, "PO4P", 1e-15, eff.PO4P, s.SPO4)

	// particulates escape with 1-clarifier
	esc := 1 - clarifier
	tss := mstoich.TSSofXI*s.XI + mstoich.TSSofXS*s.XS + mstoich.TSSofBM*s.Biomass() +
		mstoich.TSSofXP*s.XP + mstoich.TSSofPHA*s.XPHA + mstoich.TSSofPP*s.XPP
	chk.Scalar(tst, "TSS", 1e-12, eff.TSS, esc*tss)
	chk.Scalar(tst, "VSS", 1e-12, eff.VSS, esc*(tss-mstoich.TSSofPP*s.XPP))
	chk.Scalar(tst, "COD", 1e-12, eff.COD, s.SolubleCOD()+esc*s.ParticulateCOD())

	// nitrogen bookkeeping
	chk.Scalar(tst, "TN", 1e-12, eff.TN, eff.TKN+eff.NO3N)
	if eff.TKN <= s.SNH+s.SND {
		tst.Errorf("TKN=%g must include escaping organic nitrogen", eff.TKN)
		return
	}
	if eff.TP <= s.SPO4 {
		tst.Errorf("TP=%g must include escaping particulate phosphorus", eff.TP)
		return
	}
}

func Test_perf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf01. removal percentage bounds")

	chk.Scalar(tst, "half removed", 1e-15, Removal(100, 50), 50)
	chk.Scalar(tst, "all removed", 1e-15, Removal(100, 0), 100)
	chk.Scalar(tst, "generation clamps to zero", 1e-15, Removal(100, 150), 0)
	chk.Scalar(tst, "negative effluent clamps to 100", 1e-15, Removal(100, -5), 100)
	chk.Scalar(tst, "zero influent", 1e-15, Removal(0, 10), 0)
}

func Test_perf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("perf02. assessment against the influent record")

	infl := inp.GetDefaultInfluent()
	eff := &EffluentQuality{
		TSS: 8, VSS: 6, COD: 40, BOD5: 5, TKN: 3, NH4N: 1, NO3N: 8, TN: 11, TP: 1, PO4P: 0.7,
	}
	p := Assess(infl, eff)
	for name, r := range map[string]float64{
		"COD": p.CODRemoval, "BOD5": p.BOD5Removal, "TSS": p.TSSRemoval,
		"TKN": p.TKNRemoval, "NH4N": p.NH4NRemoval, "TN": p.TNRemoval,
		"TP": p.TPRemoval, "PO4P": p.PO4PRemoval,
	} {
		if r < 0 || r > 100 {
			tst.Errorf("%s removal %g is out of [0,100]", name, r)
			return
		}
	}
	chk.Scalar(tst, "COD removal", 1e-12, p.CODRemoval, (400.0-40.0)/400.0*100)

	// nitrate counts against total nitrogen but not against TKN
	if p.TNRemoval >= p.TKNRemoval {
		tst.Errorf("TN removal %g must lag TKN removal %g when nitrate remains",
			p.TNRemoval, p.TKNRemoval)
		return
	}
}
