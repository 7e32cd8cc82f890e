// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/inp"
	"github.com/verchemxyz/asm2d/mstoich"
)

// SludgeProduction summarises the waste sludge stream
type SludgeProduction struct {
	Production    float64 // wasted solids [kgTSS/d]
	ObservedYield float64 // gTSS produced per gCOD removed [-]
	PContent      float64 // phosphorus fraction of the solids [gP/gTSS]
}

// Sludge estimates the waste sludge production. At steady state the solids
// captured by the clarifier and not returned must be wasted; with the return
// stream balancing the mixed liquor, the wastage equals one influent flow
// worth of reactor solids minus what escapes with the effluent.
func Sludge(infl *inp.Influent, eff *EffluentQuality, reactor asm.State,
	stc *mstoich.Params) *SludgeProduction {

	tss := reactorTSS(reactor)
	p := new(SludgeProduction)
	p.Production = infl.FlowRate * (tss - eff.TSS) / 1000.0
	if p.Production < 0 {
		p.Production = 0
	}
	codRemoved := infl.FlowRate * (infl.COD - eff.COD) / 1000.0 // kgCOD/d
	if codRemoved > 0 {
		p.ObservedYield = p.Production / codRemoved
	}
	if tss > 0 {
		bio := reactor.Biomass()
		p.PContent = (reactor.XPP + stc.IPBM*bio + stc.IPXP*reactor.XP) / tss
	}
	return p
}
