// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the derived plant outputs: effluent quality,
// removal performance, PAO activity, sludge production, oxygen demand
// and the phosphorus mass balance
package out

import (
	"github.com/verchemxyz/asm2d/asm"
	"github.com/verchemxyz/asm2d/mstoich"
)

// empirical BOD5 conversion ratios
const (
	bodOfSoluble     = 0.65 // gBOD5 per gCOD of readily biodegradable solubles
	bodOfParticulate = 0.40 // gBOD5 per gCOD of escaping biodegradable solids
)

// EffluentQuality holds the clarified effluent composition [g/m³]
type EffluentQuality struct {
	TSS  float64 // total suspended solids
	VSS  float64 // volatile suspended solids
	COD  float64 // total chemical oxygen demand
	BOD5 float64 // 5-day biochemical oxygen demand
	TKN  float64 // total Kjeldahl nitrogen
	NH4N float64 // ammonium nitrogen
	NO3N float64 // nitrate nitrogen
	TN   float64 // total nitrogen
	TP   float64 // total phosphorus
	PO4P float64 // orthophosphate phosphorus
}

// reactorTSS returns the mixed-liquor suspended solids [gTSS/m³]
func reactorTSS(s asm.State) float64 {
	return mstoich.TSSofXI*s.XI + mstoich.TSSofXS*s.XS + mstoich.TSSofBM*s.Biomass() +
		mstoich.TSSofXP*s.XP + mstoich.TSSofPHA*s.XPHA + mstoich.TSSofPP*s.XPP
}

// reactorVSS returns the volatile share of the mixed liquor (polyphosphate
// is inorganic)
func reactorVSS(s asm.State) float64 {
	return reactorTSS(s) - mstoich.TSSofPP*s.XPP
}

// Effluent derives the clarified effluent quality from the final reactor
// state: soluble species pass through; particulates escape with fraction
// (1 - clarifier capture efficiency)
func Effluent(s asm.State, stc *mstoich.Params, clarifier float64) *EffluentQuality {
	esc := 1 - clarifier
	bio := s.Biomass()
	return &EffluentQuality{
		TSS:  esc * reactorTSS(s),
		VSS:  esc * reactorVSS(s),
		COD:  s.SolubleCOD() + esc*s.ParticulateCOD(),
		BOD5: bodOfSoluble*(s.SF+s.SA) + bodOfParticulate*esc*(s.XS+s.XPHA),
		TKN:  s.SNH + s.SND + esc*(s.XND+stc.INBM*bio+stc.INXP*s.XP),
		NH4N: s.SNH,
		NO3N: s.SNO,
		TN:   s.SNH + s.SND + s.SNO + esc*(s.XND+stc.INBM*bio+stc.INXP*s.XP),
		TP:   s.SPO4 + esc*(s.XPP+stc.IPBM*bio+stc.IPXP*s.XP),
		PO4P: s.SPO4,
	}
}
