// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/verchemxyz/asm2d/asm"
)

// PAOMetrics characterises the phosphorus accumulating organisms
type PAOMetrics struct {
	BiomassFraction float64 // XPAO share of the active biomass [-]
	PHAContent      float64 // XPHA/XPAO internal storage ratio [gCOD/gCOD]
	PPContent       float64 // XPP/XPAO polyphosphate ratio [gP/gCOD]
	DenitActivity   float64 // anoxic share of PAO metabolic rates [-]
}

// PAO derives the PAO metrics. The storage ratios come from the aerobic
// zone state; the denitrifying activity is evaluated at the anoxic zone
// state, where dPAO metabolism actually runs.
func PAO(mdl *asm.Model, aerobic, anoxic asm.State) *PAOMetrics {
	m := new(PAOMetrics)
	if bio := aerobic.Biomass(); bio > 0 {
		m.BiomassFraction = aerobic.XPAO / bio
	}
	if aerobic.XPAO > 0 {
		m.PHAContent = aerobic.XPHA / aerobic.XPAO
		m.PPContent = aerobic.XPP / aerobic.XPAO
	}
	rho := mdl.Rates(anoxic)
	anx := rho[asm.PstoPPx] + rho[asm.PgroPAOx]
	tot := anx + rho[asm.PstoPP] + rho[asm.PgroPAO]
	if tot > 0 {
		m.DenitActivity = anx / tot
	}
	return m
}
