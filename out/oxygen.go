// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/verchemxyz/asm2d/inp"
	"github.com/verchemxyz/asm2d/mstoich"
)

// vssCODratio converts wasted volatile solids to COD [gCOD/gVSS]
const vssCODratio = 1.42

// OxygenDemand holds the plant oxygen requirement [kgO2/d]
type OxygenDemand struct {
	Carbonaceous float64 // COD oxidation minus sludge and denitrification credits
	Nitrogenous  float64 // nitrification of the removed TKN
	Total        float64
}

// Oxygen estimates the oxygen demand from COD and nitrogen mass balances.
// The carbonaceous demand credits the COD leaving with the waste sludge and
// the electrons accepted from nitrate during denitrification.
func Oxygen(infl *inp.Influent, eff *EffluentQuality, sludge *SludgeProduction) *OxygenDemand {

	o := new(OxygenDemand)
	q := infl.FlowRate / 1000.0 // g/m³ times m³/d to kg/d

	nitrified := infl.TKN - eff.TKN
	if nitrified < 0 {
		nitrified = 0
	}
	o.Nitrogenous = mstoich.CODperNH4 * q * nitrified

	denitrified := nitrified - eff.NO3N
	if denitrified < 0 {
		denitrified = 0
	}
	o.Carbonaceous = q*(infl.COD-eff.COD) - vssCODratio*sludge.Production -
		mstoich.CODperNO3*q*denitrified
	if o.Carbonaceous < 0 {
		o.Carbonaceous = 0
	}
	o.Total = o.Carbonaceous + o.Nitrogenous
	return o
}
