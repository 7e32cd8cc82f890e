// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/verchemxyz/asm2d/mstoich"
)

// Matrix builds the Nproc×Ncomp stoichiometric coefficient matrix ν.
// Row j holds the consumption (negative) and production (positive)
// coefficients of process j across all components. The alkalinity column
// is derived from a charge balance over NH4, NO3, PO4 and acetate, so the
// matrix is charge-consistent by construction.
func Matrix(stc *mstoich.Params) (nu [][]float64) {

	nu = la.MatAlloc(Nproc, Ncomp)

	// hydrolysis: XS becomes fermentable substrate
	for _, j := range []int{PhydAer, PhydAnx, PhydAna} {
		nu[j][IXS] = -1
		nu[j][ISF] = +1
	}

	// heterotrophic growth; oxygen and nitrate columns close the COD balance
	oxH := -(1 - stc.YH) / stc.YH
	noH := -(1 - stc.YH) / (mstoich.CODperNO3 * stc.YH)
	for _, j := range []int{PgroHSF, PgroHSA, PdenHSF, PdenHSA} {
		nu[j][IXH] = +1
		nu[j][ISNH] = -stc.INBM
		nu[j][ISPO4] = -stc.IPBM
	}
	nu[PgroHSF][ISF] = -1 / stc.YH
	nu[PgroHSA][ISA] = -1 / stc.YH
	nu[PdenHSF][ISF] = -1 / stc.YH
	nu[PdenHSA][ISA] = -1 / stc.YH
	nu[PgroHSF][ISO] = oxH
	nu[PgroHSA][ISO] = oxH
	nu[PdenHSF][ISNO] = noH
	nu[PdenHSA][ISNO] = noH

	// fermentation: SF converted to acetate
	nu[Pferm][ISF] = -1
	nu[Pferm][ISA] = +1

	// biomass lysis: substrate plus inert products; organic N and excess P
	// are released to XND and SPO4
	lysis := func(j, ibm int) {
		nu[j][ibm] = -1
		nu[j][IXS] = 1 - stc.FP
		nu[j][IXP] = stc.FP
		nu[j][IXND] = stc.INBM - stc.FP*stc.INXP
		nu[j][ISPO4] = stc.IPBM - stc.FP*stc.IPXP
	}
	lysis(PlysH, IXH)
	lysis(PlysPAO, IXPAO)
	lysis(PlysAUT, IXAUT)

	// PHA storage: acetate taken up, polyphosphate hydrolysed, P released
	nu[PstoPHA][ISA] = -1
	nu[PstoPHA][IXPHA] = +1
	nu[PstoPHA][IXPP] = -stc.YPO4
	nu[PstoPHA][ISPO4] = +stc.YPO4

	// PP storage: orthophosphate taken up at the expense of stored PHA
	for _, j := range []int{PstoPP, PstoPPx} {
		nu[j][ISPO4] = -1
		nu[j][IXPP] = +1
		nu[j][IXPHA] = -stc.YPHA
	}
	nu[PstoPP][ISO] = -stc.YPHA
	nu[PstoPPx][ISNO] = -stc.YPHA / mstoich.CODperNO3

	// PAO growth on stored PHA
	oxP := -(1 - stc.YPAO) / stc.YPAO
	noP := -(1 - stc.YPAO) / (mstoich.CODperNO3 * stc.YPAO)
	for _, j := range []int{PgroPAO, PgroPAOx} {
		nu[j][IXPAO] = +1
		nu[j][IXPHA] = -1 / stc.YPAO
		nu[j][ISNH] = -stc.INBM
		nu[j][ISPO4] = -stc.IPBM
	}
	nu[PgroPAO][ISO] = oxP
	nu[PgroPAOx][ISNO] = noP

	// storage pool lysis
	nu[PlysPP][IXPP] = -1
	nu[PlysPP][ISPO4] = +1
	nu[PlysPHA][IXPHA] = -1
	nu[PlysPHA][ISA] = +1

	// nitrification
	nu[Pnit][IXAUT] = +1
	nu[Pnit][ISO] = -(mstoich.CODperNH4 - stc.YA) / stc.YA
	nu[Pnit][ISNO] = +1 / stc.YA
	nu[Pnit][ISNH] = -1/stc.YA - stc.INBM
	nu[Pnit][ISPO4] = -stc.IPBM

	// organic nitrogen conversions
	nu[Pammon][ISND] = -1
	nu[Pammon][ISNH] = +1
	nu[PhydXND][IXND] = -1
	nu[PhydXND][ISND] = +1

	// alkalinity from charge continuity
	for j := 0; j < Nproc; j++ {
		nu[j][ISALK] = mstoich.ChargeNH4*nu[j][ISNH] + mstoich.ChargeNO3*nu[j][ISNO] +
			mstoich.ChargePO4*nu[j][ISPO4] + mstoich.ChargeSA*nu[j][ISA]
	}
	return
}

// Coefficient returns ν[j][i] with bounds validation
func Coefficient(nu [][]float64, j, i int) (float64, error) {
	if j < 0 || j >= Nproc {
		return 0, chk.Err("process index %d is out of range [0,%d)", j, Nproc)
	}
	if i < 0 || i >= Ncomp {
		return 0, chk.Err("component index %d is out of range [0,%d)", i, Ncomp)
	}
	return nu[j][i], nil
}
