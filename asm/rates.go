// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/verchemxyz/asm2d/mkin"
	"github.com/verchemxyz/asm2d/mstoich"
)

// process indices
const (
	PhydAer  = iota // aerobic hydrolysis of XS
	PhydAnx         // anoxic hydrolysis of XS
	PhydAna         // anaerobic hydrolysis of XS
	PgroHSF         // aerobic growth of XH on SF
	PgroHSA         // aerobic growth of XH on SA
	PdenHSF         // anoxic growth of XH on SF
	PdenHSA         // anoxic growth of XH on SA
	Pferm           // fermentation of SF to SA
	PlysH           // lysis of XH
	PstoPHA         // storage of XPHA by PAO
	PstoPP          // aerobic storage of XPP
	PstoPPx         // anoxic storage of XPP
	PgroPAO         // aerobic growth of XPAO
	PgroPAOx        // anoxic growth of XPAO
	PlysPAO         // lysis of XPAO
	PlysPP          // lysis of XPP
	PlysPHA         // lysis of XPHA
	Pnit            // aerobic growth of XAUT (nitrification)
	PlysAUT         // lysis of XAUT
	Pammon          // ammonification of SND
	PhydXND         // hydrolysis of particulate organic nitrogen
)

// Nproc is the number of biological processes
const Nproc = 21

// ProcNames maps process index to name
var ProcNames = []string{
	"aerobic hydrolysis",
	"anoxic hydrolysis",
	"anaerobic hydrolysis",
	"aerobic growth of XH on SF",
	"aerobic growth of XH on SA",
	"anoxic growth of XH on SF",
	"anoxic growth of XH on SA",
	"fermentation",
	"lysis of XH",
	"storage of XPHA",
	"aerobic storage of XPP",
	"anoxic storage of XPP",
	"aerobic growth of XPAO",
	"anoxic growth of XPAO",
	"lysis of XPAO",
	"lysis of XPP",
	"lysis of XPHA",
	"aerobic growth of XAUT",
	"lysis of XAUT",
	"ammonification of SND",
	"hydrolysis of XND",
}

// ProcRate pairs a process name with its rate, for diagnostics
type ProcRate struct {
	Process string  // process name
	Rate    float64 // rate [g/(m³·d)]
}

// ProcessRates computes the 21 process rates ρ from the current state.
// Every rate is non-negative and finite; all switching is continuous, so
// the rates never depend on a discrete zone classification.
func ProcessRates(s State, kin *mkin.Params, stc *mstoich.Params) (rho []float64) {

	rho = make([]float64, Nproc)

	// common switching terms
	soHyd := mkin.Monod(s.SO, kin.KO2Hyd)
	inO2Hyd := mkin.Inhibition(s.SO, kin.KO2Hyd)
	noHyd := mkin.Monod(s.SNO, kin.KNO3Hyd)
	inNOHyd := mkin.Inhibition(s.SNO, kin.KNO3Hyd)

	soH := mkin.Monod(s.SO, kin.KO2H)
	inO2H := mkin.Inhibition(s.SO, kin.KO2H)
	noH := mkin.Monod(s.SNO, kin.KNO3H)
	inNOH := mkin.Inhibition(s.SNO, kin.KNO3H)
	nutH := mkin.Monod(s.SNH, kin.KNH4H) * mkin.Monod(s.SPO4, kin.KPH) * mkin.Monod(s.SALK, kin.KALKH)

	soP := mkin.Monod(s.SO, kin.KO2PAO)
	inO2P := mkin.Inhibition(s.SO, kin.KO2PAO)
	noP := mkin.Monod(s.SNO, kin.KNO3PAO)
	alkP := mkin.Monod(s.SALK, kin.KALKPAO)

	// substrate preference between SF and SA (zero when both are zero)
	var prefSF, prefSA float64
	if tot := s.SF + s.SA; tot > 0 {
		prefSF = s.SF / tot
		prefSA = s.SA / tot
	}

	// hydrolysis: surface-limited on the XS/XH ratio
	hyd := kin.KH * mkin.MonodRatio(s.XS, s.XH, kin.KX)
	rho[PhydAer] = hyd * soHyd
	rho[PhydAnx] = hyd * kin.EtaNO3Hyd * inO2Hyd * noHyd
	rho[PhydAna] = hyd * kin.EtaFe * inO2Hyd * inNOHyd

	// heterotrophic growth and fermentation
	groF := kin.MuH * mkin.Monod(s.SF, kin.KF) * prefSF * nutH * s.XH
	groA := kin.MuH * mkin.Monod(s.SA, kin.KAH) * prefSA * nutH * s.XH
	rho[PgroHSF] = groF * soH
	rho[PgroHSA] = groA * soH
	rho[PdenHSF] = groF * kin.EtaNO3H * inO2H * noH
	rho[PdenHSA] = groA * kin.EtaNO3H * inO2H * noH
	rho[Pferm] = kin.Qfe * inO2H * inNOH * mkin.Monod(s.SF, kin.Kfe) *
		mkin.Monod(s.SALK, kin.KALKH) * s.XH
	rho[PlysH] = kin.BH * s.XH

	// PAO storage and growth; ratio terms are division-safe and vanish with
	// the biomass
	ppRatio := mkin.MonodRatio(s.XPP, s.XPAO, kin.KPP)
	phaRatio := mkin.MonodRatio(s.XPHA, s.XPAO, kin.KPHA)
	rho[PstoPHA] = kin.QPHA * mkin.Monod(s.SA, kin.KAPAO) * alkP * ppRatio

	stoPP := 0.0
	if s.XPAO > 0 {
		stoPP = kin.QPP * mkin.Monod(s.SPO4, kin.KPS) * alkP * phaRatio *
			mkin.SatInhibition(s.XPP/s.XPAO, kin.KMAX, kin.KIPP)
	}
	rho[PstoPP] = stoPP * soP
	rho[PstoPPx] = stoPP * kin.EtaNO3PAO * inO2P * noP

	groPAO := kin.MuPAO * mkin.Monod(s.SNH, kin.KNH4PAO) * mkin.Monod(s.SPO4, kin.KPPAO) *
		alkP * phaRatio
	rho[PgroPAO] = groPAO * soP
	rho[PgroPAOx] = groPAO * kin.EtaNO3PAO * inO2P * noP
	rho[PlysPAO] = kin.BPAO * s.XPAO
	rho[PlysPP] = kin.BPP * s.XPP
	rho[PlysPHA] = kin.BPHA * s.XPHA

	// autotrophic nitrification
	rho[Pnit] = kin.MuAUT * mkin.Monod(s.SO, kin.KO2AUT) * mkin.Monod(s.SNH, kin.KNH4AUT) *
		mkin.Monod(s.SALK, kin.KALKAUT) * mkin.Monod(s.SPO4, kin.KPAUT) * s.XAUT
	rho[PlysAUT] = kin.BAUT * s.XAUT

	// organic nitrogen conversions
	rho[Pammon] = kin.Ka * s.SND * s.XH
	if s.XS > 0 {
		rho[PhydXND] = (rho[PhydAer] + rho[PhydAnx] + rho[PhydAna]) * s.XND / s.XS
	}
	return
}

// NamedRates returns the rates tagged with their process names
func NamedRates(s State, kin *mkin.Params, stc *mstoich.Params) []ProcRate {
	rho := ProcessRates(s, kin, stc)
	res := make([]ProcRate, Nproc)
	for j := 0; j < Nproc; j++ {
		res[j] = ProcRate{Process: ProcNames[j], Rate: rho[j]}
	}
	return res
}
