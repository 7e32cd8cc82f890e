// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm implements the activated sludge biokinetic model: the
// 18-component state vector, the 21 process rates, the stoichiometric
// coefficient matrix, and the biological derivative νᵀ·ρ
package asm

// component indices (fixed canonical order)
const (
	ISI   = iota // inert soluble organic matter
	ISF          // fermentable readily biodegradable substrate
	ISA          // fermentation products (acetate)
	ISO          // dissolved oxygen
	ISNO         // nitrate (plus nitrite) nitrogen
	ISNH         // ammonium nitrogen
	ISND         // soluble biodegradable organic nitrogen
	ISPO4        // inorganic soluble phosphorus (orthophosphate)
	ISALK        // alkalinity [mol HCO3/m³]
	IXI          // inert particulate organic matter
	IXS          // slowly biodegradable substrate
	IXH          // heterotrophic biomass
	IXAUT        // autotrophic (nitrifying) biomass
	IXPAO        // phosphorus accumulating biomass
	IXPHA        // stored poly-hydroxy-alkanoates
	IXPP         // stored polyphosphate
	IXP          // inert particulate products from biomass lysis
	IXND         // particulate biodegradable organic nitrogen
)

// Ncomp is the number of state components
const Ncomp = 18

// CompNames maps component index to name
var CompNames = []string{
	"SI", "SF", "SA", "SO", "SNO", "SNH", "SND", "SPO4", "SALK",
	"XI", "XS", "XH", "XAUT", "XPAO", "XPHA", "XPP", "XP", "XND",
}

// State holds the 18 component concentrations [g/m³, alkalinity in mol/m³].
// All components are non-negative at all times.
type State struct {
	SI   float64 // inert soluble organics
	SF   float64 // fermentable substrate
	SA   float64 // fermentation products
	SO   float64 // dissolved oxygen
	SNO  float64 // nitrate nitrogen
	SNH  float64 // ammonium nitrogen
	SND  float64 // soluble organic nitrogen
	SPO4 float64 // orthophosphate
	SALK float64 // alkalinity
	XI   float64 // inert particulates
	XS   float64 // slowly biodegradable substrate
	XH   float64 // heterotrophs
	XAUT float64 // autotrophs
	XPAO float64 // phosphorus accumulating organisms
	XPHA float64 // stored PHA
	XPP  float64 // stored polyphosphate
	XP   float64 // inert lysis products
	XND  float64 // particulate organic nitrogen
}

// Vector returns the state as an ordered array following the component index
func (o State) Vector() []float64 {
	return []float64{
		o.SI, o.SF, o.SA, o.SO, o.SNO, o.SNH, o.SND, o.SPO4, o.SALK,
		o.XI, o.XS, o.XH, o.XAUT, o.XPAO, o.XPHA, o.XPP, o.XP, o.XND,
	}
}

// StateFromVector builds a state from an ordered array, clamping negative
// entries (e.g. integration overshoot) to zero
func StateFromVector(v []float64) (s State) {
	c := func(i int) float64 {
		if v[i] < 0 {
			return 0
		}
		return v[i]
	}
	s.SI = c(ISI)
	s.SF = c(ISF)
	s.SA = c(ISA)
	s.SO = c(ISO)
	s.SNO = c(ISNO)
	s.SNH = c(ISNH)
	s.SND = c(ISND)
	s.SPO4 = c(ISPO4)
	s.SALK = c(ISALK)
	s.XI = c(IXI)
	s.XS = c(IXS)
	s.XH = c(IXH)
	s.XAUT = c(IXAUT)
	s.XPAO = c(IXPAO)
	s.XPHA = c(IXPHA)
	s.XPP = c(IXPP)
	s.XP = c(IXP)
	s.XND = c(IXND)
	return
}

// Biomass returns the total active biomass XH+XAUT+XPAO
func (o State) Biomass() float64 {
	return o.XH + o.XAUT + o.XPAO
}

// SolubleCOD returns SI+SF+SA
func (o State) SolubleCOD() float64 {
	return o.SI + o.SF + o.SA
}

// ParticulateCOD returns the COD of all particulate components
func (o State) ParticulateCOD() float64 {
	return o.XI + o.XS + o.XH + o.XAUT + o.XPAO + o.XPHA + o.XP
}

// TotalCOD returns soluble plus particulate COD
func (o State) TotalCOD() float64 {
	return o.SolubleCOD() + o.ParticulateCOD()
}

// DefaultInitialState returns a typical mixed-liquor composition used to
// seed the solvers
func DefaultInitialState() State {
	return State{
		SI: 30, SF: 5, SA: 2, SO: 2, SNO: 5, SNH: 15, SND: 1, SPO4: 4, SALK: 5,
		XI: 1000, XS: 100, XH: 1500, XAUT: 100, XPAO: 200, XPHA: 20, XPP: 60,
		XP: 400, XND: 5,
	}
}
