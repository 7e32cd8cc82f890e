// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mkin

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Params holds the kinetic parameters of the biokinetic model.
// Rate constants are given at the 20°C reference temperature, in 1/d;
// half-saturation constants in g/m³ (gCOD, gN, gP or mol/m³ for alkalinity);
// storage ratios in gCOD/gCOD or gP/gCOD.
type Params struct {

	// hydrolysis
	KH        float64 // hydrolysis rate constant
	EtaNO3Hyd float64 // anoxic hydrolysis reduction factor
	EtaFe     float64 // anaerobic hydrolysis reduction factor
	KO2Hyd    float64 // O2 half-saturation for hydrolysis
	KNO3Hyd   float64 // NO3 half-saturation for hydrolysis
	KX        float64 // half-saturation for XS/XH ratio

	// heterotrophic organisms
	MuH     float64 // maximum growth rate
	Qfe     float64 // maximum fermentation rate
	EtaNO3H float64 // anoxic growth reduction factor
	BH      float64 // lysis rate
	KO2H    float64 // O2 half-saturation
	KF      float64 // SF half-saturation for growth
	Kfe     float64 // SF half-saturation for fermentation
	KAH     float64 // SA half-saturation
	KNO3H   float64 // NO3 half-saturation
	KNH4H   float64 // NH4 half-saturation (nutrient)
	KPH     float64 // PO4 half-saturation (nutrient)
	KALKH   float64 // alkalinity half-saturation

	// phosphorus accumulating organisms
	QPHA      float64 // maximum PHA storage rate
	QPP       float64 // maximum polyphosphate storage rate
	MuPAO     float64 // maximum growth rate
	EtaNO3PAO float64 // anoxic activity reduction factor
	BPAO      float64 // lysis rate of XPAO
	BPP       float64 // lysis rate of XPP
	BPHA      float64 // lysis rate of XPHA
	KO2PAO    float64 // O2 half-saturation
	KNO3PAO   float64 // NO3 half-saturation
	KAPAO     float64 // SA half-saturation
	KNH4PAO   float64 // NH4 half-saturation (nutrient)
	KPS       float64 // PO4 half-saturation for PP storage
	KPPAO     float64 // PO4 half-saturation (nutrient)
	KALKPAO   float64 // alkalinity half-saturation
	KPP       float64 // half-saturation for XPP/XPAO ratio
	KMAX      float64 // maximum XPP/XPAO ratio
	KIPP      float64 // inhibition coefficient for XPP storage
	KPHA      float64 // half-saturation for XPHA/XPAO ratio

	// autotrophic (nitrifying) organisms
	MuAUT   float64 // maximum growth rate
	BAUT    float64 // lysis rate
	KO2AUT  float64 // O2 half-saturation
	KNH4AUT float64 // NH4 half-saturation (substrate)
	KALKAUT float64 // alkalinity half-saturation
	KPAUT   float64 // PO4 half-saturation (nutrient)

	// organic nitrogen conversions
	Ka float64 // ammonification rate constant [m³/(gCOD·d)]

	// Arrhenius temperature coefficients
	ThetaHyd   float64 // hydrolysis
	ThetaH     float64 // heterotrophic growth/fermentation/ammonification
	ThetaPAO   float64 // PAO storage and growth
	ThetaAUT   float64 // autotrophic growth
	ThetaDecay float64 // all lysis rates
}

// Init initialises the parameters from a prms list; unknown names fail
func (o *Params) Init(prms fun.Prms) (err error) {
	*o = *GetDefault()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kh":
			o.KH = p.V
		case "etano3hyd":
			o.EtaNO3Hyd = p.V
		case "etafe":
			o.EtaFe = p.V
		case "ko2hyd":
			o.KO2Hyd = p.V
		case "kno3hyd":
			o.KNO3Hyd = p.V
		case "kx":
			o.KX = p.V
		case "muh":
			o.MuH = p.V
		case "qfe":
			o.Qfe = p.V
		case "etano3h":
			o.EtaNO3H = p.V
		case "bh":
			o.BH = p.V
		case "ko2h":
			o.KO2H = p.V
		case "kf":
			o.KF = p.V
		case "kfe":
			o.Kfe = p.V
		case "kah":
			o.KAH = p.V
		case "kno3h":
			o.KNO3H = p.V
		case "knh4h":
			o.KNH4H = p.V
		case "kph":
			o.KPH = p.V
		case "kalkh":
			o.KALKH = p.V
		case "qpha":
			o.QPHA = p.V
		case "qpp":
			o.QPP = p.V
		case "mupao":
			o.MuPAO = p.V
		case "etano3pao":
			o.EtaNO3PAO = p.V
		case "bpao":
			o.BPAO = p.V
		case "bpp":
			o.BPP = p.V
		case "bpha":
			o.BPHA = p.V
		case "ko2pao":
			o.KO2PAO = p.V
		case "kno3pao":
			o.KNO3PAO = p.V
		case "kapao":
			o.KAPAO = p.V
		case "knh4pao":
			o.KNH4PAO = p.V
		case "kps":
			o.KPS = p.V
		case "kppao":
			o.KPPAO = p.V
		case "kalkpao":
			o.KALKPAO = p.V
		case "kpp":
			o.KPP = p.V
		case "kmax":
			o.KMAX = p.V
		case "kipp":
			o.KIPP = p.V
		case "kpha":
			o.KPHA = p.V
		case "muaut":
			o.MuAUT = p.V
		case "baut":
			o.BAUT = p.V
		case "ko2aut":
			o.KO2AUT = p.V
		case "knh4aut":
			o.KNH4AUT = p.V
		case "kalkaut":
			o.KALKAUT = p.V
		case "kpaut":
			o.KPAUT = p.V
		case "ka":
			o.Ka = p.V
		case "thetahyd":
			o.ThetaHyd = p.V
		case "thetah":
			o.ThetaH = p.V
		case "thetapao":
			o.ThetaPAO = p.V
		case "thetaaut":
			o.ThetaAUT = p.V
		case "thetadecay":
			o.ThetaDecay = p.V
		default:
			return chk.Err("mkin: parameter named %q is incorrect", p.N)
		}
	}
	if o.EtaNO3PAO <= 0 || o.EtaNO3PAO >= 1 {
		return chk.Err("mkin: etano3pao must be within (0,1); %g is incorrect", o.EtaNO3PAO)
	}
	return
}

// GetDefault returns the standard parameter set at 20°C
func GetDefault() *Params {
	return &Params{
		KH: 3.0, EtaNO3Hyd: 0.6, EtaFe: 0.4, KO2Hyd: 0.2, KNO3Hyd: 0.5, KX: 0.1,
		MuH: 6.0, Qfe: 3.0, EtaNO3H: 0.8, BH: 0.4,
		KO2H: 0.2, KF: 4.0, Kfe: 4.0, KAH: 4.0, KNO3H: 0.5, KNH4H: 0.05, KPH: 0.01, KALKH: 0.1,
		QPHA: 3.0, QPP: 1.5, MuPAO: 1.0, EtaNO3PAO: 0.6, BPAO: 0.2, BPP: 0.2, BPHA: 0.2,
		KO2PAO: 0.2, KNO3PAO: 0.5, KAPAO: 4.0, KNH4PAO: 0.05, KPS: 0.2, KPPAO: 0.01,
		KALKPAO: 0.1, KPP: 0.01, KMAX: 0.34, KIPP: 0.02, KPHA: 0.01,
		MuAUT: 1.0, BAUT: 0.15, KO2AUT: 0.5, KNH4AUT: 1.0, KALKAUT: 0.5, KPAUT: 0.01,
		Ka:       0.08,
		ThetaHyd: 1.041, ThetaH: 1.072, ThetaPAO: 1.041, ThetaAUT: 1.103, ThetaDecay: 1.072,
	}
}

// GetPrms gets (an example of) parameters
func (o Params) GetPrms(example bool) fun.Prms {
	d := GetDefault()
	if !example {
		d = &o
	}
	return fun.Prms{
		&fun.Prm{N: "kh", V: d.KH},
		&fun.Prm{N: "muh", V: d.MuH},
		&fun.Prm{N: "qfe", V: d.Qfe},
		&fun.Prm{N: "bh", V: d.BH},
		&fun.Prm{N: "qpha", V: d.QPHA},
		&fun.Prm{N: "qpp", V: d.QPP},
		&fun.Prm{N: "mupao", V: d.MuPAO},
		&fun.Prm{N: "etano3pao", V: d.EtaNO3PAO},
		&fun.Prm{N: "muaut", V: d.MuAUT},
		&fun.Prm{N: "baut", V: d.BAUT},
		&fun.Prm{N: "ka", V: d.Ka},
	}
}

// CorrectTemperature returns a new parameter set with every rate constant
// adjusted to temperature T [°C] by Arrhenius correction rate·θ^(T-20).
// Half-saturation constants and reduction factors are not affected.
// The receiver is never modified.
func (o Params) CorrectTemperature(T float64) *Params {
	n := o // copy
	n.KH = arrhenius(o.KH, o.ThetaHyd, T)
	n.MuH = arrhenius(o.MuH, o.ThetaH, T)
	n.Qfe = arrhenius(o.Qfe, o.ThetaH, T)
	n.Ka = arrhenius(o.Ka, o.ThetaH, T)
	n.BH = arrhenius(o.BH, o.ThetaDecay, T)
	n.QPHA = arrhenius(o.QPHA, o.ThetaPAO, T)
	n.QPP = arrhenius(o.QPP, o.ThetaPAO, T)
	n.MuPAO = arrhenius(o.MuPAO, o.ThetaPAO, T)
	n.BPAO = arrhenius(o.BPAO, o.ThetaDecay, T)
	n.BPP = arrhenius(o.BPP, o.ThetaDecay, T)
	n.BPHA = arrhenius(o.BPHA, o.ThetaDecay, T)
	n.MuAUT = arrhenius(o.MuAUT, o.ThetaAUT, T)
	n.BAUT = arrhenius(o.BAUT, o.ThetaDecay, T)
	return &n
}
