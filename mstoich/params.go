// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mstoich implements the stoichiometric parameter set (yields and
// elemental mass ratios) of the activated sludge biokinetic model
package mstoich

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// electron acceptor equivalents and charge factors
const (
	CODperNO3 = 2.86  // gCOD electron equivalents per gN denitrified to N2
	CODperNH4 = 4.57  // gO2 per gN nitrified from NH4 to NO3
	ChargeNH4 = 1.0 / 14.0
	ChargeNO3 = -1.0 / 14.0
	ChargePO4 = -1.5 / 31.0
	ChargeSA  = -1.0 / 64.0 // acetate, gCOD basis
)

// typical suspended-solids contents [gTSS/gCOD and gTSS/gP]
const (
	TSSofXI  = 0.75
	TSSofXS  = 0.75
	TSSofBM  = 0.90 // XH, XAUT, XPAO
	TSSofXP  = 0.75
	TSSofPHA = 0.60
	TSSofPP  = 3.23
)

// Params holds the stoichiometric parameters: yield coefficients and
// elemental (N, P) mass ratios used to assemble the coefficient matrix
type Params struct {

	// yields
	YH   float64 // heterotrophic yield [gCOD/gCOD]
	YPAO float64 // PAO yield [gCOD/gCOD]
	YPO4 float64 // P release per PHA stored [gP/gCOD]
	YPHA float64 // PHA requirement per PP stored [gCOD/gP]
	YA   float64 // autotrophic yield [gCOD/gN]

	// mass ratios
	FP   float64 // fraction of biomass COD becoming inert products on lysis
	INBM float64 // nitrogen content of biomass [gN/gCOD]
	INXP float64 // nitrogen content of inert products [gN/gCOD]
	IPBM float64 // phosphorus content of biomass [gP/gCOD]
	IPXP float64 // phosphorus content of inert products [gP/gCOD]
}

// Init initialises the parameters from a prms list; unknown names fail
func (o *Params) Init(prms fun.Prms) (err error) {
	*o = *GetDefault()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "yh":
			o.YH = p.V
		case "ypao":
			o.YPAO = p.V
		case "ypo4":
			o.YPO4 = p.V
		case "ypha":
			o.YPHA = p.V
		case "ya":
			o.YA = p.V
		case "fp":
			o.FP = p.V
		case "inbm":
			o.INBM = p.V
		case "inxp":
			o.INXP = p.V
		case "ipbm":
			o.IPBM = p.V
		case "ipxp":
			o.IPXP = p.V
		default:
			return chk.Err("mstoich: parameter named %q is incorrect", p.N)
		}
	}
	if o.YH <= 0 || o.YH >= 1 {
		return chk.Err("mstoich: yh must be within (0,1); %g is incorrect", o.YH)
	}
	if o.YPAO <= 0 || o.YPAO >= 1 {
		return chk.Err("mstoich: ypao must be within (0,1); %g is incorrect", o.YPAO)
	}
	if o.YA <= 0 {
		return chk.Err("mstoich: ya must be positive; %g is incorrect", o.YA)
	}
	return
}

// GetDefault returns the standard parameter set
func GetDefault() *Params {
	return &Params{
		YH:   0.625,
		YPAO: 0.625,
		YPO4: 0.40,
		YPHA: 0.20,
		YA:   0.24,
		FP:   0.10,
		INBM: 0.07,
		INXP: 0.02,
		IPBM: 0.02,
		IPXP: 0.01,
	}
}

// GetPrms gets (an example of) parameters
func (o Params) GetPrms(example bool) fun.Prms {
	d := GetDefault()
	if !example {
		d = &o
	}
	return fun.Prms{
		&fun.Prm{N: "yh", V: d.YH},
		&fun.Prm{N: "ypao", V: d.YPAO},
		&fun.Prm{N: "ypo4", V: d.YPO4},
		&fun.Prm{N: "ypha", V: d.YPHA},
		&fun.Prm{N: "ya", V: d.YA},
		&fun.Prm{N: "fp", V: d.FP},
		&fun.Prm{N: "inbm", V: d.INBM},
		&fun.Prm{N: "inxp", V: d.INXP},
		&fun.Prm{N: "ipbm", V: d.IPBM},
		&fun.Prm{N: "ipxp", V: d.IPXP},
	}
}
