// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file:
// the conventional influent record, the reactor configuration, and the
// solver settings
package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Influent holds a conventional influent measurement record.
// Concentrations in g/m³ (= mg/L); flow rate in m³/d; alkalinity in
// g CaCO3/m³.
type Influent struct {
	FlowRate   float64 `json:"flowrate"`   // influent flow rate
	COD        float64 `json:"cod"`        // total chemical oxygen demand
	BOD5       float64 `json:"bod5"`       // 5-day biochemical oxygen demand
	TSS        float64 `json:"tss"`        // total suspended solids
	VSS        float64 `json:"vss"`        // volatile suspended solids
	TKN        float64 `json:"tkn"`        // total Kjeldahl nitrogen
	NH4N       float64 `json:"nh4n"`       // ammonium nitrogen
	TP         float64 `json:"tp"`         // total phosphorus
	PO4P       float64 `json:"po4p"`       // orthophosphate phosphorus
	VFA        float64 `json:"vfa"`        // volatile fatty acids (as COD)
	Alkalinity float64 `json:"alkalinity"` // alkalinity as CaCO3
}

// Validate checks the influent record; incomplete or inconsistent records
// fail fast
func (o *Influent) Validate() (err error) {
	switch {
	case o.FlowRate <= 0:
		return chk.Err("influent: flowrate is required and must be positive; %g is incorrect", o.FlowRate)
	case o.COD <= 0:
		return chk.Err("influent: cod is required and must be positive; %g is incorrect", o.COD)
	case o.TKN <= 0:
		return chk.Err("influent: tkn is required and must be positive; %g is incorrect", o.TKN)
	case o.TP <= 0:
		return chk.Err("influent: tp is required and must be positive; %g is incorrect", o.TP)
	case o.Alkalinity <= 0:
		return chk.Err("influent: alkalinity is required and must be positive; %g is incorrect", o.Alkalinity)
	}
	for _, f := range []float64{o.BOD5, o.TSS, o.VSS, o.NH4N, o.PO4P, o.VFA} {
		if f < 0 {
			return chk.Err("influent: negative concentrations are incorrect")
		}
	}
	if o.NH4N > o.TKN {
		return chk.Err("influent: nh4n (%g) cannot exceed tkn (%g)", o.NH4N, o.TKN)
	}
	if o.PO4P > o.TP {
		return chk.Err("influent: po4p (%g) cannot exceed tp (%g)", o.PO4P, o.TP)
	}
	if o.VFA > o.COD {
		return chk.Err("influent: vfa (%g) cannot exceed cod (%g)", o.VFA, o.COD)
	}
	if o.BOD5 > o.COD {
		return chk.Err("influent: bod5 (%g) cannot exceed cod (%g)", o.BOD5, o.COD)
	}
	return
}

// GetDefaultInfluent returns a typical municipal wastewater record
func GetDefaultInfluent() *Influent {
	return &Influent{
		FlowRate:   10000,
		COD:        400,
		BOD5:       200,
		TSS:        200,
		VSS:        150,
		TKN:        40,
		NH4N:       25,
		TP:         8,
		PO4P:       6,
		VFA:        30,
		Alkalinity: 250,
	}
}
