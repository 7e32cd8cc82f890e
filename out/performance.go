// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/verchemxyz/asm2d/inp"
)

// Performance holds percentage removals, each bounded to [0,100]
type Performance struct {
	CODRemoval  float64
	BOD5Removal float64
	TSSRemoval  float64
	TKNRemoval  float64
	NH4NRemoval float64
	TNRemoval   float64
	TPRemoval   float64
	PO4PRemoval float64
}

// Removal returns the percentage removal of a constituent, clamped to
// [0,100]; zero influent yields zero removal
func Removal(in, out float64) float64 {
	if in <= 0 {
		return 0
	}
	r := (in - out) / in * 100
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// Assess compares the effluent against the raw influent record
func Assess(infl *inp.Influent, eff *EffluentQuality) *Performance {
	return &Performance{
		CODRemoval:  Removal(infl.COD, eff.COD),
		BOD5Removal: Removal(infl.BOD5, eff.BOD5),
		TSSRemoval:  Removal(infl.TSS, eff.TSS),
		TKNRemoval:  Removal(infl.TKN, eff.TKN),
		NH4NRemoval: Removal(infl.NH4N, eff.NH4N),
		TNRemoval:   Removal(infl.TKN, eff.TN), // influent carries no nitrate
		TPRemoval:   Removal(infl.TP, eff.TP),
		PO4PRemoval: Removal(infl.PO4P, eff.PO4P),
	}
}
