// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/verchemxyz/asm2d/asm"
)

// influent fractionation ratios
const (
	fracSI  = 0.05 // inert soluble fraction of total COD
	fracSF  = 0.15 // fermentable soluble fraction of total COD
	fracXI  = 0.13 // inert particulate fraction of total COD
	fracSND = 0.35 // soluble share of the organic nitrogen
	mwCaCO3 = 50.0 // g CaCO3 per mol HCO3 equivalent
)

// Fractionate splits a conventional influent record into the model state.
// COD splits into SI+SF+SA+XI+XS with SA taken as the measured VFA and XS
// as the remainder, so the COD total is conserved exactly; TKN splits into
// SNH plus the soluble/particulate organic nitrogen pair.
func Fractionate(infl *Influent) (s asm.State, err error) {
	if err = infl.Validate(); err != nil {
		return
	}

	// carbon
	s.SI = fracSI * infl.COD
	s.SF = fracSF * infl.COD
	s.SA = infl.VFA
	s.XI = fracXI * infl.COD
	s.XS = infl.COD - s.SI - s.SF - s.SA - s.XI
	if s.XS < 0 {
		err = chk.Err("fractionation: vfa (%g) leaves no slowly biodegradable COD; record is inconsistent", infl.VFA)
		return
	}

	// nitrogen
	orgN := infl.TKN - infl.NH4N
	s.SNH = infl.NH4N
	s.SND = fracSND * orgN
	s.XND = orgN - s.SND

	// phosphorus and alkalinity
	s.SPO4 = infl.PO4P
	s.SALK = infl.Alkalinity / mwCaCO3

	// raw influent carries no dissolved oxygen, nitrate, or active biomass
	return
}
