// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/verchemxyz/asm2d/inp"
)

// PhosphorusBalance tracks where the influent phosphorus ends up [kgP/d]
type PhosphorusBalance struct {
	InfluentLoad float64
	EffluentLoad float64
	SludgeLoad   float64
	Closure      float64 // (effluent+sludge)/influent in percent, not clamped
}

// PBalance computes the phosphorus mass balance. The closure can exceed
// 100% while the reactor inventory is still draining towards steady state.
func PBalance(infl *inp.Influent, eff *EffluentQuality, sludge *SludgeProduction) *PhosphorusBalance {
	b := new(PhosphorusBalance)
	q := infl.FlowRate / 1000.0
	b.InfluentLoad = q * infl.TP
	b.EffluentLoad = q * eff.TP
	b.SludgeLoad = sludge.Production * sludge.PContent
	if b.InfluentLoad > 0 {
		b.Closure = (b.EffluentLoad + b.SludgeLoad) / b.InfluentLoad * 100
	}
	return b
}
