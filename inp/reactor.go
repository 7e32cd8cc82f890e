// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// zone type tags
const (
	ZoneAnaerobic = "anaerobic"
	ZoneAnoxic    = "anoxic"
	ZoneAerobic   = "aerobic"
)

// Zone holds the configuration of one reactor zone
type Zone struct {
	Type string  `json:"type"` // "anaerobic", "anoxic" or "aerobic"
	HRT  float64 `json:"hrt"`  // hydraulic retention time [h] at influent flow
	DO   float64 `json:"do"`   // dissolved oxygen setpoint [g/m³]; aerobic zones only
}

// Reactor holds the configuration of the zone train and its recycles
type Reactor struct {
	Zones     []*Zone `json:"zones"`     // ordered zone train
	RInt      float64 `json:"rint"`      // internal (nitrate) recycle ratio
	RRAS      float64 `json:"rras"`      // return activated sludge ratio
	Clarifier float64 `json:"clarifier"` // clarifier solids capture efficiency
}

// Validate checks the reactor configuration; malformed trains fail fast
func (o *Reactor) Validate() (err error) {
	if len(o.Zones) == 0 {
		return chk.Err("reactor: at least one zone is required")
	}
	for i, z := range o.Zones {
		switch z.Type {
		case ZoneAnaerobic, ZoneAnoxic, ZoneAerobic:
		default:
			return chk.Err("reactor: zone %d type %q is incorrect; options are %q, %q and %q",
				i, z.Type, ZoneAnaerobic, ZoneAnoxic, ZoneAerobic)
		}
		if z.HRT <= 0 {
			return chk.Err("reactor: zone %d hrt must be positive; %g is incorrect", i, z.HRT)
		}
		if z.Type == ZoneAerobic && z.DO <= 0 {
			return chk.Err("reactor: aerobic zone %d requires a positive DO setpoint", i)
		}
	}
	if o.RInt < 0 || o.RRAS < 0 {
		return chk.Err("reactor: recycle ratios cannot be negative")
	}
	if o.Clarifier <= 0 || o.Clarifier >= 1 {
		return chk.Err("reactor: clarifier efficiency must be within (0,1); %g is incorrect", o.Clarifier)
	}
	return
}

// GetDefaultReactor returns the standard A2O (anaerobic-anoxic-oxic)
// configuration
func GetDefaultReactor() *Reactor {
	return &Reactor{
		Zones: []*Zone{
			{Type: ZoneAnaerobic, HRT: 1.5},
			{Type: ZoneAnoxic, HRT: 2.0},
			{Type: ZoneAerobic, HRT: 8.0, DO: 2.0},
		},
		RInt:      2.0,
		RRAS:      1.0,
		Clarifier: 0.995,
	}
}
