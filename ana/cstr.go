// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of simple reactor problems,
// used to verify the numerical solvers
package ana

import (
	"math"
)

// FirstOrderCSTR is a completely stirred tank with first-order decay:
//  dC/dt = (Cin-C)/τ - k·C
type FirstOrderCSTR struct {
	K   float64 // first-order decay rate [1/d]
	Tau float64 // hydraulic retention time [d]
	Cin float64 // feed concentration [g/m³]
}

// Steady returns the steady-state concentration Cin/(1+k·τ)
func (o *FirstOrderCSTR) Steady() float64 {
	return o.Cin / (1 + o.K*o.Tau)
}

// C returns the transient solution at time t starting from c0
func (o *FirstOrderCSTR) C(t, c0 float64) float64 {
	cs := o.Steady()
	return cs + (c0-cs)*math.Exp(-(o.K+1/o.Tau)*t)
}

// ConservativeTracer is a completely stirred tank without reaction; the
// washout curve is a pure exponential towards the feed concentration
type ConservativeTracer struct {
	Tau float64 // hydraulic retention time [d]
	Cin float64 // feed concentration [g/m³]
}

// C returns the tracer concentration at time t starting from c0
func (o *ConservativeTracer) C(t, c0 float64) float64 {
	return o.Cin + (c0-o.Cin)*math.Exp(-t/o.Tau)
}
