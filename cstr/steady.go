// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

import (
	"math"

	"github.com/verchemxyz/asm2d/asm"
)

// SteadyResults holds the outcome of a steady-state solve. Convergence
// failure is not an error: it is flagged only by Iterations == maxIt.
type SteadyResults struct {
	State      asm.State // final (clamped) state
	Iterations int       // iterations performed
}

// SteadyState advances the zone derivative with a fixed step until the
// max-norm change of the state vector between iterations falls below tol,
// or maxIt is reached. The state is clamped non-negative after every step.
func SteadyState(mdl *asm.Model, feed, ini asm.State, hrt float64, ztype string,
	doset float64, stp Stepper, dt, tol float64, maxIt int) (res SteadyResults) {

	f := func(x []float64) []float64 {
		return Derivs(mdl, asm.StateFromVector(x), feed, hrt, ztype, doset)
	}

	x := ini.Vector()
	for it := 1; it <= maxIt; it++ {
		xn := asm.StateFromVector(stp.Step(x, f, dt)).Vector()
		diff := 0.0
		for i := range xn {
			if d := math.Abs(xn[i] - x[i]); d > diff {
				diff = d
			}
		}
		x = xn
		if diff < tol {
			res.State = asm.StateFromVector(x)
			res.Iterations = it
			return
		}
	}
	res.State = asm.StateFromVector(x)
	res.Iterations = maxIt
	return
}
