// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

// Euler implements the explicit (forward) Euler stepper
type Euler struct{}

// add stepper to factory
func init() {
	allocators["euler"] = func() Stepper { return new(Euler) }
}

// Step advances x by one explicit Euler step
func (o *Euler) Step(x []float64, f Func, dt float64) []float64 {
	dxdt := f(x)
	xn := make([]float64, len(x))
	for i := range x {
		xn[i] = x[i] + dt*dxdt[i]
	}
	return xn
}
