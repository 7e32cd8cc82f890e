// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cstr

// RK4 implements the classical fourth-order Runge-Kutta stepper
type RK4 struct{}

// add stepper to factory
func init() {
	allocators["rk4"] = func() Stepper { return new(RK4) }
}

// Step advances x by one RK4 step
func (o *RK4) Step(x []float64, f Func, dt float64) []float64 {
	n := len(x)
	aux := make([]float64, n)

	k1 := f(x)
	for i := 0; i < n; i++ {
		aux[i] = x[i] + 0.5*dt*k1[i]
	}
	k2 := f(aux)
	for i := 0; i < n; i++ {
		aux[i] = x[i] + 0.5*dt*k2[i]
	}
	k3 := f(aux)
	for i := 0; i < n; i++ {
		aux[i] = x[i] + dt*k3[i]
	}
	k4 := f(aux)

	xn := make([]float64, n)
	for i := 0; i < n; i++ {
		xn[i] = x[i] + dt*(k1[i]+2*k2[i]+2*k3[i]+k4[i])/6.0
	}
	return xn
}
