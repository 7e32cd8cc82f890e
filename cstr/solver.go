// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cstr implements the reactor transport layer: completely stirred
// tank mass balances around the biokinetic model, fixed-step integration,
// the steady-state solver, and the multi-zone plant simulation
package cstr

import (
	"github.com/cpmech/gosl/chk"
)

// Func computes the time derivative of a raw state vector
type Func func(x []float64) []float64

// Stepper advances a state vector by one fixed step
type Stepper interface {
	Step(x []float64, f Func, dt float64) []float64
}

// New returns a stepper; e.g. "euler" or "rk4"
func New(name string) (Stepper, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("stepper %q is not available in cstr database", name)
	}
	return allocator(), nil
}

// allocators holds all available steppers
var allocators = map[string]func() Stepper{}
