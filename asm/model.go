// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/gosl/la"

	"github.com/verchemxyz/asm2d/mkin"
	"github.com/verchemxyz/asm2d/mstoich"
)

// Model bundles the kinetic and stoichiometric parameter sets with the
// assembled coefficient matrix. The matrix depends only on the
// stoichiometric parameters and is built once.
type Model struct {
	Kin *mkin.Params    // kinetic parameters (temperature corrected)
	Stc *mstoich.Params // stoichiometric parameters
	Nu  [][]float64     // Nproc×Ncomp coefficient matrix
}

// NewModel returns a model with the coefficient matrix assembled
func NewModel(kin *mkin.Params, stc *mstoich.Params) *Model {
	return &Model{Kin: kin, Stc: stc, Nu: Matrix(stc)}
}

// Rates computes the process rate vector ρ at the given state
func (o *Model) Rates(s State) []float64 {
	return ProcessRates(s, o.Kin, o.Stc)
}

// Derivs computes the biological derivative dC/dt = νᵀ·ρ for all components
func (o *Model) Derivs(s State) []float64 {
	rho := o.Rates(s)
	dcdt := make([]float64, Ncomp)
	la.MatTrVecMul(dcdt, 1, o.Nu, rho) // dcdt := tr(ν) * ρ
	return dcdt
}

// Derivatives computes νᵀ·ρ without a pre-assembled model
func Derivatives(s State, kin *mkin.Params, stc *mstoich.Params) []float64 {
	return NewModel(kin, stc).Derivs(s)
}
