// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. vector round trip")

	s := DefaultInitialState()
	v := s.Vector()
	if len(v) != Ncomp {
		tst.Errorf("vector length %d is incorrect", len(v))
		return
	}
	chk.Vector(tst, "round trip", 1e-17, StateFromVector(v).Vector(), v)

	// ordering matches the index table
	chk.Scalar(tst, "v[ISI]", 1e-17, v[ISI], s.SI)
	chk.Scalar(tst, "v[ISALK]", 1e-17, v[ISALK], s.SALK)
	chk.Scalar(tst, "v[IXH]", 1e-17, v[IXH], s.XH)
	chk.Scalar(tst, "v[IXND]", 1e-17, v[IXND], s.XND)
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. negative entries are clamped")

	v := DefaultInitialState().Vector()
	v[ISF] = -3.0
	v[IXPP] = -0.001
	s := StateFromVector(v)
	chk.Scalar(tst, "SF clamped", 1e-17, s.SF, 0)
	chk.Scalar(tst, "XPP clamped", 1e-17, s.XPP, 0)
	chk.Scalar(tst, "SA untouched", 1e-17, s.SA, v[ISA])
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. COD aggregates")

	s := DefaultInitialState()
	chk.Scalar(tst, "soluble", 1e-14, s.SolubleCOD(), s.SI+s.SF+s.SA)
	chk.Scalar(tst, "total", 1e-14, s.TotalCOD(), s.SolubleCOD()+s.ParticulateCOD())
	chk.Scalar(tst, "biomass", 1e-14, s.Biomass(), s.XH+s.XAUT+s.XPAO)
}
