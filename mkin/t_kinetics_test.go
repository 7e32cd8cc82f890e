// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mkin

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_switch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("switch01. Monod and inhibition terms")

	// half point: S = K
	for _, k := range []float64{0.01, 0.2, 4.0, 100.0} {
		chk.Scalar(tst, io.Sf("monod(K,K)      K=%g", k), 1e-15, Monod(k, k), 0.5)
		chk.Scalar(tst, io.Sf("inhibition(K,K) K=%g", k), 1e-15, Inhibition(k, k), 0.5)
	}

	// limits
	chk.Scalar(tst, "monod(0,K)", 1e-15, Monod(0, 0.5), 0)
	chk.Scalar(tst, "monod(S>>K,K)", 1e-3, Monod(1e6, 0.5), 1)
	chk.Scalar(tst, "inhibition(0,K)", 1e-15, Inhibition(0, 0.5), 1)
	chk.Scalar(tst, "inhibition(S>>K,K)", 1e-3, Inhibition(1e6, 0.5), 0)

	// complementary shapes
	for _, s := range []float64{0, 0.1, 1, 10, 1000} {
		chk.Scalar(tst, io.Sf("monod+inhibition S=%g", s), 1e-14, Monod(s, 2)+Inhibition(s, 2), 1)
	}

	// plot
	if chk.Verbose {
		S := utl.LinSpace(0, 10, 101)
		M := make([]float64, len(S))
		I := make([]float64, len(S))
		for i, s := range S {
			M[i] = Monod(s, 1)
			I[i] = Inhibition(s, 1)
		}
		plt.Reset()
		plt.Plot(S, M, "'b-', label='monod'")
		plt.Plot(S, I, "'r-', label='inhibition'")
		plt.Gll("$S$", "switch", "")
		plt.SaveD("/tmp/asm2d", "test_switch01.png")
	}
}

func Test_switch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("switch02. storage saturation term")

	kmax, kipp := 0.34, 0.02

	// empty storage: term near one
	chk.Scalar(tst, "sat(0)", 1e-14, SatInhibition(0, kmax, kipp), kmax/(kipp+kmax))

	// full storage: term is zero, never negative
	chk.Scalar(tst, "sat(kmax)", 1e-15, SatInhibition(kmax, kmax, kipp), 0)
	chk.Scalar(tst, "sat(2*kmax)", 1e-15, SatInhibition(2*kmax, kmax, kipp), 0)

	// monotonic decreasing
	prev := math.MaxFloat64
	for _, r := range utl.LinSpace(0, kmax, 11) {
		v := SatInhibition(r, kmax, kipp)
		if v > prev {
			tst.Errorf("saturation term must decrease with ratio: %g > %g", v, prev)
			return
		}
		prev = v
	}
}

func Test_switch03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("switch03. ratio Monod (division-safe)")

	// equals classic form when denominator is positive
	num, den, k := 30.0, 100.0, 0.1
	r := num / den
	chk.Scalar(tst, "ratio form", 1e-14, MonodRatio(num, den, k)/den, r/(k+r))

	// zero denominator gives zero, not NaN
	chk.Scalar(tst, "den=0", 1e-15, MonodRatio(30, 0, 0.1), 0)
	chk.Scalar(tst, "num=0", 1e-15, MonodRatio(0, 100, 0.1), 0)
}

func Test_zone01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zone01. zone classifiers")

	soT, snoT := 0.2, 0.3
	if !IsAerobic(2.0, soT) {
		tst.Errorf("SO=2 must classify as aerobic")
		return
	}
	if !IsAnoxic(0.05, 3.0, soT, snoT) {
		tst.Errorf("SO=0.05, SNO=3 must classify as anoxic")
		return
	}
	if !IsAnaerobic(0.05, 0.1, soT, snoT) {
		tst.Errorf("SO=0.05, SNO=0.1 must classify as anaerobic")
		return
	}
	chk.String(tst, ZoneKind(2.0, 0, soT, snoT), "aerobic")
	chk.String(tst, ZoneKind(0.05, 3.0, soT, snoT), "anoxic")
	chk.String(tst, ZoneKind(0.05, 0.1, soT, snoT), "anaerobic")
}

func Test_temp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("temp01. Arrhenius temperature correction")

	p := GetDefault()

	// identity at reference temperature (within 0.1%)
	q := p.CorrectTemperature(20.0)
	chk.Scalar(tst, "muh @20", 1e-3*p.MuH, q.MuH, p.MuH)
	chk.Scalar(tst, "kh @20", 1e-3*p.KH, q.KH, p.KH)
	chk.Scalar(tst, "muaut @20", 1e-3*p.MuAUT, q.MuAUT, p.MuAUT)

	// monotonic increasing in T
	prev := 0.0
	for _, T := range []float64{5, 10, 15, 20, 25, 30} {
		c := p.CorrectTemperature(T)
		if c.MuH <= prev {
			tst.Errorf("muh must increase with temperature")
			return
		}
		prev = c.MuH
	}

	// half-saturations untouched
	c := p.CorrectTemperature(10.0)
	chk.Scalar(tst, "kf unchanged", 1e-15, c.KF, p.KF)
	chk.Scalar(tst, "ko2h unchanged", 1e-15, c.KO2H, p.KO2H)
	chk.Scalar(tst, "etano3pao unchanged", 1e-15, c.EtaNO3PAO, p.EtaNO3PAO)

	// receiver not mutated
	chk.Scalar(tst, "receiver muh", 1e-15, p.MuH, 6.0)
}

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01. parameter initialisation")

	var p Params
	err := p.Init(fun.Prms{
		&fun.Prm{N: "muh", V: 4.5},
		&fun.Prm{N: "kmax", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}
	chk.Scalar(tst, "muh overridden", 1e-15, p.MuH, 4.5)
	chk.Scalar(tst, "kmax overridden", 1e-15, p.KMAX, 0.3)
	chk.Scalar(tst, "kh default kept", 1e-15, p.KH, 3.0)

	// unknown parameter name fails fast
	err = p.Init(fun.Prms{&fun.Prm{N: "nosuchparam", V: 1}})
	if err == nil {
		tst.Errorf("Init must fail with unknown parameter name")
		return
	}

	// out-of-range reduction factor fails fast
	err = p.Init(fun.Prms{&fun.Prm{N: "etano3pao", V: 1.2}})
	if err == nil {
		tst.Errorf("Init must fail with etano3pao outside (0,1)")
		return
	}
}
