// Copyright 2026 The Verchem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mkin implements kinetic switching functions and the kinetic
// parameter set of the activated sludge biokinetic model
package mkin

import "math"

// Monod returns the saturation term S/(S+K)
//  Note: returns zero when S is zero, regardless of K
func Monod(s, k float64) float64 {
	if s <= 0 {
		return 0
	}
	return s / (s + k)
}

// Inhibition returns the inhibition term K/(S+K); complementary to Monod
func Inhibition(s, k float64) float64 {
	if s < 0 {
		s = 0
	}
	return k / (s + k)
}

// SatInhibition returns the storage-saturation term
//  (kmax-ratio) / (kipp + (kmax-ratio))
// clamped to zero once ratio reaches kmax (storage full)
func SatInhibition(ratio, kmax, kipp float64) float64 {
	d := kmax - ratio
	if d <= 0 {
		return 0
	}
	return d / (kipp + d)
}

// MonodRatio returns the Monod term on the ratio num/den, in the
// division-safe form num·den/(k·den+num); zero when den is zero
func MonodRatio(num, den, k float64) float64 {
	if den <= 0 || num <= 0 {
		return 0
	}
	return num * den / (k*den + num)
}

// zone classifiers (diagnostics only; the rate engine is continuous) //////////

// IsAerobic tells whether dissolved oxygen indicates an aerobic environment
func IsAerobic(so, soThresh float64) bool {
	return so > soThresh
}

// IsAnoxic tells whether an environment is anoxic: oxygen depleted but
// nitrate available
func IsAnoxic(so, sno, soThresh, snoThresh float64) bool {
	return so <= soThresh && sno > snoThresh
}

// IsAnaerobic tells whether both oxygen and nitrate are depleted
func IsAnaerobic(so, sno, soThresh, snoThresh float64) bool {
	return so <= soThresh && sno <= snoThresh
}

// ZoneKind classifies an environment for diagnostics; e.g. "anaerobic"
func ZoneKind(so, sno, soThresh, snoThresh float64) string {
	switch {
	case IsAerobic(so, soThresh):
		return "aerobic"
	case IsAnoxic(so, sno, soThresh, snoThresh):
		return "anoxic"
	}
	return "anaerobic"
}

// arrhenius returns rate·θ^(T-20)
func arrhenius(rate, theta, T float64) float64 {
	return rate * math.Pow(theta, T-20.0)
}
