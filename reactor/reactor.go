// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reactor holds the irradiation-environment record consumed by
// the cluster-dynamics rate kernel: neutron flux, temperature, cascade
// branching fractions, and the dislocation-density evolution coefficient.
//
// C. Pokor / Journal of Nuclear Materials 326 (2004), Table 5.
package reactor

import "github.com/cpmech/gosl/chk"

// Reactor is a plain record describing the irradiation environment.
// The size-1 cascade branching fraction is implicit: 1 - IBi - ITri -
// IQuad (and symmetrically for vacancies); callers never set it directly.
type Reactor struct {

	// identity (not part of the physics)
	Name string
	ID   int64

	// neutron flux (dpa/s)
	Flux float64

	// temperature (Kelvin)
	TemperatureKelvin float64

	// recombination factor in the cascades
	Recombination float64

	// interstitial cascade branching fractions
	IBi   float64
	ITri  float64
	IQuad float64

	// vacancy cascade branching fractions
	VBi   float64
	VTri  float64
	VQuad float64

	// dislocation-density evolution coefficient (K in spec.md §4.1)
	DislocationDensityEvolution float64
}

// IMono returns the implicit size-1 interstitial cascade branching
// fraction: 1 - IBi - ITri - IQuad.
func (r *Reactor) IMono() float64 { return 1 - r.IBi - r.ITri - r.IQuad }

// VMono returns the implicit size-1 vacancy cascade branching fraction:
// 1 - VBi - VTri - VQuad.
func (r *Reactor) VMono() float64 { return 1 - r.VBi - r.VTri - r.VQuad }

// CelsiusToKelvin converts a Celsius temperature to Kelvin, matching
// original_source's CELCIUS_KELVIN_CONV macro.
func CelsiusToKelvin(celsius float64) float64 { return celsius + 273.15 }

// Clone returns an independent copy; used by the engine's sensitivity
// sweep, which mutates a copy of the caller's reactor between runs.
func (r *Reactor) Clone() *Reactor {
	cp := *r
	return &cp
}

// Validate checks the invariants from spec.md §3: every branching
// fraction in [0,1] and the per-species sum <= 1; flux and temperature
// strictly positive.
func (r *Reactor) Validate() error {
	if r.Flux <= 0 {
		return chk.Err("flux must be > 0, got %g", r.Flux)
	}
	if r.TemperatureKelvin <= 0 {
		return chk.Err("temperature must be > 0 Kelvin, got %g", r.TemperatureKelvin)
	}
	for _, f := range []float64{r.IBi, r.ITri, r.IQuad, r.VBi, r.VTri, r.VQuad} {
		if f < 0 || f > 1 {
			return chk.Err("cascade branching fraction out of [0,1]: %g", f)
		}
	}
	if r.IBi+r.ITri+r.IQuad > 1 {
		return chk.Err("interstitial cascade branching fractions sum to more than 1")
	}
	if r.VBi+r.VTri+r.VQuad > 1 {
		return chk.Err("vacancy cascade branching fractions sum to more than 1")
	}
	return nil
}
