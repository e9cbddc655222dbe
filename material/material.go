// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material holds the physical-constants record consumed by the
// cluster-dynamics rate kernel: migration and formation energies,
// diffusion pre-exponentials, bias factors, and lattice geometry for a
// single crystalline metal.
package material

import "math"

// Material is a plain record of physical constants for a crystalline
// metal under irradiation. Burgers vector and atomic volume are derived
// from the lattice parameter and are recomputed whenever the lattice
// parameter changes; callers must go through SetLatticeParameter (or
// New) rather than writing the lattice parameter field directly.
type Material struct {

	// identity (not part of the physics)
	Name string // opaque material name, e.g. "SA304"
	ID   int64  // persistence id; 0 if not yet persisted

	// migration energies (eV)
	IMigration float64
	VMigration float64

	// pre-exponential diffusion constants (cm^2/s)
	IDiffusion0 float64
	VDiffusion0 float64

	// formation energies (eV)
	IFormation float64
	VFormation float64

	// size-2 binding energies (eV)
	IBinding float64
	VBinding float64

	// recombination radius between an interstitial and a vacancy (cm)
	RecombinationRadius float64

	// loop-bias factors
	ILoopBias float64
	VLoopBias float64

	// dislocation-bias factors and their size-dependence exponents
	IDislocationBias      float64
	IDislocationBiasParam float64
	VDislocationBias      float64
	VDislocationBiasParam float64

	// initial dislocation density (cm^-2)
	DislocationDensity0 float64

	// grain size (cm)
	GrainSize float64

	// lattice parameter (cm)
	latticeParam float64

	// derived; recomputed by SetLatticeParameter
	burgersVector float64
	atomicVolume  float64
}

// New returns a Material with the given lattice parameter and derived
// quantities already computed. All other fields are zero and must be set
// by the caller (or via a preset, see Preset).
func New(name string, latticeParam float64) *Material {
	m := &Material{Name: name}
	m.SetLatticeParameter(latticeParam)
	return m
}

// SetLatticeParameter sets the lattice parameter and recomputes the
// derived burgers vector (a/sqrt(2)) and atomic volume (a^3/4) for a
// face-centered lattice, as specified in spec.md §3.
func (m *Material) SetLatticeParameter(a float64) {
	m.latticeParam = a
	m.burgersVector = a / math.Sqrt2
	m.atomicVolume = a * a * a / 4.0
}

// LatticeParameter returns the current lattice parameter (cm).
func (m *Material) LatticeParameter() float64 { return m.latticeParam }

// BurgersVector returns the derived burgers vector magnitude (cm).
func (m *Material) BurgersVector() float64 { return m.burgersVector }

// AtomicVolume returns the derived atomic volume (cm^3).
func (m *Material) AtomicVolume() float64 { return m.atomicVolume }

// Clone returns an independent copy; the engine keeps this for sensitivity
// sweeps that mutate a copy of the caller's material between runs.
func (m *Material) Clone() *Material {
	cp := *m
	return &cp
}
