// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "github.com/cpmech/gosl/chk"

// lattice parameters (cm), per original_source/include/model/material.hpp
const (
	latticeChromium  = 291.0e-10
	latticeNickel    = 352.4e-10
	latticeFCCNickel = 360.0e-10
	latticeCarbon    = 246.4e-10
)

// allocators holds all available material presets; name => constructor.
// Mirrors msolid's allocators map (msolid/onedlinelast.go init()).
var allocators = map[string]func() *Material{}

func init() {
	allocators["SA304"] = newSA304
}

// newSA304 (registered as the "SA304" preset) returns the austenitic stainless
// steel parameter set used as the spec's default material: C. Pokor et
// al. / J. Nucl. Mater. 326 (2004), face-centered lattice scaled to
// nickel.
func newSA304() *Material {
	m := New("SA304", latticeFCCNickel)
	m.IMigration = 0.45
	m.VMigration = 1.35
	m.IDiffusion0 = 1e-3
	m.VDiffusion0 = 0.6
	m.IFormation = 4.1
	m.VFormation = 1.7
	m.IBinding = 0.6
	m.VBinding = 0.5
	m.RecombinationRadius = 0.7e-7
	m.ILoopBias = 63.0
	m.IDislocationBias = 0.8
	m.IDislocationBiasParam = 1.1
	m.VLoopBias = 33.0
	m.VDislocationBias = 0.65
	m.VDislocationBiasParam = 1.0
	m.DislocationDensity0 = 1.0 / 1e11
	m.GrainSize = 4e-3
	return m
}

// Preset returns a fresh, independent instance of the named material
// preset. Use Preset("SA304") for the spec's default material.
func Preset(name string) (*Material, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material preset %q is not available", name)
	}
	return allocator(), nil
}

// PresetNames returns the names of all registered material presets.
func PresetNames() []string {
	names := make([]string, 0, len(allocators))
	for name := range allocators {
		names = append(names, name)
	}
	return names
}
