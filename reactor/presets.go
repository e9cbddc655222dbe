// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import "github.com/cpmech/gosl/chk"

// allocators holds all available reactor presets; name => constructor.
var allocators = map[string]func() *Reactor{}

func init() {
	allocators["OSIRIS"] = newOSIRIS
}

// newOSIRIS returns the OSIRIS materials-testing-reactor environment used
// as the spec's default reactor: C. Pokor et al. / J. Nucl. Mater. 326
// (2004), Table 5.
func newOSIRIS() *Reactor {
	return &Reactor{
		Name:                        "OSIRIS",
		Flux:                        2.9e-7,
		TemperatureKelvin:           CelsiusToKelvin(330.0),
		Recombination:               0.3,
		IBi:                         0.5,
		ITri:                        0.2,
		IQuad:                       0.06,
		VBi:                         0.06,
		VTri:                        0.03,
		VQuad:                       0.02,
		DislocationDensityEvolution: 300.0,
	}
}

// Preset returns a fresh, independent instance of the named reactor
// preset. Use Preset("OSIRIS") for the spec's default reactor.
func Preset(name string) (*Reactor, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("reactor preset %q is not available", name)
	}
	return allocator(), nil
}

// PresetNames returns the names of all registered reactor presets.
func PresetNames() []string {
	names := make([]string, 0, len(allocators))
	for name := range allocators {
		names = append(names, name)
	}
	return names
}
