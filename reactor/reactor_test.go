// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_OSIRIS_preset(tst *testing.T) {
	chk.PrintTitle("OSIRIS preset constants")
	r, err := Preset("OSIRIS")
	if err != nil {
		tst.Fatal(err)
	}
	if r.Flux != 2.9e-7 {
		tst.Fatalf("flux=%g, want 2.9e-7", r.Flux)
	}
	wantT := 603.15
	if math.Abs(r.TemperatureKelvin-wantT) > 1e-9 {
		tst.Fatalf("temperature=%g, want %g", r.TemperatureKelvin, wantT)
	}
}

func Test_mono_fraction_implicit(tst *testing.T) {
	chk.PrintTitle("size-1 cascade fraction is implicit")
	r, _ := Preset("OSIRIS")
	wantI := 1 - 0.5 - 0.2 - 0.06
	if math.Abs(r.IMono()-wantI) > 1e-12 {
		tst.Fatalf("IMono()=%g, want %g", r.IMono(), wantI)
	}
}

func Test_validate_rejects_bad_fractions(tst *testing.T) {
	chk.PrintTitle("Validate rejects fractions summing above 1")
	r, _ := Preset("OSIRIS")
	r.IBi, r.ITri, r.IQuad = 0.6, 0.3, 0.3
	if err := r.Validate(); err == nil {
		tst.Fatal("expected a validation error")
	}
}

func Test_validate_rejects_nonpositive_flux(tst *testing.T) {
	chk.PrintTitle("Validate rejects flux <= 0")
	r, _ := Preset("OSIRIS")
	r.Flux = 0
	if err := r.Validate(); err == nil {
		tst.Fatal("expected a validation error")
	}
}
