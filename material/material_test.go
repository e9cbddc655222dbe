// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_SA304_preset(tst *testing.T) {
	chk.PrintTitle("SA304 preset constants")
	m, err := Preset("SA304")
	if err != nil {
		tst.Fatal(err)
	}
	if m.IMigration != 0.45 || m.VMigration != 1.35 {
		tst.Fatalf("migration energies wrong: %g %g", m.IMigration, m.VMigration)
	}
	if m.DislocationDensity0 != 1.0/1e11 {
		tst.Fatalf("dislocation_density_0 wrong: %g", m.DislocationDensity0)
	}
}

func Test_derived_quantities_recomputed(tst *testing.T) {
	chk.PrintTitle("burgers vector / atomic volume recompute on lattice change")
	m := New("x", 3.6e-8)
	b1 := m.BurgersVector()
	v1 := m.AtomicVolume()

	m.SetLatticeParameter(4.0e-8)
	b2 := m.BurgersVector()
	v2 := m.AtomicVolume()

	if b1 == b2 || v1 == v2 {
		tst.Fatal("derived quantities did not change after SetLatticeParameter")
	}
	wantB := 4.0e-8 / math.Sqrt2
	if math.Abs(b2-wantB) > 1e-20 {
		tst.Fatalf("burgers vector=%g, want %g", b2, wantB)
	}
	wantV := math.Pow(4.0e-8, 3) / 4.0
	if math.Abs(v2-wantV) > 1e-28 {
		tst.Fatalf("atomic volume=%g, want %g", v2, wantV)
	}
}

func Test_clone_independent(tst *testing.T) {
	chk.PrintTitle("Clone returns an independent copy")
	m, _ := Preset("SA304")
	cp := m.Clone()
	cp.IMigration = 999
	if m.IMigration == 999 {
		tst.Fatal("mutating the clone affected the original")
	}
}

func Test_unknown_preset(tst *testing.T) {
	chk.PrintTitle("unknown material preset name errors")
	if _, err := Preset("nonexistent"); err == nil {
		tst.Fatal("expected an error for an unknown preset")
	}
}
