// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"testing"

	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
)

func Test_New_defaults(tst *testing.T) {
	chk.PrintTitle("New with DefaultConfig")
	cfg, err := DefaultConfig()
	if err != nil {
		tst.Fatal(err)
	}
	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	if e.MaxClusterSize() != 1001 {
		tst.Fatalf("MaxClusterSize()=%d, want 1001", e.MaxClusterSize())
	}
	if e.Material().Name != "SA304" {
		tst.Fatalf("Material().Name=%q, want SA304", e.Material().Name)
	}
	if e.Reactor().Name != "OSIRIS" {
		tst.Fatalf("Reactor().Name=%q, want OSIRIS", e.Reactor().Name)
	}
}

func Test_New_rejects_small_cluster_size(tst *testing.T) {
	chk.PrintTitle("New rejects max_cluster_size < 5")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 4
	_, err := New(cfg)
	if err == nil {
		tst.Fatal("expected InvalidInput, got nil")
	}
	cderr, ok := err.(*Error)
	if !ok || cderr.Kind != InvalidInput {
		tst.Fatalf("expected InvalidInput, got %v", err)
	}
}

func Test_New_accepts_minimum_cluster_size(tst *testing.T) {
	chk.PrintTitle("New accepts max_cluster_size == 5 (boundary)")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 5
	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	if e.MaxClusterSize() != 5 {
		tst.Fatalf("MaxClusterSize()=%d, want 5", e.MaxClusterSize())
	}
}

func Test_New_rejects_bad_tolerances(tst *testing.T) {
	chk.PrintTitle("New rejects non-positive tolerances")
	cfg, _ := DefaultConfig()
	cfg.RelativeTol = 0
	if _, err := New(cfg); err == nil {
		tst.Fatal("expected InvalidInput for zero relative tolerance")
	}
}

func Test_New_rejects_wrong_length_init_vectors(tst *testing.T) {
	chk.PrintTitle("New rejects mis-sized initial concentration vectors")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 10
	cfg.InitInterstitials = make([]float64, 5)
	if _, err := New(cfg); err == nil {
		tst.Fatal("expected InvalidInput for mis-sized init_interstitials")
	}
}

func Test_Advance_rejects_nonpositive_dt(tst *testing.T) {
	chk.PrintTitle("Advance rejects dt <= 0")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 5
	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	if _, err := e.Advance(0); err == nil {
		tst.Fatal("expected InvalidInput for dt=0")
	}
	if _, err := e.Advance(-1); err == nil {
		tst.Fatal("expected InvalidInput for dt<0")
	}
}

func Test_Advance_time_exact(tst *testing.T) {
	chk.PrintTitle("Advance(dt) ends exactly at previous time + dt")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 5
	cfg.MaxNumSteps = 20000
	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	snap, err := e.Advance(1e-5)
	if err != nil {
		tst.Fatal(err)
	}
	if math.Abs(snap.Time-1e-5) > 1e-15 {
		tst.Fatalf("snap.Time=%g, want 1e-5", snap.Time)
	}
	if len(snap.Interstitials) != 5 || len(snap.Vacancies) != 5 {
		tst.Fatalf("snapshot vectors have wrong length: %d %d", len(snap.Interstitials), len(snap.Vacancies))
	}
}

func Test_Advance_zero_flux_stays_zero(tst *testing.T) {
	chk.PrintTitle("zero flux, zero initial state: advance(1s) stays zero")
	mat, _ := material.Preset("SA304")
	rxr, _ := reactor.Preset("OSIRIS")
	rxr.Flux = 0

	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 5
	cfg.Material = mat
	cfg.Reactor = rxr
	cfg.MaxNumSteps = 20000

	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	snap, err := e.Advance(1)
	if err != nil {
		tst.Fatal(err)
	}
	for n, c := range snap.Interstitials {
		if c != 0 {
			tst.Fatalf("interstitials[%d]=%g, want 0", n+1, c)
		}
	}
	for n, c := range snap.Vacancies {
		if c != 0 {
			tst.Fatalf("vacancies[%d]=%g, want 0", n+1, c)
		}
	}
	if math.Abs(snap.DislocationDensity-mat.DislocationDensity0) > 1e-6*mat.DislocationDensity0 {
		tst.Fatalf("dislocation density=%g, want approximately unchanged %g", snap.DislocationDensity, mat.DislocationDensity0)
	}
}

func Test_accessors_round_trip(tst *testing.T) {
	chk.PrintTitle("setter/getter round trip")
	cfg, _ := DefaultConfig()
	cfg.MaxClusterSize = 5
	e, err := New(cfg)
	if err != nil {
		tst.Fatal(err)
	}
	if err := e.SetTolerances(1e-8, 1e-2); err != nil {
		tst.Fatal(err)
	}
	if e.relativeTol != 1e-8 || e.absoluteTol != 1e-2 {
		tst.Fatalf("tolerances not applied: rel=%g abs=%g", e.relativeTol, e.absoluteTol)
	}
	other, _ := material.Preset("SA304")
	other.IMigration = 0.999
	e.SetMaterial(other)
	if e.Material().IMigration != 0.999 {
		tst.Fatalf("SetMaterial did not take effect")
	}
}
