// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"strings"
	"testing"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
)

func Test_Markdown_contains_headline_numbers(tst *testing.T) {
	chk.PrintTitle("run report markdown names the material, reactor, and final dislocation density")

	mat, err := material.Preset("SA304")
	if err != nil {
		tst.Fatal(err)
	}
	rxr, err := reactor.Preset("OSIRIS")
	if err != nil {
		tst.Fatal(err)
	}
	cfg, err := engine.DefaultConfig()
	if err != nil {
		tst.Fatal(err)
	}
	final := engine.Snapshot{
		Time:               1e8,
		Dpa:                8.64,
		Interstitials:      []float64{1.0, 0.5},
		Vacancies:          []float64{0.9, 0.4},
		DislocationDensity: 2.5e10,
	}

	md := Markdown(mat, rxr, cfg, final)
	if !strings.Contains(md, "SA304") {
		tst.Fatal("expected report to mention the material name")
	}
	if !strings.Contains(md, "OSIRIS") {
		tst.Fatal("expected report to mention the reactor name")
	}
	if !strings.Contains(md, "2.5e+10") {
		tst.Fatalf("expected report to mention the final dislocation density, got:\n%s", md)
	}
}

func Test_HTML_wraps_markdown(tst *testing.T) {
	chk.PrintTitle("HTML rendering produces non-empty output for a non-empty report")

	mat, err := material.Preset("SA304")
	if err != nil {
		tst.Fatal(err)
	}
	rxr, err := reactor.Preset("OSIRIS")
	if err != nil {
		tst.Fatal(err)
	}
	cfg, err := engine.DefaultConfig()
	if err != nil {
		tst.Fatal(err)
	}
	final := engine.Snapshot{Interstitials: []float64{0}, Vacancies: []float64{0}}

	html := HTML(mat, rxr, cfg, final)
	if len(html) == 0 {
		tst.Fatal("expected non-empty HTML output")
	}
}
