// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders a human-readable summary of a completed run —
// the "run report (external)" collaborator spec.md §6 lists alongside
// export and persistence. It depends only on package engine, material,
// and reactor.
//
// Grounded on jndunlap-gohypo's ui/server.go, which renders stored
// markdown text to HTML via markdown.ToHTML([]byte(text), nil, nil);
// this package builds the markdown text itself from a run's
// configuration and final snapshot, then offers the same ToHTML call
// for callers that want rendered HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/gomarkdown/markdown"
)

// Markdown renders a run summary: the material and reactor used, the
// configuration knobs that shaped the integration, and the final
// snapshot's headline numbers (dpa, dislocation density, and the size-1
// interstitial and vacancy concentrations).
func Markdown(mat *material.Material, rxr *reactor.Reactor, cfg engine.Config, final engine.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run report: %s in %s\n\n", mat.Name, rxr.Name)

	fmt.Fprintf(&b, "## Configuration\n\n")
	fmt.Fprintf(&b, "- Simulation time: %g s\n", cfg.SimulationTime)
	fmt.Fprintf(&b, "- Time step: %g s\n", cfg.TimeDelta)
	fmt.Fprintf(&b, "- Max cluster size (N): %d\n", cfg.MaxClusterSize)
	fmt.Fprintf(&b, "- Data validation: %v\n\n", cfg.DataValidation)

	fmt.Fprintf(&b, "## Material: %s\n\n", mat.Name)
	fmt.Fprintf(&b, "- Interstitial migration energy: %g eV\n", mat.IMigration)
	fmt.Fprintf(&b, "- Vacancy migration energy: %g eV\n", mat.VMigration)
	fmt.Fprintf(&b, "- Lattice parameter: %g cm\n\n", mat.LatticeParameter())

	fmt.Fprintf(&b, "## Reactor: %s\n\n", rxr.Name)
	fmt.Fprintf(&b, "- Flux: %g dpa/s\n", rxr.Flux)
	fmt.Fprintf(&b, "- Temperature: %g K\n\n", rxr.TemperatureKelvin)

	fmt.Fprintf(&b, "## Final state (t = %g s, dose = %g dpa)\n\n", final.Time, final.Dpa)
	fmt.Fprintf(&b, "- Dislocation density: %g cm^-2\n", final.DislocationDensity)
	if n := len(final.Interstitials); n > 0 {
		fmt.Fprintf(&b, "- Ci(1): %g cm^-3\n", final.Interstitials[0])
		fmt.Fprintf(&b, "- Cv(1): %g cm^-3\n", final.Vacancies[0])
	}

	return b.String()
}

// HTML renders the run report markdown to HTML, for callers that need a
// ready-to-serve document rather than raw markdown text.
func HTML(mat *material.Material, rxr *reactor.Reactor, cfg engine.Config, final engine.Snapshot) []byte {
	text := Markdown(mat, rxr, cfg, final)
	return markdown.ToHTML([]byte(text), nil, nil)
}
