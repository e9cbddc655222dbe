// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
)

// Config is the driving input for an Engine: the caller either starts
// from DefaultConfig() and overwrites the fields it wants to change, or
// fills in every field itself, and then calls New (spec.md §4.3).
type Config struct {
	SimulationTime  float64 // s
	TimeDelta       float64 // s
	SampleInterval  float64 // s
	MaxClusterSize  int     // N
	DataValidation  bool
	RelativeTol     float64
	AbsoluteTol     float64
	MaxNumSteps     int
	MinStep         float64
	MaxStep         float64

	Material *material.Material
	Reactor  *reactor.Reactor

	// InitInterstitials and InitVacancies are length N+1 (index 0 unused);
	// nil means "all zero", the perfect-lattice default.
	InitInterstitials []float64
	InitVacancies     []float64
}

// DefaultConfig returns the spec's documented default configuration
// (spec.md §4.3): OSIRIS reactor, SA304 material, N=1001, zero initial
// concentrations.
func DefaultConfig() (Config, error) {
	mat, err := material.Preset("SA304")
	if err != nil {
		return Config{}, err
	}
	rxr, err := reactor.Preset("OSIRIS")
	if err != nil {
		return Config{}, err
	}
	return Config{
		SimulationTime: 1e8,
		TimeDelta:      1e6,
		SampleInterval: 1e6,
		MaxClusterSize: 1001,
		DataValidation: true,
		RelativeTol:    1e-6,
		AbsoluteTol:    10,
		MaxNumSteps:    5000,
		MinStep:        1e-30,
		MaxStep:        1e20,
		Material:       mat,
		Reactor:        rxr,
	}, nil
}

// validate checks the preconditions spec.md §6 names for the
// constructor. It checks InitInterstitials/InitVacancies length against
// MaxClusterSize last, once MaxClusterSize is known to be sane, so the
// error always names the more fundamental problem first.
func (c Config) validate() error {
	if c.RelativeTol <= 0 {
		return invalidInput(Snapshot{}, "relative_tolerance must be > 0, got %g", c.RelativeTol)
	}
	if c.AbsoluteTol <= 0 {
		return invalidInput(Snapshot{}, "absolute_tolerance must be > 0, got %g", c.AbsoluteTol)
	}
	if c.MaxClusterSize < 5 {
		return invalidInput(Snapshot{}, "max_cluster_size must be >= 5, got %d", c.MaxClusterSize)
	}
	if c.MinStep <= 0 || c.MaxStep <= 0 || c.MinStep > c.MaxStep {
		return invalidInput(Snapshot{}, "integration step bounds invalid: min=%g max=%g", c.MinStep, c.MaxStep)
	}
	if c.MaxNumSteps <= 0 {
		return invalidInput(Snapshot{}, "max_num_integration_steps must be > 0, got %d", c.MaxNumSteps)
	}
	if c.SimulationTime <= 0 || c.TimeDelta <= 0 || c.SampleInterval <= 0 {
		return invalidInput(Snapshot{}, "simulation_time, time_delta, and sample_interval must be > 0")
	}
	if c.Material == nil {
		return invalidInput(Snapshot{}, "material must be set")
	}
	if c.Reactor == nil {
		return invalidInput(Snapshot{}, "reactor must be set")
	}
	// Zero flux (no irradiation) is an accepted engine input; every other
	// Reactor.Validate invariant still applies.
	rxr := c.Reactor.Clone()
	if rxr.Flux == 0 {
		rxr.Flux = 1
	}
	if err := rxr.Validate(); err != nil {
		return invalidInput(Snapshot{}, "%v", err)
	}
	n := c.MaxClusterSize
	if c.InitInterstitials != nil && len(c.InitInterstitials) != n+1 {
		return invalidInput(Snapshot{}, "init_interstitials must have length %d, got %d", n+1, len(c.InitInterstitials))
	}
	if c.InitVacancies != nil && len(c.InitVacancies) != n+1 {
		return invalidInput(Snapshot{}, "init_vacancies must have length %d, got %d", n+1, len(c.InitVacancies))
	}
	return nil
}
