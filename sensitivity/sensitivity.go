// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sensitivity sweeps one named material or reactor parameter
// across N independent engines and summarizes the resulting spread —
// the "sensitivity-analysis mode" spec.md §6 lists as a CLI collaborator
// contract, supplemented from original_source/include/utils/
// sensitivity_variable.hpp (SensitivityVariable, sa_num_simulations,
// sa_var_delta).
//
// Each engine in the sweep is fully independent (spec.md §5: "multiple
// independent engines may execute concurrently on different OS
// threads"), so the runs execute concurrently via golang.org/x/sync's
// errgroup rather than sequentially.
package sensitivity

import (
	"context"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/gosl/chk"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Variable names a single float64 field on the engine's material or
// reactor, by name, to be swept.
type Variable string

const (
	IMigration  Variable = "i_migration"
	VMigration  Variable = "v_migration"
	Flux        Variable = "flux"
	Temperature Variable = "temperature_kelvin"
)

// Run is one point in the sweep: the parameter value used and the
// dislocation density observed at the end of the advance.
type Run struct {
	Value              float64
	DislocationDensity float64
	FinalSnapshot      engine.Snapshot
}

// Result summarizes a sweep: every individual run plus descriptive
// statistics over the observed dislocation densities.
type Result struct {
	Runs   []Run
	Mean   float64
	StdDev float64
}

// apply returns a copy of cfg with the named variable set to value; Sweep
// passes baseline+k*delta for sweep point k.
func apply(cfg engine.Config, v Variable, value float64) engine.Config {
	mat := cfg.Material.Clone()
	rxr := cfg.Reactor.Clone()
	switch v {
	case IMigration:
		mat.IMigration = value
	case VMigration:
		mat.VMigration = value
	case Flux:
		rxr.Flux = value
	case Temperature:
		rxr.TemperatureKelvin = value
	}
	cfg.Material = mat
	cfg.Reactor = rxr
	return cfg
}

// baseline reads the current value of the named variable from cfg.
func baseline(cfg engine.Config, v Variable) float64 {
	switch v {
	case IMigration:
		return cfg.Material.IMigration
	case VMigration:
		return cfg.Material.VMigration
	case Flux:
		return cfg.Reactor.Flux
	case Temperature:
		return cfg.Reactor.TemperatureKelvin
	default:
		return 0
	}
}

// Sweep constructs numRuns independent engines from cfg, with variable
// set to baseline+k*delta for k=0..numRuns-1, advances each by dt
// concurrently, and summarizes the resulting dislocation densities.
func Sweep(cfg engine.Config, v Variable, delta float64, numRuns int, dt float64) (*Result, error) {
	if numRuns <= 0 {
		return nil, chk.Err("sensitivity sweep requires numRuns > 0, got %d", numRuns)
	}
	base := baseline(cfg, v)
	runs := make([]Run, numRuns)

	g, _ := errgroup.WithContext(context.Background())
	for k := 0; k < numRuns; k++ {
		k := k
		g.Go(func() error {
			value := base + float64(k)*delta
			runCfg := apply(cfg, v, value)
			e, err := engine.New(runCfg)
			if err != nil {
				return err
			}
			snap, err := e.Advance(dt)
			if err != nil {
				return err
			}
			runs[k] = Run{Value: value, DislocationDensity: snap.DislocationDensity, FinalSnapshot: snap}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	densities := make([]float64, numRuns)
	for i, r := range runs {
		densities[i] = r.DislocationDensity
	}
	data := stats.LoadRawData(densities)
	mean, err := data.Mean()
	if err != nil {
		return nil, chk.Err("cannot summarize sweep: %v", err)
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return nil, chk.Err("cannot summarize sweep: %v", err)
	}

	return &Result{Runs: runs, Mean: mean, StdDev: stddev}, nil
}
