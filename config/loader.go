// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads an engine.Config from a YAML file. This is the
// "configuration loader (external)" collaborator spec.md §6 describes:
// the core neither parses arguments nor reads files, so this package sits
// strictly above engine and material/reactor, never the reverse.
//
// Grounded on inp.ReadMat (inp/mat.go), which decodes a JSON materials
// database into inp.MatDb and then initializes each model from its named
// parameter set; this loader follows the same "decode a plain document,
// then resolve named presets" shape, swapped from JSON to YAML since
// that's the format this corpus's other direct dependency
// (gopkg.in/yaml.v3) targets.
package config

import (
	"os"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML shape. MaterialPreset/ReactorPreset name a
// starting preset, and the Material/Reactor override blocks may be
// supplied with or without one; explicit fields override the named preset
// when both are given, so a caller can start from "SA304" and tweak one
// field.
type Document struct {
	SimulationTime float64 `yaml:"simulation_time"`
	TimeDelta      float64 `yaml:"time_delta"`
	SampleInterval float64 `yaml:"sample_interval"`
	MaxClusterSize int     `yaml:"max_cluster_size"`
	DataValidation *bool   `yaml:"data_validation_on"`

	RelativeTolerance     float64 `yaml:"relative_tolerance"`
	AbsoluteTolerance     float64 `yaml:"absolute_tolerance"`
	MaxNumIntegrationStep int     `yaml:"max_num_integration_steps"`
	MinIntegrationStep    float64 `yaml:"min_integration_step"`
	MaxIntegrationStep    float64 `yaml:"max_integration_step"`

	MaterialPreset string             `yaml:"material_preset"`
	ReactorPreset  string             `yaml:"reactor_preset"`
	Material       *MaterialOverrides `yaml:"material"`
	Reactor        *ReactorOverrides  `yaml:"reactor"`

	InitInterstitials []float64 `yaml:"init_interstitials"`
	InitVacancies     []float64 `yaml:"init_vacancies"`
}

// MaterialOverrides holds user-supplied fields layered on top of
// MaterialPreset; absent (nil) fields are left at the preset's value.
type MaterialOverrides struct {
	IMigration            *float64 `yaml:"i_migration"`
	VMigration            *float64 `yaml:"v_migration"`
	IDiffusion0           *float64 `yaml:"i_diffusion_0"`
	VDiffusion0           *float64 `yaml:"v_diffusion_0"`
	IFormation            *float64 `yaml:"i_formation"`
	VFormation            *float64 `yaml:"v_formation"`
	IBinding              *float64 `yaml:"i_binding"`
	VBinding              *float64 `yaml:"v_binding"`
	RecombinationRadius   *float64 `yaml:"recombination_radius"`
	LatticeParameter      *float64 `yaml:"lattice_param"`
	DislocationDensity0   *float64 `yaml:"dislocation_density_0"`
	GrainSize             *float64 `yaml:"grain_size"`
}

// ReactorOverrides holds user-supplied fields layered on top of
// ReactorPreset.
type ReactorOverrides struct {
	Flux          *float64 `yaml:"flux"`
	Temperature   *float64 `yaml:"temperature_kelvin"`
	Recombination *float64 `yaml:"recombination"`
	IBi           *float64 `yaml:"i_bi"`
	ITri          *float64 `yaml:"i_tri"`
	IQuad         *float64 `yaml:"i_quad"`
	VBi           *float64 `yaml:"v_bi"`
	VTri          *float64 `yaml:"v_tri"`
	VQuad         *float64 `yaml:"v_quad"`
}

// Load reads and decodes a YAML configuration file at path, resolving
// named material/reactor presets and layering any explicit overrides on
// top, and returns an engine.Config ready for engine.New.
func Load(path string) (engine.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, chk.Err("cannot read configuration file %q: %v", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return engine.Config{}, chk.Err("cannot parse configuration file %q: %v", path, err)
	}
	return doc.ToConfig()
}

// ToConfig resolves the document into an engine.Config, starting from
// engine.DefaultConfig and overwriting every field the document sets.
func (doc Document) ToConfig() (engine.Config, error) {
	cfg, err := engine.DefaultConfig()
	if err != nil {
		return engine.Config{}, err
	}

	if doc.SimulationTime > 0 {
		cfg.SimulationTime = doc.SimulationTime
	}
	if doc.TimeDelta > 0 {
		cfg.TimeDelta = doc.TimeDelta
	}
	if doc.SampleInterval > 0 {
		cfg.SampleInterval = doc.SampleInterval
	}
	if doc.MaxClusterSize > 0 {
		cfg.MaxClusterSize = doc.MaxClusterSize
	}
	if doc.DataValidation != nil {
		cfg.DataValidation = *doc.DataValidation
	}
	if doc.RelativeTolerance > 0 {
		cfg.RelativeTol = doc.RelativeTolerance
	}
	if doc.AbsoluteTolerance > 0 {
		cfg.AbsoluteTol = doc.AbsoluteTolerance
	}
	if doc.MaxNumIntegrationStep > 0 {
		cfg.MaxNumSteps = doc.MaxNumIntegrationStep
	}
	if doc.MinIntegrationStep > 0 {
		cfg.MinStep = doc.MinIntegrationStep
	}
	if doc.MaxIntegrationStep > 0 {
		cfg.MaxStep = doc.MaxIntegrationStep
	}

	if doc.MaterialPreset != "" {
		mat, err := material.Preset(doc.MaterialPreset)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.Material = mat
	}
	applyMaterialOverrides(cfg.Material, doc.Material)

	if doc.ReactorPreset != "" {
		rxr, err := reactor.Preset(doc.ReactorPreset)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.Reactor = rxr
	}
	applyReactorOverrides(cfg.Reactor, doc.Reactor)

	if doc.InitInterstitials != nil {
		cfg.InitInterstitials = doc.InitInterstitials
	}
	if doc.InitVacancies != nil {
		cfg.InitVacancies = doc.InitVacancies
	}

	return cfg, nil
}

func applyMaterialOverrides(m *material.Material, o *MaterialOverrides) {
	if o == nil {
		return
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&m.IMigration, o.IMigration)
	set(&m.VMigration, o.VMigration)
	set(&m.IDiffusion0, o.IDiffusion0)
	set(&m.VDiffusion0, o.VDiffusion0)
	set(&m.IFormation, o.IFormation)
	set(&m.VFormation, o.VFormation)
	set(&m.IBinding, o.IBinding)
	set(&m.VBinding, o.VBinding)
	set(&m.RecombinationRadius, o.RecombinationRadius)
	set(&m.DislocationDensity0, o.DislocationDensity0)
	set(&m.GrainSize, o.GrainSize)
	if o.LatticeParameter != nil {
		m.SetLatticeParameter(*o.LatticeParameter)
	}
}

func applyReactorOverrides(r *reactor.Reactor, o *ReactorOverrides) {
	if o == nil {
		return
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.Flux, o.Flux)
	set(&r.TemperatureKelvin, o.Temperature)
	set(&r.Recombination, o.Recombination)
	set(&r.IBi, o.IBi)
	set(&r.ITri, o.ITri)
	set(&r.IQuad, o.IQuad)
	set(&r.VBi, o.VBi)
	set(&r.VTri, o.VTri)
	set(&r.VQuad, o.VQuad)
}
