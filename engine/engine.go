// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine owns the cluster-dynamics state vector and drives it
// forward in time with gosl/ode's Radau5 stiff integrator (an implicit
// one-step Runge-Kutta method, not a multistep BDF method), calling back
// into package kernel for the right-hand side. This is the
// integrator-driver component of spec.md §4.2.
//
// Grounded on ana/colpresfluid.go for the gosl/ode.ODE.Init/Solve call
// shape and the Distr=false single-engine safety flag, and on
// mdl/solid/driver.go's Driver.Run for the "advance, validate, snapshot"
// loop shape.
package engine

import (
	"math"

	"github.com/cpmech/clusterdyn/kernel"
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// Engine owns the state vector, the integrator context, and the current
// material/reactor, and advances simulated time via Advance. An Engine is
// not safe for concurrent use by multiple goroutines; independent Engines
// share no mutable state and may run concurrently on different threads
// (spec.md §5).
type Engine struct {
	n int // max cluster size (N)

	mat *material.Material
	rxr *reactor.Reactor

	dataValidation bool
	relativeTol    float64
	absoluteTol    float64
	maxNumSteps    int
	minStep        float64
	maxStep        float64

	state []float64 // length stateLen(n)
	time  float64

	sol       ode.ODE
	lastValid Snapshot
}

// New allocates the state vector, writes the initial concentrations and
// dislocation density from cfg, and configures the integrator. It fails
// with InvalidInput if any tolerance is <= 0, if max_cluster_size < 5, or
// if the initial concentration arrays are the wrong length (spec.md §6).
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		n:              cfg.MaxClusterSize,
		mat:            cfg.Material.Clone(),
		rxr:            cfg.Reactor.Clone(),
		dataValidation: cfg.DataValidation,
		relativeTol:    cfg.RelativeTol,
		absoluteTol:    cfg.AbsoluteTol,
		maxNumSteps:    cfg.MaxNumSteps,
		minStep:        cfg.MinStep,
		maxStep:        cfg.MaxStep,
	}
	e.state = make([]float64, stateLen(e.n))

	ib, vb := iBase(e.n), vBase(e.n)
	for i := 1; i <= e.n; i++ {
		if cfg.InitInterstitials != nil {
			e.state[ib+i] = cfg.InitInterstitials[i]
		}
		if cfg.InitVacancies != nil {
			e.state[vb+i] = cfg.InitVacancies[i]
		}
	}
	e.state[rhoIdx(e.n)] = e.mat.DislocationDensity0

	e.initSolver()
	e.lastValid = e.snapshot()
	return e, nil
}

// initSolver (re)configures the gosl/ode Radau5 driver. Called once from
// New and again whenever the tolerances change. Tolerances are set via
// SetTol, matching mdl/retention/model.go's odesol.SetTol(atol, rtol)
// call; min/max step and max-num-steps stay engine-side config knobs
// (validated by Config.validate) rather than fields on ode.ODE, since no
// pack usage assigns such fields directly. Advance uses min/max step only
// to clamp the initial trial step; max-num-steps is stored but not passed
// to the solver, so it does not cap the interior steps of an Advance call.
func (e *Engine) initSolver() {
	const silent = true
	e.sol.Init("Radau5", stateLen(e.n), e.rhs, nil, nil, nil, silent)
	e.sol.Distr = false // never distribute; one engine is single-threaded (spec.md §5)
	e.sol.SetTol(e.absoluteTol, e.relativeTol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rhs is the integrator callback (spec.md §4.2): it aliases the three
// state regions from the integrator's buffer by slicing (no copy),
// refreshes the step-cache, zeroes the derivative buffer, and writes
// every derivative. Padding-index derivatives remain zero. No allocation
// happens here beyond the one-time StepCache value, which is a
// stack-local struct (spec.md §9), not a long-lived field.
func (e *Engine) rhs(f []float64, dx, x float64, y []float64, args ...interface{}) error {
	n := e.n
	ib, vb, ri := iBase(n), vBase(n), rhoIdx(n)

	ci := y[ib : ib+n+2]
	cv := y[vb : vb+n+2]
	rho := y[ri]

	for i := range f {
		f[i] = 0
	}

	p := kernel.Params{Mat: e.mat, Rxr: e.rxr}
	cache := kernel.NewStepCache(p, n, ci, cv, rho)

	dci := f[ib : ib+n+2]
	dcv := f[vb : vb+n+2]
	f[ri] = kernel.Derivatives(p, n, ci, cv, rho, cache, dci, dcv)
	return nil
}

// Advance integrates from the engine's current simulated time to
// current+dt and returns a snapshot at that endpoint (spec.md §4.2). dt
// must be > 0. Multiple consecutive Advance calls produce the same
// trajectory as one call with the summed dt, modulo integrator-internal
// step reuse.
func (e *Engine) Advance(dt float64) (Snapshot, error) {
	if dt <= 0 {
		return Snapshot{}, invalidInput(e.lastValid, "dt must be > 0, got %g", dt)
	}

	x0 := e.time
	xf := e.time + dt

	// initial trial step passed directly to Solve, matching
	// ana/colpresfluid.go's CalcNum (Solve(ξ, 0, 1, 1, false, Δz)) and
	// mdl/retention/model.go's Update (Solve(y, 0, 1, 1, false)), both of
	// which pass the step as a call argument rather than a solver field.
	iniStep := clamp(dt, e.minStep, e.maxStep)
	err := e.sol.Solve(e.state, x0, xf, iniStep, false)
	if err != nil {
		return Snapshot{}, integratorFailure(e.lastValid, "stiff integration failed: %v", err)
	}
	e.time = xf

	if e.dataValidation {
		if badN, msg, ok := e.scanInvariantViolation(); !ok {
			return Snapshot{}, validationFailure(e.lastValid, badN, "%s", msg)
		}
	}

	snap := e.snapshot()
	e.lastValid = snap
	return snap, nil
}

// scanInvariantViolation checks every concentration is >= 0, finite, and
// the dislocation density is >= 0 and finite (spec.md §3). It returns the
// offending cluster size (0 for the dislocation density) and a message.
func (e *Engine) scanInvariantViolation() (clusterSize int, message string, ok bool) {
	n := e.n
	ib, vb, ri := iBase(e.n), vBase(e.n), rhoIdx(e.n)

	check := func(v float64, size int, label string) (int, string, bool) {
		if math.IsNaN(v) {
			return size, label + " is NaN", false
		}
		if math.IsInf(v, 0) {
			return size, label + " is infinite", false
		}
		if v < 0 {
			return size, label + " is negative", false
		}
		return 0, "", true
	}

	for i := 1; i <= n; i++ {
		if size, msg, ok := check(e.state[ib+i], i, "interstitial concentration"); !ok {
			return size, msg, false
		}
		if size, msg, ok := check(e.state[vb+i], i, "vacancy concentration"); !ok {
			return size, msg, false
		}
	}
	if size, msg, ok := check(e.state[ri], 0, "dislocation density"); !ok {
		return size, msg, false
	}
	return 0, "", true
}

// snapshot copies the current internal state into a caller-owned,
// dense-vector Snapshot (spec.md §3).
func (e *Engine) snapshot() Snapshot {
	n := e.n
	ib, vb, ri := iBase(e.n), vBase(e.n), rhoIdx(e.n)

	s := Snapshot{
		Time:               e.time,
		Dpa:                e.time * e.rxr.Flux,
		Interstitials:      make([]float64, n),
		Vacancies:          make([]float64, n),
		DislocationDensity: e.state[ri],
	}
	for i := 1; i <= n; i++ {
		s.Interstitials[i-1] = e.state[ib+i]
		s.Vacancies[i-1] = e.state[vb+i]
	}
	return s
}

// Material returns the engine's currently configured material.
func (e *Engine) Material() *material.Material { return e.mat }

// Reactor returns the engine's currently configured reactor.
func (e *Engine) Reactor() *reactor.Reactor { return e.rxr }

// SetMaterial replaces the material used by subsequent Advance calls. It
// does not mutate the state vector; changing material mid-trajectory is
// permitted and changes the forward dynamics from that point on (used by
// sensitivity-analysis callers, spec.md §5).
func (e *Engine) SetMaterial(m *material.Material) {
	if m == nil {
		chk.Panic("clusterdyn/engine: SetMaterial called with nil material")
	}
	e.mat = m.Clone()
}

// SetReactor replaces the reactor used by subsequent Advance calls.
func (e *Engine) SetReactor(r *reactor.Reactor) {
	if r == nil {
		chk.Panic("clusterdyn/engine: SetReactor called with nil reactor")
	}
	e.rxr = r.Clone()
}

// SetTolerances replaces the scalar relative/absolute tolerances used by
// subsequent Advance calls.
func (e *Engine) SetTolerances(relative, absolute float64) error {
	if relative <= 0 || absolute <= 0 {
		return invalidInput(e.lastValid, "tolerances must be > 0, got rel=%g abs=%g", relative, absolute)
	}
	e.relativeTol, e.absoluteTol = relative, absolute
	e.initSolver()
	return nil
}

// SetStepBounds replaces the minimum/maximum initial-step clamp used to
// derive the trial step passed into Solve on subsequent Advance calls.
// Values below 1e-30 are accepted (spec.md §4.1: the system naturally
// starts from near-zero concentrations).
func (e *Engine) SetStepBounds(min, max float64) error {
	if min <= 0 || max <= 0 || min > max {
		return invalidInput(e.lastValid, "integration step bounds invalid: min=%g max=%g", min, max)
	}
	e.minStep, e.maxStep = min, max
	return nil
}

// SetMaxNumSteps replaces the stored max_num_integration_steps value. The
// value is validated and kept, but Advance does not pass it to the solver,
// so it does not limit the interior steps of an Advance call.
func (e *Engine) SetMaxNumSteps(steps int) error {
	if steps <= 0 {
		return invalidInput(e.lastValid, "max_num_integration_steps must be > 0, got %d", steps)
	}
	e.maxNumSteps = steps
	return nil
}

// SetDataValidation toggles the post-Advance invariant scan.
func (e *Engine) SetDataValidation(on bool) { e.dataValidation = on }

// MaxClusterSize returns N, the number of tracked cluster sizes.
func (e *Engine) MaxClusterSize() int { return e.n }

// Time returns the engine's current simulated time.
func (e *Engine) Time() float64 { return e.time }
