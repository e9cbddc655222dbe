// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// StepCache holds the quantities spec.md §3/§4.1 calls out as recomputed
// once per integrator right-hand-side evaluation and reused across the
// O(N) rate-coefficient calls within that single evaluation: diffusion
// coefficients, the four sink sums, and the mean dislocation cell radius.
//
// It is built fresh at the top of every RHS call (see engine.rhs) and
// must never be reused across calls; there is deliberately no method on
// this type that mutates it in place from a stale copy.
type StepCache struct {
	IDiffusion float64 // D_i at the current temperature
	VDiffusion float64 // D_v at the current temperature

	SigmaII float64 // Σ_ii = Σ_{n=1..N-1} β_ii(n)·C_i(n)
	SigmaIV float64 // Σ_iv = Σ_{n=1..N-1} β_iv(n)·C_i(n)
	SigmaVV float64 // Σ_vv = Σ_{n=1..N-1} β_vv(n)·C_v(n)
	SigmaVI float64 // Σ_vi = Σ_{n=1..N-1} β_vi(n)·C_v(n)

	R0 float64 // mean dislocation cell radius
}

// NewStepCache refreshes every per-evaluation quantity from the current
// state. ci and cv must be length N+2 with index 0 and N+1 as the
// zero-padding boundaries; rho is the current dislocation density.
func NewStepCache(p Params, N int, ci, cv []float64, rho float64) *StepCache {
	c := &StepCache{
		IDiffusion: DiffusionCoeff(p.Mat.IDiffusion0, p.Mat.IMigration, p.Rxr.TemperatureKelvin),
		VDiffusion: DiffusionCoeff(p.Mat.VDiffusion0, p.Mat.VMigration, p.Rxr.TemperatureKelvin),
	}

	for n := 1; n <= N-1; n++ {
		fn := float64(n)
		c.SigmaII += p.betaII(fn, c) * ci[n]
		c.SigmaIV += p.betaIV(fn, c) * ci[n]
		c.SigmaVV += p.betaVV(fn, c) * cv[n]
		c.SigmaVI += p.betaVI(fn, c) * cv[n]
	}

	var radiusSum float64
	for n := 1; n <= N; n++ {
		radiusSum += ClusterRadius(p.Mat.LatticeParameter(), float64(n)) * ci[n]
	}
	inner := 2*math.Pi*math.Pi/p.Mat.AtomicVolume()*radiusSum + math.Pi*rho
	c.R0 = 1 / math.Sqrt(inner)

	return c
}
