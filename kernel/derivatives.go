// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// Derivatives evaluates dC_i/dt, dC_v/dt for every cluster size 1..N and
// dρ/dt, writing into dci, dcv (each length N+2, padding indices 0 and
// N+1 left at zero) and returning the dislocation-density derivative.
//
// ci, cv (length N+2) and rho are the current state; cache must have been
// refreshed for this same state by NewStepCache immediately before this
// call (spec.md §3, §4.1, §9: "one cache per RHS evaluation").
func Derivatives(p Params, N int, ci, cv []float64, rho float64, cache *StepCache, dci, dcv []float64) (drho float64) {

	for i := range dci {
		dci[i] = 0
	}
	for i := range dcv {
		dcv[i] = 0
	}

	vAtom := p.Mat.AtomicVolume()

	// --- size >= 2 ladder, spec.md §4.1 "Size-n derivative (n >= 2)" ---
	for n := 2; n <= N; n++ {
		fn := float64(n)

		aiNp1 := p.betaIV(fn+1, cache)*cv[1] + p.alphaII(fn+1, cache)
		biN := p.betaIV(fn, cache)*cv[1] + p.betaII(fn, cache)*ci[1] + p.alphaII(fn, cache)
		ciNm1 := p.betaII(fn-1, cache) * ci[1] * (1 - p.punf(fn))

		avNp1 := p.betaVI(fn+1, cache)*ci[1] + p.alphaVV(fn+1, cache)
		bvN := p.betaVI(fn, cache)*ci[1] + p.betaVV(fn, cache)*cv[1] + p.alphaVV(fn, cache)
		cvNm1 := p.betaVV(fn-1, cache) * cv[1]

		dci[n] = p.gi(n)/vAtom + aiNp1*ci[n+1] - biN*ci[n] + ciNm1*ci[n-1]
		dcv[n] = p.gv(n)/vAtom + avNp1*cv[n+1] - bvN*cv[n] + cvNm1*cv[n-1]
	}

	// --- size-1 equations, spec.md §4.1 "Size-1 derivatives" ---
	riv := 4 * (cache.IDiffusion + cache.VDiffusion) * p.Mat.RecombinationRadius
	recomb := riv * ci[1] * cv[1]

	tauDInvI := rho * cache.IDiffusion * p.Mat.IDislocationBias
	tauDInvV := rho * cache.VDiffusion * p.Mat.VDislocationBias

	tauGBInvI := 6 * cache.IDiffusion * sqrtNonNeg(rho*p.Mat.IDislocationBias+cache.SigmaII+cache.SigmaVI) / p.Mat.GrainSize
	tauGBInvV := 6 * cache.VDiffusion * sqrtNonNeg(rho*p.Mat.VDislocationBias+cache.SigmaVV+cache.SigmaIV) / p.Mat.GrainSize

	// bulk absorption of free monomers into existing clusters
	absorbI := ci[1] * (cache.SigmaII + cache.SigmaVI)
	absorbV := cv[1] * (cache.SigmaVV + cache.SigmaIV)

	// emission from size >= 2 clusters back down to size 1
	var emitI, emitV float64
	for n := 3; n <= N; n++ {
		fn := float64(n)
		emitI += p.alphaII(fn, cache) * ci[n]
		emitV += p.alphaVV(fn, cache) * cv[n]
	}
	if N >= 2 {
		emitI += 2*p.alphaII(2, cache)*ci[2] + p.betaIV(2, cache)*cv[1]*ci[2]
		emitV += 2*p.alphaVV(2, cache)*cv[2] + p.betaVI(2, cache)*ci[1]*cv[2]
	}

	dci[1] = p.gi(1)/vAtom - recomb - ci[1]*tauDInvI - ci[1]*tauGBInvI - absorbI + emitI
	dcv[1] = p.gv(1)/vAtom - recomb - cv[1]*tauDInvV - cv[1]*tauGBInvV - absorbV + emitV

	// --- dislocation density, spec.md §4.1 "Dislocation-density derivative" ---
	var unfaultSum float64
	for n := 1; n <= N; n++ {
		fn := float64(n)
		unfaultSum += ClusterRadius(p.Mat.LatticeParameter(), fn) * p.betaII(fn, cache) * ci[n] * p.punf(fn)
	}
	b := p.Mat.BurgersVector()
	drho = (2*math.Pi/vAtom)*unfaultSum - p.Rxr.DislocationDensityEvolution*b*b*math.Pow(rho, 1.5)

	return drho
}

func sqrtNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(x)
}
