// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
)

// Params bundles the material and reactor a rate evaluation needs
// (spec.md §4.1/§4.2). The diffusion coefficients are not held here; the
// rate methods read them from the StepCache passed alongside.
type Params struct {
	Mat *material.Material
	Rxr *reactor.Reactor
}

// betaII returns β_ii(n): absorption rate of an interstitial by a
// size-n interstitial cluster.
func (p Params) betaII(n float64, cache *StepCache) float64 {
	r := ClusterRadius(p.Mat.LatticeParameter(), n)
	z := IBiasFactor(n, p.Mat.BurgersVector(), p.Mat.LatticeParameter(), p.Mat.IDislocationBias, p.Mat.ILoopBias, p.Mat.IDislocationBiasParam)
	return 2 * math.Pi * r * z * cache.IDiffusion
}

// betaIV returns β_iv(n): absorption rate of a vacancy by a size-n
// interstitial cluster.
func (p Params) betaIV(n float64, cache *StepCache) float64 {
	r := ClusterRadius(p.Mat.LatticeParameter(), n)
	z := VBiasFactor(n, p.Mat.BurgersVector(), p.Mat.LatticeParameter(), p.Mat.VDislocationBias, p.Mat.VLoopBias, p.Mat.VDislocationBiasParam)
	return 2 * math.Pi * r * z * cache.VDiffusion
}

// betaVV returns β_vv(n): absorption rate of a vacancy by a size-n
// vacancy cluster.
func (p Params) betaVV(n float64, cache *StepCache) float64 {
	r := ClusterRadius(p.Mat.LatticeParameter(), n)
	z := VBiasFactor(n, p.Mat.BurgersVector(), p.Mat.LatticeParameter(), p.Mat.VDislocationBias, p.Mat.VLoopBias, p.Mat.VDislocationBiasParam)
	return 2 * math.Pi * r * z * cache.VDiffusion
}

// betaVI returns β_vi(n): absorption rate of an interstitial by a
// size-n vacancy cluster.
func (p Params) betaVI(n float64, cache *StepCache) float64 {
	r := ClusterRadius(p.Mat.LatticeParameter(), n)
	z := IBiasFactor(n, p.Mat.BurgersVector(), p.Mat.LatticeParameter(), p.Mat.IDislocationBias, p.Mat.ILoopBias, p.Mat.IDislocationBiasParam)
	return 2 * math.Pi * r * z * cache.IDiffusion
}

// alphaII returns α_ii(n): emission rate of an interstitial by a size-n
// interstitial cluster.
func (p Params) alphaII(n float64, cache *StepCache) float64 {
	eb := BindingEnergy(p.Mat.IFormation, p.Mat.IBinding, n)
	return (p.betaII(n, cache) / p.Mat.AtomicVolume()) * math.Exp(-eb/(BoltzmannEV*p.Rxr.TemperatureKelvin))
}

// alphaVV returns α_vv(n): emission rate of a vacancy by a size-n
// vacancy cluster.
func (p Params) alphaVV(n float64, cache *StepCache) float64 {
	eb := BindingEnergy(p.Mat.VFormation, p.Mat.VBinding, n)
	return (p.betaVV(n, cache) / p.Mat.AtomicVolume()) * math.Exp(-eb/(BoltzmannEV*p.Rxr.TemperatureKelvin))
}

// punf returns P_unf(n), the probability that a size-n interstitial loop
// unfaults onto the dislocation network (Sakaguchi, Acta Mat. 1131, 2001).
func (p Params) punf(n float64) float64 {
	eb := BindingEnergy(p.Mat.IFormation, p.Mat.IBinding, n)
	return unfaultProbability(eb, p.Mat.IMigration, p.Rxr.TemperatureKelvin)
}

// gi returns G_i(n), the cascade interstitial defect production rate
// before division by atomic volume. Zero for n > 4.
func (p Params) gi(n int) float64 {
	rx := p.Rxr
	switch n {
	case 1:
		return rx.Recombination * rx.Flux * rx.IMono()
	case 2:
		return rx.Recombination * rx.Flux * rx.IBi
	case 3:
		return rx.Recombination * rx.Flux * rx.ITri
	case 4:
		return rx.Recombination * rx.Flux * rx.IQuad
	default:
		return 0
	}
}

// gv returns G_v(n), the cascade vacancy defect production rate before
// division by atomic volume. Zero for n > 4.
func (p Params) gv(n int) float64 {
	rx := p.Rxr
	switch n {
	case 1:
		return rx.Recombination * rx.Flux * rx.VMono()
	case 2:
		return rx.Recombination * rx.Flux * rx.VBi
	case 3:
		return rx.Recombination * rx.Flux * rx.VTri
	case 4:
		return rx.Recombination * rx.Flux * rx.VQuad
	default:
		return 0
	}
}
