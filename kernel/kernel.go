// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the Pokor et al. (J. Nucl. Mater. 326, 2004)
// mean-field rate-theory equations, augmented by Sakaguchi's dislocation
// loop-unfaulting term (Acta Mat. 1131, 2001), as a set of pure functions
// over a material, a reactor, and the current cluster-size state.
//
// Grounded on original_source/cluster_dynamics.cpp (rate formulas and the
// per-size ladder recurrence) and the teacher's ele/diffusion/diffusion.go
// RHS-assembly convention of computing derived quantities into a
// short-lived local value rather than a long-lived mutable field.
package kernel

import "math"

// BoltzmannEV is Boltzmann's constant in eV/K.
const BoltzmannEV = 8.6173e-5

// ClusterRadius returns r(n), the radius of an n-defect cluster for a
// lattice with parameter a (cm). spec.md §4.1.
func ClusterRadius(a, n float64) float64 {
	return math.Sqrt(math.Sqrt(3) * a * a * n / (4 * math.Pi))
}

// DiffusionCoeff returns D_x = D_x,0 * exp(-E_m,x / (k*T)).
func DiffusionCoeff(d0, migrationEnergy, temperatureKelvin float64) float64 {
	return d0 * math.Exp(-migrationEnergy/(BoltzmannEV*temperatureKelvin))
}

// IBiasFactor returns Z_i(n), the interstitial dislocation-bias factor.
func IBiasFactor(n, burgers, lattice, zDislocation, zLoop, alpha float64) float64 {
	return zDislocation + (math.Sqrt(burgers/(8*math.Pi*lattice))*zLoop-zDislocation)*math.Pow(n, -alpha/2)
}

// VBiasFactor returns Z_v(n), the vacancy dislocation-bias factor.
func VBiasFactor(n, burgers, lattice, zDislocation, zLoop, alpha float64) float64 {
	return IBiasFactor(n, burgers, lattice, zDislocation, zLoop, alpha)
}

// BindingEnergy returns E_b,x(n) for formation energy Ef and size-2
// binding energy Eb2.
func BindingEnergy(ef, eb2, n float64) float64 {
	const exp = 0.8
	return ef + (eb2-ef)/(math.Pow(2, exp)-1)*(math.Pow(n, exp)-math.Pow(n-1, exp))
}

// unfaultProbability returns P_unf(n), the Sakaguchi loop-unfaulting
// probability, using an Arrhenius factor over the interstitial binding
// energy at size n plus the interstitial migration energy.
func unfaultProbability(bindingEnergyI, migrationEnergyI, temperatureKelvin float64) float64 {
	return math.Exp(-(bindingEnergyI + migrationEnergyI) / (BoltzmannEV * temperatureKelvin))
}
