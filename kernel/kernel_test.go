// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
)

func closeEnough(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func Test_radius_monotonic(tst *testing.T) {
	chk.PrintTitle("radius monotonic in n")
	a := 3.6e-8
	prev := 0.0
	for n := 1; n <= 50; n++ {
		r := ClusterRadius(a, float64(n))
		if r <= prev {
			tst.Fatalf("r(%d)=%g is not greater than r(%d-1)=%g", n, r, n, prev)
		}
		prev = r
	}
}

func Test_diffusion_increases_with_temperature(tst *testing.T) {
	chk.PrintTitle("diffusion strictly increases with T")
	prev := 0.0
	for _, T := range []float64{100, 200, 300, 400, 603.15, 800, 1200} {
		d := DiffusionCoeff(1e-3, 0.45, T)
		if d <= prev {
			tst.Fatalf("D(T=%g)=%g is not greater than previous=%g", T, d, prev)
		}
		prev = d
	}
}

func Test_defect_production_OSIRIS(tst *testing.T) {
	chk.PrintTitle("defect production table, OSIRIS reactor")
	rxr, err := reactor.Preset("OSIRIS")
	if err != nil {
		tst.Fatal(err)
	}
	p := Params{Rxr: rxr}

	wantGi := []float64{2.088e-8, 4.35e-8, 1.74e-8, 5.22e-9, 0}
	wantGv := []float64{7.743e-8, 5.22e-9, 2.61e-9, 1.74e-9, 0}

	for i, want := range wantGi {
		n := i + 1
		got := p.gi(n)
		if !closeEnough(got, want, 1e-10) {
			tst.Fatalf("Gi(%d)=%g, want %g", n, got, want)
		}
	}
	for i, want := range wantGv {
		n := i + 1
		got := p.gv(n)
		if !closeEnough(got, want, 1e-10) {
			tst.Fatalf("Gv(%d)=%g, want %g", n, got, want)
		}
	}
}

func Test_betas_positive(tst *testing.T) {
	chk.PrintTitle("absorption coefficients strictly positive")
	mat, err := material.Preset("SA304")
	if err != nil {
		tst.Fatal(err)
	}
	rxr, err := reactor.Preset("OSIRIS")
	if err != nil {
		tst.Fatal(err)
	}
	p := Params{Mat: mat, Rxr: rxr}
	cache := &StepCache{
		IDiffusion: DiffusionCoeff(mat.IDiffusion0, mat.IMigration, rxr.TemperatureKelvin),
		VDiffusion: DiffusionCoeff(mat.VDiffusion0, mat.VMigration, rxr.TemperatureKelvin),
	}
	for n := 1; n <= 20; n++ {
		fn := float64(n)
		if p.betaII(fn, cache) <= 0 {
			tst.Fatalf("betaII(%d) not positive", n)
		}
		if p.betaIV(fn, cache) <= 0 {
			tst.Fatalf("betaIV(%d) not positive", n)
		}
		if p.betaVV(fn, cache) <= 0 {
			tst.Fatalf("betaVV(%d) not positive", n)
		}
		if p.betaVI(fn, cache) <= 0 {
			tst.Fatalf("betaVI(%d) not positive", n)
		}
	}
}

func Test_zero_flux_zero_state_zero_derivative(tst *testing.T) {
	chk.PrintTitle("flux=0 and zero state yields zero derivatives")
	mat, _ := material.Preset("SA304")
	rxr, _ := reactor.Preset("OSIRIS")
	rxr.Flux = 0
	p := Params{Mat: mat, Rxr: rxr}

	const N = 10
	ci := make([]float64, N+2)
	cv := make([]float64, N+2)
	dci := make([]float64, N+2)
	dcv := make([]float64, N+2)

	cache := NewStepCache(p, N, ci, cv, mat.DislocationDensity0)
	drho := Derivatives(p, N, ci, cv, mat.DislocationDensity0, cache, dci, dcv)

	for n := 1; n <= N; n++ {
		if dci[n] != 0 {
			tst.Fatalf("dci[%d]=%g, want 0", n, dci[n])
		}
		if dcv[n] != 0 {
			tst.Fatalf("dcv[%d]=%g, want 0", n, dcv[n])
		}
	}
	if drho >= 1e-20 {
		// dislocation density may still relax via the -K*b^2*rho^1.5 sink
		// term even at zero flux; it must never grow from a zero-production
		// state.
		tst.Fatalf("drho=%g, want <= 0", drho)
	}
}

func Test_padding_derivatives_stay_zero(tst *testing.T) {
	chk.PrintTitle("derivatives at padding indices 0 and N+1 stay zero")
	mat, _ := material.Preset("SA304")
	rxr, _ := reactor.Preset("OSIRIS")
	p := Params{Mat: mat, Rxr: rxr}

	const N = 5
	ci := []float64{0, 1e10, 1e8, 1e6, 1e4, 1e2, 0}
	cv := []float64{0, 1e10, 1e8, 1e6, 1e4, 1e2, 0}
	dci := make([]float64, N+2)
	dcv := make([]float64, N+2)

	cache := NewStepCache(p, N, ci, cv, mat.DislocationDensity0)
	Derivatives(p, N, ci, cv, mat.DislocationDensity0, cache, dci, dcv)

	if dci[0] != 0 || dci[N+1] != 0 {
		tst.Fatalf("padding derivatives must stay zero, got dci[0]=%g dci[N+1]=%g", dci[0], dci[N+1])
	}
	if dcv[0] != 0 || dcv[N+1] != 0 {
		tst.Fatalf("padding derivatives must stay zero, got dcv[0]=%g dcv[N+1]=%g", dcv[0], dcv[N+1])
	}
}
