// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Snapshot is a self-contained, caller-owned observation of the engine's
// state at a given simulated time (spec.md §3). It is independent of the
// engine's internal contiguous-state-vector layout and safe to retain
// past subsequent Advance calls.
type Snapshot struct {
	Time float64 // s
	Dpa  float64 // cumulative dose = Time * reactor flux

	// Interstitials and Vacancies are dense, length-N vectors: index 0
	// holds the size-1 concentration (unlike the engine's internal
	// padded layout, there is no unused index here).
	Interstitials []float64 // cm^-3
	Vacancies     []float64 // cm^-3

	DislocationDensity float64 // cm^-2
}

// Clone returns a deep copy, so a caller can safely mutate the result of
// Clone without affecting the Error.LastValid snapshot it came from.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Interstitials = append([]float64(nil), s.Interstitials...)
	out.Vacancies = append([]float64(nil), s.Vacancies...)
	return out
}
