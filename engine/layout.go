// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// The engine owns one contiguous state vector of length 2*(N+2)+1,
// laid out exactly as spec.md §3 describes:
//
//   [0 .. N+1]      interstitial concentrations (0 and N+1 are padding)
//   [N+2 .. 2N+3]   vacancy concentrations (same padding convention)
//   [2N+4]          dislocation density (scalar)
//
// These helpers are the only place that layout is expressed; the rate
// kernel itself operates on plain []float64 sub-slices handed to it by
// rhs, never on raw offsets into the full vector.

func stateLen(n int) int { return 2*(n+2) + 1 }

func iBase(n int) int { return 0 }

func vBase(n int) int { return n + 2 }

func rhoIdx(n int) int { return 2 * (n + 2) }
