// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_blob_round_trip(tst *testing.T) {
	chk.PrintTitle("length-prefixed compressed blob round-trips exactly")
	original := []float64{0, 1.998e-10, 3.589e-13, 0, 5.286e-38, -0.0, 1e300, 1e-300}
	blob, err := encodeBlob(original)
	if err != nil {
		tst.Fatal(err)
	}
	got, err := decodeBlob(blob)
	if err != nil {
		tst.Fatal(err)
	}
	if len(got) != len(original) {
		tst.Fatalf("length mismatch: got %d want %d", len(got), len(original))
	}
	for i := range original {
		if got[i] != original[i] {
			tst.Fatalf("value %d mismatch: got %v want %v", i, got[i], original[i])
		}
	}
}

func Test_blob_empty(tst *testing.T) {
	chk.PrintTitle("empty vector round-trips to an empty vector")
	blob, err := encodeBlob(nil)
	if err != nil {
		tst.Fatal(err)
	}
	got, err := decodeBlob(blob)
	if err != nil {
		tst.Fatal(err)
	}
	if len(got) != 0 {
		tst.Fatalf("expected empty vector, got %v", got)
	}
}
