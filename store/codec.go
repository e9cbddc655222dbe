// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store is the persistence collaborator spec.md §6 describes: it
// stores Snapshot-like records associated with a Material and a Reactor,
// keyed by opaque ids, and must return them intact. It depends on
// package engine for the Snapshot shape; engine never imports store.
//
// Grounded on include/client_db/*.hpp and src/client_db/*.cpp in
// original_source/ for the schema shape (materials, reactors, runs,
// states each with a stable id), generalized from the original's raw
// SQLite calls to sqlx+lib/pq since those are the pack's directly
// available SQL stack (jndunlap-gohypo's go.mod).
package store

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"

	"github.com/cpmech/gosl/chk"
)

// encodeBlob serializes a []float64 as a length-prefixed, gzip-compressed
// binary blob: spec.md §6 explicitly allows this representation.
func encodeBlob(values []float64) ([]byte, error) {
	var raw bytes.Buffer
	if err := binary.Write(&raw, binary.LittleEndian, uint64(len(values))); err != nil {
		return nil, chk.Err("cannot write blob length prefix: %v", err)
	}
	if err := binary.Write(&raw, binary.LittleEndian, values); err != nil {
		return nil, chk.Err("cannot write blob payload: %v", err)
	}

	var out bytes.Buffer
	gz := gzip.NewWriter(&out)
	if _, err := gz.Write(raw.Bytes()); err != nil {
		return nil, chk.Err("cannot compress blob: %v", err)
	}
	if err := gz.Close(); err != nil {
		return nil, chk.Err("cannot finalize compressed blob: %v", err)
	}
	return out.Bytes(), nil
}

// decodeBlob reverses encodeBlob, reproducing the original vector
// exactly (spec.md §8: "reproduces the original vector exactly").
func decodeBlob(blob []byte) ([]float64, error) {
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, chk.Err("cannot open compressed blob: %v", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, chk.Err("cannot decompress blob: %v", err)
	}
	buf := bytes.NewReader(raw)

	var n uint64
	if err := binary.Read(buf, binary.LittleEndian, &n); err != nil {
		return nil, chk.Err("cannot read blob length prefix: %v", err)
	}
	values := make([]float64, n)
	if err := binary.Read(buf, binary.LittleEndian, values); err != nil {
		return nil, chk.Err("cannot read blob payload: %v", err)
	}
	return values, nil
}
