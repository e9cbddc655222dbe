// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "fmt"

// Kind identifies the machine-readable category of an Error, per
// spec.md §7.
type Kind int

const (
	// InvalidInput means a configuration or per-call argument violated a
	// precondition. Retriable after the caller corrects the input; never
	// leaves the engine in a broken state.
	InvalidInput Kind = iota

	// IntegratorFailure means the stiff solver could not make progress:
	// step underflow, maximum interior steps exceeded, or linear-solver
	// rejection. Non-retriable on the same Engine.
	IntegratorFailure

	// ValidationFailure means a post-step invariant scan found a
	// negative, NaN, or infinite concentration, or a negative
	// dislocation density. Non-retriable.
	ValidationFailure
)

// String renders the Kind for log/error messages.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case IntegratorFailure:
		return "IntegratorFailure"
	case ValidationFailure:
		return "ValidationFailure"
	default:
		return "Unknown"
	}
}

// Error is the single failure type advance and New return. It always
// carries the last known-valid snapshot so the caller can report context
// even on failure; spec.md §7 guarantees no partial snapshot is ever
// returned alongside an error.
type Error struct {
	Kind    Kind
	Message string

	// LastValid is the last snapshot known to satisfy every invariant in
	// spec.md §3. Zero-valued if the engine never produced one (e.g. a
	// constructor-time InvalidInput).
	LastValid Snapshot

	// ClusterSize is the offending cluster index for a ValidationFailure;
	// zero for the other kinds.
	ClusterSize int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ClusterSize != 0 {
		return fmt.Sprintf("%s: %s (cluster size %d)", e.Kind, e.Message, e.ClusterSize)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func invalidInput(last Snapshot, format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf(format, args...), LastValid: last}
}

func integratorFailure(last Snapshot, format string, args ...interface{}) *Error {
	return &Error{Kind: IntegratorFailure, Message: fmt.Sprintf(format, args...), LastValid: last}
}

func validationFailure(last Snapshot, clusterSize int, format string, args ...interface{}) *Error {
	return &Error{Kind: ValidationFailure, Message: fmt.Sprintf(format, args...), LastValid: last, ClusterSize: clusterSize}
}
