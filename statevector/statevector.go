// Copyright 2026 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package statevector provides the public API for quantum state vectors.
//
// A StateVector holds the 2^n complex amplitudes of an n-qubit register.
// Wire 0 maps to the most significant bit of the basis-state index, so for
// two qubits the amplitude order is |00>, |01>, |10>, |11>.
//
// Example:
//
//	sv, err := statevector.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = sv.SetBasisState(0b101) // prepare |101>
package statevector

import (
	"github.com/lumen-sim/lumen/internal/statevector"
)

// StateVector is a dense complex128 amplitude buffer for n qubits.
type StateVector = statevector.StateVector

// ErrPrecondition reports an invalid argument to a state-vector operation,
// such as a buffer whose length is not a power of two.
var ErrPrecondition = statevector.ErrPrecondition

// New creates an n-qubit state vector initialized to |0...0>.
func New(numQubits int) (*StateVector, error) {
	return statevector.New(numQubits)
}

// FromData creates a state vector from a copy of data.
// The length of data must be a power of two.
func FromData(data []complex128) (*StateVector, error) {
	return statevector.FromData(data)
}

// FromStateVector creates a deep copy of other.
func FromStateVector(other *StateVector) *StateVector {
	return statevector.FromStateVector(other)
}
