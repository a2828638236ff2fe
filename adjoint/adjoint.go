// Copyright 2026 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package adjoint provides the public API for adjoint differentiation.
//
// The Engine computes exact Jacobians of expectation values with respect
// to trainable gate parameters using the adjoint method: a single forward
// evolution followed by one reverse sweep, with memory cost linear in the
// number of observables rather than the number of parameters.
//
// Example:
//
//	d := dispatch.NewDefault(dispatch.DefaultConfig())
//	e := adjoint.NewEngine(d, dispatch.VariantLM, dispatch.DefaultConfig())
//	tape := &adjoint.Tape{
//	    NumQubits:  1,
//	    Operations: []adjoint.Operation{{Gate: gates.RX, Wires: []int{0}, Params: []float64{0.3}}},
//	    Observables: []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
//	    TrainableParams: []int{0},
//	}
//	jac, err := e.Jacobian(tape) // jac[0][0] == -sin(0.3)
package adjoint

import (
	"github.com/lumen-sim/lumen/internal/adjoint"
	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
	"github.com/lumen-sim/lumen/internal/parallel"
)

// Engine computes Jacobians and vector-Jacobian products over tapes.
type Engine = adjoint.Engine

// Tape is a recorded circuit: operations, observables, and the indices of
// the trainable parametric operations.
type Tape = adjoint.Tape

// Operation is one gate application on a tape.
type Operation = adjoint.Operation

// Observable is a product of gate applications measured as an expectation
// value.
type Observable = adjoint.Observable

// PauliObservable builds a single-wire observable for a Pauli gate.
func PauliObservable(op gates.GateOperation, wire int) Observable {
	return adjoint.PauliObservable(op, wire)
}

// NewEngine creates an adjoint engine over the given dispatcher and
// kernel variant.
func NewEngine(d *dispatch.Dispatcher, variant dispatch.Variant, cfg parallel.Config) *Engine {
	return adjoint.NewEngine(d, variant, cfg)
}

// ComputeVJP contracts an upstream gradient dy with a Jacobian: dy^T . jac.
func ComputeVJP(jac [][]float64, dy []float64) ([]float64, error) {
	return adjoint.ComputeVJP(jac, dy)
}

// FlattenJacobian flattens a row-major Jacobian into a single slice.
func FlattenJacobian(jac [][]float64) []float64 {
	return adjoint.FlattenJacobian(jac)
}
