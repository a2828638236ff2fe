// Copyright 2026 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gates enumerates the supported gate set and their generators.
//
// Every gate operation carries static metadata: its canonical name, wire
// arity, and parameter count. Parametric gates expose a Hermitian generator
// used by the adjoint differentiation engine, and every gate can be
// materialized as a row-major dense matrix via Matrix.
//
// Example:
//
//	m, err := gates.Matrix(gates.RX, []float64{math.Pi / 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(gates.RX.String(), gates.RX.NumWires(), gates.RX.NumParams())
package gates

import (
	"github.com/lumen-sim/lumen/internal/gates"
)

// GateOperation identifies a gate in the supported set.
type GateOperation = gates.GateOperation

// Supported gate operations.
const (
	Identity             GateOperation = gates.Identity
	PauliX               GateOperation = gates.PauliX
	PauliY               GateOperation = gates.PauliY
	PauliZ               GateOperation = gates.PauliZ
	Hadamard             GateOperation = gates.Hadamard
	S                    GateOperation = gates.S
	T                    GateOperation = gates.T
	PhaseShift           GateOperation = gates.PhaseShift
	RX                   GateOperation = gates.RX
	RY                   GateOperation = gates.RY
	RZ                   GateOperation = gates.RZ
	Rot                  GateOperation = gates.Rot
	CNOT                 GateOperation = gates.CNOT
	CY                   GateOperation = gates.CY
	CZ                   GateOperation = gates.CZ
	SWAP                 GateOperation = gates.SWAP
	ControlledPhaseShift GateOperation = gates.ControlledPhaseShift
	CRX                  GateOperation = gates.CRX
	CRY                  GateOperation = gates.CRY
	CRZ                  GateOperation = gates.CRZ
	IsingXX              GateOperation = gates.IsingXX
	IsingYY              GateOperation = gates.IsingYY
	IsingZZ              GateOperation = gates.IsingZZ
	Toffoli              GateOperation = gates.Toffoli
	CSWAP                GateOperation = gates.CSWAP
)

// GeneratorOperation identifies the Hermitian generator of a parametric gate.
type GeneratorOperation = gates.GeneratorOperation

// Supported generator operations.
const (
	GenPhaseShift           GeneratorOperation = gates.GenPhaseShift
	GenRX                   GeneratorOperation = gates.GenRX
	GenRY                   GeneratorOperation = gates.GenRY
	GenRZ                   GeneratorOperation = gates.GenRZ
	GenControlledPhaseShift GeneratorOperation = gates.GenControlledPhaseShift
	GenCRX                  GeneratorOperation = gates.GenCRX
	GenCRY                  GeneratorOperation = gates.GenCRY
	GenCRZ                  GeneratorOperation = gates.GenCRZ
	GenIsingXX              GeneratorOperation = gates.GenIsingXX
	GenIsingYY              GeneratorOperation = gates.GenIsingYY
	GenIsingZZ              GeneratorOperation = gates.GenIsingZZ
)

// MatrixOperation classifies direct dense-matrix application by wire arity.
type MatrixOperation = gates.MatrixOperation

// Matrix arity classes.
const (
	SingleQubitOp MatrixOperation = gates.SingleQubitOp
	TwoQubitOp    MatrixOperation = gates.TwoQubitOp
	MultiQubitOp  MatrixOperation = gates.MultiQubitOp
)

// Matrix returns the row-major dense matrix of op for the given parameters.
func Matrix(op GateOperation, params []float64) ([]complex128, error) {
	return gates.Matrix(op, params)
}

// ConjTranspose returns the conjugate transpose of a row-major dim x dim
// matrix.
func ConjTranspose(matrix []complex128, dim int) []complex128 {
	return gates.ConjTranspose(matrix, dim)
}

// MatrixOpForWires returns the arity class for a dense matrix acting on
// numWires wires.
func MatrixOpForWires(numWires int) MatrixOperation {
	return gates.MatrixOpForWires(numWires)
}

// GateByName resolves a canonical gate name such as "PauliX" or "CRZ".
func GateByName(name string) (GateOperation, bool) {
	return gates.GateByName(name)
}

// GeneratorByName resolves a canonical generator name such as "GeneratorRX".
func GeneratorByName(name string) (GeneratorOperation, bool) {
	return gates.GeneratorByName(name)
}

// AllGates returns every supported gate operation.
func AllGates() []GateOperation {
	return gates.AllGates()
}

// AllGenerators returns every supported generator operation.
func AllGenerators() []GeneratorOperation {
	return gates.AllGenerators()
}
