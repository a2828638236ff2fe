package kernels

import (
	"fmt"

	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
)

// PI variant: every gate is realized by building its dense matrix and pushing
// it through the permutation-index matrix routines. Slower than LM but fully
// generic; the variants agree up to floating-point rounding.

func (e *engine) piGateFunc(op gates.GateOperation) dispatch.GateFunc {
	switch op.NumWires() {
	case 1:
		return func(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
			e.applySingleQubitMatrix(data, numQubits, mustMatrix(op, params), wires, inverse)
		}
	case 2:
		return func(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
			e.applyTwoQubitMatrix(data, numQubits, mustMatrix(op, params), wires, inverse)
		}
	default:
		return func(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
			e.applyMultiQubitMatrix(data, numQubits, mustMatrix(op, params), wires, inverse)
		}
	}
}

// mustMatrix builds the gate's dense matrix. The dispatcher validates the
// parameter count before invoking any kernel, so failure here is a bug.
func mustMatrix(op gates.GateOperation, params []float64) []complex128 {
	m, err := gates.Matrix(op, params)
	if err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
	return m
}
