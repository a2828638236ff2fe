// Package adjoint computes parameter gradients of circuit expectation values
// by replaying a recorded circuit backward (adjoint differentiation) and
// contracting the resulting Jacobian with upstream gradients (VJP).
package adjoint

import "github.com/lumen-sim/lumen/internal/gates"

// Operation is one recorded gate application.
type Operation struct {
	Gate    gates.GateOperation
	Wires   []int
	Params  []float64
	Inverse bool
}

// Observable is a Hermitian observable expressed as the gate sequence that
// applies its operator to a state. A bare Pauli observable is a single entry.
type Observable struct {
	Ops []Operation
}

// PauliObservable builds the observable for a single Pauli operator on one
// wire.
func PauliObservable(op gates.GateOperation, wire int) Observable {
	return Observable{Ops: []Operation{{Gate: op, Wires: []int{wire}}}}
}

// Tape is a recorded circuit plus the differentiation request: the
// observables to measure and the trainable-parameter index set.
//
// Trainable-parameter indices count parametric operations in tape order: the
// first parametric operation is parameter 0, the second parameter 1, and so
// on. The slice must be sorted ascending and duplicate-free; the engine does
// not re-sort it.
type Tape struct {
	NumQubits       int
	Operations      []Operation
	Observables     []Observable
	TrainableParams []int
}

// NumParametricOps counts the tape operations that carry parameters.
func (t *Tape) NumParametricOps() int {
	n := 0
	for _, op := range t.Operations {
		if op.Gate.Parametric() {
			n++
		}
	}
	return n
}
