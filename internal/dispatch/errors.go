package dispatch

import "errors"

// The three failure kinds surfaced by the engine. All are synchronous, local
// to the failing call, and never retried internally. Classify with errors.Is.
var (
	// ErrNotRegistered reports a lookup for an (operation, variant) pair with
	// no registered kernel. The requested variant is never silently
	// substituted with another one.
	ErrNotRegistered = errors.New("kernel not registered")

	// ErrShapeMismatch reports unequal parallel-array lengths, wrong
	// parameter counts, dense-matrix sizes not matching 4^wires, or a buffer
	// length that disagrees with the qubit count.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidWires reports wire indices that are out of range, repeated,
	// or of the wrong count for the operation's arity.
	ErrInvalidWires = errors.New("invalid wires")
)
