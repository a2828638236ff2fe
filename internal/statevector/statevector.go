// Package statevector implements the dense complex amplitude buffer a
// simulation mutates in place.
//
// A state vector owns a contiguous buffer of 2^n complex128 amplitudes for n
// qubits. The length is always an exact power of two; constructing from a
// buffer of any other length is rejected. The buffer is exclusively owned by
// its simulation context and is never locked internally.
package statevector

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrPrecondition marks construction and access precondition violations:
// non-power-of-two buffer lengths, out-of-range basis indices, and
// mismatched overwrite lengths.
var ErrPrecondition = errors.New("state vector precondition violated")

// maxQubits keeps 2^n addressable as an int and the buffer allocatable.
const maxQubits = bits.UintSize - 2

// StateVector holds the amplitudes of an n-qubit register.
type StateVector struct {
	data      []complex128
	numQubits int
}

// New allocates a state vector in the computational basis state |0...0>.
func New(numQubits int) (*StateVector, error) {
	if numQubits < 0 || numQubits > maxQubits {
		return nil, fmt.Errorf("%w: %d qubits is not addressable", ErrPrecondition, numQubits)
	}
	sv := &StateVector{
		data:      make([]complex128, 1<<numQubits),
		numQubits: numQubits,
	}
	sv.data[0] = 1
	return sv, nil
}

// FromData copies an existing amplitude buffer. The length must be an exact
// power of two.
func FromData(data []complex128) (*StateVector, error) {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: length %d is not a power of two", ErrPrecondition, n)
	}
	sv := &StateVector{
		data:      make([]complex128, n),
		numQubits: bits.Len(uint(n)) - 1,
	}
	copy(sv.data, data)
	return sv, nil
}

// FromStateVector deep-copies another state vector.
func FromStateVector(other *StateVector) *StateVector {
	sv := &StateVector{
		data:      make([]complex128, len(other.data)),
		numQubits: other.numQubits,
	}
	copy(sv.data, other.data)
	return sv
}

// Clone returns a deep copy.
func (sv *StateVector) Clone() *StateVector {
	return FromStateVector(sv)
}

// Data exposes the amplitude buffer. Kernels mutate it in place; callers must
// not resize it.
func (sv *StateVector) Data() []complex128 { return sv.data }

// NumQubits returns the qubit count n.
func (sv *StateVector) NumQubits() int { return sv.numQubits }

// Length returns the buffer length 2^n.
func (sv *StateVector) Length() int { return len(sv.data) }

// SetBasisState zeroes the buffer and sets the amplitude at index to 1.
func (sv *StateVector) SetBasisState(index int) error {
	if index < 0 || index >= len(sv.data) {
		return fmt.Errorf("%w: basis index %d out of range [0, %d)", ErrPrecondition, index, len(sv.data))
	}
	clear(sv.data)
	sv.data[index] = 1
	return nil
}

// SetStateVector overwrites only the listed positions. indices and values
// must have equal length and every index must lie within the buffer.
func (sv *StateVector) SetStateVector(indices []int, values []complex128) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: %d indices for %d values", ErrPrecondition, len(indices), len(values))
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(sv.data) {
			return fmt.Errorf("%w: index %d out of range [0, %d)", ErrPrecondition, idx, len(sv.data))
		}
	}
	for i, idx := range indices {
		sv.data[idx] = values[i]
	}
	return nil
}

// Reset returns the register to |0...0>. No-op on an empty buffer.
func (sv *StateVector) Reset() {
	if len(sv.data) == 0 {
		return
	}
	clear(sv.data)
	sv.data[0] = 1
}

// UpdateData overwrites the whole buffer. The replacement must match the
// current length exactly; there is no implicit resize.
func (sv *StateVector) UpdateData(data []complex128) error {
	if len(data) != len(sv.data) {
		return fmt.Errorf("%w: update length %d does not match buffer length %d",
			ErrPrecondition, len(data), len(sv.data))
	}
	copy(sv.data, data)
	return nil
}
