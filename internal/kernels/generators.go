package kernels

import (
	"fmt"

	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
)

// Generator kernels mutate the buffer into G|psi> for the gate's Hermitian
// generator G and return the scale factor the adjoint recurrence multiplies
// into the derivative. Rotations exp(-i theta G / 2) carry scale -0.5; phase
// gates exp(i theta P) carry +1.0. Every generator is Hermitian, so the
// adjoint flag does not change the transform.

const (
	rotationScale = -0.5
	phaseScale    = 1.0
)

func (e *engine) generatorFunc(op gates.GeneratorOperation) dispatch.GeneratorFunc {
	switch op {
	case gates.GenPhaseShift:
		return e.generatorPhaseShift
	case gates.GenRX:
		return e.generatorRX
	case gates.GenRY:
		return e.generatorRY
	case gates.GenRZ:
		return e.generatorRZ
	case gates.GenControlledPhaseShift:
		return e.generatorControlledPhaseShift
	case gates.GenCRX:
		return e.generatorCRX
	case gates.GenCRY:
		return e.generatorCRY
	case gates.GenCRZ:
		return e.generatorCRZ
	case gates.GenIsingXX:
		return e.generatorIsingXX
	case gates.GenIsingYY:
		return e.generatorIsingYY
	case gates.GenIsingZZ:
		return e.generatorIsingZZ
	default:
		panic(fmt.Sprintf("kernels: no generator kernel for %s", op))
	}
}

// generatorPhaseShift projects onto |1><1| of the wire.
func (e *engine) generatorPhaseShift(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask == 0 {
			data[i] = 0
		}
	})
	return phaseScale
}

func (e *engine) generatorRX(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	e.applyPauliX(data, numQubits, wires, false, nil)
	return rotationScale
}

func (e *engine) generatorRY(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	e.applyPauliY(data, numQubits, wires, false, nil)
	return rotationScale
}

func (e *engine) generatorRZ(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	e.applyPauliZ(data, numQubits, wires, false, nil)
	return rotationScale
}

// generatorControlledPhaseShift projects onto |11><11| of the wire pair.
func (e *engine) generatorControlledPhaseShift(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	both := wiresMask(numQubits, wires)
	e.forEach(data, func(i int) {
		if i&both != both {
			data[i] = 0
		}
	})
	return phaseScale
}

// controlledPauli zeroes the control-clear subspace and applies a Pauli to
// the target within the control-set subspace.
func (e *engine) controlledPauli(data []complex128, numQubits int, wires []int,
	pauli func(i0, i1 int)) {
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control == 0 {
			data[i] = 0
			return
		}
		if i&target == 0 {
			pauli(i, i|target)
		}
	})
}

func (e *engine) generatorCRX(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	e.controlledPauli(data, numQubits, wires, func(i0, i1 int) {
		data[i0], data[i1] = data[i1], data[i0]
	})
	return rotationScale
}

func (e *engine) generatorCRY(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	e.controlledPauli(data, numQubits, wires, func(i0, i1 int) {
		data[i0], data[i1] = -1i*data[i1], 1i*data[i0]
	})
	return rotationScale
}

func (e *engine) generatorCRZ(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		switch {
		case i&control == 0:
			data[i] = 0
		case i&target != 0:
			data[i] = -data[i]
		}
	})
	return rotationScale
}

func (e *engine) generatorIsingXX(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	both := m0 | m1
	e.forEach(data, func(i int) {
		if i&m0 == 0 {
			j := i ^ both
			data[i], data[j] = data[j], data[i]
		}
	})
	return rotationScale
}

func (e *engine) generatorIsingYY(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	both := m0 | m1
	// Y(x)Y maps |00> -> -|11>, |11> -> -|00>, |01> -> |10>, |10> -> |01>.
	e.forEach(data, func(i int) {
		if i&m0 == 0 {
			j := i ^ both
			if i&m1 == 0 {
				data[i], data[j] = -data[j], -data[i]
			} else {
				data[i], data[j] = data[j], data[i]
			}
		}
	})
	return rotationScale
}

func (e *engine) generatorIsingZZ(data []complex128, numQubits int, wires []int, adjoint bool) float64 {
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if (i&m0 != 0) != (i&m1 != 0) {
			data[i] = -data[i]
		}
	})
	return rotationScale
}
