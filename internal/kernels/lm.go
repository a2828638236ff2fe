package kernels

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
	"github.com/lumen-sim/lumen/internal/parallel"
)

// LM variant: specialized bit-twiddling loops per gate. Every loop partitions
// the index space so that each iteration owns the amplitudes it writes;
// parallel ranges therefore never contend.

func (e *engine) lmGateFunc(op gates.GateOperation) dispatch.GateFunc {
	switch op {
	case gates.Identity:
		return func(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {}
	case gates.PauliX:
		return e.applyPauliX
	case gates.PauliY:
		return e.applyPauliY
	case gates.PauliZ:
		return e.applyPauliZ
	case gates.Hadamard:
		return e.applyHadamard
	case gates.S:
		return e.applyS
	case gates.T:
		return e.applyT
	case gates.PhaseShift:
		return e.applyPhaseShift
	case gates.RX:
		return e.applyRX
	case gates.RY:
		return e.applyRY
	case gates.RZ:
		return e.applyRZ
	case gates.Rot:
		return e.applyRot
	case gates.CNOT:
		return e.applyCNOT
	case gates.CY:
		return e.applyCY
	case gates.CZ:
		return e.applyCZ
	case gates.SWAP:
		return e.applySWAP
	case gates.ControlledPhaseShift:
		return e.applyControlledPhaseShift
	case gates.CRX:
		return e.applyCRX
	case gates.CRY:
		return e.applyCRY
	case gates.CRZ:
		return e.applyCRZ
	case gates.IsingXX:
		return e.applyIsingXX
	case gates.IsingYY:
		return e.applyIsingYY
	case gates.IsingZZ:
		return e.applyIsingZZ
	case gates.Toffoli:
		return e.applyToffoli
	case gates.CSWAP:
		return e.applyCSWAP
	default:
		panic(fmt.Sprintf("kernels: no LM kernel for gate %s", op))
	}
}

// forEach runs f over every basis index. Used by diagonal gates.
func (e *engine) forEach(data []complex128, f func(i int)) {
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, e.cfg)
}

// forPairs runs f over every amplitude pair split by the wire's bit. f sees
// the pair (i0, i1) with the wire bit clear and set respectively, and owns
// both amplitudes.
func (e *engine) forPairs(data []complex128, numQubits, wire int, f func(i0, i1 int)) {
	mask := wireMask(numQubits, wire)
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			if i&mask == 0 {
				f(i, i|mask)
			}
		}
	}, e.cfg)
}

func (e *engine) applyPauliX(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		data[i0], data[i1] = data[i1], data[i0]
	})
}

func (e *engine) applyPauliY(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		data[i0], data[i1] = -1i*data[i1], 1i*data[i0]
	})
}

func (e *engine) applyPauliZ(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask != 0 {
			data[i] = -data[i]
		}
	})
}

func (e *engine) applyHadamard(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	h := complex(1/math.Sqrt2, 0)
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		v0, v1 := data[i0], data[i1]
		data[i0] = h * (v0 + v1)
		data[i1] = h * (v0 - v1)
	})
}

func (e *engine) applyS(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	factor := complex128(1i)
	if inverse {
		factor = -1i
	}
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask != 0 {
			data[i] *= factor
		}
	})
}

func (e *engine) applyT(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	factor := cmplx.Exp(1i * math.Pi / 4)
	if inverse {
		factor = cmplx.Conj(factor)
	}
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask != 0 {
			data[i] *= factor
		}
	})
}

func (e *engine) applyPhaseShift(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	factor := cmplx.Exp(complex(0, theta))
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask != 0 {
			data[i] *= factor
		}
	})
}

func (e *engine) applyRX(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		v0, v1 := data[i0], data[i1]
		data[i0] = c*v0 + s*v1
		data[i1] = s*v0 + c*v1
	})
}

func (e *engine) applyRY(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		v0, v1 := data[i0], data[i1]
		data[i0] = c*v0 - s*v1
		data[i1] = s*v0 + c*v1
	})
}

func (e *engine) applyRZ(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	pos := cmplx.Exp(complex(0, theta/2))
	neg := cmplx.Conj(pos)
	mask := wireMask(numQubits, wires[0])
	e.forEach(data, func(i int) {
		if i&mask != 0 {
			data[i] *= pos
		} else {
			data[i] *= neg
		}
	})
}

// applyRot composes RZ(omega) RY(theta) RZ(phi) as one 2x2 application.
func (e *engine) applyRot(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	m, err := gates.Matrix(gates.Rot, params)
	if err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
	if inverse {
		m = gates.ConjTranspose(m, 2)
	}
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		v0, v1 := data[i0], data[i1]
		data[i0] = m[0]*v0 + m[1]*v1
		data[i1] = m[2]*v0 + m[3]*v1
	})
}

func (e *engine) applyCNOT(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control != 0 && i&target == 0 {
			j := i | target
			data[i], data[j] = data[j], data[i]
		}
	})
}

func (e *engine) applyCY(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control != 0 && i&target == 0 {
			j := i | target
			data[i], data[j] = -1i*data[j], 1i*data[i]
		}
	})
}

func (e *engine) applyCZ(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	both := wireMask(numQubits, wires[0]) | wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&both == both {
			data[i] = -data[i]
		}
	})
}

func (e *engine) applySWAP(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&m0 != 0 && i&m1 == 0 {
			j := i&^m0 | m1
			data[i], data[j] = data[j], data[i]
		}
	})
}

func (e *engine) applyControlledPhaseShift(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	factor := cmplx.Exp(complex(0, theta))
	both := wireMask(numQubits, wires[0]) | wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&both == both {
			data[i] *= factor
		}
	})
}

func (e *engine) applyCRX(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control != 0 && i&target == 0 {
			j := i | target
			v0, v1 := data[i], data[j]
			data[i] = c*v0 + s*v1
			data[j] = s*v0 + c*v1
		}
	})
}

func (e *engine) applyCRY(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control != 0 && i&target == 0 {
			j := i | target
			v0, v1 := data[i], data[j]
			data[i] = c*v0 - s*v1
			data[j] = s*v0 + c*v1
		}
	})
}

func (e *engine) applyCRZ(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	pos := cmplx.Exp(complex(0, theta/2))
	neg := cmplx.Conj(pos)
	control := wireMask(numQubits, wires[0])
	target := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if i&control != 0 {
			if i&target != 0 {
				data[i] *= pos
			} else {
				data[i] *= neg
			}
		}
	})
}

func (e *engine) applyIsingXX(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	both := m0 | m1
	// XX couples i with i^both; indices with wires[0] clear represent pairs.
	e.forEach(data, func(i int) {
		if i&m0 == 0 {
			j := i ^ both
			vi, vj := data[i], data[j]
			data[i] = c*vi + s*vj
			data[j] = s*vi + c*vj
		}
	})
}

func (e *engine) applyIsingYY(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, math.Sin(theta/2))
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	both := m0 | m1
	// YY couples |00>,|11> with +i sin and |01>,|10> with -i sin.
	e.forEach(data, func(i int) {
		if i&m0 == 0 {
			j := i ^ both
			coupling := s
			if i&m1 != 0 {
				coupling = -s
			}
			vi, vj := data[i], data[j]
			data[i] = c*vi + coupling*vj
			data[j] = coupling*vi + c*vj
		}
	})
}

func (e *engine) applyIsingZZ(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	theta := invertAngle(params[0], inverse)
	pos := cmplx.Exp(complex(0, theta/2))
	neg := cmplx.Conj(pos)
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	e.forEach(data, func(i int) {
		if (i&m0 != 0) == (i&m1 != 0) {
			data[i] *= neg
		} else {
			data[i] *= pos
		}
	})
}

func (e *engine) applyToffoli(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	controls := wireMask(numQubits, wires[0]) | wireMask(numQubits, wires[1])
	target := wireMask(numQubits, wires[2])
	e.forEach(data, func(i int) {
		if i&controls == controls && i&target == 0 {
			j := i | target
			data[i], data[j] = data[j], data[i]
		}
	})
}

func (e *engine) applyCSWAP(data []complex128, numQubits int, wires []int, inverse bool, params []float64) {
	control := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	m2 := wireMask(numQubits, wires[2])
	e.forEach(data, func(i int) {
		if i&control != 0 && i&m1 != 0 && i&m2 == 0 {
			j := i&^m1 | m2
			data[i], data[j] = data[j], data[i]
		}
	})
}

// invertAngle realizes the adjoint of a rotation by negating its angle.
func invertAngle(theta float64, inverse bool) float64 {
	if inverse {
		return -theta
	}
	return theta
}
