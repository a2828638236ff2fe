package gates

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Dense matrices for every gate, flattened row-major. These back the
// permutation-index kernel variant and the direct matrix-application tests.

// Matrix returns the gate's dense unitary for the given parameters, flattened
// row-major with 4^NumWires complex entries. The slice is freshly allocated on
// every call.
func Matrix(op GateOperation, params []float64) ([]complex128, error) {
	if got, want := len(params), op.NumParams(); got != want {
		return nil, fmt.Errorf("gate %s expects %d parameters, got %d", op, want, got)
	}

	switch op {
	case Identity:
		return []complex128{1, 0, 0, 1}, nil
	case PauliX:
		return []complex128{0, 1, 1, 0}, nil
	case PauliY:
		return []complex128{0, -1i, 1i, 0}, nil
	case PauliZ:
		return []complex128{1, 0, 0, -1}, nil
	case Hadamard:
		h := complex(1/math.Sqrt2, 0)
		return []complex128{h, h, h, -h}, nil
	case S:
		return []complex128{1, 0, 0, 1i}, nil
	case T:
		return []complex128{1, 0, 0, cmplx.Exp(1i * math.Pi / 4)}, nil
	case PhaseShift:
		return []complex128{1, 0, 0, phase(params[0])}, nil
	case RX:
		c, s := halfAngle(params[0])
		return []complex128{c, -1i * s, -1i * s, c}, nil
	case RY:
		c, s := halfAngle(params[0])
		return []complex128{c, -s, s, c}, nil
	case RZ:
		e := phase(params[0] / 2)
		return []complex128{cmplx.Conj(e), 0, 0, e}, nil
	case Rot:
		return rotMatrix(params[0], params[1], params[2]), nil
	case CNOT:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		}, nil
	case CY:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, -1i,
			0, 0, 1i, 0,
		}, nil
	case CZ:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, -1,
		}, nil
	case SWAP:
		return []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}, nil
	case ControlledPhaseShift:
		return []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, phase(params[0]),
		}, nil
	case CRX:
		c, s := halfAngle(params[0])
		return controlledBlock([]complex128{c, -1i * s, -1i * s, c}), nil
	case CRY:
		c, s := halfAngle(params[0])
		return controlledBlock([]complex128{c, -s, s, c}), nil
	case CRZ:
		e := phase(params[0] / 2)
		return controlledBlock([]complex128{cmplx.Conj(e), 0, 0, e}), nil
	case IsingXX:
		c, s := halfAngle(params[0])
		return []complex128{
			c, 0, 0, -1i * s,
			0, c, -1i * s, 0,
			0, -1i * s, c, 0,
			-1i * s, 0, 0, c,
		}, nil
	case IsingYY:
		c, s := halfAngle(params[0])
		return []complex128{
			c, 0, 0, 1i * s,
			0, c, -1i * s, 0,
			0, -1i * s, c, 0,
			1i * s, 0, 0, c,
		}, nil
	case IsingZZ:
		e := phase(params[0] / 2)
		ec := cmplx.Conj(e)
		return []complex128{
			ec, 0, 0, 0,
			0, e, 0, 0,
			0, 0, e, 0,
			0, 0, 0, ec,
		}, nil
	case Toffoli:
		m := identityMatrix(8)
		m[6*8+6], m[6*8+7] = 0, 1
		m[7*8+6], m[7*8+7] = 1, 0
		return m, nil
	case CSWAP:
		m := identityMatrix(8)
		m[5*8+5], m[5*8+6] = 0, 1
		m[6*8+5], m[6*8+6] = 1, 0
		return m, nil
	default:
		return nil, fmt.Errorf("no dense matrix defined for gate %s", op)
	}
}

// ConjTranspose returns the conjugate transpose of a dim x dim row-major
// matrix. Applying it realizes the inverse of a unitary gate.
func ConjTranspose(matrix []complex128, dim int) []complex128 {
	out := make([]complex128, len(matrix))
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out[c*dim+r] = cmplx.Conj(matrix[r*dim+c])
		}
	}
	return out
}

func phase(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}

func halfAngle(theta float64) (c, s complex128) {
	return complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
}

// rotMatrix builds Rot(phi, theta, omega) = RZ(omega) RY(theta) RZ(phi).
func rotMatrix(phi, theta, omega float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{
		phase(-(phi + omega) / 2) * c, -phase((phi - omega) / 2) * s,
		phase(-(phi - omega) / 2) * s, phase((phi + omega) / 2) * c,
	}
}

// controlledBlock embeds a 2x2 target matrix into the control-set subspace of
// a 4x4 two-qubit matrix.
func controlledBlock(target []complex128) []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, target[0], target[1],
		0, 0, target[2], target[3],
	}
}

func identityMatrix(dim int) []complex128 {
	m := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return m
}
