package kernels

import (
	"github.com/lumen-sim/lumen/internal/gates"
	"github.com/lumen-sim/lumen/internal/parallel"
)

// Direct dense-matrix application. The dispatcher has already validated the
// matrix size against the wire count; inverses are realized by applying the
// conjugate transpose.

func (e *engine) applySingleQubitMatrix(data []complex128, numQubits int, matrix []complex128, wires []int, inverse bool) {
	m := matrix
	if inverse {
		m = gates.ConjTranspose(matrix, 2)
	}
	e.forPairs(data, numQubits, wires[0], func(i0, i1 int) {
		v0, v1 := data[i0], data[i1]
		data[i0] = m[0]*v0 + m[1]*v1
		data[i1] = m[2]*v0 + m[3]*v1
	})
}

func (e *engine) applyTwoQubitMatrix(data []complex128, numQubits int, matrix []complex128, wires []int, inverse bool) {
	m := matrix
	if inverse {
		m = gates.ConjTranspose(matrix, 4)
	}
	m0 := wireMask(numQubits, wires[0])
	m1 := wireMask(numQubits, wires[1])
	both := m0 | m1
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			if i&both != 0 {
				continue
			}
			i00 := i
			i01 := i | m1
			i10 := i | m0
			i11 := i | both
			v00, v01, v10, v11 := data[i00], data[i01], data[i10], data[i11]
			data[i00] = m[0]*v00 + m[1]*v01 + m[2]*v10 + m[3]*v11
			data[i01] = m[4]*v00 + m[5]*v01 + m[6]*v10 + m[7]*v11
			data[i10] = m[8]*v00 + m[9]*v01 + m[10]*v10 + m[11]*v11
			data[i11] = m[12]*v00 + m[13]*v01 + m[14]*v10 + m[15]*v11
		}
	}, e.cfg)
}

func (e *engine) applyMultiQubitMatrix(data []complex128, numQubits int, matrix []complex128, wires []int, inverse bool) {
	dim := 1 << len(wires)
	m := matrix
	if inverse {
		m = gates.ConjTranspose(matrix, dim)
	}
	targets := wiresMask(numQubits, wires)
	parallel.ForRange(len(data), func(start, end int) {
		// Per-range scratch keeps workers allocation-independent.
		idx := make([]int, dim)
		scratch := make([]complex128, dim)
		for i := start; i < end; i++ {
			if i&targets != 0 {
				continue
			}
			gatherIndices(i, numQubits, wires, idx)
			for r := 0; r < dim; r++ {
				var sum complex128
				row := m[r*dim:]
				for c := 0; c < dim; c++ {
					sum += row[c] * data[idx[c]]
				}
				scratch[r] = sum
			}
			for r := 0; r < dim; r++ {
				data[idx[r]] = scratch[r]
			}
		}
	}, e.cfg)
}
