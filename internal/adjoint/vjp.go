package adjoint

import (
	"fmt"

	"github.com/lumen-sim/lumen/internal/dispatch"
)

// Vector-Jacobian products: dy^T . J, with shortcuts that skip the Jacobian
// entirely for degenerate upstream gradients.

// ComputeVJP contracts an upstream gradient vector dy (length = observables)
// against a Jacobian (observables x parameters), returning one value per
// parameter column. An empty Jacobian or gradient yields an empty result.
func ComputeVJP(jac [][]float64, dy []float64) ([]float64, error) {
	if len(jac) == 0 || len(dy) == 0 {
		return []float64{}, nil
	}
	if len(dy) != len(jac) {
		return nil, fmt.Errorf("%w: gradient-output vector has length %d, Jacobian has %d rows",
			dispatch.ErrShapeMismatch, len(dy), len(jac))
	}

	cols := len(jac[0])
	vjp := make([]float64, cols)
	for i, row := range jac {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: Jacobian row %d has length %d, want %d",
				dispatch.ErrShapeMismatch, i, len(row), cols)
		}
		d := dy[i]
		if d == 0 {
			continue
		}
		for j, v := range row {
			vjp[j] += d * v
		}
	}
	return vjp, nil
}

// FlattenJacobian lays a Jacobian out row-major as a single slice.
func FlattenJacobian(jac [][]float64) []float64 {
	if len(jac) == 0 {
		return []float64{}
	}
	out := make([]float64, 0, len(jac)*len(jac[0]))
	for _, row := range jac {
		out = append(out, row...)
	}
	return out
}

// VectorJacobianProduct computes dy^T . J for the tape without materializing
// the Jacobian when the result is degenerate: no trainable parameters or an
// empty dy produce an empty vector, and an all-zero dy produces a zero vector
// without ever running the adjoint passes.
func (e *Engine) VectorJacobianProduct(tape *Tape, dy []float64) ([]float64, error) {
	numTrain := len(tape.TrainableParams)
	if numTrain == 0 || len(dy) == 0 {
		return []float64{}, nil
	}
	if len(dy) != len(tape.Observables) {
		return nil, fmt.Errorf("%w: gradient-output vector has length %d, tape has %d observables",
			dispatch.ErrShapeMismatch, len(dy), len(tape.Observables))
	}
	if allZero(dy) {
		return make([]float64, numTrain), nil
	}

	jac, err := e.Jacobian(tape)
	if err != nil {
		return nil, err
	}
	return ComputeVJP(jac, dy)
}

// VJPFunc returns a deferred form of VectorJacobianProduct: a zero-argument
// callable that performs the Jacobian build and contraction only when
// invoked. The degenerate shortcuts are preserved and decided eagerly.
func (e *Engine) VJPFunc(tape *Tape, dy []float64) func() ([]float64, error) {
	numTrain := len(tape.TrainableParams)
	if numTrain == 0 || len(dy) == 0 {
		return func() ([]float64, error) { return []float64{}, nil }
	}
	if allZero(dy) {
		return func() ([]float64, error) { return make([]float64, numTrain), nil }
	}
	return func() ([]float64, error) {
		return e.VectorJacobianProduct(tape, dy)
	}
}

func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
