package adjoint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-sim/lumen/internal/adjoint"
	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
)

func TestComputeVJP(t *testing.T) {
	jac := [][]float64{
		{1, 2},
		{3, 4},
	}
	dy := []float64{0.5, -1}

	vjp, err := adjoint.ComputeVJP(jac, dy)
	require.NoError(t, err)

	// dy^T . J computed by hand.
	require.Equal(t, []float64{0.5*1 + (-1)*3, 0.5*2 + (-1)*4}, vjp)
}

func TestComputeVJPShapeMismatch(t *testing.T) {
	jac := [][]float64{{1, 2}, {3, 4}}

	_, err := adjoint.ComputeVJP(jac, []float64{1})
	require.ErrorIs(t, err, dispatch.ErrShapeMismatch)

	_, err = adjoint.ComputeVJP([][]float64{{1, 2}, {3}}, []float64{1, 1})
	require.ErrorIs(t, err, dispatch.ErrShapeMismatch)
}

func TestComputeVJPEmpty(t *testing.T) {
	vjp, err := adjoint.ComputeVJP(nil, []float64{1})
	require.NoError(t, err)
	require.Empty(t, vjp)

	vjp, err = adjoint.ComputeVJP([][]float64{{1}}, nil)
	require.NoError(t, err)
	require.Empty(t, vjp)
}

func TestFlattenJacobian(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6},
		adjoint.FlattenJacobian([][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.Empty(t, adjoint.FlattenJacobian(nil))
}

func gradTape(theta0, theta1 float64) *adjoint.Tape {
	return &adjoint.Tape{
		NumQubits: 2,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{theta0}},
			{Gate: gates.RY, Wires: []int{1}, Params: []float64{theta1}},
		},
		Observables: []adjoint.Observable{
			adjoint.PauliObservable(gates.PauliZ, 0),
			adjoint.PauliObservable(gates.PauliZ, 1),
		},
		TrainableParams: []int{0, 1},
	}
}

func TestVectorJacobianProductMatchesContraction(t *testing.T) {
	e := newEngine(t)
	tape := gradTape(0.7, -0.2)
	dy := []float64{0.25, -1.5}

	vjp, err := e.VectorJacobianProduct(tape, dy)
	require.NoError(t, err)

	jac, err := e.Jacobian(tape)
	require.NoError(t, err)
	want, err := adjoint.ComputeVJP(jac, dy)
	require.NoError(t, err)

	require.Len(t, vjp, 2)
	for j := range want {
		require.InDelta(t, want[j], vjp[j], tol)
	}

	// Cross-check against the analytic diagonal Jacobian.
	require.InDelta(t, 0.25*-math.Sin(0.7), vjp[0], tol)
	require.InDelta(t, -1.5*-math.Sin(-0.2), vjp[1], tol)
}

func TestVectorJacobianProductZeroGradient(t *testing.T) {
	e := newEngine(t)
	tape := gradTape(0.7, -0.2)

	vjp, err := e.VectorJacobianProduct(tape, []float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, vjp)
}

func TestVectorJacobianProductDegenerate(t *testing.T) {
	e := newEngine(t)

	// No trainable parameters.
	tape := gradTape(0.7, -0.2)
	tape.TrainableParams = nil
	vjp, err := e.VectorJacobianProduct(tape, []float64{1, 1})
	require.NoError(t, err)
	require.Empty(t, vjp)

	// Empty upstream gradient.
	tape = gradTape(0.7, -0.2)
	vjp, err = e.VectorJacobianProduct(tape, nil)
	require.NoError(t, err)
	require.Empty(t, vjp)

	// Wrong upstream gradient length.
	_, err = e.VectorJacobianProduct(tape, []float64{1})
	require.ErrorIs(t, err, dispatch.ErrShapeMismatch)
}

func TestVJPFuncDefersComputation(t *testing.T) {
	e := newEngine(t)
	tape := gradTape(1.1, 0.4)
	dy := []float64{1, 0}

	fn := e.VJPFunc(tape, dy)
	want, err := e.VectorJacobianProduct(tape, dy)
	require.NoError(t, err)

	got, err := fn()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for j := range want {
		require.InDelta(t, want[j], got[j], tol)
	}
}

func TestVJPFuncShortcuts(t *testing.T) {
	e := newEngine(t)

	tape := gradTape(1.1, 0.4)
	tape.TrainableParams = nil
	got, err := e.VJPFunc(tape, []float64{1, 1})()
	require.NoError(t, err)
	require.Empty(t, got)

	tape = gradTape(1.1, 0.4)
	got, err = e.VJPFunc(tape, []float64{0, 0})()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, got)
}
