package adjoint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-sim/lumen/internal/adjoint"
	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
	"github.com/lumen-sim/lumen/internal/kernels"
	"github.com/lumen-sim/lumen/internal/parallel"
)

const tol = 1e-10

func newEngine(t *testing.T) *adjoint.Engine {
	t.Helper()
	d := dispatch.New()
	kernels.RegisterAll(d, parallel.Serial())
	return adjoint.NewEngine(d, dispatch.VariantLM, parallel.Serial())
}

func TestJacobianRXExpvalZ(t *testing.T) {
	e := newEngine(t)
	theta := 0.683

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{theta}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)
	require.Len(t, jac, 1)
	require.Len(t, jac[0], 1)

	// <Z> = cos(theta), so d<Z>/dtheta = -sin(theta).
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianRYExpvalZ(t *testing.T) {
	e := newEngine(t)
	theta := -1.274

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RY, Wires: []int{0}, Params: []float64{theta}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianPhaseShiftOnPlusState(t *testing.T) {
	e := newEngine(t)
	theta := 0.412

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.Hadamard, Wires: []int{0}},
			{Gate: gates.PhaseShift, Wires: []int{0}, Params: []float64{theta}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliX, 0)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)

	// <X> = cos(theta) on the phase-shifted |+> state.
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianTwoParamsTwoObservables(t *testing.T) {
	e := newEngine(t)
	theta0, theta1 := 0.9, -0.35

	jac, err := e.Jacobian(&adjoint.Tape{
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
	})
	require.NoError(t, err)

	// The wires are independent, so the Jacobian is diagonal.
	require.InDelta(t, -math.Sin(theta0), jac[0][0], tol)
	require.InDelta(t, 0, jac[0][1], tol)
	require.InDelta(t, 0, jac[1][0], tol)
	require.InDelta(t, -math.Sin(theta1), jac[1][1], tol)
}

func TestJacobianTrainableSubset(t *testing.T) {
	e := newEngine(t)
	a, b := 0.3, 0.95

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{a}},
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{b}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{1}, // only the second rotation is trainable
	})
	require.NoError(t, err)
	require.Len(t, jac[0], 1)

	// <Z> = cos(a+b); only d/db is requested.
	require.InDelta(t, -math.Sin(a+b), jac[0][0], tol)
}

func TestJacobianInverseOperation(t *testing.T) {
	e := newEngine(t)
	theta := 0.77

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{theta}, Inverse: true},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)

	// RX(theta)^dagger = RX(-theta), so <Z> = cos(theta) still and the
	// derivative keeps its sign.
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianControlledRotation(t *testing.T) {
	e := newEngine(t)
	theta := 1.05

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 2,
		Operations: []adjoint.Operation{
			{Gate: gates.PauliX, Wires: []int{0}},
			{Gate: gates.CRX, Wires: []int{0, 1}, Params: []float64{theta}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 1)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)

	// With the control set, CRX acts as RX on the target.
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianIsingXX(t *testing.T) {
	e := newEngine(t)
	theta := 0.58

	jac, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 2,
		Operations: []adjoint.Operation{
			{Gate: gates.IsingXX, Wires: []int{0, 1}, Params: []float64{theta}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{0},
	})
	require.NoError(t, err)

	// IsingXX|00> = cos(theta/2)|00> - i sin(theta/2)|11>, so <Z_0> = cos(theta).
	require.InDelta(t, -math.Sin(theta), jac[0][0], tol)
}

func TestJacobianRejectsMultiParamGates(t *testing.T) {
	e := newEngine(t)

	_, err := e.Jacobian(&adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.Rot, Wires: []int{0}, Params: []float64{0.1, 0.2, 0.3}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: []int{0},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "adjoint")
}

func TestJacobianDegenerateShapes(t *testing.T) {
	e := newEngine(t)
	tape := &adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{0.5}},
		},
		Observables:     []adjoint.Observable{adjoint.PauliObservable(gates.PauliZ, 0)},
		TrainableParams: nil,
	}

	jac, err := e.Jacobian(tape)
	require.NoError(t, err)
	require.Len(t, jac, 1)
	require.Empty(t, jac[0])

	tape.TrainableParams = []int{0}
	tape.Observables = nil
	jac, err = e.Jacobian(tape)
	require.NoError(t, err)
	require.Empty(t, jac)
}

func TestJacobianVariantsAgree(t *testing.T) {
	d := dispatch.New()
	kernels.RegisterAll(d, parallel.Serial())

	tape := &adjoint.Tape{
		NumQubits: 2,
		Operations: []adjoint.Operation{
			{Gate: gates.Hadamard, Wires: []int{0}},
			{Gate: gates.CRY, Wires: []int{0, 1}, Params: []float64{0.6}},
			{Gate: gates.IsingZZ, Wires: []int{0, 1}, Params: []float64{-0.4}},
		},
		Observables: []adjoint.Observable{
			adjoint.PauliObservable(gates.PauliZ, 0),
			adjoint.PauliObservable(gates.PauliX, 1),
		},
		TrainableParams: []int{0, 1},
	}

	lm, err := adjoint.NewEngine(d, dispatch.VariantLM, parallel.Serial()).Jacobian(tape)
	require.NoError(t, err)
	pi, err := adjoint.NewEngine(d, dispatch.VariantPI, parallel.Serial()).Jacobian(tape)
	require.NoError(t, err)

	for i := range lm {
		for j := range lm[i] {
			require.InDelta(t, lm[i][j], pi[i][j], tol, "cell (%d,%d)", i, j)
		}
	}
}

func TestExpval(t *testing.T) {
	e := newEngine(t)
	theta := 0.83

	tape := &adjoint.Tape{
		NumQubits: 1,
		Operations: []adjoint.Operation{
			{Gate: gates.RX, Wires: []int{0}, Params: []float64{theta}},
		},
	}

	// Evolve a state through the tape, then measure.
	sv, err := e.Evolve(tape)
	require.NoError(t, err)
	got, err := e.Expval(adjoint.PauliObservable(gates.PauliZ, 0), sv)
	require.NoError(t, err)
	require.InDelta(t, math.Cos(theta), got, tol)
}
