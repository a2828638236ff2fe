package adjoint

import (
	"fmt"

	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/parallel"
	"github.com/lumen-sim/lumen/internal/statevector"
)

// Engine drives a dispatcher through the forward and backward passes of the
// adjoint differentiation algorithm.
type Engine struct {
	d       *dispatch.Dispatcher
	variant dispatch.Variant
	cfg     parallel.Config
}

// NewEngine creates an adjoint engine on top of a populated dispatcher.
func NewEngine(d *dispatch.Dispatcher, variant dispatch.Variant, cfg parallel.Config) *Engine {
	return &Engine{d: d, variant: variant, cfg: cfg}
}

// Jacobian computes the matrix of d<O_i>/d(theta_j) for the tape's
// observables (rows, in tape order) and trainable parameters (columns,
// ascending index order).
//
// The algorithm evolves one ket through the full circuit, prepares one bra
// per observable by applying the observable to a copy of the evolved ket,
// then unwinds the circuit operation by operation. At each trainable
// parametric operation the generator is applied to a scratch copy of the ket
// and the derivative follows from the bra/ket inner product and the
// generator's scale factor.
func (e *Engine) Jacobian(tape *Tape) ([][]float64, error) {
	numObs := len(tape.Observables)
	numTrain := len(tape.TrainableParams)

	jac := make([][]float64, numObs)
	for i := range jac {
		jac[i] = make([]float64, numTrain)
	}
	if numObs == 0 || numTrain == 0 {
		return jac, nil
	}

	// Forward pass.
	ket, err := e.Evolve(tape)
	if err != nil {
		return nil, err
	}

	// Bra initialization: one copy per observable with its operator applied.
	// Observables never share mutable state, so they evolve in parallel.
	bras := make([]*statevector.StateVector, numObs)
	obsErrs := make([]error, numObs)
	parallel.For(numObs, func(i int) {
		bra := ket.Clone()
		for _, op := range tape.Observables[i].Ops {
			if err := e.apply(bra, op, false); err != nil {
				obsErrs[i] = err
				return
			}
		}
		bras[i] = bra
	}, e.cfg)
	for i, err := range obsErrs {
		if err != nil {
			return nil, fmt.Errorf("observable %d: %w", i, err)
		}
	}

	// Backward pass: unwind operations in reverse, filling Jacobian cells for
	// trainable parameters as they are encountered.
	paramIdx := tape.NumParametricOps() - 1
	tpPos := numTrain - 1
	for k := len(tape.Operations) - 1; k >= 0; k-- {
		op := tape.Operations[k]

		if err := e.apply(ket, op, true); err != nil {
			return nil, fmt.Errorf("backward pass operation %d: %w", k, err)
		}
		parallel.For(numObs, func(i int) {
			obsErrs[i] = e.apply(bras[i], op, true)
		}, e.cfg)
		for i, err := range obsErrs {
			if err != nil {
				return nil, fmt.Errorf("backward pass operation %d, observable %d: %w", k, i, err)
			}
		}

		if !op.Gate.Parametric() {
			continue
		}
		if tpPos >= 0 && tape.TrainableParams[tpPos] == paramIdx {
			if op.Gate.NumParams() > 1 {
				return nil, fmt.Errorf("gate %s with %d parameters cannot be differentiated with the adjoint method",
					op.Gate, op.Gate.NumParams())
			}
			gen, ok := op.Gate.Generator()
			if !ok {
				return nil, fmt.Errorf("gate %s has no generator", op.Gate)
			}

			mu := ket.Clone()
			scale, err := e.d.ApplyGenerator(e.variant, mu.Data(), tape.NumQubits, gen, op.Wires, false)
			if err != nil {
				return nil, fmt.Errorf("generator for operation %d: %w", k, err)
			}
			if op.Inverse {
				// d/dtheta of the adjoint gate flips the derivative sign.
				scale = -scale
			}

			col := tpPos
			parallel.For(numObs, func(i int) {
				jac[i][col] = -2 * scale * imagInnerProduct(bras[i].Data(), mu.Data())
			}, e.cfg)
			tpPos--
		}
		paramIdx--
	}

	return jac, nil
}

// Evolve replays the tape's operations in order from the |0...0> basis state
// and returns the resulting state.
func (e *Engine) Evolve(tape *Tape) (*statevector.StateVector, error) {
	ket, err := statevector.New(tape.NumQubits)
	if err != nil {
		return nil, err
	}
	for i, op := range tape.Operations {
		if err := e.apply(ket, op, false); err != nil {
			return nil, fmt.Errorf("forward pass operation %d: %w", i, err)
		}
	}
	return ket, nil
}

// Expval returns the expectation value <psi|O|psi> of an observable on a
// state. The imaginary component of the Hermitian form is discarded.
func (e *Engine) Expval(obs Observable, state *statevector.StateVector) (float64, error) {
	applied := state.Clone()
	for _, op := range obs.Ops {
		if err := e.apply(applied, op, false); err != nil {
			return 0, err
		}
	}
	return realInnerProduct(state.Data(), applied.Data()), nil
}

// apply routes one recorded operation through the dispatcher, optionally
// inverted for the unwinding passes.
func (e *Engine) apply(sv *statevector.StateVector, op Operation, undo bool) error {
	inverse := op.Inverse != undo
	return e.d.ApplyOperation(e.variant, sv.Data(), sv.NumQubits(), op.Gate, op.Wires, inverse, op.Params)
}

// realInnerProduct returns Re(<a|b>) under the Hermitian inner product.
func realInnerProduct(a, b []complex128) float64 {
	sum := 0.0
	for i := range a {
		v := a[i]
		w := b[i]
		sum += real(v)*real(w) + imag(v)*imag(w)
	}
	return sum
}

// imagInnerProduct returns Im(<a|b>) under the Hermitian inner product.
func imagInnerProduct(a, b []complex128) float64 {
	sum := 0.0
	for i := range a {
		v := a[i]
		w := b[i]
		sum += real(v)*imag(w) - imag(v)*real(w)
	}
	return sum
}
