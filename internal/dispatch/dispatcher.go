// Package dispatch resolves abstract gate, generator and matrix operations to
// registered numerical kernels and invokes them against an amplitude buffer.
//
// A Dispatcher is constructed explicitly and populated exactly once, before
// first use, by a kernel package's registration entry point. After that it is
// read-only and safe for concurrent lookups without locking. Registering the
// same (operation, variant) key twice is a programming error and panics.
package dispatch

import (
	"fmt"

	"github.com/lumen-sim/lumen/internal/gates"
)

// Variant selects among interchangeable kernel implementations of the same
// operation.
type Variant int

// Kernel implementation variants.
const (
	// VariantLM uses per-gate bit-twiddling loops over amplitude pairs.
	VariantLM Variant = iota
	// VariantPI applies the gate's dense matrix through permutation indices.
	VariantPI
)

// String returns the variant's short name.
func (v Variant) String() string {
	switch v {
	case VariantLM:
		return "LM"
	case VariantPI:
		return "PI"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// GateFunc applies one gate to the amplitude buffer in place.
type GateFunc func(data []complex128, numQubits int, wires []int, inverse bool, params []float64)

// GeneratorFunc mutates the buffer into G|psi> for the gate's Hermitian
// generator G and returns the generator's scale factor.
type GeneratorFunc func(data []complex128, numQubits int, wires []int, adjoint bool) float64

// MatrixFunc applies an arbitrary dense unitary, flattened row-major, to the
// given wires.
type MatrixFunc func(data []complex128, numQubits int, matrix []complex128, wires []int, inverse bool)

type gateKey struct {
	op      gates.GateOperation
	variant Variant
}

type generatorKey struct {
	op      gates.GeneratorOperation
	variant Variant
}

type matrixKey struct {
	op      gates.MatrixOperation
	variant Variant
}

// Dispatcher is the kernel registry and dispatch engine.
type Dispatcher struct {
	gateKernels      map[gateKey]GateFunc
	generatorKernels map[generatorKey]GeneratorFunc
	matrixKernels    map[matrixKey]MatrixFunc
}

// New creates an empty dispatcher. Kernel packages populate it through the
// Register methods before any Apply call.
func New() *Dispatcher {
	return &Dispatcher{
		gateKernels:      make(map[gateKey]GateFunc),
		generatorKernels: make(map[generatorKey]GeneratorFunc),
		matrixKernels:    make(map[matrixKey]MatrixFunc),
	}
}

// RegisterGate binds a gate kernel to (op, variant).
func (d *Dispatcher) RegisterGate(op gates.GateOperation, variant Variant, fn GateFunc) {
	if fn == nil {
		panic(fmt.Sprintf("dispatch: nil kernel for gate %s variant %s", op, variant))
	}
	key := gateKey{op, variant}
	if _, exists := d.gateKernels[key]; exists {
		panic(fmt.Sprintf("dispatch: gate %s already registered for variant %s", op, variant))
	}
	d.gateKernels[key] = fn
}

// RegisterGenerator binds a generator kernel to (op, variant).
func (d *Dispatcher) RegisterGenerator(op gates.GeneratorOperation, variant Variant, fn GeneratorFunc) {
	if fn == nil {
		panic(fmt.Sprintf("dispatch: nil kernel for generator %s variant %s", op, variant))
	}
	key := generatorKey{op, variant}
	if _, exists := d.generatorKernels[key]; exists {
		panic(fmt.Sprintf("dispatch: generator %s already registered for variant %s", op, variant))
	}
	d.generatorKernels[key] = fn
}

// RegisterMatrix binds a matrix kernel to (arity class, variant).
func (d *Dispatcher) RegisterMatrix(op gates.MatrixOperation, variant Variant, fn MatrixFunc) {
	if fn == nil {
		panic(fmt.Sprintf("dispatch: nil kernel for matrix class %s variant %s", op, variant))
	}
	key := matrixKey{op, variant}
	if _, exists := d.matrixKernels[key]; exists {
		panic(fmt.Sprintf("dispatch: matrix class %s already registered for variant %s", op, variant))
	}
	d.matrixKernels[key] = fn
}

// IsGateRegistered reports whether a gate kernel exists for (op, variant).
func (d *Dispatcher) IsGateRegistered(op gates.GateOperation, variant Variant) bool {
	_, ok := d.gateKernels[gateKey{op, variant}]
	return ok
}

// IsGeneratorRegistered reports whether a generator kernel exists for (op, variant).
func (d *Dispatcher) IsGeneratorRegistered(op gates.GeneratorOperation, variant Variant) bool {
	_, ok := d.generatorKernels[generatorKey{op, variant}]
	return ok
}

// IsMatrixRegistered reports whether a matrix kernel exists for (class, variant).
func (d *Dispatcher) IsMatrixRegistered(op gates.MatrixOperation, variant Variant) bool {
	_, ok := d.matrixKernels[matrixKey{op, variant}]
	return ok
}

// ApplyOperation applies a single gate to the buffer using the kernel
// registered for (op, variant). The buffer is left untouched when any
// validation or lookup fails.
func (d *Dispatcher) ApplyOperation(variant Variant, data []complex128, numQubits int,
	op gates.GateOperation, wires []int, inverse bool, params []float64) error {
	fn, ok := d.gateKernels[gateKey{op, variant}]
	if !ok {
		return fmt.Errorf("%w: gate %s has no kernel for variant %s", ErrNotRegistered, op, variant)
	}
	if err := validateBuffer(data, numQubits); err != nil {
		return err
	}
	if err := validateWires(numQubits, wires, op.NumWires(), op.String()); err != nil {
		return err
	}
	if len(params) != op.NumParams() {
		return fmt.Errorf("%w: gate %s expects %d parameters, got %d",
			ErrShapeMismatch, op, op.NumParams(), len(params))
	}
	fn(data, numQubits, wires, inverse, params)
	return nil
}

// ApplyOperationByName resolves a gate name and applies it. Name dispatch and
// id dispatch route through the same kernel and produce identical output.
func (d *Dispatcher) ApplyOperationByName(variant Variant, data []complex128, numQubits int,
	name string, wires []int, inverse bool, params []float64) error {
	op, ok := gates.GateByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown gate %q", ErrNotRegistered, name)
	}
	return d.ApplyOperation(variant, data, numQubits, op, wires, inverse, params)
}

// ApplyOperations applies a batch of gates in order. ops, wires and inverse
// must have equal lengths; params may be nil for an all non-parametric batch,
// otherwise it must match too. Entries already applied before a failure are
// not rolled back.
func (d *Dispatcher) ApplyOperations(variant Variant, data []complex128, numQubits int,
	ops []gates.GateOperation, wires [][]int, inverse []bool, params [][]float64) error {
	n := len(ops)
	if len(wires) != n || len(inverse) != n || (params != nil && len(params) != n) {
		return fmt.Errorf("%w: operations, wires, inverses and parameters must have equal length",
			ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		var p []float64
		if params != nil {
			p = params[i]
		}
		if err := d.ApplyOperation(variant, data, numQubits, ops[i], wires[i], inverse[i], p); err != nil {
			return fmt.Errorf("batch operation %d (%s): %w", i, ops[i], err)
		}
	}
	return nil
}

// ApplyOperationsByName is the name-resolved form of ApplyOperations.
func (d *Dispatcher) ApplyOperationsByName(variant Variant, data []complex128, numQubits int,
	names []string, wires [][]int, inverse []bool, params [][]float64) error {
	n := len(names)
	if len(wires) != n || len(inverse) != n || (params != nil && len(params) != n) {
		return fmt.Errorf("%w: operations, wires, inverses and parameters must have equal length",
			ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		var p []float64
		if params != nil {
			p = params[i]
		}
		if err := d.ApplyOperationByName(variant, data, numQubits, names[i], wires[i], inverse[i], p); err != nil {
			return fmt.Errorf("batch operation %d (%s): %w", i, names[i], err)
		}
	}
	return nil
}

// ApplyMatrix applies an arbitrary dense unitary, flattened row-major, to the
// given wires. The matrix must hold exactly 4^len(wires) entries; the kernel
// class (single-, two- or multi-qubit) is selected by the wire count.
func (d *Dispatcher) ApplyMatrix(variant Variant, data []complex128, numQubits int,
	matrix []complex128, wires []int, inverse bool) error {
	class := gates.MatrixOpForWires(len(wires))
	fn, ok := d.matrixKernels[matrixKey{class, variant}]
	if !ok {
		return fmt.Errorf("%w: matrix class %s has no kernel for variant %s",
			ErrNotRegistered, class, variant)
	}
	if err := validateBuffer(data, numQubits); err != nil {
		return err
	}
	if err := validateWires(numQubits, wires, len(wires), class.String()); err != nil {
		return err
	}
	if want := 1 << (2 * len(wires)); len(matrix) != want {
		return fmt.Errorf("%w: matrix has %d entries, want %d for %d wires",
			ErrShapeMismatch, len(matrix), want, len(wires))
	}
	fn(data, numQubits, matrix, wires, inverse)
	return nil
}

// ApplyGenerator applies the Hermitian generator of a parametric gate and
// returns its scale factor. Used only by the differentiation engine.
func (d *Dispatcher) ApplyGenerator(variant Variant, data []complex128, numQubits int,
	op gates.GeneratorOperation, wires []int, adjoint bool) (float64, error) {
	fn, ok := d.generatorKernels[generatorKey{op, variant}]
	if !ok {
		return 0, fmt.Errorf("%w: generator %s has no kernel for variant %s",
			ErrNotRegistered, op, variant)
	}
	if err := validateBuffer(data, numQubits); err != nil {
		return 0, err
	}
	if err := validateWires(numQubits, wires, op.NumWires(), op.String()); err != nil {
		return 0, err
	}
	return fn(data, numQubits, wires, adjoint), nil
}

// ApplyGeneratorByName resolves a generator name and applies it.
func (d *Dispatcher) ApplyGeneratorByName(variant Variant, data []complex128, numQubits int,
	name string, wires []int, adjoint bool) (float64, error) {
	op, ok := gates.GeneratorByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown generator %q", ErrNotRegistered, name)
	}
	return d.ApplyGenerator(variant, data, numQubits, op, wires, adjoint)
}

func validateBuffer(data []complex128, numQubits int) error {
	if numQubits < 0 || len(data) != 1<<numQubits {
		return fmt.Errorf("%w: buffer length %d does not match %d qubits",
			ErrShapeMismatch, len(data), numQubits)
	}
	return nil
}

func validateWires(numQubits int, wires []int, arity int, what string) error {
	if len(wires) != arity {
		return fmt.Errorf("%w: %s acts on %d wires, got %d", ErrInvalidWires, what, arity, len(wires))
	}
	seen := 0
	for _, w := range wires {
		if w < 0 || w >= numQubits {
			return fmt.Errorf("%w: wire %d out of range [0, %d)", ErrInvalidWires, w, numQubits)
		}
		bit := 1 << w
		if seen&bit != 0 {
			return fmt.Errorf("%w: wire %d repeated", ErrInvalidWires, w)
		}
		seen |= bit
	}
	return nil
}
