// Package gates defines the operation descriptors of the simulator: the gate,
// generator and matrix operation enumerations, their wire arities and
// parameter counts, and the mapping between parametric gates and their
// Hermitian generators.
//
// Descriptors are immutable process-wide constants. Wire 0 addresses the most
// significant bit of a basis-state index, so on three qubits the basis state
// |100> is index 4.
package gates

import "fmt"

// GateOperation identifies a forward-simulation gate.
type GateOperation int

// Supported gate operations.
const (
	Identity GateOperation = iota
	PauliX
	PauliY
	PauliZ
	Hadamard
	S
	T
	PhaseShift
	RX
	RY
	RZ
	Rot
	CNOT
	CY
	CZ
	SWAP
	ControlledPhaseShift
	CRX
	CRY
	CRZ
	IsingXX
	IsingYY
	IsingZZ
	Toffoli
	CSWAP
	numGateOperations // sentinel, keep last
)

// GeneratorOperation identifies the Hermitian generator of a parametric gate.
// Generators are used only by the adjoint differentiation engine.
type GeneratorOperation int

// Supported generator operations.
const (
	GenPhaseShift GeneratorOperation = iota
	GenRX
	GenRY
	GenRZ
	GenControlledPhaseShift
	GenCRX
	GenCRY
	GenCRZ
	GenIsingXX
	GenIsingYY
	GenIsingZZ
	numGeneratorOperations // sentinel, keep last
)

// MatrixOperation classifies direct dense-matrix application by wire arity.
type MatrixOperation int

// Matrix arity classes.
const (
	SingleQubitOp MatrixOperation = iota
	TwoQubitOp
	MultiQubitOp
)

// gateInfo carries the static descriptor of one gate operation.
type gateInfo struct {
	name      string
	numWires  int
	numParams int
}

var gateTable = [numGateOperations]gateInfo{
	Identity:             {"Identity", 1, 0},
	PauliX:               {"PauliX", 1, 0},
	PauliY:               {"PauliY", 1, 0},
	PauliZ:               {"PauliZ", 1, 0},
	Hadamard:             {"Hadamard", 1, 0},
	S:                    {"S", 1, 0},
	T:                    {"T", 1, 0},
	PhaseShift:           {"PhaseShift", 1, 1},
	RX:                   {"RX", 1, 1},
	RY:                   {"RY", 1, 1},
	RZ:                   {"RZ", 1, 1},
	Rot:                  {"Rot", 1, 3},
	CNOT:                 {"CNOT", 2, 0},
	CY:                   {"CY", 2, 0},
	CZ:                   {"CZ", 2, 0},
	SWAP:                 {"SWAP", 2, 0},
	ControlledPhaseShift: {"ControlledPhaseShift", 2, 1},
	CRX:                  {"CRX", 2, 1},
	CRY:                  {"CRY", 2, 1},
	CRZ:                  {"CRZ", 2, 1},
	IsingXX:              {"IsingXX", 2, 1},
	IsingYY:              {"IsingYY", 2, 1},
	IsingZZ:              {"IsingZZ", 2, 1},
	Toffoli:              {"Toffoli", 3, 0},
	CSWAP:                {"CSWAP", 3, 0},
}

var generatorNames = [numGeneratorOperations]string{
	GenPhaseShift:           "GeneratorPhaseShift",
	GenRX:                   "GeneratorRX",
	GenRY:                   "GeneratorRY",
	GenRZ:                   "GeneratorRZ",
	GenControlledPhaseShift: "GeneratorControlledPhaseShift",
	GenCRX:                  "GeneratorCRX",
	GenCRY:                  "GeneratorCRY",
	GenCRZ:                  "GeneratorCRZ",
	GenIsingXX:              "GeneratorIsingXX",
	GenIsingYY:              "GeneratorIsingYY",
	GenIsingZZ:              "GeneratorIsingZZ",
}

// gateToGenerator is the explicit bidirectional mapping between parametric
// gates and their generators. Kept as data rather than derived from naming
// conventions so that a generator whose name does not mirror its gate still
// resolves correctly.
var gateToGenerator = map[GateOperation]GeneratorOperation{
	PhaseShift:           GenPhaseShift,
	RX:                   GenRX,
	RY:                   GenRY,
	RZ:                   GenRZ,
	ControlledPhaseShift: GenControlledPhaseShift,
	CRX:                  GenCRX,
	CRY:                  GenCRY,
	CRZ:                  GenCRZ,
	IsingXX:              GenIsingXX,
	IsingYY:              GenIsingYY,
	IsingZZ:              GenIsingZZ,
}

var generatorToGate = func() map[GeneratorOperation]GateOperation {
	m := make(map[GeneratorOperation]GateOperation, len(gateToGenerator))
	for g, gen := range gateToGenerator {
		m[gen] = g
	}
	return m
}()

var nameToGate = func() map[string]GateOperation {
	m := make(map[string]GateOperation, len(gateTable))
	for op, info := range gateTable {
		m[info.name] = GateOperation(op)
	}
	return m
}()

var nameToGenerator = func() map[string]GeneratorOperation {
	m := make(map[string]GeneratorOperation, len(generatorNames))
	for op, name := range generatorNames {
		m[name] = GeneratorOperation(op)
	}
	return m
}()

// String returns the gate's stable name.
func (op GateOperation) String() string {
	if op < 0 || op >= numGateOperations {
		return fmt.Sprintf("GateOperation(%d)", int(op))
	}
	return gateTable[op].name
}

// NumWires returns the gate's wire arity.
func (op GateOperation) NumWires() int { return gateTable[op].numWires }

// NumParams returns the gate's continuous-parameter count.
func (op GateOperation) NumParams() int { return gateTable[op].numParams }

// Parametric reports whether the gate takes continuous parameters.
func (op GateOperation) Parametric() bool { return gateTable[op].numParams > 0 }

// Generator returns the gate's generator operation. ok is false for
// non-parametric gates and for multi-parameter gates such as Rot, which have
// no single Hermitian generator.
func (op GateOperation) Generator() (GeneratorOperation, bool) {
	gen, ok := gateToGenerator[op]
	return gen, ok
}

// String returns the generator's stable name.
func (op GeneratorOperation) String() string {
	if op < 0 || op >= numGeneratorOperations {
		return fmt.Sprintf("GeneratorOperation(%d)", int(op))
	}
	return generatorNames[op]
}

// Gate returns the parametric gate this generator differentiates.
func (op GeneratorOperation) Gate() GateOperation { return generatorToGate[op] }

// NumWires returns the generator's wire arity, which always matches its gate.
func (op GeneratorOperation) NumWires() int { return generatorToGate[op].NumWires() }

// String returns the matrix class name.
func (op MatrixOperation) String() string {
	switch op {
	case SingleQubitOp:
		return "SingleQubitOp"
	case TwoQubitOp:
		return "TwoQubitOp"
	case MultiQubitOp:
		return "MultiQubitOp"
	default:
		return fmt.Sprintf("MatrixOperation(%d)", int(op))
	}
}

// MatrixOpForWires selects the matrix arity class for a wire count.
func MatrixOpForWires(numWires int) MatrixOperation {
	switch numWires {
	case 1:
		return SingleQubitOp
	case 2:
		return TwoQubitOp
	default:
		return MultiQubitOp
	}
}

// GateByName resolves a stable gate name to its operation.
func GateByName(name string) (GateOperation, bool) {
	op, ok := nameToGate[name]
	return op, ok
}

// GeneratorByName resolves a stable generator name to its operation.
func GeneratorByName(name string) (GeneratorOperation, bool) {
	op, ok := nameToGenerator[name]
	return op, ok
}

// AllGates returns every gate operation in enumeration order.
func AllGates() []GateOperation {
	ops := make([]GateOperation, numGateOperations)
	for i := range ops {
		ops[i] = GateOperation(i)
	}
	return ops
}

// AllGenerators returns every generator operation in enumeration order.
func AllGenerators() []GeneratorOperation {
	ops := make([]GeneratorOperation, numGeneratorOperations)
	for i := range ops {
		ops[i] = GeneratorOperation(i)
	}
	return ops
}
