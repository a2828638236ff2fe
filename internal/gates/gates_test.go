package gates

import "testing"

func TestGateDescriptors(t *testing.T) {
	tests := []struct {
		op        GateOperation
		name      string
		numWires  int
		numParams int
	}{
		{Identity, "Identity", 1, 0},
		{Hadamard, "Hadamard", 1, 0},
		{PhaseShift, "PhaseShift", 1, 1},
		{RX, "RX", 1, 1},
		{Rot, "Rot", 1, 3},
		{CNOT, "CNOT", 2, 0},
		{SWAP, "SWAP", 2, 0},
		{ControlledPhaseShift, "ControlledPhaseShift", 2, 1},
		{IsingZZ, "IsingZZ", 2, 1},
		{Toffoli, "Toffoli", 3, 0},
		{CSWAP, "CSWAP", 3, 0},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.name {
			t.Errorf("%v.String() = %q, want %q", tt.op, got, tt.name)
		}
		if got := tt.op.NumWires(); got != tt.numWires {
			t.Errorf("%s.NumWires() = %d, want %d", tt.name, got, tt.numWires)
		}
		if got := tt.op.NumParams(); got != tt.numParams {
			t.Errorf("%s.NumParams() = %d, want %d", tt.name, got, tt.numParams)
		}
	}
}

func TestGateByNameRoundTrip(t *testing.T) {
	for _, op := range AllGates() {
		got, ok := GateByName(op.String())
		if !ok || got != op {
			t.Errorf("GateByName(%q) = %v, %v; want %v, true", op.String(), got, ok, op)
		}
	}
	if _, ok := GateByName("NoSuchGate"); ok {
		t.Errorf("GateByName accepted an unknown name")
	}
}

func TestGeneratorByNameRoundTrip(t *testing.T) {
	for _, op := range AllGenerators() {
		got, ok := GeneratorByName(op.String())
		if !ok || got != op {
			t.Errorf("GeneratorByName(%q) = %v, %v; want %v, true", op.String(), got, ok, op)
		}
	}
}

func TestGateGeneratorMappingIsBidirectional(t *testing.T) {
	for _, gen := range AllGenerators() {
		gate := gen.Gate()
		back, ok := gate.Generator()
		if !ok || back != gen {
			t.Errorf("generator %s maps to gate %s, whose generator is %v (ok=%v)", gen, gate, back, ok)
		}
		if gen.NumWires() != gate.NumWires() {
			t.Errorf("generator %s arity %d != gate %s arity %d", gen, gen.NumWires(), gate, gate.NumWires())
		}
	}
}

func TestSingleParameterGatesHaveGenerators(t *testing.T) {
	for _, op := range AllGates() {
		_, hasGen := op.Generator()
		wantGen := op.NumParams() == 1
		if hasGen != wantGen {
			t.Errorf("gate %s (params=%d): generator present = %v, want %v",
				op, op.NumParams(), hasGen, wantGen)
		}
	}
}

func TestMatrixOpForWires(t *testing.T) {
	tests := []struct {
		wires int
		want  MatrixOperation
	}{
		{1, SingleQubitOp},
		{2, TwoQubitOp},
		{3, MultiQubitOp},
		{5, MultiQubitOp},
	}
	for _, tt := range tests {
		if got := MatrixOpForWires(tt.wires); got != tt.want {
			t.Errorf("MatrixOpForWires(%d) = %v, want %v", tt.wires, got, tt.want)
		}
	}
}
