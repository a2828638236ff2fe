package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumen-sim/lumen/adjoint"
	"github.com/lumen-sim/lumen/gates"
)

// circuitFile is the on-disk YAML description of a circuit.
type circuitFile struct {
	Qubits     int             `yaml:"qubits"`
	Operations []operationYAML `yaml:"operations"`

	// Used by the grad command only.
	Observables []observableYAML `yaml:"observables"`
	Trainable   []int            `yaml:"trainable"`
}

type operationYAML struct {
	Gate    string    `yaml:"gate"`
	Wires   []int     `yaml:"wires"`
	Params  []float64 `yaml:"params"`
	Inverse bool      `yaml:"inverse"`
}

type observableYAML struct {
	Gate string `yaml:"gate"`
	Wire int    `yaml:"wire"`
}

func loadCircuit(path string) (*circuitFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf circuitFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cf.Qubits <= 0 {
		return nil, fmt.Errorf("%s: qubits must be positive", path)
	}
	if len(cf.Operations) == 0 {
		return nil, fmt.Errorf("%s: no operations", path)
	}
	return &cf, nil
}

// tape converts the file into a runnable tape, resolving gate names.
func (cf *circuitFile) tape() (*adjoint.Tape, error) {
	t := &adjoint.Tape{
		NumQubits:       cf.Qubits,
		TrainableParams: cf.Trainable,
	}
	for i, op := range cf.Operations {
		g, ok := gates.GateByName(op.Gate)
		if !ok {
			return nil, fmt.Errorf("operation %d: unknown gate %q", i, op.Gate)
		}
		t.Operations = append(t.Operations, adjoint.Operation{
			Gate:    g,
			Wires:   op.Wires,
			Params:  op.Params,
			Inverse: op.Inverse,
		})
	}
	for i, obs := range cf.Observables {
		g, ok := gates.GateByName(obs.Gate)
		if !ok {
			return nil, fmt.Errorf("observable %d: unknown gate %q", i, obs.Gate)
		}
		t.Observables = append(t.Observables, adjoint.PauliObservable(g, obs.Wire))
	}
	return t, nil
}
