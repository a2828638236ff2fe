// Package kernels implements the numerical gate, generator and matrix
// routines and registers them with a dispatcher.
//
// Two interchangeable variants exist. The LM variant uses per-gate
// bit-twiddling loops over amplitude pairs. The PI variant builds each gate's
// dense matrix and applies it through a generic permutation-index routine.
// The variants agree across the full gate set up to floating-point rounding.
//
// Registration is an explicit one-shot step: the hosting application calls
// RegisterAll on a freshly constructed dispatcher before any dispatch call.
package kernels

import (
	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/gates"
	"github.com/lumen-sim/lumen/internal/parallel"
)

// engine binds the kernel set to a parallel execution configuration. Worker
// goroutines always partition the amplitude-index space into disjoint groups,
// so no two workers ever write the same amplitude.
type engine struct {
	cfg parallel.Config
}

// RegisterAll populates a dispatcher with every kernel of both variants.
// It must run exactly once per dispatcher, before first use; duplicate
// registration panics inside the dispatcher.
func RegisterAll(d *dispatch.Dispatcher, cfg parallel.Config) {
	e := &engine{cfg: cfg}

	for _, op := range gates.AllGates() {
		d.RegisterGate(op, dispatch.VariantLM, e.lmGateFunc(op))
		d.RegisterGate(op, dispatch.VariantPI, e.piGateFunc(op))
	}

	for _, op := range gates.AllGenerators() {
		fn := e.generatorFunc(op)
		d.RegisterGenerator(op, dispatch.VariantLM, fn)
		d.RegisterGenerator(op, dispatch.VariantPI, fn)
	}

	for _, variant := range []dispatch.Variant{dispatch.VariantLM, dispatch.VariantPI} {
		d.RegisterMatrix(gates.SingleQubitOp, variant, e.applySingleQubitMatrix)
		d.RegisterMatrix(gates.TwoQubitOp, variant, e.applyTwoQubitMatrix)
		d.RegisterMatrix(gates.MultiQubitOp, variant, e.applyMultiQubitMatrix)
	}
}
