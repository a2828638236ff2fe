// Copyright 2026 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dispatch provides the public API for kernel registration and
// gate application.
//
// A Dispatcher routes gate, generator, and dense-matrix applications to
// registered kernels, keyed by operation and kernel variant. NewDefault
// returns a dispatcher preloaded with the built-in kernels for both the
// bit-twiddling (LM) and permutation-index (PI) variants.
//
// Example:
//
//	d := dispatch.NewDefault(dispatch.DefaultConfig())
//	sv, _ := statevector.New(2)
//	err := d.ApplyOperations(dispatch.VariantLM, sv.Data(), 2,
//	    []gates.GateOperation{gates.Hadamard, gates.CNOT},
//	    [][]int{{0}, {0, 1}}, []bool{false, false}, nil)
package dispatch

import (
	"github.com/lumen-sim/lumen/internal/dispatch"
	"github.com/lumen-sim/lumen/internal/kernels"
	"github.com/lumen-sim/lumen/internal/parallel"
)

// Variant selects a kernel implementation family.
type Variant = dispatch.Variant

// Kernel variants.
const (
	// VariantLM applies gates with per-gate bit-twiddling loops.
	VariantLM Variant = dispatch.VariantLM
	// VariantPI applies gates through their dense matrices using
	// permutation-index gathers.
	VariantPI Variant = dispatch.VariantPI
)

// GateFunc applies a gate kernel in place.
type GateFunc = dispatch.GateFunc

// GeneratorFunc applies a generator kernel in place and returns its scale.
type GeneratorFunc = dispatch.GeneratorFunc

// MatrixFunc applies a dense matrix kernel in place.
type MatrixFunc = dispatch.MatrixFunc

// Dispatcher routes operations to registered kernels.
type Dispatcher = dispatch.Dispatcher

// Config controls data-parallel execution of the built-in kernels.
type Config = parallel.Config

// Sentinel errors. Failures returned by Dispatcher methods wrap one of
// these and can be classified with errors.Is.
var (
	ErrNotRegistered = dispatch.ErrNotRegistered
	ErrShapeMismatch = dispatch.ErrShapeMismatch
	ErrInvalidWires  = dispatch.ErrInvalidWires
)

// New creates an empty dispatcher with no kernels registered.
func New() *Dispatcher {
	return dispatch.New()
}

// NewDefault creates a dispatcher with all built-in kernels registered
// for both variants.
func NewDefault(cfg Config) *Dispatcher {
	d := dispatch.New()
	kernels.RegisterAll(d, cfg)
	return d
}

// DefaultConfig returns a parallel configuration sized to the machine.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Serial returns a configuration that disables parallel execution.
func Serial() Config {
	return parallel.Serial()
}
