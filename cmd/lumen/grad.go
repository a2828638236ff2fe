package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/lumen-sim/lumen/adjoint"
	"github.com/lumen-sim/lumen/dispatch"
)

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

type gradResultJSON struct {
	Qubits   int         `json:"qubits"`
	Variant  string      `json:"variant"`
	Expvals  []float64   `json:"expvals"`
	Jacobian [][]float64 `json:"jacobian"`
	VJP      []float64   `json:"vjp,omitempty"`
}

func gradCmd() *cli.Command {
	var (
		circuitPath string
		variant     string
		workers     int64
		serial      bool
		dyFlag      string
	)

	flags := append(engineFlags(&variant, &workers, &serial),
		&cli.StringFlag{
			Name:        "circuit",
			Aliases:     []string{"c"},
			Usage:       "path to circuit YAML file with observables",
			Required:    true,
			Destination: &circuitPath,
		},
		&cli.StringFlag{
			Name:        "dy",
			Usage:       "comma-separated upstream gradient; when set, the vector-Jacobian product is reported too",
			Destination: &dyFlag,
		},
	)

	return &cli.Command{
		Name:  "grad",
		Usage: "Differentiate expectation values with the adjoint method",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyConfig(cmd, loadConfig(), &variant, &workers, &serial)

			v, err := parseVariant(variant)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			cf, err := loadCircuit(circuitPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if len(cf.Observables) == 0 {
				return cli.Exit("error: grad needs at least one observable", 1)
			}
			tape, err := cf.tape()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			cfg := parallelConfig(workers, serial)
			e := adjoint.NewEngine(dispatch.NewDefault(cfg), v, cfg)

			jac, err := e.Jacobian(tape)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			final, err := e.Evolve(tape)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			expvals := make([]float64, len(tape.Observables))
			for i, obs := range tape.Observables {
				expvals[i], err = e.Expval(obs, final)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
			}

			result := gradResultJSON{
				Qubits:   cf.Qubits,
				Variant:  variant,
				Expvals:  expvals,
				Jacobian: jac,
			}
			if dyFlag != "" {
				dy, err := parseFloats(dyFlag)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: --dy: %v", err), 1)
				}
				vjp, err := adjoint.ComputeVJP(jac, dy)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				result.VJP = vjp
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
