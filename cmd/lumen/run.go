package main

import (
	"context"
	"fmt"
	"math/cmplx"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/lumen-sim/lumen/adjoint"
	"github.com/lumen-sim/lumen/dispatch"
	"github.com/lumen-sim/lumen/internal/snapshot"
	"github.com/lumen-sim/lumen/statevector"
)

type amplitudeJSON struct {
	Basis string  `json:"basis"`
	Real  float64 `json:"re"`
	Imag  float64 `json:"im"`
	Prob  float64 `json:"prob"`
}

type runResultJSON struct {
	Qubits     int             `json:"qubits"`
	Variant    string          `json:"variant"`
	Amplitudes []amplitudeJSON `json:"amplitudes"`
}

func runCmd() *cli.Command {
	var (
		circuitPath string
		variant     string
		workers     int64
		serial      bool
		threshold   float64
		initialPath string
		savePath    string
	)

	flags := append(engineFlags(&variant, &workers, &serial),
		&cli.StringFlag{
			Name:        "circuit",
			Aliases:     []string{"c"},
			Usage:       "path to circuit YAML file",
			Required:    true,
			Destination: &circuitPath,
		},
		&cli.Float64Flag{
			Name:        "threshold",
			Usage:       "omit amplitudes with probability below this value",
			Destination: &threshold,
		},
		&cli.StringFlag{
			Name:        "initial-state",
			Usage:       "start from an .lsv snapshot instead of |0...0>",
			Destination: &initialPath,
		},
		&cli.StringFlag{
			Name:        "save-state",
			Usage:       "write the final state to an .lsv snapshot",
			Destination: &savePath,
		},
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Apply a circuit and print the final state as JSON",
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
			tape, err := cf.tape()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			cfg := parallelConfig(workers, serial)
			d := dispatch.NewDefault(cfg)

			var sv *statevector.StateVector
			if initialPath != "" {
				sv, err = snapshot.Read(initialPath)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				if sv.NumQubits() != cf.Qubits {
					return cli.Exit(fmt.Sprintf("error: snapshot has %d qubits, circuit wants %d",
						sv.NumQubits(), cf.Qubits), 1)
				}
				for _, op := range tape.Operations {
					if err := d.ApplyOperation(v, sv.Data(), cf.Qubits,
						op.Gate, op.Wires, op.Inverse, op.Params); err != nil {
						return cli.Exit(fmt.Sprintf("error: %v", err), 1)
					}
				}
			} else {
				e := adjoint.NewEngine(d, v, cfg)
				sv, err = e.Evolve(tape)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
			}

			if savePath != "" {
				if err := snapshot.Write(savePath, sv); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
			}

			result := runResultJSON{
				Qubits:  cf.Qubits,
				Variant: variant,
			}
			for i, amp := range sv.Data() {
				p := real(amp)*real(amp) + imag(amp)*imag(amp)
				if cmplx.Abs(amp) == 0 || p < threshold {
					continue
				}
				result.Amplitudes = append(result.Amplitudes, amplitudeJSON{
					Basis: fmt.Sprintf("%0*b", cf.Qubits, i),
					Real:  real(amp),
					Imag:  imag(amp),
					Prob:  p,
				})
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
