package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/lumen-sim/lumen/gates"
)

func gatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "gates",
		Usage: "List the supported gate set",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GATE\tWIRES\tPARAMS\tGENERATOR")
			for _, g := range gates.AllGates() {
				gen := "-"
				if gg, ok := g.Generator(); ok {
					gen = gg.String()
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", g, g.NumWires(), g.NumParams(), gen)
			}
			return w.Flush()
		},
	}
}
