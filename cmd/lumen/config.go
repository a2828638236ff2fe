package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/lumen-sim/lumen/dispatch"
)

// Config represents the lumen configuration file
// (~/.config/lumen/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	Variant string `yaml:"variant"`
	Workers *int   `yaml:"workers"`
	Serial  *bool  `yaml:"serial"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lumen", "config.yaml")
}

func loadConfig() Config {
	var cfg Config
	path := configPath()
	if path == "" {
		return cfg
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(raw, &cfg)
	return cfg
}

// applyConfig fills in config file defaults for flags the user did not set.
func applyConfig(c *cli.Command, cfg Config, variant *string, workers *int64, serial *bool) {
	if cfg.Variant != "" && !c.IsSet("variant") {
		*variant = cfg.Variant
	}
	if cfg.Workers != nil && !c.IsSet("workers") {
		*workers = int64(*cfg.Workers)
	}
	if cfg.Serial != nil && !c.IsSet("serial") {
		*serial = *cfg.Serial
	}
}

func parseVariant(s string) (dispatch.Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LM", "":
		return dispatch.VariantLM, nil
	case "PI":
		return dispatch.VariantPI, nil
	}
	return 0, fmt.Errorf("unknown kernel variant %q (want LM or PI)", s)
}

func parallelConfig(workers int64, serial bool) dispatch.Config {
	if serial {
		return dispatch.Serial()
	}
	cfg := dispatch.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = int(workers)
	}
	return cfg
}

func engineFlags(variant *string, workers *int64, serial *bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "variant",
			Aliases:     []string{"k"},
			Usage:       "kernel variant (LM or PI)",
			Value:       "LM",
			Destination: variant,
		},
		&cli.Int64Flag{
			Name:        "workers",
			Aliases:     []string{"w"},
			Usage:       "number of parallel workers (default: GOMAXPROCS)",
			Destination: workers,
		},
		&cli.BoolFlag{
			Name:        "serial",
			Usage:       "disable parallel kernel execution",
			Destination: serial,
		},
	}
}
