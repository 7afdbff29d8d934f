// Package cli replays atomic chess move scripts from the command line.
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds replay settings. Environment variables provide defaults that
// command-line flags override.
type Config struct {
	// SVGDir, when set, receives one SVG of the final board per script.
	SVGDir string `env:"ATOMIC_SVG_DIR"`
	// PrintBoard prints the final board after each script.
	PrintBoard bool `env:"ATOMIC_PRINT_BOARD" envDefault:"true"`
	// Parallel bounds how many scripts replay at once.
	Parallel int `env:"ATOMIC_PARALLEL" envDefault:"4"`
	// Strict fails a script on its first rejected move.
	Strict bool `env:"ATOMIC_STRICT"`

	// Scripts are the script paths; "-" reads standard input.
	Scripts []string
}

// ParseConfig loads environment defaults and then parses flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.SVGDir, "svg", cfg.SVGDir, "directory to write final-board SVGs into")
	fs.BoolVar(&cfg.PrintBoard, "board", cfg.PrintBoard, "print the final board of each script")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "number of scripts replayed concurrently")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "stop a script at its first rejected move")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Scripts = fs.Args()
	if len(cfg.Scripts) == 0 {
		cfg.Scripts = []string{"-"}
	}
	if cfg.Parallel < 1 {
		return Config{}, fmt.Errorf("parallel must be at least 1, got %d", cfg.Parallel)
	}
	return cfg, nil
}
