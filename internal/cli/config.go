// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Config is the file-level configuration. Every field has a flag of the
// same meaning.
type Config struct {
	Matrix   MatrixConfig   `toml:"matrix"`
	Analysis AnalysisConfig `toml:"analysis"`
	Output   OutputConfig   `toml:"output"`
}

// MatrixConfig selects the input pattern.
type MatrixConfig struct {
	// Kind is one of tridiagonal, arrow, banded, grid, random, file.
	Kind      string  `toml:"kind"`
	N         int     `toml:"n"`
	Rows      int     `toml:"rows"`
	Cols      int     `toml:"cols"`
	Bandwidth int     `toml:"bandwidth"`
	Density   float64 `toml:"density"`
	Seed      int64   `toml:"seed"`
	// Path is a Matrix Market coordinate file, used when Kind is file.
	Path string `toml:"path"`
}

// AnalysisConfig tunes the inspector.
type AnalysisConfig struct {
	Algorithm    string `toml:"algorithm"`
	MaxGroupSize int    `toml:"max_group_size"`
	MaxSupernode int    `toml:"max_supernode"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `toml:"format"`
}

func defaultConfig() Config {
	return Config{
		Matrix:   MatrixConfig{Kind: kindGrid, N: 16, Rows: 8, Cols: 8, Bandwidth: 2, Density: 0.05, Seed: 42},
		Analysis: AnalysisConfig{Algorithm: "queue", MaxGroupSize: 32},
		Output:   OutputConfig{Format: formatText},
	}
}

// loadConfig decodes path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// matrixFlags mirrors MatrixConfig on the command line.
type matrixFlags struct {
	MatrixConfig
}

func (f *matrixFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.Kind, "kind", "", "pattern: tridiagonal, arrow, banded, grid, random, file")
	fl.IntVarP(&f.N, "n", "n", 0, "matrix order (tridiagonal, arrow, banded, random)")
	fl.IntVar(&f.Rows, "rows", 0, "grid rows")
	fl.IntVar(&f.Cols, "cols", 0, "grid columns")
	fl.IntVar(&f.Bandwidth, "bandwidth", 0, "half bandwidth (banded)")
	fl.Float64Var(&f.Density, "density", 0, "entry probability (random)")
	fl.Int64Var(&f.Seed, "seed", 0, "random seed (random)")
	fl.StringVar(&f.Path, "file", "", "Matrix Market file (kind=file)")
}

// apply copies every flag the user set over cfg.
func (f *matrixFlags) apply(cmd *cobra.Command, cfg *MatrixConfig) {
	fl := cmd.Flags()
	if fl.Changed("kind") {
		cfg.Kind = f.Kind
	}
	if fl.Changed("n") {
		cfg.N = f.N
	}
	if fl.Changed("rows") {
		cfg.Rows = f.Rows
	}
	if fl.Changed("cols") {
		cfg.Cols = f.Cols
	}
	if fl.Changed("bandwidth") {
		cfg.Bandwidth = f.Bandwidth
	}
	if fl.Changed("density") {
		cfg.Density = f.Density
	}
	if fl.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if fl.Changed("file") {
		cfg.Path = f.Path
		if !fl.Changed("kind") {
			cfg.Kind = kindFile
		}
	}
}
