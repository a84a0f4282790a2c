// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symbolic/inspect"
	"github.com/katalvlaran/symbolic/levelset"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// analysisFlags mirrors AnalysisConfig and OutputConfig on the command line.
type analysisFlags struct {
	matrixFlags
	algorithm    string
	maxGroupSize int
	maxSupernode int
	format       string
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	f.matrixFlags.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "leveling strategy (see 'algorithms')")
	fl.IntVar(&f.maxGroupSize, "max-group", 0, "maximum nodes per grouped DAG node")
	fl.IntVar(&f.maxSupernode, "max-supernode", 0, "maximum columns per supernode (0 = unbounded)")
	fl.StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml")
}

func (f *analysisFlags) apply(cmd *cobra.Command, cfg *Config) {
	f.matrixFlags.apply(cmd, &cfg.Matrix)
	fl := cmd.Flags()
	if fl.Changed("algorithm") {
		cfg.Analysis.Algorithm = f.algorithm
	}
	if fl.Changed("max-group") {
		cfg.Analysis.MaxGroupSize = f.maxGroupSize
	}
	if fl.Changed("max-supernode") {
		cfg.Analysis.MaxSupernode = f.maxSupernode
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
}

// resolve loads the config file and overlays the flags.
func (c *CLI) resolve(cmd *cobra.Command, f *analysisFlags) (Config, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return cfg, err
	}
	f.apply(cmd, &cfg)

	return cfg, nil
}

// inspectOptions converts the analysis section to inspector options.
func (c *CLI) inspectOptions(cfg AnalysisConfig) ([]inspect.Option, error) {
	alg, err := levelset.ByName(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := []inspect.Option{inspect.WithLogger(c.Logger), inspect.WithAlgorithm(alg)}
	if cfg.MaxGroupSize > 0 {
		opts = append(opts, inspect.WithMaxGroupSize(cfg.MaxGroupSize))
	}
	if cfg.MaxSupernode > 0 {
		opts = append(opts, inspect.WithMaxSupernode(cfg.MaxSupernode))
	}

	return opts, nil
}

func (c *CLI) analyzeCommand() *cobra.Command {
	var flags analysisFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full symbolic analysis and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &flags)
			if err != nil {
				return err
			}
			a, err := buildMatrix(cfg.Matrix)
			if err != nil {
				return err
			}
			opts, err := c.inspectOptions(cfg.Analysis)
			if err != nil {
				return err
			}
			c.Logger.Info("analyzing", "kind", cfg.Matrix.Kind, "n", a.Cols(), "nnz", a.NNZ())
			rep, err := inspect.Run(cmd.Context(), a, opts...)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), rep, cfg.Output.Format)
		},
	}
	flags.register(cmd)

	return cmd
}

// writeReport encodes rep in the requested format.
func writeReport(w io.Writer, rep *inspect.Report, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "id\t%s\n", rep.ID)
		fmt.Fprintf(tw, "matrix\tn=%d nnz=%d\n", rep.N, rep.NNZ)
		fmt.Fprintf(tw, "dag\t%d levels, max width %d, parallelism %.2f, critical path %d\n",
			rep.DAG.Levels, rep.DAG.MaxWidth, rep.DAG.Parallelism, rep.DAG.CriticalPath)
		fmt.Fprintf(tw, "grouped\t%d groups, %d levels\n", rep.Grouped.Groups, rep.Grouped.Schedule.Levels)
		fmt.Fprintf(tw, "etree\t%d roots, height %d\n", rep.Tree.Roots, rep.Tree.Height)
		fmt.Fprintf(tw, "factor\tnnz(L)=%d fill=%d\n", rep.Factor.NNZ, rep.Factor.Fill)
		fmt.Fprintf(tw, "supernodes\t%d (max width %d), %d levels\n",
			rep.Supernodes.Count, rep.Supernodes.MaxWidth, rep.Supernodes.Levels)
		for _, s := range rep.Stages {
			fmt.Fprintf(tw, "  %s\t%s\n", s.Name, s.Duration)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
