// SPDX-License-Identifier: MIT

// Package cli implements the symbolic command-line interface.
//
// Commands:
//   - analyze:    generate or load a pattern and print the inspection report
//   - dot:        render the level schedule of a pattern as DOT or SVG
//   - algorithms: list the available leveling strategies
//
// All commands read an optional TOML file (--config); explicit flags win
// over file values. --verbose switches logging to debug level.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "symbolic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Symbolic analysis of sparse matrices",
		Long:         `symbolic computes dependency DAGs, level-set schedules, elimination trees and supernodes of sparse symmetric matrix patterns.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.algorithmsCommand())

	return root
}
