// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: cobra root command, persistent flags and logger/config resolution.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamcycle/compare"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:   "hamcompare",
		Short: "Compare backtracking and Pósa rotation-extension on Hamiltonian cycle search",
		Long: `hamcompare generates graphs that hide a Hamiltonian cycle, runs an exhaustive
backtracking search and the randomized Pósa heuristic on each, and reports
success counts and timings per size bucket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&gf.configPath, "config", "", "YAML harness config (defaults apply when empty)")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(&gf), newSolveCmd(&gf))

	return root
}

// logger builds a text slog.Logger on w at the requested level.
func (gf *globalFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(gf.logLevel))); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", gf.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// config loads --config, or returns the defaults when it is unset.
func (gf *globalFlags) config() (compare.Config, error) {
	if gf.configPath == "" {
		return compare.DefaultConfig(), nil
	}

	return compare.LoadConfig(gf.configPath)
}
