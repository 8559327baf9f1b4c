// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: `hamcompare run` executes the harness and prints the summary tables.

package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamcycle/compare"
)

type runFlags struct {
	metricsFile string
	minSize     int
	maxSize     int
	timeLimit   time.Duration
	concurrency int
	perTrial    bool
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the size sweep and print per-bucket results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHarness(cmd, gf, &rf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.metricsFile, "metrics-file", "", "write prometheus metrics in text format to this file")
	f.IntVar(&rf.minSize, "min-size", 0, "override min_size")
	f.IntVar(&rf.maxSize, "max-size", 0, "override max_size")
	f.DurationVar(&rf.timeLimit, "time-limit", 0, "override time_limit")
	f.IntVar(&rf.concurrency, "concurrency", 0, "override concurrency")
	f.BoolVar(&rf.perTrial, "per-trial", false, "also print one row per trial")

	return cmd
}

// apply overlays the flags that were set on cfg.
func (rf *runFlags) apply(cmd *cobra.Command, cfg *compare.Config) {
	f := cmd.Flags()
	if f.Changed("min-size") {
		cfg.MinSize = rf.minSize
	}
	if f.Changed("max-size") {
		cfg.MaxSize = rf.maxSize
	}
	if f.Changed("time-limit") {
		cfg.TimeLimit = rf.timeLimit
	}
	if f.Changed("concurrency") {
		cfg.Concurrency = rf.concurrency
	}
}

func runHarness(cmd *cobra.Command, gf *globalFlags, rf *runFlags) error {
	log, err := gf.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := gf.config()
	if err != nil {
		return err
	}
	rf.apply(cmd, &cfg)

	reg := prometheus.NewRegistry()
	metrics, err := compare.NewMetrics(reg)
	if err != nil {
		return err
	}
	runner, err := compare.NewRunner(cfg, compare.WithLogger(log), compare.WithMetrics(metrics))
	if err != nil {
		return err
	}

	report, runErr := runner.Run(cmd.Context())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.title.Render("Pósa vs backtracking")+" "+styles.muted.Render("run "+report.RunID))
	if rf.perTrial {
		fmt.Fprintln(out, trialTable(report.Trials))
	}
	fmt.Fprintln(out, bucketTable(report.Buckets))

	if rf.metricsFile != "" {
		if err = prometheus.WriteToTextfile(rf.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info("metrics written", "path", rf.metricsFile)
	}

	return runErr
}
