// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: `hamcompare solve` builds one named graph and runs both algorithms on it.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamcycle/backtrack"
	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/core"
	"github.com/katalvlaran/hamcycle/posa"
)

// ErrUnknownKind reports an unsupported --kind value.
var ErrUnknownKind = errors.New("unknown graph kind")

type solveFlags struct {
	kind       string
	n          int
	p          float64
	seed       int64
	attempts   int
	iterations int
	workers    int
	timeout    time.Duration
}

func newSolveCmd(gf *globalFlags) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search one generated graph with both algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, gf, &sf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sf.kind, "kind", "random", "graph kind: cycle, complete, petersen, random, wheel, grid")
	f.IntVar(&sf.n, "n", 20, "vertex count (grid: side length)")
	f.Float64Var(&sf.p, "p", 0.2, "edge probability for --kind random")
	f.Int64Var(&sf.seed, "seed", 1, "seed for graph generation and Pósa")
	f.IntVar(&sf.attempts, "attempts", 50, "Pósa attempts")
	f.IntVar(&sf.iterations, "iterations", 5000, "Pósa iterations per attempt")
	f.IntVar(&sf.workers, "workers", 1, "Pósa attempts run in parallel")
	f.DurationVar(&sf.timeout, "timeout", 5*time.Second, "time limit per algorithm")

	return cmd
}

// graphFor maps --kind to a built graph.
func (sf *solveFlags) graphFor() (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(sf.seed)}
	switch sf.kind {
	case "cycle":
		return builder.BuildGraph(sf.n, bopts, builder.Cycle(sf.n))
	case "complete":
		return builder.BuildGraph(sf.n, bopts, builder.Complete(sf.n))
	case "petersen":
		return builder.BuildGraph(10, bopts, builder.Petersen())
	case "random":
		return builder.BuildGraph(sf.n, bopts, builder.RandomSparse(sf.n, sf.p))
	case "wheel":
		return builder.BuildGraph(sf.n, bopts, builder.Wheel(sf.n))
	case "grid":
		return builder.BuildGraph(sf.n*sf.n, bopts, builder.Grid(sf.n, sf.n))
	default:
		return nil, fmt.Errorf("--kind %q: %w", sf.kind, ErrUnknownKind)
	}
}

func runSolve(cmd *cobra.Command, gf *globalFlags, sf *solveFlags) error {
	log, err := gf.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	g, err := sf.graphFor()
	if err != nil {
		return err
	}
	st := g.Stats()
	log.Debug("graph built", "kind", sf.kind, "vertices", st.VertexCount, "edges", st.EdgeCount,
		"min_degree", st.MinDegree, "max_degree", st.MaxDegree)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.title.Render(fmt.Sprintf("%s graph", sf.kind))+" "+
		styles.muted.Render(fmt.Sprintf("n=%d m=%d δ=%d Δ=%d dirac=%t", st.VertexCount, st.EdgeCount,
			st.MinDegree, st.MaxDegree, g.SatisfiesDirac())))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pctx, cancel := context.WithTimeout(ctx, sf.timeout)
	start := time.Now()
	pres, perr := posa.Search(pctx, g, sf.attempts, sf.iterations,
		posa.WithSeed(sf.seed), posa.WithWorkers(sf.workers))
	cancel()
	if perr != nil && !errors.Is(perr, context.DeadlineExceeded) {
		return fmt.Errorf("posa: %w", perr)
	}
	fmt.Fprintln(out, solveLine("posa", pres.Cycle, time.Since(start),
		fmt.Sprintf("%s, %d attempts, %d iterations", pres.Outcome, pres.Attempts, pres.Iterations),
		errors.Is(perr, context.DeadlineExceeded)))

	bctx, cancel := context.WithTimeout(ctx, sf.timeout)
	start = time.Now()
	bres, berr := backtrack.Search(bctx, g)
	cancel()
	if berr != nil && !errors.Is(berr, context.DeadlineExceeded) {
		return fmt.Errorf("backtracking: %w", berr)
	}
	fmt.Fprintln(out, solveLine("backtracking", bres.Cycle, time.Since(start),
		fmt.Sprintf("%d nodes", bres.Nodes), errors.Is(berr, context.DeadlineExceeded)))

	for _, c := range [][]int{pres.Cycle, bres.Cycle} {
		if c == nil {
			continue
		}
		if err = core.ValidateCycle(g, c); err != nil {
			return fmt.Errorf("returned cycle is invalid: %w", err)
		}
	}

	return nil
}
