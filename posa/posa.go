// SPDX-License-Identifier: MIT
//
// File: posa.go
// Role: public entry points (Attempt, Search) and the parallel attempt driver.

package posa

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamcycle/core"
)

const minCycleVertices = 3

// Attempt runs one Pósa attempt on g with at most maxIterations iterations.
//
// "No cycle" is reported through Result (Outcome DeadEnd, BudgetExhausted or
// Degenerate), never as an error. Errors: ErrGraphNil, ErrInvalidBudget, or
// ctx.Err() when the context is done (checked once per iteration).
//
// Without WithSeed/WithRand every call replays the default stream; pass a
// shared WithRand to make repeated calls explore different moves.
func Attempt(ctx context.Context, g *core.Graph, maxIterations int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if maxIterations < 1 {
		return Result{}, ErrInvalidBudget
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := newOptions(opts...)

	return newAttempt(g.AdjacencySnapshot(), o.rng).run(ctx, maxIterations)
}

// Search runs up to attempts independent attempts, each with a fresh path,
// processed set and endpoint history, and returns the first success.
//
// Result.Iterations and Result.Attempts total the work done. When every
// attempt fails, Result.Outcome is the outcome of the last one.
func Search(ctx context.Context, g *core.Graph, attempts, maxIterations int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if attempts < 1 || maxIterations < 1 {
		return Result{}, ErrInvalidBudget
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := newOptions(opts...)
	adj := g.AdjacencySnapshot()

	if len(adj) < minCycleVertices {
		return Result{Attempts: 1, Outcome: Degenerate}, nil
	}
	if o.workers > 1 {
		return searchParallel(ctx, adj, attempts, maxIterations, o)
	}

	var total Result
	for i := 0; i < attempts; i++ {
		res, err := newAttempt(adj, o.rng).run(ctx, maxIterations)
		total.Iterations += res.Iterations
		total.Attempts++
		total.Outcome = res.Outcome
		if err != nil {
			return total, err
		}
		if res.Found() {
			total.Cycle = res.Cycle
			return total, nil
		}
	}

	return total, nil
}

// searchParallel distributes attempt indices over o.workers goroutines.
// Attempt i uses streamRNG(parent, i); the first success cancels the rest.
func searchParallel(ctx context.Context, adj [][]int, attempts, maxIterations int, o options) (Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	parent := o.rng.Int63()
	grp, gctx := errgroup.WithContext(runCtx)

	var (
		next  atomic.Int64
		mu    sync.Mutex
		total Result
	)
	workers := o.workers
	if workers > attempts {
		workers = attempts
	}

	for w := 0; w < workers; w++ {
		grp.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= int64(attempts) || gctx.Err() != nil {
					return nil
				}
				res, err := newAttempt(adj, streamRNG(parent, uint64(i))).run(gctx, maxIterations)

				mu.Lock()
				total.Iterations += res.Iterations
				total.Attempts++
				if total.Cycle == nil {
					total.Outcome = res.Outcome
				}
				if err == nil && res.Found() && total.Cycle == nil {
					total.Cycle = res.Cycle
					cancel()
				}
				won := total.Cycle != nil
				mu.Unlock()

				if err != nil && !won {
					return err
				}
			}
		})
	}
	err := grp.Wait()

	if total.Cycle != nil {
		total.Outcome = Found
		return total, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return total, ctxErr
	}

	return total, err
}
