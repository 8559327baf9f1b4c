// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: trial execution (RunTrial) and the concurrent sweep over sizes (Run).
// Policy:
//   - Each algorithm is bounded by context.WithTimeout(TimeLimit); hitting the
//     limit is a recorded outcome, not an error.
//   - Cancellation of the caller's context aborts the run with ctx.Err().
//   - A returned cycle that fails core.ValidateCycle aborts with ErrUnsoundCycle.

package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamcycle/backtrack"
	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/core"
	"github.com/katalvlaran/hamcycle/posa"
)

// ErrUnsoundCycle reports a search that returned something other than a
// Hamiltonian cycle of the trial graph.
var ErrUnsoundCycle = errors.New("compare: algorithm returned an invalid cycle")

// sizeStride spreads trial seeds so (size, index) pairs never collide for
// TrialsPerSize below it.
const sizeStride = 1_000_003

// Runner executes harness trials. It is safe for concurrent RunTrial calls.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the progress logger. nil keeps the default.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics attaches prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	r := &Runner{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Config returns the validated configuration.
func (r *Runner) Config() Config { return r.cfg }

// TrialSeed is the graph seed used for trial index of the given size.
func (r *Runner) TrialSeed(size, index int) int64 {
	return r.cfg.Seed + int64(size)*sizeStride + int64(index)
}

// TrialGraph builds the graph of one trial: a ring over a random permutation
// with G(n,p) edges on top. The ring guarantees a Hamiltonian cycle exists.
func (r *Runner) TrialGraph(size int, seed int64) (*core.Graph, error) {
	return builder.BuildGraph(size,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.ShuffledCycle(size),
		builder.RandomSparse(size, r.cfg.EdgeProbability),
	)
}

// RunTrial builds the graph for (size, index) and runs Pósa then backtracking
// on it, each under its own time limit.
func (r *Runner) RunTrial(ctx context.Context, size, index int) (Trial, error) {
	seed := r.TrialSeed(size, index)
	t := Trial{Size: size, Index: index, Seed: seed}

	g, err := r.TrialGraph(size, seed)
	if err != nil {
		return t, fmt.Errorf("RunTrial: size=%d: %w", size, err)
	}
	t.Edges = g.NumEdges()

	if t.Posa, err = r.runPosa(ctx, g, seed); err != nil {
		return t, fmt.Errorf("RunTrial: size=%d: %w", size, err)
	}
	if t.Backtrack, err = r.runBacktrack(ctx, g); err != nil {
		return t, fmt.Errorf("RunTrial: size=%d: %w", size, err)
	}

	for _, res := range []AlgorithmResult{t.Posa, t.Backtrack} {
		r.metrics.observe(res)
		r.log.Debug("search finished",
			slog.Int("size", size),
			slog.Int("index", index),
			slog.String("algorithm", res.Algorithm),
			slog.String("outcome", res.outcomeLabel()),
			slog.Duration("duration", res.Duration),
			slog.Int("attempts", res.Attempts),
		)
	}

	return t, nil
}

// runPosa repeats single attempts with one shared stream until a cycle is
// found, the time limit expires, or the graph is too small to try.
func (r *Runner) runPosa(ctx context.Context, g *core.Graph, seed int64) (AlgorithmResult, error) {
	res := AlgorithmResult{Algorithm: AlgorithmPosa}
	tctx, cancel := context.WithTimeout(ctx, r.cfg.TimeLimit)
	defer cancel()

	rng := rand.New(rand.NewSource(seed))
	start := time.Now()

	for {
		out, err := posa.Attempt(tctx, g, r.cfg.PosaIterations, posa.WithRand(rng))
		res.Attempts++
		res.Work += int64(out.Iterations)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				res.TimedOut = true
				res.Duration = time.Since(start)
				return res, nil
			}
			return res, err
		}
		if out.Found() {
			res.Duration = time.Since(start)
			if err = core.ValidateCycle(g, out.Cycle); err != nil {
				return res, fmt.Errorf("%w: %s: %w", ErrUnsoundCycle, AlgorithmPosa, err)
			}
			res.Success = true
			res.Cycle = out.Cycle
			return res, nil
		}
		if out.Outcome == posa.Degenerate {
			res.Duration = time.Since(start)
			return res, nil
		}
	}
}

// runBacktrack runs one exhaustive search under the time limit.
func (r *Runner) runBacktrack(ctx context.Context, g *core.Graph) (AlgorithmResult, error) {
	res := AlgorithmResult{Algorithm: AlgorithmBacktrack, Attempts: 1}
	tctx, cancel := context.WithTimeout(ctx, r.cfg.TimeLimit)
	defer cancel()

	start := time.Now()
	out, err := backtrack.Search(tctx, g)
	res.Duration = time.Since(start)
	res.Work = out.Nodes
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			res.TimedOut = true
			return res, nil
		}
		return res, err
	}
	if out.Found() {
		if err = core.ValidateCycle(g, out.Cycle); err != nil {
			return res, fmt.Errorf("%w: %s: %w", ErrUnsoundCycle, AlgorithmBacktrack, err)
		}
		res.Success = true
		res.Cycle = out.Cycle
	}

	return res, nil
}

// Run sweeps every configured size, TrialsPerSize trials each, with at most
// Concurrency trials in flight. On error the partial report is returned with
// the trials completed so far.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Config:  r.cfg,
	}
	log := r.log.With(slog.String("run_id", report.RunID))
	log.Info("run started",
		slog.Int("min_size", r.cfg.MinSize),
		slog.Int("max_size", r.cfg.MaxSize),
		slog.Int("trials_per_size", r.cfg.TrialsPerSize),
		slog.Duration("time_limit", r.cfg.TimeLimit),
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(r.cfg.Concurrency)

	var mu sync.Mutex
	trials := make([]Trial, 0, len(r.cfg.Sizes())*r.cfg.TrialsPerSize)

	for _, size := range r.cfg.Sizes() {
		for idx := 0; idx < r.cfg.TrialsPerSize; idx++ {
			grp.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := r.RunTrial(gctx, size, idx)
				if err != nil {
					return err
				}
				log.Info("trial finished",
					slog.Int("size", t.Size),
					slog.Int("index", t.Index),
					slog.Int("edges", t.Edges),
					slog.Bool("posa_success", t.Posa.Success),
					slog.Duration("posa_time", t.Posa.Duration),
					slog.Int("posa_attempts", t.Posa.Attempts),
					slog.Bool("backtrack_success", t.Backtrack.Success),
					slog.Duration("backtrack_time", t.Backtrack.Duration),
				)

				mu.Lock()
				trials = append(trials, t)
				mu.Unlock()

				return nil
			})
		}
	}
	err := grp.Wait()

	sortTrials(trials)
	report.Trials = trials
	report.Buckets = summarize(trials, r.cfg.MinSize, r.cfg.BucketWidth)
	report.Finished = time.Now()

	if err != nil {
		log.Error("run aborted", slog.Any("error", err), slog.Int("completed", len(trials)))
		return report, fmt.Errorf("Run: %w", err)
	}
	log.Info("run finished",
		slog.Int("trials", len(trials)),
		slog.Duration("elapsed", report.Finished.Sub(report.Started)),
	)

	return report, nil
}
