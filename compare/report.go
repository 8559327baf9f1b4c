// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: per-trial results and the per-bucket summary.

package compare

import (
	"sort"
	"time"
)

// Algorithm names used in results and metric labels.
const (
	AlgorithmPosa      = "posa"
	AlgorithmBacktrack = "backtracking"
)

const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeTimeout  = "timeout"
)

// AlgorithmResult is one algorithm's run on one trial graph.
type AlgorithmResult struct {
	Algorithm string
	Success   bool
	// TimedOut is set when the time limit expired before the algorithm
	// answered; Duration is then the time actually spent.
	TimedOut bool
	Duration time.Duration
	// Attempts counts Pósa attempts (1 for backtracking).
	Attempts int
	// Work is Pósa iterations or backtracking node expansions.
	Work  int64
	Cycle []int
}

func (r AlgorithmResult) outcomeLabel() string {
	switch {
	case r.Success:
		return outcomeFound
	case r.TimedOut:
		return outcomeTimeout
	default:
		return outcomeNotFound
	}
}

// Trial is one generated graph and both algorithms' results on it.
type Trial struct {
	Size      int
	Index     int
	Seed      int64
	Edges     int
	Posa      AlgorithmResult
	Backtrack AlgorithmResult
}

// Bucket summarises the trials whose size lies in [Low, High].
type Bucket struct {
	Low, High          int
	Trials             int
	PosaSuccesses      int
	BacktrackSuccesses int
	PosaMeanTime       time.Duration
	BacktrackMeanTime  time.Duration
	PosaMeanAttempts   float64
}

// Report is the outcome of Runner.Run.
type Report struct {
	RunID    string
	Started  time.Time
	Finished time.Time
	Config   Config
	Trials   []Trial
	Buckets  []Bucket
}

// sortTrials orders trials by (Size, Index).
func sortTrials(trials []Trial) {
	sort.Slice(trials, func(i, j int) bool {
		if trials[i].Size != trials[j].Size {
			return trials[i].Size < trials[j].Size
		}
		return trials[i].Index < trials[j].Index
	})
}

// summarize groups sorted trials into buckets of width starting at minSize.
// Empty buckets are omitted.
func summarize(trials []Trial, minSize, width int) []Bucket {
	if width < 1 || len(trials) == 0 {
		return nil
	}

	var (
		out              []Bucket
		cur              *Bucket
		posaTime, btTime time.Duration
		posaAttempts     int
	)
	flush := func() {
		if cur == nil || cur.Trials == 0 {
			return
		}
		cur.PosaMeanTime = posaTime / time.Duration(cur.Trials)
		cur.BacktrackMeanTime = btTime / time.Duration(cur.Trials)
		cur.PosaMeanAttempts = float64(posaAttempts) / float64(cur.Trials)
		out = append(out, *cur)
	}

	for _, t := range trials {
		low := minSize + ((t.Size-minSize)/width)*width
		if cur == nil || cur.Low != low {
			flush()
			cur = &Bucket{Low: low, High: low + width - 1}
			posaTime, btTime, posaAttempts = 0, 0, 0
		}
		cur.Trials++
		if t.Posa.Success {
			cur.PosaSuccesses++
		}
		if t.Backtrack.Success {
			cur.BacktrackSuccesses++
		}
		posaTime += t.Posa.Duration
		btTime += t.Backtrack.Duration
		posaAttempts += t.Posa.Attempts
	}
	flush()

	return out
}
