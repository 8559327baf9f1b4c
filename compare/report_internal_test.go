package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trial(size int, posaOK, btOK bool, posaTime, btTime time.Duration, attempts int) Trial {
	return Trial{
		Size:      size,
		Posa:      AlgorithmResult{Algorithm: AlgorithmPosa, Success: posaOK, Duration: posaTime, Attempts: attempts},
		Backtrack: AlgorithmResult{Algorithm: AlgorithmBacktrack, Success: btOK, Duration: btTime, Attempts: 1},
	}
}

func TestSummarize_Buckets(t *testing.T) {
	trials := []Trial{
		trial(20, true, true, 2*time.Millisecond, 4*time.Millisecond, 1),
		trial(25, true, false, 4*time.Millisecond, 10*time.Millisecond, 3),
		trial(31, false, true, 6*time.Millisecond, 1*time.Millisecond, 5),
		trial(45, true, true, 1*time.Millisecond, 1*time.Millisecond, 2),
	}

	got := summarize(trials, 20, 10)
	require.Len(t, got, 3)

	assert.Equal(t, Bucket{
		Low: 20, High: 29, Trials: 2,
		PosaSuccesses: 2, BacktrackSuccesses: 1,
		PosaMeanTime: 3 * time.Millisecond, BacktrackMeanTime: 7 * time.Millisecond,
		PosaMeanAttempts: 2,
	}, got[0])
	assert.Equal(t, 30, got[1].Low)
	assert.Equal(t, 39, got[1].High)
	assert.Equal(t, 0, got[1].PosaSuccesses)
	assert.Equal(t, 40, got[2].Low)
	assert.Equal(t, 1, got[2].Trials)
}

func TestSummarize_Degenerate(t *testing.T) {
	assert.Nil(t, summarize(nil, 20, 10))
	assert.Nil(t, summarize([]Trial{trial(20, true, true, 0, 0, 1)}, 20, 0))
}

func TestSortTrials(t *testing.T) {
	trials := []Trial{{Size: 9, Index: 1}, {Size: 7, Index: 0}, {Size: 9, Index: 0}}
	sortTrials(trials)
	assert.Equal(t, []Trial{{Size: 7, Index: 0}, {Size: 9, Index: 0}, {Size: 9, Index: 1}}, trials)
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "found", AlgorithmResult{Success: true}.outcomeLabel())
	assert.Equal(t, "timeout", AlgorithmResult{TimedOut: true}.outcomeLabel())
	assert.Equal(t, "not_found", AlgorithmResult{}.outcomeLabel())
}

func TestSummarize_SkipsEmptyBuckets(t *testing.T) {
	got := summarize([]Trial{
		trial(20, true, true, 0, 0, 1),
		trial(45, true, true, 0, 0, 1),
	}, 20, 10)

	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].Low)
	assert.Equal(t, 40, got[1].Low)
}
