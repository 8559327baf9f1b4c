package core_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/core"
	"github.com/stretchr/testify/require"
)

func TestValidateCycle(t *testing.T) {
	g := ring(5, [2]int{0, 2}, [2]int{1, 3})

	tests := []struct {
		name  string
		g     *core.Graph
		cycle []int
		want  error
	}{
		{"ring", g, []int{0, 1, 2, 3, 4, 0}, nil},
		{"reverse ring", g, []int{0, 4, 3, 2, 1, 0}, nil},
		{"uses chords", g, []int{0, 2, 1, 3, 4, 0}, nil},
		{"nil graph", nil, []int{0}, core.ErrGraphNil},
		{"too short", g, []int{0, 1, 2, 0}, core.ErrCycleLength},
		{"empty", g, nil, core.ErrCycleLength},
		{"open", g, []int{0, 1, 2, 3, 4, 1}, core.ErrCycleNotClosed},
		{"out of range", g, []int{0, 1, 2, 3, 7, 0}, core.ErrVertexOutOfRange},
		{"repeat", g, []int{0, 1, 2, 1, 4, 0}, core.ErrVertexRepeated},
		{"missing edge", g, []int{0, 1, 4, 3, 2, 0}, core.ErrMissingEdge},
		{"tiny graph", core.NewGraph(2), []int{0, 1, 0}, core.ErrCycleLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := core.ValidateCycle(tc.g, tc.cycle)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
