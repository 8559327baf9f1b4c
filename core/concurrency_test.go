// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hamcycle/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and every
// edge lands exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(v int) {
			defer wg.Done()
			g.AddEdge(0, v)
			g.AddEdge(v, 0) // duplicate from the other side
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.NumEdges())
	require.Len(t, g.Neighbors(0), num)
}

// TestConcurrentReaders runs snapshot/query readers against a writer.
func TestConcurrentReaders(t *testing.T) {
	const n = 64
	g := core.NewGraph(n)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			g.AddEdge(i, (i+1)%n)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = g.AdjacencySnapshot()
			_ = g.HasEdge(i, (i+1)%n)
			_ = g.Stats()
		}
	}()
	wg.Wait()

	require.Equal(t, n, g.NumEdges())
	require.True(t, g.IsConnected())
}
