// SPDX-License-Identifier: MIT

// Command hamcompare compares exhaustive backtracking against the Pósa
// heuristic for Hamiltonian cycles.
//
//	hamcompare run   --config bench.yaml --metrics-file metrics.prom
//	hamcompare solve --kind random --n 40 --p 0.2 --seed 7
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.err.Render("error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
