// SPDX-License-Identifier: MIT
//
// File: output.go
// Role: lipgloss styles and table rendering for terminal output.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/hamcycle/compare"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorFailure = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	title, muted, ok, fail, err, header, cell lipgloss.Style
}{
	title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	muted:  lipgloss.NewStyle().Foreground(colorMuted),
	ok:     lipgloss.NewStyle().Foreground(colorSuccess),
	fail:   lipgloss.NewStyle().Foreground(colorFailure),
	err:    lipgloss.NewStyle().Bold(true).Foreground(colorFailure),
	header: lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
	cell:   lipgloss.NewStyle().Padding(0, 1),
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.header
			}
			return styles.cell
		}).
		Headers(headers...)
}

func seconds(d time.Duration) string { return fmt.Sprintf("%.6fs", d.Seconds()) }

func ratio(k, n int) string { return strconv.Itoa(k) + "/" + strconv.Itoa(n) }

func bucketTable(buckets []compare.Bucket) string {
	t := newTable("sizes", "pósa ok", "pósa mean", "pósa attempts", "backtracking ok", "backtracking mean")
	for _, b := range buckets {
		t.Row(
			fmt.Sprintf("%d-%d", b.Low, b.High),
			ratio(b.PosaSuccesses, b.Trials),
			seconds(b.PosaMeanTime),
			strconv.FormatFloat(b.PosaMeanAttempts, 'f', 1, 64),
			ratio(b.BacktrackSuccesses, b.Trials),
			seconds(b.BacktrackMeanTime),
		)
	}

	return t.Render()
}

func trialTable(trials []compare.Trial) string {
	t := newTable("n", "#", "edges", "pósa", "pósa time", "backtracking", "backtracking time")
	for _, tr := range trials {
		t.Row(
			strconv.Itoa(tr.Size),
			strconv.Itoa(tr.Index),
			strconv.Itoa(tr.Edges),
			verdict(tr.Posa),
			seconds(tr.Posa.Duration),
			verdict(tr.Backtrack),
			seconds(tr.Backtrack.Duration),
		)
	}

	return t.Render()
}

func verdict(r compare.AlgorithmResult) string {
	switch {
	case r.Success:
		return "found"
	case r.TimedOut:
		return "timeout"
	default:
		return "none"
	}
}

// solveLine renders one algorithm's answer for `solve`.
func solveLine(name string, cycle []int, d time.Duration, detail string, timedOut bool) string {
	var status string
	switch {
	case cycle != nil:
		status = styles.ok.Render("found")
	case timedOut:
		status = styles.fail.Render("timeout")
	default:
		status = styles.fail.Render("no cycle")
	}
	line := fmt.Sprintf("%-13s %s in %s (%s)", name, status, seconds(d), detail)
	if cycle != nil {
		line += "\n  " + fmt.Sprint(cycle)
	}

	return line
}
