// Package report renders tournament entries and rankings as fixed-width
// console lines.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/louisbranch/nontransitive/internal/contest"
	"github.com/louisbranch/nontransitive/internal/ranking"
	"github.com/louisbranch/nontransitive/internal/tournament"
)

// ResultLine describes a contest from the winner's side, or names both dice
// when they tied.
func ResultLine(r contest.Result) string {
	p := r.Percentages()
	switch r.Outcome {
	case contest.OutcomeAWins:
		return fmt.Sprintf("%7s %2d won with %2d%% wins and %2d%% ties, losing %2d%% of the time to %7s %2d",
			r.A.Name(), r.RollsA, p.AWins, p.Ties, p.BWins, r.B.Name(), r.RollsB)
	case contest.OutcomeBWins:
		return fmt.Sprintf("%7s %2d won with %2d%% wins and %2d%% ties, losing %2d%% of the time to %7s %2d",
			r.B.Name(), r.RollsB, p.BWins, p.Ties, p.AWins, r.A.Name(), r.RollsA)
	default:
		return fmt.Sprintf("Both %7s and %7s tied", r.A.Name(), r.B.Name())
	}
}

// EntryLine renders a scheduled entry, reporting failures against their spec.
func EntryLine(e tournament.Entry) string {
	if e.Err != nil {
		return fmt.Sprintf("%7s vs %7s at %2d rolls failed: %v", e.Spec.A.Name(), e.Spec.B.Name(), e.Spec.RollsA, e.Err)
	}
	return ResultLine(e.Result)
}

// RankingLine renders a label and its win count.
func RankingLine(e ranking.Entry) string {
	return fmt.Sprintf("%-7s %3d", e.Label, e.Wins)
}

// Write prints one line per entry, a blank line, then one line per ranking
// entry.
func Write(w io.Writer, entries []tournament.Entry, rank []ranking.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintln(bw, EntryLine(e))
	}
	fmt.Fprintln(bw)
	for _, r := range rank {
		fmt.Fprintln(bw, RankingLine(r))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
