// Package ranking tallies contest winners into a global ranking.
package ranking

import (
	"cmp"
	"slices"

	"github.com/louisbranch/nontransitive/internal/contest"
)

// Entry is one label's position in the ranking.
type Entry struct {
	Label string
	Wins  int
}

// Rank counts how many results each winner label carries, including
// contest.TieLabel, and sorts by count descending. Equal counts are ordered
// by label so the ranking is deterministic.
func Rank(results []contest.Result) []Entry {
	counts := Tally(results)
	entries := make([]Entry, 0, len(counts))
	for label, wins := range counts {
		entries = append(entries, Entry{Label: label, Wins: wins})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return entries
}

// Tally maps each winner label to the number of results it won.
func Tally(results []contest.Result) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		counts[r.Winner]++
	}
	return counts
}
