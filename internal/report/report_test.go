package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/nontransitive/internal/contest"
	"github.com/louisbranch/nontransitive/internal/dice"
	"github.com/louisbranch/nontransitive/internal/ranking"
	"github.com/louisbranch/nontransitive/internal/tournament"
)

func mustResult(t *testing.T, spec contest.Spec, aWins, ties int) contest.Result {
	t.Helper()
	r, err := contest.NewResult(spec, aWins, ties)
	if err != nil {
		t.Fatalf("NewResult returned error: %v", err)
	}
	return r
}

func TestResultLine(t *testing.T) {
	spec := contest.Spec{A: dice.Red, B: dice.Blue, RollsA: 1, RollsB: 1, Samples: 1000}
	tcs := []struct {
		name        string
		aWins, ties int
		want        string
	}{
		{
			name:  "a wins",
			aWins: 583, ties: 0,
			want: "    Red  1 won with 58% wins and  0% ties, losing 41% of the time to    Blue  1",
		},
		{
			name:  "b wins",
			aWins: 300, ties: 105,
			want: "   Blue  1 won with 59% wins and 10% ties, losing 30% of the time to     Red  1",
		},
		{
			name:  "tie",
			aWins: 450, ties: 100,
			want: "Both     Red and    Blue tied",
		},
	}
	for _, tc := range tcs {
		got := ResultLine(mustResult(t, spec, tc.aWins, tc.ties))
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResultLineWideRolls(t *testing.T) {
	spec := contest.Spec{A: dice.Magenta, B: dice.Yellow, RollsA: 10, RollsB: 10, Samples: 100}
	got := ResultLine(mustResult(t, spec, 60, 5))
	want := "Magenta 10 won with 60% wins and  5% ties, losing 35% of the time to  Yellow 10"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEntryLineFailure(t *testing.T) {
	e := tournament.Entry{
		Spec: contest.Spec{A: dice.Red, B: dice.Olive, RollsA: 3, RollsB: 3},
		Err:  errors.New("seed contest: entropy exhausted"),
	}
	want := "    Red vs   Olive at  3 rolls failed: seed contest: entropy exhausted"
	if got := EntryLine(e); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRankingLine(t *testing.T) {
	if got := RankingLine(ranking.Entry{Label: "Blue", Wins: 47}); got != "Blue     47" {
		t.Fatalf("unexpected ranking line %q", got)
	}
}

func TestWriteLayout(t *testing.T) {
	spec := contest.Spec{A: dice.Red, B: dice.Blue, RollsA: 2, RollsB: 2, Samples: 10}
	entries := []tournament.Entry{{Spec: spec, Result: mustResult(t, spec, 7, 1)}}
	rank := []ranking.Entry{{Label: "Red", Wins: 1}}

	var buf bytes.Buffer
	if err := Write(&buf, entries, rank); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "    Red  2 won with 70% wins") {
		t.Fatalf("unexpected result line %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected blank separator, got %q", lines[1])
	}
	if lines[2] != "Red       1" {
		t.Fatalf("unexpected ranking line %q", lines[2])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritePropagatesWriterError(t *testing.T) {
	if err := Write(failingWriter{}, nil, nil); err == nil {
		t.Fatal("expected write error")
	}
}
