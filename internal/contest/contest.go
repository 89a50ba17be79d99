// Package contest runs Monte Carlo contests between two dice.
//
// A contest rolls RollsA copies of die A and RollsB copies of die B, sums
// each side and compares the totals. Repeating that Samples times estimates
// how often each side wins or ties.
package contest

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/louisbranch/nontransitive/internal/dice"
	apperrors "github.com/louisbranch/nontransitive/internal/platform/errors"
)

// TieLabel is the winner label of a contest where neither side won more often.
const TieLabel = "tie"

// ErrInvalidSamples indicates a contest with fewer than one sample.
var ErrInvalidSamples = apperrors.New(apperrors.CodeContestInvalidSamples, "sample count must be at least 1")

// ErrInvalidRolls indicates a side rolls fewer than one die, or a die is missing.
var ErrInvalidRolls = apperrors.New(apperrors.CodeContestInvalidRolls, "roll counts must be at least 1")

// ErrMissingSource indicates Run was called without a random source.
var ErrMissingSource = apperrors.New(apperrors.CodeContestMissingSource, "random source is required")

// Outcome is the overall result of a contest.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeAWins
	OutcomeBWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "Unspecified"
	case OutcomeAWins:
		return "A wins"
	case OutcomeBWins:
		return "B wins"
	case OutcomeTie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Spec defines one contest.
type Spec struct {
	A       dice.Die
	B       dice.Die
	RollsA  int
	RollsB  int
	Samples int
}

// Validate reports the first precondition the spec violates.
func (s Spec) Validate() error {
	if s.Samples < 1 {
		return apperrors.Detail(ErrInvalidSamples,
			fmt.Sprintf("sample count must be at least 1, got %d", s.Samples),
			map[string]string{"samples": strconv.Itoa(s.Samples)})
	}
	if s.A.IsZero() || s.B.IsZero() {
		return apperrors.Detail(ErrInvalidRolls, "both dice are required", nil)
	}
	if s.RollsA < 1 || s.RollsB < 1 {
		return apperrors.Detail(ErrInvalidRolls,
			fmt.Sprintf("roll counts must be at least 1, got %s=%d %s=%d", s.A.Name(), s.RollsA, s.B.Name(), s.RollsB),
			map[string]string{"rolls_a": strconv.Itoa(s.RollsA), "rolls_b": strconv.Itoa(s.RollsB)})
	}
	return nil
}

func (s Spec) String() string {
	return fmt.Sprintf("%s x%d vs %s x%d (%d samples)", s.A.Name(), s.RollsA, s.B.Name(), s.RollsB, s.Samples)
}

// Result is the tally of a finished contest.
//
// AWins+BWins+Ties always equals Samples. BWins is derived as
// Samples-AWins-Ties rather than counted separately.
type Result struct {
	Spec
	AWins   int
	BWins   int
	Ties    int
	Outcome Outcome
	// Winner is the name of the winning die, or TieLabel.
	Winner string
}

// Percentages holds each count as a whole percentage of the samples.
type Percentages struct {
	AWins int
	BWins int
	Ties  int
}

// Percentages truncates 100*count/Samples toward zero for every count, so the
// three values may sum to as little as 98.
func (r Result) Percentages() Percentages {
	return Percentages{
		AWins: percent(r.AWins, r.Samples),
		BWins: percent(r.BWins, r.Samples),
		Ties:  percent(r.Ties, r.Samples),
	}
}

// Run simulates the contest described by spec using rng.
//
// rng is used by this call only; callers running contests in parallel must
// give each one its own source.
func Run(spec Spec, rng *rand.Rand) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	if rng == nil {
		return Result{}, ErrMissingSource
	}

	aWins, ties := 0, 0
	for i := 0; i < spec.Samples; i++ {
		sumA := spec.A.Sum(rng, spec.RollsA)
		sumB := spec.B.Sum(rng, spec.RollsB)
		switch {
		case sumA > sumB:
			aWins++
		case sumA == sumB:
			ties++
		}
	}
	return NewResult(spec, aWins, ties)
}

// NewResult builds a Result from the number of A wins and ties, deriving the
// B wins, outcome and winner label.
func NewResult(spec Spec, aWins, ties int) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	if aWins < 0 || ties < 0 || aWins+ties > spec.Samples {
		return Result{}, fmt.Errorf("tally %d wins and %d ties exceeds %d samples", aWins, ties, spec.Samples)
	}

	bWins := spec.Samples - aWins - ties

	var outcome Outcome
	switch {
	case aWins > bWins:
		outcome = OutcomeAWins
	case aWins == bWins:
		outcome = OutcomeTie
	default:
		outcome = OutcomeBWins
	}

	return Result{
		Spec:    spec,
		AWins:   aWins,
		BWins:   bWins,
		Ties:    ties,
		Outcome: outcome,
		Winner:  winnerLabel(spec, outcome),
	}, nil
}

func winnerLabel(spec Spec, outcome Outcome) string {
	switch outcome {
	case OutcomeAWins:
		return spec.A.Name()
	case OutcomeBWins:
		return spec.B.Name()
	default:
		return TieLabel
	}
}

func percent(count, samples int) int {
	return 100 * count / samples
}
