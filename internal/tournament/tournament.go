// Package tournament schedules contests between every pair of dice across a
// range of roll counts.
//
// # Ordering
//
// Pairs are enumerated in the order the dice are given, each die paired with
// every die after it. For every pair, roll counts run from Range.Min to
// Range.Max. Schedule returns entries in exactly that order regardless of the
// order in which contests finish.
//
// # Concurrency
//
// Every (pair, roll count) contest is an independent task. Tasks run on a
// bounded group of goroutines, each with its own random source, and write
// only their own slot of the result slice. Schedule returns after every task
// has finished.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/louisbranch/nontransitive/internal/contest"
	"github.com/louisbranch/nontransitive/internal/dice"
	apperrors "github.com/louisbranch/nontransitive/internal/platform/errors"
	"github.com/louisbranch/nontransitive/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/louisbranch/nontransitive/internal/tournament"

// DefaultSamples is the number of trials simulated per contest.
const DefaultSamples = 1_000_000

// DefaultRange covers one to ten dice per side.
var DefaultRange = Range{Min: 1, Max: 10}

// ErrInvalidRange indicates a roll range that is empty or starts below one.
var ErrInvalidRange = apperrors.New(apperrors.CodeTournamentInvalidRange, "roll range must satisfy 1 <= min <= max")

// Range is an inclusive range of roll counts.
type Range struct {
	Min int
	Max int
}

// Validate rejects ranges that start below one or end before they start.
func (r Range) Validate() error {
	if r.Min < 1 || r.Max < r.Min {
		return apperrors.Detail(ErrInvalidRange,
			fmt.Sprintf("roll range must satisfy 1 <= min <= max, got %d..%d", r.Min, r.Max),
			map[string]string{"min": strconv.Itoa(r.Min), "max": strconv.Itoa(r.Max)})
	}
	return nil
}

// Len returns the number of roll counts in the range.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Pair is an unordered pair of dice, A listed before B.
type Pair struct {
	A dice.Die
	B dice.Die
}

// Pairs returns every 2-combination of dd in input order.
func Pairs(dd []dice.Die) []Pair {
	if len(dd) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(dd)*(len(dd)-1)/2)
	for i, a := range dd {
		for _, b := range dd[i+1:] {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs
}

// Plan lists the contest specs for every pair and roll count in reporting
// order. Only the range is validated; each spec is validated when it runs.
func Plan(dd []dice.Die, rolls Range, samples int) ([]contest.Spec, error) {
	if err := rolls.Validate(); err != nil {
		return nil, err
	}
	pairs := Pairs(dd)
	specs := make([]contest.Spec, 0, len(pairs)*rolls.Len())
	for _, p := range pairs {
		for n := rolls.Min; n <= rolls.Max; n++ {
			specs = append(specs, contest.Spec{A: p.A, B: p.B, RollsA: n, RollsB: n, Samples: samples})
		}
	}
	return specs, nil
}

// Entry is the outcome of one scheduled contest. Err is set when the contest
// could not run; Result is then the zero value.
type Entry struct {
	Spec   contest.Spec
	Result contest.Result
	Err    error
}

type options struct {
	workers int
	seeder  random.Seeder
	tracer  trace.Tracer
}

// Option configures Schedule.
type Option func(*options)

// WithWorkers bounds the number of contests running at once. Values below one
// use runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithSeeder sets the seed source used to build each contest's random source.
func WithSeeder(seeder random.Seeder) Option {
	return func(o *options) { o.seeder = seeder }
}

// WithTracerProvider traces contests with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp.Tracer(tracerName) }
}

// Schedule runs one contest per pair of dd and roll count in rolls, each with
// the given number of samples.
//
// A contest that fails records its error on its own entry and does not stop
// the others. The returned error is non-nil only when the range is invalid or
// ctx is cancelled; in the latter case contests that never started carry
// ctx.Err().
func Schedule(ctx context.Context, dd []dice.Die, rolls Range, samples int, opts ...Option) ([]Entry, error) {
	specs, err := Plan(dd, rolls, samples)
	if err != nil {
		return nil, err
	}

	o := options{seeder: random.NewSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}

	ctx, span := o.tracer.Start(ctx, "tournament.schedule", trace.WithAttributes(
		attribute.Int("tournament.dice", len(dd)),
		attribute.Int("tournament.contests", len(specs)),
		attribute.Int("tournament.workers", o.workers),
		attribute.Int("contest.samples", samples),
	))
	defer span.End()

	entries := make([]Entry, len(specs))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, spec := range specs {
		i, spec := i, spec // per-iteration copies (pre-Go 1.22 loop semantics)
		if err := ctx.Err(); err != nil {
			entries[i] = Entry{Spec: spec, Err: err}
			continue
		}
		g.Go(func() error {
			entries[i] = runContest(ctx, o, spec)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, e := range entries {
		if e.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("tournament.failed", failed))
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return entries, err
	}
	return entries, nil
}

func runContest(ctx context.Context, o options, spec contest.Spec) Entry {
	_, span := o.tracer.Start(ctx, "contest.run", trace.WithAttributes(
		attribute.String("contest.die_a", spec.A.Name()),
		attribute.String("contest.die_b", spec.B.Name()),
		attribute.Int("contest.rolls_a", spec.RollsA),
		attribute.Int("contest.rolls_b", spec.RollsB),
		attribute.Int("contest.samples", spec.Samples),
	))
	defer span.End()

	fail := func(err error) Entry {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Entry{Spec: spec, Err: err}
	}

	if err := spec.Validate(); err != nil {
		return fail(err)
	}
	rng, err := random.NewRand(o.seeder)
	if err != nil {
		return fail(apperrors.Wrap(apperrors.CodeSeedUnavailable, "seed contest", err))
	}
	res, err := contest.Run(spec, rng)
	if err != nil {
		return fail(err)
	}

	span.SetAttributes(
		attribute.String("contest.winner", res.Winner),
		attribute.Int("contest.a_wins", res.AWins),
		attribute.Int("contest.b_wins", res.BWins),
		attribute.Int("contest.ties", res.Ties),
	)
	return Entry{Spec: spec, Result: res}
}

// Results returns the results of the entries that ran, in entry order.
func Results(entries []Entry) []contest.Result {
	results := make([]contest.Result, 0, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			results = append(results, e.Result)
		}
	}
	return results
}

// Errors joins the errors of failed entries, or returns nil.
func Errors(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Spec, e.Err))
		}
	}
	return errors.Join(errs...)
}
