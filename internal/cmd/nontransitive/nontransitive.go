// Package nontransitive parses the tournament command configuration and runs
// the tournament.
package nontransitive

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/nontransitive/internal/dice"
	entrypoint "github.com/louisbranch/nontransitive/internal/platform/cmd"
	apperrors "github.com/louisbranch/nontransitive/internal/platform/errors"
	"github.com/louisbranch/nontransitive/internal/random"
	"github.com/louisbranch/nontransitive/internal/ranking"
	"github.com/louisbranch/nontransitive/internal/report"
	"github.com/louisbranch/nontransitive/internal/tournament"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidWorkers indicates a negative worker count.
var ErrInvalidWorkers = apperrors.New(apperrors.CodeConfigInvalidWorkers, "workers must be zero or positive")

// Config holds tournament command configuration. Sample count and roll range
// are fixed; only the dice selection and parallelism are configurable.
type Config struct {
	Dice    string `env:"DICE"    envDefault:"r,b,o,y,m"`
	Workers int    `env:"WORKERS" envDefault:"0"`
	Verbose bool   `env:"VERBOSE"`
}

// ParseConfig parses environment into a Config. The command takes no flags;
// fs still rejects stray arguments and answers -h.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the tournament and writes the report to out. Diagnostics go to
// errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceNontransitive,
		entrypoint.RunOptions{Logger: log.New(nonNil(errOut), "", 0)},
		func(ctx context.Context) error {
			return run(ctx, cfg, out, errOut, runOptions{samples: tournament.DefaultSamples})
		})
}

type runOptions struct {
	samples int
	seeder  random.Seeder
	tracer  trace.TracerProvider
}

func run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer, opts runOptions) error {
	out = nonNil(out)
	logger := log.New(nonNil(errOut), "", 0)

	// Configuration errors abort before any contest starts.
	if cfg.Workers < 0 {
		return apperrors.Detail(ErrInvalidWorkers,
			fmt.Sprintf("workers must be zero or positive, got %d", cfg.Workers),
			map[string]string{"workers": strconv.Itoa(cfg.Workers)})
	}
	dd, err := dice.ParseCodes(cfg.Dice)
	if err != nil {
		return fmt.Errorf("select dice: %w", err)
	}

	tp := opts.tracer
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	runID := uuid.NewString()
	ctx, span := tp.Tracer("github.com/louisbranch/nontransitive/internal/cmd/nontransitive").
		Start(ctx, "nontransitive.run", trace.WithAttributes(attribute.String("run.id", runID)))
	defer span.End()

	p := message.NewPrinter(language.English)
	if cfg.Verbose {
		logger.Print(p.Sprintf("run %s: %d dice, %d roll counts, %d samples per contest",
			runID, len(dd), tournament.DefaultRange.Len(), opts.samples))
	}

	scheduleOpts := []tournament.Option{
		tournament.WithWorkers(cfg.Workers),
		tournament.WithTracerProvider(tp),
	}
	if opts.seeder != nil {
		scheduleOpts = append(scheduleOpts, tournament.WithSeeder(opts.seeder))
	}

	start := time.Now()
	entries, err := tournament.Schedule(ctx, dd, tournament.DefaultRange, opts.samples, scheduleOpts...)
	if err != nil {
		return fmt.Errorf("schedule contests: %w", err)
	}
	rank := ranking.Rank(tournament.Results(entries))

	if err := report.Write(out, entries, rank); err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Print(p.Sprintf("run %s: %d contests in %v", runID, len(entries), time.Since(start).Round(time.Millisecond)))
	}
	if err := tournament.Errors(entries); err != nil {
		return fmt.Errorf("contests failed: %w", err)
	}
	return nil
}

func nonNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
