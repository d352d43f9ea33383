package batch

import (
	"context"
	"log/slog"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// Processor analyzes multiple passwords concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it is simpler and errgroup handles the concurrency correctly.
// Each password gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
type Processor struct {
	// analyzer is the shared engine. It is immutable and therefore safe
	// for concurrent use without coordination.
	analyzer *analyzer.Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging. Password values never appear
	// in log attributes; only indexes and counts are logged.
	logger *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 4 if not specified.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewProcessor creates a Processor using the given analyzer.
func NewProcessor(a *analyzer.Analyzer, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    a,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Process analyzes all passwords concurrently and returns a summary whose
// results are in input order. It respects context cancellation; a
// cancelled run returns the context error and no summary.
func (p *Processor) Process(ctx context.Context, passwords []string) (*model.Summary, error) {
	p.logger.Info("starting batch analysis",
		"total", len(passwords),
		"concurrency", p.concurrency,
	)

	// Pre-allocate to keep results in input order without locking:
	// each goroutine writes only its own slot.
	results := make([]*model.AnalysisResult, len(passwords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := p.analyzer.Analyze(password)
			if err != nil {
				p.logger.Error("analysis failed", "index", i, "error", err)
				return err
			}
			results[i] = result

			p.logger.Debug("analysis complete",
				"index", i+1,
				"total", len(passwords),
				"score", result.Score,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.NewSummary(results), nil
}
