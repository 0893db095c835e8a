package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/sumitsaluja27/n8n-Workflow/internal/logging"
	"github.com/sumitsaluja27/n8n-Workflow/internal/repository"
)

// Walker runs a Transformer over every record of a store, one at a time.
type Walker struct {
	store       repository.RecordStore
	transformer *Transformer
	out         io.Writer
	logger      *logging.Logger
	metrics     *walkerMetrics
}

// NewWalker creates a new Walker that prints one status line per record to out.
func NewWalker(store repository.RecordStore, transformer *Transformer, out io.Writer, logger *logging.Logger, opts ...WalkerOption) *Walker {
	var o walkerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Walker{
		store:       store,
		transformer: transformer,
		out:         out,
		logger:      logger,
		metrics:     walkerMetricsFrom(o.meterProvider),
	}
}

// Run transforms every record in the store. A record that fails is reported
// and skipped; it never stops the walk. The only errors returned are a failure
// to list the store, with a nil Report, and cancellation of ctx between
// records, with the Report so far.
func (w *Walker) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID: uuid.New().String(),
		Dir:   w.store.Dir(),
	}
	logger := w.logger.With("run_id", report.RunID, "dir", report.Dir)

	files, err := w.store.List(ctx)
	if err != nil {
		logger.Error("Failed to list workflows", "error", err)
		return nil, err
	}
	report.Results = make([]Result, 0, len(files))
	w.metrics.recordRun(ctx, report.Dir)
	logger.Debug("Walking workflows", "files", len(files), "locale", w.transformer.Locale())

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("Walk cancelled", "remaining", len(files)-len(report.Results))
			return report, err
		}

		res := w.transformer.TransformFile(ctx, file)
		report.Results = append(report.Results, res)
		w.metrics.recordResult(ctx, res)

		if res.OK() {
			fmt.Fprintf(w.out, "Processed %s\n", file)
			continue
		}
		fmt.Fprintf(w.out, "Error processing %s: %v\n", file, res.Err)
		logger.Warn("Failed to process workflow", "file", file, "error", res.Err)
	}

	logger.Info("Workflows processed", "processed", report.Processed(), "failed", report.Failed())
	return report, nil
}
