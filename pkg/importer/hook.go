package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/config"
	"github.com/trustification/spog-ui-e2e/internal/models"
)

// Hook imports the fixtures and waits for them to be indexed. It runs once
// before the browser scenarios.
type Hook struct {
	importer *Importer
	runner   config.Runner
	searcher SBOMSearcher
	tokens   TokenSource
	out      io.Writer
}

type HookOption func(*Hook)

// WithSearcher enables the readiness poll when runner.pollIndex is set.
func WithSearcher(s SBOMSearcher) HookOption {
	return func(h *Hook) {
		h.searcher = s
	}
}

func WithOutput(w io.Writer) HookOption {
	return func(h *Hook) {
		h.out = w
	}
}

func NewHook(importer *Importer, tokens TokenSource, runner config.Runner, opts ...HookOption) *Hook {
	h := &Hook{
		importer: importer,
		tokens:   tokens,
		runner:   runner,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run imports both batches, prints the summary and waits. Import failures are
// only returned when runner.failOnImportError is set.
func (h *Hook) Run(ctx context.Context) ([]*models.BatchReport, error) {
	log := zap.S().Named("importer")

	reports := h.importer.ImportAll(ctx)
	PrintSummary(h.out, reports...)

	var importErr error
	if h.runner.FailOnImportError {
		var errs []error
		for _, r := range reports {
			if !r.OK() {
				errs = append(errs, fmt.Errorf("%s: %w", r.Kind.Plural(), r.Error()))
			}
		}
		importErr = errors.Join(errs...)
	}

	if h.runner.PollIndex && h.searcher != nil {
		ids := indexedIDs(reports)
		log.Infow("polling search index", "documents", len(ids), "timeout", h.runner.IndexTimeout)
		if err := PollIndexed(ctx, h.searcher, h.tokens, ids, h.runner.IndexTimeout); err != nil {
			return reports, errors.Join(importErr, fmt.Errorf("documents were not indexed: %w", err))
		}
		return reports, importErr
	}

	delay := h.runner.IndexingDelay()
	log.Debugw("waiting for indexing", "delay", delay)
	if err := Sleep(ctx, delay); err != nil {
		return reports, errors.Join(importErr, err)
	}

	return reports, importErr
}

func indexedIDs(reports []*models.BatchReport) []string {
	var ids []string
	for _, r := range reports {
		if r == nil || r.Kind != models.FixtureKindSBOM {
			continue
		}
		for _, res := range r.Succeeded() {
			ids = append(ids, res.Fixture)
		}
	}
	return ids
}
