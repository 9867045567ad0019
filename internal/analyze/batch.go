// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/review-engine/pkg/types"
)

// defaultWorkers bounds batch concurrency when the caller passes 0.
const defaultWorkers = 4

// TextExtractor converts a document file into plain text. Implementations
// return an empty string (not an error) when a readable file contains no
// extractable text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// BatchResult is the outcome for one document in a batch run. Exactly one
// of Features or Err is meaningful; Skipped marks readable files with no
// extractable text.
type BatchResult struct {
	Path     string
	Features FeatureResult
	Skipped  bool
	Err      error
}

// FeatureResult pairs the extracted text with its FeatureSet so callers can
// run review generation without re-extracting.
type FeatureResult struct {
	Text     string
	Features types.FeatureSet
}

// RunBatch analyzes every path concurrently with a worker pool bounded by
// cfg.Workers. Document pipelines share no mutable state, so one document's
// failure is recorded in its BatchResult and never affects another's.
// Results are returned in input order; progress lines go to w.
func RunBatch(ctx context.Context, a *Analyzer, extractor TextExtractor, paths []string, cfg types.BatchConfig, w io.Writer) ([]BatchResult, BatchSummary) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]BatchResult, len(paths))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = BatchResult{Path: path, Err: err}
				return nil
			}

			text, err := extractor.ExtractText(path)
			if err != nil {
				results[i] = BatchResult{Path: path, Err: err}
				mu.Lock()
				fmt.Fprintf(w, "failed  %s: %v\n", path, err)
				mu.Unlock()
				return nil
			}
			if text == "" {
				results[i] = BatchResult{Path: path, Skipped: true}
				mu.Lock()
				fmt.Fprintf(w, "skipped %s: no extractable text\n", path)
				mu.Unlock()
				return nil
			}

			features := a.Analyze(text)
			results[i] = BatchResult{
				Path:     path,
				Features: FeatureResult{Text: text, Features: features},
			}
			mu.Lock()
			fmt.Fprintf(w, "analyzed %s (%d words)\n", path, features.BasicStats.WordCount)
			mu.Unlock()
			return nil
		})
	}

	// Workers record failures per document instead of returning them,
	// so Wait only surfaces context cancellation.
	_ = g.Wait()

	var summary BatchSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Analyzed++
		}
	}
	return results, summary
}

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Analyzed + s.Skipped + s.Failed
}

// HasFailures reports whether any document failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}
