// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/review-engine/internal/analyze"
	"github.com/pdiddy/review-engine/internal/ingest"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Analyze every manuscript in a directory",
	Long: `Batch scans a directory for supported manuscripts (PDF, DOCX, plain
text) and analyzes them concurrently. Failures are reported per file and
do not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := batchConfig(cmd, args[0])

	paths, err := scanManuscripts(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported manuscripts in %s", cfg.InputDir)
	}

	analyzer, err := buildAnalyzer(cmd)
	if err != nil {
		return err
	}

	results, summary := analyze.RunBatch(context.Background(), analyzer,
		ingest.NewExtractor(), paths, cfg, os.Stdout)

	if save, _ := cmd.Flags().GetBool("save"); save {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		for _, r := range results {
			if r.Err != nil || r.Skipped {
				continue
			}
			if _, err := s.SaveAnalysis(context.Background(), r.Path, r.Features.Features); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(os.Stdout, "\nanalyzed: %d, skipped: %d, failed: %d\n",
		summary.Analyzed, summary.Skipped, summary.Failed)
	if summary.HasFailures() {
		return fmt.Errorf("%d manuscript(s) failed analysis", summary.Failed)
	}
	return nil
}

// scanManuscripts lists supported files directly under dir, sorted by name.
func scanManuscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !ingest.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func init() {
	batchCmd.Flags().Int("workers", 0, "concurrent workers (0 = default)")
	batchCmd.Flags().String("vocabulary", "", "YAML file overriding the academic vocabulary")
	batchCmd.Flags().Int("max-keywords", 0, "maximum keywords to extract (0 = default)")
	batchCmd.Flags().Bool("save", false, "record each analysis in the history database")
	batchCmd.Flags().String("data-dir", "", "directory for the history database (default: reviews)")

	rootCmd.AddCommand(batchCmd)
}
