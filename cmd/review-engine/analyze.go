// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-engine/internal/analyze"
	"github.com/pdiddy/review-engine/internal/ingest"
	"github.com/pdiddy/review-engine/internal/store"
	"github.com/pdiddy/review-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Extract document features from a manuscript",
	Long: `Analyze extracts the full feature set from a manuscript: basic
statistics, readability indices, section structure, keywords, citations,
writing patterns, and academic-quality indicators. Accepts PDF, DOCX,
and plain-text files.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	analyzer, err := buildAnalyzer(cmd)
	if err != nil {
		return err
	}

	text, err := readManuscript(path)
	if err != nil {
		return err
	}
	features := analyzer.Analyze(text)

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveAnalysis(cmd, path, features); err != nil {
			return err
		}
	}

	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		return yaml.NewEncoder(os.Stdout).Encode(features)
	}
	writeFeatureReport(os.Stdout, path, features)
	return nil
}

// readManuscript resolves the text for a file argument; "-" reads plain
// text from stdin.
func readManuscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return ingest.CleanText(string(data)), nil
	}
	return ingest.NewExtractor().ExtractText(path)
}

// buildAnalyzer assembles an Analyzer from the resolved analysis config.
func buildAnalyzer(cmd *cobra.Command) (*analyze.Analyzer, error) {
	return analyze.NewFromConfig(analysisConfig(cmd))
}

func saveAnalysis(cmd *cobra.Command, source string, features types.FeatureSet) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SaveAnalysis(context.Background(), source, features)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved analysis %d\n", id)
	return nil
}

// openStore opens the history database from the resolved store config.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	return store.NewStore(storeConfig(cmd))
}

func init() {
	analyzeCmd.Flags().String("vocabulary", "", "YAML file overriding the academic vocabulary")
	analyzeCmd.Flags().Int("max-keywords", 0, "maximum keywords to extract (0 = default)")
	analyzeCmd.Flags().Bool("yaml", false, "output the feature set as YAML")
	analyzeCmd.Flags().Bool("save", false, "record the analysis in the history database")
	analyzeCmd.Flags().String("data-dir", "", "directory for the history database (default: reviews)")

	rootCmd.AddCommand(analyzeCmd)
}
