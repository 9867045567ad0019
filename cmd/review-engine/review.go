// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-engine/internal/review"
	"github.com/pdiddy/review-engine/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]",
	Short: "Score a manuscript and generate a peer review",
	Long: `Review analyzes a manuscript, scores it against the four weighted
criteria (novelty, methodology, clarity, significance), and generates a
complete narrative review in the chosen style.

Criterion weights are 1-10 values that double as the prior score for
each criterion; document features adjust them up or down.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	path := args[0]

	analyzer, err := buildAnalyzer(cmd)
	if err != nil {
		return err
	}

	cfg := reviewConfig(cmd)
	generator, err := review.NewGeneratorFromConfig(cfg)
	if err != nil {
		return err
	}

	text, err := readManuscript(path)
	if err != nil {
		return err
	}
	features := analyzer.Analyze(text)

	date := time.Now().Format("2006-01-02")
	rv := generator.Review(text, features, cfg.Weights, cfg.Style, date)

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveReview(cmd, path, rv); err != nil {
			return err
		}
	}

	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		return yaml.NewEncoder(os.Stdout).Encode(rv)
	}
	writeReviewReport(os.Stdout, path, rv)
	return nil
}

func saveReview(cmd *cobra.Command, source string, rv types.Review) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SaveReview(context.Background(), source, rv)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved review %d\n", id)
	return nil
}

func init() {
	reviewCmd.Flags().String("style", "", `review style: "Academic Conference", "Journal Review", "Thesis Defense", or "Peer Review"`)
	reviewCmd.Flags().String("templates", "", "YAML file overriding the narrative templates")
	reviewCmd.Flags().Int("novelty", 8, "novelty weight (1-10)")
	reviewCmd.Flags().Int("methodology", 9, "methodology weight (1-10)")
	reviewCmd.Flags().Int("clarity", 7, "clarity weight (1-10)")
	reviewCmd.Flags().Int("significance", 8, "significance weight (1-10)")
	reviewCmd.Flags().String("vocabulary", "", "YAML file overriding the academic vocabulary")
	reviewCmd.Flags().Int("max-keywords", 0, "maximum keywords to extract (0 = default)")
	reviewCmd.Flags().Bool("yaml", false, "output the review as YAML")
	reviewCmd.Flags().Bool("save", false, "record the review in the history database")
	reviewCmd.Flags().String("data-dir", "", "directory for the history database (default: reviews)")

	rootCmd.AddCommand(reviewCmd)
}
