// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and inspect past analyses and reviews",
	Long: `History reads the local SQLite database written by analyze, review,
and batch runs with --save. Use subcommands to list recent runs or show
a single record in full.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent reviews (or analyses with --analyses)",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()

	if analyses, _ := cmd.Flags().GetBool("analyses"); analyses {
		records, err := s.ListAnalyses(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No analyses recorded.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %s\n", "ID", "Date", "Source", "Words")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 78))
		for _, r := range records {
			fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), truncate(r.Source, 40), r.WordCount)
		}
		return nil
	}

	records, err := s.ListReviews(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No reviews recorded.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %-7s  %s\n", "ID", "Date", "Source", "Score", "Recommendation")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %-7.1f  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), truncate(r.Source, 40), r.Overall, string(r.Recommendation))
	}
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one recorded review (or analysis with --analyses) in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	yamlOut, _ := cmd.Flags().GetBool("yaml")

	if analyses, _ := cmd.Flags().GetBool("analyses"); analyses {
		rec, err := s.GetAnalysis(ctx, id)
		if err != nil {
			return err
		}
		if yamlOut {
			return yaml.NewEncoder(os.Stdout).Encode(rec.Features)
		}
		writeFeatureReport(os.Stdout, rec.Source, rec.Features)
		return nil
	}

	rec, err := s.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if yamlOut {
		return yaml.NewEncoder(os.Stdout).Encode(rec.Review)
	}
	writeReviewReport(os.Stdout, rec.Source, rec.Review)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	historyCmd.PersistentFlags().String("data-dir", "", "directory for the history database (default: reviews)")
	historyCmd.PersistentFlags().Bool("analyses", false, "operate on analyses instead of reviews")

	historyShowCmd.Flags().Bool("yaml", false, "output the record as YAML")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
