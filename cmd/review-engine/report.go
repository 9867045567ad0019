// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// writeFeatureReport renders a FeatureSet as a plain-text report.
func writeFeatureReport(w io.Writer, source string, fs types.FeatureSet) {
	fmt.Fprintf(w, "Analysis: %s\n", source)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\nBasic Statistics")
	fmt.Fprintf(w, "  words:      %d\n", fs.BasicStats.WordCount)
	fmt.Fprintf(w, "  sentences:  %d\n", fs.BasicStats.SentenceCount)
	fmt.Fprintf(w, "  paragraphs: %d\n", fs.BasicStats.ParagraphCount)

	fmt.Fprintln(w, "\nReadability")
	fmt.Fprintf(w, "  flesch reading ease:   %.1f\n", fs.Readability.FleschScore)
	fmt.Fprintf(w, "  flesch-kincaid grade:  %.1f\n", fs.Readability.FleschKincaidGrade)
	fmt.Fprintf(w, "  gunning fog:           %.1f\n", fs.Readability.GunningFog)
	fmt.Fprintf(w, "  automated readability: %.1f\n", fs.Readability.AutomatedReadability)
	fmt.Fprintf(w, "  grade level:           %s\n", fs.Readability.GradeLevel)

	fmt.Fprintln(w, "\nStructure")
	fmt.Fprintf(w, "  sections detected: %d\n", fs.Structure.TotalSections)
	for _, name := range types.CanonicalSections {
		if wc, ok := fs.Structure.Sections[name]; ok {
			fmt.Fprintf(w, "    %-18s %d words\n", string(name), wc)
		}
	}
	fmt.Fprintf(w, "  abstract quality:   %.2f\n", fs.Structure.AbstractQuality)
	fmt.Fprintf(w, "  conclusion quality: %.2f\n", fs.Structure.ConclusionQuality)
	fmt.Fprintf(w, "  section balance:    %.2f\n", fs.Structure.BalanceScore)

	fmt.Fprintln(w, "\nCitations")
	fmt.Fprintf(w, "  in-text citations: %d\n", fs.Citations.TotalCitations)
	fmt.Fprintf(w, "  references:        %d\n", fs.Citations.TotalReferences)
	fmt.Fprintf(w, "  recent (10y):      %d\n", fs.Citations.RecentCitations)
	fmt.Fprintf(w, "  density (per 1k):  %.2f\n", fs.Citations.CitationDensity)

	if len(fs.Keywords.TopKeywords) > 0 {
		fmt.Fprintln(w, "\nTop Keywords")
		for i, kw := range fs.Keywords.TopKeywords {
			if i == 10 {
				break
			}
			fmt.Fprintf(w, "  %-20s %d\n", kw.Term, kw.Count)
		}
	}
	fmt.Fprintf(w, "\nAcademic vocabulary coverage: %d/5 categories\n", fs.Keywords.AcademicCoverage)
}

// writeReviewReport renders a Review as a plain-text report.
func writeReviewReport(w io.Writer, source string, rv types.Review) {
	fmt.Fprintf(w, "Review: %s\n", source)
	if rv.Date != "" {
		fmt.Fprintf(w, "Date: %s\n", rv.Date)
	}
	fmt.Fprintf(w, "Style: %s\n", string(rv.Style))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\nScores")
	for _, c := range types.Criteria {
		fmt.Fprintf(w, "  %-14s %.1f/10\n", string(c), rv.Scores[c])
	}
	fmt.Fprintf(w, "  %-14s %.1f/10\n", "overall", rv.Overall)
	fmt.Fprintf(w, "\nRecommendation: %s\n", string(rv.Recommendation))

	writeList(w, "Strengths", rv.Strengths)
	writeList(w, "Weaknesses", rv.Weaknesses)
	writeList(w, "Suggestions", rv.Suggestions)

	fmt.Fprintln(w, "\nDetailed Comments")
	fmt.Fprintln(w, rv.Comments)

	fmt.Fprintln(w, "\nSummary")
	fmt.Fprintln(w, rv.Summary)
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
