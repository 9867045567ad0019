// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"github.com/pdiddy/review-engine/pkg/types"
)

// currentYear anchors the recent-citation window. Fixed rather than read
// from the clock so identical inputs always produce identical statistics.
const currentYear = 2026

// recentWindowYears is the width of the recent-citation window.
const recentWindowYears = 10

// Stats computes summary statistics over deduplicated citations and parsed
// references. wordCount is the document word count used for density;
// density is 0 when wordCount is 0.
func Stats(citations []types.Citation, references []types.Reference, wordCount int) types.CitationStats {
	stats := types.CitationStats{
		TotalCitations:  len(citations),
		TotalReferences: len(references),
	}

	if len(citations) > 0 {
		stats.KindCounts = make(map[types.CitationKind]int)
	}

	var years []int
	for _, c := range citations {
		stats.KindCounts[c.Kind]++
		if c.Year > 0 {
			years = append(years, c.Year)
			if c.Year >= currentYear-recentWindowYears {
				stats.RecentCitations++
			}
		}
	}

	if len(years) > 0 {
		min, max, sum := years[0], years[0], 0
		for _, y := range years {
			if y < min {
				min = y
			}
			if y > max {
				max = y
			}
			sum += y
		}
		stats.OldestYear = min
		stats.MostRecentYear = max
		stats.MeanYear = float64(sum) / float64(len(years))
	}

	if wordCount > 0 {
		stats.CitationDensity = float64(len(citations)) * 1000 / float64(wordCount)
	}

	return stats
}

// Analyze runs extraction and statistics in one pass: in-text citations,
// references, and the summary over both.
func Analyze(text string, wordCount int) ([]types.Citation, []types.Reference, types.CitationStats) {
	citations := Extract(text)
	references := ExtractReferences(text)
	return citations, references, Stats(citations, references, wordCount)
}
