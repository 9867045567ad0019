// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"math"

	"github.com/pdiddy/review-engine/internal/segment"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Abstract length bands, in words.
const (
	abstractIdealMin = 100
	abstractIdealMax = 300
	abstractOkMin    = 50
	abstractOkMax    = 400
)

// Conclusion share bands, as a fraction of total section words.
const (
	conclusionIdealMin = 0.05
	conclusionIdealMax = 0.15
	conclusionOkMin    = 0.02
	conclusionOkMax    = 0.25
)

// Piecewise band scores.
const (
	bandIdeal = 1.0
	bandOk    = 0.7
	bandPoor  = 0.3
)

// analyzeStructure derives layout quality sub-scores from the section map.
// A document with no detected sections gets all-zero scores.
func analyzeStructure(sections types.SectionMap) types.StructureInfo {
	info := types.StructureInfo{
		Sections:      segment.WordCounts(sections),
		TotalSections: len(sections),
	}

	if abs, ok := sections[types.SectionAbstract]; ok {
		info.AbstractQuality = abstractQuality(abs.WordCount)
	}

	totalWords := 0
	for _, n := range info.Sections {
		totalWords += n
	}

	if conc, ok := sections[types.SectionConclusion]; ok && totalWords > 0 {
		info.ConclusionQuality = conclusionQuality(float64(conc.WordCount) / float64(totalWords))
	}

	info.BalanceScore = balanceScore(info.Sections)

	_, info.HasMethodology = sections[types.SectionMethodology]
	_, info.HasResults = sections[types.SectionResults]

	return info
}

func abstractQuality(words int) float64 {
	switch {
	case words >= abstractIdealMin && words <= abstractIdealMax:
		return bandIdeal
	case (words >= abstractOkMin && words < abstractIdealMin) ||
		(words > abstractIdealMax && words <= abstractOkMax):
		return bandOk
	default:
		return bandPoor
	}
}

func conclusionQuality(ratio float64) float64 {
	switch {
	case ratio >= conclusionIdealMin && ratio <= conclusionIdealMax:
		return bandIdeal
	case (ratio >= conclusionOkMin && ratio < conclusionIdealMin) ||
		(ratio > conclusionIdealMax && ratio <= conclusionOkMax):
		return bandOk
	default:
		return bandPoor
	}
}

// balanceScore is 1 - stdev/mean over section word counts, clamped to [0,1].
// Zero when there are no sections.
func balanceScore(sections map[types.SectionName]int) float64 {
	if len(sections) == 0 {
		return 0
	}

	sum := 0.0
	for _, n := range sections {
		sum += float64(n)
	}
	mean := sum / float64(len(sections))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, n := range sections {
		d := float64(n) - mean
		variance += d * d
	}
	stdev := math.Sqrt(variance / float64(len(sections)))

	score := 1 - stdev/mean
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
