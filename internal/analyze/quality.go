// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Indicator lists for the academic-quality sub-scores. Occurrence counts
// are normalized per word and scaled so roughly one occurrence per 1000
// words saturates the score.
var (
	gapIndicators = []string{
		"gap", "limitation", "lack", "absence", "missing", "insufficient",
	}
	contributionIndicators = []string{
		"contribution", "novel", "new", "propose", "introduce", "present",
	}
	methodIndicators = []string{
		"method", "approach", "technique", "algorithm", "procedure", "protocol",
	}
	evidenceIndicators = []string{
		"result", "finding", "data", "evidence", "proof", "demonstrate",
	}
)

// qualityScale converts a per-word indicator rate to a [0,1] score.
const qualityScale = 1000

// assessQuality computes the four academic-quality indicator scores.
func assessQuality(doc types.Document) types.QualityIndicators {
	words := len(doc.Words)
	if words == 0 {
		return types.QualityIndicators{}
	}

	lower := strings.ToLower(doc.Text)
	score := func(indicators []string) float64 {
		count := 0
		for _, ind := range indicators {
			count += strings.Count(lower, ind)
		}
		s := float64(count) / float64(words) * qualityScale
		if s > 1 {
			return 1
		}
		return s
	}

	return types.QualityIndicators{
		ResearchGap:         score(gapIndicators),
		ContributionClarity: score(contributionIndicators),
		MethodologyRigor:    score(methodIndicators),
		EvidenceStrength:    score(evidenceIndicators),
	}
}
