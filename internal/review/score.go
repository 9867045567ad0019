// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review turns a FeatureSet and caller-supplied criterion weights
// into a scored, narrated review. Scoring starts each criterion at its
// weight (a 1-10 prior) and applies a bounded feature adjustment; the
// narrative is assembled from fixed template pools with deterministic
// selection so identical inputs always produce identical reviews.
package review

import (
	"math"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Recommendation thresholds, evaluated high to low.
const (
	acceptThreshold        = 8.5
	minorRevisionThreshold = 7.0
	majorRevisionThreshold = 5.5
)

// Score derives the per-criterion and overall scores from a FeatureSet.
// Weights are normalized first: missing criteria default to the neutral
// prior and out-of-range values are clamped to [1,10]. A FeatureSet from
// empty text applies no adjustments, leaving every criterion at its prior.
func Score(features types.FeatureSet, weights types.CriteriaWeights) types.ScoreBreakdown {
	weights = weights.Normalized()

	scores := make(map[types.Criterion]float64, len(types.Criteria))
	for _, c := range types.Criteria {
		scores[c] = float64(weights[c])
	}

	if features.BasicStats.WordCount > 0 {
		scores[types.CriterionNovelty] = clampScore(scores[types.CriterionNovelty] + noveltyAdjustment(features))
		scores[types.CriterionMethodology] = clampScore(scores[types.CriterionMethodology] + methodologyAdjustment(features))
		scores[types.CriterionClarity] = clampScore(scores[types.CriterionClarity] + clarityAdjustment(features))
		scores[types.CriterionSignificance] = clampScore(scores[types.CriterionSignificance] + significanceAdjustment(features))
	}

	overall := overallScore(scores, weights)

	return types.ScoreBreakdown{
		Scores:         scores,
		Overall:        overall,
		Recommendation: Recommend(overall),
	}
}

// noveltyAdjustment maps academic keyword coverage (0-5 categories) to a
// shifted adjustment in [-1, +1].
func noveltyAdjustment(features types.FeatureSet) float64 {
	coverage := float64(features.Keywords.AcademicCoverage)
	return coverage/5*2 - 1
}

// methodologyAdjustment grants a point each for detected methodology and
// results sections.
func methodologyAdjustment(features types.FeatureSet) float64 {
	adj := 0.0
	if features.Structure.HasMethodology {
		adj++
	}
	if features.Structure.HasResults {
		adj++
	}
	return adj
}

// clarityAdjustment converts the Flesch score to a piecewise-linear
// adjustment around the 60-point threshold: 0..+2 above, -2..0 below.
func clarityAdjustment(features types.FeatureSet) float64 {
	flesch := features.Readability.FleschScore
	if flesch >= 60 {
		return math.Min((flesch-60)/20, 2)
	}
	return math.Max((flesch-60)/30, -2)
}

// significanceAdjustment combines citation density (baseline 0.5) with the
// mean academic-quality sub-score, shifted by -1.
func significanceAdjustment(features types.FeatureSet) float64 {
	return (features.Citations.CitationDensity - 0.5) + features.Quality.Mean()*2 - 1
}

// overallScore is the weighted mean of the criterion scores using the same
// weights that seeded the priors.
func overallScore(scores map[types.Criterion]float64, weights types.CriteriaWeights) float64 {
	totalWeight := 0
	weightedSum := 0.0
	for _, c := range types.Criteria {
		totalWeight += weights[c]
		weightedSum += scores[c] * float64(weights[c])
	}
	if totalWeight == 0 {
		return float64(types.NeutralPrior)
	}
	return weightedSum / float64(totalWeight)
}

// Recommend maps an overall score to its recommendation bucket.
func Recommend(overall float64) types.Recommendation {
	switch {
	case overall >= acceptThreshold:
		return types.RecommendAccept
	case overall >= minorRevisionThreshold:
		return types.RecommendMinorRevision
	case overall >= majorRevisionThreshold:
		return types.RecommendMajorRevision
	default:
		return types.RecommendReject
	}
}

func clampScore(s float64) float64 {
	if s < 1 {
		return 1
	}
	if s > 10 {
		return 10
	}
	return s
}
