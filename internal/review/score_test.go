// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"math"
	"testing"

	"github.com/pdiddy/review-engine/pkg/types"
)

// featureSet builds a FeatureSet with enough signal for adjustment paths.
func featureSet(flesch float64, coverage int, hasMethod, hasResults bool, density float64) types.FeatureSet {
	return types.FeatureSet{
		BasicStats: types.BasicStats{WordCount: 1000, SentenceCount: 50},
		Readability: types.Readability{
			FleschScore: flesch,
		},
		Keywords: types.KeywordInfo{AcademicCoverage: coverage},
		Structure: types.StructureInfo{
			HasMethodology: hasMethod,
			HasResults:     hasResults,
		},
		Citations: types.CitationStats{CitationDensity: density},
	}
}

func TestScoreEmptyFeaturesKeepsPriors(t *testing.T) {
	weights := types.CriteriaWeights{
		types.CriterionNovelty:      8,
		types.CriterionMethodology:  9,
		types.CriterionClarity:      7,
		types.CriterionSignificance: 8,
	}
	b := Score(types.FeatureSet{}, weights)

	for c, w := range weights {
		if b.Scores[c] != float64(w) {
			t.Errorf("%s = %f, want prior %d", c, b.Scores[c], w)
		}
	}
}

func TestScoreMissingWeightDefaultsToNeutralPrior(t *testing.T) {
	b := Score(types.FeatureSet{}, types.CriteriaWeights{types.CriterionNovelty: 9})
	if b.Scores[types.CriterionClarity] != float64(types.NeutralPrior) {
		t.Errorf("clarity = %f, want neutral prior %d", b.Scores[types.CriterionClarity], types.NeutralPrior)
	}
}

func TestScoreWeightsClamped(t *testing.T) {
	b := Score(types.FeatureSet{}, types.CriteriaWeights{
		types.CriterionNovelty:      42,
		types.CriterionMethodology:  -3,
		types.CriterionClarity:      7,
		types.CriterionSignificance: 7,
	})
	if b.Scores[types.CriterionNovelty] != 10 {
		t.Errorf("oversized weight not clamped: %f", b.Scores[types.CriterionNovelty])
	}
	if b.Scores[types.CriterionMethodology] != 1 {
		t.Errorf("negative weight not clamped: %f", b.Scores[types.CriterionMethodology])
	}
}

func TestMethodologyAdjustment(t *testing.T) {
	weights := types.CriteriaWeights{
		types.CriterionNovelty:      5,
		types.CriterionMethodology:  5,
		types.CriterionClarity:      5,
		types.CriterionSignificance: 5,
	}

	none := Score(featureSet(60, 0, false, false, 0.5), weights)
	one := Score(featureSet(60, 0, true, false, 0.5), weights)
	both := Score(featureSet(60, 0, true, true, 0.5), weights)

	m := types.CriterionMethodology
	if one.Scores[m] != none.Scores[m]+1 {
		t.Errorf("one section: %f, want %f", one.Scores[m], none.Scores[m]+1)
	}
	if both.Scores[m] != none.Scores[m]+2 {
		t.Errorf("both sections: %f, want %f", both.Scores[m], none.Scores[m]+2)
	}
}

func TestClarityTracksFlesch(t *testing.T) {
	weights := types.DefaultWeights()

	readable := Score(featureSet(75, 3, true, true, 1.0), weights)
	dense := Score(featureSet(35, 3, true, true, 1.0), weights)

	c := types.CriterionClarity
	if readable.Scores[c] <= dense.Scores[c] {
		t.Errorf("flesch 75 clarity %f not above flesch 35 clarity %f",
			readable.Scores[c], dense.Scores[c])
	}
}

func TestScoresStayInRange(t *testing.T) {
	extremes := []types.FeatureSet{
		featureSet(100, 5, true, true, 50),
		featureSet(0, 0, false, false, 0),
		{},
	}
	weightSets := []types.CriteriaWeights{
		{types.CriterionNovelty: 10, types.CriterionMethodology: 10, types.CriterionClarity: 10, types.CriterionSignificance: 10},
		{types.CriterionNovelty: 1, types.CriterionMethodology: 1, types.CriterionClarity: 1, types.CriterionSignificance: 1},
		types.DefaultWeights(),
	}

	for _, fs := range extremes {
		for _, w := range weightSets {
			b := Score(fs, w)
			for c, s := range b.Scores {
				if s < 1 || s > 10 {
					t.Errorf("%s score %f out of [1,10]", c, s)
				}
			}
			if b.Overall < 1 || b.Overall > 10 {
				t.Errorf("overall %f out of [1,10]", b.Overall)
			}
		}
	}
}

func TestOverallUsesWeightedMean(t *testing.T) {
	// Uniform weights, no adjustments: overall equals the common prior.
	w := types.CriteriaWeights{
		types.CriterionNovelty:      6,
		types.CriterionMethodology:  6,
		types.CriterionClarity:      6,
		types.CriterionSignificance: 6,
	}
	b := Score(types.FeatureSet{}, w)
	if math.Abs(b.Overall-6) > 1e-9 {
		t.Errorf("overall = %f, want 6", b.Overall)
	}
}

func TestWeightIncreaseNeverLowersOverall(t *testing.T) {
	fs := featureSet(65, 3, true, true, 0.8)
	base := types.CriteriaWeights{
		types.CriterionNovelty:      7,
		types.CriterionMethodology:  7,
		types.CriterionClarity:      7,
		types.CriterionSignificance: 7,
	}
	before := Score(fs, base).Overall

	for _, c := range types.Criteria {
		for bump := 1; bump <= 3; bump++ {
			raised := types.CriteriaWeights{}
			for k, v := range base {
				raised[k] = v
			}
			raised[c] += bump
			after := Score(fs, raised).Overall
			if after < before-1e-9 {
				t.Errorf("raising %s weight by %d lowered overall %f -> %f", c, bump, before, after)
			}
		}
	}
}

func TestRecommendationThresholds(t *testing.T) {
	tests := []struct {
		overall float64
		want    types.Recommendation
	}{
		{8.5, types.RecommendAccept},
		{8.49999, types.RecommendMinorRevision},
		{7.0, types.RecommendMinorRevision},
		{6.9, types.RecommendMajorRevision},
		{5.5, types.RecommendMajorRevision},
		{5.49, types.RecommendReject},
		{1.0, types.RecommendReject},
		{10.0, types.RecommendAccept},
	}
	for _, tt := range tests {
		if got := Recommend(tt.overall); got != tt.want {
			t.Errorf("Recommend(%f) = %q, want %q", tt.overall, got, tt.want)
		}
	}
}
