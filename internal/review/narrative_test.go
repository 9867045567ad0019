// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/review-engine/pkg/types"
)

func TestReviewEmptyTextGuaranteedMinimums(t *testing.T) {
	rv := NewGenerator().Review("", types.FeatureSet{}, types.DefaultWeights(), types.StylePeerReview, "2026-08-31")

	if len(rv.Strengths) < minStrengths {
		t.Errorf("strengths = %d, want at least %d", len(rv.Strengths), minStrengths)
	}
	if len(rv.Weaknesses) < minWeaknesses {
		t.Errorf("weaknesses = %d, want at least %d", len(rv.Weaknesses), minWeaknesses)
	}
	if rv.Summary == "" {
		t.Error("summary is empty")
	}
	if rv.Comments == "" {
		t.Error("comments are empty")
	}
	if rv.Date != "2026-08-31" {
		t.Errorf("date = %q", rv.Date)
	}
}

func TestReviewListCaps(t *testing.T) {
	// Rock-bottom scores trigger every weakness and suggestion path.
	low := types.CriteriaWeights{
		types.CriterionNovelty:      1,
		types.CriterionMethodology:  1,
		types.CriterionClarity:      1,
		types.CriterionSignificance: 1,
	}
	features := types.FeatureSet{
		BasicStats:  types.BasicStats{WordCount: 500},
		Readability: types.Readability{FleschScore: 20, AvgSentenceLength: 40},
	}
	rv := NewGenerator().Review("text", features, low, types.StyleJournal, "")

	if len(rv.Weaknesses) > maxWeaknesses {
		t.Errorf("weaknesses = %d, want at most %d", len(rv.Weaknesses), maxWeaknesses)
	}
	if len(rv.Suggestions) > maxSuggestions {
		t.Errorf("suggestions = %d, want at most %d", len(rv.Suggestions), maxSuggestions)
	}
	if len(rv.Strengths) > maxStrengths {
		t.Errorf("strengths = %d, want at most %d", len(rv.Strengths), maxStrengths)
	}
}

func TestReviewListsHaveNoDuplicates(t *testing.T) {
	rv := NewGenerator().Review("novel machine learning framework", types.FeatureSet{
		BasicStats: types.BasicStats{WordCount: 800},
	}, types.DefaultWeights(), types.StyleConference, "")

	for _, list := range [][]string{rv.Strengths, rv.Weaknesses, rv.Suggestions} {
		seen := map[string]bool{}
		for _, item := range list {
			if seen[item] {
				t.Errorf("duplicate entry %q", item)
			}
			seen[item] = true
		}
	}
}

func TestReviewStyleOnlyAffectsNarrative(t *testing.T) {
	text := "A study of deep learning for document classification."
	features := types.FeatureSet{
		BasicStats:  types.BasicStats{WordCount: 1200},
		Readability: types.Readability{FleschScore: 55, GradeLevel: "College"},
	}
	weights := types.DefaultWeights()

	g := NewGenerator()
	conference := g.Review(text, features, weights, types.StyleConference, "")
	thesis := g.Review(text, features, weights, types.StyleThesisDefense, "")

	if !reflect.DeepEqual(conference.ScoreBreakdown, thesis.ScoreBreakdown) {
		t.Error("style changed the score breakdown")
	}
	if conference.Comments == thesis.Comments {
		t.Error("style did not change the narrative")
	}
}

func TestReviewDeterministic(t *testing.T) {
	text := "This paper presents a novel neural network system."
	features := types.FeatureSet{
		BasicStats:  types.BasicStats{WordCount: 900},
		Readability: types.Readability{FleschScore: 62},
		Keywords:    types.KeywordInfo{AcademicCoverage: 4},
	}
	g := NewGenerator()

	first := g.Review(text, features, types.DefaultWeights(), types.StyleJournal, "2026-01-01")
	second := g.Review(text, features, types.DefaultWeights(), types.StyleJournal, "2026-01-01")

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different reviews")
	}
}

func TestCommentsSubstituteSubjectAndContribution(t *testing.T) {
	text := "We apply machine learning and propose a novel method."
	rv := NewGenerator().Review(text, types.FeatureSet{
		BasicStats: types.BasicStats{WordCount: 400},
	}, types.DefaultWeights(), types.StylePeerReview, "")

	if strings.Contains(rv.Comments, "{subject}") || strings.Contains(rv.Comments, "{contribution}") {
		t.Errorf("unsubstituted placeholder in comments:\n%s", rv.Comments)
	}
	if !strings.Contains(rv.Comments, "machine learning") {
		t.Error("inferred subject missing from comments")
	}
}

func TestInferPaperInfo(t *testing.T) {
	tests := []struct {
		text             string
		wantSubject      string
		wantContribution string
	}{
		{"deep learning with a neural network", "deep learning methodologies", "novel insights"},
		{"natural language parsing improves accuracy", "natural language processing", "performance improvements"},
		{"", "the research topic", "novel insights"},
		{"a new framework for computer vision", "computer vision techniques", "novel methodological contributions"},
	}
	for _, tt := range tests {
		subject, contribution := inferPaperInfo(tt.text)
		if subject != tt.wantSubject {
			t.Errorf("subject(%q) = %q, want %q", tt.text, subject, tt.wantSubject)
		}
		if contribution != tt.wantContribution {
			t.Errorf("contribution(%q) = %q, want %q", tt.text, contribution, tt.wantContribution)
		}
	}
}

func TestPickDeterministicAndInRange(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	for _, score := range []float64{1, 5.5, 7.3, 10} {
		first := pick(pool, score)
		if first != pick(pool, score) {
			t.Errorf("pick(%f) not stable", score)
		}
	}
	if pick(nil, 5) != "" {
		t.Error("empty pool should yield empty string")
	}
}

func TestCapAndDedup(t *testing.T) {
	got := capAndDedup([]string{"x", "", "y", "x", "z", "w"}, 3)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("capAndDedup = %v, want %v", got, want)
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	if _, err := LoadTemplates("no-such-templates.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewGeneratorFromConfig(t *testing.T) {
	g, err := NewGeneratorFromConfig(types.ReviewConfig{Style: types.StylePeerReview})
	if err != nil {
		t.Fatalf("config without template file: %v", err)
	}
	if g == nil {
		t.Fatal("nil generator")
	}

	if _, err := NewGeneratorFromConfig(types.ReviewConfig{TemplateFile: "no-such-templates.yaml"}); err == nil {
		t.Error("missing template file did not error")
	}
}
