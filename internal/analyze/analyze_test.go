// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/review-engine/pkg/types"
)

// buildPaper assembles a small but structurally complete manuscript.
func buildPaper(abstractWords int) string {
	var b strings.Builder
	b.WriteString("Abstract\n\n")
	for i := 0; i < abstractWords; i++ {
		b.WriteString("word ")
	}
	b.WriteString("\n\nIntroduction\n\nThis work proposes a novel method for document review. ")
	b.WriteString("Prior approaches [1] and (Smith, 2020) establish the baseline.\n\n")
	b.WriteString("Methodology\n\nThe algorithm processes each document with a fixed technique.\n\n")
	b.WriteString("Results\n\nThe experiment shows a significant improvement in accuracy.\n\n")
	b.WriteString("Conclusion\n\nThe findings support the proposed approach.\n\n")
	b.WriteString("References\n\n[1] Smith, J. A baseline for document review. Journal of Examples, 2020.\n")
	return b.String()
}

func TestAnalyzeCompletePaper(t *testing.T) {
	fs := New().Analyze(buildPaper(150))

	if fs.BasicStats.WordCount == 0 {
		t.Fatal("word count is zero")
	}
	if fs.BasicStats.SentenceCount == 0 {
		t.Fatal("sentence count is zero")
	}
	if !fs.Structure.HasMethodology {
		t.Error("methodology section not detected")
	}
	if !fs.Structure.HasResults {
		t.Error("results section not detected")
	}
	if fs.Citations.TotalCitations == 0 {
		t.Error("no citations found")
	}
	if fs.Citations.TotalReferences != 1 {
		t.Errorf("reference count = %d, want 1", fs.Citations.TotalReferences)
	}
	if fs.Citations.CitationDensity <= 0 {
		t.Error("citation density not positive")
	}
	if len(fs.Keywords.TopKeywords) == 0 {
		t.Error("no keywords extracted")
	}
	if fs.Readability.FleschScore == 0 {
		t.Error("flesch score is zero for non-empty text")
	}
}

func TestAnalyzeAbstractQualityIdealBand(t *testing.T) {
	fs := New().Analyze(buildPaper(150))
	if fs.Structure.AbstractQuality != 1.0 {
		t.Errorf("abstract quality = %f, want 1.0 for a 150-word abstract", fs.Structure.AbstractQuality)
	}
}

func TestAnalyzeAbstractQualityBands(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{150, 1.0},
		{60, 0.7},
		{350, 0.7},
		{10, 0.3},
		{450, 0.3},
	}
	for _, tt := range tests {
		if got := abstractQuality(tt.words); got != tt.want {
			t.Errorf("abstractQuality(%d) = %f, want %f", tt.words, got, tt.want)
		}
	}
}

func TestConclusionQualityBands(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{0.10, 1.0},
		{0.03, 0.7},
		{0.20, 0.7},
		{0.01, 0.3},
		{0.50, 0.3},
	}
	for _, tt := range tests {
		if got := conclusionQuality(tt.ratio); got != tt.want {
			t.Errorf("conclusionQuality(%f) = %f, want %f", tt.ratio, got, tt.want)
		}
	}
}

func TestBalanceScore(t *testing.T) {
	uniform := map[types.SectionName]int{
		types.SectionIntroduction: 100,
		types.SectionMethodology:  100,
		types.SectionResults:      100,
	}
	if got := balanceScore(uniform); got != 1.0 {
		t.Errorf("uniform balance = %f, want 1.0", got)
	}

	skewed := map[types.SectionName]int{
		types.SectionIntroduction: 1000,
		types.SectionMethodology:  10,
	}
	if got := balanceScore(skewed); got >= 1.0 || got < 0 {
		t.Errorf("skewed balance = %f, want [0,1)", got)
	}

	if got := balanceScore(nil); got != 0 {
		t.Errorf("empty balance = %f, want 0", got)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	fs := New().Analyze("")

	if fs.BasicStats.WordCount != 0 || fs.BasicStats.SentenceCount != 0 {
		t.Errorf("empty text counts not zero: %+v", fs.BasicStats)
	}
	if len(fs.Keywords.TopKeywords) != 0 {
		t.Error("empty text produced keywords")
	}
	if fs.Structure.TotalSections != 0 {
		t.Error("empty text produced sections")
	}
	if fs.Citations.TotalCitations != 0 {
		t.Error("empty text produced citations")
	}
	if fs.Quality != (types.QualityIndicators{}) {
		t.Errorf("empty text quality not zero: %+v", fs.Quality)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := New()
	text := buildPaper(120)
	first := a.Analyze(text)
	second := a.Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input differs")
	}
}

func TestNewFromConfigDefaults(t *testing.T) {
	a, err := NewFromConfig(types.AnalysisConfig{})
	if err != nil {
		t.Fatalf("zero config: %v", err)
	}
	fs := a.Analyze(buildPaper(150))
	if len(fs.Keywords.TopKeywords) == 0 {
		t.Error("default config extracted no keywords")
	}
}

func TestNewFromConfigVocabularyOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	data := "categories:\n  methodology:\n    - spectroscopy\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := NewFromConfig(types.AnalysisConfig{VocabularyFile: path, MaxKeywords: 3})
	if err != nil {
		t.Fatal(err)
	}

	fs := a.Analyze("Spectroscopy drives the measurement. Spectroscopy readings stay stable across repeated trials.")
	if fs.Keywords.CategoryDensity["methodology"] == 0 {
		t.Error("overridden methodology terms not counted")
	}
	if len(fs.Keywords.TopKeywords) > 3 {
		t.Errorf("got %d keywords, want at most 3", len(fs.Keywords.TopKeywords))
	}
}

func TestNewFromConfigMissingVocabulary(t *testing.T) {
	if _, err := NewFromConfig(types.AnalysisConfig{VocabularyFile: "no-such-vocab.yaml"}); err == nil {
		t.Error("missing vocabulary file did not error")
	}
}

func TestQualityIndicatorsBounded(t *testing.T) {
	// Indicator-heavy text must clamp at 1.0.
	text := strings.Repeat("novel new contribution propose introduce present ", 50)
	q := assessQuality(NewDocument(text))
	if q.ContributionClarity != 1.0 {
		t.Errorf("contribution clarity = %f, want clamped 1.0", q.ContributionClarity)
	}
	if q.ResearchGap < 0 || q.ResearchGap > 1 {
		t.Errorf("research gap out of range: %f", q.ResearchGap)
	}
}
