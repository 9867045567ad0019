// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BasicStats holds raw document counts.
type BasicStats struct {
	WordCount      int `json:"word_count" yaml:"word_count"`
	SentenceCount  int `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount int `json:"paragraph_count" yaml:"paragraph_count"`
	CharacterCount int `json:"character_count" yaml:"character_count"`

	// AvgWordsPerSentence is WordCount / SentenceCount, 0-guarded.
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence" yaml:"avg_words_per_sentence"`

	// AvgSentencesPerParagraph is SentenceCount / ParagraphCount, 0-guarded.
	AvgSentencesPerParagraph float64 `json:"avg_sentences_per_paragraph" yaml:"avg_sentences_per_paragraph"`
}

// Readability holds the standard readability indices plus derived metrics.
type Readability struct {
	FleschScore          float64 `json:"flesch_score" yaml:"flesch_score"`
	FleschKincaidGrade   float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	GunningFog           float64 `json:"gunning_fog" yaml:"gunning_fog"`
	AutomatedReadability float64 `json:"automated_readability" yaml:"automated_readability"`

	// AvgSentenceLength is words per sentence.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// ComplexWordPercent is the share of words with more than two syllables.
	ComplexWordPercent float64 `json:"complex_word_percent" yaml:"complex_word_percent"`

	// GradeLevel is the coarse label derived from FleschScore.
	GradeLevel string `json:"grade_level" yaml:"grade_level"`
}

// Keyword is a ranked salient term.
type Keyword struct {
	Term string `json:"term" yaml:"term"`

	// Count is the raw occurrence count in the document.
	Count int `json:"count" yaml:"count"`

	// Relevance is the ranking score: TF-IDF over sentence pseudo-documents
	// when the document has enough sentences, raw frequency otherwise.
	Relevance float64 `json:"relevance" yaml:"relevance"`
}

// KeywordInfo holds keyword extraction results.
type KeywordInfo struct {
	// TopKeywords are the highest-relevance terms, best first.
	TopKeywords []Keyword `json:"top_keywords" yaml:"top_keywords"`

	// CategoryDensity maps each academic vocabulary category to its
	// occurrence density as a percentage of total words.
	CategoryDensity map[string]float64 `json:"category_density" yaml:"category_density"`

	// AcademicCoverage is the number of categories whose density
	// exceeds the coverage threshold.
	AcademicCoverage int `json:"academic_coverage" yaml:"academic_coverage"`
}

// StructureInfo holds section layout and structure-quality sub-scores.
type StructureInfo struct {
	// Sections maps each detected section to its word count.
	Sections map[SectionName]int `json:"sections" yaml:"sections"`

	// TotalSections is the number of detected sections.
	TotalSections int `json:"total_sections" yaml:"total_sections"`

	// AbstractQuality scores the abstract length band: 1.0 ideal,
	// 0.7 acceptable, 0.3 poor, 0 when absent.
	AbstractQuality float64 `json:"abstract_quality" yaml:"abstract_quality"`

	// ConclusionQuality scores the conclusion share of the document:
	// 1.0 ideal, 0.7 acceptable, 0.3 poor, 0 when absent.
	ConclusionQuality float64 `json:"conclusion_quality" yaml:"conclusion_quality"`

	// BalanceScore is 1 - stdev/mean of section word counts, clamped
	// to [0,1]; 0 when there are no sections.
	BalanceScore float64 `json:"balance_score" yaml:"balance_score"`

	HasMethodology bool `json:"has_methodology" yaml:"has_methodology"`
	HasResults     bool `json:"has_results" yaml:"has_results"`
}

// WritingPatterns holds style signals computed from fixed word lists.
type WritingPatterns struct {
	// PassiveVoiceRatio is passive-indicator occurrences per word.
	PassiveVoiceRatio float64 `json:"passive_voice_ratio" yaml:"passive_voice_ratio"`

	// TransitionScore is transition-word occurrences per sentence.
	TransitionScore float64 `json:"transition_score" yaml:"transition_score"`

	// Polarity is (positive - negative) indicator occurrences per word.
	Polarity float64 `json:"polarity" yaml:"polarity"`

	// Subjectivity is hedging-indicator occurrences per word.
	Subjectivity float64 `json:"subjectivity" yaml:"subjectivity"`

	// SentenceLengthStdev is the standard deviation of sentence lengths.
	SentenceLengthStdev float64 `json:"sentence_length_stdev" yaml:"sentence_length_stdev"`
}

// QualityIndicators holds the academic-quality sub-scores, each in [0,1].
type QualityIndicators struct {
	ResearchGap         float64 `json:"research_gap" yaml:"research_gap"`
	ContributionClarity float64 `json:"contribution_clarity" yaml:"contribution_clarity"`
	MethodologyRigor    float64 `json:"methodology_rigor" yaml:"methodology_rigor"`
	EvidenceStrength    float64 `json:"evidence_strength" yaml:"evidence_strength"`
}

// Mean returns the average of the four indicator scores.
func (q QualityIndicators) Mean() float64 {
	return (q.ResearchGap + q.ContributionClarity + q.MethodologyRigor + q.EvidenceStrength) / 4
}

// FeatureSet is the complete, immutable analysis result for one document.
// Every field is populated even for empty input; "nothing found" is
// represented by zero counts and empty collections, never by nil errors.
type FeatureSet struct {
	BasicStats      BasicStats        `json:"basic_stats" yaml:"basic_stats"`
	Readability     Readability       `json:"readability" yaml:"readability"`
	Structure       StructureInfo     `json:"structure" yaml:"structure"`
	Keywords        KeywordInfo       `json:"keywords" yaml:"keywords"`
	Citations       CitationStats     `json:"citations" yaml:"citations"`
	WritingPatterns WritingPatterns   `json:"writing_patterns" yaml:"writing_patterns"`
	Quality         QualityIndicators `json:"quality" yaml:"quality"`
}
