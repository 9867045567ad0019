// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze composes the lexical, segmentation, citation, and
// readability stages into a single FeatureSet. The aggregator only
// assembles stage outputs; it never recomputes a sub-analyzer's result.
// Analyze is total: any text, including the empty string, produces a
// well-formed FeatureSet.
package analyze

import (
	"github.com/pdiddy/review-engine/internal/citation"
	"github.com/pdiddy/review-engine/internal/lexical"
	"github.com/pdiddy/review-engine/internal/readability"
	"github.com/pdiddy/review-engine/internal/segment"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Analyzer runs the full feature-extraction pipeline. The zero-cost
// constructor wires the default vocabulary; tests substitute alternates.
type Analyzer struct {
	keywords *readability.KeywordExtractor
}

// New builds an Analyzer with the default vocabulary and limits.
func New() *Analyzer {
	return NewWithVocabulary(readability.DefaultVocabulary(), 0, 0)
}

// NewWithVocabulary builds an Analyzer around an alternate vocabulary.
// Zero limits select the keyword extraction defaults.
func NewWithVocabulary(vocab readability.Vocabulary, maxKeywords, minWordLength int) *Analyzer {
	return &Analyzer{
		keywords: readability.NewKeywordExtractor(vocab, maxKeywords, minWordLength),
	}
}

// NewFromConfig builds an Analyzer from an AnalysisConfig, loading the
// vocabulary pack when the config names one.
func NewFromConfig(cfg types.AnalysisConfig) (*Analyzer, error) {
	vocab := readability.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		loaded, err := readability.LoadVocabulary(cfg.VocabularyFile)
		if err != nil {
			return nil, err
		}
		vocab = loaded
	}
	return NewWithVocabulary(vocab, cfg.MaxKeywords, cfg.MinWordLength), nil
}

// NewDocument tokenizes raw text into an immutable Document.
func NewDocument(text string) types.Document {
	return types.Document{
		Text:       text,
		Words:      lexical.Words(text),
		Sentences:  lexical.Sentences(text),
		Paragraphs: lexical.Paragraphs(text),
	}
}

// Analyze runs every stage over the raw text and assembles the FeatureSet.
func (a *Analyzer) Analyze(text string) types.FeatureSet {
	doc := NewDocument(text)
	sections := segment.Split(text)

	_, _, citationStats := citation.Analyze(text, len(doc.Words))

	return types.FeatureSet{
		BasicStats:      basicStats(doc),
		Readability:     readability.Analyze(doc),
		Structure:       analyzeStructure(sections),
		Keywords:        a.keywords.Extract(doc),
		Citations:       citationStats,
		WritingPatterns: readability.AnalyzePatterns(doc),
		Quality:         assessQuality(doc),
	}
}

// basicStats derives the raw counts from a tokenized document.
func basicStats(doc types.Document) types.BasicStats {
	stats := types.BasicStats{
		WordCount:      len(doc.Words),
		SentenceCount:  len(doc.Sentences),
		ParagraphCount: len(doc.Paragraphs),
		CharacterCount: len(doc.Text),
	}
	if stats.SentenceCount > 0 {
		stats.AvgWordsPerSentence = float64(stats.WordCount) / float64(stats.SentenceCount)
	}
	if stats.ParagraphCount > 0 {
		stats.AvgSentencesPerParagraph = float64(stats.SentenceCount) / float64(stats.ParagraphCount)
	}
	return stats
}
