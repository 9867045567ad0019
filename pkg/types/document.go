// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures exchanged between
// pipeline stages: documents, sections, citations, features, and reviews.
package types

// SectionName identifies one of the canonical manuscript sections.
type SectionName string

const (
	SectionAbstract         SectionName = "abstract"
	SectionKeywords         SectionName = "keywords"
	SectionIntroduction     SectionName = "introduction"
	SectionLiteratureReview SectionName = "literature_review"
	SectionMethodology      SectionName = "methodology"
	SectionResults          SectionName = "results"
	SectionDiscussion       SectionName = "discussion"
	SectionConclusion       SectionName = "conclusion"
	SectionReferences       SectionName = "references"
	SectionAcknowledgments  SectionName = "acknowledgments"
)

// CanonicalSections lists every recognized section name in manuscript order.
// Segmentation tries the patterns in this order, so earlier sections win
// overlapping spans.
var CanonicalSections = []SectionName{
	SectionAbstract,
	SectionKeywords,
	SectionIntroduction,
	SectionLiteratureReview,
	SectionMethodology,
	SectionResults,
	SectionDiscussion,
	SectionConclusion,
	SectionReferences,
	SectionAcknowledgments,
}

// Section is a best-effort span of manuscript text under one canonical heading.
type Section struct {
	// Name is the canonical section name.
	Name SectionName `json:"name" yaml:"name"`

	// Content is the section body with the heading echo stripped.
	Content string `json:"content" yaml:"content"`

	// WordCount is the number of whitespace-separated words in Content.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// SectionMap holds the sections found in a document, keyed by name.
// A document with no recognizable headings has an empty (non-nil) map.
type SectionMap map[SectionName]Section

// Document is the raw manuscript text plus its derived token sequences.
// It is built once per analysis request and never mutated afterwards.
type Document struct {
	// Text is the raw manuscript text.
	Text string `json:"text" yaml:"text"`

	// Words are the whitespace-separated tokens of Text, in order.
	Words []string `json:"-" yaml:"-"`

	// Sentences are the terminal-punctuation-delimited sentences of Text.
	Sentences []string `json:"-" yaml:"-"`

	// Paragraphs are the blank-line-delimited paragraphs of Text.
	Paragraphs []string `json:"-" yaml:"-"`
}
