// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationKind identifies the pattern family that matched an in-text citation.
type CitationKind string

const (
	// CiteBracketNumeric covers [1], [1-3], and [1, 2, 5] markers.
	CiteBracketNumeric CitationKind = "bracket_numeric"

	// CiteAuthorYear covers parenthetical (Smith, 2020) and
	// (Smith & Jones, 2020) markers.
	CiteAuthorYear CitationKind = "author_year"

	// CiteAuthorYearInline covers running-text Smith (2020) markers.
	CiteAuthorYearInline CitationKind = "author_year_inline"

	// CiteJournalStyle covers full journal-style mentions embedded in prose.
	CiteJournalStyle CitationKind = "journal_style"
)

// Citation is one in-text citation marker.
type Citation struct {
	// RawText is the exact matched marker, e.g. "[12]" or "(Smith, 2020)".
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Kind names the pattern family that produced the match.
	Kind CitationKind `json:"kind" yaml:"kind"`

	// Position is the byte offset of the marker in the source text.
	Position int `json:"position" yaml:"position"`

	// Authors is the author substring when the pattern captures one.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the cited year when the pattern captures one; 0 if absent.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`
}

// PublicationType classifies a reference entry by venue.
type PublicationType string

const (
	PubJournal    PublicationType = "journal"
	PubPreprint   PublicationType = "preprint"
	PubConference PublicationType = "conference"
	PubBook       PublicationType = "book"
	PubUnknown    PublicationType = "unknown"
)

// Reference is one parsed bibliography entry. Every field except RawText
// and PublicationType is best-effort; absence of a field is not an error.
type Reference struct {
	RawText         string          `json:"raw_text" yaml:"raw_text"`
	Authors         string          `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year            int             `json:"year,omitempty" yaml:"year,omitempty"`
	Title           string          `json:"title,omitempty" yaml:"title,omitempty"`
	Journal         string          `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume          string          `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue           string          `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages           string          `json:"pages,omitempty" yaml:"pages,omitempty"`
	DOI             string          `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL             string          `json:"url,omitempty" yaml:"url,omitempty"`
	PublicationType PublicationType `json:"publication_type" yaml:"publication_type"`
}

// CitationStats summarizes citation and reference usage across a document.
type CitationStats struct {
	// TotalCitations is the number of deduplicated in-text citations.
	// Extraction collapses repeated markers by normalized raw text, so the
	// total and unique citation counts coincide and only one is carried.
	TotalCitations int `json:"total_citations" yaml:"total_citations"`

	// TotalReferences is the number of parsed bibliography entries.
	TotalReferences int `json:"total_references" yaml:"total_references"`

	// RecentCitations counts citations whose year falls within the most
	// recent ten-year window.
	RecentCitations int `json:"recent_citations" yaml:"recent_citations"`

	// CitationDensity is unique citations per 1000 words.
	CitationDensity float64 `json:"citation_density" yaml:"citation_density"`

	// KindCounts tallies citations per pattern family.
	KindCounts map[CitationKind]int `json:"kind_counts,omitempty" yaml:"kind_counts,omitempty"`

	// OldestYear and MostRecentYear bound the cited years; 0 when no
	// citation carries a year.
	OldestYear     int `json:"oldest_year,omitempty" yaml:"oldest_year,omitempty"`
	MostRecentYear int `json:"most_recent_year,omitempty" yaml:"most_recent_year,omitempty"`

	// MeanYear is the average cited year; 0 when no citation carries a year.
	MeanYear float64 `json:"mean_year,omitempty" yaml:"mean_year,omitempty"`
}
