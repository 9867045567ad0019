// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"strings"
	"testing"

	"github.com/pdiddy/review-engine/pkg/types"
)

func TestExtractKinds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind types.CitationKind
		wantRaw  string
	}{
		{
			name:     "bracket single",
			text:     "As shown in [1], the method works.",
			wantKind: types.CiteBracketNumeric,
			wantRaw:  "[1]",
		},
		{
			name:     "bracket range",
			text:     "Several studies [1-3] agree.",
			wantKind: types.CiteBracketNumeric,
			wantRaw:  "[1-3]",
		},
		{
			name:     "bracket list",
			text:     "Earlier work [1, 2, 5] differs.",
			wantKind: types.CiteBracketNumeric,
			wantRaw:  "[1, 2, 5]",
		},
		{
			name:     "author year",
			text:     "This was established (Smith, 2020) early on.",
			wantKind: types.CiteAuthorYear,
			wantRaw:  "(Smith, 2020)",
		},
		{
			name:     "ampersand pair",
			text:     "Joint results (Smith & Jones, 2019) confirm it.",
			wantKind: types.CiteAuthorYear,
			wantRaw:  "(Smith & Jones, 2019)",
		},
		{
			name:     "inline author year",
			text:     "Smith (2020) reported similar findings.",
			wantKind: types.CiteAuthorYearInline,
			wantRaw:  "Smith (2020)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if len(got) == 0 {
				t.Fatalf("no citation extracted from %q", tt.text)
			}
			found := false
			for _, c := range got {
				if c.RawText == tt.wantRaw && c.Kind == tt.wantKind {
					found = true
				}
			}
			if !found {
				t.Errorf("want %s %q, got %+v", tt.wantKind, tt.wantRaw, got)
			}
		})
	}
}

func TestExtractDeduplicates(t *testing.T) {
	text := strings.Repeat("The approach in [7] is sound. ", 5)
	got := Extract(text)
	if len(got) != 1 {
		t.Errorf("repeated marker counted %d times, want 1", len(got))
	}
}

func TestExtractCapturesFields(t *testing.T) {
	got := Extract("Prior work (Smith et al., 2018) applies here.")
	if len(got) == 0 {
		t.Fatal("no citation extracted")
	}
	c := got[0]
	if c.Authors != "Smith et al." {
		t.Errorf("authors = %q", c.Authors)
	}
	if c.Year != 2018 {
		t.Errorf("year = %d", c.Year)
	}
}

func TestExtractEmptyText(t *testing.T) {
	if got := Extract(""); got != nil {
		t.Errorf("Extract(\"\") = %v", got)
	}
}

func TestExtractReferences(t *testing.T) {
	text := `Body of the paper with a citation [1].

References

[1] Smith, J. "A Study of Things". Journal of Examples, 12(3), pp. 45-67, 2020. doi: 10.1000/example
[2] Jones, B. Deep analysis methods. arXiv preprint arXiv:2101.00001, 2021.
`
	refs := ExtractReferences(text)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2: %+v", len(refs), refs)
	}

	first := refs[0]
	if first.Title != "A Study of Things" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Year != 2020 {
		t.Errorf("year = %d", first.Year)
	}
	if first.DOI != "10.1000/example" {
		t.Errorf("doi = %q", first.DOI)
	}
	if first.Pages != "45-67" {
		t.Errorf("pages = %q", first.Pages)
	}
	if first.PublicationType != types.PubJournal {
		t.Errorf("publication type = %q", first.PublicationType)
	}

	if refs[1].PublicationType != types.PubPreprint {
		t.Errorf("second entry type = %q, want preprint", refs[1].PublicationType)
	}
}

func TestExtractReferencesNoHeader(t *testing.T) {
	refs := ExtractReferences("No bibliography in this text at all.")
	if len(refs) != 0 {
		t.Errorf("got %d references from headerless text", len(refs))
	}
}

func TestExtractReferencesAuthorSplit(t *testing.T) {
	text := `References
Smith, J. A first entry with enough length to survive filtering, 2019.
Jones, B. A second entry that is also long enough to keep around, 2021.
`
	refs := ExtractReferences(text)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2", len(refs))
	}
}

func TestAnalyzeCountsWithReferenceBlock(t *testing.T) {
	body := "Prior work [1] and [2] inform this study. (Smith, 2020) extended the method.\n\nReferences\n\n"

	// A preprint-formatted entry matches no in-text pattern, so the count
	// stays at the three distinct body markers.
	arxiv := body + "[1] Smith, J. (2020). Deep models for text. arXiv preprint arXiv:2001.00001.\n"
	_, refs, stats := Analyze(arxiv, 1000)
	if stats.TotalCitations != 3 {
		t.Errorf("total citations = %d, want 3", stats.TotalCitations)
	}
	if stats.TotalReferences != 1 {
		t.Fatalf("total references = %d, want 1", stats.TotalReferences)
	}
	if refs[0].PublicationType != types.PubPreprint {
		t.Errorf("publication type = %q, want preprint", refs[0].PublicationType)
	}

	// An entry written as journal prose also matches the journal-style
	// in-text pattern and raises the citation count.
	journal := body + "[1] Smith, J. A baseline method. Journal of Examples, 2020.\n"
	_, _, jstats := Analyze(journal, 1000)
	if jstats.TotalCitations != 4 {
		t.Errorf("total citations = %d, want 4 with a journal-prose entry", jstats.TotalCitations)
	}
	if jstats.KindCounts[types.CiteJournalStyle] != 1 {
		t.Errorf("journal-style count = %d, want 1", jstats.KindCounts[types.CiteJournalStyle])
	}
}

func TestStats(t *testing.T) {
	citations := []types.Citation{
		{RawText: "[1]", Kind: types.CiteBracketNumeric},
		{RawText: "(Smith, 2020)", Kind: types.CiteAuthorYear, Year: 2020},
		{RawText: "(Old, 1995)", Kind: types.CiteAuthorYear, Year: 1995},
	}
	refs := []types.Reference{{RawText: "one entry"}}

	stats := Stats(citations, refs, 1000)

	if stats.TotalCitations != 3 {
		t.Errorf("total citations = %d", stats.TotalCitations)
	}
	if stats.TotalReferences != 1 {
		t.Errorf("total references = %d", stats.TotalReferences)
	}
	if stats.RecentCitations != 1 {
		t.Errorf("recent citations = %d, want 1", stats.RecentCitations)
	}
	if stats.CitationDensity != 3.0 {
		t.Errorf("density = %f, want 3.0", stats.CitationDensity)
	}
	if stats.OldestYear != 1995 || stats.MostRecentYear != 2020 {
		t.Errorf("year range = %d-%d", stats.OldestYear, stats.MostRecentYear)
	}
	if stats.MeanYear != 2007.5 {
		t.Errorf("mean year = %f", stats.MeanYear)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil, nil, 0)
	if stats.TotalCitations != 0 || stats.CitationDensity != 0 || stats.MeanYear != 0 {
		t.Errorf("zero-input stats not zeroed: %+v", stats)
	}
}
