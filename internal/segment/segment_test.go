// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"
	"testing"

	"github.com/pdiddy/review-engine/pkg/types"
)

const samplePaper = `Abstract

This paper studies automated review scoring for manuscripts.

1. Introduction

Automated assessment of academic writing has grown in importance.

2. Methodology

We apply a pipeline of heuristic analyzers to the raw text.

3. Results

The pipeline produces stable scores across repeated runs.

4. Conclusion

Heuristic pipelines are a practical baseline for review scoring.

References

[1] Smith, J. Review automation. Journal of Testing, 2020.
`

func TestSplitSamplePaper(t *testing.T) {
	sections := Split(samplePaper)

	for _, want := range []types.SectionName{
		types.SectionAbstract,
		types.SectionIntroduction,
		types.SectionMethodology,
		types.SectionResults,
		types.SectionConclusion,
		types.SectionReferences,
	} {
		if _, ok := sections[want]; !ok {
			t.Errorf("section %q not detected", want)
		}
	}

	if _, ok := sections[types.SectionDiscussion]; ok {
		t.Error("discussion detected but absent from input")
	}

	intro := sections[types.SectionIntroduction]
	if strings.Contains(intro.Content, "Introduction") {
		t.Errorf("heading echo not stripped: %q", intro.Content)
	}
	if !strings.Contains(intro.Content, "grown in importance") {
		t.Errorf("introduction content wrong: %q", intro.Content)
	}
	if intro.WordCount == 0 {
		t.Error("introduction word count is zero")
	}
}

func TestSplitStopsAtNextHeading(t *testing.T) {
	sections := Split(samplePaper)
	abs := sections[types.SectionAbstract]
	if strings.Contains(abs.Content, "Automated assessment") {
		t.Errorf("abstract ran past the introduction heading: %q", abs.Content)
	}
}

func TestSplitNumberedHeadings(t *testing.T) {
	text := "2. Methodology\n\nThe approach uses regex tables.\n\n3. Results\n\nIt works."
	sections := Split(text)
	m, ok := sections[types.SectionMethodology]
	if !ok {
		t.Fatal("numbered methodology heading not detected")
	}
	if !strings.Contains(m.Content, "regex tables") {
		t.Errorf("methodology content = %q", m.Content)
	}
}

func TestSplitNoHeadings(t *testing.T) {
	sections := Split("Just a plain block of prose without any recognizable structure at all.")
	if len(sections) != 0 {
		t.Errorf("expected empty section map, got %v", sections)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	sections := Split("")
	if sections == nil {
		t.Fatal("Split returned nil map")
	}
	if len(sections) != 0 {
		t.Errorf("expected empty map, got %d sections", len(sections))
	}
}

func TestSplitSingleLineSectionKeepsContent(t *testing.T) {
	sections := Split("Conclusion")
	c, ok := sections[types.SectionConclusion]
	if !ok {
		t.Fatal("conclusion heading not detected")
	}
	// One-line spans keep their only line rather than stripping it.
	if c.Content != "Conclusion" {
		t.Errorf("content = %q", c.Content)
	}
}
