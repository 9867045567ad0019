// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment partitions raw manuscript text into named logical
// sections using ordered heading-pattern matching. Segmentation is a pure
// function of the input text: no match for any section yields an empty
// section map, never an error.
package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// headingPattern builds a case-insensitive, line-anchored pattern for a
// heading keyword or its numbered variant ("2. Methodology").
func headingPattern(keywords string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*(?:\d+\.?\s*)?(?:` + keywords + `)\b[^\n]*`)
}

// sectionPatterns maps each canonical section to its heading pattern.
// Patterns are tried independently in types.CanonicalSections order, so
// when two patterns claim overlapping text the earlier section wins.
var sectionPatterns = map[types.SectionName]*regexp.Regexp{
	types.SectionAbstract:         headingPattern(`abstract`),
	types.SectionKeywords:         headingPattern(`keywords?|index\s+terms`),
	types.SectionIntroduction:     headingPattern(`introduction`),
	types.SectionLiteratureReview: headingPattern(`literature\s+review|related\s+work|background`),
	types.SectionMethodology:      headingPattern(`methodology|methods|approach|proposed\s+method`),
	types.SectionResults:          headingPattern(`results|experiments|evaluation|findings`),
	types.SectionDiscussion:       headingPattern(`discussion`),
	types.SectionConclusion:       headingPattern(`conclusions?|concluding\s+remarks`),
	types.SectionReferences:       headingPattern(`references|bibliography|works\s+cited`),
	types.SectionAcknowledgments:  headingPattern(`acknowledge?ments?`),
}

// headingMatch is one located heading occurrence.
type headingMatch struct {
	name  types.SectionName
	start int
	end   int // end of the heading line
}

// Split identifies the best-effort span of each canonical section in text.
// Each section runs from its heading to the next recognized heading or end
// of document. The heading echo line is stripped from stored content when
// the span has more than one line.
func Split(text string) types.SectionMap {
	sections := make(types.SectionMap)
	if strings.TrimSpace(text) == "" {
		return sections
	}

	// Locate the first occurrence of every section heading.
	var matches []headingMatch
	for _, name := range types.CanonicalSections {
		loc := sectionPatterns[name].FindStringIndex(text)
		if loc == nil {
			continue
		}
		matches = append(matches, headingMatch{name: name, start: loc[0], end: loc[1]})
	}
	if len(matches) == 0 {
		return sections
	}

	// Boundary set: every heading start, sorted, for span termination.
	boundaries := make([]int, 0, len(matches))
	for _, m := range matches {
		boundaries = append(boundaries, m.start)
	}
	sort.Ints(boundaries)

	// First matched section wins an overlapping span; later sections whose
	// heading falls inside a claimed span are dropped. Known heuristic
	// limitation carried over from the pattern-per-section design.
	type span struct{ start, end int }
	var claimed []span

	for _, name := range types.CanonicalSections {
		m, ok := findMatch(matches, name)
		if !ok {
			continue
		}

		end := len(text)
		for _, b := range boundaries {
			if b > m.start {
				end = b
				break
			}
		}

		overlapped := false
		for _, c := range claimed {
			if m.start >= c.start && m.start < c.end {
				overlapped = true
				break
			}
		}
		if overlapped {
			continue
		}
		claimed = append(claimed, span{start: m.start, end: end})

		content := stripHeadingEcho(strings.TrimSpace(text[m.start:end]))
		sections[name] = types.Section{
			Name:      name,
			Content:   content,
			WordCount: len(strings.Fields(content)),
		}
	}

	return sections
}

func findMatch(matches []headingMatch, name types.SectionName) (headingMatch, bool) {
	for _, m := range matches {
		if m.name == name {
			return m, true
		}
	}
	return headingMatch{}, false
}

// stripHeadingEcho removes the first line of a span when more than one line
// is present, on the assumption that it echoes the heading.
func stripHeadingEcho(span string) string {
	i := strings.IndexByte(span, '\n')
	if i < 0 {
		return span
	}
	return strings.TrimSpace(span[i+1:])
}

// WordCounts returns the word count of each detected section.
func WordCounts(sections types.SectionMap) map[types.SectionName]int {
	counts := make(map[types.SectionName]int, len(sections))
	for name, sec := range sections {
		counts[name] = sec.WordCount
	}
	return counts
}
