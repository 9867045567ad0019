// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation enumerates in-text citation markers and parses the
// reference block of a manuscript. All extraction is pattern-driven and
// fault-tolerant: a marker a pattern cannot fully parse is skipped, and a
// document without citations yields empty results, never an error.
package citation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// citePattern pairs a compiled regex with the citation kind it produces and
// the capture groups holding structured fields (0 = not captured).
type citePattern struct {
	re          *regexp.Regexp
	kind        types.CitationKind
	authorGroup int
	yearGroup   int
}

// citePatterns is the ordered in-text citation pattern set. All patterns
// are applied to the full text and the matches unioned; duplicates are
// removed by normalized raw text afterwards.
var citePatterns = []citePattern{
	// [1], [1-3], [1, 2, 5]
	{
		re:   regexp.MustCompile(`\[(\d+(?:\s*[-,]\s*\d+)*)\]`),
		kind: types.CiteBracketNumeric,
	},
	// (Smith, 2020), (Smith et al., 2020a)
	{
		re:          regexp.MustCompile(`\(([A-Z][A-Za-z]+(?:\s+et\s+al\.?)?),?\s*(\d{4}[a-c]?)\)`),
		kind:        types.CiteAuthorYear,
		authorGroup: 1,
		yearGroup:   2,
	},
	// (Smith & Jones, 2020)
	{
		re:          regexp.MustCompile(`\(([A-Z][a-z]+\s*&\s*[A-Z][a-z]+),\s*(\d{4})\)`),
		kind:        types.CiteAuthorYear,
		authorGroup: 1,
		yearGroup:   2,
	},
	// (Smith, 2019; Jones, 2020)
	{
		re:          regexp.MustCompile(`\(([A-Z][A-Za-z]+(?:\s+et\s+al\.?)?,?\s*\d{4}[a-c]?(?:;\s*[A-Z][A-Za-z]+(?:\s+et\s+al\.?)?,?\s*\d{4}[a-c]?)+)\)`),
		kind:        types.CiteAuthorYear,
		authorGroup: 1,
	},
	// Smith (2020), Smith et al. (2020)
	{
		re:          regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+et\s+al\.?)?)\s+\((\d{4}[a-c]?)\)`),
		kind:        types.CiteAuthorYearInline,
		authorGroup: 1,
		yearGroup:   2,
	},
	// Authors. Title. Venue, 2020 — full journal-style mention in prose.
	{
		re:          regexp.MustCompile(`([A-Z][a-zA-Z\s,&]+)\.\s+[^.\n]+\.\s+[^,\n]+,\s*(\d{4})`),
		kind:        types.CiteJournalStyle,
		authorGroup: 1,
		yearGroup:   2,
	},
}

// Extract scans text with every citation pattern and returns the unioned,
// deduplicated markers. Dedup is by case-insensitive trimmed raw text;
// the first pattern to produce a marker keeps it.
func Extract(text string) []types.Citation {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var citations []types.Citation

	for _, p := range citePatterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			raw := text[m[0]:m[1]]
			key := strings.ToLower(strings.TrimSpace(raw))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			c := types.Citation{
				RawText:  raw,
				Kind:     p.kind,
				Position: m[0],
			}
			if p.authorGroup > 0 && m[2*p.authorGroup] >= 0 {
				c.Authors = strings.TrimSpace(text[m[2*p.authorGroup]:m[2*p.authorGroup+1]])
			}
			if p.yearGroup > 0 && m[2*p.yearGroup] >= 0 {
				c.Year = parseYear(text[m[2*p.yearGroup]:m[2*p.yearGroup+1]])
			}
			citations = append(citations, c)
		}
	}

	return citations
}

// parseYear reads the leading 4-digit year from a token like "2020" or
// "2020a". Returns 0 when the token does not start with a plausible year.
func parseYear(token string) int {
	if len(token) < 4 {
		return 0
	}
	y, err := strconv.Atoi(token[:4])
	if err != nil || y < 1900 || y > 2099 {
		return 0
	}
	return y
}
