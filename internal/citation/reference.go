// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"regexp"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// minReferenceLength filters out splitting noise: fragments shorter than
// this are discarded rather than parsed.
const minReferenceLength = 20

var (
	// referencesHeaderRe locates the start of the reference block.
	referencesHeaderRe = regexp.MustCompile(`(?i)\b(?:references?|bibliography|works\s+cited)\b`)

	// blockEndRe marks where the reference block ends before end of document.
	blockEndRe = regexp.MustCompile(`(?i)\n\s*(?:appendix|acknowledge?ments?|author\s+information)\b`)

	// allCapsHeadingRe matches a line of capitals, the usual style for a
	// trailing section heading after the references.
	allCapsHeadingRe = regexp.MustCompile(`\n[A-Z][A-Z\s]{3,}\n`)

	doiRe           = regexp.MustCompile(`(?i)doi:?\s*(10\.\d+/\S+)`)
	urlRe           = regexp.MustCompile(`https?://\S+`)
	refYearRe       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	journalVolumeRe = regexp.MustCompile(`(\w+)\s*,?\s*(\d+)\s*\(\s*(\d+)\s*\)`)
	pagesRe         = regexp.MustCompile(`pp?\.\s*(\d+(?:-\d+)?)`)
	leadingAuthorRe = regexp.MustCompile(`^([^.]+)\.`)
	quotedTitleRe   = regexp.MustCompile(`"([^"]+)"`)
	sentenceTitleRe = regexp.MustCompile(`\.\s*([A-Z][^.]*)\.`)

	// Entry boundary patterns, in order of preference.
	numberedEntryRe   = regexp.MustCompile(`\n\s*(?:\[\d+\]|\d+\.\s)`)
	authorInitialRe   = regexp.MustCompile(`\n[A-Z][a-zA-Z]+,\s+[A-Z]`)
	authorYearEntryRe = regexp.MustCompile(`\n[A-Z][a-zA-Z\s]+\(\d{4}\)`)
)

// venueTerms marks journal-published references.
var venueTerms = []string{
	"nature", "science", "cell", "lancet", "nejm", "pnas", "jama",
	"ieee", "acm", "springer", "elsevier", "wiley", "oxford",
	"journal", "transactions",
}

// ExtractReferences locates the reference block in text and parses it into
// individual entries. A document without a recognizable references header
// yields an empty list.
func ExtractReferences(text string) []types.Reference {
	block := findReferenceBlock(text)
	if block == "" {
		return nil
	}

	var references []types.Reference
	for _, raw := range splitEntries(block) {
		ref, ok := parseReference(raw)
		if !ok {
			continue
		}
		references = append(references, ref)
	}
	return references
}

// findReferenceBlock returns the text between the references header and
// either a trailing section heading or end of document.
func findReferenceBlock(text string) string {
	loc := referencesHeaderRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	block := text[loc[1]:]

	if end := blockEndRe.FindStringIndex(block); end != nil {
		block = block[:end[0]]
	} else if end := allCapsHeadingRe.FindStringIndex(block); end != nil {
		block = block[:end[0]]
	}
	return strings.TrimSpace(block)
}

// splitEntries divides a reference block into individual entries. Boundary
// patterns are tried in order of preference; when none produce more than
// one entry the block falls back to line-based splitting.
func splitEntries(block string) []string {
	for _, re := range []*regexp.Regexp{numberedEntryRe, authorInitialRe, authorYearEntryRe} {
		parts := splitBefore(block, re)
		if len(parts) > 1 {
			return filterShort(parts)
		}
	}

	var lines []string
	for _, line := range strings.Split(block, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return filterShort(lines)
}

// splitBefore cuts text immediately before each match of re, keeping the
// matched marker with the entry it introduces.
func splitBefore(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		// The pattern starts at a newline; cut after it.
		cut := loc[0] + 1
		if cut > prev {
			parts = append(parts, text[prev:cut])
		}
		prev = cut
	}
	parts = append(parts, text[prev:])
	return parts
}

func filterShort(parts []string) []string {
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= minReferenceLength {
			out = append(out, p)
		}
	}
	return out
}

// parseReference extracts structured fields from one raw entry. Absence of
// any individual field is expected; only an implausibly short entry is
// rejected outright.
func parseReference(raw string) (types.Reference, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < minReferenceLength/2 {
		return types.Reference{}, false
	}

	ref := types.Reference{
		RawText:         raw,
		PublicationType: classifyPublication(raw),
	}

	if m := doiRe.FindStringSubmatch(raw); m != nil {
		ref.DOI = strings.TrimRight(m[1], ".,;")
	}
	if m := urlRe.FindString(raw); m != "" {
		ref.URL = strings.TrimRight(m, ".,;")
	}
	if m := refYearRe.FindString(raw); m != "" {
		ref.Year = parseYear(m)
	}
	if m := journalVolumeRe.FindStringSubmatch(raw); m != nil {
		ref.Journal = m[1]
		ref.Volume = m[2]
		ref.Issue = m[3]
	}
	if m := pagesRe.FindStringSubmatch(raw); m != nil {
		ref.Pages = m[1]
	}
	if m := leadingAuthorRe.FindStringSubmatch(raw); m != nil {
		ref.Authors = strings.TrimSpace(m[1])
	}
	if m := quotedTitleRe.FindStringSubmatch(raw); m != nil {
		ref.Title = strings.TrimSpace(m[1])
	} else if m := sentenceTitleRe.FindStringSubmatch(raw); m != nil {
		ref.Title = strings.TrimSpace(m[1])
	}

	return ref, true
}

// classifyPublication infers the publication type from venue terms in the
// entry text. Defaults to unknown.
func classifyPublication(raw string) types.PublicationType {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "arxiv"):
		return types.PubPreprint
	case strings.Contains(lower, "proceedings") || strings.Contains(lower, "conference") ||
		strings.Contains(lower, "workshop") || strings.Contains(lower, "symposium"):
		return types.PubConference
	case containsAny(lower, venueTerms):
		return types.PubJournal
	case strings.Contains(lower, "book") || strings.Contains(lower, "press"):
		return types.PubBook
	default:
		return types.PubUnknown
	}
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
