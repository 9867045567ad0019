// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Keyword extraction defaults.
const (
	DefaultMaxKeywords   = 20
	DefaultMinWordLength = 3

	// tfidfMinSentences is the sentence count below which ranking falls
	// back from TF-IDF to raw frequency.
	tfidfMinSentences = 2
)

// KeywordExtractor ranks salient terms against a fixed vocabulary.
type KeywordExtractor struct {
	vocab         Vocabulary
	maxKeywords   int
	minWordLength int
}

// NewKeywordExtractor builds an extractor. Zero limits select the defaults.
func NewKeywordExtractor(vocab Vocabulary, maxKeywords, minWordLength int) *KeywordExtractor {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	if minWordLength <= 0 {
		minWordLength = DefaultMinWordLength
	}
	return &KeywordExtractor{
		vocab:         vocab,
		maxKeywords:   maxKeywords,
		minWordLength: minWordLength,
	}
}

// Extract computes the keyword record for a tokenized document: ranked
// terms, per-category densities, and academic coverage.
func (e *KeywordExtractor) Extract(doc types.Document) types.KeywordInfo {
	info := types.KeywordInfo{
		TopKeywords:     []types.Keyword{},
		CategoryDensity: make(map[string]float64, len(e.vocab.Categories)),
	}

	terms := e.candidateTerms(doc.Words)
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}

	if len(counts) > 0 {
		info.TopKeywords = e.rank(counts, doc.Sentences)
	}

	lower := strings.ToLower(doc.Text)
	totalWords := len(doc.Words)
	for category, indicators := range e.vocab.Categories {
		density := 0.0
		if totalWords > 0 {
			occurrences := 0
			for _, term := range indicators {
				occurrences += strings.Count(lower, term)
			}
			density = float64(occurrences) / float64(totalWords) * 100
		}
		info.CategoryDensity[category] = density
		if density > e.vocab.CoverageThreshold {
			info.AcademicCoverage++
		}
	}

	return info
}

// candidateTerms lowercases and strips punctuation from the word stream,
// dropping stop words and short tokens.
func (e *KeywordExtractor) candidateTerms(words []string) []string {
	stop := e.vocab.stopSet()
	var terms []string
	for _, w := range words {
		t := normalizeTerm(w)
		if len(t) < e.minWordLength || stop[t] {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// rank orders terms by relevance. With enough sentences each sentence is
// treated as a pseudo-document and terms get a TF-IDF-style score;
// otherwise raw frequency is the score.
func (e *KeywordExtractor) rank(counts map[string]int, sentences []string) []types.Keyword {
	useTFIDF := len(sentences) >= tfidfMinSentences

	var docFreq map[string]int
	if useTFIDF {
		docFreq = make(map[string]int, len(counts))
		for _, sentence := range sentences {
			seen := make(map[string]bool)
			for _, w := range strings.Fields(sentence) {
				t := normalizeTerm(w)
				if _, tracked := counts[t]; tracked && !seen[t] {
					docFreq[t]++
					seen[t] = true
				}
			}
		}
	}

	keywords := make([]types.Keyword, 0, len(counts))
	for term, count := range counts {
		kw := types.Keyword{Term: term, Count: count}
		if useTFIDF {
			idf := math.Log(float64(1+len(sentences))/float64(1+docFreq[term])) + 1
			kw.Relevance = float64(count) * idf
		} else {
			kw.Relevance = float64(count)
		}
		keywords = append(keywords, kw)
	}

	// Relevance descending, term ascending for a stable order.
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Relevance != keywords[j].Relevance {
			return keywords[i].Relevance > keywords[j].Relevance
		}
		return keywords[i].Term < keywords[j].Term
	})

	if len(keywords) > e.maxKeywords {
		keywords = keywords[:e.maxKeywords]
	}
	return keywords
}

// normalizeTerm lowercases a token and trims every non-letter, non-digit rune.
func normalizeTerm(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}
