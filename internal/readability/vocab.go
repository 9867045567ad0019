// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Vocabulary bundles the fixed word tables the keyword analyzer consults.
// Instances are treated as immutable; tests and callers substitute whole
// alternate vocabularies instead of mutating the default.
type Vocabulary struct {
	// StopWords are excluded from keyword ranking.
	StopWords []string `json:"stop_words" yaml:"stop_words"`

	// Categories maps each academic category to its indicator terms.
	Categories map[string][]string `json:"categories" yaml:"categories"`

	// CoverageThreshold is the density (percent of total words) a category
	// must exceed to count toward academic coverage.
	CoverageThreshold float64 `json:"coverage_threshold" yaml:"coverage_threshold"`
}

// DefaultVocabulary returns the built-in word tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StopWords: []string{
			"the", "is", "in", "and", "to", "of", "a", "that", "for", "on",
			"with", "as", "by", "this", "an", "are", "at", "be", "from", "or",
			"which", "it", "we", "can", "not", "have", "has", "our", "but",
			"their", "these", "those", "was", "were", "been", "its", "also",
			"such", "than", "then", "there", "they", "each", "all", "more",
			"most", "other", "some", "into", "between", "both", "using",
			"used", "use", "based", "one", "two", "may", "when", "where",
			"will", "while", "however", "thus",
		},
		Categories: map[string][]string{
			"methodology": {
				"method", "approach", "technique", "algorithm", "framework",
				"model", "system", "procedure", "protocol", "design",
			},
			"evaluation": {
				"evaluation", "experiment", "test", "validation", "assessment",
				"analysis", "comparison", "benchmark", "metric", "performance",
			},
			"results": {
				"result", "finding", "outcome", "performance", "accuracy",
				"precision", "recall", "effectiveness", "efficiency", "improvement",
			},
			"novelty": {
				"novel", "new", "innovative", "original", "unique", "contribution",
				"advancement", "breakthrough", "pioneering", "cutting-edge",
			},
			"significance": {
				"significant", "important", "impact", "implication", "benefit",
				"advantage", "application", "practical", "relevant", "valuable",
			},
		},
		CoverageThreshold: 0.1,
	}
}

// LoadVocabulary reads an alternate vocabulary pack from a YAML file.
// Fields the file omits fall back to the defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}

	vocab := DefaultVocabulary()
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return Vocabulary{}, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	if vocab.CoverageThreshold <= 0 {
		vocab.CoverageThreshold = DefaultVocabulary().CoverageThreshold
	}
	return vocab, nil
}

// stopSet builds a lookup set from the stop-word list.
func (v Vocabulary) stopSet() map[string]bool {
	set := make(map[string]bool, len(v.StopWords))
	for _, w := range v.StopWords {
		set[w] = true
	}
	return set
}
