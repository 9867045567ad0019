// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"math"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Fixed indicator lists for writing-pattern signals. Counting their
// occurrences is a crude but reproducible stand-in for grammatical analysis.
var (
	passiveIndicators = []string{"was", "were", "been", "being", "is", "are", "am"}

	transitionWords = []string{
		"however", "furthermore", "therefore", "moreover",
		"nonetheless", "consequently",
	}

	positiveIndicators = []string{
		"effective", "robust", "efficient", "significant", "strong",
		"successful", "improved", "better", "superior",
	}

	negativeIndicators = []string{
		"limited", "weak", "insufficient", "poor", "worse",
		"inadequate", "fails", "difficult",
	}

	hedgeIndicators = []string{
		"may", "might", "could", "possibly", "perhaps", "likely",
		"suggests", "appears", "seems", "believe",
	}
)

// AnalyzePatterns computes style signals from fixed word lists, normalized
// by word or sentence count.
func AnalyzePatterns(doc types.Document) types.WritingPatterns {
	words := len(doc.Words)
	sentences := len(doc.Sentences)
	if words == 0 {
		return types.WritingPatterns{}
	}

	lower := strings.ToLower(doc.Text)

	patterns := types.WritingPatterns{
		PassiveVoiceRatio: float64(countOccurrences(lower, passiveIndicators)) / float64(words),
	}

	if sentences > 0 {
		patterns.TransitionScore = float64(countOccurrences(lower, transitionWords)) / float64(sentences)
		patterns.SentenceLengthStdev = sentenceLengthStdev(doc.Sentences)
	}

	positive := countOccurrences(lower, positiveIndicators)
	negative := countOccurrences(lower, negativeIndicators)
	patterns.Polarity = float64(positive-negative) / float64(words)
	patterns.Subjectivity = float64(countOccurrences(lower, hedgeIndicators)) / float64(words)

	return patterns
}

func countOccurrences(lower string, indicators []string) int {
	total := 0
	for _, ind := range indicators {
		total += strings.Count(lower, ind)
	}
	return total
}

func sentenceLengthStdev(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	lengths := make([]float64, len(sentences))
	sum := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	return math.Sqrt(variance / float64(len(lengths)))
}
