// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability computes standard readability indices, ranks salient
// keywords, and measures writing-pattern signals. Every score is a pure
// function of token counts; degenerate input (no words, no sentences)
// produces zero scores rather than errors.
package readability

import (
	"github.com/pdiddy/review-engine/internal/lexical"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Grade-level labels derived from the Flesch reading-ease score.
const (
	GradeElementary   = "Elementary School"
	GradeMiddleSchool = "Middle School"
	GradeHighSchool   = "High School"
	GradeCollege      = "College"
	GradeGraduate     = "Graduate"
	GradePostGraduate = "Post-Graduate"
)

// FleschReadingEase computes the Flesch reading-ease score from raw counts.
// Higher is easier; typical academic prose scores 30-50.
func FleschReadingEase(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 206.835 - 1.015*(float64(words)/float64(sentences)) - 84.6*(float64(syllables)/float64(words))
}

// FleschKincaidGrade computes the Flesch-Kincaid grade level.
func FleschKincaidGrade(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 0.39*(float64(words)/float64(sentences)) + 11.8*(float64(syllables)/float64(words)) - 15.59
}

// GunningFog computes the Gunning fog index from word, sentence, and
// complex-word counts.
func GunningFog(words, sentences, complexWords int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 0.4 * (float64(words)/float64(sentences) + 100*float64(complexWords)/float64(words))
}

// AutomatedReadabilityIndex computes ARI from character, word, and sentence
// counts. Characters are letters and digits only.
func AutomatedReadabilityIndex(characters, words, sentences int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	return 4.71*(float64(characters)/float64(words)) + 0.5*(float64(words)/float64(sentences)) - 21.43
}

// GradeLevel maps a Flesch reading-ease score to its coarse label.
func GradeLevel(flesch float64) string {
	switch {
	case flesch >= 90:
		return GradeElementary
	case flesch >= 80:
		return GradeMiddleSchool
	case flesch >= 70:
		return GradeHighSchool
	case flesch >= 60:
		return GradeCollege
	case flesch >= 50:
		return GradeGraduate
	default:
		return GradePostGraduate
	}
}

// Analyze computes the full readability record for a tokenized document.
func Analyze(doc types.Document) types.Readability {
	words := len(doc.Words)
	sentences := len(doc.Sentences)
	if words == 0 || sentences == 0 {
		return types.Readability{GradeLevel: GradePostGraduate}
	}

	syllables := lexical.CountSyllables(doc.Words)
	complexWords := lexical.CountComplex(doc.Words)
	characters := lexical.CountLetters(doc.Text)

	flesch := FleschReadingEase(words, sentences, syllables)

	return types.Readability{
		FleschScore:          flesch,
		FleschKincaidGrade:   FleschKincaidGrade(words, sentences, syllables),
		GunningFog:           GunningFog(words, sentences, complexWords),
		AutomatedReadability: AutomatedReadabilityIndex(characters, words, sentences),
		AvgSentenceLength:    float64(words) / float64(sentences),
		ComplexWordPercent:   float64(complexWords) / float64(words) * 100,
		GradeLevel:           GradeLevel(flesch),
	}
}
