// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexical tokenizes raw text into words, sentences, and paragraphs
// and computes per-word syllable counts. Every function is total: empty
// input yields empty slices and zero counts, never an error.
package lexical

import (
	"strings"
	"unicode"
)

// complexWordLength is the length above which a word counts as long.
const complexWordLength = 6

// complexSyllables is the syllable count above which a word counts as complex.
const complexSyllables = 2

// Words splits text into whitespace-separated tokens.
func Words(text string) []string {
	return strings.Fields(text)
}

// Sentences splits text at terminal punctuation (. ! ?). Fragments without
// at least one token are dropped, so trailing punctuation does not produce
// an empty sentence.
func Sentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(strings.Fields(s)) > 0 {
			sentences = append(sentences, s)
		}
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return sentences
}

// Paragraphs splits text at blank-line boundaries, dropping empty blocks.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(block))
		}
	}
	return paragraphs
}

// Syllables estimates the syllable count of a word by counting vowel groups,
// discounting a silent trailing "e". Every word counts as at least one
// syllable.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing "e" unless it is the only vowel group.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// IsComplex reports whether a word has more than two syllables.
func IsComplex(word string) bool {
	return Syllables(word) > complexSyllables
}

// IsLong reports whether a word is longer than six letters.
func IsLong(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > complexWordLength
}

// CountSyllables sums the syllable counts of all words in text.
func CountSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += Syllables(w)
	}
	return total
}

// CountComplex returns the number of complex words (more than two syllables).
func CountComplex(words []string) int {
	count := 0
	for _, w := range words {
		if IsComplex(w) {
			count++
		}
	}
	return count
}

// CountLetters returns the number of letter and digit runes in text.
// Used by the automated readability index, which ignores punctuation.
func CountLetters(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
