// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Narrative thresholds.
const (
	strengthScoreMin   = 8.0
	weaknessScoreMax   = 6.0
	suggestionScoreMax = 7.0

	minStrengths  = 2
	minWeaknesses = 1

	maxStrengths   = 5
	maxWeaknesses  = 4
	maxSuggestions = 6

	// Feature-driven narrative triggers.
	readabilityStrengthFlesch = 70.0
	readabilityWeaknessFlesch = 40.0
	balanceStrengthMin        = 0.8
	densityStrengthMin        = 1.0
	densityWeaknessMax        = 0.3
	abstractWeaknessMax       = 0.5
	longSentenceThreshold     = 25.0
	lowCoverageThreshold      = 3
)

// Generator assembles reviews from a template set.
type Generator struct {
	templates TemplateSet
}

// NewGenerator builds a Generator with the default templates.
func NewGenerator() *Generator {
	return &Generator{templates: DefaultTemplates()}
}

// NewGeneratorWithTemplates builds a Generator around an alternate set.
func NewGeneratorWithTemplates(ts TemplateSet) *Generator {
	return &Generator{templates: ts}
}

// NewGeneratorFromConfig builds a Generator from a ReviewConfig, loading the
// template pack when the config names one.
func NewGeneratorFromConfig(cfg types.ReviewConfig) (*Generator, error) {
	if cfg.TemplateFile == "" {
		return NewGenerator(), nil
	}
	ts, err := LoadTemplates(cfg.TemplateFile)
	if err != nil {
		return nil, err
	}
	return NewGeneratorWithTemplates(ts), nil
}

// Review produces the complete review artifact for an already-analyzed
// document. The style only affects narrative framing, never the scores.
// date is the review date stamp in YYYY-MM-DD form; it may be empty.
func (g *Generator) Review(text string, features types.FeatureSet, weights types.CriteriaWeights, style types.ReviewStyle, date string) types.Review {
	breakdown := Score(features, weights)
	hasFeatures := features.BasicStats.WordCount > 0

	subject, contribution := inferPaperInfo(text)

	rv := types.Review{
		ScoreBreakdown: breakdown,
		Strengths:      g.strengths(breakdown, features, hasFeatures),
		Weaknesses:     g.weaknesses(breakdown, features, hasFeatures),
		Suggestions:    g.suggestions(breakdown, features, hasFeatures),
		Comments:       g.comments(features, subject, contribution, style, hasFeatures),
		Summary:        summarize(subject, breakdown),
		Style:          style,
		Date:           date,
	}
	return rv
}

// pick selects a template from a pool deterministically: the index is
// derived from the criterion score so identical inputs always choose the
// same phrasing.
func pick(pool []string, score float64) string {
	if len(pool) == 0 {
		return ""
	}
	idx := int(math.Round(score*10)) % len(pool)
	return pool[idx]
}

func (g *Generator) strengths(b types.ScoreBreakdown, features types.FeatureSet, hasFeatures bool) []string {
	var out []string

	for _, c := range types.Criteria {
		if b.Scores[c] >= strengthScoreMin {
			out = append(out, pick(g.templates.Strengths[c], b.Scores[c]))
		}
	}

	if hasFeatures {
		if features.Readability.FleschScore >= readabilityStrengthFlesch {
			out = append(out, "The paper demonstrates excellent readability and accessibility")
		}
		if features.Structure.BalanceScore >= balanceStrengthMin {
			out = append(out, "The paper is well-structured with balanced sections")
		}
		if features.Citations.CitationDensity >= densityStrengthMin {
			out = append(out, "The work demonstrates comprehensive literature coverage")
		}
	}

	for _, fallback := range g.templates.FallbackStrengths {
		if len(out) >= minStrengths {
			break
		}
		out = append(out, fallback)
	}

	return capAndDedup(out, maxStrengths)
}

func (g *Generator) weaknesses(b types.ScoreBreakdown, features types.FeatureSet, hasFeatures bool) []string {
	var out []string

	for _, c := range types.Criteria {
		if b.Scores[c] <= weaknessScoreMax {
			out = append(out, pick(g.templates.Weaknesses[c], b.Scores[c]))
		}
	}

	if hasFeatures {
		if features.Readability.FleschScore < readabilityWeaknessFlesch {
			out = append(out, "The text complexity may hinder accessibility to broader audiences")
		}
		if !features.Structure.HasMethodology {
			out = append(out, "The methodology section needs strengthening or clarification")
		}
		if features.Structure.AbstractQuality < abstractWeaknessMax {
			out = append(out, "The abstract could be more comprehensive and informative")
		}
		if features.Citations.CitationDensity < densityWeaknessMax {
			out = append(out, "The literature review could be more comprehensive")
		}
	}

	for _, fallback := range g.templates.FallbackWeaknesses {
		if len(out) >= minWeaknesses {
			break
		}
		out = append(out, fallback)
	}

	return capAndDedup(out, maxWeaknesses)
}

func (g *Generator) suggestions(b types.ScoreBreakdown, features types.FeatureSet, hasFeatures bool) []string {
	var out []string

	for _, c := range types.Criteria {
		if b.Scores[c] <= suggestionScoreMax {
			out = append(out, g.templates.Suggestions[c]...)
		}
	}

	if hasFeatures {
		if features.Readability.AvgSentenceLength > longSentenceThreshold {
			out = append(out, "Consider breaking down long sentences for improved readability")
		}
		if features.Keywords.AcademicCoverage < lowCoverageThreshold {
			out = append(out, "Strengthen the use of domain-specific terminology")
		}
	}

	out = append(out, g.templates.GeneralSuggestions...)

	return capAndDedup(out, maxSuggestions)
}

// comments assembles the narrative block from the style template and
// feature-driven observations.
func (g *Generator) comments(features types.FeatureSet, subject, contribution string, style types.ReviewStyle, hasFeatures bool) string {
	tmpl := g.templates.style(style)

	intro := strings.NewReplacer(
		"{subject}", subject,
		"{contribution}", contribution,
	).Replace(tmpl.Intro)

	lines := []string{intro, "", "Structure and Organization:"}
	if hasFeatures && features.Structure.TotalSections > 0 {
		lines = append(lines, fmt.Sprintf("The paper follows a %s with %d main sections.", tmpl.Structure, features.Structure.TotalSections))
		if features.Structure.AbstractQuality >= 0.7 {
			lines = append(lines, "The abstract effectively summarizes the work.")
		} else {
			lines = append(lines, "The abstract could benefit from better summarization of key contributions.")
		}
	} else {
		lines = append(lines, "No recognizable section structure was detected.")
	}

	lines = append(lines, "", "Technical Content:")
	if hasFeatures {
		if features.Quality.MethodologyRigor >= 0.6 {
			lines = append(lines, "The methodology demonstrates good rigor and systematic approach.")
		}
		if features.Quality.EvidenceStrength >= 0.6 {
			lines = append(lines, "The evidence presented supports the claims made.")
		}
	}

	lines = append(lines, "", "Presentation Quality:")
	if hasFeatures {
		lines = append(lines, fmt.Sprintf("The writing is at %s level, which is appropriate for the target audience.", features.Readability.GradeLevel))
	}

	return strings.Join(lines, "\n")
}

// inferPaperInfo derives best-effort subject and contribution phrases from
// substring checks against a small fixed vocabulary.
func inferPaperInfo(text string) (subject, contribution string) {
	lower := strings.ToLower(text)

	subject = "the research topic"
	switch {
	case strings.Contains(lower, "machine learning") || strings.Contains(lower, "artificial intelligence"):
		subject = "machine learning and AI applications"
	case strings.Contains(lower, "deep learning") || strings.Contains(lower, "neural network"):
		subject = "deep learning methodologies"
	case strings.Contains(lower, "natural language") || strings.Contains(lower, "nlp"):
		subject = "natural language processing"
	case strings.Contains(lower, "computer vision") || strings.Contains(lower, "image"):
		subject = "computer vision techniques"
	}

	contribution = "novel insights"
	switch {
	case strings.Contains(lower, "novel") || strings.Contains(lower, "new"):
		contribution = "novel methodological contributions"
	case strings.Contains(lower, "improve") || strings.Contains(lower, "better"):
		contribution = "performance improvements"
	case strings.Contains(lower, "framework") || strings.Contains(lower, "system"):
		contribution = "systematic framework development"
	}

	return subject, contribution
}

// summarize builds the one-line review summary.
func summarize(subject string, b types.ScoreBreakdown) string {
	quality := "limited"
	switch {
	case b.Overall >= 7.5:
		quality = "strong"
	case b.Overall >= 6.0:
		quality = "adequate"
	}
	return fmt.Sprintf("This paper on %s receives an overall score of %.1f/10 with a recommendation of %q. The work demonstrates %s quality across the evaluation criteria.",
		subject, b.Overall, b.Recommendation, quality)
}

// capAndDedup removes duplicates preserving first occurrence and truncates
// to limit.
func capAndDedup(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
