// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-engine/pkg/types"
)

// StyleTemplate holds the narrative framing for one review style.
type StyleTemplate struct {
	// Intro is the opening sentence with {subject} and {contribution}
	// placeholders.
	Intro string `json:"intro" yaml:"intro"`

	// Structure names the expected manuscript format.
	Structure string `json:"structure" yaml:"structure"`
}

// TemplateSet bundles every fixed phrase pool the narrative generator
// draws from. Instances are immutable; alternate sets are loaded whole.
type TemplateSet struct {
	Styles map[types.ReviewStyle]StyleTemplate `json:"styles" yaml:"styles"`

	// Strengths and Weaknesses map each criterion to its phrase pool.
	Strengths  map[types.Criterion][]string `json:"strengths" yaml:"strengths"`
	Weaknesses map[types.Criterion][]string `json:"weaknesses" yaml:"weaknesses"`

	// Suggestions maps each criterion to improvement phrasing used when
	// the criterion scores at or below the suggestion threshold.
	Suggestions map[types.Criterion][]string `json:"suggestions" yaml:"suggestions"`

	// FallbackStrengths and FallbackWeaknesses fill the guaranteed
	// minimums when threshold-driven selection comes up short.
	FallbackStrengths  []string `json:"fallback_strengths" yaml:"fallback_strengths"`
	FallbackWeaknesses []string `json:"fallback_weaknesses" yaml:"fallback_weaknesses"`

	// GeneralSuggestions are always offered after criterion-driven ones.
	GeneralSuggestions []string `json:"general_suggestions" yaml:"general_suggestions"`
}

// DefaultTemplates returns the built-in phrase pools.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		Styles: map[types.ReviewStyle]StyleTemplate{
			types.StyleConference: {
				Intro: "This paper presents {subject} and proposes {contribution}. " +
					"The review evaluates the work based on conference standards for novelty, technical quality, and clarity.",
				Structure: "conference paper format",
			},
			types.StyleJournal: {
				Intro: "This manuscript investigates {subject} and contributes {contribution}. " +
					"The review assesses the work according to journal standards for originality, rigor, and impact.",
				Structure: "journal article format",
			},
			types.StyleThesisDefense: {
				Intro: "This thesis explores {subject} and demonstrates {contribution}. " +
					"The evaluation focuses on the depth of research, methodological rigor, and contribution to the field.",
				Structure: "thesis format",
			},
			types.StylePeerReview: {
				Intro: "This work addresses {subject} and claims {contribution}. " +
					"The peer review examines the validity, clarity, and relevance of the research.",
				Structure: "research paper format",
			},
		},
		Strengths: map[types.Criterion][]string{
			types.CriterionNovelty: {
				"The paper presents a novel approach to the research area",
				"The research addresses an important gap in the field",
				"The proposed method is innovative and well-motivated",
				"The work introduces original concepts that advance the field",
			},
			types.CriterionMethodology: {
				"The methodology is rigorous and well-designed",
				"The experimental setup is comprehensive and appropriate",
				"The authors employ sound research methods",
				"The approach is methodologically robust",
			},
			types.CriterionClarity: {
				"The paper is well-written and clearly structured",
				"The presentation is clear and easy to follow",
				"The writing quality is high with good organization",
				"The paper effectively communicates its contributions",
			},
			types.CriterionSignificance: {
				"The work has clear practical implications",
				"The results demonstrate significant improvements",
				"The findings contribute meaningfully to the field",
				"The research addresses an important problem",
			},
		},
		Weaknesses: map[types.Criterion][]string{
			types.CriterionNovelty: {
				"The novelty of the approach is limited",
				"The contribution appears incremental",
				"Similar approaches have been explored previously",
				"The innovation over existing work is unclear",
			},
			types.CriterionMethodology: {
				"The methodology lacks sufficient detail",
				"The experimental design has notable limitations",
				"The evaluation could be more comprehensive",
				"The validation is insufficient for the claims made",
			},
			types.CriterionClarity: {
				"The presentation could be clearer in several areas",
				"Some sections are difficult to follow",
				"The writing quality needs improvement",
				"The organization could be better structured",
			},
			types.CriterionSignificance: {
				"The practical impact is not clearly demonstrated",
				"The significance of the results is unclear",
				"The broader implications need better articulation",
				"The relevance to the field could be stronger",
			},
		},
		Suggestions: map[types.Criterion][]string{
			types.CriterionNovelty: {
				"Consider highlighting the novel aspects more prominently",
				"Provide clearer differentiation from existing work",
			},
			types.CriterionMethodology: {
				"Expand the methodology section with more implementation details",
				"Include additional validation or comparison studies",
			},
			types.CriterionClarity: {
				"Improve the organization and flow of the paper",
				"Add more explanatory text for complex concepts",
			},
			types.CriterionSignificance: {
				"Better articulate the practical implications of the work",
				"Discuss broader impact and future applications",
			},
		},
		FallbackStrengths: []string{
			"The research addresses a relevant problem in the field",
			"The paper makes a meaningful contribution to the literature",
		},
		FallbackWeaknesses: []string{
			"Minor improvements in presentation could enhance the paper's impact",
		},
		GeneralSuggestions: []string{
			"Consider adding more visual aids (figures, tables) to support the narrative",
			"Strengthen the conclusion with clearer implications and future work directions",
		},
	}
}

// LoadTemplates reads an alternate template pack from a YAML file. Pools
// the file omits fall back to the defaults.
func LoadTemplates(path string) (TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplateSet{}, fmt.Errorf("reading templates %s: %w", path, err)
	}

	ts := DefaultTemplates()
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return TemplateSet{}, fmt.Errorf("parsing templates %s: %w", path, err)
	}
	return ts, nil
}

// style returns the template for a review style, falling back to the peer
// review framing for unknown styles.
func (ts TemplateSet) style(s types.ReviewStyle) StyleTemplate {
	if t, ok := ts.Styles[s]; ok {
		return t
	}
	return ts.Styles[types.StylePeerReview]
}
