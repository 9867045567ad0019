// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Criterion identifies one review scoring criterion.
type Criterion string

const (
	CriterionNovelty      Criterion = "novelty"
	CriterionMethodology  Criterion = "methodology"
	CriterionClarity      Criterion = "clarity"
	CriterionSignificance Criterion = "significance"
)

// Criteria lists every criterion in presentation order.
var Criteria = []Criterion{
	CriterionNovelty,
	CriterionMethodology,
	CriterionClarity,
	CriterionSignificance,
}

// NeutralPrior is the default weight for a criterion the caller omits.
const NeutralPrior = 7

// CriteriaWeights maps each criterion to a caller-supplied importance
// weight on a 1-10 scale. The weight doubles as the prior score for the
// criterion before feature adjustment.
type CriteriaWeights map[Criterion]int

// DefaultWeights returns the application defaults.
func DefaultWeights() CriteriaWeights {
	return CriteriaWeights{
		CriterionNovelty:      8,
		CriterionMethodology:  9,
		CriterionClarity:      7,
		CriterionSignificance: 8,
	}
}

// Normalized returns a copy with every criterion present and every weight
// clamped to [1,10]. Missing criteria receive NeutralPrior.
func (w CriteriaWeights) Normalized() CriteriaWeights {
	out := make(CriteriaWeights, len(Criteria))
	for _, c := range Criteria {
		v, ok := w[c]
		if !ok || v == 0 {
			v = NeutralPrior
		}
		if v < 1 {
			v = 1
		}
		if v > 10 {
			v = 10
		}
		out[c] = v
	}
	return out
}

// Recommendation is the review outcome bucket.
type Recommendation string

const (
	RecommendAccept        Recommendation = "Accept"
	RecommendMinorRevision Recommendation = "Minor Revision"
	RecommendMajorRevision Recommendation = "Major Revision"
	RecommendReject        Recommendation = "Reject"
)

// ScoreBreakdown holds the per-criterion and overall scores for one review.
// Scores are on a 1-10 scale; Overall is the weight-averaged mean.
type ScoreBreakdown struct {
	Scores         map[Criterion]float64 `json:"scores" yaml:"scores"`
	Overall        float64               `json:"overall" yaml:"overall"`
	Recommendation Recommendation        `json:"recommendation" yaml:"recommendation"`
}

// ReviewStyle selects the narrative template family.
type ReviewStyle string

const (
	StyleConference    ReviewStyle = "Academic Conference"
	StyleJournal       ReviewStyle = "Journal Review"
	StyleThesisDefense ReviewStyle = "Thesis Defense"
	StylePeerReview    ReviewStyle = "Peer Review"
)

// Review is the terminal artifact of the pipeline: scores plus narrative.
type Review struct {
	ScoreBreakdown `yaml:",inline"`

	Strengths   []string `json:"strengths" yaml:"strengths"`
	Weaknesses  []string `json:"weaknesses" yaml:"weaknesses"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`

	// Comments is the assembled narrative block.
	Comments string `json:"comments" yaml:"comments"`

	// Summary is a one-line restatement of score and recommendation.
	Summary string `json:"summary" yaml:"summary"`

	// Style is the template family used for the narrative.
	Style ReviewStyle `json:"style" yaml:"style"`

	// Date is the review date in YYYY-MM-DD form, supplied by the host.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
}
