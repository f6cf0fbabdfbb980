// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// ScoreNotScored marks a result that carries feedback but no score.
	ScoreNotScored = 0

	// NoScore is the overall score of a run with no scored results.
	NoScore = -1
)

// Rating buckets a score for display.
type Rating string

const (
	RatingFeedback Rating = "feedback"
	RatingBad      Rating = "bad"
	RatingOK       Rating = "ok"
	RatingGood     Rating = "good"
)

// RatingFor maps a 1-9 score to its rating. Scores at or below zero are
// feedback-only.
func RatingFor(score int) Rating {
	switch {
	case score <= ScoreNotScored:
		return RatingFeedback
	case score <= 4:
		return RatingBad
	case score <= 7:
		return RatingOK
	default:
		return RatingGood
	}
}

// AssessmentResult is the outcome of one assessment against one paper.
type AssessmentResult struct {
	// Identifier names the assessment (e.g. "metaDescriptionKeyword").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Score is 1-9, or ScoreNotScored.
	Score int `json:"score" yaml:"score"`

	// Text is the translated, interpolated message. It may contain anchors.
	Text string `json:"text" yaml:"text"`

	// HasMarks reports whether the assessment can highlight its findings.
	HasMarks bool `json:"has_marks" yaml:"has_marks"`
}

// Rating returns the rating bucket of the result's score.
func (r AssessmentResult) Rating() Rating {
	return RatingFor(r.Score)
}

// Mark is one highlighted span: the original fragment as it appears in the
// text and the same fragment wrapped for display.
type Mark struct {
	Original string `json:"original" yaml:"original"`
	Marked   string `json:"marked" yaml:"marked"`
}

// OverallRating maps a 0-100 overall score to a rating.
func OverallRating(overall int) Rating {
	switch {
	case overall < 0:
		return RatingFeedback
	case overall <= 40:
		return RatingBad
	case overall <= 70:
		return RatingOK
	default:
		return RatingGood
	}
}

// SuiteReport is the serializable outcome of one assessor run.
type SuiteReport struct {
	// Suite names the assessment set ("seo" or "readability").
	Suite string `json:"suite" yaml:"suite"`

	// Results lists assessment results in assessor order.
	Results []AssessmentResult `json:"results" yaml:"results"`

	// OverallScore is 0-100, or NoScore.
	OverallScore int `json:"overall_score" yaml:"overall_score"`

	// Rating is the rating of OverallScore.
	Rating Rating `json:"rating" yaml:"rating"`

	// Marks holds marks per assessment identifier, when requested.
	Marks map[string][]Mark `json:"marks,omitempty" yaml:"marks,omitempty"`

	// Failures lists assessments that errored and were excluded.
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// AnalysisReport collects the suite reports for one paper.
type AnalysisReport struct {
	// PaperID identifies the analyzed paper (file slug, indexable ID or URL).
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Locale is the paper's locale.
	Locale string `json:"locale" yaml:"locale"`

	// Language is the language config the analysis resolved to.
	Language string `json:"language" yaml:"language"`

	// Suites holds one report per suite that ran.
	Suites []SuiteReport `json:"suites" yaml:"suites"`

	// Suggestions holds rewrite suggestions for marked sentences.
	Suggestions []Suggestion `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Suggestion is a proposed rewrite of a flagged fragment.
type Suggestion struct {
	Assessment string `json:"assessment" yaml:"assessment"`
	Original   string `json:"original" yaml:"original"`
	Rewrite    string `json:"rewrite" yaml:"rewrite"`
}
