// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assessment scores a paper against one writing guideline at a time.
// Each assessment is an independent value implementing Assessment; those
// that can highlight the offending fragments also implement Marker.
// Assessments hold only their merged configuration, so one value may be
// used for any number of papers concurrently.
package assessment

import (
	"math"

	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Assessment scores one aspect of a paper.
type Assessment interface {
	// Identifier names the assessment in results and configuration.
	Identifier() string

	// IsApplicable reports whether the paper carries what the assessment
	// needs. Inapplicable assessments are not run and not scored.
	IsApplicable(paper *types.Paper, r *research.Researcher) bool

	// Result scores the paper and renders the feedback message.
	Result(paper *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error)
}

// Marker is implemented by assessments that can point at the fragments
// responsible for a sub-optimal score.
type Marker interface {
	Marks(paper *types.Paper, r *research.Researcher) ([]types.Mark, error)
}

// config is an assessment's defaults merged with a caller override.
type config struct {
	identifier string
	types.AssessmentConfig
}

func newConfig(identifier string, defaults, override types.AssessmentConfig) config {
	return config{identifier: identifier, AssessmentConfig: defaults.Merge(override)}
}

func (c config) param(name string) float64 {
	return c.Parameters[name]
}

func (c config) intParam(name string) int {
	return int(math.Round(c.Parameters[name]))
}

func (c config) score(name string) int {
	return c.Scores[name]
}

// anchors holds the rendered link tags around a message's title and call
// to action.
type anchors struct {
	title, callToAction, end string
}

// links resolves the article links for a result. Shortlinks supplied to the
// researcher under "<identifier>" and "<identifier>CallToAction" replace the
// configured URLs when both are present. Links render as plain text unless
// both URLs are known.
func (c config) links(r *research.Researcher) anchors {
	title, cta := c.URLTitle, c.URLCallToAction
	l := r.Links()
	if l[c.identifier] != "" && l[c.identifier+"CallToAction"] != "" {
		title, cta = l[c.identifier], l[c.identifier+"CallToAction"]
	}
	if title == "" || cta == "" {
		return anchors{}
	}
	open, end := i18n.Anchor(title)
	ctaOpen, _ := i18n.Anchor(cta)
	return anchors{title: open, callToAction: ctaOpen, end: end}
}

func result(identifier string, score int, text string, hasMarks bool) types.AssessmentResult {
	return types.AssessmentResult{Identifier: identifier, Score: score, Text: text, HasMarks: hasMarks}
}
