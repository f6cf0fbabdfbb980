// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessor

import (
	"fmt"

	"github.com/pdiddy/content-analysis/internal/assessment"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Suite names.
const (
	SuiteSEO         = "seo"
	SuiteReadability = "readability"
)

type constructor struct {
	id    string
	build func(types.AssessmentConfig) assessment.Assessment
}

var seoSuite = []constructor{
	{assessment.KeyphraseLengthID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewKeyphraseLength(c) }},
	{assessment.MetaDescriptionKeywordID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewMetaDescriptionKeyword(c) }},
	{assessment.MetaDescriptionLengthID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewMetaDescriptionLength(c) }},
	{assessment.IntroductionKeywordID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewIntroductionKeyword(c) }},
	{assessment.KeywordDensityID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewKeywordDensity(c) }},
	{assessment.TextLengthID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewTextLength(c) }},
	{assessment.TextImagesID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewTextImages(c) }},
}

var readabilitySuite = []constructor{
	{assessment.SentenceBeginningsID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewSentenceBeginnings(c) }},
	{assessment.SentenceLengthID, func(c types.AssessmentConfig) assessment.Assessment { return assessment.NewSentenceLength(c) }},
}

// SEOAssessments returns the keyphrase and metadata assessments with the
// overrides in cfg applied. Disabled assessments are left out.
func SEOAssessments(cfg types.AnalysisConfig) []assessment.Assessment {
	return buildSuite(seoSuite, cfg)
}

// ReadabilityAssessments returns the readability assessments with the
// overrides in cfg applied. Disabled assessments are left out.
func ReadabilityAssessments(cfg types.AnalysisConfig) []assessment.Assessment {
	return buildSuite(readabilitySuite, cfg)
}

// Suite returns the assessments of a named suite.
func Suite(name string, cfg types.AnalysisConfig) ([]assessment.Assessment, error) {
	switch name {
	case SuiteSEO:
		return SEOAssessments(cfg), nil
	case SuiteReadability:
		return ReadabilityAssessments(cfg), nil
	default:
		return nil, fmt.Errorf("unknown suite %q (want %s or %s)", name, SuiteSEO, SuiteReadability)
	}
}

// Suites lists the suite names in display order.
func Suites() []string {
	return []string{SuiteSEO, SuiteReadability}
}

func buildSuite(suite []constructor, cfg types.AnalysisConfig) []assessment.Assessment {
	out := make([]assessment.Assessment, 0, len(suite))
	for _, c := range suite {
		override := cfg.Assessments[c.id]
		if override.Disabled {
			continue
		}
		out = append(out, c.build(override))
	}
	return out
}
