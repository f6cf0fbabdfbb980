// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Meta description assessment identifiers.
const (
	MetaDescriptionKeywordID = "metaDescriptionKeyword"
	MetaDescriptionLengthID  = "metaDescriptionLength"
)

const (
	msgMetaKeywordGood    = "%1$sKeyphrase in meta description%2$s: Keyphrase or synonym appear in the meta description. Well done!"
	msgMetaKeywordOveruse = "%1$sKeyphrase in meta description%2$s: The meta description contains the keyphrase %3$s times, which is over the advised maximum of 2 times. %4$sLimit that%5$s!"
	msgMetaKeywordMissing = "%1$sKeyphrase in meta description%2$s: The meta description has been specified, but it does not contain the keyphrase. %3$sFix that%4$s!"
)

var metaDescriptionKeywordDefaults = types.AssessmentConfig{
	Parameters: map[string]float64{"recommendedMinimum": 1},
	Scores:     map[string]int{"good": 9, "ok": 6, "bad": 3},
}

// MetaDescriptionKeyword checks how often the keyphrase or a synonym appears
// in the meta description.
type MetaDescriptionKeyword struct {
	cfg config
}

// NewMetaDescriptionKeyword returns the assessment with override merged
// over its defaults.
func NewMetaDescriptionKeyword(override types.AssessmentConfig) *MetaDescriptionKeyword {
	return &MetaDescriptionKeyword{cfg: newConfig(MetaDescriptionKeywordID, metaDescriptionKeywordDefaults, override)}
}

func (a *MetaDescriptionKeyword) Identifier() string { return MetaDescriptionKeywordID }

// IsApplicable requires both a keyphrase and a meta description.
func (a *MetaDescriptionKeyword) IsApplicable(paper *types.Paper, _ *research.Researcher) bool {
	return paper.HasKeyword() && paper.HasDescription()
}

// Result scores one or two matches good, three or more bad for overuse and
// none bad for omission.
func (a *MetaDescriptionKeyword) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	count, err := research.Get(r, research.MetaDescriptionKeyword)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	l := a.cfg.links(r)
	switch {
	case count >= a.cfg.intParam("recommendedMinimum") && count <= 2:
		text := i18n.Sprintf(tr.Gettext(msgMetaKeywordGood), l.title, l.end)
		return result(MetaDescriptionKeywordID, a.cfg.score("good"), text, false), nil
	case count >= 3:
		text := i18n.Sprintf(tr.Gettext(msgMetaKeywordOveruse), l.title, l.end, count, l.callToAction, l.end)
		return result(MetaDescriptionKeywordID, a.cfg.score("bad"), text, false), nil
	default:
		text := i18n.Sprintf(tr.Gettext(msgMetaKeywordMissing), l.title, l.end, l.callToAction, l.end)
		return result(MetaDescriptionKeywordID, a.cfg.score("bad"), text, false), nil
	}
}

const (
	msgMetaLengthMissing = "%1$sMeta description length%2$s: No meta description has been specified. Search engines will display copy from the page instead. %3$sMake sure to write one%2$s!"
	msgMetaLengthShort   = "%1$sMeta description length%2$s: The meta description is too short (under %3$d characters). Up to %4$d characters are available. %5$sUse the space%2$s!"
	msgMetaLengthLong    = "%1$sMeta description length%2$s: The meta description is over %3$d characters. To ensure the entire description will be visible, %4$syou should reduce the length%2$s!"
	msgMetaLengthGood    = "%1$sMeta description length%2$s: Well done!"
)

var metaDescriptionLengthDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"recommendedMinimum": 120, "maximum": 156},
	Scores:          map[string]int{"noMetaDescription": 1, "tooShort": 6, "tooLong": 6, "good": 9},
	URLTitle:        "https://yoa.st/34d",
	URLCallToAction: "https://yoa.st/34e",
}

// MetaDescriptionLength checks the meta description against the length a
// search result snippet can show.
type MetaDescriptionLength struct {
	cfg config
}

// NewMetaDescriptionLength returns the assessment with override merged over
// its defaults.
func NewMetaDescriptionLength(override types.AssessmentConfig) *MetaDescriptionLength {
	return &MetaDescriptionLength{cfg: newConfig(MetaDescriptionLengthID, metaDescriptionLengthDefaults, override)}
}

func (a *MetaDescriptionLength) Identifier() string { return MetaDescriptionLengthID }

// IsApplicable is always true; a missing description is itself a finding.
func (a *MetaDescriptionLength) IsApplicable(*types.Paper, *research.Researcher) bool {
	return true
}

func (a *MetaDescriptionLength) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	length, err := research.Get(r, research.MetaDescriptionLength)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	minimum := a.cfg.intParam("recommendedMinimum")
	maximum := a.cfg.intParam("maximum")
	l := a.cfg.links(r)
	switch {
	case length == 0:
		text := i18n.Sprintf(tr.Gettext(msgMetaLengthMissing), l.title, l.end, l.callToAction)
		return result(MetaDescriptionLengthID, a.cfg.score("noMetaDescription"), text, false), nil
	case length < minimum:
		text := i18n.Sprintf(tr.Gettext(msgMetaLengthShort), l.title, l.end, minimum, maximum, l.callToAction)
		return result(MetaDescriptionLengthID, a.cfg.score("tooShort"), text, false), nil
	case length > maximum:
		text := i18n.Sprintf(tr.Gettext(msgMetaLengthLong), l.title, l.end, maximum, l.callToAction)
		return result(MetaDescriptionLengthID, a.cfg.score("tooLong"), text, false), nil
	default:
		text := i18n.Sprintf(tr.Gettext(msgMetaLengthGood), l.title, l.end)
		return result(MetaDescriptionLengthID, a.cfg.score("good"), text, false), nil
	}
}
