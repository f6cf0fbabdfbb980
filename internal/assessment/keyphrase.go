// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"math"

	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/marker"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Keyphrase assessment identifiers.
const (
	KeyphraseLengthID     = "keyphraseLength"
	KeywordDensityID      = "keywordDensity"
	IntroductionKeywordID = "introductionKeyword"
)

const (
	msgKeyphraseLengthMissing = "%1$sKeyphrase length%2$s: No focus keyphrase was set for this page. %3$sSet a keyphrase in order to calculate your SEO score%2$s."
	msgKeyphraseLengthGood    = "%1$sKeyphrase length%2$s: Good job!"
	msgKeyphraseLengthLong    = "%1$sKeyphrase length%2$s: The keyphrase is %3$d words long. That's more than the recommended maximum of %4$d words. %5$sMake it shorter%2$s!"
	msgKeyphraseLengthTooLong = "%1$sKeyphrase length%2$s: The keyphrase is %3$d words long. That's way more than the recommended maximum of %4$d words. %5$sMake it shorter%2$s!"
)

var keyphraseLengthDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"recommendedMaximum": 4, "acceptableMaximum": 8},
	Scores:          map[string]int{"veryBad": 1, "bad": 3, "okay": 6, "good": 9},
	URLTitle:        "https://yoa.st/33i",
	URLCallToAction: "https://yoa.st/33j",
}

// KeyphraseLength checks that a keyphrase is set and is not too long.
type KeyphraseLength struct {
	cfg config
}

// NewKeyphraseLength returns the assessment with override merged over its
// defaults.
func NewKeyphraseLength(override types.AssessmentConfig) *KeyphraseLength {
	return &KeyphraseLength{cfg: newConfig(KeyphraseLengthID, keyphraseLengthDefaults, override)}
}

func (a *KeyphraseLength) Identifier() string { return KeyphraseLengthID }

// IsApplicable is always true; a missing keyphrase is itself a finding.
func (a *KeyphraseLength) IsApplicable(*types.Paper, *research.Researcher) bool {
	return true
}

func (a *KeyphraseLength) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	n, err := research.Get(r, research.KeyphraseLength)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	recommended := a.cfg.intParam("recommendedMaximum")
	l := a.cfg.links(r)
	switch {
	case n == 0:
		text := i18n.Sprintf(tr.Gettext(msgKeyphraseLengthMissing), l.title, l.end, l.callToAction)
		return result(KeyphraseLengthID, a.cfg.score("veryBad"), text, false), nil
	case n <= recommended:
		text := i18n.Sprintf(tr.Gettext(msgKeyphraseLengthGood), l.title, l.end)
		return result(KeyphraseLengthID, a.cfg.score("good"), text, false), nil
	case n <= a.cfg.intParam("acceptableMaximum"):
		text := i18n.Sprintf(tr.Gettext(msgKeyphraseLengthLong), l.title, l.end, n, recommended, l.callToAction)
		return result(KeyphraseLengthID, a.cfg.score("okay"), text, false), nil
	default:
		text := i18n.Sprintf(tr.Gettext(msgKeyphraseLengthTooLong), l.title, l.end, n, recommended, l.callToAction)
		return result(KeyphraseLengthID, a.cfg.score("bad"), text, false), nil
	}
}

const (
	msgDensityLowSingular  = "%1$sKeyphrase density%2$s: The focus keyphrase was found %3$d time. That's less than the recommended minimum of %4$d times for a text of this length. %5$sFocus on your keyphrase%2$s!"
	msgDensityLowPlural    = "%1$sKeyphrase density%2$s: The focus keyphrase was found %3$d times. That's less than the recommended minimum of %4$d times for a text of this length. %5$sFocus on your keyphrase%2$s!"
	msgDensityGoodSingular = "%1$sKeyphrase density%2$s: The focus keyphrase was found %3$d time. This is great!"
	msgDensityGoodPlural   = "%1$sKeyphrase density%2$s: The focus keyphrase was found %3$d times. This is great!"
	msgDensityHigh         = "%1$sKeyphrase density%2$s: The focus keyphrase was found %3$d times. That's more than the recommended maximum of %4$d times for a text of this length. %5$sDon't overoptimize%2$s!"
)

var keywordDensityDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"minimumWords": 100, "minimumDensity": 0.5, "maximumDensity": 3},
	Scores:          map[string]int{"underMinimum": 4, "good": 9, "overMaximum": 3},
	URLTitle:        "https://yoa.st/33v",
	URLCallToAction: "https://yoa.st/33w",
}

// KeywordDensity checks how often the keyphrase occurs relative to the
// length of the text.
type KeywordDensity struct {
	cfg config
}

// NewKeywordDensity returns the assessment with override merged over its
// defaults.
func NewKeywordDensity(override types.AssessmentConfig) *KeywordDensity {
	return &KeywordDensity{cfg: newConfig(KeywordDensityID, keywordDensityDefaults, override)}
}

func (a *KeywordDensity) Identifier() string { return KeywordDensityID }

// IsApplicable requires a keyphrase and enough text for a density to mean
// anything.
func (a *KeywordDensity) IsApplicable(paper *types.Paper, r *research.Researcher) bool {
	if !paper.HasText() || !paper.HasKeyword() {
		return false
	}
	words, err := research.Get(r, research.WordCountInText)
	return err == nil && words >= a.cfg.intParam("minimumWords")
}

// bounds converts the density limits into occurrence counts for a text of
// the given length.
func (a *KeywordDensity) bounds(words int) (minimum, maximum int) {
	minimum = int(math.Ceil(float64(words) * a.cfg.param("minimumDensity") / 100))
	maximum = int(math.Floor(float64(words) * a.cfg.param("maximumDensity") / 100))
	return minimum, maximum
}

func (a *KeywordDensity) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	words, err := research.Get(r, research.WordCountInText)
	if err != nil {
		return types.AssessmentResult{}, err
	}
	matches, err := research.Get(r, research.KeywordCount)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	minimum, maximum := a.bounds(words)
	l := a.cfg.links(r)
	switch {
	case matches.Count < minimum:
		text := i18n.Sprintf(tr.Ngettext(msgDensityLowSingular, msgDensityLowPlural, matches.Count),
			l.title, l.end, matches.Count, minimum, l.callToAction)
		return result(KeywordDensityID, a.cfg.score("underMinimum"), text, false), nil
	case matches.Count > maximum:
		text := i18n.Sprintf(tr.Gettext(msgDensityHigh), l.title, l.end, matches.Count, maximum, l.callToAction)
		return result(KeywordDensityID, a.cfg.score("overMaximum"), text, true), nil
	default:
		text := i18n.Sprintf(tr.Ngettext(msgDensityGoodSingular, msgDensityGoodPlural, matches.Count),
			l.title, l.end, matches.Count)
		return result(KeywordDensityID, a.cfg.score("good"), text, false), nil
	}
}

// Marks returns the sentences containing the keyphrase when it is overused.
func (a *KeywordDensity) Marks(_ *types.Paper, r *research.Researcher) ([]types.Mark, error) {
	words, err := research.Get(r, research.WordCountInText)
	if err != nil {
		return nil, err
	}
	matches, err := research.Get(r, research.KeywordCount)
	if err != nil {
		return nil, err
	}
	if _, maximum := a.bounds(words); matches.Count <= maximum {
		return nil, nil
	}
	marks := make([]types.Mark, 0, len(matches.Sentences))
	for _, s := range matches.Sentences {
		marks = append(marks, marker.Mark(s))
	}
	return marks, nil
}

const (
	msgIntroGood    = "%1$sKeyphrase in introduction%2$s: Well done!"
	msgIntroSpread  = "%1$sKeyphrase in introduction%2$s: Your keyphrase or its synonyms appear in the first paragraph of the copy, but not within one sentence. %3$sFix that%2$s!"
	msgIntroMissing = "%1$sKeyphrase in introduction%2$s: Your keyphrase or its synonyms do not appear in the first paragraph. %3$sMake sure the topic is clear immediately%2$s."
)

var introductionKeywordDefaults = types.AssessmentConfig{
	Scores:          map[string]int{"good": 9, "okay": 6, "bad": 3},
	URLTitle:        "https://yoa.st/33e",
	URLCallToAction: "https://yoa.st/33f",
}

// IntroductionKeyword checks that the first paragraph introduces the topic.
type IntroductionKeyword struct {
	cfg config
}

// NewIntroductionKeyword returns the assessment with override merged over
// its defaults.
func NewIntroductionKeyword(override types.AssessmentConfig) *IntroductionKeyword {
	return &IntroductionKeyword{cfg: newConfig(IntroductionKeywordID, introductionKeywordDefaults, override)}
}

func (a *IntroductionKeyword) Identifier() string { return IntroductionKeywordID }

func (a *IntroductionKeyword) IsApplicable(paper *types.Paper, _ *research.Researcher) bool {
	return paper.HasText() && paper.HasKeyword()
}

func (a *IntroductionKeyword) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	m, err := research.Get(r, research.FirstParagraphKeyword)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	l := a.cfg.links(r)
	switch {
	case m.InOneSentence:
		text := i18n.Sprintf(tr.Gettext(msgIntroGood), l.title, l.end)
		return result(IntroductionKeywordID, a.cfg.score("good"), text, false), nil
	case m.InParagraph:
		text := i18n.Sprintf(tr.Gettext(msgIntroSpread), l.title, l.end, l.callToAction)
		return result(IntroductionKeywordID, a.cfg.score("okay"), text, false), nil
	default:
		text := i18n.Sprintf(tr.Gettext(msgIntroMissing), l.title, l.end, l.callToAction)
		return result(IntroductionKeywordID, a.cfg.score("bad"), text, false), nil
	}
}
