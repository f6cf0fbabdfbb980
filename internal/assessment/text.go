// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"strconv"

	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/marker"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Text assessment identifiers.
const (
	TextLengthID     = "textLength"
	SentenceLengthID = "sentenceLength"
	TextImagesID     = "textImages"
)

const (
	msgTextLengthGoodSingular = "%1$sText length%2$s: The text contains %3$d word. Good job!"
	msgTextLengthGoodPlural   = "%1$sText length%2$s: The text contains %3$d words. Good job!"
	msgTextLengthSlightly     = "%1$sText length%2$s: The text contains %3$d words. This is slightly below the recommended minimum of %4$d words. %5$sAdd a bit more copy%2$s."
	msgTextLengthBelow        = "%1$sText length%2$s: The text contains %3$d words. This is below the recommended minimum of %4$d words. %5$sAdd more content%2$s."
	msgTextLengthFarSingular  = "%1$sText length%2$s: The text contains %3$d word. This is far below the recommended minimum of %4$d words. %5$sAdd more content%2$s."
	msgTextLengthFarPlural    = "%1$sText length%2$s: The text contains %3$d words. This is far below the recommended minimum of %4$d words. %5$sAdd more content%2$s."
)

var textLengthDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"recommendedMinimum": 300, "slightlyBelowMinimum": 250, "belowMinimum": 200},
	Scores:          map[string]int{"good": 9, "slightlyBelowMinimum": 6, "belowMinimum": 3, "farBelowMinimum": 1},
	URLTitle:        "https://yoa.st/34n",
	URLCallToAction: "https://yoa.st/34o",
}

// TextLength checks the text has enough words to rank.
type TextLength struct {
	cfg config
}

// NewTextLength returns the assessment with override merged over its
// defaults.
func NewTextLength(override types.AssessmentConfig) *TextLength {
	return &TextLength{cfg: newConfig(TextLengthID, textLengthDefaults, override)}
}

func (a *TextLength) Identifier() string { return TextLengthID }

func (a *TextLength) IsApplicable(paper *types.Paper, _ *research.Researcher) bool {
	return paper.HasText()
}

func (a *TextLength) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	words, err := research.Get(r, research.WordCountInText)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	minimum := a.cfg.intParam("recommendedMinimum")
	l := a.cfg.links(r)
	switch {
	case words >= minimum:
		text := i18n.Sprintf(tr.Ngettext(msgTextLengthGoodSingular, msgTextLengthGoodPlural, words), l.title, l.end, words)
		return result(TextLengthID, a.cfg.score("good"), text, false), nil
	case words >= a.cfg.intParam("slightlyBelowMinimum"):
		text := i18n.Sprintf(tr.Gettext(msgTextLengthSlightly), l.title, l.end, words, minimum, l.callToAction)
		return result(TextLengthID, a.cfg.score("slightlyBelowMinimum"), text, false), nil
	case words >= a.cfg.intParam("belowMinimum"):
		text := i18n.Sprintf(tr.Gettext(msgTextLengthBelow), l.title, l.end, words, minimum, l.callToAction)
		return result(TextLengthID, a.cfg.score("belowMinimum"), text, false), nil
	default:
		text := i18n.Sprintf(tr.Ngettext(msgTextLengthFarSingular, msgTextLengthFarPlural, words),
			l.title, l.end, words, minimum, l.callToAction)
		return result(TextLengthID, a.cfg.score("farBelowMinimum"), text, false), nil
	}
}

const (
	msgSentenceLengthGood = "%1$sSentence length%2$s: Great!"
	msgSentenceLengthLong = "%1$sSentence length%2$s: %3$s of the sentences contain more than %4$s words, which is more than the recommended maximum of %5$s. %6$sTry to shorten the sentences%2$s."
)

var sentenceLengthDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"recommendedWordCount": 20, "slightlyTooMany": 25, "farTooMany": 30},
	Scores:          map[string]int{"good": 9, "okay": 6, "bad": 3},
	URLTitle:        "https://yoa.st/34v",
	URLCallToAction: "https://yoa.st/34w",
}

// SentenceLength checks the share of sentences longer than the recommended
// word count.
type SentenceLength struct {
	cfg config
}

// NewSentenceLength returns the assessment with override merged over its
// defaults.
func NewSentenceLength(override types.AssessmentConfig) *SentenceLength {
	return &SentenceLength{cfg: newConfig(SentenceLengthID, sentenceLengthDefaults, override)}
}

func (a *SentenceLength) Identifier() string { return SentenceLengthID }

func (a *SentenceLength) IsApplicable(paper *types.Paper, _ *research.Researcher) bool {
	return paper.HasText()
}

func (a *SentenceLength) long(lengths []research.SentenceLength) []research.SentenceLength {
	limit := a.cfg.intParam("recommendedWordCount")
	var out []research.SentenceLength
	for _, s := range lengths {
		if s.Words > limit {
			out = append(out, s)
		}
	}
	return out
}

// share returns the percentage of sentences over the recommended length.
func (a *SentenceLength) share(lengths []research.SentenceLength) float64 {
	if len(lengths) == 0 {
		return 0
	}
	return float64(len(a.long(lengths))) * 100 / float64(len(lengths))
}

func (a *SentenceLength) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	lengths, err := research.Get(r, research.SentenceLengths)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	share := a.share(lengths)
	l := a.cfg.links(r)
	score := a.cfg.score("bad")
	switch {
	case share <= a.cfg.param("slightlyTooMany"):
		text := i18n.Sprintf(tr.Gettext(msgSentenceLengthGood), l.title, l.end)
		return result(SentenceLengthID, a.cfg.score("good"), text, false), nil
	case share <= a.cfg.param("farTooMany"):
		score = a.cfg.score("okay")
	}
	text := i18n.Sprintf(tr.Gettext(msgSentenceLengthLong),
		l.title, l.end,
		strconv.FormatFloat(share, 'f', 1, 64)+"%",
		strconv.Itoa(a.cfg.intParam("recommendedWordCount")),
		strconv.FormatFloat(a.cfg.param("slightlyTooMany"), 'f', -1, 64)+"%",
		l.callToAction)
	return result(SentenceLengthID, score, text, true), nil
}

// Marks returns the sentences over the recommended word count when too
// many sentences are long.
func (a *SentenceLength) Marks(_ *types.Paper, r *research.Researcher) ([]types.Mark, error) {
	lengths, err := research.Get(r, research.SentenceLengths)
	if err != nil {
		return nil, err
	}
	if a.share(lengths) <= a.cfg.param("slightlyTooMany") {
		return nil, nil
	}
	long := a.long(lengths)
	marks := make([]types.Mark, 0, len(long))
	for _, s := range long {
		marks = append(marks, marker.Mark(s.Sentence))
	}
	return marks, nil
}

const (
	msgImagesGood    = "%1$sImages%2$s: Good job!"
	msgImagesMissing = "%1$sImages%2$s: No images appear on this page. %3$sAdd some%2$s!"
)

var textImagesDefaults = types.AssessmentConfig{
	Scores:          map[string]int{"good": 9, "bad": 3},
	URLTitle:        "https://yoa.st/4f4",
	URLCallToAction: "https://yoa.st/4f5",
}

// TextImages checks that the page carries at least one image.
type TextImages struct {
	cfg config
}

// NewTextImages returns the assessment with override merged over its
// defaults.
func NewTextImages(override types.AssessmentConfig) *TextImages {
	return &TextImages{cfg: newConfig(TextImagesID, textImagesDefaults, override)}
}

func (a *TextImages) Identifier() string { return TextImagesID }

func (a *TextImages) IsApplicable(paper *types.Paper, _ *research.Researcher) bool {
	return paper.HasText()
}

func (a *TextImages) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	n, err := research.Get(r, research.ImageCount)
	if err != nil {
		return types.AssessmentResult{}, err
	}
	l := a.cfg.links(r)
	if n > 0 {
		return result(TextImagesID, a.cfg.score("good"), i18n.Sprintf(tr.Gettext(msgImagesGood), l.title, l.end), false), nil
	}
	text := i18n.Sprintf(tr.Gettext(msgImagesMissing), l.title, l.end, l.callToAction)
	return result(TextImagesID, a.cfg.score("bad"), text, false), nil
}
