// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/marker"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// SentenceBeginningsID identifies the consecutive sentence beginnings check.
const SentenceBeginningsID = "sentenceBeginnings"

const (
	msgBeginningsSingular = "%1$sConsecutive sentences%2$s: The text contains %3$d consecutive sentences starting with the same word. %5$sTry to mix things up%2$s!"
	msgBeginningsPlural   = "%1$sConsecutive sentences%2$s: The text contains %4$d instances where %3$d or more consecutive sentences start with the same word. %5$sTry to mix things up%2$s!"
	msgBeginningsGood     = "%1$sConsecutive sentences%2$s: There is enough variety in your sentences. That's great!"
)

var sentenceBeginningsDefaults = types.AssessmentConfig{
	Parameters:      map[string]float64{"maximumConsecutiveDuplicates": 2},
	Scores:          map[string]int{"good": 9, "bad": 3},
	URLTitle:        "https://yoa.st/35f",
	URLCallToAction: "https://yoa.st/35g",
}

// SentenceBeginnings flags runs of more than two consecutive sentences that
// start with the same word.
type SentenceBeginnings struct {
	cfg config
}

// NewSentenceBeginnings returns the assessment with override merged over
// its defaults.
func NewSentenceBeginnings(override types.AssessmentConfig) *SentenceBeginnings {
	return &SentenceBeginnings{cfg: newConfig(SentenceBeginningsID, sentenceBeginningsDefaults, override)}
}

func (a *SentenceBeginnings) Identifier() string { return SentenceBeginningsID }

// IsApplicable requires text in a language with calibrated exception lists.
func (a *SentenceBeginnings) IsApplicable(paper *types.Paper, r *research.Researcher) bool {
	return paper.HasText() && r.Language().SentenceBeginnings
}

func (a *SentenceBeginnings) Result(_ *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	groups, err := research.Get(r, research.SentenceBeginnings)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	total, lowest := a.tooOften(groups)
	l := a.cfg.links(r)
	if total > 0 {
		text := i18n.Sprintf(tr.Ngettext(msgBeginningsSingular, msgBeginningsPlural, total),
			l.title, l.end, lowest, total, l.callToAction)
		return result(SentenceBeginningsID, a.cfg.score("bad"), text, true), nil
	}
	text := i18n.Sprintf(tr.Gettext(msgBeginningsGood), l.title, l.end)
	return result(SentenceBeginningsID, a.cfg.score("good"), text, false), nil
}

// tooOften returns the number of groups over the limit and the lowest count
// among them.
func (a *SentenceBeginnings) tooOften(groups []research.SentenceBeginning) (total, lowest int) {
	limit := a.cfg.intParam("maximumConsecutiveDuplicates")
	for _, g := range groups {
		if g.Count <= limit {
			continue
		}
		if total == 0 || g.Count < lowest {
			lowest = g.Count
		}
		total++
	}
	return total, lowest
}

// Marks returns every sentence of every group over the limit.
func (a *SentenceBeginnings) Marks(_ *types.Paper, r *research.Researcher) ([]types.Mark, error) {
	groups, err := research.Get(r, research.SentenceBeginnings)
	if err != nil {
		return nil, err
	}
	limit := a.cfg.intParam("maximumConsecutiveDuplicates")
	var marks []types.Mark
	for _, g := range groups {
		if g.Count <= limit {
			continue
		}
		for _, s := range g.Sentences {
			marks = append(marks, marker.Mark(s))
		}
	}
	return marks, nil
}
