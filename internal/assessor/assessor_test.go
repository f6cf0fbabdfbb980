// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/internal/assessment"
	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// stubAssessment returns a fixed score, or requests research under a name
// that may not be registered.
type stubAssessment struct {
	id         string
	applicable bool
	score      int
	research   research.Name
	panics     bool
}

func (s stubAssessment) Identifier() string { return s.id }

func (s stubAssessment) IsApplicable(*types.Paper, *research.Researcher) bool { return s.applicable }

func (s stubAssessment) Result(_ *types.Paper, r *research.Researcher, _ i18n.Translator) (types.AssessmentResult, error) {
	if s.panics {
		panic("boom")
	}
	if s.research != "" {
		if _, err := research.Get(r, research.NewKey[int](s.research)); err != nil {
			return types.AssessmentResult{}, err
		}
	}
	return types.AssessmentResult{Identifier: s.id, Score: s.score, Text: s.id}, nil
}

// markingStub is a stubAssessment that also marks, panics while marking,
// or fails to mark.
type markingStub struct {
	stubAssessment
	marks      []types.Mark
	markPanics bool
	markErr    error
}

func (s markingStub) Result(p *types.Paper, r *research.Researcher, tr i18n.Translator) (types.AssessmentResult, error) {
	res, err := s.stubAssessment.Result(p, r, tr)
	res.HasMarks = true
	return res, err
}

func (s markingStub) Marks(*types.Paper, *research.Researcher) ([]types.Mark, error) {
	if s.markPanics {
		panic("marks exploded")
	}
	return s.marks, s.markErr
}

func newPaper(text string) *types.Paper {
	return types.NewPaper(text, types.PaperAttributes{})
}

func TestRunZeroApplicableIsNoScore(t *testing.T) {
	a := New(research.NewDefaultRegistry(), i18n.English(), ReadabilityAssessments(types.AnalysisConfig{}))
	run := a.Run(newPaper(""))

	assert.Empty(t, run.Results)
	assert.Equal(t, types.NoScore, run.OverallScore)
	assert.Equal(t, types.RatingFeedback, run.Rating())
}

func TestRunOverallScore(t *testing.T) {
	a := New(research.NewRegistry(), i18n.English(), []assessment.Assessment{
		stubAssessment{id: "good", applicable: true, score: 9},
		stubAssessment{id: "skipped", applicable: false, score: 1},
		stubAssessment{id: "bad", applicable: true, score: 3},
		stubAssessment{id: "feedback", applicable: true, score: types.ScoreNotScored},
	})
	run := a.Run(newPaper("text"))

	ids := make([]string, 0, len(run.Results))
	for _, r := range run.Results {
		ids = append(ids, r.Identifier)
	}
	assert.Equal(t, []string{"good", "bad", "feedback"}, ids, "input order, inapplicable excluded")
	assert.Equal(t, 67, run.OverallScore, "round(12*100/18)")
}

func TestRunIsolatesFailures(t *testing.T) {
	var warn bytes.Buffer
	a := New(research.NewDefaultRegistry(), i18n.English(), []assessment.Assessment{
		stubAssessment{id: "first", applicable: true, score: 9},
		stubAssessment{id: "unknown", applicable: true, score: 9, research: "neverRegistered"},
		stubAssessment{id: "panicky", applicable: true, panics: true},
		stubAssessment{id: "last", applicable: true, score: 6},
	}, WithWarnings(&warn))

	run := a.Run(newPaper("text"))

	require.Len(t, run.Results, 2)
	assert.Equal(t, "first", run.Results[0].Identifier)
	assert.Equal(t, "last", run.Results[1].Identifier)
	assert.Equal(t, 83, run.OverallScore)

	require.Len(t, run.Failures, 2)
	var unknown *research.UnknownResearcherError
	assert.True(t, errors.As(run.Failures[0].Err, &unknown))
	assert.Equal(t, "panicky", run.Failures[1].Identifier)

	assert.Contains(t, warn.String(), "warning: assessment unknown: unknown researcher \"neverRegistered\"")
	assert.Contains(t, warn.String(), "warning: assessment panicky: panic: boom")
}

func TestRunMarksAndReport(t *testing.T) {
	a := New(research.NewDefaultRegistry(), i18n.English(), ReadabilityAssessments(types.AnalysisConfig{}))
	run := a.Run(newPaper("Cats sleep. Cats eat. Cats play. Dogs bark."))

	marks, err := run.Marks(assessment.SentenceBeginningsID)
	require.NoError(t, err)
	assert.Len(t, marks, 3)

	_, err = run.Marks(assessment.KeywordDensityID)
	assert.Error(t, err, "assessment did not take part")

	rep := run.Report(SuiteReadability, true)
	assert.Equal(t, SuiteReadability, rep.Suite)
	assert.Equal(t, run.OverallScore, rep.OverallScore)
	assert.Len(t, rep.Marks[assessment.SentenceBeginningsID], 3)
	assert.NotContains(t, rep.Marks, assessment.SentenceLengthID)

	rep = run.Report(SuiteReadability, false)
	assert.Nil(t, rep.Marks)
}

func TestReportIsolatesMarkFailures(t *testing.T) {
	var warn bytes.Buffer
	good := []types.Mark{{Original: "text", Marked: "<mark>text</mark>"}}
	a := New(research.NewRegistry(), i18n.English(), []assessment.Assessment{
		markingStub{stubAssessment: stubAssessment{id: "panicky", applicable: true, score: 3}, markPanics: true},
		markingStub{stubAssessment: stubAssessment{id: "broken", applicable: true, score: 3}, markErr: errors.New("no sentences")},
		markingStub{stubAssessment: stubAssessment{id: "fine", applicable: true, score: 3}, marks: good},
	}, WithWarnings(&warn))

	run := a.Run(newPaper("text"))
	require.Len(t, run.Results, 3)

	_, err := run.Marks("panicky")
	assert.ErrorContains(t, err, "marking panicky: panic: marks exploded")

	rep := run.Report("custom", true)
	assert.Len(t, rep.Results, 3, "a marks failure keeps the score")
	assert.Equal(t, good, rep.Marks["fine"])
	assert.NotContains(t, rep.Marks, "panicky")
	assert.Equal(t, []string{
		"marking panicky: panic: marks exploded",
		"marking broken: no sentences",
	}, rep.Failures)
	assert.Contains(t, warn.String(), "warning: marking broken: no sentences")
}

func TestRunSelectsCatalogPerPaper(t *testing.T) {
	a := New(research.NewDefaultRegistry(), nil, SEOAssessments(types.AnalysisConfig{}))
	run := a.Run(types.NewPaper("Körper.", types.PaperAttributes{Locale: "de_DE"}))

	require.NotEmpty(t, run.Results)
	assert.Contains(t, run.Results[0].Text, "Länge der Keyphrase")
	assert.Equal(t, "de", run.Language().Code)
}

func TestRunAll(t *testing.T) {
	a := New(research.NewDefaultRegistry(), i18n.English(),
		append(SEOAssessments(types.AnalysisConfig{}), ReadabilityAssessments(types.AnalysisConfig{})...))

	papers := make([]*types.Paper, 8)
	for i := range papers {
		papers[i] = types.NewPaper(fmt.Sprintf("<p>Paper %d talks about cat food.</p>", i), types.PaperAttributes{Keyword: "cat food"})
	}

	runs, err := a.RunAll(context.Background(), papers, 3)
	require.NoError(t, err)
	require.Len(t, runs, len(papers))
	for i, run := range runs {
		require.NotNil(t, run)
		assert.Same(t, papers[i], run.Paper)
		assert.NotEqual(t, types.NoScore, run.OverallScore)
	}
}

func TestRunAllCancelled(t *testing.T) {
	a := New(research.NewDefaultRegistry(), i18n.English(), SEOAssessments(types.AnalysisConfig{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.RunAll(ctx, []*types.Paper{newPaper("text")}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPresets(t *testing.T) {
	seo := SEOAssessments(types.AnalysisConfig{})
	ids := make([]string, 0, len(seo))
	for _, a := range seo {
		ids = append(ids, a.Identifier())
	}
	assert.Equal(t, []string{
		assessment.KeyphraseLengthID,
		assessment.MetaDescriptionKeywordID,
		assessment.MetaDescriptionLengthID,
		assessment.IntroductionKeywordID,
		assessment.KeywordDensityID,
		assessment.TextLengthID,
		assessment.TextImagesID,
	}, ids)

	cfg := types.AnalysisConfig{Assessments: map[string]types.AssessmentConfig{
		assessment.SentenceLengthID: {Disabled: true},
	}}
	readability := ReadabilityAssessments(cfg)
	require.Len(t, readability, 1)
	assert.Equal(t, assessment.SentenceBeginningsID, readability[0].Identifier())

	_, err := Suite("speed", cfg)
	assert.Error(t, err)
	suite, err := Suite(SuiteSEO, cfg)
	require.NoError(t, err)
	assert.Len(t, suite, len(seo))
}

func TestPresetOverridesAndShortlinks(t *testing.T) {
	cfg := types.AnalysisConfig{
		Assessments: map[string]types.AssessmentConfig{
			assessment.TextImagesID: {Scores: map[string]int{"bad": 1}},
		},
		Shortlinks: map[string]string{
			assessment.TextImagesID:                  "https://example.com/images",
			assessment.TextImagesID + "CallToAction": "https://example.com/add",
		},
	}
	a := New(research.NewDefaultRegistry(), i18n.English(), SEOAssessments(cfg), WithLinks(cfg.Shortlinks))
	run := a.Run(newPaper("<p>No images here.</p>"))

	var images types.AssessmentResult
	for _, r := range run.Results {
		if r.Identifier == assessment.TextImagesID {
			images = r
		}
	}
	assert.Equal(t, 1, images.Score)
	assert.True(t, strings.HasPrefix(images.Text, "<a href='https://example.com/images' target='_blank'>Images</a>"))
}
