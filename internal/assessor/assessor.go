// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assessor runs an ordered set of assessments against a paper and
// aggregates their scores.
package assessor

import (
	"context"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/content-analysis/internal/assessment"
	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/language"
	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// maxScore is the best score a single assessment can give.
const maxScore = 9

// Assessor runs assessments against papers. It holds no per-run state and
// is safe for concurrent use.
type Assessor struct {
	registry    *research.Registry
	translator  i18n.Translator
	assessments []assessment.Assessment
	links       map[string]string
	warn        io.Writer
}

// Option configures an Assessor.
type Option func(*Assessor)

// WithWarnings sets the writer that receives one line per failed
// assessment. The default discards them.
func WithWarnings(w io.Writer) Option {
	return func(a *Assessor) { a.warn = w }
}

// WithLinks sets the shortlinks handed to every researcher.
func WithLinks(links map[string]string) Option {
	return func(a *Assessor) { a.links = links }
}

// New returns an Assessor running assessments in the given order. A nil
// translator selects the embedded catalog of each paper's locale.
func New(reg *research.Registry, tr i18n.Translator, assessments []assessment.Assessment, opts ...Option) *Assessor {
	a := &Assessor{
		registry:    reg,
		translator:  tr,
		assessments: assessments,
		warn:        io.Discard,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Failure records an assessment excluded from a run because it errored.
type Failure struct {
	Identifier string
	Err        error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Identifier, f.Err)
}

// Run is the outcome of one assessor run against one paper.
type Run struct {
	Paper        *types.Paper
	Results      []types.AssessmentResult
	OverallScore int
	Failures     []Failure

	researcher *research.Researcher
	byID       map[string]assessment.Assessment
	warn       io.Writer
}

// Run filters the assessments to those applicable to paper, runs each in
// order and aggregates the scores. A failing assessment is excluded from
// the results and recorded in Failures; the others still run.
func (a *Assessor) Run(paper *types.Paper) *Run {
	r := research.New(a.registry, paper, research.WithLinks(a.links))
	paper = r.Paper()
	tr := a.translatorFor(paper)

	run := &Run{
		Paper:      paper,
		researcher: r,
		byID:       make(map[string]assessment.Assessment, len(a.assessments)),
		warn:       a.warn,
	}
	for _, as := range a.assessments {
		if !as.IsApplicable(paper, r) {
			continue
		}
		run.byID[as.Identifier()] = as

		res, err := safeResult(as, paper, r, tr)
		if err != nil {
			run.Failures = append(run.Failures, Failure{Identifier: as.Identifier(), Err: err})
			fmt.Fprintf(a.warn, "warning: assessment %s: %v\n", as.Identifier(), err)
			continue
		}
		run.Results = append(run.Results, res)
	}
	run.OverallScore = OverallScore(run.Results)
	return run
}

func (a *Assessor) translatorFor(paper *types.Paper) i18n.Translator {
	if a.translator != nil {
		return a.translator
	}
	tr, err := i18n.Load(paper.Locale())
	if err != nil {
		fmt.Fprintf(a.warn, "warning: loading catalog for %s: %v\n", paper.Locale(), err)
		return i18n.English()
	}
	return tr
}

// safeResult runs one assessment, turning a panic into an error.
func safeResult(as assessment.Assessment, paper *types.Paper, r *research.Researcher, tr i18n.Translator) (res types.AssessmentResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return as.Result(paper, r, tr)
}

// OverallScore returns the mean of the scored results scaled to 0-100, or
// types.NoScore when nothing was scored.
func OverallScore(results []types.AssessmentResult) int {
	sum, n := 0, 0
	for _, res := range results {
		if res.Score <= types.ScoreNotScored {
			continue
		}
		sum += res.Score
		n++
	}
	if n == 0 {
		return types.NoScore
	}
	return int(math.Round(float64(sum) * 100 / float64(n*maxScore)))
}

// Rating returns the rating of the overall score.
func (r *Run) Rating() types.Rating {
	return types.OverallRating(r.OverallScore)
}

// Language returns the language config the run resolved to.
func (r *Run) Language() *language.Config {
	return r.researcher.Language()
}

// Marks returns the marks of an assessment that took part in the run. It
// reuses the run's researcher, so research is not repeated. Assessments
// that cannot mark return nil. A panicking marker is returned as an error.
func (r *Run) Marks(identifier string) ([]types.Mark, error) {
	as, ok := r.byID[identifier]
	if !ok {
		return nil, fmt.Errorf("assessment %q did not run", identifier)
	}
	m, ok := as.(assessment.Marker)
	if !ok {
		return nil, nil
	}
	marks, err := safeMarks(m, r.Paper, r.researcher)
	if err != nil {
		return nil, fmt.Errorf("marking %s: %w", identifier, err)
	}
	return marks, nil
}

func safeMarks(m assessment.Marker, paper *types.Paper, r *research.Researcher) (marks []types.Mark, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return m.Marks(paper, r)
}

// Report converts the run into a serializable suite report. With withMarks
// set, marks are collected for every result that has them. A result whose
// marks fail keeps its score; the failure is added to Failures and warned.
func (r *Run) Report(suite string, withMarks bool) types.SuiteReport {
	rep := types.SuiteReport{
		Suite:        suite,
		Results:      r.Results,
		OverallScore: r.OverallScore,
		Rating:       r.Rating(),
	}
	for _, f := range r.Failures {
		rep.Failures = append(rep.Failures, f.String())
	}
	if !withMarks {
		return rep
	}
	for _, res := range r.Results {
		if !res.HasMarks {
			continue
		}
		marks, err := r.Marks(res.Identifier)
		if err != nil {
			rep.Failures = append(rep.Failures, err.Error())
			fmt.Fprintf(r.warn, "warning: %v\n", err)
			continue
		}
		if len(marks) == 0 {
			continue
		}
		if rep.Marks == nil {
			rep.Marks = make(map[string][]types.Mark)
		}
		rep.Marks[res.Identifier] = marks
	}
	return rep
}

// RunAll analyses papers concurrently with at most workers in flight, one
// researcher per paper. Runs are returned in input order. It stops early
// only when ctx is cancelled.
func (a *Assessor) RunAll(ctx context.Context, papers []*types.Paper, workers int) ([]*Run, error) {
	if workers <= 0 {
		workers = 1
	}
	runs := make([]*Run, len(papers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range papers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runs[i] = a.Run(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running assessments: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("running assessments: %w", err)
	}
	return runs, nil
}
