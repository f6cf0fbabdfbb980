// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/content-analysis/internal/research"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// SuiteAll selects every suite.
const SuiteAll = "all"

const defaultWorkers = 4

// Engine runs one or more named suites over papers with a shared config.
// It is safe for concurrent use.
type Engine struct {
	cfg    types.AnalysisConfig
	names  []string
	suites map[string]*Assessor
}

// NewEngine builds an assessor per suite. A suite name of SuiteAll, or no
// names at all, selects every suite. Options apply to every assessor; the
// configured shortlinks are always passed on.
func NewEngine(cfg types.AnalysisConfig, suites []string, opts ...Option) (*Engine, error) {
	if len(suites) == 0 {
		suites = []string{SuiteAll}
	}
	var names []string
	for _, s := range suites {
		if s == SuiteAll {
			names = append(names, Suites()...)
			continue
		}
		names = append(names, s)
	}

	reg := research.NewDefaultRegistry()
	e := &Engine{cfg: cfg, suites: make(map[string]*Assessor, len(names))}
	opts = append([]Option{WithLinks(cfg.Shortlinks)}, opts...)
	for _, name := range names {
		if _, dup := e.suites[name]; dup {
			continue
		}
		assessments, err := Suite(name, cfg)
		if err != nil {
			return nil, err
		}
		e.suites[name] = New(reg, nil, assessments, opts...)
		e.names = append(e.names, name)
	}
	return e, nil
}

// Paper builds the paper of ix, applying the configured default locale
// when ix has none.
func (e *Engine) Paper(ix types.Indexable) *types.Paper {
	if ix.Attributes.Locale == "" {
		ix.Attributes.Locale = e.cfg.DefaultLocale
	}
	return ix.Paper()
}

// Analyze runs every selected suite against paper. Failed assessments and
// failed marks are listed in each suite's Failures.
func (e *Engine) Analyze(id string, paper *types.Paper, withMarks bool) types.AnalysisReport {
	report := types.AnalysisReport{PaperID: id, Locale: paper.Locale()}
	for _, name := range e.names {
		run := e.suites[name].Run(paper)
		if report.Language == "" {
			report.Language = run.Language().Code
		}
		report.Suites = append(report.Suites, run.Report(name, withMarks))
	}
	return report
}

// AnalyzeAll analyses indexables concurrently, bounded by the configured
// worker count. Reports come back in input order.
func (e *Engine) AnalyzeAll(ctx context.Context, items []types.Indexable, withMarks bool) ([]types.AnalysisReport, error) {
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	reports := make([]types.AnalysisReport, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ix := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = e.Analyze(ix.ID, e.Paper(ix), withMarks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Suites returns the suite names the engine runs, in order.
func (e *Engine) Suites() []string {
	return append([]string(nil), e.names...)
}
