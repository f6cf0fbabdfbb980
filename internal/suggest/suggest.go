// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package suggest asks a generative model to rewrite the fragments an
// assessment marked. It runs outside the analysis core; nothing in the
// assessments depends on it.
package suggest

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pdiddy/content-analysis/internal/language"
	"github.com/pdiddy/content-analysis/pkg/types"
)

const (
	defaultMaxRetries   = 3
	defaultTimeout      = 30 * time.Second
	defaultMaxFragments = 5
)

// Backend produces rewrites for one batch of fragments.
type Backend interface {
	Rewrite(ctx context.Context, req Request) (Response, error)
}

// Request is one batch of fragments flagged by a single assessment.
type Request struct {
	// Language is the display name of the text's language, or empty when
	// the language has no dedicated config.
	Language string

	// Keyword is the focus keyphrase, if any.
	Keyword string

	// Feedback is the assessment's message with markup removed.
	Feedback string

	// Fragments are the flagged passages as plain text.
	Fragments []string
}

// Response holds one rewrite per request fragment, in order.
type Response struct {
	Rewrites []string `json:"rewrites"`
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// Suggest requests rewrites for the marked fragments in reports, one
// backend call per assessment, until cfg.MaxFragments fragments have been
// sent. A failed call is reported on w and the remaining assessments still
// run. It returns early only when ctx is cancelled.
func Suggest(ctx context.Context, backend Backend, paper *types.Paper, reports []types.SuiteReport, cfg types.SuggestConfig, w io.Writer) ([]types.Suggestion, error) {
	budget := cfg.MaxFragments
	if budget <= 0 {
		budget = defaultMaxFragments
	}
	var langName string
	if lang := language.Lookup(paper.Locale()); !lang.IsDefault() {
		langName = lang.Name
	}

	var out []types.Suggestion
	for _, rep := range reports {
		for _, res := range rep.Results {
			marks := rep.Marks[res.Identifier]
			if len(marks) == 0 || budget == 0 {
				continue
			}
			if len(marks) > budget {
				marks = marks[:budget]
			}
			budget -= len(marks)

			req := Request{
				Language: langName,
				Keyword:  paper.Keyword(),
				Feedback: language.StripTags(res.Text),
			}
			for _, m := range marks {
				req.Fragments = append(req.Fragments, language.StripTags(m.Original))
			}

			resp, err := callWithRetry(ctx, backend, req, cfg)
			if err != nil {
				if ctx.Err() != nil {
					return out, ctx.Err()
				}
				fmt.Fprintf(w, "warning: suggestions for %s: %v\n", res.Identifier, err)
				continue
			}
			for i, m := range marks {
				out = append(out, types.Suggestion{
					Assessment: res.Identifier,
					Original:   m.Original,
					Rewrite:    resp.Rewrites[i],
				})
			}
		}
	}
	return out, nil
}

// callWithRetry calls the backend with a per-call timeout and exponential
// backoff. A response with the wrong number of rewrites counts as a
// failed attempt.
func callWithRetry(ctx context.Context, backend Backend, req Request, cfg types.SuggestConfig) (Response, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return Response{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := backend.Rewrite(callCtx, req)
		cancel()
		if err == nil && len(resp.Rewrites) != len(req.Fragments) {
			err = fmt.Errorf("got %d rewrites for %d fragments", len(resp.Rewrites), len(req.Fragments))
		}
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return Response{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
