// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package indexable

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/content-analysis/pkg/types"
)

// ErrSkip tells the session to leave an indexable unsaved without
// counting it as a failure. Pre hooks return it.
var ErrSkip = errors.New("skip indexable")

// Status is the outcome of indexing one indexable.
type Status string

const (
	StatusIndexed Status = "indexed"
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
)

// PreHook runs before an indexable is saved. It may rewrite ix. Returning
// ErrSkip skips it; any other error fails it.
type PreHook func(ctx context.Context, ix *types.Indexable) error

// PostHook runs after an indexable is saved or found unchanged. Its errors
// are reported as warnings.
type PostHook func(ctx context.Context, ix types.Indexable, status Status) error

// Hooks is an explicit, ordered set of pre and post hooks. The zero value
// has none.
type Hooks struct {
	pre  []PreHook
	post []PostHook
}

// Pre appends a pre hook.
func (h *Hooks) Pre(fn PreHook) { h.pre = append(h.pre, fn) }

// Post appends a post hook.
func (h *Hooks) Post(fn PostHook) { h.post = append(h.post, fn) }

// Summary holds counts from one indexing run.
type Summary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of indexables processed.
func (s Summary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Session indexes one batch of indexables. Its hooks live as long as the
// session; nothing is registered globally.
type Session struct {
	store *Store
	hooks Hooks
	w     io.Writer
}

// NewSession returns a session writing progress lines to w.
func NewSession(store *Store, hooks Hooks, w io.Writer) *Session {
	if w == nil {
		w = io.Discard
	}
	return &Session{store: store, hooks: hooks, w: w}
}

// Index saves each indexable whose content changed, running the pre hooks
// before and the post hooks after. Unchanged content is skipped but still
// reaches the post hooks. It stops early only when ctx is cancelled.
func (s *Session) Index(ctx context.Context, items []types.Indexable) (Summary, error) {
	var summary Summary

	for _, item := range items {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		status, stored, err := s.indexOne(ctx, item)
		switch {
		case errors.Is(err, ErrSkip):
			fmt.Fprintf(s.w, "skipped %s (hook)\n", item.ID)
			summary.Skipped++
			continue
		case err != nil:
			fmt.Fprintf(s.w, "failed  %s: %v\n", item.ID, err)
			summary.Failed++
			continue
		}

		switch status {
		case StatusIndexed:
			fmt.Fprintf(s.w, "indexed %s\n", stored.ID)
			summary.Indexed++
		case StatusUpdated:
			fmt.Fprintf(s.w, "updated %s\n", stored.ID)
			summary.Updated++
		case StatusSkipped:
			fmt.Fprintf(s.w, "skipped %s\n", stored.ID)
			summary.Skipped++
		}

		for _, post := range s.hooks.post {
			if err := post(ctx, stored, status); err != nil {
				fmt.Fprintf(s.w, "warning: post hook for %s: %v\n", stored.ID, err)
			}
		}
	}

	fmt.Fprintf(s.w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Session) indexOne(ctx context.Context, ix types.Indexable) (Status, types.Indexable, error) {
	for _, pre := range s.hooks.pre {
		if err := pre(ctx, &ix); err != nil {
			return "", ix, err
		}
	}
	if ix.ID == "" {
		return "", ix, errors.New("indexable has no id")
	}

	old, exists, err := s.store.hashOf(ctx, ix.ID)
	if err != nil {
		return "", ix, fmt.Errorf("checking stored hash: %w", err)
	}
	if exists && old == ContentHash(ix) {
		stored, err := s.store.Get(ctx, ix.ID)
		if err != nil {
			return "", ix, err
		}
		return StatusSkipped, stored, nil
	}

	stored, err := s.store.Save(ctx, ix)
	if err != nil {
		return "", ix, err
	}
	if exists {
		return StatusUpdated, stored, nil
	}
	return StatusIndexed, stored, nil
}
