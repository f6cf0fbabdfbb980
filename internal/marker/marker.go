// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package marker turns text fragments into highlight marks and applies
// marks to a source text for display. Marking never changes the analysed
// text itself.
package marker

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/content-analysis/pkg/types"
)

// Wrapper tags around a marked fragment.
const (
	OpenTag  = `<mark class="content-analysis-mark">`
	CloseTag = `</mark>`
)

// voidElements never take a closing tag, so they are never unbalanced.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Mark strips unbalanced tags from fragment and wraps the result.
func Mark(fragment string) types.Mark {
	original := StripIncompleteTags(fragment)
	return types.Mark{Original: original, Marked: OpenTag + original + CloseTag}
}

type piece struct {
	raw  string
	name string
	keep bool
}

// StripIncompleteTags removes every opening tag without a matching closing
// tag and every closing tag without a matching opening tag. Balanced tags,
// void elements, self-closing tags and text are copied byte for byte.
func StripIncompleteTags(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var pieces []piece
	var open []int
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		p := piece{raw: string(z.Raw()), keep: true}

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			p.name = string(name)
			if !voidElements[p.name] {
				p.keep = false
				open = append(open, len(pieces))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			p.name = string(name)
			p.keep = false
			for k := len(open) - 1; k >= 0; k-- {
				if pieces[open[k]].name == p.name {
					pieces[open[k]].keep = true
					p.keep = true
					open = append(open[:k], open[k+1:]...)
					break
				}
			}
		}
		pieces = append(pieces, p)
	}

	var b strings.Builder
	for _, p := range pieces {
		if p.keep {
			b.WriteString(p.raw)
		}
	}
	return strings.TrimSpace(b.String())
}

// MarkAlignmentError reports a mark whose original fragment cannot be
// placed in the source text.
type MarkAlignmentError struct {
	Original string
	Reason   string
}

func (e *MarkAlignmentError) Error() string {
	return fmt.Sprintf("mark %q: %s", e.Original, e.Reason)
}

type span struct {
	start, end int
	marked     string
}

// Apply replaces each mark's original fragment in text with its marked
// form. Marks are placed at the first occurrence not already taken by an
// earlier mark. Marks that cannot be placed are skipped and reported as
// joined *MarkAlignmentError values; the rest are still applied.
func Apply(text string, marks []types.Mark) (string, error) {
	var spans []span
	var errs []error
	for _, m := range marks {
		if m.Original == "" {
			errs = append(errs, &MarkAlignmentError{Reason: "empty fragment"})
			continue
		}
		start, found := place(text, m.Original, spans)
		switch {
		case start >= 0:
			spans = append(spans, span{start: start, end: start + len(m.Original), marked: m.Marked})
		case found:
			errs = append(errs, &MarkAlignmentError{Original: m.Original, Reason: "overlaps an earlier mark"})
		default:
			errs = append(errs, &MarkAlignmentError{Original: m.Original, Reason: "not found in text"})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(s.marked)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String(), errors.Join(errs...)
}

// place returns the offset of the first occurrence of fragment that does not
// overlap a taken span, or -1. found reports whether any occurrence exists.
func place(text, fragment string, taken []span) (start int, found bool) {
	for from := 0; from <= len(text); {
		i := strings.Index(text[from:], fragment)
		if i < 0 {
			return -1, found
		}
		found = true
		start = from + i
		end := start + len(fragment)
		if !overlaps(start, end, taken) {
			return start, true
		}
		from = start + 1
	}
	return -1, found
}

func overlaps(start, end int, taken []span) bool {
	for _, s := range taken {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}
