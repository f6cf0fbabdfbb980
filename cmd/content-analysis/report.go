// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/content-analysis/internal/language"
	"github.com/pdiddy/content-analysis/internal/marker"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// writeReport prints rep for a terminal. Feedback is shown without tags.
func writeReport(w io.Writer, rep types.AnalysisReport, text string, opts analyzeOptions) error {
	fmt.Fprintf(w, "%s  (locale %s, language %s)\n", rep.PaperID, orDash(rep.Locale), rep.Language)

	for _, s := range rep.Suites {
		fmt.Fprintf(w, "\n  %s: %s\n", s.Suite, overall(s))
		for _, r := range s.Results {
			fmt.Fprintf(w, "    %-8s %s\n", "["+string(r.Rating())+"]", language.StripTags(r.Text))
			if !opts.marks {
				continue
			}
			for _, m := range s.Marks[r.Identifier] {
				fmt.Fprintf(w, "             > %s\n", language.StripTags(m.Original))
			}
		}
		for _, f := range s.Failures {
			fmt.Fprintf(w, "    failed   %s\n", f)
		}
	}

	if len(rep.Suggestions) > 0 {
		fmt.Fprintf(w, "\n  suggestions:\n")
		for _, sg := range rep.Suggestions {
			fmt.Fprintf(w, "    %s\n      - %s\n      + %s\n", sg.Assessment, language.StripTags(sg.Original), sg.Rewrite)
		}
	}

	if opts.highlight != "" {
		return writeHighlight(w, rep, text, opts.highlight)
	}
	return nil
}

// writeHighlight prints text with the marks of one assessment applied.
// Marks that cannot be placed are reported but do not stop the output.
func writeHighlight(w io.Writer, rep types.AnalysisReport, text, id string) error {
	var marks []types.Mark
	for _, s := range rep.Suites {
		marks = append(marks, s.Marks[id]...)
	}
	fmt.Fprintf(w, "\n  %s highlights:\n", id)
	if len(marks) == 0 {
		fmt.Fprintln(w, "    (none)")
		return nil
	}

	marked, err := marker.Apply(text, marks)
	for _, line := range strings.Split(strings.TrimSpace(marked), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
	if err != nil {
		fmt.Fprintf(w, "    warning: %v\n", err)
	}
	return nil
}

func overall(s types.SuiteReport) string {
	if s.OverallScore == types.NoScore {
		return "no score"
	}
	return fmt.Sprintf("%d/100 (%s)", s.OverallScore, s.Rating)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
