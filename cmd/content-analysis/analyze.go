// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-analysis/internal/assessor"
	"github.com/pdiddy/content-analysis/internal/httputil"
	"github.com/pdiddy/content-analysis/internal/indexable"
	"github.com/pdiddy/content-analysis/internal/ingest"
	"github.com/pdiddy/content-analysis/internal/secrets"
	"github.com/pdiddy/content-analysis/internal/suggest"
	"github.com/pdiddy/content-analysis/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Run the SEO and readability assessments on pages",
	Long: `Analyze loads pages from files, URLs (--url) or the index (--indexable),
runs the selected assessment suites and prints a report per page.

Files may be YAML documents, Markdown or text with optional YAML front
matter, HTML or PDF. --keyword and --locale override what the page declares.

With --suggest, sentences flagged by an assessment are sent to Claude for
rewrite suggestions. The API key comes from .secrets/anthropic-api-key,
CONTENT_ANALYSIS_ANTHROPIC_API_KEY or suggest.api_key in the config file.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSlice("url", nil, "fetch and analyse a page by URL (repeatable)")
	analyzeCmd.Flags().StringSlice("indexable", nil, "analyse an indexed page by ID (repeatable)")
	analyzeCmd.Flags().String("keyword", "", "focus keyphrase, overriding the page's own")
	analyzeCmd.Flags().String("locale", "", "locale such as en_US or de_DE, overriding the page's own")
	analyzeCmd.Flags().String("suite", assessor.SuiteAll, "suite to run: seo, readability or all")
	analyzeCmd.Flags().Bool("marks", false, "show the fragments behind each sub-optimal result")
	analyzeCmd.Flags().String("highlight", "", "print the page text with the marks of this assessment applied")
	analyzeCmd.Flags().Bool("json", false, "output reports as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output reports as YAML")
	analyzeCmd.Flags().Bool("suggest", false, "ask Claude for rewrites of marked sentences")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOptions holds the parsed analyze flags.
type analyzeOptions struct {
	files      []string
	urls       []string
	indexables []string
	keyword    string
	locale     string
	suite      string
	marks      bool
	highlight  string
	format     string
	suggest    bool
}

func analyzeOptionsFromFlags(cmd *cobra.Command, args []string) (analyzeOptions, error) {
	opts := analyzeOptions{files: args, format: "text"}
	opts.urls, _ = cmd.Flags().GetStringSlice("url")
	opts.indexables, _ = cmd.Flags().GetStringSlice("indexable")
	opts.keyword, _ = cmd.Flags().GetString("keyword")
	opts.locale, _ = cmd.Flags().GetString("locale")
	opts.suite, _ = cmd.Flags().GetString("suite")
	opts.marks, _ = cmd.Flags().GetBool("marks")
	opts.highlight, _ = cmd.Flags().GetString("highlight")
	opts.suggest, _ = cmd.Flags().GetBool("suggest")

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON && asYAML:
		return opts, fmt.Errorf("--json and --yaml are mutually exclusive")
	case asJSON:
		opts.format = "json"
	case asYAML:
		opts.format = "yaml"
	}

	if len(opts.files)+len(opts.urls)+len(opts.indexables) == 0 {
		return opts, fmt.Errorf("provide one or more files, --url or --indexable")
	}
	return opts, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts, err := analyzeOptionsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	items, err := loadItems(ctx, opts)
	if err != nil {
		return err
	}

	var backend suggest.Backend
	if opts.suggest {
		backend, err = claudeBackend()
		if err != nil {
			return err
		}
	}
	return analyze(ctx, cfg, items, opts, backend, os.Stdout, os.Stderr)
}

// loadItems gathers the pages named by files, URLs and index IDs, then
// applies the keyword and locale overrides.
func loadItems(ctx context.Context, opts analyzeOptions) ([]types.Indexable, error) {
	var items []types.Indexable
	for _, path := range opts.files {
		ix, err := ingest.LoadFile(path)
		if err != nil {
			return nil, err
		}
		items = append(items, ix)
	}

	if len(opts.urls) > 0 {
		client := httputil.NewClient(cfg.Fetch.HTTPConfig)
		for _, u := range opts.urls {
			ix, err := ingest.FetchURL(ctx, client, u, cfg.Fetch)
			if err != nil {
				return nil, fmt.Errorf("fetching %s: %w", u, err)
			}
			items = append(items, ix)
		}
	}

	if len(opts.indexables) > 0 {
		store, err := indexable.NewStore(cfg.Store)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		for _, id := range opts.indexables {
			ix, err := store.Get(ctx, id)
			if errors.Is(err, indexable.ErrNotFound) {
				return nil, fmt.Errorf("no indexable with id %q: run the index command first", id)
			}
			if err != nil {
				return nil, err
			}
			items = append(items, ix)
		}
	}

	for i := range items {
		if opts.keyword != "" {
			items[i].Attributes.Keyword = opts.keyword
		}
		if opts.locale != "" {
			items[i].Attributes.Locale = opts.locale
		}
	}
	return items, nil
}

func claudeBackend() (suggest.Backend, error) {
	key := cfg.Suggest.APIKey
	if key == "" {
		var err error
		key, err = loadedSecrets.Require(secrets.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("--suggest needs an API key: %w", err)
		}
	}
	return &suggest.ClaudeBackend{APIKey: key, Model: cfg.Suggest.Model, Client: &http.Client{}}, nil
}

// analyze runs the engine over items and writes the reports to out in the
// requested format. Warnings go to errOut. A nil backend skips suggestions.
func analyze(ctx context.Context, c types.Config, items []types.Indexable, opts analyzeOptions, backend suggest.Backend, out, errOut io.Writer) error {
	engine, err := assessor.NewEngine(c.Analysis, []string{opts.suite})
	if err != nil {
		return err
	}

	withMarks := opts.marks || opts.highlight != "" || backend != nil
	reports, err := engine.AnalyzeAll(ctx, items, withMarks)
	if err != nil {
		return err
	}

	if backend != nil {
		for i := range reports {
			s, err := suggest.Suggest(ctx, backend, engine.Paper(items[i]), reports[i].Suites, c.Suggest, errOut)
			if err != nil {
				return err
			}
			reports[i].Suggestions = s
		}
	}
	if !opts.marks && opts.format != "text" {
		for i := range reports {
			for j := range reports[i].Suites {
				reports[i].Suites[j].Marks = nil
			}
		}
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeReport(out, rep, items[i].Text, opts); err != nil {
			return err
		}
	}
	return nil
}
