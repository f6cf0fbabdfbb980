// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-analysis/internal/assessor"
	"github.com/pdiddy/content-analysis/internal/indexable"
	"github.com/pdiddy/content-analysis/internal/ingest"
	"github.com/pdiddy/content-analysis/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [dirs or files...]",
	Short: "Store pages in the local index",
	Long: `Index loads every supported file under the given directories (and any
files named directly), and stores them in a SQLite index under
store.index_dir. Pages whose content has not changed are skipped.

After each page is stored its overall suite scores are printed. Use
--no-scores to index without analysing.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more directories or files to index")
	}
	noScores, _ := cmd.Flags().GetBool("no-scores")
	suite, _ := cmd.Flags().GetString("suite")
	urls, _ := cmd.Flags().GetStringSlice("url")

	items, err := collect(args, os.Stdout)
	if err != nil {
		return err
	}
	if len(urls) > 0 {
		fetched, err := loadItems(context.Background(), analyzeOptions{urls: urls})
		if err != nil {
			return err
		}
		items = append(items, fetched...)
	}

	store, err := indexable.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	var hooks indexable.Hooks
	if !noScores {
		hook, err := scoreHook(cfg.Analysis, suite, os.Stdout)
		if err != nil {
			return err
		}
		hooks.Post(hook)
	}

	summary, err := indexable.NewSession(store, hooks, os.Stdout).Index(context.Background(), items)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d page(s) failed indexing", summary.Failed)
	}
	return nil
}

// collect loads directories recursively and files directly.
func collect(paths []string, w io.Writer) ([]types.Indexable, error) {
	var items []types.Indexable
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			loaded, err := ingest.LoadDir(p, w)
			if err != nil {
				return nil, err
			}
			items = append(items, loaded...)
			continue
		}
		ix, err := ingest.LoadFile(p)
		if err != nil {
			return nil, err
		}
		items = append(items, ix)
	}
	return items, nil
}

// scoreHook returns a post-index hook that prints the overall score of
// each suite for the stored page.
func scoreHook(c types.AnalysisConfig, suite string, w io.Writer) (indexable.PostHook, error) {
	engine, err := assessor.NewEngine(c, []string{suite})
	if err != nil {
		return nil, err
	}
	return func(_ context.Context, ix types.Indexable, _ indexable.Status) error {
		rep := engine.Analyze(ix.ID, engine.Paper(ix), false)
		parts := make([]string, 0, len(rep.Suites))
		for _, s := range rep.Suites {
			parts = append(parts, fmt.Sprintf("%s %s", s.Suite, overall(s)))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, ", "))
		return nil
	}, nil
}

// --- indexables parent: list and delete ---

var indexablesCmd = &cobra.Command{
	Use:   "indexables",
	Short: "Inspect and prune the local index",
}

var indexablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed pages",
	RunE:  runIndexablesList,
}

func runIndexablesList(cmd *cobra.Command, args []string) error {
	store, err := indexable.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := indexable.ListOptions{}
	opts.Locale, _ = cmd.Flags().GetString("locale")
	opts.Contains, _ = cmd.Flags().GetString("contains")
	opts.Limit, _ = cmd.Flags().GetInt("limit")

	items, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatIndexables(os.Stdout, items, jsonOutput)
}

// indexableSummary is the listed view of an indexable, without its text.
type indexableSummary struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Locale    string `json:"locale,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

func formatIndexables(w io.Writer, items []types.Indexable, jsonOutput bool) error {
	rows := make([]indexableSummary, 0, len(items))
	for _, ix := range items {
		rows = append(rows, indexableSummary{
			ID:        ix.ID,
			Source:    ix.Source,
			Locale:    ix.Attributes.Locale,
			Keyword:   ix.Attributes.Keyword,
			UpdatedAt: ix.UpdatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No indexables found.")
		return nil
	}
	fmt.Fprintf(w, "%-30s  %-6s  %-20s  %s\n", "ID", "Locale", "Keyword", "Updated")
	fmt.Fprintln(w, strings.Repeat("-", 76))
	for _, r := range rows {
		fmt.Fprintf(w, "%-30s  %-6s  %-20s  %s\n", truncate(r.ID, 30), orDash(r.Locale), truncate(r.Keyword, 20), r.UpdatedAt)
	}
	fmt.Fprintf(w, "\n%d indexables\n", len(rows))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

var indexablesDeleteCmd = &cobra.Command{
	Use:   "delete [ids...]",
	Short: "Remove pages from the index",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := indexable.NewStore(cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range args {
			if err := store.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "deleted %s\n", id)
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().Bool("no-scores", false, "store pages without printing their scores")
	indexCmd.Flags().String("suite", assessor.SuiteAll, "suite whose scores are printed: seo, readability or all")
	indexCmd.Flags().StringSlice("url", nil, "also fetch and index a page by URL (repeatable)")

	indexablesListCmd.Flags().String("locale", "", "filter by locale")
	indexablesListCmd.Flags().String("contains", "", "filter by text substring")
	indexablesListCmd.Flags().Int("limit", 0, "maximum rows (0 = all)")
	indexablesListCmd.Flags().Bool("json", false, "output as JSON")

	indexablesCmd.AddCommand(indexablesListCmd)
	indexablesCmd.AddCommand(indexablesDeleteCmd)

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(indexablesCmd)
}
