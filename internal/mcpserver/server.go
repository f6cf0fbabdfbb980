// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes content analysis as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/content-analysis/internal/assessor"
	"github.com/pdiddy/content-analysis/internal/i18n"
	"github.com/pdiddy/content-analysis/internal/indexable"
	"github.com/pdiddy/content-analysis/internal/language"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Tools holds the dependencies of the tool handlers. Store may be nil, in
// which case analyze_indexable is not registered.
type Tools struct {
	engines map[string]*assessor.Engine
	cfg     types.AnalysisConfig
	store   *indexable.Store
}

// NewTools builds one engine per selectable suite set.
func NewTools(cfg types.AnalysisConfig, store *indexable.Store) (*Tools, error) {
	t := &Tools{cfg: cfg, store: store, engines: map[string]*assessor.Engine{}}
	for _, name := range append([]string{assessor.SuiteAll}, assessor.Suites()...) {
		e, err := assessor.NewEngine(cfg, []string{name})
		if err != nil {
			return nil, err
		}
		t.engines[name] = e
	}
	return t, nil
}

// New returns an MCP server with every tool registered.
func New(version string, tools *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		"content-analysis",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.AddTool(analyzeContentDefinition(), tools.AnalyzeContent)
	s.AddTool(listLanguagesDefinition(), tools.ListLanguages)
	if tools.store != nil {
		s.AddTool(analyzeIndexableDefinition(), tools.AnalyzeIndexable)
	}
	return s
}

// Serve runs the server on stdin and stdout until the client disconnects.
func Serve(version string, tools *Tools) error {
	return server.ServeStdio(New(version, tools))
}

func suiteOption() mcp.ToolOption {
	return mcp.WithString("suite",
		mcp.Description("Suite to run: seo, readability or all (default all)."),
	)
}

func marksOption() mcp.ToolOption {
	return mcp.WithBoolean("marks",
		mcp.Description("Include the highlighted fragments behind each sub-optimal result (default false)."),
	)
}

func analyzeContentDefinition() mcp.Tool {
	return mcp.NewTool("analyze_content",
		mcp.WithDescription(
			"Run SEO and readability assessments on a piece of web copy. "+
				"Returns a JSON report with a 1-9 score and feedback per assessment "+
				"and an overall 0-100 score per suite.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The page body. HTML is allowed and paragraphs, images and headings are recognised."),
		),
		mcp.WithString("keyword",
			mcp.Description("Focus keyphrase. Wrap in double quotes to match it as an exact phrase."),
		),
		mcp.WithString("synonyms",
			mcp.Description("Comma-separated keyphrase synonyms."),
		),
		mcp.WithString("description", mcp.Description("Meta description.")),
		mcp.WithString("title", mcp.Description("SEO title.")),
		mcp.WithString("locale", mcp.Description("Locale such as en_US or de_DE (default from config).")),
		suiteOption(),
		marksOption(),
	)
}

func analyzeIndexableDefinition() mcp.Tool {
	return mcp.NewTool("analyze_indexable",
		mcp.WithDescription("Run the assessments on a page previously stored with the index command."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Indexable ID: the file slug or URL it was indexed under."),
		),
		suiteOption(),
		marksOption(),
	)
}

func listLanguagesDefinition() mcp.Tool {
	return mcp.NewTool("list_languages",
		mcp.WithDescription("List the languages with dedicated tokenization rules and the available message catalogs."),
	)
}

func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

func (t *Tools) engine(req mcp.CallToolRequest) (*assessor.Engine, error) {
	suite := req.GetString("suite", assessor.SuiteAll)
	e, ok := t.engines[suite]
	if !ok {
		return nil, fmt.Errorf("unknown suite %q: must be one of seo, readability, all", suite)
	}
	return e, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// AnalyzeContent handles analyze_content.
func (t *Tools) AnalyzeContent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required: provide the page body to analyse"), nil
	}
	e, err := t.engine(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var synonyms []string
	if s := req.GetString("synonyms", ""); s != "" {
		synonyms = strings.Split(s, ",")
	}
	paper := e.Paper(types.Indexable{
		Text: text,
		Attributes: types.PaperAttributes{
			Keyword:     req.GetString("keyword", ""),
			Synonyms:    synonyms,
			Description: req.GetString("description", ""),
			Title:       req.GetString("title", ""),
			Locale:      req.GetString("locale", ""),
		},
	})

	return jsonResult(e.Analyze("content", paper, boolArg(req, "marks", false)))
}

// AnalyzeIndexable handles analyze_indexable.
func (t *Tools) AnalyzeIndexable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if strings.TrimSpace(id) == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	e, err := t.engine(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ix, err := t.store.Get(ctx, id)
	if errors.Is(err, indexable.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no indexable with id %q: run the index command first", id)), nil
	}
	if err != nil {
		return nil, err
	}

	return jsonResult(e.Analyze(ix.ID, e.Paper(ix), boolArg(req, "marks", false)))
}

// LanguageInfo describes one language config.
type LanguageInfo struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	SentenceBeginnings bool   `json:"sentence_beginnings"`
}

// ListLanguages handles list_languages.
func (t *Tools) ListLanguages(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out struct {
		Languages []LanguageInfo `json:"languages"`
		Catalogs  []string       `json:"catalogs"`
	}
	for _, c := range language.Supported() {
		out.Languages = append(out.Languages, LanguageInfo{Code: c.Code, Name: c.Name, SentenceBeginnings: c.SentenceBeginnings})
	}
	out.Catalogs = i18n.Available()
	return jsonResult(out)
}
