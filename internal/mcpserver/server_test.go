// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/internal/indexable"
	"github.com/pdiddy/content-analysis/pkg/types"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}

func call(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func testTools(t *testing.T, store *indexable.Store) *Tools {
	t.Helper()
	tools, err := NewTools(types.AnalysisConfig{}, store)
	require.NoError(t, err)
	return tools
}

func TestAnalyzeContent(t *testing.T) {
	tools := testTools(t, nil)

	result, err := tools.AnalyzeContent(context.Background(), call(map[string]interface{}{
		"text":        "<p>Cats sleep. Cats eat. Cats play.</p>",
		"keyword":     "cats",
		"description": "All about cats and what they do all day.",
		"suite":       "readability",
		"marks":       true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, "en", report.Language)
	require.Len(t, report.Suites, 1)
	assert.Equal(t, "readability", report.Suites[0].Suite)
	assert.Len(t, report.Suites[0].Marks["sentenceBeginnings"], 3)
}

func TestAnalyzeContentDefaultsToAllSuites(t *testing.T) {
	tools := testTools(t, nil)

	result, err := tools.AnalyzeContent(context.Background(), call(map[string]interface{}{
		"text":   "<p>Hallo Welt.</p>",
		"locale": "de_DE",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, "de_DE", report.Locale)
	assert.Len(t, report.Suites, 2)
	assert.Contains(t, report.Suites[0].Results[0].Text, "Länge der Keyphrase")
}

func TestAnalyzeContentErrors(t *testing.T) {
	tools := testTools(t, nil)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing text", map[string]interface{}{}, "'text' is required"},
		{"blank text", map[string]interface{}{"text": "   "}, "'text' is required"},
		{"unknown suite", map[string]interface{}{"text": "x", "suite": "speed"}, `unknown suite "speed"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tools.AnalyzeContent(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestAnalyzeIndexable(t *testing.T) {
	store, err := indexable.NewStore(types.StoreConfig{IndexDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.Save(context.Background(), types.Indexable{
		ID:         "cats",
		Text:       "<p>Cat food keeps cats happy.</p>",
		Attributes: types.PaperAttributes{Keyword: "cat food"},
	})
	require.NoError(t, err)

	tools := testTools(t, store)

	result, err := tools.AnalyzeIndexable(context.Background(), call(map[string]interface{}{"id": "cats", "suite": "seo"}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, "cats", report.PaperID)
	require.Len(t, report.Suites, 1)
	assert.Equal(t, "seo", report.Suites[0].Suite)

	result, err = tools.AnalyzeIndexable(context.Background(), call(map[string]interface{}{"id": "dogs"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "run the index command first")
}

func TestListLanguages(t *testing.T) {
	tools := testTools(t, nil)

	result, err := tools.ListLanguages(context.Background(), call(nil))
	require.NoError(t, err)

	var out struct {
		Languages []LanguageInfo `json:"languages"`
		Catalogs  []string       `json:"catalogs"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Contains(t, out.Catalogs, "de")
	assert.Contains(t, out.Languages, LanguageInfo{Code: "en", Name: "English", SentenceBeginnings: true})

	var ja LanguageInfo
	for _, l := range out.Languages {
		if l.Code == "ja" {
			ja = l
		}
	}
	assert.False(t, ja.SentenceBeginnings)
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New("test", testTools(t, nil)))
}
