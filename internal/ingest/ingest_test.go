// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/internal/httputil"
	"github.com/pdiddy/content-analysis/pkg/types"
)

func TestLoadFileYAML(t *testing.T) {
	ix, err := LoadFile("testdata/cats.yaml")
	require.NoError(t, err)

	assert.Equal(t, "cat-food-guide", ix.ID)
	assert.Equal(t, "testdata/cats.yaml", ix.Source)
	assert.Equal(t, "cat food", ix.Attributes.Keyword)
	assert.Equal(t, []string{"kibble"}, ix.Attributes.Synonyms)
	assert.Equal(t, "en_GB", ix.Attributes.Locale)
	assert.Equal(t, "Choosing cat food", ix.Attributes.Title)
	assert.Contains(t, ix.Text, "<p>Cat food comes in many kinds.")
}

func TestLoadFileMarkdown(t *testing.T) {
	ix, err := LoadFile("testdata/dogs.md")
	require.NoError(t, err)

	assert.Equal(t, "dogs", ix.ID)
	assert.Equal(t, "dog food", ix.Attributes.Keyword)
	assert.Equal(t, "Feeding your dog well.", ix.Attributes.Description)
	assert.Equal(t, "<h1>Dog food</h1>\n"+
		"<p>Dog food should match the age of the dog. Puppies eat more often.</p>\n"+
		`<p><img src="dog.jpg" alt="A happy dog"></p>`, ix.Text)
}

func TestLoadFileText(t *testing.T) {
	ix, err := LoadFile("testdata/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "notes", ix.ID)
	assert.Equal(t, "Plain notes without front matter.\n\nA second paragraph.\n", ix.Text)
	assert.Empty(t, ix.Attributes.Keyword)
}

func TestLoadFileHTML(t *testing.T) {
	ix, err := LoadFile("testdata/birds.html")
	require.NoError(t, err)

	assert.Equal(t, "birds", ix.ID)
	attrs := ix.Attributes
	assert.Equal(t, "Vogelfutter im Winter", attrs.Title)
	assert.Equal(t, "Welches Vogelfutter im Winter hilft.", attrs.Description)
	assert.Equal(t, "Vogelfutter", attrs.Keyword)
	assert.Equal(t, []string{"Winter"}, attrs.Synonyms)
	assert.Equal(t, "de_DE", attrs.Locale)
	assert.Equal(t, "https://example.com/vogelfutter", attrs.Permalink)
	assert.Equal(t, "https://example.com/vogel.jpg", attrs.FeaturedImage)
	assert.True(t, strings.HasPrefix(ix.Text, "<p>Vogelfutter hilft Vögeln im Winter.</p>"))
	assert.NotContains(t, ix.Text, "<title>")
}

func TestLoadFilePDF(t *testing.T) {
	ix, err := LoadFile("testdata/cats.pdf")
	require.NoError(t, err)
	assert.Equal(t, "cats", ix.ID)
	assert.Contains(t, ix.Text, "Cat food keeps cats happy.")
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("testdata/skip.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile("testdata/missing.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("not a pdf"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	open := filepath.Join(dir, "open.md")
	require.NoError(t, os.WriteFile(open, []byte("---\nkeyword: x\nno closing fence\n"), 0o644))
	_, err = LoadFile(open)
	assert.ErrorContains(t, err, "front matter is not closed")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cats.yaml", "dogs.md", "notes.txt", "skip.csv"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("keyword: [unclosed"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden", "secret.md"), []byte("hidden"), 0o644))

	var out bytes.Buffer
	items, err := LoadDir(dir, &out)
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, ix := range items {
		ids = append(ids, ix.ID)
	}
	assert.Equal(t, []string{"cat-food-guide", "dogs", "notes"}, ids)
	assert.Contains(t, out.String(), "failed  "+filepath.Join(dir, "broken.yaml"))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Cat Food Guide", "cat-food-guide"},
		{"  spaces__and--dashes ", "spaces-and-dashes"},
		{"Über Vögel", "über-vögel"},
		{"2026 notes!", "2026-notes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), tt.in)
	}
}

const articlePage = `<!DOCTYPE html>
<html lang="en-US">
<head>
  <title>Feeding indoor cats</title>
  <meta name="keywords" content="cat food">
  <link rel="canonical" href="https://example.com/indoor-cats">
</head>
<body>
  <nav><a href="/">Home</a> <a href="/about">About</a></nav>
  <article>
    <h1>Feeding indoor cats</h1>
    <p>Indoor cats move less than outdoor cats, so the amount of cat food they need each day is lower than most feeding charts suggest.</p>
    <p>Wet cat food adds water to the diet, which helps cats that rarely drink from a bowl. Many owners mix wet and dry food for that reason.</p>
    <p>Measure portions with a scale rather than a cup. Small differences in daily portions add up to noticeable weight changes over a year.</p>
    <p>Ask your vet before switching brands, and change food gradually over a week so the stomach can adjust without trouble.</p>
  </article>
  <footer>Copyright example.com</footer>
</body>
</html>`

func TestFetchURL(t *testing.T) {
	httputil.RetryBaseDelay = 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/article":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(articlePage))
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := types.FetchConfig{HTTPConfig: types.HTTPConfig{UserAgent: "test", MaxRetries: 1}}

	ix, err := FetchURL(context.Background(), ts.Client(), ts.URL+"/article", cfg)
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/article", ix.ID)
	assert.Equal(t, "Feeding indoor cats", ix.Attributes.Title)
	assert.Equal(t, "cat food", ix.Attributes.Keyword)
	assert.Equal(t, "en_US", ix.Attributes.Locale)
	assert.Equal(t, "https://example.com/indoor-cats", ix.Attributes.Permalink)
	assert.NotEmpty(t, ix.Attributes.Description, "excerpt fills a missing description")
	assert.Contains(t, ix.Text, "Wet cat food adds water to the diet")
	assert.NotContains(t, ix.Text, "Copyright example.com")

	_, err = FetchURL(context.Background(), ts.Client(), ts.URL+"/data.json", cfg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FetchURL(context.Background(), ts.Client(), ts.URL+"/missing", cfg)
	var statusErr *httputil.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
