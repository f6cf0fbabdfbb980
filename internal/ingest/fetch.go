// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/pdiddy/content-analysis/internal/httputil"
	"github.com/pdiddy/content-analysis/pkg/types"
)

const defaultMaxBodyBytes = 10 << 20

// FetchURL downloads a page and extracts its main article. The page head
// supplies the metadata; readability supplies the article body and fills
// in a missing title or description. The URL is the ID.
func FetchURL(ctx context.Context, client *http.Client, rawURL string, cfg types.FetchConfig) (types.Indexable, error) {
	limit := cfg.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	page, err := httputil.Get(ctx, client, rawURL, cfg.HTTPConfig, limit)
	if err != nil {
		return types.Indexable{}, err
	}
	if ct := page.ContentType; ct != "" && !strings.Contains(ct, "html") {
		return types.Indexable{}, fmt.Errorf("%s: %w %q", rawURL, ErrUnsupportedFormat, ct)
	}

	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return types.Indexable{}, fmt.Errorf("parsing %s: %w", rawURL, err)
	}
	doc := headMetadata(dom)

	article, err := readability.FromReader(bytes.NewReader(page.Body), page.URL)
	if err != nil {
		return types.Indexable{}, fmt.Errorf("extracting article from %s: %w", rawURL, err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return types.Indexable{}, errors.New("no article content found at " + rawURL)
	}

	if doc.Title == "" {
		doc.Title = article.Title
	}
	if doc.Description == "" {
		doc.Description = strings.TrimSpace(article.Excerpt)
	}
	if doc.Permalink == "" {
		doc.Permalink = page.URL.String()
	}

	return types.Indexable{
		ID:         rawURL,
		Source:     page.URL.String(),
		Text:       article.Content,
		Attributes: doc.PaperAttributes,
	}, nil
}
