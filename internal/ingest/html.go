// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseHTML reads the page metadata from the head and keeps the body
// markup as the text.
func parseHTML(data []byte) (document, error) {
	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return document{}, err
	}
	doc := headMetadata(dom)

	body := dom.Find("body")
	body.Find("script, style, noscript, nav, footer").Remove()
	text, err := body.Html()
	if err != nil {
		return doc, fmt.Errorf("rendering body: %w", err)
	}
	doc.Text = strings.TrimSpace(text)
	return doc, nil
}

// headMetadata collects title, description, focus keyword, locale,
// canonical URL and featured image from a parsed page.
func headMetadata(dom *goquery.Document) document {
	var doc document
	attr := func(selector, name string) string {
		v, _ := dom.Find(selector).First().Attr(name)
		return strings.TrimSpace(v)
	}

	doc.Title = strings.TrimSpace(dom.Find("head title").First().Text())
	if doc.Title == "" {
		doc.Title = attr(`meta[property="og:title"]`, "content")
	}
	doc.Description = attr(`meta[name="description"]`, "content")
	if doc.Description == "" {
		doc.Description = attr(`meta[property="og:description"]`, "content")
	}

	if kw := attr(`meta[name="keywords"]`, "content"); kw != "" {
		parts := strings.Split(kw, ",")
		doc.Keyword = strings.TrimSpace(parts[0])
		for _, p := range parts[1:] {
			if p = strings.TrimSpace(p); p != "" {
				doc.Synonyms = append(doc.Synonyms, p)
			}
		}
	}

	doc.Locale = localeTag(attr("html", "lang"))
	doc.Permalink = attr(`link[rel="canonical"]`, "href")
	doc.FeaturedImage = attr(`meta[property="og:image"]`, "content")
	return doc
}

// localeTag turns an HTML lang value such as "de-DE" into "de_DE".
func localeTag(lang string) string {
	return strings.ReplaceAll(strings.TrimSpace(lang), "-", "_")
}

var (
	mdImage   = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)
	mdLink    = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)[^)]*\)`)
	mdBold    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic  = regexp.MustCompile(`\*([^*]+)\*`)
	mdHeading = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
)

// markdownToHTML renders the block structure the researchers rely on:
// headings and paragraphs split on blank lines, with images, links and
// emphasis inline. Anything else passes through as paragraph text.
func markdownToHTML(md string) string {
	md = strings.ReplaceAll(md, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(md, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if m := mdHeading.FindStringSubmatch(block); m != nil && !strings.Contains(block, "\n") {
			level := len(m[1])
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, inline(m[2]), level))
			continue
		}
		out = append(out, "<p>"+inline(strings.Join(strings.Fields(block), " "))+"</p>")
	}
	return strings.Join(out, "\n")
}

func inline(s string) string {
	s = html.EscapeString(s)
	s = mdImage.ReplaceAllString(s, `<img src="$2" alt="$1">`)
	s = mdLink.ReplaceAllString(s, `<a href="$2">$1</a>`)
	s = mdBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalic.ReplaceAllString(s, "<em>$1</em>")
	return s
}
