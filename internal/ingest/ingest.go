// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns files and web pages into indexables: page text plus
// the metadata the assessments need.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-analysis/pkg/types"
)

// ErrUnsupportedFormat is returned for a file extension no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// document is the YAML form of a page, used for .yaml files and as
// front matter in Markdown and text files.
type document struct {
	types.PaperAttributes `yaml:",inline"`

	ID   string `yaml:"id,omitempty"`
	Text string `yaml:"text,omitempty"`
}

// Supported reports whether path has an extension LoadFile handles.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".md", ".markdown", ".txt", ".html", ".htm", ".pdf":
		return true
	}
	return false
}

// LoadFile reads one page. The ID defaults to a slug of the file name.
func LoadFile(path string) (types.Indexable, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return types.Indexable{}, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	var (
		doc document
		err error
	)
	if ext == ".pdf" {
		doc.Text, err = readPDF(path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return types.Indexable{}, fmt.Errorf("reading %s: %w", path, err)
		}
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &doc)
		case ".md", ".markdown":
			doc, err = parseFrontMatter(data)
			doc.Text = markdownToHTML(doc.Text)
		case ".txt":
			doc, err = parseFrontMatter(data)
		case ".html", ".htm":
			doc, err = parseHTML(data)
		}
	}
	if err != nil {
		return types.Indexable{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	id := doc.ID
	if id == "" {
		id = Slug(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return types.Indexable{
		ID:         id,
		Source:     path,
		Text:       doc.Text,
		Attributes: doc.PaperAttributes,
	}, nil
}

// LoadDir loads every supported file under dir in lexical order. Files
// with other extensions are ignored, as are hidden files and directories.
// A file that fails to load is reported on w and left out.
func LoadDir(dir string, w io.Writer) ([]types.Indexable, error) {
	var out []types.Indexable
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !Supported(path) {
			return nil
		}
		ix, err := LoadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			return nil
		}
		out = append(out, ix)
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("walking %s: %w", dir, err)
	}
	return out, nil
}

// parseFrontMatter splits an optional leading "---" YAML block from the
// body.
func parseFrontMatter(data []byte) (document, error) {
	var doc document
	text := string(bytes.TrimPrefix(data, []byte("\ufeff")))

	if !strings.HasPrefix(text, "---\n") && !strings.HasPrefix(text, "---\r\n") {
		doc.Text = text
		return doc, nil
	}
	rest := text[strings.Index(text, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return doc, errors.New("front matter is not closed")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &doc); err != nil {
		return doc, fmt.Errorf("front matter: %w", err)
	}
	body := rest[end+len("\n---"):]
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	if doc.Text == "" {
		doc.Text = body
	}
	return doc, nil
}

// readPDF extracts the plain text of every page, separating pages with a
// blank line so they read as paragraphs.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			pages = append(pages, content)
		}
	}
	if len(pages) == 0 {
		return "", errors.New("no extractable text found in pdf")
	}
	return strings.Join(pages, "\n\n"), nil
}

// Slug lowercases s and joins its letters and digits with hyphens.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if isSlugRune(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isSlugRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
