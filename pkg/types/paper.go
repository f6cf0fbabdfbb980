// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data shared across content-analysis: papers and
// their attributes, assessment results and reports, indexables and
// configuration.
package types

import "strings"

// DefaultLocale is used when a paper carries no locale.
const DefaultLocale = "en_US"

// PaperAttributes holds the optional metadata that accompanies a paper's
// text. It is the mutable construction input; Paper itself is read-only.
type PaperAttributes struct {
	// Keyword is the focus keyphrase. A keyphrase wrapped in double quotes
	// is matched as an exact phrase.
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`

	// Synonyms lists alternative keyphrases that count as keyword matches.
	Synonyms []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`

	// Description is the meta description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Title is the SEO title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Slug is the URL slug.
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`

	// Permalink is the full URL of the published text.
	Permalink string `json:"permalink,omitempty" yaml:"permalink,omitempty"`

	// Locale is a locale tag such as "en_US" or "de-DE".
	Locale string `json:"locale,omitempty" yaml:"locale,omitempty"`

	// FeaturedImage is the URL of the featured image attachment.
	FeaturedImage string `json:"featured_image,omitempty" yaml:"featured_image,omitempty"`
}

// Paper is one analyzable text plus its metadata. A Paper is immutable once
// built: researchers cache their results against the *Paper pointer, so a
// changed text must be expressed as a new Paper.
type Paper struct {
	text  string
	attrs PaperAttributes
}

// NewPaper builds a Paper from text and attributes. Slices are copied so
// later changes to attrs do not leak into the paper.
func NewPaper(text string, attrs PaperAttributes) *Paper {
	a := attrs
	a.Keyword = strings.TrimSpace(a.Keyword)
	a.Description = strings.TrimSpace(a.Description)
	a.Locale = strings.TrimSpace(a.Locale)
	if a.Locale == "" {
		a.Locale = DefaultLocale
	}

	a.Synonyms = nil
	for _, s := range attrs.Synonyms {
		if s = strings.TrimSpace(s); s != "" {
			a.Synonyms = append(a.Synonyms, s)
		}
	}

	return &Paper{text: text, attrs: a}
}

// Text returns the raw text, which may contain HTML.
func (p *Paper) Text() string { return p.text }

// HasText reports whether the paper has any non-whitespace text.
func (p *Paper) HasText() bool { return strings.TrimSpace(p.text) != "" }

// Keyword returns the focus keyphrase.
func (p *Paper) Keyword() string { return p.attrs.Keyword }

// HasKeyword reports whether a focus keyphrase is set.
func (p *Paper) HasKeyword() bool { return p.attrs.Keyword != "" }

// Synonyms returns a copy of the keyphrase synonyms.
func (p *Paper) Synonyms() []string {
	if len(p.attrs.Synonyms) == 0 {
		return nil
	}
	out := make([]string, len(p.attrs.Synonyms))
	copy(out, p.attrs.Synonyms)
	return out
}

// HasSynonyms reports whether any synonyms are set.
func (p *Paper) HasSynonyms() bool { return len(p.attrs.Synonyms) > 0 }

// Description returns the meta description.
func (p *Paper) Description() string { return p.attrs.Description }

// HasDescription reports whether a meta description is set.
func (p *Paper) HasDescription() bool { return p.attrs.Description != "" }

// Title returns the SEO title.
func (p *Paper) Title() string { return p.attrs.Title }

// HasTitle reports whether a title is set.
func (p *Paper) HasTitle() bool { return strings.TrimSpace(p.attrs.Title) != "" }

// Slug returns the URL slug.
func (p *Paper) Slug() string { return p.attrs.Slug }

// Permalink returns the permalink.
func (p *Paper) Permalink() string { return p.attrs.Permalink }

// Locale returns the locale tag, never empty.
func (p *Paper) Locale() string { return p.attrs.Locale }

// FeaturedImage returns the featured image URL.
func (p *Paper) FeaturedImage() string { return p.attrs.FeaturedImage }

// Attributes returns a copy of the paper's attributes.
func (p *Paper) Attributes() PaperAttributes {
	a := p.attrs
	a.Synonyms = p.Synonyms()
	return a
}
