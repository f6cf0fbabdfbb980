// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// Tokenizer splits tag-free text into words.
type Tokenizer interface {
	Words(text string) []string
}

var (
	tagPattern     = regexp.MustCompile(`<[\pL/!][^>]*>`)
	spacesPattern  = regexp.MustCompile(`\s+`)
	shortcodeStyle = regexp.MustCompile(`\[/?[a-zA-Z_-]+[^\]]*\]`)
)

// StripTags removes HTML tags and shortcodes, decodes entities and
// collapses whitespace.
func StripTags(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = shortcodeStyle.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(spacesPattern.ReplaceAllString(text, " "))
}

// Words returns the words of text after stripping markup, in source order
// and source case.
func (c *Config) Words(text string) []string {
	return c.tokenizer.Words(StripTags(text))
}

// NormalizedWords returns Words lowercased with surrounding punctuation removed.
func (c *Config) NormalizedWords(text string) []string {
	words := c.Words(text)
	out := words[:0]
	for _, w := range words {
		if n := Normalize(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Normalize lowercases a word and trims quotes and punctuation from both ends.
func Normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
	return strings.ToLower(word)
}

// defaultTokenizer splits on whitespace and on punctuation that cannot
// occur inside a word. Apostrophes, hyphens and dots between letters
// ("don't", "e-mail", "e.g") stay inside the word.
type defaultTokenizer struct{}

func (defaultTokenizer) Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		if unicode.IsSpace(r) {
			return true
		}
		switch r {
		case '\'', '’', '-', '.', '_':
			return false
		}
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})

	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'’-._")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}
