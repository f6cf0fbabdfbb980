// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// blockBoundary matches block-level tags, line breaks and blank lines. A
// sentence never spans one of these.
var blockBoundary = regexp.MustCompile(`(?i)</?(?:p|div|h[1-6]|li|ul|ol|dl|dt|dd|blockquote|table|thead|tbody|tr|td|th|pre|figure|figcaption|section|article|header|footer|aside|nav)\b[^>]*>|<br\s*/?>|\n[ \t]*\n`)

const closers = "\"'”’»)]"
const openers = "\"'“‘«(["

// SplitSentences splits text into sentences. Each returned sentence is a
// trimmed substring of text, inline markup included, so it can be located
// in the source verbatim.
func (c *Config) SplitSentences(text string) []string {
	var out []string
	for _, block := range splitBlocks(text) {
		out = append(out, c.splitBlock(block)...)
	}
	return out
}

func splitBlocks(text string) []string {
	var blocks []string
	last := 0
	for _, loc := range blockBoundary.FindAllStringIndex(text, -1) {
		blocks = append(blocks, text[last:loc[0]])
		last = loc[1]
	}
	return append(blocks, text[last:])
}

func (c *Config) splitBlock(block string) []string {
	var sentences []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if StripTags(s) != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	for i := 0; i < len(block); {
		r, size := utf8.DecodeRuneInString(block[i:])
		if isTagStart(block[i:]) {
			if j := strings.IndexByte(block[i:], '>'); j >= 0 {
				i += j + 1
				continue
			}
		}
		if !strings.ContainsRune(c.terminators, r) {
			i += size
			continue
		}

		end := c.absorbClosers(block, i+size)
		if c.isBoundary(block, start, i, r, end) {
			add(block[start:end])
			start = end
		}
		i = end
	}
	add(block[start:])
	return sentences
}

// absorbClosers extends a sentence end over repeated terminators, closing
// quotes and brackets, and closing inline tags such as </em>.
func (c *Config) absorbClosers(block string, end int) int {
	for end < len(block) {
		r, size := utf8.DecodeRuneInString(block[end:])
		switch {
		case strings.ContainsRune(c.terminators, r), strings.ContainsRune(closers, r):
			end += size
		case strings.HasPrefix(block[end:], "</"):
			j := strings.IndexByte(block[end:], '>')
			if j < 0 {
				return end
			}
			end += j + 1
		default:
			return end
		}
	}
	return end
}

func (c *Config) isBoundary(block string, start, term int, r rune, end int) bool {
	if end >= len(block) {
		return true
	}
	if c.spaceless {
		return r != '.' || !betweenDigits(block, term, end)
	}
	next, _ := utf8.DecodeRuneInString(block[end:])
	if !unicode.IsSpace(next) {
		return false
	}

	rest := skipOpeners(block[end:])
	if rest == "" {
		return true
	}
	if r != '.' {
		return true
	}

	if c.isAbbreviation(previousWord(block[start:term])) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLower(first)
}

// betweenDigits reports whether the terminator at block[term:end] sits
// inside a number such as "3.5".
func betweenDigits(block string, term, end int) bool {
	before, _ := utf8.DecodeLastRuneInString(block[:term])
	after, _ := utf8.DecodeRuneInString(block[end:])
	return unicode.IsDigit(before) && unicode.IsDigit(after)
}

// skipOpeners drops leading whitespace, opening tags and opening quotes.
func skipOpeners(s string) string {
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		switch {
		case isTagStart(s) && !strings.HasPrefix(s, "</"):
			j := strings.IndexByte(s, '>')
			if j < 0 {
				return s
			}
			s = s[j+1:]
		case s != "" && isOpener(s):
			_, size := utf8.DecodeRuneInString(s)
			s = s[size:]
		default:
			return s
		}
	}
}

// isTagStart reports whether s opens markup: a '<' followed by a letter,
// '/' or '!'. A '<' in running text such as "x < 3" is not a tag.
func isTagStart(s string) bool {
	if len(s) < 2 || s[0] != '<' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return r == '/' || r == '!' || unicode.IsLetter(r)
}

func isOpener(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune(openers, r)
}

func previousWord(s string) string {
	s = StripTags(s)
	if i := strings.LastIndexFunc(s, unicode.IsSpace); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(strings.TrimLeft(s, openers))
}

// isAbbreviation reports whether the word before a full stop is a listed
// abbreviation or a single-letter initial.
func (c *Config) isAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsLetter(r)
	}
	return c.abbreviations.has(word)
}
