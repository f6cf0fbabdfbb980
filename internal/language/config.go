// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package language holds the per-language tables and tokenization rules used
// by the researchers: first- and second-word exceptions for sentence
// beginnings, function words, abbreviations, sentence terminators and word
// splitting. Tables are built once at init and are read-only afterwards, so
// a *Config may be shared by any number of concurrent analyses.
package language

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultCode is the code of the locale-agnostic fallback config.
const DefaultCode = "default"

// Config is the static linguistic table for one language.
type Config struct {
	// Code is the ISO 639-1 language code, or DefaultCode.
	Code string

	// Name is the English display name.
	Name string

	// SentenceBeginnings reports whether the consecutive sentence beginnings
	// check is calibrated for this language.
	SentenceBeginnings bool

	firstWords    set
	secondWords   set
	functionWords set
	abbreviations set
	terminators   string
	spaceless     bool
	tokenizer     Tokenizer
}

// table is the source form of a Config, kept close to the raw word lists.
type table struct {
	code               string
	name               string
	sentenceBeginnings bool
	firstWords         []string
	secondWords        []string
	functionWords      []string
	abbreviations      []string
	extraTerminators   string
	spaceless          bool
	tokenizer          Tokenizer
}

const baseTerminators = ".!?…"

type set map[string]struct{}

// newSet lowercases and trims every entry. Source lists contain stray
// whitespace and duplicates.
func newSet(words []string) set {
	s := make(set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func build(t table) *Config {
	tok := t.tokenizer
	if tok == nil {
		tok = defaultTokenizer{}
	}
	return &Config{
		Code:               t.code,
		Name:               t.name,
		SentenceBeginnings: t.sentenceBeginnings,
		firstWords:         newSet(t.firstWords),
		secondWords:        newSet(t.secondWords),
		functionWords:      newSet(t.functionWords),
		abbreviations:      newSet(t.abbreviations),
		terminators:        baseTerminators + t.extraTerminators,
		spaceless:          t.spaceless,
		tokenizer:          tok,
	}
}

var (
	defaultConfig = build(table{code: DefaultCode, name: "Default"})
	configs       = buildAll()
)

func buildAll() map[string]*Config {
	tables := []table{
		english, german, dutch, swedish,
		spanish, french, italian, portuguese,
		russian, polish, indonesian, arabic, hebrew, hungarian, turkish, greek,
		japanese,
	}
	m := make(map[string]*Config, len(tables))
	for _, t := range tables {
		m[t.code] = build(t)
	}
	return m
}

// Lookup returns the config for a locale tag ("en_US", "de-DE", "el").
// Unknown or malformed locales get the default config; Lookup never fails.
func Lookup(locale string) *Config {
	code := Code(locale)
	if c, ok := configs[code]; ok {
		return c
	}
	return defaultConfig
}

// Default returns the locale-agnostic config: no exception lists and
// generic sentence splitting.
func Default() *Config {
	return defaultConfig
}

// Code resolves a locale tag to its base language code. It returns an empty
// string when the tag cannot be parsed.
func Code(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// Supported returns every language config except the default, sorted by code.
func Supported() []*Config {
	out := make([]*Config, 0, len(configs))
	for _, c := range configs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// IsDefault reports whether c is the fallback config.
func (c *Config) IsDefault() bool {
	return c == defaultConfig
}

// IsFirstWordException reports whether a lowercased word extends a sentence
// beginning to the following word (articles, numerals, demonstratives).
func (c *Config) IsFirstWordException(word string) bool {
	return c.firstWords.has(word)
}

// IsSecondWordException reports whether a lowercased word following a
// first-word exception extends the beginning once more.
func (c *Config) IsSecondWordException(word string) bool {
	return c.secondWords.has(word)
}

// IsFunctionWord reports whether a lowercased word carries no topical
// meaning (articles, prepositions, conjunctions, auxiliaries).
func (c *Config) IsFunctionWord(word string) bool {
	return c.functionWords.has(word)
}

// FirstWordExceptions returns the sorted first-word exception list. It is
// empty, never nil-panicking, for languages without a table.
func (c *Config) FirstWordExceptions() []string {
	return c.firstWords.sorted()
}

// SecondWordExceptions returns the sorted second-word exception list.
func (c *Config) SecondWordExceptions() []string {
	return c.secondWords.sorted()
}

// FunctionWords returns the sorted function word list.
func (c *Config) FunctionWords() []string {
	return c.functionWords.sorted()
}
