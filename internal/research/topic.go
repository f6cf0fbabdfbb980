// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"strings"

	"github.com/pdiddy/content-analysis/internal/language"
)

// Phrase is a keyphrase or synonym reduced to the normalized words that
// must be present for a match.
type Phrase struct {
	Words []string `json:"words" yaml:"words"`

	// Exact phrases were written in double quotes and match only as a
	// contiguous run of words.
	Exact bool `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// TopicForms holds the keyphrase and its synonyms in matchable form.
type TopicForms struct {
	Keyphrase Phrase   `json:"keyphrase" yaml:"keyphrase"`
	Synonyms  []Phrase `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

// All returns the keyphrase followed by the synonyms, skipping empty ones.
func (tf TopicForms) All() []Phrase {
	var out []Phrase
	if len(tf.Keyphrase.Words) > 0 {
		out = append(out, tf.Keyphrase)
	}
	for _, s := range tf.Synonyms {
		if len(s.Words) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// newPhrase builds a phrase from raw keyphrase text. Function words are
// dropped unless the phrase consists only of function words.
func newPhrase(lang *language.Config, text string) Phrase {
	text = strings.TrimSpace(text)
	if unquoted, ok := unquote(text); ok {
		return Phrase{Words: lang.NormalizedWords(unquoted), Exact: true}
	}

	words := lang.NormalizedWords(text)
	content := make([]string, 0, len(words))
	for _, w := range words {
		if !lang.IsFunctionWord(w) {
			content = append(content, w)
		}
	}
	if len(content) == 0 {
		content = words
	}
	return Phrase{Words: content}
}

func unquote(s string) (string, bool) {
	for _, q := range [][2]string{{`"`, `"`}, {"“", "”"}, {"„", "“"}} {
		if len(s) > len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			return s[len(q[0]) : len(s)-len(q[1])], true
		}
	}
	return "", false
}

// Count returns how many full matches of p occur in words. For a loose
// phrase this is the lowest number of occurrences of any of its words.
func (p Phrase) Count(words []string) int {
	if len(p.Words) == 0 {
		return 0
	}
	if p.Exact {
		return countRuns(words, p.Words)
	}

	lowest := -1
	for _, w := range p.Words {
		c := countWord(words, w)
		if lowest < 0 || c < lowest {
			lowest = c
		}
	}
	return lowest
}

// removeMatches drops the first n occurrences of each of p's words from
// words and returns the remainder.
func (p Phrase) removeMatches(words []string, n int) []string {
	if n <= 0 {
		return words
	}
	remaining := make(map[string]int, len(p.Words))
	for _, w := range p.Words {
		remaining[w] = n
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if remaining[w] > 0 {
			remaining[w]--
			continue
		}
		out = append(out, w)
	}
	return out
}

func countWord(words []string, w string) int {
	n := 0
	for _, x := range words {
		if x == w {
			n++
		}
	}
	return n
}

func countRuns(words, run []string) int {
	n := 0
	for i := 0; i+len(run) <= len(words); {
		if equalWords(words[i:i+len(run)], run) {
			n++
			i += len(run)
			continue
		}
		i++
	}
	return n
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
