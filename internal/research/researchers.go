// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/content-analysis/internal/language"
)

// SentenceBeginning is a run of consecutive sentences that start with the
// same word or words.
type SentenceBeginning struct {
	Word      string   `json:"word" yaml:"word"`
	Count     int      `json:"count" yaml:"count"`
	Sentences []string `json:"sentences" yaml:"sentences"`
}

// KeywordMatches counts full keyphrase matches in the text and records the
// sentences they occur in.
type KeywordMatches struct {
	Count     int      `json:"count" yaml:"count"`
	Sentences []string `json:"sentences,omitempty" yaml:"sentences,omitempty"`
}

// SentenceLength is the word count of one sentence.
type SentenceLength struct {
	Sentence string `json:"sentence" yaml:"sentence"`
	Words    int    `json:"words" yaml:"words"`
}

// FirstParagraphMatch reports where the keyphrase or a synonym occurs in the
// first paragraph.
type FirstParagraphMatch struct {
	InOneSentence bool `json:"in_one_sentence" yaml:"in_one_sentence"`
	InParagraph   bool `json:"in_paragraph" yaml:"in_paragraph"`
}

// Built-in research keys.
var (
	Sentences              = NewKey[[]string]("sentences")
	WordCountInText        = NewKey[int]("wordCountInText")
	SentenceBeginnings     = NewKey[[]SentenceBeginning]("getSentenceBeginnings")
	Morphology             = NewKey[TopicForms]("morphology")
	MetaDescriptionKeyword = NewKey[int]("metaDescriptionKeyword")
	MetaDescriptionLength  = NewKey[int]("metaDescriptionLength")
	KeyphraseLength        = NewKey[int]("keyphraseLength")
	KeywordCount           = NewKey[KeywordMatches]("keywordCount")
	SentenceLengths        = NewKey[[]SentenceLength]("countSentencesFromText")
	FirstParagraphKeyword  = NewKey[FirstParagraphMatch]("findKeywordInFirstParagraph")
	ImageCount             = NewKey[int]("imageCount")
)

// NewDefaultRegistry returns a registry holding every built-in researcher.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	must(Register(reg, Sentences, sentences))
	must(Register(reg, WordCountInText, wordCountInText))
	must(Register(reg, SentenceBeginnings, sentenceBeginnings))
	must(Register(reg, Morphology, morphology))
	must(Register(reg, MetaDescriptionKeyword, metaDescriptionKeyword))
	must(Register(reg, MetaDescriptionLength, metaDescriptionLength))
	must(Register(reg, KeyphraseLength, keyphraseLength))
	must(Register(reg, KeywordCount, keywordCount))
	must(Register(reg, SentenceLengths, sentenceLengths))
	must(Register(reg, FirstParagraphKeyword, firstParagraphKeyword))
	must(Register(reg, ImageCount, imageCount))
	return reg
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func sentences(r *Researcher) ([]string, error) {
	return r.Language().SplitSentences(r.Paper().Text()), nil
}

func wordCountInText(r *Researcher) (int, error) {
	return len(r.Language().Words(r.Paper().Text())), nil
}

// sentenceBeginnings groups consecutive sentences by their beginning.
// Only neighbours are grouped: A A B A yields A×2, B×1, A×1.
func sentenceBeginnings(r *Researcher) ([]SentenceBeginning, error) {
	sents, err := Get(r, Sentences)
	if err != nil {
		return nil, err
	}

	lang := r.Language()
	var groups []SentenceBeginning
	for _, s := range sents {
		b := beginning(lang, s)
		if b == "" {
			continue
		}
		if n := len(groups); n > 0 && groups[n-1].Word == b {
			groups[n-1].Count++
			groups[n-1].Sentences = append(groups[n-1].Sentences, s)
			continue
		}
		groups = append(groups, SentenceBeginning{Word: b, Count: 1, Sentences: []string{s}})
	}
	return groups, nil
}

// beginning returns the lowercased first word of a sentence. A first-word
// exception ("the", "two", "this") extends it with the next word, and a
// second-word exception after that extends it once more.
func beginning(lang *language.Config, sentence string) string {
	words := lang.NormalizedWords(sentence)
	if len(words) == 0 {
		return ""
	}
	b := words[0]
	if lang.IsFirstWordException(words[0]) && len(words) > 1 {
		b += " " + words[1]
		if lang.IsSecondWordException(words[1]) && len(words) > 2 {
			b += " " + words[2]
		}
	}
	return b
}

func morphology(r *Researcher) (TopicForms, error) {
	lang := r.Language()
	p := r.Paper()
	tf := TopicForms{Keyphrase: newPhrase(lang, p.Keyword())}
	for _, s := range p.Synonyms() {
		if ph := newPhrase(lang, s); len(ph.Words) > 0 {
			tf.Synonyms = append(tf.Synonyms, ph)
		}
	}
	return tf, nil
}

// metaDescriptionKeyword counts keyphrase and synonym matches per sentence
// of the meta description. Words used by a keyphrase match are removed
// before synonyms are counted, so one word never counts twice.
func metaDescriptionKeyword(r *Researcher) (int, error) {
	tf, err := Get(r, Morphology)
	if err != nil {
		return 0, err
	}

	lang := r.Language()
	total := 0
	for _, s := range lang.SplitSentences(r.Paper().Description()) {
		words := lang.NormalizedWords(s)
		full := tf.Keyphrase.Count(words)
		words = tf.Keyphrase.removeMatches(words, full)
		total += full
		for _, syn := range tf.Synonyms {
			n := syn.Count(words)
			words = syn.removeMatches(words, n)
			total += n
		}
	}
	return total, nil
}

func metaDescriptionLength(r *Researcher) (int, error) {
	return utf8.RuneCountInString(r.Paper().Description()), nil
}

func keyphraseLength(r *Researcher) (int, error) {
	tf, err := Get(r, Morphology)
	if err != nil {
		return 0, err
	}
	return len(tf.Keyphrase.Words), nil
}

func keywordCount(r *Researcher) (KeywordMatches, error) {
	var km KeywordMatches
	tf, err := Get(r, Morphology)
	if err != nil {
		return km, err
	}
	sents, err := Get(r, Sentences)
	if err != nil {
		return km, err
	}

	lang := r.Language()
	for _, s := range sents {
		if n := tf.Keyphrase.Count(lang.NormalizedWords(s)); n > 0 {
			km.Count += n
			km.Sentences = append(km.Sentences, s)
		}
	}
	return km, nil
}

func sentenceLengths(r *Researcher) ([]SentenceLength, error) {
	sents, err := Get(r, Sentences)
	if err != nil {
		return nil, err
	}
	lang := r.Language()
	out := make([]SentenceLength, 0, len(sents))
	for _, s := range sents {
		out = append(out, SentenceLength{Sentence: s, Words: len(lang.Words(s))})
	}
	return out, nil
}

func firstParagraphKeyword(r *Researcher) (FirstParagraphMatch, error) {
	var m FirstParagraphMatch
	tf, err := Get(r, Morphology)
	if err != nil {
		return m, err
	}
	para, err := firstParagraph(r.Paper().Text())
	if err != nil {
		return m, err
	}

	lang := r.Language()
	words := lang.NormalizedWords(para)
	sents := lang.SplitSentences(para)
	for _, ph := range tf.All() {
		if ph.Count(words) > 0 {
			m.InParagraph = true
		}
		for _, s := range sents {
			if ph.Count(lang.NormalizedWords(s)) > 0 {
				m.InOneSentence = true
			}
		}
	}
	return m, nil
}

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// firstParagraph returns the inner HTML of the first non-empty <p>, or the
// first non-empty block separated by a blank line when the text has no
// paragraph tags.
func firstParagraph(text string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("parsing text: %w", err)
	}

	var para string
	var htmlErr error
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "" {
			return true
		}
		para, htmlErr = s.Html()
		return false
	})
	if htmlErr != nil {
		return "", fmt.Errorf("rendering first paragraph: %w", htmlErr)
	}
	if para != "" {
		return para, nil
	}

	for _, block := range blankLine.Split(text, -1) {
		if language.StripTags(block) != "" {
			return block, nil
		}
	}
	return "", nil
}

// imageCount counts <img> elements in the text plus the featured image.
func imageCount(r *Researcher) (int, error) {
	n := 0
	if text := r.Paper().Text(); text != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
		if err != nil {
			return 0, fmt.Errorf("parsing text: %w", err)
		}
		n = doc.Find("img").Length()
	}
	if r.Paper().FeaturedImage() != "" {
		n++
	}
	return n, nil
}
