// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/pkg/types"
)

func researcherFor(text string, attrs types.PaperAttributes) *Researcher {
	return New(NewDefaultRegistry(), types.NewPaper(text, attrs))
}

func TestSentenceBeginningsGroupsConsecutiveOnly(t *testing.T) {
	text := "Cats sleep. Cats eat. Cats play. Dogs bark. Cats purr. Cats hide."
	got, err := Get(researcherFor(text, types.PaperAttributes{}), SentenceBeginnings)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, SentenceBeginning{Word: "cats", Count: 3, Sentences: []string{"Cats sleep.", "Cats eat.", "Cats play."}}, got[0])
	assert.Equal(t, "dogs", got[1].Word)
	assert.Equal(t, 1, got[1].Count)
	assert.Equal(t, "cats", got[2].Word)
	assert.Equal(t, 2, got[2].Count)
}

func TestSentenceBeginningsExceptions(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		text   string
		want   []string
	}{
		{
			name:   "first word exception extends",
			locale: "en_US",
			text:   "The cat sat. The dog ran. The cat slept.",
			want:   []string{"the cat", "the dog", "the cat"},
		},
		{
			name:   "exception alone is the beginning",
			locale: "en_US",
			text:   "The. Two. This one.",
			want:   []string{"the", "two", "this one"},
		},
		{
			name:   "second word exception extends again",
			locale: "el",
			text:   "Αυτός ο άνθρωπος ήρθε. Αυτός ο σκύλος έφυγε.",
			want:   []string{"αυτός ο άνθρωπος", "αυτός ο σκύλος"},
		},
		{
			name:   "unsupported locale has no exceptions",
			locale: "fi_FI",
			text:   "The cat sat. The dog ran.",
			want:   []string{"the"},
		},
		{
			name:   "quotes are stripped",
			locale: "en_US",
			text:   `"Hello," she said. Hello again.`,
			want:   []string{"hello"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(researcherFor(tt.text, types.PaperAttributes{Locale: tt.locale}), SentenceBeginnings)
			require.NoError(t, err)
			words := make([]string, 0, len(got))
			for _, g := range got {
				words = append(words, g.Word)
			}
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestSentenceBeginningsEmptyText(t *testing.T) {
	got, err := Get(researcherFor("", types.PaperAttributes{}), SentenceBeginnings)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMetaDescriptionKeyword(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		synonyms    []string
		description string
		want        int
	}{
		{"absent", "cat food", nil, "A description about dogs.", 0},
		{"once", "cat food", nil, "The best cat food in town.", 1},
		{"twice in one sentence", "cat food", nil, "Cat food for cats: food your cat loves.", 2},
		{"three times over sentences", "cat food", nil, "Cat food. More cat food. Even more cat food.", 3},
		{"partial match does not count", "cat food", nil, "A cat in the garden.", 0},
		{"synonym counts", "cat food", []string{"kibble"}, "Kibble for your pet.", 1},
		{"keyphrase words are not reused for synonyms", "cat food", []string{"food"}, "Cat food here.", 1},
		{"exact phrase", `"cat food"`, nil, "Food for a cat. Cat food.", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := researcherFor("Body text.", types.PaperAttributes{
				Keyword:     tt.keyword,
				Synonyms:    tt.synonyms,
				Description: tt.description,
			})
			got, err := Get(r, MetaDescriptionKeyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyphraseLength(t *testing.T) {
	tests := []struct {
		keyword string
		want    int
	}{
		{"", 0},
		{"cat food", 2},
		{"the best cat food", 3},
		{`"the best cat food"`, 4},
		{"the", 1},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := Get(researcherFor("", types.PaperAttributes{Keyword: tt.keyword}), KeyphraseLength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordCount(t *testing.T) {
	r := researcherFor("Cat food is good. Dogs like bones. My cat loves cat food and food.", types.PaperAttributes{Keyword: "cat food"})
	got, err := Get(r, KeywordCount)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []string{"Cat food is good.", "My cat loves cat food and food."}, got.Sentences)
}

func TestSentenceLengths(t *testing.T) {
	got, err := Get(researcherFor("One two three. Four five.", types.PaperAttributes{}), SentenceLengths)
	require.NoError(t, err)
	assert.Equal(t, []SentenceLength{
		{Sentence: "One two three.", Words: 3},
		{Sentence: "Four five.", Words: 2},
	}, got)
}

func TestFirstParagraphKeyword(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FirstParagraphMatch
	}{
		{
			name: "one sentence",
			text: "<p>We sell cat food. Nothing else.</p><p>More.</p>",
			want: FirstParagraphMatch{InOneSentence: true, InParagraph: true},
		},
		{
			name: "spread over sentences",
			text: "<p>My cat is hungry. It wants food.</p>",
			want: FirstParagraphMatch{InParagraph: true},
		},
		{
			name: "only in second paragraph",
			text: "<p>Hello there.</p><p>Cat food here.</p>",
			want: FirstParagraphMatch{},
		},
		{
			name: "plain text blocks",
			text: "Cat food for all.\n\nSecond block.",
			want: FirstParagraphMatch{InOneSentence: true, InParagraph: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(researcherFor(tt.text, types.PaperAttributes{Keyword: "cat food"}), FirstParagraphKeyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageCount(t *testing.T) {
	got, err := Get(researcherFor(`<p>Text <img src="a.png"> and <img src="b.png"/></p>`, types.PaperAttributes{}), ImageCount)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Get(researcherFor("No images.", types.PaperAttributes{FeaturedImage: "https://example.com/f.png"}), ImageCount)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestMetaDescriptionLengthCountsRunes(t *testing.T) {
	got, err := Get(researcherFor("", types.PaperAttributes{Description: "Größe"}), MetaDescriptionLength)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
