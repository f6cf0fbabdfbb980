// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package marker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/pkg/types"
)

func TestStripIncompleteTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unclosed opening", "<em>opening", "opening"},
		{"unopened closing", "closing</strong>", "closing"},
		{"balanced", "<b>bold</b> text", "<b>bold</b> text"},
		{"void element", "line<br>break", "line<br>break"},
		{"self closing", `<img src="a.png"/> alt`, `<img src="a.png"/> alt`},
		{"mixed", `<a href="x">link</a> and <em>half`, `<a href="x">link</a> and half`},
		{"unclosed inside balanced", "<p>a <i>b</p>", "<p>a b</p>"},
		{"plain text", "plain text.", "plain text."},
		{"less-than in text", "a < b", "a < b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripIncompleteTags(tt.in))
		})
	}
}

func TestMark(t *testing.T) {
	m := Mark("<em>opening sentence.")
	assert.Equal(t, "opening sentence.", m.Original)
	assert.Equal(t, OpenTag+"opening sentence."+CloseTag, m.Marked)

	assert.Equal(t, Mark("same"), Mark("same"), "marking is deterministic")
}

func TestApply(t *testing.T) {
	text := "One. Two. Three."
	out, err := Apply(text, []types.Mark{Mark("Two.")})
	require.NoError(t, err)
	assert.Equal(t, "One. "+OpenTag+"Two."+CloseTag+" Three.", out)
}

func TestApplyRepeatedFragments(t *testing.T) {
	out, err := Apply("Go. Go. Go.", []types.Mark{Mark("Go."), Mark("Go."), Mark("Go.")})
	require.NoError(t, err)
	want := OpenTag + "Go." + CloseTag
	assert.Equal(t, want+" "+want+" "+want, out)
}

func TestApplyReportsMisalignedMarks(t *testing.T) {
	text := "One. Two. Three."
	out, err := Apply(text, []types.Mark{
		Mark("One. Two."),
		Mark("Two. Three."),
		Mark("Missing."),
		{},
	})
	require.Error(t, err)

	var alignErr *MarkAlignmentError
	require.True(t, errors.As(err, &alignErr))
	assert.Contains(t, err.Error(), "overlaps an earlier mark")
	assert.Contains(t, err.Error(), "not found in text")
	assert.Contains(t, err.Error(), "empty fragment")

	assert.Equal(t, OpenTag+"One. Two."+CloseTag+" Three.", out)
}

func TestApplyNoMarks(t *testing.T) {
	out, err := Apply("unchanged", nil)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", out)
}
