// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-analysis/pkg/types"
)

func TestRegisterRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	key := NewKey[int]("count")
	fn := func(*Researcher) (int, error) { return 1, nil }

	require.NoError(t, Register(reg, key, fn))
	assert.Error(t, Register(reg, key, fn), "duplicate name")
	assert.Error(t, Register(reg, NewKey[int](""), fn), "empty name")
	assert.Error(t, Register[int](reg, NewKey[int]("other"), nil), "nil function")
	assert.Equal(t, []Name{"count"}, reg.Names())
}

func TestGetMemoizesPerPaper(t *testing.T) {
	reg := NewRegistry()
	calls := 0
	key := NewKey[int]("calls")
	require.NoError(t, Register(reg, key, func(r *Researcher) (int, error) {
		calls++
		return len(r.Paper().Text()), nil
	}))

	paper := types.NewPaper("some text", types.PaperAttributes{})
	r := New(reg, paper)

	first, err := Get(r, key)
	require.NoError(t, err)
	second, err := Get(r, key)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	r.SetPaper(paper)
	_, err = Get(r, key)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "same paper instance keeps the cache")

	r.SetPaper(types.NewPaper("some text", types.PaperAttributes{}))
	_, err = Get(r, key)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "new paper instance invalidates the cache")
}

func TestGetUnknownResearcher(t *testing.T) {
	r := New(NewRegistry(), types.NewPaper("text", types.PaperAttributes{}))
	_, err := Get(r, NewKey[int]("missing"))

	var unknown *UnknownResearcherError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, Name("missing"), unknown.Name)
}

func TestGetDetectsCycles(t *testing.T) {
	reg := NewRegistry()
	a := NewKey[int]("a")
	b := NewKey[int]("b")
	require.NoError(t, Register(reg, a, func(r *Researcher) (int, error) { return Get(r, b) }))
	require.NoError(t, Register(reg, b, func(r *Researcher) (int, error) { return Get(r, a) }))

	_, err := Get(New(reg, types.NewPaper("x", types.PaperAttributes{})), a)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestGetTypeMismatch(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, Register(reg, NewKey[int]("n"), func(*Researcher) (int, error) { return 3, nil }))

	_, err := Get(New(reg, nil), NewKey[string]("n"))
	assert.Error(t, err)
}

func TestNilPaperIsEmpty(t *testing.T) {
	r := New(NewDefaultRegistry(), nil)
	count, err := Get(r, WordCountInText)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithLinksCopies(t *testing.T) {
	links := map[string]string{"textLength": "https://example.com/a"}
	r := New(NewRegistry(), nil, WithLinks(links))
	links["textLength"] = "changed"
	assert.Equal(t, "https://example.com/a", r.Links()["textLength"])
}
