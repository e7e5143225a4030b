package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `% PBN 2.1
% Creator: test

[Event "Club Night"]
[Board "5"]
[Contract "3NT"]

[Event "Club Night"]
[Board "8"]
[Contract "4S"]

[Event "Club Night"]
[Board "9"]
[Contract "3nt"]
`

func TestSplitCaseInsensitive(t *testing.T) {
	re, err := Compile(`\[Contract "3NT"\]`, false)
	require.NoError(t, err)

	res := Split(sample, re)
	assert.Equal(t, 3, res.Total())
	assert.Len(t, res.Matched, 2)
	assert.Len(t, res.Unmatched, 1)
	assert.Contains(t, res.Unmatched[0], `[Board "8"]`)
	assert.InDelta(t, 66.7, res.MatchRate(), 0.1)
	assert.Contains(t, res.Header, "% PBN 2.1")
}

func TestSplitCaseSensitive(t *testing.T) {
	re, err := Compile("3nt", true)
	require.NoError(t, err)

	res := Split(sample, re)
	assert.Len(t, res.Matched, 1)
	assert.Contains(t, res.Matched[0], `[Board "9"]`)
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile("[unclosed", false)
	assert.Error(t, err)
}

func TestOutputRenumbers(t *testing.T) {
	re, err := Compile("3NT", false)
	require.NoError(t, err)
	res := Split(sample, re)

	out := Output(res.Header, res.Matched, true)
	assert.Contains(t, out, `[Board "1"]`)
	assert.Contains(t, out, `[Board "2"]`)
	assert.NotContains(t, out, `[Board "5"]`)
	assert.NotContains(t, out, `[Board "9"]`)
}

func TestOutputKeepsNumbers(t *testing.T) {
	re, err := Compile("3NT", false)
	require.NoError(t, err)
	res := Split(sample, re)

	out := Output(res.Header, res.Matched, false)
	assert.Contains(t, out, `[Board "5"]`)
	assert.Contains(t, out, `[Board "9"]`)
}

func TestSetEvent(t *testing.T) {
	updated, n := SetEvent(sample, "Spring Pairs")
	assert.Equal(t, 3, n)
	assert.Contains(t, updated, `[Event "Spring Pairs"]`)
	assert.NotContains(t, updated, "Club Night")
}

func TestSetEventNoTags(t *testing.T) {
	updated, n := SetEvent("[Board \"1\"]\n", "X")
	assert.Equal(t, 0, n)
	assert.Equal(t, "[Board \"1\"]\n", updated)
}
