package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yodalee/nfaregex/regex"
)

func mustParse(t *testing.T, pattern string) regex.Node {
	t.Helper()
	n, err := Parse(pattern)
	require.NoError(t, err)
	return n
}

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "")
	assert.True(regex.Matches(pattern, ""))
	assert.False(regex.Matches(pattern, "a"))
}

func TestParseLiteral(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "a")
	assert.False(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "a"))
}

func TestParseSetChars(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "[aeiouAEIOU]")
	assert.False(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "e"))
	assert.False(regex.Matches(pattern, "r"))
	assert.False(regex.Matches(pattern, "AB"))
}

func TestParseSetRange(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "[a-z]")
	assert.False(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "e"))
	assert.True(regex.Matches(pattern, "r"))
	assert.False(regex.Matches(pattern, "A"))
	assert.False(regex.Matches(pattern, "ww"))
}

func TestParseSetNegated(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "[^a-z]")
	assert.False(regex.Matches(pattern, ""))
	assert.False(regex.Matches(pattern, "e"))
	assert.False(regex.Matches(pattern, "r"))
	assert.True(regex.Matches(pattern, "A"))
	assert.True(regex.Matches(pattern, "1"))
	assert.False(regex.Matches(pattern, "ww"))
}

func TestParseStar(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "a*")
	assert.True(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "a"))
	assert.False(regex.Matches(pattern, "b"))
	assert.True(regex.Matches(pattern, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestParsePlus(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "a+")
	assert.False(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "a"))
	assert.False(regex.Matches(pattern, "b"))
	assert.True(regex.Matches(pattern, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}

func TestParseOptional(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "a?")
	assert.True(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "a"))
	assert.False(regex.Matches(pattern, "b"))
	assert.False(regex.Matches(pattern, "aa"))
}

func TestParseChoose(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "a|b")
	assert.False(regex.Matches(pattern, ""))
	assert.True(regex.Matches(pattern, "a"))
	assert.True(regex.Matches(pattern, "b"))
	assert.False(regex.Matches(pattern, "ab"))
}

func TestParseConcat(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "abcd")
	assert.False(regex.Matches(pattern, ""))
	assert.False(regex.Matches(pattern, "a"))
	assert.True(regex.Matches(pattern, "abcd"))
	assert.False(regex.Matches(pattern, "abcdefg"))
}

func TestParseGrouping(t *testing.T) {
	assert := assert.New(t)
	pattern := mustParse(t, "(ab|a)*")
	assert.True(regex.Matches(pattern, "aabab"))
	assert.False(regex.Matches(pattern, "abba"))
}

func TestParseRejectsAnchors(t *testing.T) {
	_, err := Parse("^a$")
	require.Error(t, err)
	var target *SyntaxError
	require.ErrorAs(t, err, &target)
}

func TestParseRejectsBoundedRepetition(t *testing.T) {
	_, err := Parse("a{2,4}")
	require.Error(t, err)
	var target *SyntaxError
	require.ErrorAs(t, err, &target)
}

func TestParseRejectsWordBoundary(t *testing.T) {
	_, err := Parse(`\ba\b`)
	require.Error(t, err)
}

func TestParseInvalidSyntax(t *testing.T) {
	_, err := Parse("[a-")
	require.Error(t, err)
}
