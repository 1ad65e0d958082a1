package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMatch(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"(ab|a)*", "aabab"}, &stdout, &stderr)

	assert.Equal(ExitMatch, code)
	assert.True(strings.Contains(stdout.String(), "aabab"))
	assert.Empty(stderr.String())
}

func TestRunNoMatch(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"a+", ""}, &stdout, &stderr)

	assert.Equal(ExitNoMatch, code)
}

func TestRunParseError(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"^a$", "a"}, &stdout, &stderr)

	assert.Equal(ExitParseError, code)
	assert.True(strings.Contains(stderr.String(), "ERROR"))
}

func TestRunUsageError(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"only-one-arg"}, &stdout, &stderr)

	assert.Equal(ExitUsageError, code)
}

func TestRunShowAST(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--show-ast", "a|b", "a"}, &stdout, &stderr)

	assert.Equal(ExitMatch, code)
	// regexp/syntax folds a|b into the character class [a-b].
	assert.True(strings.Contains(stdout.String(), "ast: [a-b]"))
}

func TestRunVerbose(t *testing.T) {
	assert := assert.New(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--verbose", "ab", "ab"}, &stdout, &stderr)

	assert.Equal(ExitMatch, code)
	assert.True(strings.Contains(stdout.String(), "states"))
	assert.True(strings.Contains(stdout.String(), "rules"))
}
