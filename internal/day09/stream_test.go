package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, s string) []Token {
	t.Helper()
	toks, err := Tokenize(s)
	require.NoError(t, err, s)
	return toks
}

func TestTokenize(t *testing.T) {
	got := tokens(t, "{{hello}<a}b<c{d!>e>}")
	assert.Equal(t, []Token{
		{Kind: GroupStart},
		{Kind: GroupStart},
		{Kind: Data, Text: "hello"},
		{Kind: GroupEnd},
		{Kind: Garbage, Parts: []string{"a}b<c{d", "e"}},
		{Kind: GroupEnd},
	}, got)
}

func TestTokenizeUnterminated(t *testing.T) {
	_, err := Tokenize("{<abc")
	assert.ErrorIs(t, err, ErrUnterminatedGarbage)
}

func TestGroups(t *testing.T) {
	tests := map[string]int{
		"{}":                        1,
		"{{{}}}":                    3,
		"{{},{}}":                   3,
		"{{{},{},{{}}}}":            6,
		"{<{},{},{{}}>}":            1,
		"{<a>,<a>,<a>,<a>}":         1,
		"{{<a>},{<a>},{<a>},{<a>}}": 5,
		"{{<!>},{<!>},{<!>},{<a>}}": 2,
	}
	for in, want := range tests {
		assert.Equal(t, want, Groups(tokens(t, in)), in)
	}
}

func TestScore(t *testing.T) {
	tests := map[string]int{
		"{}":                            1,
		"{{{}}}":                        6,
		"{{},{}}":                       5,
		"{{{},{},{{}}}}":                16,
		"{<a>,<a>,<a>,<a>}":             1,
		"{{<ab>},{<ab>},{<ab>},{<ab>}}": 9,
		"{{<!!>},{<!!>},{<!!>},{<!!>}}": 9,
		"{{<a!>},{<a!>},{<a!>},{<ab>}}": 3,
	}
	for in, want := range tests {
		assert.Equal(t, want, Score(tokens(t, in)), in)
	}
}

func TestGarbageSize(t *testing.T) {
	tests := map[string]int{
		"<>":                  0,
		"<random characters>": 17,
		"<<<<>":               3,
		"<{!>}>":              2,
		"<!!>":                0,
		"<!!!>>":              0,
		"<{o\"i!a,<{i<a>":     10,
	}
	for in, want := range tests {
		assert.Equal(t, want, GarbageSize(tokens(t, in)), in)
	}
}
