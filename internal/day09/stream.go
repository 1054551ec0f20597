// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day09 tokenizes a character stream of nested groups and garbage.
package day09

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/aoc2017/pkg/types"
)

// ErrUnterminatedGarbage is returned when the stream ends inside garbage.
var ErrUnterminatedGarbage = errors.New("unterminated garbage")

// Kind identifies a token type.
type Kind int

const (
	GroupStart Kind = iota
	GroupEnd
	Garbage
	Data
)

// Token is one element of the stream. Parts holds the uncancelled runs of
// a garbage token; Text holds the content of a data token.
type Token struct {
	Kind  Kind
	Parts []string
	Text  string
}

// GarbageSize returns the number of uncancelled characters in a garbage token.
func (t Token) GarbageSize() int {
	n := 0
	for _, p := range t.Parts {
		n += len(p)
	}
	return n
}

// Tokenize splits the stream into tokens. Inside garbage, "!" cancels the
// character that follows it. Data runs until the next "{", "}" or "<";
// trailing data with no delimiter after it is dropped.
func Tokenize(s string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			tokens = append(tokens, Token{Kind: GroupStart})
			i++
		case '}':
			tokens = append(tokens, Token{Kind: GroupEnd})
			i++
		case '<':
			tok, n, err := garbage(s[i:])
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, tok)
			i += n
		default:
			end := strings.IndexAny(s[i:], "{}<")
			if end < 0 {
				return tokens, nil
			}
			tokens = append(tokens, Token{Kind: Data, Text: s[i : i+end]})
			i += end
		}
	}
	return tokens, nil
}

// garbage consumes a garbage token at the start of s and returns it with
// the number of bytes consumed.
func garbage(s string) (Token, int, error) {
	tok := Token{Kind: Garbage}
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			tok.Parts = append(tok.Parts, run.String())
			run.Reset()
		}
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '!':
			flush()
			i++
		case '>':
			flush()
			return tok, i + 1, nil
		default:
			run.WriteByte(s[i])
		}
	}
	return Token{}, 0, ErrUnterminatedGarbage
}

// Groups counts the groups in a token stream.
func Groups(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == GroupEnd {
			n++
		}
	}
	return n
}

// Score sums the nesting depth of every group.
func Score(tokens []Token) int {
	score, depth := 0, 0
	for _, t := range tokens {
		switch t.Kind {
		case GroupStart:
			depth++
		case GroupEnd:
			score += depth
			depth--
		}
	}
	return score
}

// GarbageSize sums the uncancelled garbage characters of all tokens.
func GarbageSize(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		n += t.GarbageSize()
	}
	return n
}

// Solve returns the total group score and the garbage size.
func Solve(_ context.Context, input string) (types.Answer, error) {
	tokens, err := Tokenize(strings.TrimSpace(input))
	if err != nil {
		return types.Answer{}, err
	}
	return types.NewAnswer(Score(tokens), GarbageSize(tokens)), nil
}
