// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day07

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `pbga (66)
xhth (57)
ebii (61)
havc (66)
ktlj (57)
fwft (72) -> ktlj, cntj, xhth
qoyq (66)
padx (45) -> pbga, havc, qoyq
tknk (41) -> ugml, padx, fwft
jptl (61)
ugml (68) -> gyxo, ebii, jptl
gyxo (61)
cntj (57)`

func TestParseNode(t *testing.T) {
	n, err := ParseNode("pbgs (66)")
	require.NoError(t, err)
	assert.Equal(t, Node{Name: "pbgs", Weight: 66}, n)

	n, err = ParseNode("fwft (72) -> ktlj, cntj, xhth")
	require.NoError(t, err)
	assert.Equal(t, Node{Name: "fwft", Weight: 72, Children: []string{"ktlj", "cntj", "xhth"}}, n)

	for _, bad := range []string{"fwft", "fwft 72", "fwft (x)"} {
		_, err := ParseNode(bad)
		assert.Error(t, err, bad)
	}
}

func TestParse(t *testing.T) {
	tree, err := Parse(sample)
	require.NoError(t, err)
	assert.Len(t, tree.Nodes, 13)
	assert.Equal(t, "tknk", tree.Root)
}

func TestParseRejectsForest(t *testing.T) {
	_, err := Parse("a (1)\nb (2)")
	assert.Error(t, err)
}

func TestParseRejectsLoops(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"loop above the bottom", "r (1) -> a\na (1) -> b\nb (1) -> a"},
		{"detached loop", "r (1) -> a\na (1)\nb (1) -> c\nc (1) -> b"},
		{"shared child", "r (1) -> a, b\na (1) -> c\nb (1) -> c\nc (1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrNotATree)

			_, err = Solve(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrNotATree)
		})
	}
}

func TestWeights(t *testing.T) {
	tree, err := Parse(sample)
	require.NoError(t, err)

	for name, want := range map[string]int{"ugml": 68, "padx": 45, "fwft": 72} {
		w, ok := tree.Weight(name)
		require.True(t, ok)
		assert.Equal(t, want, w, name)
	}
	for name, want := range map[string]int{"ugml": 251, "padx": 243, "fwft": 243} {
		w, ok := tree.TotalWeight(name)
		require.True(t, ok)
		assert.Equal(t, want, w, name)
	}
	_, ok := tree.TotalWeight("nope")
	assert.False(t, ok)
}

func TestCorrectWeight(t *testing.T) {
	tree, err := Parse(sample)
	require.NoError(t, err)
	w, ok, err := tree.CorrectWeight()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 60, w)
}

func TestSolve(t *testing.T) {
	a, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "tknk", a.Part1)
	assert.Equal(t, "60", a.Part2)
}
