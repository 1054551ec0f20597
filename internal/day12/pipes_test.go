// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day12

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0 <-> 2\n1 <-> 1\n2 <-> 0, 3, 4\n3 <-> 2, 4\n4 <-> 2, 3, 6\n5 <-> 6\n6 <-> 4, 5"

func TestParse(t *testing.T) {
	p, err := ParseProgram("2 <-> 0, 3, 4")
	require.NoError(t, err)
	assert.Equal(t, Program{ID: 2, Pipes: []int{0, 3, 4}}, p)

	v, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []Program{
		{ID: 0, Pipes: []int{2}},
		{ID: 1, Pipes: []int{1}},
		{ID: 2, Pipes: []int{0, 3, 4}},
		{ID: 3, Pipes: []int{2, 4}},
		{ID: 4, Pipes: []int{2, 3, 6}},
		{ID: 5, Pipes: []int{6}},
		{ID: 6, Pipes: []int{4, 5}},
	}, v.Programs)

	_, err = Parse("0 - 2")
	assert.Error(t, err)
}

func TestGroup(t *testing.T) {
	v, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4, 5, 6}, v.Group(0))
	assert.Equal(t, []int{1}, v.Group(1))
}

func TestCountGroups(t *testing.T) {
	v, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, v.CountGroups())
}

func TestSolve(t *testing.T) {
	a, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "6", a.Part1)
	assert.Equal(t, "2", a.Part2)
}
