// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("1234\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, c.Digits)

	_, err = Parse("12a4")
	assert.Error(t, err)
}

func TestNext(t *testing.T) {
	tests := map[string]int{
		"1122":     3,
		"1111":     4,
		"1234":     0,
		"91212129": 9,
	}
	for in, want := range tests {
		c, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, c.Next(), in)
	}
}

func TestHalfway(t *testing.T) {
	tests := map[string]int{
		"1212":     6,
		"1221":     0,
		"123425":   4,
		"123123":   12,
		"12131415": 4,
	}
	for in, want := range tests {
		c, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want, c.Halfway(), in)
	}
}
