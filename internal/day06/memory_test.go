// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	b, err := Parse("0\t2\t7\t0")
	require.NoError(t, err)
	assert.Equal(t, Banks{0, 2, 7, 0}, b)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestDetectLoop(t *testing.T) {
	b := Banks{0, 2, 7, 0}
	c, err := b.DetectLoop(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Banks{
		{2, 4, 1, 2},
		{3, 1, 2, 3},
		{0, 2, 3, 4},
		{1, 3, 4, 1},
		{2, 4, 1, 2},
	}, c.Seen)
	assert.Equal(t, 5, c.Steps)
	assert.Equal(t, 4, c.Loop)
	assert.Equal(t, Banks{0, 2, 7, 0}, b, "input must not be modified")
}

func TestRedistributeTieBreak(t *testing.T) {
	b := Banks{3, 1, 3}
	b.Redistribute()
	assert.Equal(t, Banks{1, 2, 4}, b)
}
