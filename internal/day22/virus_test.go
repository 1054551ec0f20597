// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day22

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "..#\n#..\n...\n"

func TestParse(t *testing.T) {
	c, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, Infected, c.At(Point{1, -1}))
	assert.Equal(t, Infected, c.At(Point{-1, 0}))
	assert.Equal(t, Clean, c.At(Point{0, 0}))
	assert.Equal(t, Point{0, 0}, c.Position())

	_, err = Parse("..#\n#.\n")
	assert.Error(t, err)
	_, err = Parse("x")
	assert.Error(t, err)
}

func TestBurst(t *testing.T) {
	c, err := Parse(sample)
	require.NoError(t, err)

	c.Burst()
	assert.Equal(t, Infected, c.At(Point{0, 0}))
	assert.Equal(t, Point{-1, 0}, c.Position())

	c.Burst()
	assert.Equal(t, Clean, c.At(Point{-1, 0}))
	assert.Equal(t, Point{-1, -1}, c.Position())
	assert.Equal(t, 1, c.Infections)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		bursts  int
		evolved bool
		want    int
	}{
		{name: "basic 7", bursts: 7, want: 5},
		{name: "basic 70", bursts: 70, want: 41},
		{name: "basic 10000", bursts: 10_000, want: 5587},
		{name: "evolved 100", bursts: 100, evolved: true, want: 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(sample)
			require.NoError(t, err)
			got, err := c.Run(context.Background(), tt.bursts, tt.evolved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolve(t *testing.T) {
	if testing.Short() {
		t.Skip("ten million bursts")
	}
	got, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "5587", got.Part1)
	assert.Equal(t, "2511944", got.Part2)
}

func TestRunCancelled(t *testing.T) {
	c, err := Parse(sample)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Run(ctx, EvolvedBursts, true)
	assert.ErrorIs(t, err, context.Canceled)
}
