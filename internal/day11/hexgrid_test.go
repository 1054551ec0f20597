// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("ne,sw,se\n")
	require.NoError(t, err)
	assert.Equal(t, Path{{1, -1}, {-1, 1}, {1, 0}}, p)

	_, err = Parse("ne,up")
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	tests := []struct {
		path     string
		final    int
		furthest int
	}{
		{"ne,ne,ne", 3, 3},
		{"ne,ne,sw,sw", 0, 2},
		{"ne,ne,s,s", 2, 2},
		{"se,sw,se,sw,sw", 3, 3},
	}
	for _, tt := range tests {
		p, err := Parse(tt.path)
		require.NoError(t, err)
		final, furthest := p.Walk()
		assert.Equal(t, tt.final, final, tt.path)
		assert.Equal(t, tt.furthest, furthest, tt.path)
	}
}
