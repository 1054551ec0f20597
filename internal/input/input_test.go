// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day07.txt"), Path(types.InputConfig{}, 7))
	assert.Equal(t, filepath.Join("x", "day25.txt"), Path(types.InputConfig{InputsDir: "x"}, 25))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := types.InputConfig{InputsDir: dir}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day19.txt"), []byte("    |\r\n    +--A\r\n\n"), 0o644))

	tests := []struct {
		name    string
		puzzle  puzzle.Puzzle
		want    string
		wantErr error
	}{
		{
			name:   "keeps leading whitespace and drops trailing newlines",
			puzzle: puzzle.Puzzle{Day: 19},
			want:   "    |\n    +--A",
		},
		{
			name:   "falls back to default input",
			puzzle: puzzle.Puzzle{Day: 17, DefaultInput: "371"},
			want:   "371",
		},
		{
			name:    "missing input",
			puzzle:  puzzle.Puzzle{Day: 1},
			wantErr: ErrNoInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(cfg, tt.puzzle)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPrefersFileOverDefault(t *testing.T) {
	dir := t.TempDir()
	cfg := types.InputConfig{InputsDir: dir}
	require.NoError(t, os.WriteFile(Path(cfg, 17), []byte("3\n"), 0o644))

	got, err := Load(cfg, puzzle.Puzzle{Day: 17, DefaultInput: "371"})
	require.NoError(t, err)
	assert.Equal(t, "3", got)
	assert.True(t, Exists(cfg, 17))
	assert.False(t, Exists(cfg, 18))
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	cfg := types.InputConfig{InputsDir: dir}
	require.NoError(t, os.WriteFile(Path(cfg, 2), []byte("5 1 9 5\n"), 0o644))
	require.NoError(t, os.WriteFile(Path(cfg, 4), []byte("aa bb\n"), 0o644))

	assert.Equal(t, []int{1, 3}, Missing(cfg, []int{1, 2, 3, 4}))
	assert.Empty(t, Missing(cfg, []int{2, 4}))
}
