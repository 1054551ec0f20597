// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package puzzle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/aoc2017/pkg/types"
)

func stub(ctx context.Context, input string) (types.Answer, error) {
	return types.NewAnswer(len(input), 0), nil
}

func testRegistry(t *testing.T, days ...int) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, d := range days {
		require.NoError(t, r.Register(Puzzle{Day: d, Title: "stub", Solve: stub}))
	}
	return r
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Puzzle{Day: 1, Solve: stub}))

	assert.Error(t, r.Register(Puzzle{Day: 1, Solve: stub}), "duplicate day")
	assert.Error(t, r.Register(Puzzle{Day: 0, Solve: stub}), "before calendar")
	assert.Error(t, r.Register(Puzzle{Day: 26, Solve: stub}), "after calendar")
	assert.Error(t, r.Register(Puzzle{Day: 2}), "nil solver")

	p, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "day01", p.Name())
	_, ok = r.Lookup(2)
	assert.False(t, ok)
}

func TestDaysSorted(t *testing.T) {
	r := testRegistry(t, 12, 3, 25, 1)
	assert.Equal(t, []int{1, 3, 12, 25}, r.Days())

	ps := r.Puzzles()
	require.Len(t, ps, 4)
	assert.Equal(t, 25, ps[3].Day)
}

func TestParseDays(t *testing.T) {
	r := testRegistry(t, 1, 2, 3, 4, 5, 7, 10)

	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr bool
	}{
		{name: "empty selects all", args: nil, want: []int{1, 2, 3, 4, 5, 7, 10}},
		{name: "all keyword", args: []string{"all"}, want: []int{1, 2, 3, 4, 5, 7, 10}},
		{name: "plain numbers", args: []string{"7", "1"}, want: []int{1, 7}},
		{name: "zero padded and prefixed", args: []string{"07", "day10"}, want: []int{7, 10}},
		{name: "range", args: []string{"2-4"}, want: []int{2, 3, 4}},
		{name: "comma separated with duplicates", args: []string{"1,2", "2"}, want: []int{1, 2}},
		{name: "unregistered day", args: []string{"6"}, wantErr: true},
		{name: "range over unregistered day", args: []string{"4-7"}, wantErr: true},
		{name: "reversed range", args: []string{"5-1"}, wantErr: true},
		{name: "outside calendar", args: []string{"26"}, wantErr: true},
		{name: "garbage", args: []string{"seven"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ParseDays(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDaysUnknownIsSentinel(t *testing.T) {
	r := testRegistry(t, 1)
	_, err := r.ParseDays([]string{"2"})
	assert.ErrorIs(t, err, ErrUnknownDay)
}
