// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day13

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0: 3\n1: 2\n4: 4\n6: 4"

func TestParse(t *testing.T) {
	fw, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, Firewall{{0, 3}, {1, 2}, {4, 4}, {6, 4}}, fw)

	_, err = Parse("0 3")
	assert.Error(t, err)
	_, err = Parse("0: 0")
	assert.Error(t, err)
}

func TestTrip(t *testing.T) {
	fw, err := Parse(sample)
	require.NoError(t, err)

	sev, caught := fw.Trip(0)
	assert.True(t, caught)
	assert.Equal(t, 24, sev)

	sev, caught = fw.Trip(10)
	assert.False(t, caught)
	assert.Zero(t, sev)
}

func TestCaughtAtDepthZeroCounts(t *testing.T) {
	fw := Firewall{{0, 2}}
	sev, caught := fw.Trip(0)
	assert.True(t, caught)
	assert.Zero(t, sev)
}

func TestSafeDelay(t *testing.T) {
	fw, err := Parse(sample)
	require.NoError(t, err)
	d, err := fw.SafeDelay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, d)
}

func TestSafeDelayCancelled(t *testing.T) {
	// A range-1 scanner always sits at the top, so no delay is safe.
	fw := Firewall{{0, 1}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := fw.SafeDelay(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
