// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day17

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterLast(t *testing.T) {
	assert.Equal(t, 638, AfterLast(3, Insertions))
	// After three insertions the buffer is 0 2 3 1.
	assert.Equal(t, 1, AfterLast(3, 3))
}

func TestAfterZero(t *testing.T) {
	got, err := AfterZero(context.Background(), 3, Insertions)
	require.NoError(t, err)
	assert.Equal(t, 1226, got)

	got, err = AfterZero(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}
