// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package day05

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0\n3\n0\n1\n-3"

func trace(e *Executor) []int {
	var ips []int
	for {
		ip, ok := e.Next()
		if !ok {
			return ips
		}
		ips = append(ips, ip)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, Program{0, 3, 0, 1, -3}, p)
}

func TestExec(t *testing.T) {
	p, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 4, 1}, trace(p.Exec()))
	assert.Equal(t, Program{0, 3, 0, 1, -3}, p, "program must not be modified")
}

func TestStrangeExec(t *testing.T) {
	p, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 4, 1, 3, 4, 2, 2, 3}, trace(p.StrangeExec()))
}

func TestSolve(t *testing.T) {
	a, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "5", a.Part1)
	assert.Equal(t, "10", a.Part2)
}
