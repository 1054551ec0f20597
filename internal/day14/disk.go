// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day14 maps used disk squares from knot hashes and counts regions.
package day14

import (
	"context"
	"fmt"
	"math/bits"
	"strings"

	"github.com/pdiddy/aoc2017/internal/knothash"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// DefaultInput is the author's key string.
const DefaultInput = "hfdlxzhv"

// Size is the edge length of the disk grid.
const Size = 128

// Disk is a grid of used (true) and free squares.
type Disk [Size][Size]bool

// NewDisk builds the grid for key: row r is the knot hash of "key-r",
// read as 128 bits with the most significant bit first.
func NewDisk(key string) *Disk {
	var d Disk
	for row := range Size {
		sum := knothash.Sum([]byte(fmt.Sprintf("%s-%d", key, row)))
		for col := range Size {
			d[row][col] = sum[col/8]&(0x80>>(col%8)) != 0
		}
	}
	return &d
}

// Used returns the number of used squares.
func (d *Disk) Used() int {
	n := 0
	for row := range Size {
		for col := 0; col < Size; col += 8 {
			var b uint8
			for i := range 8 {
				if d[row][col+i] {
					b |= 1 << i
				}
			}
			n += bits.OnesCount8(b)
		}
	}
	return n
}

// Regions counts groups of used squares connected horizontally or vertically.
func (d *Disk) Regions() int {
	var seen Disk
	n := 0
	for row := range Size {
		for col := range Size {
			if d[row][col] && !seen[row][col] {
				d.fill(&seen, row, col)
				n++
			}
		}
	}
	return n
}

func (d *Disk) fill(seen *Disk, row, col int) {
	stack := [][2]int{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, c := p[0], p[1]
		if r < 0 || r >= Size || c < 0 || c >= Size || !d[r][c] || seen[r][c] {
			continue
		}
		seen[r][c] = true
		stack = append(stack, [2]int{r - 1, c}, [2]int{r + 1, c}, [2]int{r, c - 1}, [2]int{r, c + 1})
	}
}

// Solve returns the number of used squares and regions for the key.
func Solve(_ context.Context, input string) (types.Answer, error) {
	key := strings.TrimSpace(input)
	if key == "" {
		return types.Answer{}, fmt.Errorf("empty key string")
	}
	d := NewDisk(key)
	return types.NewAnswer(d.Used(), d.Regions()), nil
}
