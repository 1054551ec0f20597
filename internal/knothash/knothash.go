// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knothash implements the knot hash: a circular list of marks that
// is repeatedly reversed in sections, then condensed into a 128-bit digest.
package knothash

import (
	"encoding/hex"
)

// Size is the number of marks in a standard ring.
const Size = 256

// Rounds is the number of rounds of a full hash.
const Rounds = 64

// suffix is appended to every input of a full hash.
var suffix = []byte{17, 31, 73, 47, 23}

// Ring is a circular list of marks with its current position and skip size.
type Ring struct {
	Marks    []int
	position int
	skip     int
}

// NewRing returns a ring with marks 0..n-1.
func NewRing(n int) *Ring {
	r := &Ring{Marks: make([]int, n)}
	for i := range r.Marks {
		r.Marks[i] = i
	}
	return r
}

// Reverse reverses the section of the given length starting at the
// current position, then moves forward by length plus the skip size and
// increments the skip size.
func (r *Ring) Reverse(length int) {
	n := len(r.Marks)
	for i := 0; i < length/2; i++ {
		a := (r.position + i) % n
		b := (r.position + length - 1 - i) % n
		r.Marks[a], r.Marks[b] = r.Marks[b], r.Marks[a]
	}
	r.position = (r.position + length + r.skip) % n
	r.skip++
}

// Round applies one reversal per length.
func (r *Ring) Round(lengths []int) {
	for _, l := range lengths {
		r.Reverse(l)
	}
}

// Dense XORs each block of 16 marks into one byte.
func (r *Ring) Dense() []byte {
	out := make([]byte, len(r.Marks)/16)
	for i := range out {
		var x int
		for _, m := range r.Marks[i*16 : (i+1)*16] {
			x ^= m
		}
		out[i] = byte(x)
	}
	return out
}

// Sum returns the 16-byte knot hash of data.
func Sum(data []byte) [16]byte {
	lengths := make([]int, 0, len(data)+len(suffix))
	for _, b := range data {
		lengths = append(lengths, int(b))
	}
	for _, b := range suffix {
		lengths = append(lengths, int(b))
	}

	r := NewRing(Size)
	for range Rounds {
		r.Round(lengths)
	}
	var out [16]byte
	copy(out[:], r.Dense())
	return out
}

// Hex returns the knot hash of s as 32 lowercase hexadecimal digits.
func Hex(s string) string {
	sum := Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
