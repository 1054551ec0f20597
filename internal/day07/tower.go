// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package day07 rebuilds a tower of programs from its flat description and
// finds the one program whose weight unbalances it.
package day07

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/aoc2017/internal/puzzle"
	"github.com/pdiddy/aoc2017/pkg/types"
)

// ErrMultipleImbalances is returned when more than one child of a program
// deviates from its siblings' weight.
var ErrMultipleImbalances = errors.New("more than one imbalanced program")

// ErrNotATree is returned when programs hold each other in a loop or one
// program rests on two others.
var ErrNotATree = errors.New("programs do not form a tower")

// Node is a single program in the tower.
type Node struct {
	Name     string
	Weight   int
	Children []string
}

// ParseNode reads a line of the form "fwft (72) -> ktlj, cntj, xhth".
func ParseNode(line string) (Node, error) {
	head, tail, hasChildren := strings.Cut(line, "->")
	var n Node
	name, weight, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok {
		return Node{}, fmt.Errorf("missing weight in %q", line)
	}
	n.Name = name
	weight = strings.TrimSpace(weight)
	if !strings.HasPrefix(weight, "(") || !strings.HasSuffix(weight, ")") {
		return Node{}, fmt.Errorf("malformed weight %q", weight)
	}
	w, err := strconv.Atoi(weight[1 : len(weight)-1])
	if err != nil {
		return Node{}, fmt.Errorf("weight of %s: %w", name, err)
	}
	n.Weight = w
	if hasChildren {
		for _, c := range strings.Split(tail, ",") {
			if c = strings.TrimSpace(c); c != "" {
				n.Children = append(n.Children, c)
			}
		}
	}
	return n, nil
}

// Tree is the whole tower indexed by program name.
type Tree struct {
	Root  string
	Nodes map[string]Node
}

// Parse reads all programs and determines the bottom program: the single
// program that is nobody's child.
func Parse(input string) (*Tree, error) {
	t := &Tree{Nodes: make(map[string]Node)}
	for i, line := range puzzle.Lines(input) {
		n, err := ParseNode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		t.Nodes[n.Name] = n
	}

	candidates := make(map[string]bool, len(t.Nodes))
	for name := range t.Nodes {
		candidates[name] = true
	}
	holder := make(map[string]string, len(t.Nodes))
	for _, n := range t.Nodes {
		for _, c := range n.Children {
			if _, ok := t.Nodes[c]; !ok {
				return nil, fmt.Errorf("program %s holds unknown program %s", n.Name, c)
			}
			if h, ok := holder[c]; ok {
				return nil, fmt.Errorf("%w: %s is held by both %s and %s", ErrNotATree, c, h, n.Name)
			}
			holder[c] = n.Name
			delete(candidates, c)
		}
	}
	if len(candidates) != 1 {
		return nil, fmt.Errorf("expected exactly one bottom program, found %d", len(candidates))
	}
	for name := range candidates {
		t.Root = name
	}
	if n := t.reachable(); n != len(t.Nodes) {
		return nil, fmt.Errorf("%w: %d program(s) stand in a loop away from %s", ErrNotATree, len(t.Nodes)-n, t.Root)
	}
	return t, nil
}

// reachable counts the programs found by walking up from the root.
func (t *Tree) reachable() int {
	seen := map[string]bool{t.Root: true}
	stack := []string{t.Root}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.Nodes[name].Children {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return len(seen)
}

// Weight returns the weight of the named program alone.
func (t *Tree) Weight(name string) (int, bool) {
	n, ok := t.Nodes[name]
	return n.Weight, ok
}

// TotalWeight returns the weight of the named program plus everything it holds.
func (t *Tree) TotalWeight(name string) (int, bool) {
	n, ok := t.Nodes[name]
	if !ok {
		return 0, false
	}
	total := n.Weight
	for _, c := range n.Children {
		w, _ := t.TotalWeight(c)
		total += w
	}
	return total, true
}

// CorrectWeight searches from the bottom program for the deepest
// imbalance and returns the weight the offending program would need for
// the tower to balance. It returns false when the tower is balanced.
func (t *Tree) CorrectWeight() (int, bool, error) {
	return t.checkWeights(t.Root)
}

func (t *Tree) checkWeights(name string) (int, bool, error) {
	n := t.Nodes[name]
	if len(n.Children) == 0 {
		return 0, false, nil
	}
	for _, c := range n.Children {
		if w, ok, err := t.checkWeights(c); ok || err != nil {
			return w, ok, err
		}
	}

	type child struct{ own, total int }
	children := make([]child, len(n.Children))
	for i, c := range n.Children {
		own, _ := t.Weight(c)
		total, _ := t.TotalWeight(c)
		children[i] = child{own, total}
	}
	slices.SortFunc(children, func(a, b child) int { return a.total - b.total })
	median := children[len(children)/2].total

	var off []child
	for _, c := range children {
		if c.total != median {
			off = append(off, c)
		}
	}
	switch len(off) {
	case 0:
		return 0, false, nil
	case 1:
		return off[0].own - (off[0].total - median), true, nil
	default:
		return 0, false, fmt.Errorf("%w below %s", ErrMultipleImbalances, name)
	}
}

// Solve returns the bottom program's name and the corrected weight.
func Solve(_ context.Context, input string) (types.Answer, error) {
	t, err := Parse(input)
	if err != nil {
		return types.Answer{}, err
	}
	w, ok, err := t.CorrectWeight()
	if err != nil {
		return types.Answer{}, err
	}
	if !ok {
		return types.Answer{}, errors.New("tower is already balanced")
	}
	return types.NewAnswer(t.Root, w), nil
}
