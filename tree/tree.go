// Package tree orders named items so that parents come before their descendants.
package tree

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCycle = errors.New("parent cycle")

// CycleError lists the names that could not be reached from any root.
type CycleError struct {
	Names []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(e.Names, ", "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}

type node struct {
	name     string
	parent   int
	children []int
}

// Tree is a forest of names. Nodes live in an arena and refer to each other by index.
type Tree struct {
	nodes []*node
	index map[string]int
}

func New() *Tree {
	return &Tree{index: map[string]int{}}
}

func (t *Tree) get(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	t.nodes = append(t.nodes, &node{name: name, parent: -1})
	i := len(t.nodes) - 1
	t.index[name] = i
	return i
}

// Push registers name under parent. An empty parent only registers name.
// A node keeps the first parent it was given.
func (t *Tree) Push(name, parent string) {
	n := t.get(name)
	if parent == "" || parent == name {
		return
	}
	p := t.get(parent)
	if t.nodes[n].parent >= 0 {
		return
	}
	t.nodes[n].parent = p
	t.nodes[p].children = append(t.nodes[p].children, n)
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Parent returns the parent name, or "" for roots and unknown names.
func (t *Tree) Parent(name string) string {
	i, ok := t.index[name]
	if !ok || t.nodes[i].parent < 0 {
		return ""
	}
	return t.nodes[t.nodes[i].parent].name
}

func (t *Tree) Children(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	var names []string
	for _, c := range t.nodes[i].children {
		names = append(names, t.nodes[c].name)
	}
	return names
}

// ToList returns every name once, depth-first from each root in insertion order.
func (t *Tree) ToList() ([]string, error) {
	names := make([]string, 0, len(t.nodes))
	visited := make([]bool, len(t.nodes))
	var stack []int
	for i, n := range t.nodes {
		if n.parent >= 0 {
			continue
		}
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			names = append(names, t.nodes[cur].name)
			children := t.nodes[cur].children
			for j := len(children) - 1; j >= 0; j-- {
				stack = append(stack, children[j])
			}
		}
	}

	if len(names) != len(t.nodes) {
		err := &CycleError{}
		for i, n := range t.nodes {
			if !visited[i] {
				err.Names = append(err.Names, n.name)
			}
		}
		return names, err
	}
	return names, nil
}
