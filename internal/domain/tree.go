package domain

import "strings"

// Tree is a persistent binary search tree of strings. The zero value is
// the empty tree, and Insert never modifies the receiver.
type Tree struct {
	root *node
}

type node struct {
	left, right *node
	value       string
	size        int
}

// Insert returns a tree that also contains value. Inserting a value that is
// already present returns the receiver unchanged.
func (t Tree) Insert(value string) Tree {
	return Tree{root: insert(t.root, value)}
}

func insert(n *node, value string) *node {
	if n == nil {
		return &node{value: value, size: 1}
	}

	switch {
	case value < n.value:
		left := insert(n.left, value)
		if left == n.left {
			return n
		}

		return &node{left: left, right: n.right, value: n.value, size: n.size + 1}
	case value > n.value:
		right := insert(n.right, value)
		if right == n.right {
			return n
		}

		return &node{left: n.left, right: right, value: n.value, size: n.size + 1}
	default:
		return n
	}
}

// Contains reports whether value is in the tree.
func (t Tree) Contains(value string) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Size returns the number of values in the tree.
func (t Tree) Size() int {
	if t.root == nil {
		return 0
	}

	return t.root.size
}

// String renders the tree as nested parentheses: "()" when empty,
// otherwise "(" + left + value + right + ")" with empty subtrees omitted,
// e.g. "((a)b(c))".
func (t Tree) String() string {
	if t.root == nil {
		return "()"
	}

	var sb strings.Builder
	writeNode(&sb, t.root)

	return sb.String()
}

func writeNode(sb *strings.Builder, n *node) {
	sb.WriteByte('(')

	if n.left != nil {
		writeNode(sb, n.left)
	}

	sb.WriteString(n.value)

	if n.right != nil {
		writeNode(sb, n.right)
	}

	sb.WriteByte(')')
}
