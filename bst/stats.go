package bst

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// balance computes the height of the subtree at n and whether every node in it
// has children whose heights differ by at most one. The empty subtree has
// height 0 and is balanced.
func (n *Node[T]) balance() (uint64, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := n.left.balance()
	rh, rok := n.right.balance()
	height := std.SumAssumeNoOverflow(max(lh, rh), 1)
	ok := lok && rok && lh <= rh+1 && rh <= lh+1
	return height, ok
}

// IsBalanced reports whether, at every node, the left and right subtree
// heights differ by at most one. It only inspects the tree; nothing ever
// rebalances it.
func (t *Tree[T]) IsBalanced() bool {
	_, ok := t.root.balance()
	return ok
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() uint64 {
	h, _ := t.root.balance()
	return h
}

func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.minNode().value, true
}

func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.maxNode().value, true
}

// FindSecondHighest returns the second largest value in the tree, or false if
// the tree has fewer than two nodes.
//
// The second largest value is the maximum of the largest node's left subtree
// if it has one, and otherwise the largest node's parent.
func (t *Tree[T]) FindSecondHighest() (T, bool) {
	var zero T
	if t.root == nil || (t.root.left == nil && t.root.right == nil) {
		return zero, false
	}
	var parent *Node[T]
	var cur = t.root
	for cur.right != nil {
		parent = cur
		cur = cur.right
	}
	if cur.left != nil {
		return cur.left.maxNode().value, true
	}
	// cur has no left child and the tree has at least two nodes, so cur is not the root
	primitive.Assert(parent != nil)
	return parent.value, true
}
