package bst

import "golang.org/x/exp/constraints"

// Node is one element of a Tree. The left and right pointers are owning edges:
// every node is referenced by exactly one parent (or by the Tree, for the
// root), and nodes never point back to their parent.
//
// A nil *Node is the empty subtree, which is also what Find returns for a
// missing value. Value returns the zero value for it, and Left and Right
// return nil.
type Node[T constraints.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func newLeaf[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// insert adds value below n and returns the new root of the subtree, which is
// n itself unless n was empty.
func (n *Node[T]) insert(value T) *Node[T] {
	if n == nil {
		return newLeaf(value)
	}
	// modify in-place
	if value < n.value {
		n.left = n.left.insert(value)
	} else if n.value < value {
		n.right = n.right.insert(value)
	}
	// if n.value == value then value is already present
	return n
}

func (n *Node[T]) find(value T) *Node[T] {
	if n == nil {
		return nil
	}
	if value == n.value {
		return n
	}
	if value < n.value {
		return n.left.find(value)
	}
	return n.right.find(value)
}

// minNode returns the leftmost node of a non-empty subtree.
func (n *Node[T]) minNode() *Node[T] {
	var cur = n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

// maxNode returns the rightmost node of a non-empty subtree.
func (n *Node[T]) maxNode() *Node[T] {
	var cur = n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}
