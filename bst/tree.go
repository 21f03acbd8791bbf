package bst

import "golang.org/x/exp/constraints"

// Tree is an unbalanced binary search tree. Its shape depends only on the
// order of insertions and removals; nothing rebalances it.
//
// A Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithRoot returns a tree holding only value.
func NewWithRoot[T constraints.Ordered](value T) *Tree[T] {
	return &Tree[T]{root: newLeaf(value)}
}

func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Insert adds value to the tree by walking down from the root, and returns t
// so calls can be chained. Inserting a value that is already present does
// nothing.
func (t *Tree[T]) Insert(value T) *Tree[T] {
	if t.root == nil {
		t.root = newLeaf(value)
		return t
	}
	var cur = t.root
	for {
		if value < cur.value {
			if cur.left == nil {
				cur.left = newLeaf(value)
				break
			}
			cur = cur.left
		} else if cur.value < value {
			if cur.right == nil {
				cur.right = newLeaf(value)
				break
			}
			cur = cur.right
		} else {
			break
		}
	}
	return t
}

// InsertRecursively is Insert written as a recursive descent. Both build
// exactly the same tree for the same sequence of values.
//
// Recursion depth is the height of the tree, which is linear in its size for
// sorted insertion orders.
func (t *Tree[T]) InsertRecursively(value T) *Tree[T] {
	t.root = t.root.insert(value)
	return t
}

// Find returns the node holding value, or nil if value is not in the tree.
func (t *Tree[T]) Find(value T) *Node[T] {
	var cur = t.root
	for cur != nil {
		if value == cur.value {
			return cur
		}
		if value < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// FindRecursively is the recursive version of Find.
func (t *Tree[T]) FindRecursively(value T) *Node[T] {
	return t.root.find(value)
}

func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}
