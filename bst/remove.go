package bst

import "github.com/goose-lang/primitive"

// remove deletes value from the subtree rooted at n, returning the new root of
// the subtree and whether value was found. Each visited child edge is
// rewritten with the result of the recursive call; when value is absent every
// edge is rewritten with the node it already held.
func (n *Node[T]) remove(value T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	var found bool
	if value < n.value {
		n.left, found = n.left.remove(value)
		return n, found
	}
	if n.value < value {
		n.right, found = n.right.remove(value)
		return n, found
	}

	// n holds value; splice it out
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	// two children: take over the successor's value, then remove the successor,
	// which has no left child
	succ := n.right.minNode()
	n.value = succ.value
	n.right, found = n.right.remove(succ.value)
	primitive.Assert(found)
	return n, true
}

// Remove deletes value from the tree. It returns (value, true) if value was
// present, and false without changing the tree otherwise.
func (t *Tree[T]) Remove(value T) (T, bool) {
	root, found := t.root.remove(value)
	t.root = root
	if !found {
		var zero T
		return zero, false
	}
	return value, true
}
