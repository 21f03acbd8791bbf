package bst

// The DFS traversals recurse once per level, so their stack depth is the
// height of the tree.

func (n *Node[T]) preOrder(out []T) []T {
	if n == nil {
		return out
	}
	out = append(out, n.value)
	out = n.left.preOrder(out)
	return n.right.preOrder(out)
}

func (n *Node[T]) inOrder(out []T) []T {
	if n == nil {
		return out
	}
	out = n.left.inOrder(out)
	out = append(out, n.value)
	return n.right.inOrder(out)
}

func (n *Node[T]) postOrder(out []T) []T {
	if n == nil {
		return out
	}
	out = n.left.postOrder(out)
	out = n.right.postOrder(out)
	return append(out, n.value)
}

// DFSPreOrder returns the values of t, each node before its left and then
// right subtree.
func (t *Tree[T]) DFSPreOrder() []T {
	return t.root.preOrder([]T{})
}

// DFSInOrder returns the values of t in ascending order.
func (t *Tree[T]) DFSInOrder() []T {
	return t.root.inOrder([]T{})
}

// DFSPostOrder returns the values of t, each node after both of its subtrees.
func (t *Tree[T]) DFSPostOrder() []T {
	return t.root.postOrder([]T{})
}

// BFS returns the values of t level by level, left to right within a level.
// An empty tree gives an empty slice.
func (t *Tree[T]) BFS() []T {
	var result = []T{}
	if t.root == nil {
		return result
	}
	pending := newQueue[*Node[T]]()
	pending.Push(t.root)
	for {
		cur, ok := pending.Pop()
		if !ok {
			break
		}
		result = append(result, cur.value)
		if cur.left != nil {
			pending.Push(cur.left)
		}
		if cur.right != nil {
			pending.Push(cur.right)
		}
	}
	return result
}
