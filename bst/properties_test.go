package bst_test

import (
	"slices"
	"testing"

	"bst_code/bst"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// small values so that generated sequences contain duplicates and removals
// often hit
func valuesGenerator() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-20, 20), 0, 40)
}

func sortedDistinct(values []int) []int {
	s := append([]int{}, values...)
	slices.Sort(s)
	return slices.Compact(s)
}

// checkOrder reports whether every value under n lies strictly between lo and
// hi (where present).
func checkOrder(n *bst.Node[int], lo *int, hi *int) bool {
	if n == nil {
		return true
	}
	v := n.Value()
	if lo != nil && !(*lo < v) {
		return false
	}
	if hi != nil && !(v < *hi) {
		return false
	}
	return checkOrder(n.Left(), lo, &v) && checkOrder(n.Right(), &v, hi)
}

func TestInsertEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")

		iter := bst.New[int]()
		rec := bst.New[int]()
		for _, v := range values {
			iter.Insert(v)
			rec.InsertRecursively(v)
		}

		// assert.Equal compares the whole node graph, so this checks shape
		assert.Equal(iter, rec)
		assert.Equal(iter.DFSInOrder(), rec.DFSInOrder())
		assert.Equal(iter.DFSPreOrder(), rec.DFSPreOrder())
	})
}

func TestFindEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		needle := rapid.IntRange(-25, 25).Draw(t, "needle")
		tree := build(values...)

		n := tree.Find(needle)
		assert.Same(n, tree.FindRecursively(needle))
		if slices.Contains(values, needle) {
			if assert.NotNil(n) {
				assert.Equal(needle, n.Value())
			}
		} else {
			assert.Nil(n)
		}

		_, found := slices.BinarySearch(tree.DFSInOrder(), needle)
		assert.Equal(found, tree.Contains(needle))
	})
}

func TestTraversalProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		tree := build(values...)

		expected := sortedDistinct(values)
		assert.Equal(expected, tree.DFSInOrder())
		assert.True(checkOrder(tree.Root(), nil, nil), "order invariant violated")

		assert.ElementsMatch(expected, tree.DFSPreOrder())
		assert.ElementsMatch(expected, tree.DFSPostOrder())
		assert.ElementsMatch(expected, tree.BFS())
		if len(values) > 0 {
			assert.Equal(values[0], tree.DFSPreOrder()[0])
			assert.Equal(values[0], tree.BFS()[0])
			assert.Equal(values[0], tree.DFSPostOrder()[len(expected)-1])
		}
	})
}

func TestRemoveProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		removals := rapid.SliceOfN(rapid.IntRange(-25, 25), 0, 20).Draw(t, "removals")
		tree := build(values...)

		present := make(map[int]bool)
		for _, v := range values {
			present[v] = true
		}
		for _, r := range removals {
			v, ok := tree.Remove(r)
			assert.Equal(present[r], ok, "Remove(%d) result", r)
			if ok {
				assert.Equal(r, v)
			}
			delete(present, r)
			assert.False(tree.Contains(r))
			assert.True(checkOrder(tree.Root(), nil, nil), "order invariant violated after Remove(%d)", r)
		}

		remaining := []int{}
		for v := range present {
			remaining = append(remaining, v)
		}
		assert.Equal(sortedDistinct(remaining), tree.DFSInOrder())
		assert.Equal(len(present) == 0, tree.IsEmpty())
	})
}

func TestSecondHighestProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		tree := build(values...)
		sorted := tree.DFSInOrder()

		v, ok := tree.FindSecondHighest()
		if len(sorted) < 2 {
			assert.False(ok)
			return
		}
		assert.True(ok)
		assert.Equal(sorted[len(sorted)-2], v)
	})
}
