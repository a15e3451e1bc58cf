package Trees

import (
	"cmp"

	"github.com/g-m-twostay/tree-sort/Queues"
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree that keeps repeated values. For every node, the values in its left
// subtree are strictly less than its value and the values in its right subtree are greater or equal, so repeated values
// route right and keep their multiplicity.
// Nodes live in an arena addressed by handles of type S; a handle is an index, not a pointer, and no node knows its
// parent. S must be wide enough to address every value inserted, Insert panics with CapacityError otherwise.
// No rebalancing is ever done: the height is O(log n) on average for random insertion orders but n for sorted ones,
// which is why nothing in this package recurses over the tree.
// BSTree shouldn't be created directly using struct literal, use New.
type BSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New empty tree with room for hint values before the arena grows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[T, S] {
	return &BSTree[T, S]{base[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)}}
}

// Insert v to the tree as a new leaf.
// Time: O(height); Space: O(1) besides the arena growth.
func (u *BSTree[T, S]) Insert(v T) {
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(CapacityError{uint64(^S(0))})
	}
	n := S(len(u.ifs))
	u.ifs, u.vs = append(u.ifs, info[S]{}), append(u.vs, v) //grow before taking any address into ifs.
	slot := &u.root
	for *slot != 0 {
		if v < *u.getV(*slot) {
			slot = &u.ifs[*slot].l
		} else {
			slot = &u.ifs[*slot].r
		}
	}
	*slot = n
}

// AppendTo appends the values of the tree in order to dst.
func (u *BSTree[T, S]) AppendTo(dst []T) []T {
	u.InOrder(func(v *T) bool {
		dst = append(dst, *v)
		return true
	}, make([]S, 0, 64))
	return dst
}

// Height is the number of nodes on the longest path from the root, 0 for an empty tree. Walks the tree level by level.
// Time: O(n); Space: O(width)
func (u *BSTree[T, S]) Height() (h S) {
	if u.root == 0 {
		return 0
	}
	q := Queues.MakeArrayQueue[S](64)
	for q.Push(u.root); !q.Empty(); h++ {
		for range q.Size() {
			curI, _ := q.Pop()
			cur := u.ifs[curI]
			if cur.l != 0 {
				q.Push(cur.l)
			}
			if cur.r != 0 {
				q.Push(cur.r)
			}
		}
	}
	return
}

type bounds[T cmp.Ordered, S constraints.Unsigned] struct {
	i            S
	lo, hi       T // lo<=v<hi
	hasLo, hasHi bool
}

// Corrupt returns whether some node violates the ordering of the tree, or the arena links a node twice.
// Time: O(n); Space: O(height)
func (u *BSTree[T, S]) Corrupt() bool {
	if u.root == 0 {
		return len(u.vs) != 0
	}
	seen := 0
	for st := []bounds[T, S]{{i: u.root}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if seen++; seen > len(u.vs) {
			return true
		}
		v := *u.getV(top.i)
		if (top.hasLo && v < top.lo) || (top.hasHi && v >= top.hi) {
			return true
		}
		cur := u.ifs[top.i]
		if cur.l != 0 {
			st = append(st, bounds[T, S]{cur.l, top.lo, v, top.hasLo, true})
		}
		if cur.r != 0 {
			st = append(st, bounds[T, S]{cur.r, v, top.hi, true, top.hasHi})
		}
	}
	return seen != len(u.vs)
}

// Sort returns the values of vs in non-decreasing order by inserting them into a BSTree and walking it with a stack.
// vs isn't modified.
// Time: O(n log n) on average, O(n^2) for already sorted input; Space: O(n)
func Sort[T cmp.Ordered](vs []T) []T {
	tree := build(vs)
	return tree.AppendTo(make([]T, 0, len(vs)))
}

// SortMorris is Sort but walks the tree with morris traversal, so the only auxiliary memory is the tree itself.
func SortMorris[T cmp.Ordered](vs []T) []T {
	tree := build(vs)
	out := make([]T, 0, len(vs))
	tree.InOrder(func(v *T) bool {
		out = append(out, *v)
		return true
	}, nil)
	return out
}

func build[T cmp.Ordered](vs []T) *BSTree[T, uint] {
	tree := New[T](uint(len(vs)))
	for _, v := range vs {
		tree.Insert(v)
	}
	return tree
}
