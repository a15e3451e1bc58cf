package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Links of a node in the arena.
// The zero value is meaningful: a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

type base[T cmp.Ordered, S constraints.Unsigned] struct {
	root S
	ifs  []info[S] // ifs[0] is the empty slot and is never linked to; all handles index ifs. len(ifs)=size+1
	vs   []T       // vs[i] corresponds to ifs[i+1]. len(vs)=size
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// InOrder traversal of the tree. When st==nil, uses morris traversal; otherwise, uses a stack based iterative traversal
// and returns st for reuse. f returning false stops the traversal.
// Neither way recurses, so a degenerate tree of height n is fine. Morris traversal temporarily threads the right links
// of the tree and restores them before returning, even when stopped early.
// Time: O(n); Space: O(1) for morris, O(height) for the stack.
func (u *base[T, S]) InOrder(f func(*T) bool, st []S) []S {
	if curI := u.root; st == nil { //use morris traversal
	iter1:
		for curI != 0 {
			if u.ifs[curI].l == 0 {
				if !f(u.getV(curI)) {
					break
				}
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						if !f(u.getV(curI)) {
							break iter1
						}
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
		for curI != 0 { //deplete the remaining traversal to remove the threads.
			if u.ifs[curI].l == 0 {
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
	} else { //use stack traversal
		for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		for len(st) > 0 {
			curI, st = st[len(st)-1], st[:len(st)-1]
			if !f(u.getV(curI)) {
				break
			}
			for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
				st = append(st, curI)
			}
		}
	}
	return st
}

// Size of the tree.
func (u *base[T, S]) Size() S {
	return S(len(u.vs))
}

// Clear the tree, also zeros the underlying value array if reset is true. O(1) if reset==false. O(size) if reset==true.
// Doesn't allocate new arrays.
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.root, u.ifs, u.vs = 0, u.ifs[:1], u.vs[:0]
}

// CapacityError is the panic value when a tree can't address another value with its handle type.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree is full: the handle type addresses at most %d values", e.Max)
}
